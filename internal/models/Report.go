package models

type TicketStatus int

const (
	TicketLogged TicketStatus = iota
	TicketSkipped
)

type TicketResult struct {
	Status     TicketStatus
	Date       string
	Link       string
	TodayCount int
}

type MessageResult struct {
	Date    string
	Total   int
	Goal    int
	GoalMet bool
}

type ProgressSnapshot struct {
	Date                string
	Messages            int
	MessageGoal         int
	MessageGoalMet      bool
	Conversations       int
	ConversationGoal    int
	ConversationGoalMet bool
}

type DayTotals struct {
	Date          string
	Messages      int
	Conversations int
}

// WeeklyReport covers the rolling seven days ending on AsOf, oldest first.
type WeeklyReport struct {
	AsOf                 string
	Days                 []DayTotals
	TotalMessages        int
	TotalConversations   int
	AverageMessages      float64
	AverageConversations float64
}

type ExportStatus int

const (
	ExportNothing ExportStatus = iota
	ExportWritten
)

type ExportResult struct {
	Status    ExportStatus
	Path      string
	Rows      int
	WeekStart string
	WeekEnd   string
}

type ExportRow struct {
	Date          string
	Messages      int
	Conversations int
	Links         string
}
