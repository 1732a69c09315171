package services

import (
	"errors"
	"fmt"
	"strings"
	"ticketcounter/internal/calendar"
	"ticketcounter/internal/export"
	"ticketcounter/internal/models"
	"ticketcounter/internal/providers"
	"ticketcounter/internal/storage"
	"ticketcounter/internal/structures"
	"time"
)

const ReportDays = 7

const archiveStamp = "20060102T150405"

var ErrEmptyLink = errors.New("ticket link is empty")

type ActivityLogInterface interface {
	LogNewTicket(doc models.Document, link string) (models.Document, *models.TicketResult, error)
	LogMessage(doc models.Document) (models.Document, *models.MessageResult, error)
	TodaysProgress(doc models.Document) *models.ProgressSnapshot
	WeeklyReport(doc models.Document, asOf time.Time) *models.WeeklyReport
	Export(doc models.Document) (*models.ExportResult, error)
	ResolveCache(doc models.Document, decision models.CacheDecision) (models.Document, error)
	Now() time.Time
}

type ActivityLog struct {
	goals    structures.Goals
	store    storage.StorageInterface
	exporter export.ExporterInterface
	metrics  providers.MetricsProviderInterface
	logger   providers.Logger
	now      func() time.Time
}

func NewActivityLog(conf *structures.Config, store storage.StorageInterface, exporter export.ExporterInterface, metrics providers.MetricsProviderInterface, logger providers.Logger) ActivityLogInterface {
	return &ActivityLog{
		goals:    conf.Goals,
		store:    store,
		exporter: exporter,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

func (a *ActivityLog) Now() time.Time {
	return a.now()
}

// LogNewTicket records link for today unless it was already logged during
// the current Monday-Sunday week.
func (a *ActivityLog) LogNewTicket(doc models.Document, link string) (models.Document, *models.TicketResult, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return doc, nil, ErrEmptyLink
	}

	now := a.now()
	today := calendar.TodayKey(now)

	if doc.ContainsLink(link, calendar.WeekKeys(now)) {
		a.logger.Debugf(providers.TypeActivity, "Ticket %s already logged this week", link)
		a.metrics.IncEventsTotal("ticket_skipped")
		return doc, &models.TicketResult{
			Status:     models.TicketSkipped,
			Date:       today,
			Link:       link,
			TodayCount: doc.Get(today).Conversations(),
		}, nil
	}

	next := doc.Clone()
	rec := next.Ensure(today)
	rec.Links = append(rec.Links, link)

	if err := a.persist(next); err != nil {
		return doc, nil, err
	}

	a.logger.Infof(providers.TypeActivity, "Ticket %s logged for %s", link, today)
	a.metrics.IncEventsTotal("ticket_logged")
	a.publish(next, today)

	return next, &models.TicketResult{
		Status:     models.TicketLogged,
		Date:       today,
		Link:       link,
		TodayCount: rec.Conversations(),
	}, nil
}

func (a *ActivityLog) LogMessage(doc models.Document) (models.Document, *models.MessageResult, error) {
	today := calendar.TodayKey(a.now())

	next := doc.Clone()
	rec := next.Ensure(today)
	rec.Messages++

	if err := a.persist(next); err != nil {
		return doc, nil, err
	}

	a.logger.Debugf(providers.TypeActivity, "Message logged for %s, total %d", today, rec.Messages)
	a.metrics.IncEventsTotal("message_logged")
	a.publish(next, today)

	return next, &models.MessageResult{
		Date:    today,
		Total:   rec.Messages,
		Goal:    a.goals.Messages,
		GoalMet: rec.Messages >= a.goals.Messages,
	}, nil
}

func (a *ActivityLog) TodaysProgress(doc models.Document) *models.ProgressSnapshot {
	today := calendar.TodayKey(a.now())
	rec := doc.Get(today)

	return &models.ProgressSnapshot{
		Date:                today,
		Messages:            rec.Messages,
		MessageGoal:         a.goals.Messages,
		MessageGoalMet:      rec.Messages >= a.goals.Messages,
		Conversations:       rec.Conversations(),
		ConversationGoal:    a.goals.Conversations,
		ConversationGoalMet: rec.Conversations() >= a.goals.Conversations,
	}
}

// WeeklyReport summarises the seven calendar days ending on asOf. The window
// rolls with asOf and is not aligned to the Monday-Sunday dedup week.
func (a *ActivityLog) WeeklyReport(doc models.Document, asOf time.Time) *models.WeeklyReport {
	report := &models.WeeklyReport{
		AsOf: calendar.Key(asOf.Local()),
		Days: make([]models.DayTotals, 0, ReportDays),
	}

	for _, key := range calendar.LastDays(asOf, ReportDays) {
		rec := doc.Get(key)
		report.Days = append(report.Days, models.DayTotals{
			Date:          key,
			Messages:      rec.Messages,
			Conversations: rec.Conversations(),
		})
		report.TotalMessages += rec.Messages
		report.TotalConversations += rec.Conversations()
	}

	report.AverageMessages = float64(report.TotalMessages) / ReportDays
	report.AverageConversations = float64(report.TotalConversations) / ReportDays
	return report
}

// Export writes every recorded day to a CSV named after the current week.
// A successful export must be followed by ResolveCache.
func (a *ActivityLog) Export(doc models.Document) (*models.ExportResult, error) {
	if len(doc) == 0 {
		return &models.ExportResult{Status: models.ExportNothing}, nil
	}

	monday, sunday := calendar.WeekBounds(a.now())
	start, end := calendar.Key(monday), calendar.Key(sunday)
	path := a.exporter.FileName(start, end)
	rows := export.BuildRows(doc)

	if err := a.exporter.Write(path, rows); err != nil {
		a.logger.Errorf(providers.TypeExport, "Export to %s failed: %s", path, err)
		a.metrics.IncEventsTotal("export_failed")
		return nil, fmt.Errorf("export csv: %w", err)
	}
	a.metrics.IncEventsTotal("export_written")

	return &models.ExportResult{
		Status:    models.ExportWritten,
		Path:      path,
		Rows:      len(rows),
		WeekStart: start,
		WeekEnd:   end,
	}, nil
}

// ResolveCache applies the clear/retain decision that follows an export.
// On any failure the original document is returned untouched.
func (a *ActivityLog) ResolveCache(doc models.Document, decision models.CacheDecision) (models.Document, error) {
	switch decision {
	case models.CacheRetain:
		a.logger.Debugf(providers.TypeActivity, "Cache retained")
		return doc, nil
	case models.CacheClear:
	default:
		return doc, fmt.Errorf("%w: %s", models.ErrInvalidDecision, decision)
	}

	now := a.now()
	monday, sunday := calendar.WeekBounds(now)
	label := calendar.Key(monday) + "_to_" + calendar.Key(sunday) + "_" + now.Local().Format(archiveStamp)
	if _, err := a.store.Archive(doc, label); err != nil {
		return doc, fmt.Errorf("archive before clear: %w", err)
	}
	if err := a.store.Remove(); err != nil {
		a.logger.Errorf(providers.TypeActivity, "Could not clear cache: %s", err)
		return doc, fmt.Errorf("clear cache: %w", err)
	}

	a.logger.Infof(providers.TypeActivity, "Cache cleared, %d days dropped", len(doc))
	a.metrics.IncEventsTotal("cache_cleared")
	a.publish(models.NewDocument(), calendar.TodayKey(a.now()))
	return models.NewDocument(), nil
}

func (a *ActivityLog) persist(doc models.Document) error {
	start := time.Now()
	err := a.store.Save(doc)
	a.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		a.logger.Errorf(providers.TypeStorage, "Error while persisting data: %s", err)
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (a *ActivityLog) publish(doc models.Document, today string) {
	rec := doc.Get(today)
	a.metrics.SetToday(rec.Messages, rec.Conversations())
	if err := a.metrics.Flush(); err != nil {
		a.logger.Warnf(providers.TypeApp, "Unable to write metrics: %s", err)
	}
}
