package controllers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"ticketcounter/internal/models"
	"ticketcounter/internal/providers"
	"ticketcounter/internal/services"
	"ticketcounter/internal/storage"
	"time"
)

var ErrInvalidCount = errors.New("message count must be at least 1")

// CommandController renders activity log results as plain text and holds
// the document for the lifetime of one command or menu session.
type CommandController struct {
	service services.ActivityLogInterface
	store   storage.StorageInterface
	logger  providers.Logger
	in      *bufio.Reader
	out     io.Writer
	doc     models.Document
}

func NewCommandController(service services.ActivityLogInterface, store storage.StorageInterface, logger providers.Logger, in io.Reader, out io.Writer) *CommandController {
	return &CommandController{
		service: service,
		store:   store,
		logger:  logger,
		in:      bufio.NewReader(in),
		out:     out,
		doc:     store.Load(),
	}
}

func (c *CommandController) Document() models.Document {
	return c.doc
}

// prompt returns the trimmed answer; io.EOF is returned only when no input is left.
func (c *CommandController) prompt(question string) (string, error) {
	fmt.Fprint(c.out, question)
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *CommandController) AddTicket(link string) error {
	link = strings.TrimSpace(link)
	if link == "" {
		answer, err := c.prompt("Enter ticket link: ")
		if err != nil && err != io.EOF {
			return err
		}
		link = answer
	}
	if link == "" {
		fmt.Fprintln(c.out, "No link entered, returning to menu.")
		return nil
	}

	doc, res, err := c.service.LogNewTicket(c.doc, link)
	if err != nil {
		return err
	}
	c.doc = doc

	if res.Status == models.TicketSkipped {
		fmt.Fprintf(c.out, "Skipping: ticket already logged for this week. (%s)\n", res.Link)
		return nil
	}
	fmt.Fprintf(c.out, "Logged ticket: %s  - total tickets today: %d\n", res.Link, res.TodayCount)
	return nil
}

func (c *CommandController) LogMessages(count int) error {
	if count < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	for i := 0; i < count; i++ {
		doc, res, err := c.service.LogMessage(c.doc)
		if err != nil {
			return err
		}
		c.doc = doc
		if res.GoalMet {
			fmt.Fprintf(c.out, "Message goal met: %d / %d\n", res.Total, res.Goal)
		} else {
			fmt.Fprintf(c.out, "Logged 1 message. Total messages today: %d / %d\n", res.Total, res.Goal)
		}
	}
	return nil
}

func (c *CommandController) Today() {
	p := c.service.TodaysProgress(c.doc)
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "Date: %s\n", p.Date)
	fmt.Fprintf(c.out, "Messages: %d / %d %s\n", p.Messages, p.MessageGoal, goalMark(p.MessageGoalMet))
	fmt.Fprintf(c.out, "New Conversations: %d / %d %s\n", p.Conversations, p.ConversationGoal, goalMark(p.ConversationGoalMet))
	fmt.Fprintf(c.out, "Tickets logged: %d\n", p.Conversations)
	fmt.Fprintln(c.out)
}

func (c *CommandController) Week(asOf time.Time) {
	r := c.service.WeeklyReport(c.doc, asOf)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Weekly report (last 7 days)")
	fmt.Fprintf(c.out, "%-12s%-12s%s\n", "Date", "Messages", "New Convos")
	fmt.Fprintln(c.out, strings.Repeat("-", 36))
	for _, d := range r.Days {
		fmt.Fprintf(c.out, "%-12s%-12d%d\n", d.Date, d.Messages, d.Conversations)
	}
	fmt.Fprintln(c.out, strings.Repeat("-", 36))
	fmt.Fprintf(c.out, "%-12s%-12d%d\n", "Total:", r.TotalMessages, r.TotalConversations)
	fmt.Fprintf(c.out, "%-12s%-12.1f%.1f\n", "Average/day:", r.AverageMessages, r.AverageConversations)
	fmt.Fprintln(c.out)
}

// Export writes the CSV and then asks whether to clear the local cache,
// re-asking until a valid answer arrives. Failures are returned, not printed.
func (c *CommandController) Export() error {
	res, err := c.service.Export(c.doc)
	if err != nil {
		return fmt.Errorf("failed to export CSV: %w", err)
	}
	if res.Status == models.ExportNothing {
		fmt.Fprintln(c.out, "No data to export.")
		return nil
	}
	fmt.Fprintf(c.out, "Export complete -> %s\n", res.Path)

	for {
		answer, err := c.prompt("Clear local cache? (y/n) ")
		if err != nil {
			// no answer can arrive any more; keep the data
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, "Cache retained.")
			return nil
		}
		decision, err := models.ParseCacheDecision(answer)
		if err != nil {
			fmt.Fprintln(c.out, "Please answer 'y' or 'n'.")
			continue
		}

		doc, err := c.service.ResolveCache(c.doc, decision)
		if err != nil {
			return fmt.Errorf("could not clear cache: %w", err)
		}
		c.doc = doc
		if decision == models.CacheClear {
			fmt.Fprintln(c.out, "Local cache cleared.")
		} else {
			fmt.Fprintln(c.out, "Cache retained.")
		}
		return nil
	}
}

// Restore replaces the current document with an archived snapshot.
func (c *CommandController) Restore(path string) error {
	doc, err := c.store.Restore(path)
	if err != nil {
		return fmt.Errorf("restore %s: %w", path, err)
	}
	if err := c.store.Save(doc); err != nil {
		return err
	}
	c.doc = doc
	fmt.Fprintf(c.out, "Restored %d days from %s\n", len(doc), path)
	return nil
}

func goalMark(met bool) string {
	if met {
		return "(goal met)"
	}
	return "(below goal)"
}
