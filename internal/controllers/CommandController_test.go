package controllers

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"ticketcounter/internal/calendar"
	"ticketcounter/internal/models"
	"ticketcounter/internal/services"
	"ticketcounter/internal/structures"
	"ticketcounter/internal/testutil"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	ctrl     *CommandController
	store    *testutil.MockStorage
	exporter *testutil.MockExporter
	out      *bytes.Buffer
}

func newHarness(input string, seed models.Document) *harness {
	conf := &structures.Config{Goals: structures.Goals{Messages: 15, Conversations: 8}}
	store := testutil.NewMockStorage()
	store.Doc = seed
	exporter := &testutil.MockExporter{}
	logger := &testutil.MockLogger{}
	svc := services.NewActivityLog(conf, store, exporter, testutil.NewMockMetrics(), logger)

	out := &bytes.Buffer{}
	return &harness{
		ctrl:     NewCommandController(svc, store, logger, strings.NewReader(input), out),
		store:    store,
		exporter: exporter,
		out:      out,
	}
}

func todayKey() string {
	return calendar.TodayKey(time.Now())
}

func TestAddTicket_FromArgument(t *testing.T) {
	h := newHarness("", nil)
	require.NoError(t, h.ctrl.AddTicket("T-100"))
	assert.Contains(t, h.out.String(), "Logged ticket: T-100")
	assert.Equal(t, []string{"T-100"}, h.store.Doc[todayKey()].Links)
}

func TestAddTicket_Prompts(t *testing.T) {
	h := newHarness("  T-200  \n", nil)
	require.NoError(t, h.ctrl.AddTicket(""))
	assert.Contains(t, h.out.String(), "Enter ticket link: ")
	assert.Equal(t, []string{"T-200"}, h.ctrl.Document()[todayKey()].Links)
}

func TestAddTicket_BlankInput(t *testing.T) {
	h := newHarness("\n", nil)
	require.NoError(t, h.ctrl.AddTicket(""))
	assert.Contains(t, h.out.String(), "No link entered")
	assert.Zero(t, h.store.Saves)
}

func TestAddTicket_DuplicateReportsSkip(t *testing.T) {
	h := newHarness("", nil)
	require.NoError(t, h.ctrl.AddTicket("T-1"))
	require.NoError(t, h.ctrl.AddTicket("T-1"))
	assert.Contains(t, h.out.String(), "Skipping: ticket already logged for this week. (T-1)")
	assert.Equal(t, 1, h.store.Saves)
}

func TestLogMessages_Count(t *testing.T) {
	h := newHarness("", nil)
	require.NoError(t, h.ctrl.LogMessages(15))
	assert.Equal(t, 15, h.store.Doc[todayKey()].Messages)
	assert.Contains(t, h.out.String(), "Total messages today: 14 / 15")
	assert.Contains(t, h.out.String(), "Message goal met: 15 / 15")
}

func TestLogMessages_InvalidCount(t *testing.T) {
	h := newHarness("", nil)
	err := h.ctrl.LogMessages(0)
	assert.True(t, errors.Is(err, ErrInvalidCount))
	assert.Zero(t, h.store.Saves)
}

func TestToday_Output(t *testing.T) {
	h := newHarness("", models.Document{todayKey(): {Messages: 15, Links: []string{"a"}}})
	h.ctrl.Today()
	out := h.out.String()
	assert.Contains(t, out, "Date: "+todayKey())
	assert.Contains(t, out, "Messages: 15 / 15 (goal met)")
	assert.Contains(t, out, "New Conversations: 1 / 8 (below goal)")
}

func TestWeek_Output(t *testing.T) {
	asOf := testutil.Day(2026, time.October, 21)
	h := newHarness("", models.Document{"2026-10-20": {Messages: 7, Links: []string{"a", "b"}}})
	h.ctrl.Week(asOf)
	out := h.out.String()
	assert.Contains(t, out, "2026-10-15")
	assert.Contains(t, out, "2026-10-20  7           2")
	assert.Contains(t, out, "Total:      7           2")
	assert.Contains(t, out, "Average/day:1.0         0.3")
}

func TestExport_NothingToExport(t *testing.T) {
	h := newHarness("", nil)
	require.NoError(t, h.ctrl.Export())
	assert.Contains(t, h.out.String(), "No data to export.")
	assert.Zero(t, h.exporter.Writes)
}

func TestExport_RepromptsThenClears(t *testing.T) {
	h := newHarness("maybe\n\ny\n", models.Document{"2026-10-20": {Messages: 1, Links: []string{}}})
	require.NoError(t, h.ctrl.Export())

	out := h.out.String()
	assert.Equal(t, 2, strings.Count(out, "Please answer 'y' or 'n'."))
	assert.Contains(t, out, "Local cache cleared.")
	assert.Empty(t, h.ctrl.Document())
	assert.Equal(t, 1, h.store.Removes)
}

func TestExport_Retain(t *testing.T) {
	h := newHarness("no\n", models.Document{"2026-10-20": {Messages: 1, Links: []string{}}})
	require.NoError(t, h.ctrl.Export())
	assert.Contains(t, h.out.String(), "Cache retained.")
	assert.Len(t, h.ctrl.Document(), 1)
	assert.Zero(t, h.store.Removes)
}

func TestExport_EOFRetains(t *testing.T) {
	h := newHarness("what\n", models.Document{"2026-10-20": {Messages: 1, Links: []string{}}})
	require.NoError(t, h.ctrl.Export())
	assert.Len(t, h.ctrl.Document(), 1)
	assert.Zero(t, h.store.Removes)
}

func TestExport_WriteFailure(t *testing.T) {
	h := newHarness("y\n", models.Document{"2026-10-20": {Messages: 1, Links: []string{}}})
	h.exporter.WriteErr = errors.New("permission denied")
	err := h.ctrl.Export()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to export CSV")
	assert.NotContains(t, h.out.String(), "permission denied")
	assert.Len(t, h.ctrl.Document(), 1)
}

func TestExport_ClearFailureKeepsDocument(t *testing.T) {
	h := newHarness("y\n", models.Document{"2026-10-20": {Messages: 1, Links: []string{}}})
	h.store.RemoveErr = errors.New("permission denied")
	err := h.ctrl.Export()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not clear cache")
	assert.NotContains(t, h.out.String(), "permission denied")
	assert.Len(t, h.ctrl.Document(), 1)
}

func TestRestore_ReplacesDocument(t *testing.T) {
	h := newHarness("", nil)
	h.store.Archived["snap"] = models.Document{"2026-10-20": {Messages: 4, Links: []string{"z"}}}

	require.NoError(t, h.ctrl.Restore("snap"))
	assert.Equal(t, 4, h.ctrl.Document()["2026-10-20"].Messages)
	assert.Equal(t, 1, h.store.Saves)

	assert.Error(t, h.ctrl.Restore("missing"))
}

func TestMenu_RunsActionsUntilExit(t *testing.T) {
	h := newHarness("2\n1\nT-9\n7\nabc\n3\n6\n", nil)
	require.NoError(t, h.ctrl.Menu())

	out := h.out.String()
	assert.Contains(t, out, "1. Log new ticket")
	assert.Contains(t, out, "6. Exit")
	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Pick 1-6."))
	assert.Contains(t, out, "Logged ticket: T-9")
	assert.Contains(t, out, "Messages: 1 / 15")
	assert.Contains(t, out, "Bye. Keep counting.")

	rec := h.store.Doc[todayKey()]
	assert.Equal(t, 1, rec.Messages)
	assert.Equal(t, []string{"T-9"}, rec.Links)
}

func TestMenu_ExportFailureReportedOnce(t *testing.T) {
	h := newHarness("5\n6\n", models.Document{"2026-10-20": {Messages: 1, Links: []string{}}})
	h.exporter.WriteErr = errors.New("permission denied")
	require.NoError(t, h.ctrl.Menu())

	out := h.out.String()
	assert.Equal(t, 1, strings.Count(out, "permission denied"))
	assert.Contains(t, out, "Error: failed to export CSV")
}

func TestMenu_EOFExits(t *testing.T) {
	h := newHarness("3\n", nil)
	assert.NoError(t, h.ctrl.Menu())
	assert.Contains(t, h.out.String(), "Date: ")
}
