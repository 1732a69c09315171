package export

import (
	"os"
	"path/filepath"
	"testing"
	"ticketcounter/internal/models"
	"ticketcounter/internal/structures"
	"ticketcounter/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExporter(template string) *CsvExporter {
	conf := &structures.Config{Export: structures.ExportConfig{PathTemplate: template}}
	return NewCsvExporter(conf, &testutil.MockLogger{}).(*CsvExporter)
}

func TestCsvExporter_FileName(t *testing.T) {
	e := newExporter("support_activity_report_{start}_to_{end}.csv")
	assert.Equal(t, "support_activity_report_2026-10-19_to_2026-10-25.csv", e.FileName("2026-10-19", "2026-10-25"))
}

func TestCsvExporter_FileNameWithDirectory(t *testing.T) {
	e := newExporter("/var/reports/{start}/week.csv")
	assert.Equal(t, "/var/reports/2026-10-19/week.csv", e.FileName("2026-10-19", "2026-10-25"))
}

func TestBuildRows_SortedAndJoined(t *testing.T) {
	doc := models.Document{
		"2026-10-21": {Messages: 15, Links: []string{}},
		"2026-10-19": {Messages: 5, Links: []string{"T-1", "T-2"}},
	}
	rows := BuildRows(doc)
	require.Len(t, rows, 2)
	assert.Equal(t, models.ExportRow{Date: "2026-10-19", Messages: 5, Conversations: 2, Links: "T-1 | T-2"}, rows[0])
	assert.Equal(t, models.ExportRow{Date: "2026-10-21", Messages: 15, Conversations: 0, Links: ""}, rows[1])
}

func TestCsvExporter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	e := newExporter("unused")

	rows := []models.ExportRow{
		{Date: "2026-10-19", Messages: 5, Conversations: 2, Links: "T-1 | T-2"},
		{Date: "2026-10-20", Messages: 0, Conversations: 1, Links: "https://x.test/a,b"},
	}
	require.NoError(t, e.Write(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "Date,Messages,New Conversations,Links\r\n" +
		"2026-10-19,5,2,T-1 | T-2\r\n" +
		"2026-10-20,0,1,\"https://x.test/a,b\"\r\n"
	assert.Equal(t, want, string(data))
}

func TestCsvExporter_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(path, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), nil, 0644))

	e := newExporter("unused")
	assert.Error(t, e.Write(path, []models.ExportRow{{Date: "2026-10-19"}}))
}
