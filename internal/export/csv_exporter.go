package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"ticketcounter/internal/models"
	"ticketcounter/internal/providers"
	"ticketcounter/internal/storage"
	"ticketcounter/internal/structures"
)

const LinkSeparator = " | "

var Header = []string{"Date", "Messages", "New Conversations", "Links"}

type ExporterInterface interface {
	// FileName resolves the export path for the week running from start to end.
	FileName(start, end string) string
	Write(path string, rows []models.ExportRow) error
}

type CsvExporter struct {
	template string
	logger   providers.Logger
}

func NewCsvExporter(conf *structures.Config, logger providers.Logger) ExporterInterface {
	return &CsvExporter{
		template: conf.Export.PathTemplate,
		logger:   logger,
	}
}

func (e *CsvExporter) FileName(start, end string) string {
	return strings.NewReplacer("{start}", start, "{end}", end).Replace(e.template)
}

func (e *CsvExporter) Write(path string, rows []models.ExportRow) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{r.Date, strconv.Itoa(r.Messages), strconv.Itoa(r.Conversations), r.Links}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}

	if err := storage.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	e.logger.Infof(providers.TypeExport, "Exported %d rows to %s", len(rows), path)
	return nil
}

// BuildRows flattens the document into one row per day, oldest first.
func BuildRows(doc models.Document) []models.ExportRow {
	keys := doc.Keys()
	rows := make([]models.ExportRow, 0, len(keys))
	for _, k := range keys {
		rec := doc.Get(k)
		rows = append(rows, models.ExportRow{
			Date:          k,
			Messages:      rec.Messages,
			Conversations: rec.Conversations(),
			Links:         strings.Join(rec.Links, LinkSeparator),
		})
	}
	return rows
}
