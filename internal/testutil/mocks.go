package testutil

import (
	"errors"
	"sync"
	"ticketcounter/internal/models"
	"ticketcounter/internal/providers"
	"time"
)

var errNotFound = errors.New("archive not found")

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockStorage implements storage.StorageInterface in memory.
type MockStorage struct {
	Doc        models.Document
	SaveErr    error
	RemoveErr  error
	ArchiveErr error
	Saves      int
	Removes    int
	Archives   []string
	Archived   map[string]models.Document
}

func NewMockStorage() *MockStorage {
	return &MockStorage{Archived: make(map[string]models.Document)}
}

func (m *MockStorage) Load() models.Document {
	if m.Doc == nil {
		return models.NewDocument()
	}
	return m.Doc.Clone()
}

func (m *MockStorage) Save(doc models.Document) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saves++
	m.Doc = doc.Clone()
	return nil
}

func (m *MockStorage) Remove() error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.Removes++
	m.Doc = nil
	return nil
}

func (m *MockStorage) Archive(doc models.Document, label string) (string, error) {
	if m.ArchiveErr != nil {
		return "", m.ArchiveErr
	}
	m.Archives = append(m.Archives, label)
	m.Archived[label] = doc.Clone()
	return label, nil
}

func (m *MockStorage) Restore(path string) (models.Document, error) {
	doc, ok := m.Archived[path]
	if !ok {
		return nil, errNotFound
	}
	return doc.Clone(), nil
}

// MockExporter implements export.ExporterInterface and records written rows.
type MockExporter struct {
	WriteErr error
	Path     string
	Rows     []models.ExportRow
	Writes   int
}

func (m *MockExporter) FileName(start, end string) string {
	return "report_" + start + "_to_" + end + ".csv"
}

func (m *MockExporter) Write(path string, rows []models.ExportRow) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Writes++
	m.Path = path
	m.Rows = rows
	return nil
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	Events        map[string]int
	Messages      int
	Conversations int
	Flushes       int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{Events: make(map[string]int)}
}

func (m *MockMetrics) IncEventsTotal(event string)                { m.Events[event]++ }
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {}
func (m *MockMetrics) SetToday(messages, conversations int) {
	m.Messages = messages
	m.Conversations = conversations
}
func (m *MockMetrics) Flush() error {
	m.Flushes++
	return nil
}

// MockCompressor implements storage.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}
