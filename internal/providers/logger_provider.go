package providers

import (
	"fmt"
	"github.com/rs/zerolog"
	"os"
	"path/filepath"
	"ticketcounter/internal/structures"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeStorage
	TypeActivity
	TypeExport
)

const LogFileName = "ticketcounter.log"

func (t TypeEnum) String() string {
	switch t {
	case TypeStorage:
		return "storage"
	case TypeActivity:
		return "activity"
	case TypeExport:
		return "export"
	default:
		return "app"
	}
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	file   *os.File
	logger zerolog.Logger
}

func (l *LogProvider) event(level zerolog.Level, t TypeEnum) *zerolog.Event {
	return l.logger.WithLevel(level).Str("type", t.String())
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.event(zerolog.ErrorLevel, t).Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.event(zerolog.WarnLevel, t).Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.event(zerolog.DebugLevel, t).Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.event(zerolog.InfoLevel, t).Msgf(format, args...)
}

// Fatalf logs and exits the process.
func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.logger.Fatal().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Close() {
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	if err := os.MkdirAll(conf.Logger.Dir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create log dir %s: %w", conf.Logger.Dir, err)
	}
	path := filepath.Join(conf.Logger.Dir, LogFileName)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, os.FileMode(conf.Logger.Mode))
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", path, err)
	}

	logger := zerolog.New(file).Level(level).With().Timestamp().Str("app", AppName).Logger()

	return &LogProvider{file: file, logger: logger}, nil
}
