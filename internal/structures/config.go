package structures

type Goals struct {
	Messages      int `yaml:"messages" validate:"required|int|min:1"`
	Conversations int `yaml:"conversations" validate:"required|int|min:1"`
}

type Persistence struct {
	FilePath   string `yaml:"filePath" validate:"required"`
	ArchiveDir string `yaml:"archiveDir"`
}

type ExportConfig struct {
	PathTemplate string `yaml:"pathTemplate" validate:"required"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required"`
}

type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Goals       Goals         `yaml:"goals"`
	Persistence Persistence   `yaml:"persistence"`
	Export      ExportConfig  `yaml:"export"`
	Logger      LoggerConfig  `yaml:"logger"`
	Metrics     MetricsConfig `yaml:"metrics"`
}
