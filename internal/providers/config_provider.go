package providers

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"os"
	"path/filepath"
	"strings"
	"ticketcounter/internal/structures"
)

const AppName = "ticketcounter"

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setDefaults(v)

	if flags.ConfigPath != "" {
		filename := filepath.Base(flags.ConfigPath)
		v.AddConfigPath(filepath.Dir(flags.ConfigPath))
		v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
		v.SetConfigType("yaml")

		err := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config %s: %w", flags.ConfigPath, err)
		}
	}

	err := v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode
	if conf.Debug {
		conf.Logger.Level = "debug"
	}

	return &conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("goals.messages", 15)
	v.SetDefault("goals.conversations", 8)
	v.SetDefault("persistence.filePath", "support_tracker.json")
	v.SetDefault("persistence.archiveDir", "")
	v.SetDefault("export.pathTemplate", "support_activity_report_{start}_to_{end}.csv")
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("logger.dir", defaultLogDir())
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.textfile", "")
}

func defaultLogDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppName)
}
