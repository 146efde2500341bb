// Package settings loads tool preferences from an optional YAML file and
// CELLBUTTON_* environment variables.
package settings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	cberrors "github.com/alexisbeaulieu97/cellbutton/pkg/errors"
)

const (
	EnvPrefix      = "CELLBUTTON"
	configFileName = "cellbutton"
	configFileType = "yaml"
)

// Settings holds the preferences shared by every command.
type Settings struct {
	LogLevel      string        `mapstructure:"log_level"`
	HumanLogs     bool          `mapstructure:"human_logs"`
	Catalog       string        `mapstructure:"catalog"`
	SnapshotDir   string        `mapstructure:"snapshot_dir"`
	GalleryOut    string        `mapstructure:"gallery_out"`
	Dark          bool          `mapstructure:"dark"`
	PreviewWidth  int           `mapstructure:"preview_width"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		LogLevel:      "info",
		HumanLogs:     true,
		Catalog:       "buttons.yaml",
		SnapshotDir:   "snapshots",
		GalleryOut:    "gallery.html",
		PreviewWidth:  80,
		WatchDebounce: 200 * time.Millisecond,
	}
}

// Load reads settings. An explicit path must exist; without one a
// cellbutton.yaml in the working directory is used when present.
func Load(path string) (*Settings, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("human_logs", d.HumanLogs)
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("snapshot_dir", d.SnapshotDir)
	v.SetDefault("gallery_out", d.GalleryOut)
	v.SetDefault("dark", d.Dark)
	v.SetDefault("preview_width", d.PreviewWidth)
	v.SetDefault("watch_debounce", d.WatchDebounce)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, cberrors.NewParseError(path, 0, err)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, cberrors.NewParseError(configFileName+"."+configFileType, 0, err)
			}
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	if s.PreviewWidth <= 0 {
		return nil, cberrors.NewValidationError("preview_width", "must be positive", nil)
	}
	if s.WatchDebounce < 0 {
		return nil, cberrors.NewValidationError("watch_debounce", "must not be negative", nil)
	}

	return s, nil
}
