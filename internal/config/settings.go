package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Setting keys.
const (
	KeyIconSize      = "icon_size"
	KeyOutput        = "output"
	KeyWatchDebounce = "watch.debounce"
	KeyWebAddr       = "web.addr"
	KeyWebCacheSize  = "web.cache_size"
)

// Settings are the user-adjustable defaults. Command flags override them.
type Settings struct {
	IconSize int           `mapstructure:"icon_size" json:"icon_size"`
	Output   string        `mapstructure:"output" json:"output"`
	Watch    WatchSettings `mapstructure:"watch" json:"watch"`
	Web      WebSettings   `mapstructure:"web" json:"web"`

	// File is the config file that was read, or "" when none was found.
	File string `mapstructure:"-" json:"file,omitempty"`
}

// WatchSettings configure "readmegen watch".
type WatchSettings struct {
	Debounce time.Duration `mapstructure:"debounce" json:"debounce"`
}

// WebSettings configure "readmegen web".
type WebSettings struct {
	Addr      string `mapstructure:"addr" json:"addr"`
	CacheSize int    `mapstructure:"cache_size" json:"cache_size"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		IconSize: 28,
		Output:   "README.md",
		Watch:    WatchSettings{Debounce: 300 * time.Millisecond},
		Web:      WebSettings{Addr: ":8080", CacheSize: 128},
	}
}

// Load layers, lowest first: Defaults, a YAML config file, and READMEGEN_*
// environment variables (READMEGEN_WATCH_DEBOUNCE for watch.debounce).
// The file is path when given, which must then exist; otherwise config.yaml
// in Dir, which is optional.
func Load(path string) (Settings, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault(KeyIconSize, defaults.IconSize)
	v.SetDefault(KeyOutput, defaults.Output)
	v.SetDefault(KeyWatchDebounce, defaults.Watch.Debounce)
	v.SetDefault(KeyWebAddr, defaults.Web.Addr)
	v.SetDefault(KeyWebCacheSize, defaults.Web.CacheSize)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, path); err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	s.File = v.ConfigFileUsed()

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		path = File()
		if path == "" {
			return nil
		}
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// Validate reports settings that cannot be used.
func (s Settings) Validate() error {
	switch {
	case s.IconSize <= 0 || s.IconSize > 512:
		return fmt.Errorf("%s must be between 1 and 512, got %d", KeyIconSize, s.IconSize)
	case strings.TrimSpace(s.Output) == "":
		return fmt.Errorf("%s must not be empty", KeyOutput)
	case s.Watch.Debounce < 0:
		return fmt.Errorf("%s must not be negative", KeyWatchDebounce)
	case s.Web.CacheSize <= 0:
		return fmt.Errorf("%s must be positive, got %d", KeyWebCacheSize, s.Web.CacheSize)
	}
	return nil
}
