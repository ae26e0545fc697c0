// Package config loads application settings from defaults, an optional YAML
// file, ZOOP_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"zoop-converter/internal/logger"
	"zoop-converter/internal/models"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultConfigName = "zoop"
	EnvPrefix         = "ZOOP"

	CodecImaging = "imaging"
	CodecOpenCV  = "opencv"

	PrefsBackendFyne = "fyne"
	PrefsBackendFile = "file"
)

// DefaultSupportedExtensions is the input set used when none is configured.
var DefaultSupportedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

type Config struct {
	SupportedExtensions []string
	OutputDirectory     string
	OutputFormat        string
	Codec               string
	JPEGQuality         int
	AutoOrient          bool
	ThumbnailSize       int
	LogLevel            logger.LogLevel
	LogJSON             bool
	PrefsBackend        string
	PrefsFile           string
	ConfigFileUsed      string
}

func setDefaults(v *viper.Viper) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	v.SetDefault("supported_extensions", DefaultSupportedExtensions)
	v.SetDefault("output.directory", filepath.Join(cwd, "converted"))
	v.SetDefault("output.format", ".jpg")
	v.SetDefault("codec", CodecImaging)
	v.SetDefault("jpeg_quality", 95)
	v.SetDefault("auto_orient", true)
	v.SetDefault("thumbnail_size", 48)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("preferences.backend", PrefsBackendFyne)
	v.SetDefault("preferences.file", defaultPrefsFile())
}

func defaultPrefsFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "preferences.yaml"
	}
	return filepath.Join(dir, DefaultConfigName, "preferences.yaml")
}

// flagKeys maps flag names onto configuration keys.
var flagKeys = map[string]string{
	"format":    "output.format",
	"output":    "output.directory",
	"codec":     "codec",
	"log-level": "log.level",
	"log-json":  "log.json",
}

// Load merges every source. A missing config file is fine unless cfgFile
// names one explicitly. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, fmt.Errorf("read config %q: %w", cfgFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	level, err := logger.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		SupportedExtensions: normalizeAll(v.GetStringSlice("supported_extensions")),
		OutputDirectory:     v.GetString("output.directory"),
		OutputFormat:        models.NormalizeExtension(v.GetString("output.format")),
		Codec:               strings.ToLower(v.GetString("codec")),
		JPEGQuality:         v.GetInt("jpeg_quality"),
		AutoOrient:          v.GetBool("auto_orient"),
		ThumbnailSize:       v.GetInt("thumbnail_size"),
		LogLevel:            level,
		LogJSON:             v.GetBool("log.json"),
		PrefsBackend:        strings.ToLower(v.GetString("preferences.backend")),
		PrefsFile:           v.GetString("preferences.file"),
		ConfigFileUsed:      v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.SupportedExtensions) == 0 {
		return errors.New("supported_extensions must not be empty")
	}
	if c.OutputFormat == "" {
		return errors.New("output.format must not be empty")
	}
	switch c.Codec {
	case CodecImaging, CodecOpenCV:
	default:
		return fmt.Errorf("unknown codec %q (want %s or %s)", c.Codec, CodecImaging, CodecOpenCV)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality %d out of range 1-100", c.JPEGQuality)
	}
	switch c.PrefsBackend {
	case PrefsBackendFyne, PrefsBackendFile:
	default:
		return fmt.Errorf("unknown preferences.backend %q", c.PrefsBackend)
	}
	return nil
}

func normalizeAll(exts []string) []string {
	seen := make(map[string]struct{}, len(exts))
	out := make([]string, 0, len(exts))
	for _, raw := range exts {
		// env values arrive as one comma separated string
		for _, part := range strings.Split(raw, ",") {
			ext := models.NormalizeExtension(part)
			if ext == "" {
				continue
			}
			if _, dup := seen[ext]; dup {
				continue
			}
			seen[ext] = struct{}{}
			out = append(out, ext)
		}
	}
	return out
}
