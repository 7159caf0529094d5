// Package config loads runtime settings for the terrain tools.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional TOML file, and environment variables. Command-line flags are
// applied by the caller on top of the returned Config.
//
//	[log]
//	level = "debug"     # panic, fatal, error, warn, info, debug, trace
//	format = "json"     # text or json
//
//	[classify]
//	workers = 4         # concurrent images in batch mode, 0 = GOMAXPROCS
//	region = "center"   # default image region
//	logic = "goguen"    # fuzzy logic family: goguen or godel
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/terrain-mcp/internal/fuzzy"
	"github.com/ironsheep/terrain-mcp/internal/imaging"
)

// EnvLogLevel overrides the configured log level when set.
const EnvLogLevel = "TERRAIN_MCP_LOG_LEVEL"

// Config is the complete runtime configuration.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Classify ClassifyConfig `toml:"classify"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ClassifyConfig controls the classification service.
type ClassifyConfig struct {
	Workers int    `toml:"workers"`
	Region  string `toml:"region"`
	Logic   string `toml:"logic"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Classify: ClassifyConfig{
			Workers: 0,
			Region:  imaging.RegionFull,
			Logic:   fuzzy.Goguen.Name,
		},
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q (want text or json)", c.Log.Format)
	}
	if c.Classify.Workers < 0 {
		return fmt.Errorf("classify.workers: must not be negative, got %d", c.Classify.Workers)
	}
	if !imaging.ValidRegion(c.Classify.Region) {
		return fmt.Errorf("classify.region: unknown region %q", c.Classify.Region)
	}
	if _, err := fuzzy.LogicByName(c.Classify.Logic); err != nil {
		return fmt.Errorf("classify.logic: %w", err)
	}
	return nil
}

// NewLogger builds a logger writing to out according to c.
func NewLogger(c LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	if c.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return logger, nil
}
