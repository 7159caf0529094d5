package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/terrain-mcp/internal/classify"
	"github.com/ironsheep/terrain-mcp/internal/config"
	"github.com/ironsheep/terrain-mcp/internal/fuzzy"
	"github.com/ironsheep/terrain-mcp/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "terrain-mcp",
	Short: "Terrain image classifier (naive Bayes and fuzzy logic)",
	Long: `terrain-mcp classifies RGB images as tundra, forest, desert or ocean from
their mean red, green and blue intensities, using a naive Bayes model and a
fuzzy rule base side by side.

Run "terrain-mcp serve" to expose the classifiers as MCP tools over stdio, or
"terrain-mcp classify" to classify image files from the command line.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.Version = Version

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a TOML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "override the log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration named by --config and applies
// --log-level on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger and service shared by
// the subcommands. Logs always go to stderr.
func setup(cmd *cobra.Command) (config.Config, *logrus.Logger, *classify.Service, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	logger, err := config.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	logic, err := fuzzy.LogicByName(cfg.Classify.Logic)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("classify.logic: %w", err)
	}

	svc := classify.NewService(imaging.NewImageCache(), classify.Options{
		Workers: cfg.Classify.Workers,
		Logic:   logic,
		Logger:  logger,
	})
	return cfg, logger, svc, nil
}
