package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/terrain-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdin/stdout",
	Long: `Run the MCP server. Requests are read from stdin and responses written to
stdout, one JSON-RPC message per line. Logs go to stderr.

Configure it in your MCP client (e.g., Claude Desktop) with the command
"terrain-mcp serve".`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, svc, err := setup(cmd)
	if err != nil {
		return err
	}

	server.Version = Version
	logger.WithFields(logrus.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
		"region":  cfg.Classify.Region,
		"logic":   cfg.Classify.Logic,
	}).Info("Starting terrain MCP server")

	srv := server.New(svc, server.Options{
		Region: cfg.Classify.Region,
		Logger: logger,
	})
	if err := srv.Run(); err != nil {
		logger.WithError(err).Error("Server error")
		return err
	}
	logger.Info("Input closed, shutting down")
	return nil
}
