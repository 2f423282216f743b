package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"simplecalc/internal/mcptool"
	"simplecalc/internal/observability"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the calculate tool over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer observability.SyncLogger()

			// stdout carries the protocol; production logs go to stderr already.
			observability.Logger.Info("mcp server starting")

			return server.ServeStdio(mcptool.NewServer(a.cfg.ServiceName, version))
		},
	}
}
