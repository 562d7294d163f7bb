package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/fsh/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI assistants.
The server provides tools for inspecting repository state and building prompts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol, so status goes to stderr
		fmt.Fprintln(cmd.ErrOrStderr(), "Starting MCP server on stdio, press Ctrl+C to stop")

		server := mcp.NewServer(app.prompt, Version, app.logger)
		stopOnSignal(server)

		// A stop request surfaces as a cancelled context
		if err := server.Start(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}
