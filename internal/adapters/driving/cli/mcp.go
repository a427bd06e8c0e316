package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/counsel-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can consult the
transfer counselor.

Tools:
  ask_counselor    Route a question and return the composed answer
  classify_query   Report the scope verdict for a question

Resources:
  counsel://specialists   Registered specialists as JSON

By default, the server communicates over stdio using JSON-RPC. Use --port to
serve streamable HTTP instead. Edits to config.toml and the answer templates
are picked up without a restart.

Examples:
  # Stdio mode (default, for desktop assistants)
  counsel mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  counsel mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "counsel": {
        "command": "/path/to/counsel",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Router:  router,
		Catalog: catalog,
	}

	server, err := mcp.NewServer(ports, mcp.WithRateLimit(mcpRateLimit))
	if err != nil {
		return err
	}

	if watch != nil {
		w, err := watch()
		if err != nil {
			logger.Warn("hot reload disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
