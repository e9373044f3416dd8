// ABOUTME: MCP server setup for the fitness tracker.
// ABOUTME: Wraps the MCP server with tracker and storage connections.
package mcp

import (
	"context"

	"github.com/harperreed/fitquest/internal/storage"
	"github.com/harperreed/fitquest/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with tracker access.
type Server struct {
	mcpServer *mcp.Server
	app       *tracker.Tracker
	repo      storage.Repository
}

// NewServer creates a new MCP server over the given tracker and storage.
func NewServer(app *tracker.Tracker, repo storage.Repository) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitquest",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		app:       app,
		repo:      repo,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
