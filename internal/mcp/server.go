// ABOUTME: MCP server setup for the fittrack data repository.
// ABOUTME: Wraps the MCP server with repository access and optional sync.
package mcp

import (
	"context"

	"github.com/harperreed/fittrack/internal/repo"
	syncer "github.com/harperreed/fittrack/internal/sync"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with repository access. Syncer may be nil
// when sync is not configured; the sync_now tool then reports that.
type Server struct {
	mcpServer *mcp.Server
	repo      *repo.Repository
	syncer    *syncer.Syncer
}

// NewServer creates a new MCP server over the given repository.
func NewServer(r *repo.Repository, s *syncer.Syncer) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fittrack",
			Version: "1.0.0",
		},
		nil,
	)

	srv := &Server{
		mcpServer: mcpServer,
		repo:      r,
		syncer:    s,
	}

	srv.registerTools()
	srv.registerResources()

	return srv, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
