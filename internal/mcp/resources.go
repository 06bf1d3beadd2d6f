// ABOUTME: MCP resource implementations for workout and measurement data.
// ABOUTME: Provides fittrack://recent, fittrack://routines, and fittrack://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fittrack://recent - Last 10 workout sessions
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://recent",
		Name:        "Recent Workouts",
		Description: "Last 10 logged workout sessions",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// fittrack://routines - All saved routine templates
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://routines",
		Name:        "Saved Routines",
		Description: "All saved routine templates",
		MIMEType:    "application/json",
	}, s.handleRoutinesResource)

	// fittrack://summary - Latest measurement per type plus recent sessions
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://summary",
		Name:        "Fitness Summary Dashboard",
		Description: "Latest body measurements plus recent workout sessions",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	history := s.repo.GetHistory()
	if len(history) > 10 {
		history = history[:10]
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fittrack://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleRoutinesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	routines := s.repo.GetWorkouts()

	data, err := json.MarshalIndent(routines, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fittrack://routines",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	// Latest value for each measurement type
	latest := make(map[string]interface{})
	for _, mt := range models.AllMeasurementTypes {
		measurements := s.repo.ListMeasurements(&mt, 1)
		if len(measurements) > 0 {
			m := measurements[0]
			latest[string(mt)] = map[string]interface{}{
				"value":       m.Value,
				"unit":        m.Unit,
				"recorded_at": m.RecordedAt.Format(time.RFC3339),
				"notes":       m.Notes,
			}
		}
	}

	history := s.repo.GetHistory()
	if len(history) > 10 {
		history = history[:10]
	}

	result := map[string]interface{}{
		"generated_at":      time.Now().Format(time.RFC3339),
		"measurements":      latest,
		"recent_workouts":   history,
		"routine_count":     len(s.repo.GetWorkouts()),
		"measurement_types": len(latest),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fittrack://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
