// Package mcp exposes the stored sample data to agent clients over the
// Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/meltforce/vitalbridge/internal/registry"
	"github.com/meltforce/vitalbridge/internal/storage"
	"github.com/meltforce/vitalbridge/internal/weather"
)

// New creates an MCP server with all tools and resources registered.
func New(db *storage.DB, reg *registry.Registry, wx *weather.Client, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("VitalBridge", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("VitalBridge health sample server. Query normalized health samples by kind and time range, list the supported kinds, and look up current weather for outdoor activity context."),
	)

	h := &handlers{db: db, reg: reg, wx: wx, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetSamples, Handler: h.getSamples},
		server.ServerTool{Tool: toolGetSampleKinds, Handler: h.getSampleKinds},
		server.ServerTool{Tool: toolGetWeather, Handler: h.getWeather},
	)

	s.AddResources(
		server.ServerResource{Resource: resSampleCatalog, Handler: h.sampleCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	db  *storage.DB
	reg *registry.Registry
	wx  *weather.Client
	log *slog.Logger
}

// --- Resource definitions ---

var resSampleCatalog = mcp.NewResource(
	"vitalbridge://sample_catalog",
	"Sample Catalog",
	mcp.WithResourceDescription("All supported sample kinds with stored counts and the latest sample of each kind"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) sampleCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	counts, err := h.db.KindCounts(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := h.db.LatestSamples(ctx)
	if err != nil {
		h.log.Warn("sample_catalog: latest query failed", "error", err)
	}

	catalog := map[string]any{
		"kinds":  h.reg.Kinds(),
		"counts": counts,
		"latest": latest,
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
