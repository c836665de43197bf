package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 7 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -7)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolGetSamples = mcp.NewTool("get_samples",
	mcp.WithDescription("Retrieve normalized health samples of one kind within a time range. Each sample carries its canonical wire payload, platform of origin, and content hash."),
	mcp.WithString("kind", mcp.Required(), mcp.Description("Sample kind (e.g. numeric, workout, audiogram, electrocardiogram, nutrition, menstruation_flow)")),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
)

var toolGetSampleKinds = mcp.NewTool("get_sample_kinds",
	mcp.WithDescription("List the supported sample kinds with the number of stored samples for each."),
)

var toolGetWeather = mcp.NewTool("get_weather",
	mcp.WithDescription("Look up current weather conditions at a coordinate, for outdoor activity context."),
	mcp.WithNumber("lat", mcp.Required(), mcp.Description("Latitude in decimal degrees")),
	mcp.WithNumber("lon", mcp.Required(), mcp.Description("Longitude in decimal degrees")),
)

// --- Tool handlers ---

func (h *handlers) getSamples(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := req.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("kind parameter is required"), nil
	}

	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	rows, err := h.db.QuerySamples(ctx, kind, start, end)
	if err != nil {
		h.log.Error("mcp get_samples", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(rows)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSampleKinds(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	counts, err := h.db.KindCounts(ctx)
	if err != nil {
		h.log.Error("mcp get_sample_kinds", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	byKind := map[string]int64{}
	for _, c := range counts {
		byKind[c.Kind] = c.Count
	}

	type kindInfo struct {
		Kind  string `json:"kind"`
		Count int64  `json:"count"`
	}
	kinds := make([]kindInfo, 0, len(h.reg.Kinds()))
	for _, k := range h.reg.Kinds() {
		kinds = append(kinds, kindInfo{Kind: k, Count: byKind[k]})
	}

	result, err := mcp.NewToolResultJSON(kinds)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lat, err := req.RequireFloat("lat")
	if err != nil {
		return mcp.NewToolResultError("lat parameter is required"), nil
	}
	lon, err := req.RequireFloat("lon")
	if err != nil {
		return mcp.NewToolResultError("lon parameter is required"), nil
	}

	cond, err := h.wx.Current(ctx, lat, lon)
	if err != nil {
		h.log.Error("mcp get_weather", "error", err)
		return mcp.NewToolResultError("weather lookup failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(cond)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
