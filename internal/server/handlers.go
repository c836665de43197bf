package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/meltforce/vitalbridge/internal/healthvalue"
	"github.com/meltforce/vitalbridge/internal/ingest/native"
	"github.com/meltforce/vitalbridge/internal/registry"
)

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var payload native.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	result, err := s.native.Ingest(r.Context(), &payload)
	if err != nil {
		if errors.Is(err, healthvalue.ErrUnknownEnumCode) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		s.log.Error("ingest error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleDecodeValue decodes a wire payload back into a typed value and
// returns its canonical re-encoding, hash, and a human-readable summary.
func (s *Server) handleDecodeValue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type    string              `json:"type"`
		Payload healthvalue.Payload `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	v, err := s.reg.Decode(req.Type, req.Payload)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, registry.ErrNotRegistered) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"type":    string(v.Kind()),
		"payload": v.Encode(),
		"hash":    v.Hash(),
		"summary": v.String(),
	})
}

func (s *Server) handleQuerySamples(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "kind parameter required"})
		return
	}

	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	rows, err := s.db.QuerySamples(r.Context(), kind, start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleLatestSamples(w http.ResponseWriter, r *http.Request) {
	rows, err := s.db.LatestSamples(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// handleKinds lists the supported sample kinds with stored counts. Kinds
// with no stored samples yet are included with a zero count.
func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	counts, err := s.db.KindCounts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	byKind := map[string]int64{}
	for _, c := range counts {
		byKind[c.Kind] = c.Count
	}

	type kindInfo struct {
		Kind  string `json:"kind"`
		Count int64  `json:"count"`
	}
	var result []kindInfo
	for _, k := range s.reg.Kinds() {
		result = append(result, kindInfo{Kind: k, Count: byKind[k]})
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat parameter required"})
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lon parameter required"})
		return
	}

	cond, err := s.weather.Current(r.Context(), lat, lon)
	if err != nil {
		s.log.Error("weather lookup error", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, cond)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" {
		// Default: last 7 days
		end = time.Now()
		start = end.AddDate(0, 0, -7)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}
	return
}
