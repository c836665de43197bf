package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestCurrent verifies the client sends the right query params and parses
// the current_weather block of the forecast response.
func TestCurrent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast" {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("latitude"); got != "52.52" {
			t.Errorf("latitude=%q, want 52.52", got)
		}
		if got := r.URL.Query().Get("longitude"); got != "13.41" {
			t.Errorf("longitude=%q, want 13.41", got)
		}
		if got := r.URL.Query().Get("current_weather"); got != "true" {
			t.Errorf("current_weather=%q, want true", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"current_weather": {
				"temperature": 18.3,
				"windspeed": 11.2,
				"weathercode": 3,
				"time": "2026-08-23T14:30"
			}
		}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	cond, err := client.Current(context.Background(), 52.52, 13.41)
	if err != nil {
		t.Fatal(err)
	}
	if cond.TemperatureC != 18.3 {
		t.Errorf("temperature = %g, want 18.3", cond.TemperatureC)
	}
	if cond.WindSpeedKmh != 11.2 {
		t.Errorf("windspeed = %g, want 11.2", cond.WindSpeedKmh)
	}
	if cond.WeatherCode != 3 {
		t.Errorf("weathercode = %d, want 3", cond.WeatherCode)
	}
	want := time.Date(2026, 8, 23, 14, 30, 0, 0, time.UTC)
	if !cond.ObservedAt.Equal(want) {
		t.Errorf("observedAt = %v, want %v", cond.ObservedAt, want)
	}
}

// TestCurrentServerError verifies that a non-200 response surfaces as an
// error including the status code.
func TestCurrentServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	if _, err := client.Current(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

// TestCurrentBadTimestamp verifies that an unparseable observation time is
// reported rather than silently zeroed.
func TestCurrentBadTimestamp(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current_weather": {"temperature": 1, "time": "not-a-time"}}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	if _, err := client.Current(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error for malformed observation time")
	}
}
