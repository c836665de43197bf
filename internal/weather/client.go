// Package weather fetches current outdoor conditions from an
// Open-Meteo-compatible forecast API, for annotating outdoor samples.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.open-meteo.com"

// observedAtLayout is the timestamp format the forecast API returns for
// current conditions (minute precision, no zone).
const observedAtLayout = "2006-01-02T15:04"

// Conditions is a current-weather observation.
type Conditions struct {
	TemperatureC float64   `json:"temperature_c"`
	WindSpeedKmh float64   `json:"wind_speed_kmh"`
	WeatherCode  int       `json:"weather_code"`
	ObservedAt   time.Time `json:"observed_at"`
}

// Client calls the forecast API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client targeting the given base URL. An empty baseURL
// selects the public Open-Meteo endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Current fetches the current conditions at the given coordinates.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*Conditions, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("current_weather", "true")

	body, err := c.get(ctx, "/v1/forecast", params)
	if err != nil {
		return nil, err
	}

	var resp struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
			WindSpeed   float64 `json:"windspeed"`
			WeatherCode int     `json:"weathercode"`
			Time        string  `json:"time"`
		} `json:"current_weather"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("weather: decode forecast: %w", err)
	}

	observed, err := time.Parse(observedAtLayout, resp.CurrentWeather.Time)
	if err != nil {
		return nil, fmt.Errorf("weather: parse observation time %q: %w", resp.CurrentWeather.Time, err)
	}

	return &Conditions{
		TemperatureC: resp.CurrentWeather.Temperature,
		WindSpeedKmh: resp.CurrentWeather.WindSpeed,
		WeatherCode:  resp.CurrentWeather.WeatherCode,
		ObservedAt:   observed,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("weather: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("weather: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}
