package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Provider supplies a weather snapshot for coordinates and a target time.
// Implementations must not fail the caller: on upstream trouble they return
// a usable default snapshot instead of an error.
type Provider interface {
	Forecast(ctx context.Context, lat, lng float64, at time.Time) *Snapshot
}

// Client talks to the Open-Meteo hourly forecast API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Forecast fetches the hourly series and classifies the sample closest to
// the target time. Falls back to DefaultSnapshot on any failure.
func (c *Client) Forecast(ctx context.Context, lat, lng float64, at time.Time) *Snapshot {
	resp, err := c.fetch(ctx, lat, lng)
	if err != nil {
		log.Printf("weather: falling back to defaults: %v", err)
		return DefaultSnapshot(at)
	}

	snapshot, err := snapshotAt(resp, at)
	if err != nil {
		log.Printf("weather: falling back to defaults: %v", err)
		return DefaultSnapshot(at)
	}

	return snapshot
}

func (c *Client) fetch(ctx context.Context, lat, lng float64) (*openMeteoResponse, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("hourly", "temperature_2m,rain,relative_humidity_2m,pressure_msl,wind_speed_10m")
	params.Set("forecast_days", "1")
	params.Set("format", "json")
	params.Set("timeformat", "unixtime")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"?"+params.Encode(),
		nil,
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "RestOmetrics/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-meteo returned status %d", resp.StatusCode)
	}

	var parsed openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	return &parsed, nil
}

// snapshotAt picks the hourly sample with the minimum absolute distance to
// the target time and classifies it.
func snapshotAt(resp *openMeteoResponse, at time.Time) (*Snapshot, error) {
	hourly := resp.Hourly
	if len(hourly.Time) == 0 ||
		len(hourly.Temperature2m) != len(hourly.Time) ||
		len(hourly.Rain) != len(hourly.Time) {
		return nil, errors.New("forecast series is empty or inconsistent")
	}

	target := at.Unix()
	closest := 0
	minDiff := absDiff(hourly.Time[0], target)
	for i := 1; i < len(hourly.Time); i++ {
		if diff := absDiff(hourly.Time[i], target); diff < minDiff {
			minDiff = diff
			closest = i
		}
	}

	snapshot := Classify(at, hourly.Temperature2m[closest], hourly.Rain[closest])

	if closest < len(hourly.Humidity2m) {
		v := hourly.Humidity2m[closest]
		snapshot.Humidity = &v
	}
	if closest < len(hourly.PressureMsl) {
		v := hourly.PressureMsl[closest]
		snapshot.Pressure = &v
	}
	if closest < len(hourly.WindSpeed10m) {
		v := hourly.WindSpeed10m[closest]
		snapshot.WindSpeed = &v
	}

	return &snapshot, nil
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}

// CityCoordinates resolves major Kazakh cities used as login defaults.
func CityCoordinates(city string) (lat, lng float64, ok bool) {
	cities := map[string][2]float64{
		"almaty":    {43.2775, 76.8958},
		"astana":    {51.1694, 71.4491},
		"nursultan": {51.1694, 71.4491},
		"shymkent":  {42.3, 69.5983},
		"karaganda": {49.8047, 73.1094},
		"aktobe":    {50.2958, 57.1667},
		"taraz":     {42.9, 71.3667},
		"pavlodar":  {52.2833, 76.9667},
		"oskemen":   {49.9894, 82.6139},
		"semey":     {50.4111, 80.2275},
	}

	coords, ok := cities[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return 0, 0, false
	}
	return coords[0], coords[1], true
}
