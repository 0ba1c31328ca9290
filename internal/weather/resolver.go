// Package weather resolves a human-readable weather string for a coordinate
// and calendar date against open-meteo. Dates within the next two weeks use
// the forecast endpoint; anything further out is estimated from last year's
// archive, and past dates are read from the archive as-is.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"tripmap/internal/metrics"
	"tripmap/internal/utils"
)

// Display strings for the two contained failure modes. Resolution never
// returns an error to the caller; these are what the UI shows.
const (
	ResultNA    = "N/A"
	ResultError = "Error"
)

const forecastHorizonDays = 14

// Resolver is safe for concurrent use.
type Resolver struct {
	ForecastURL string
	ArchiveURL  string
	Client      *http.Client
	Metrics     *metrics.Collector

	// Now is the clock used for the forecast/archive decision. Tests pin it.
	Now func() time.Time
}

func NewResolver(forecastURL, archiveURL string, timeout time.Duration, m *metrics.Collector) *Resolver {
	return &Resolver{
		ForecastURL: forecastURL,
		ArchiveURL:  archiveURL,
		Client:      &http.Client{Timeout: timeout},
		Metrics:     m,
	}
}

type dailyResponse struct {
	Daily struct {
		Time        []string  `json:"time"`
		WeatherCode []int     `json:"weather_code"`
		TempMax     []float64 `json:"temperature_2m_max"`
		TempMin     []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

// Resolve returns the display string for the given coordinate and ISO date.
// Network and parse failures are contained: the result is always a string.
func (r *Resolver) Resolve(ctx context.Context, lat, lon float64, dateStr string) string {
	target, err := utils.ParseDate(dateStr)
	if err != nil {
		utils.LogEvent("", "weather", "resolve", "invalid date "+dateStr)
		r.Metrics.ObserveWeatherError()
		return ResultError
	}

	diffDays := int(math.Ceil(target.Sub(r.now()).Hours() / 24))

	if diffDays >= 0 && diffDays <= forecastHorizonDays {
		out, ok := r.fetchDaily(ctx, r.ForecastURL, "forecast", lat, lon, dateStr)
		if !ok {
			return ResultError
		}
		return out.format("")
	}

	// Beyond the horizon we estimate from the archive: same calendar date,
	// previous year when the date is still ahead of us.
	queryDate := target
	if diffDays > forecastHorizonDays {
		queryDate = queryDate.AddDate(-1, 0, 0)
	}
	out, ok := r.fetchDaily(ctx, r.ArchiveURL, "archive", lat, lon, utils.FormatDate(queryDate))
	if !ok {
		return ResultError
	}
	return out.format("Typical: ")
}

type dailyRecord struct {
	empty bool
	code  int
	max   float64
	min   float64
}

func (d dailyRecord) format(prefix string) string {
	if d.empty {
		return ResultNA
	}
	return fmt.Sprintf("%s %s%.0f°C / %.0f°C", IconForCode(d.code), prefix, math.Round(d.max), math.Round(d.min))
}

func (r *Resolver) fetchDaily(ctx context.Context, baseURL, endpoint string, lat, lon float64, dateStr string) (dailyRecord, bool) {
	r.Metrics.ObserveLookup(endpoint)

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%g", lat))
	q.Set("longitude", fmt.Sprintf("%g", lon))
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	q.Set("timezone", "auto")
	q.Set("start_date", dateStr)
	q.Set("end_date", dateStr)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return r.fail(endpoint, err)
	}

	resp, err := r.client().Do(req)
	if err != nil {
		return r.fail(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return r.fail(endpoint, fmt.Errorf("status %d", resp.StatusCode))
	}

	var data dailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return r.fail(endpoint, err)
	}

	d := data.Daily
	if len(d.Time) == 0 || len(d.WeatherCode) == 0 || len(d.TempMax) == 0 || len(d.TempMin) == 0 {
		return dailyRecord{empty: true}, true
	}
	return dailyRecord{code: d.WeatherCode[0], max: d.TempMax[0], min: d.TempMin[0]}, true
}

func (r *Resolver) fail(endpoint string, err error) (dailyRecord, bool) {
	utils.LogEvent("", "weather", endpoint, "lookup failed: "+err.Error())
	r.Metrics.ObserveWeatherError()
	return dailyRecord{}, false
}

func (r *Resolver) client() *http.Client {
	if r.Client != nil {
		return r.Client
	}
	return http.DefaultClient
}

func (r *Resolver) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// IconForCode maps a WMO weather interpretation code to its display glyph.
// Codes outside the known ranges fall through to the thermometer.
func IconForCode(code int) string {
	switch {
	case code == 0:
		return "☀️"
	case code >= 1 && code <= 3:
		return "⛅"
	case code == 45 || code == 48:
		return "🌫️"
	case code >= 51 && code <= 55:
		return "🌧️"
	case code >= 61 && code <= 65:
		return "🌧️"
	case code >= 71 && code <= 77:
		return "❄️"
	case code >= 80 && code <= 82:
		return "🌦️"
	case code >= 85 && code <= 86:
		return "🌨️"
	case code >= 95:
		return "⛈️"
	default:
		return "🌡️"
	}
}
