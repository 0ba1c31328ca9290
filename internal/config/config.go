package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default open-meteo endpoints. Overridable for tests and proxies.
const (
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
	defaultArchiveURL  = "https://archive-api.open-meteo.com/v1/archive"
)

type Config struct {
	AppAddr string
	GinMode string

	// EditingEnabled gates every mutating route. The deployed (public) copy
	// runs read-only; only a local instance may edit.
	EditingEnabled bool
	Theme          string

	CORSAllowedOrigins []string

	WeatherForecastURL string
	WeatherArchiveURL  string
	WeatherTimeout     time.Duration

	// SnapshotBaseURL is the address chromedp navigates to for the PNG
	// export, normally this server's own listen address.
	SnapshotBaseURL string
}

// Load reads .env (when present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppAddr = getenvDefault("APP_ADDR", ":8080")
	cfg.GinMode = strings.TrimSpace(os.Getenv("GIN_MODE"))
	cfg.Theme = getenvDefault("THEME", "light")

	if v := strings.TrimSpace(os.Getenv("EDITING_ENABLED")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid EDITING_ENABLED: %q", v)
		}
		cfg.EditingEnabled = b
	}

	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	} else {
		cfg.CORSAllowedOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	cfg.WeatherForecastURL = getenvDefault("WEATHER_FORECAST_URL", defaultForecastURL)
	cfg.WeatherArchiveURL = getenvDefault("WEATHER_ARCHIVE_URL", defaultArchiveURL)

	if v := strings.TrimSpace(os.Getenv("WEATHER_TIMEOUT_MS")); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("invalid WEATHER_TIMEOUT_MS: %q", v)
		}
		cfg.WeatherTimeout = time.Duration(ms) * time.Millisecond
	} else {
		cfg.WeatherTimeout = 10 * time.Second
	}

	cfg.SnapshotBaseURL = getenvDefault("SNAPSHOT_BASE_URL", "http://127.0.0.1"+portSuffix(cfg.AppAddr))

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func portSuffix(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i:]
	}
	return ":8080"
}
