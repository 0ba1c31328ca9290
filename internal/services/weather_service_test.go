package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tripmap/internal/domain/models"
	"tripmap/internal/trip"
	"tripmap/internal/weather"
)

func weatherFixture(t *testing.T) (*trip.Store, *weather.Resolver, *int64) {
	t.Helper()

	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		fmt.Fprint(w, `{"daily":{"time":["x"],"weather_code":[0],"temperature_2m_max":[20],"temperature_2m_min":[10]}}`)
	}))
	t.Cleanup(srv.Close)

	store := trip.NewStore([]models.TripEntry{
		{ID: 1, Name: "Tokyo", Coords: [2]float64{35.68, 139.65}, StartDate: "2025-06-03", EndDate: "2025-06-05"},
		{
			ID: 2, Name: "Sapporo", Coords: [2]float64{43.06, 141.35}, StartDate: "2025-06-05", EndDate: "2025-06-08",
			DailyWeather: map[string]string{"2025-06-02": "⛅ 18°C / 9°C"},
		},
		{ID: 3, Name: "Osaka", Coords: [2]float64{34.69, 135.50}, StartDate: "2025-06-09", EndDate: "2025-06-12"},
	})

	r := weather.NewResolver(srv.URL, srv.URL, 5*time.Second, nil)
	r.Now = func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) }
	return store, r, &calls
}

func TestRefreshTodayFillsMissingOnly(t *testing.T) {
	store, resolver, calls := weatherFixture(t)
	svc := WeatherService{
		Store:    store,
		Resolver: resolver,
		Today:    func() string { return "2025-06-02" },
	}

	filled := svc.RefreshToday(context.Background())
	if filled != 2 {
		t.Fatalf("expected 2 entries filled (entry 2 already cached), got %d", filled)
	}
	if got := atomic.LoadInt64(calls); got != 2 {
		t.Fatalf("expected 2 lookups, got %d", got)
	}

	e1, _ := store.Get(1)
	if e1.DailyWeather["2025-06-02"] != "☀️ 20°C / 10°C" {
		t.Fatalf("entry 1 not back-filled: %q", e1.DailyWeather["2025-06-02"])
	}
	e2, _ := store.Get(2)
	if e2.DailyWeather["2025-06-02"] != "⛅ 18°C / 9°C" {
		t.Fatalf("existing cache value overwritten: %q", e2.DailyWeather["2025-06-02"])
	}
}

func TestRefreshTodayIdempotent(t *testing.T) {
	store, resolver, _ := weatherFixture(t)
	svc := WeatherService{
		Store:    store,
		Resolver: resolver,
		Today:    func() string { return "2025-06-02" },
	}

	svc.RefreshToday(context.Background())
	if filled := svc.RefreshToday(context.Background()); filled != 0 {
		t.Fatalf("second refresh should fill nothing, got %d", filled)
	}
}

func TestSidebarWeatherResolvesEveryEntry(t *testing.T) {
	store, resolver, calls := weatherFixture(t)
	svc := WeatherService{Store: store, Resolver: resolver}

	got := svc.SidebarWeather(context.Background())
	if len(got) != 3 {
		t.Fatalf("expected a result per entry, got %d", len(got))
	}
	for id, display := range got {
		if display != "☀️ 20°C / 10°C" {
			t.Errorf("entry %d: unexpected display %q", id, display)
		}
	}
	if got := atomic.LoadInt64(calls); got != 3 {
		t.Fatalf("expected 3 sequential lookups, got %d", got)
	}
}

func TestSidebarWeatherStopsOnCancel(t *testing.T) {
	store, resolver, _ := weatherFixture(t)
	svc := WeatherService{Store: store, Resolver: resolver}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := svc.SidebarWeather(ctx); len(got) != 0 {
		t.Fatalf("cancelled context should stop before the first lookup, got %v", got)
	}
}
