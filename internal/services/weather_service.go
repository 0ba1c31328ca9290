package services

import (
	"context"
	"fmt"
	"sync"

	"tripmap/internal/trip"
	"tripmap/internal/utils"
	"tripmap/internal/weather"
)

// WeatherService drives the two lookup flows over the store: the concurrent
// today back-fill and the sequential per-entry sidebar resolution.
type WeatherService struct {
	Store     *trip.Store
	Resolver  *weather.Resolver
	RequestID string

	// Today is injectable for tests; defaults to the current calendar date.
	Today func() string
}

// RefreshToday fills dailyWeather[today] for every entry that does not have
// it yet. Entries resolve concurrently — they are independent lookups — and
// the commit goes through the store's fill-if-absent cache, so a lookup that
// straggles past a newer value is discarded rather than overwriting it.
// Returns how many entries were filled.
func (s WeatherService) RefreshToday(ctx context.Context) int {
	today := s.today()
	entries := s.Store.List()

	var wg sync.WaitGroup
	var mu sync.Mutex
	filled := 0

	for _, e := range entries {
		if _, ok := e.DailyWeather[today]; ok {
			continue
		}
		wg.Add(1)
		go func(id int64, lat, lon float64) {
			defer wg.Done()
			result := s.Resolver.Resolve(ctx, lat, lon, today)
			if s.Store.SetDailyWeather(id, today, result) {
				mu.Lock()
				filled++
				mu.Unlock()
			}
		}(e.ID, e.Coords[0], e.Coords[1])
	}
	wg.Wait()

	utils.LogEvent(s.RequestID, "weather", "refresh_today", fmt.Sprintf("filled=%d date=%s", filled, today))
	return filled
}

// SidebarWeather resolves each entry's start-date weather one at a time,
// awaiting each lookup before starting the next. Deliberately sequential to
// avoid hammering the API; later entries simply appear later.
func (s WeatherService) SidebarWeather(ctx context.Context) map[int64]string {
	out := map[int64]string{}
	for _, e := range s.Store.List() {
		select {
		case <-ctx.Done():
			return out
		default:
		}
		out[e.ID] = s.Resolver.Resolve(ctx, e.Coords[0], e.Coords[1], e.StartDate)
	}
	return out
}

func (s WeatherService) today() string {
	if s.Today != nil {
		return s.Today()
	}
	return utils.Today()
}
