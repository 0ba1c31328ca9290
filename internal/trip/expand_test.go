package trip

import (
	"testing"

	"tripmap/internal/domain/models"
)

func TestExpandDayCoverage(t *testing.T) {
	entries := []models.TripEntry{
		{ID: 1, Name: "A", StartDate: "2025-12-03", EndDate: "2025-12-05"},
		{ID: 2, Name: "B", StartDate: "2025-12-01", EndDate: "2025-12-02"},
		{ID: 3, Name: "C", StartDate: "2025-12-05", EndDate: "2025-12-08"},
	}

	days, err := Expand(entries)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}

	if len(days) != 8 {
		t.Fatalf("expected 8 days (Dec 1-8), got %d", len(days))
	}
	want := []string{
		"2025-12-01", "2025-12-02", "2025-12-03", "2025-12-04",
		"2025-12-05", "2025-12-06", "2025-12-07", "2025-12-08",
	}
	for i, d := range days {
		if d.Date != want[i] {
			t.Errorf("day %d: expected %s, got %s", i, want[i], d.Date)
		}
		if d.Index != i+1 {
			t.Errorf("day %s: expected index %d, got %d", d.Date, i+1, d.Index)
		}
	}
}

func TestExpandActiveEntries(t *testing.T) {
	entries := []models.TripEntry{
		{ID: 1, Name: "A", StartDate: "2025-12-01", EndDate: "2025-12-03"},
		{ID: 2, Name: "B", StartDate: "2025-12-03", EndDate: "2025-12-04"},
	}

	days, err := Expand(entries)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}

	activeIDs := func(d Day) []int64 {
		out := []int64{}
		for _, de := range d.Entries {
			out = append(out, de.Entry.ID)
		}
		return out
	}

	// Dec 3 overlaps: both entries active, original order preserved.
	ids := activeIDs(days[2])
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("Dec 3: expected active entries [1 2], got %v", ids)
	}
	if got := activeIDs(days[0]); len(got) != 1 || got[0] != 1 {
		t.Fatalf("Dec 1: expected [1], got %v", got)
	}
	if got := activeIDs(days[3]); len(got) != 1 || got[0] != 2 {
		t.Fatalf("Dec 4: expected [2], got %v", got)
	}
}

func TestExpandEmptyInput(t *testing.T) {
	if _, err := Expand(nil); err != ErrNoEntries {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}
	if _, err := Expand([]models.TripEntry{}); err != ErrNoEntries {
		t.Fatalf("expected ErrNoEntries for empty slice, got %v", err)
	}
}

func TestExpandTransportSurfacing(t *testing.T) {
	entries := []models.TripEntry{
		{
			ID: 1, Name: "Beppu", StartDate: "2025-12-10", EndDate: "2025-12-12",
			Transport: "Local Bus",
			TransportDetails: []models.TransportDetail{
				{Type: "Train", Name: "Yufu 3", Date: "2025-12-10"},
				{Type: "Train", Name: "Sonic 8", Date: "2025-12-12"},
			},
		},
	}

	days, err := Expand(entries)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}

	// Day one: only the detail item dated that day, no legacy fallback.
	d0 := days[0].Entries[0]
	if len(d0.Transports) != 1 || d0.Transports[0].Name != "Yufu 3" {
		t.Fatalf("day 1: expected [Yufu 3], got %+v", d0.Transports)
	}
	if d0.TransportFallback != "" {
		t.Fatalf("day 1: unexpected fallback %q", d0.TransportFallback)
	}

	// Middle day: nothing matches, and it is not the start date.
	d1 := days[1].Entries[0]
	if len(d1.Transports) != 0 || d1.TransportFallback != "" {
		t.Fatalf("day 2: expected no transport, got %+v / %q", d1.Transports, d1.TransportFallback)
	}

	d2 := days[2].Entries[0]
	if len(d2.Transports) != 1 || d2.Transports[0].Name != "Sonic 8" {
		t.Fatalf("day 3: expected [Sonic 8], got %+v", d2.Transports)
	}
}

func TestExpandTransportLegacyFallback(t *testing.T) {
	entries := []models.TripEntry{
		{ID: 1, Name: "Sapporo", StartDate: "2025-12-01", EndDate: "2025-12-02", Transport: "Local JR + Bus"},
	}

	days, _ := Expand(entries)
	if got := days[0].Entries[0].TransportFallback; got != "Local JR + Bus" {
		t.Fatalf("start date: expected legacy transport, got %q", got)
	}
	if got := days[1].Entries[0].TransportFallback; got != "" {
		t.Fatalf("later day: expected no fallback, got %q", got)
	}
}

func TestExpandAccommodationEveryDay(t *testing.T) {
	withDetails := models.TripEntry{
		ID: 1, Name: "Sapporo", StartDate: "2025-12-01", EndDate: "2025-12-03",
		Accommodation: "Hotel (Booking.com)",
		AccommodationDetails: []models.AccommodationDetail{
			{Name: "JR Inn", Address: "Sapporo"},
		},
	}
	withLegacy := models.TripEntry{
		ID: 2, Name: "Osaka", StartDate: "2025-12-01", EndDate: "2025-12-03",
		Accommodation: "Airbnb",
	}

	days, _ := Expand([]models.TripEntry{withDetails, withLegacy})
	for _, d := range days {
		de := d.Entries[0]
		if len(de.Accommodations) != 1 || de.Accommodations[0].Name != "JR Inn" {
			t.Fatalf("%s: expected detailed accommodation on every day, got %+v", d.Date, de.Accommodations)
		}
		if de.AccommodationFallback != "" {
			t.Fatalf("%s: details present, fallback should be empty", d.Date)
		}
		legacy := d.Entries[1]
		if legacy.AccommodationFallback != "Airbnb" {
			t.Fatalf("%s: expected legacy accommodation on every day, got %q", d.Date, legacy.AccommodationFallback)
		}
	}
}

func TestExpandNotesAndActivityFallback(t *testing.T) {
	entries := []models.TripEntry{
		{
			ID: 1, Name: "Sapporo", StartDate: "2025-12-01", EndDate: "2025-12-03",
			Activities: []string{"Visit Otaru"},
			DailyItinerary: map[string][]string{
				"2025-12-02": {"Klook Tour"},
			},
		},
		{
			ID: 2, Name: "Yufuin", StartDate: "2025-12-01", EndDate: "2025-12-01",
			Activities:     []string{"Scenic train journey"},
			DailyItinerary: map[string][]string{},
		},
	}

	days, _ := Expand(entries)

	// Entry 1 has a daily itinerary: notes only on the keyed day, no
	// activity fallback on the others (the fallback is global, not per-day).
	if got := days[0].Entries[0]; len(got.Notes) != 0 || len(got.Activities) != 0 {
		t.Fatalf("day 1 entry 1: expected neither notes nor activities, got %+v", got)
	}
	if got := days[1].Entries[0]; len(got.Notes) != 1 || got.Notes[0] != "Klook Tour" {
		t.Fatalf("day 2 entry 1: expected Klook Tour note, got %+v", got.Notes)
	}

	// Entry 2 has an empty daily itinerary: activities surface on every
	// active day.
	if got := days[0].Entries[1]; len(got.Activities) != 1 || got.Activities[0] != "Scenic train journey" {
		t.Fatalf("day 1 entry 2: expected activities fallback, got %+v", got)
	}
}

func TestExpandSurfacesCachedWeather(t *testing.T) {
	entries := []models.TripEntry{
		{
			ID: 1, Name: "Sapporo", StartDate: "2025-12-01", EndDate: "2025-12-02",
			DailyWeather: map[string]string{"2025-12-01": "❄️ Snowy -2°C"},
		},
	}

	days, _ := Expand(entries)
	if got := days[0].Entries[0].Weather; got != "❄️ Snowy -2°C" {
		t.Fatalf("expected cached weather string, got %q", got)
	}
	if got := days[1].Entries[0].Weather; got != "" {
		t.Fatalf("expected no weather for uncached day, got %q", got)
	}
}

func TestExpandSkipsMalformedDates(t *testing.T) {
	entries := []models.TripEntry{
		{ID: 1, Name: "Bad", StartDate: "not-a-date", EndDate: "2025-12-02"},
		{ID: 2, Name: "Good", StartDate: "2025-12-01", EndDate: "2025-12-01"},
	}

	days, err := Expand(entries)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(days) != 1 || len(days[0].Entries) != 1 || days[0].Entries[0].Entry.ID != 2 {
		t.Fatalf("expected the malformed entry to be excluded, got %+v", days)
	}
}
