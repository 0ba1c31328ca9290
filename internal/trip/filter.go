package trip

import (
	"strings"

	"tripmap/internal/domain/models"
)

// MatchesType reports whether the entry passes the sidebar type filter.
// "all" (or an empty filter) matches everything, anything else is an exact
// comparison against the entry type.
func MatchesType(e models.TripEntry, typeFilter string) bool {
	if typeFilter == "" || typeFilter == "all" {
		return true
	}
	return e.Type == typeFilter
}

// Matches reports whether the free-text query hits any searchable field.
// Matching is a case-insensitive substring test; absent fields are simply
// skipped, so a sparse or malformed entry can never fail the scan.
func Matches(e models.TripEntry, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	contains := func(s string) bool {
		return s != "" && strings.Contains(strings.ToLower(s), query)
	}

	dates := e.Dates
	if dates == "" && e.StartDate != "" {
		dates = e.StartDate + " - " + e.EndDate
	}
	if contains(e.Name) || contains(dates) || contains(e.Accommodation) || contains(e.Transport) {
		return true
	}
	for _, a := range e.Activities {
		if contains(a) {
			return true
		}
	}
	for _, t := range e.TransportDetails {
		if contains(t.Name) || contains(t.Type) || contains(t.BookingRef) {
			return true
		}
	}
	for _, a := range e.AccommodationDetails {
		if contains(a.Name) || contains(a.Address) || contains(a.BookingRef) {
			return true
		}
	}
	for _, notes := range e.DailyItinerary {
		for _, n := range notes {
			if contains(n) {
				return true
			}
		}
	}
	return false
}

// Filter returns the subsequence of entries passing both the type filter and
// the text query, preserving the original relative order.
func Filter(entries []models.TripEntry, query, typeFilter string) []models.TripEntry {
	out := make([]models.TripEntry, 0, len(entries))
	for _, e := range entries {
		if MatchesType(e, typeFilter) && Matches(e, query) {
			out = append(out, e)
		}
	}
	return out
}
