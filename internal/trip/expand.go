package trip

import (
	"errors"
	"time"

	"tripmap/internal/domain/models"
	"tripmap/internal/utils"
)

// ErrNoEntries is returned by Expand when the collection is empty: with no
// entries there is no defined min/max date. Callers render an empty state
// instead of calling Expand.
var ErrNoEntries = errors.New("expand: no entries")

// DayEntry is one entry active on a given day, with the items that should be
// surfaced for exactly that day.
type DayEntry struct {
	Entry models.TripEntry `json:"entry"`

	// Transports holds detail items whose date equals the day. When the
	// entry has no detail items at all and the day is its start date, the
	// legacy summary string is surfaced instead.
	Transports        []models.TransportDetail `json:"transports,omitempty"`
	TransportFallback string                   `json:"transportFallback,omitempty"`

	// Accommodations are shown on every active day, not just check-in.
	Accommodations        []models.AccommodationDetail `json:"accommodations,omitempty"`
	AccommodationFallback string                       `json:"accommodationFallback,omitempty"`

	// Notes come from dailyItinerary[day]; Activities is the global fallback
	// list, set only when the entry has no daily itinerary at all.
	Notes      []string `json:"notes,omitempty"`
	Activities []string `json:"activities,omitempty"`

	// Weather is the entry's cached display string for the day, if any.
	Weather string `json:"weather,omitempty"`
}

// Day is one calendar date of the trip with everything active on it.
type Day struct {
	Date    string     `json:"date"`
	Index   int        `json:"index"` // 1-based trip day number
	Entries []DayEntry `json:"entries"`
}

// Expand produces one Day per calendar date between the earliest and latest
// date across all entries, inclusive and ascending. A pure function of the
// entries: "today" plays no part here.
func Expand(entries []models.TripEntry) ([]Day, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	type window struct {
		start, end time.Time
		ok         bool
	}
	windows := make([]window, len(entries))

	var minDate, maxDate time.Time
	haveBounds := false
	for i, e := range entries {
		start, err1 := utils.ParseDate(e.StartDate)
		end, err2 := utils.ParseDate(e.EndDate)
		if err1 != nil || err2 != nil {
			// Malformed dates exclude the entry from the timeline but must
			// not break the rest of the trip.
			continue
		}
		windows[i] = window{start: start, end: end, ok: true}
		if !haveBounds {
			minDate, maxDate = start, end
			haveBounds = true
		}
		if start.Before(minDate) {
			minDate = start
		}
		if end.Before(minDate) {
			minDate = end
		}
		if end.After(maxDate) {
			maxDate = end
		}
		if start.After(maxDate) {
			maxDate = start
		}
	}
	if !haveBounds {
		return nil, ErrNoEntries
	}

	days := make([]Day, 0, int(maxDate.Sub(minDate).Hours()/24)+1)
	index := 0
	for d := minDate; !d.After(maxDate); d = d.AddDate(0, 0, 1) {
		index++
		dateStr := utils.FormatDate(d)
		day := Day{Date: dateStr, Index: index}

		for i, e := range entries {
			w := windows[i]
			if !w.ok || d.Before(w.start) || d.After(w.end) {
				continue
			}
			day.Entries = append(day.Entries, buildDayEntry(e, d, dateStr, w.start))
		}
		days = append(days, day)
	}
	return days, nil
}

func buildDayEntry(e models.TripEntry, day time.Time, dateStr string, start time.Time) DayEntry {
	de := DayEntry{Entry: e}

	for _, t := range e.TransportDetails {
		td, err := utils.ParseDate(t.Date)
		if err == nil && td.Equal(day) {
			de.Transports = append(de.Transports, t)
		}
	}
	if len(de.Transports) == 0 && day.Equal(start) && e.Transport != "" {
		de.TransportFallback = e.Transport
	}

	if len(e.AccommodationDetails) > 0 {
		de.Accommodations = e.AccommodationDetails
	} else if e.Accommodation != "" {
		de.AccommodationFallback = e.Accommodation
	}

	if notes, ok := e.DailyItinerary[dateStr]; ok {
		de.Notes = notes
	} else if len(e.DailyItinerary) == 0 {
		de.Activities = e.Activities
	}

	if w, ok := e.DailyWeather[dateStr]; ok {
		de.Weather = w
	}
	return de
}
