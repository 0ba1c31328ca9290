package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"tripmap/internal/domain/models"
	"tripmap/internal/utils"
)

// ICSFilename is the fixed download name for the calendar export.
const ICSFilename = "Japan_Trip_Itinerary.ics"

// BuildICS serializes the trip as an iCalendar document with one all-day
// event per entry spanning its inclusive date range. Entries with
// unparseable dates are skipped; they cannot be placed on a calendar.
func BuildICS(entries []models.TripEntry) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tripmap//itinerary//EN")

	for _, e := range entries {
		start, err1 := utils.ParseDate(e.StartDate)
		end, err2 := utils.ParseDate(e.EndDate)
		if err1 != nil || err2 != nil {
			continue
		}

		ev := cal.AddEvent(fmt.Sprintf("trip-%d@tripmap", e.ID))
		ev.SetDtStampTime(time.Now().UTC())
		ev.SetAllDayStartAt(start)
		// DTEND is exclusive for all-day events.
		ev.SetAllDayEndAt(end.AddDate(0, 0, 1))
		ev.SetSummary(e.Name)
		if len(e.AccommodationDetails) > 0 {
			ev.SetLocation(e.AccommodationDetails[0].Address)
		}
		if desc := entryDescription(e); desc != "" {
			ev.SetDescription(desc)
		}
	}

	return cal.Serialize()
}

func entryDescription(e models.TripEntry) string {
	var lines []string
	if e.Transport != "" {
		lines = append(lines, "Transport: "+e.Transport)
	}
	if e.Accommodation != "" {
		lines = append(lines, "Stay: "+e.Accommodation)
	}
	if len(e.DailyItinerary) > 0 {
		dates := make([]string, 0, len(e.DailyItinerary))
		for d := range e.DailyItinerary {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		for _, d := range dates {
			lines = append(lines, d+": "+strings.Join(e.DailyItinerary[d], ", "))
		}
	} else if len(e.Activities) > 0 {
		lines = append(lines, strings.Join(e.Activities, ", "))
	}
	return strings.Join(lines, "\n")
}
