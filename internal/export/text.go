package export

import (
	"fmt"
	"sort"
	"strings"

	"tripmap/internal/domain/models"
)

// TextFilename is the fixed download name for the plain-text itinerary.
const TextFilename = "Japan_Trip_Itinerary.txt"

// BuildText renders the whole itinerary as a UTF-8 plain-text document:
// header banner, trip totals, then one block per entry separated by a rule.
func BuildText(entries []models.TripEntry, stats models.Stats) string {
	var b strings.Builder

	b.WriteString("🗾 JAPAN TRIP ITINERARY\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Trip Duration: November 30 - December 28 (%d days)\n", stats.TotalDays)
	fmt.Fprintf(&b, "Total Destinations: %d\n", stats.TotalDestinations)
	fmt.Fprintf(&b, "Flights: %d | Trains: %d\n\n", stats.TotalFlights, stats.TotalTrains)
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.ToUpper(e.Name))
		fmt.Fprintf(&b, "   📅 %s (%s)\n", e.Dates, e.Duration)

		if len(e.TransportDetails) > 0 {
			b.WriteString("   🚄 Transport Details:\n")
			for _, t := range e.TransportDetails {
				ref := ""
				if t.BookingRef != "" {
					ref = fmt.Sprintf("[Ref: %s]", t.BookingRef)
				}
				fmt.Fprintf(&b, "      - %s: %s (%s | %s -> %s) %s\n", t.Type, t.Name, t.Date, t.DepartureTime, t.ArrivalTime, ref)
			}
		} else if e.Transport != "" {
			fmt.Fprintf(&b, "   🚌 Transport: %s\n", e.Transport)
		}

		if len(e.AccommodationDetails) > 0 {
			b.WriteString("   🏨 Accommodation Details:\n")
			for _, a := range e.AccommodationDetails {
				ref := ""
				if a.BookingRef != "" {
					ref = fmt.Sprintf("[Ref: %s]", a.BookingRef)
				}
				fmt.Fprintf(&b, "      - %s (%s) %s\n", a.Name, a.Address, ref)
			}
		} else if e.Accommodation != "" {
			fmt.Fprintf(&b, "   🏨 Accommodation: %s\n", e.Accommodation)
		}

		if len(e.DailyItinerary) > 0 {
			b.WriteString("   📝 Daily Plan:\n")
			dates := make([]string, 0, len(e.DailyItinerary))
			for d := range e.DailyItinerary {
				dates = append(dates, d)
			}
			sort.Strings(dates)
			for _, d := range dates {
				fmt.Fprintf(&b, "      [%s]:\n", d)
				for _, note := range e.DailyItinerary[d] {
					fmt.Fprintf(&b, "        • %s\n", note)
				}
			}
		} else {
			b.WriteString("   🎯 Activities:\n")
			for _, a := range e.Activities {
				fmt.Fprintf(&b, "      • %s\n", a)
			}
		}

		b.WriteString("\n" + strings.Repeat("-", 30) + "\n\n")
	}

	return b.String()
}
