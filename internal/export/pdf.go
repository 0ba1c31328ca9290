package export

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/phpdave11/gofpdf"

	"tripmap/internal/domain/models"
)

// BuildPDF renders the itinerary as an A4 PDF. Content mirrors the text
// export; emoji markers are replaced with labels because the core fonts are
// cp1252 only.
func BuildPDF(entries []models.TripEntry, stats models.Stats) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Japan Trip Itinerary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "JAPAN TRIP ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Trip Duration: November 30 - December 28 (%d days)", stats.TotalDays))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Destinations: %d | Flights: %d | Trains: %d", stats.TotalDestinations, stats.TotalFlights, stats.TotalTrains))
	pdf.Ln(10)

	for i, e := range entries {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("%d. %s", i+1, strings.ToUpper(e.Name)))
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("%s (%s)", e.Dates, e.Duration))
		pdf.Ln(6)

		if len(e.TransportDetails) > 0 {
			for _, t := range e.TransportDetails {
				line := fmt.Sprintf("%s: %s (%s | %s -> %s)", t.Type, t.Name, t.Date, t.DepartureTime, t.ArrivalTime)
				if t.BookingRef != "" {
					line += " [Ref: " + t.BookingRef + "]"
				}
				pdf.MultiCell(0, 6, "- "+line, "", "", false)
			}
		} else if e.Transport != "" {
			pdf.MultiCell(0, 6, "Transport: "+e.Transport, "", "", false)
		}

		if len(e.AccommodationDetails) > 0 {
			for _, a := range e.AccommodationDetails {
				line := fmt.Sprintf("%s (%s)", a.Name, a.Address)
				if a.BookingRef != "" {
					line += " [Ref: " + a.BookingRef + "]"
				}
				pdf.MultiCell(0, 6, "Stay: "+line, "", "", false)
			}
		} else if e.Accommodation != "" {
			pdf.MultiCell(0, 6, "Stay: "+e.Accommodation, "", "", false)
		}

		if len(e.DailyItinerary) > 0 {
			dates := make([]string, 0, len(e.DailyItinerary))
			for d := range e.DailyItinerary {
				dates = append(dates, d)
			}
			sort.Strings(dates)
			for _, d := range dates {
				pdf.SetFont("Helvetica", "I", 10)
				pdf.Cell(0, 5, d)
				pdf.Ln(5)
				pdf.SetFont("Helvetica", "", 11)
				for _, note := range e.DailyItinerary[d] {
					pdf.MultiCell(0, 6, "  * "+note, "", "", false)
				}
			}
		} else {
			for _, a := range e.Activities {
				pdf.MultiCell(0, 6, "  * "+a, "", "", false)
			}
		}

		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "Japan_Trip_Itinerary.pdf", nil
}
