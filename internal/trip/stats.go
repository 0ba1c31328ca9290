package trip

import "tripmap/internal/domain/models"

// TotalTripDays is the trip length shown on the dashboard. The trip is a
// fixed booking (Nov 30 - Dec 28); the figure does not move when entries are
// edited.
const TotalTripDays = 28

// ComputeStats recomputes the derived dashboard statistics.
func ComputeStats(entries []models.TripEntry) models.Stats {
	stats := models.Stats{
		TotalDays:         TotalTripDays,
		TotalDestinations: len(entries),
	}
	for _, e := range entries {
		for _, t := range e.TransportDetails {
			switch t.Type {
			case models.TransportFlight:
				stats.TotalFlights++
			case models.TransportTrain:
				stats.TotalTrains++
			}
		}
		switch e.Type {
		case models.TypeStay:
			stats.TotalStays++
		case models.TypeDayTrip:
			stats.TotalDayTrips++
		}
	}
	return stats
}
