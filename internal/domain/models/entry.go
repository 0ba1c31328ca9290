package models

// Entry types. Anything else is tolerated but never counted in stats.
const (
	TypeStay    = "stay"
	TypeTransit = "transit"
	TypeDayTrip = "daytrip"
)

// Transport detail types that contribute to trip statistics.
const (
	TransportFlight = "Flight"
	TransportTrain  = "Train"
)

// TransportDetail is one booked leg (flight, train, ...) tied to a calendar date.
type TransportDetail struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	Date          string `json:"date"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	BookingRef    string `json:"bookingRef,omitempty"`
	Link          string `json:"link,omitempty"`
}

// AccommodationDetail is one booked place to sleep.
type AccommodationDetail struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	BookingRef string `json:"bookingRef,omitempty"`
	Link       string `json:"link,omitempty"`
}

// TripEntry is one destination/leg of the trip. Dates are ISO YYYY-MM-DD,
// both ends inclusive. Transport/Accommodation are legacy summary strings kept
// alongside the structured detail lists; DailyItinerary and DailyWeather are
// sparse maps keyed by ISO date — a missing key means "nothing recorded", not
// an error.
type TripEntry struct {
	ID                   int64                 `json:"id"`
	Name                 string                `json:"name"`
	Coords               [2]float64            `json:"coords"`
	StartDate            string                `json:"startDate"`
	EndDate              string                `json:"endDate"`
	Dates                string                `json:"dates,omitempty"`
	Duration             string                `json:"duration,omitempty"`
	Type                 string                `json:"type"`
	Color                string                `json:"color,omitempty"`
	Activities           []string              `json:"activities,omitempty"`
	Transport            string                `json:"transport,omitempty"`
	ArrivalTransport     string                `json:"arrivalTransport,omitempty"`
	Accommodation        string                `json:"accommodation,omitempty"`
	TransportDetails     []TransportDetail     `json:"transportDetails,omitempty"`
	AccommodationDetails []AccommodationDetail `json:"accommodationDetails,omitempty"`
	DailyItinerary       map[string][]string   `json:"dailyItinerary,omitempty"`
	DailyWeather         map[string]string     `json:"dailyWeather,omitempty"`
}

// Clone returns a deep copy so callers can mutate the result without
// touching the store's state.
func (e TripEntry) Clone() TripEntry {
	out := e
	if e.Activities != nil {
		out.Activities = append([]string(nil), e.Activities...)
	}
	if e.TransportDetails != nil {
		out.TransportDetails = append([]TransportDetail(nil), e.TransportDetails...)
	}
	if e.AccommodationDetails != nil {
		out.AccommodationDetails = append([]AccommodationDetail(nil), e.AccommodationDetails...)
	}
	if e.DailyItinerary != nil {
		out.DailyItinerary = make(map[string][]string, len(e.DailyItinerary))
		for k, v := range e.DailyItinerary {
			out.DailyItinerary[k] = append([]string(nil), v...)
		}
	}
	if e.DailyWeather != nil {
		out.DailyWeather = make(map[string]string, len(e.DailyWeather))
		for k, v := range e.DailyWeather {
			out.DailyWeather[k] = v
		}
	}
	return out
}

// Stats summarizes the whole trip for the dashboard.
type Stats struct {
	TotalDays         int `json:"totalDays"`
	TotalDestinations int `json:"totalDestinations"`
	TotalFlights      int `json:"totalFlights"`
	TotalTrains       int `json:"totalTrains"`
	TotalStays        int `json:"totalStays"`
	TotalDayTrips     int `json:"totalDayTrips"`
}
