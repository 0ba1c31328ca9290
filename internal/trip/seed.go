package trip

import "tripmap/internal/domain/models"

// DefaultCoords is where new entries land when the editor supplies none.
var DefaultCoords = [2]float64{35.6764, 139.6500}

// SeedEntries returns the fixed trip the service boots with. There is no
// backing store; a restart reverts to this list.
func SeedEntries() []models.TripEntry {
	return []models.TripEntry{
		{
			ID:         1,
			Name:       "Tokyo (Start)",
			Coords:     [2]float64{35.6764, 139.6500},
			StartDate:  "2025-11-30",
			EndDate:    "2025-11-30",
			Dates:      "Nov 30",
			Duration:   "1 day (transit)",
			Type:       models.TypeTransit,
			Color:      "#FF6B6B",
			Activities: []string{"Arrive in Tokyo", "Transfer to domestic terminal"},
			Transport:  "ANA NH838 (05:55) + NH59 (10:00)",
			Accommodation: "Transit only",
			TransportDetails: []models.TransportDetail{
				{Type: models.TransportFlight, Name: "ANA NH838", Date: "2025-11-30", DepartureTime: "05:55", ArrivalTime: "08:00", Link: "https://www.ana.co.jp/en/jp/"},
				{Type: models.TransportFlight, Name: "ANA NH59", Date: "2025-11-30", DepartureTime: "10:00", ArrivalTime: "11:35"},
			},
			DailyItinerary: map[string][]string{
				"2025-11-30": {"Arrive in Tokyo", "Transfer to domestic terminal"},
			},
			DailyWeather: map[string]string{
				"2025-11-30": "☁️ Cloudy 12°C",
			},
		},
		{
			ID:        2,
			Name:      "Sapporo",
			Coords:    [2]float64{43.0618, 141.3545},
			StartDate: "2025-11-30",
			EndDate:   "2025-12-05",
			Dates:     "Nov 30 - Dec 5",
			Duration:  "5 nights",
			Type:      models.TypeStay,
			Color:     "#4ECDC4",
			Activities: []string{
				"Visit Otaru", "Klook Tour", "Hill of Buddha", "Chill in Sapporo",
				"Odori Park", "Clock Tower", "Checkout at 10 AM",
				"Transfer to domestic terminal", "Departure at 2:25 PM",
			},
			Transport:     "Local JR + Bus",
			Accommodation: "Hotel (Booking.com)",
			AccommodationDetails: []models.AccommodationDetail{
				{Name: "JR Inn Sapporo Kita 2 Jo", Address: "060-0002 Hokkaido, Sapporo, Chuo-ku Kita 2Jo Nishi 2-8-1", BookingRef: "Booking.com", Link: "https://www.booking.com"},
			},
			DailyItinerary: map[string][]string{
				"2025-12-01": {"Visit Otaru"},
				"2025-12-02": {"Klook Tour"},
				"2025-12-03": {"Hill of Buddha"},
				"2025-12-04": {"Chill in Sapporo", "Odori Park", "Clock Tower"},
				"2025-12-05": {"Checkout at 10 AM", "Transfer to domestic terminal", "Departure at 2:25 PM"},
			},
			DailyWeather: map[string]string{
				"2025-12-01": "❄️ Snowy -2°C",
				"2025-12-02": "❄️ Heavy Snow -4°C",
			},
		},
		{
			ID:        3,
			Name:      "Fukuoka",
			Coords:    [2]float64{33.5904, 130.4017},
			StartDate: "2025-12-05",
			EndDate:   "2025-12-10",
			Dates:     "Dec 5 - Dec 10",
			Duration:  "5 nights",
			Type:      models.TypeStay,
			Color:     "#4ECDC4",
			Activities: []string{
				"Klook Tour", "Dazaifu", "Nanzoin", "Explore Fukuoka city",
				"Checkout at 8 AM", "Transfer to Hakata Station", "Train to Yufuin",
			},
			Transport:        "Subway / JR / Nishitetsu",
			ArrivalTransport: "ANA NH290 (14:25 → 17:05)",
			TransportDetails: []models.TransportDetail{
				{Type: models.TransportFlight, Name: "ANA NH290", Date: "2025-12-05", DepartureTime: "14:25", ArrivalTime: "17:05"},
			},
			AccommodationDetails: []models.AccommodationDetail{
				{Name: "APA Hotel & Resort Hakata Ekihigashi", Address: "1-18-1 Hakataekihigashi, Hakata-ku", BookingRef: "Agoda"},
			},
			DailyItinerary: map[string][]string{
				"2025-12-06": {"Klook Tour"},
				"2025-12-07": {"Dazaifu"},
				"2025-12-08": {"Nanzoin"},
				"2025-12-09": {"Explore Fukuoka city"},
				"2025-12-10": {"Checkout at 8 AM", "Transfer to Hakata Station", "Train to Yufuin"},
			},
		},
		{
			ID:            4,
			Name:          "Yufuin",
			Coords:        [2]float64{33.2667, 131.3667},
			StartDate:     "2025-12-10",
			EndDate:       "2025-12-10",
			Dates:         "Dec 10",
			Duration:      "Day trip",
			Type:          models.TypeDayTrip,
			Color:         "#FFE66D",
			Activities:    []string{"Scenic train journey", "Hot springs town visit"},
			Transport:     "Yufuin no Mori (09:17 → 11:36)",
			Accommodation: "Day trip from Hakata",
			TransportDetails: []models.TransportDetail{
				{Type: models.TransportTrain, Name: "Yufuin no Mori", Date: "2025-12-10", DepartureTime: "09:17", ArrivalTime: "11:36", BookingRef: "Klook"},
			},
			DailyItinerary: map[string][]string{},
		},
		{
			ID:        5,
			Name:      "Beppu",
			Coords:    [2]float64{33.2742, 131.4912},
			StartDate: "2025-12-10",
			EndDate:   "2025-12-12",
			Dates:     "Dec 10 - Dec 12",
			Duration:  "2 nights",
			Type:      models.TypeStay,
			Color:     "#4ECDC4",
			Activities: []string{
				"Hells of Beppu", "Checkout at 6 AM", "Transfer to Beppu Station", "Train to Hakata",
			},
			Transport:        "Local Bus / Onsen visits",
			ArrivalTransport: "Yufu 3 (14:42 → 15:31)",
			Accommodation:    "Airbnb",
			TransportDetails: []models.TransportDetail{
				{Type: models.TransportTrain, Name: "Yufu 3", Date: "2025-12-10", DepartureTime: "14:42", ArrivalTime: "15:31", BookingRef: "Klook"},
				{Type: models.TransportTrain, Name: "Sonic 8", Date: "2025-12-12", DepartureTime: "07:22", ArrivalTime: "09:40", BookingRef: "Kyushu Rail"},
			},
			AccommodationDetails: []models.AccommodationDetail{
				{Name: "Mitomi SPA", Address: "874-0037, 大分県, 別府市, Kannawa, 大観山町4組", BookingRef: "Airbnb"},
			},
			DailyItinerary: map[string][]string{
				"2025-12-11": {"Hells of Beppu"},
				"2025-12-12": {"Checkout at 6 AM", "Transfer to Beppu Station", "Train to Hakata"},
			},
		},
		{
			ID:        6,
			Name:      "Okinawa",
			Coords:    [2]float64{26.2124, 127.6809},
			StartDate: "2025-12-12",
			EndDate:   "2025-12-16",
			Dates:     "Dec 12 - Dec 16",
			Duration:  "4 nights",
			Type:      models.TypeStay,
			Color:     "#4ECDC4",
			Activities: []string{
				"Explore Okinawa", "Checkout at 8 AM", "Transfer to Okinawa Airport", "Departure at 12:05 PM",
			},
			Transport:        "Car rental + Yui Rail",
			ArrivalTransport: "Sonic 8 (07:22 → 09:40) + Solaseed Air 6J101 (13:00 → 14:55)",
			Accommodation:    "Airbnb",
			TransportDetails: []models.TransportDetail{
				{Type: models.TransportFlight, Name: "Solaseed Air 6J101", Date: "2025-12-12", DepartureTime: "13:00", ArrivalTime: "14:55"},
			},
			AccommodationDetails: []models.AccommodationDetail{
				{Name: "Okinawa Airbnb", Address: "1-chōme-14-10 Izumizaki, Naha, Okinawa 900-0021", BookingRef: "Airbnb"},
			},
			DailyItinerary: map[string][]string{
				"2025-12-13": {"Explore Okinawa"},
				"2025-12-14": {"Explore Okinawa"},
				"2025-12-15": {"Explore Okinawa"},
				"2025-12-16": {"Checkout at 8 AM", "Transfer to Okinawa Airport", "Departure at 12:05 PM"},
			},
		},
		{
			ID:        7,
			Name:      "Osaka",
			Coords:    [2]float64{34.6937, 135.5023},
			StartDate: "2025-12-16",
			EndDate:   "2025-12-19",
			Dates:     "Dec 16 - Dec 19",
			Duration:  "3 nights",
			Type:      models.TypeStay,
			Color:     "#4ECDC4",
			Activities: []string{
				"Cafe Hopping", "Explore Dotonbori", "Shinsaibashi", "Checkout at 8 AM",
				"Transfer to Osaka Namba", "Train to Kyoto at 09:10 AM",
			},
			Transport:        "JR / Metro / Kintetsu",
			ArrivalTransport: "Jetstar GK350 (12:05 → 14:05)",
			Accommodation:    "Airbnb",
			TransportDetails: []models.TransportDetail{
				{Type: models.TransportFlight, Name: "Jetstar GK350", Date: "2025-12-16", DepartureTime: "12:05", ArrivalTime: "14:05"},
			},
			AccommodationDetails: []models.AccommodationDetail{
				{Name: "Osaka Airbnb", Address: "2-chōme-2-12 Higashishinsaibashi, Chuo Ward, Osaka, 542-0083", BookingRef: "Airbnb"},
			},
			DailyItinerary: map[string][]string{
				"2025-12-17": {"Cafe Hopping", "Explore Dotonbori"},
				"2025-12-18": {"Shinsaibashi"},
				"2025-12-19": {"Checkout at 8 AM", "Transfer to Osaka Namba", "Train to Kyoto at 09:10 AM"},
			},
		},
		{
			ID:        8,
			Name:      "Kyoto",
			Coords:    [2]float64{35.0116, 135.7681},
			StartDate: "2025-12-19",
			EndDate:   "2025-12-23",
			Dates:     "Dec 19 - Dec 23",
			Duration:  "4 nights",
			Type:      models.TypeStay,
			Color:     "#4ECDC4",
			Activities: []string{
				"Explore Kyoto", "Uji", "Checkout at 10 AM", "Transfer to Kyoto Station", "Shinkansen to Tokyo",
			},
			Transport:     "JR / Subway / Bus",
			Accommodation: "Hotel (Booking.com)",
			TransportDetails: []models.TransportDetail{
				{Type: models.TransportTrain, Name: "Aoyonishi", Date: "2025-12-19", DepartureTime: "09:10", ArrivalTime: "10:40", BookingRef: "Kintetsu Rail"},
			},
			AccommodationDetails: []models.AccommodationDetail{
				{Name: "Carta Hotel", Address: "Gion District", BookingRef: "Booking"},
			},
			DailyItinerary: map[string][]string{
				"2025-12-19": {"Explore Kyoto"},
				"2025-12-20": {"Uji"},
				"2025-12-21": {"Explore Kyoto"},
				"2025-12-22": {"Explore Kyoto"},
				"2025-12-23": {"Checkout at 10 AM", "Transfer to Kyoto Station", "Shinkansen to Tokyo"},
			},
		},
		{
			ID:        9,
			Name:      "Tokyo (End)",
			Coords:    [2]float64{35.6764, 139.6500},
			StartDate: "2025-12-23",
			EndDate:   "2025-12-28",
			Dates:     "Dec 23 - Dec 28",
			Duration:  "5 nights",
			Type:      models.TypeStay,
			Color:     "#4ECDC4",
			Activities: []string{
				"Checkin and rest", "Kamakura day trip", "Explore Shibuya", "Explore Shinjuku",
				"Explore Akihabara", "Checkout at 6 AM", "Transfer to Airport", "Flight to Delhi",
			},
			Transport:        "JR + Subway",
			ArrivalTransport: "Shinkansen Nozomi (~2h30m)",
			Accommodation:    "Airbnb",
			TransportDetails: []models.TransportDetail{
				{Type: models.TransportTrain, Name: "Shinkansen Nozomi", Date: "2025-12-23", DepartureTime: "10:00", ArrivalTime: "12:30"},
			},
			AccommodationDetails: []models.AccommodationDetail{
				{Name: "Tokyo Airbnb", Address: "Shinjuku", BookingRef: "AB-000111"},
			},
			DailyItinerary: map[string][]string{
				"2025-12-23": {"Checkin and rest"},
				"2025-12-24": {"Kamakura day trip"},
				"2025-12-25": {"Explore Shibuya"},
				"2025-12-26": {"Explore Shinjuku"},
				"2025-12-27": {"Explore Akihabara"},
				"2025-12-28": {"Checkout at 6 AM", "Transfer to Airport", "Flight to Delhi"},
			},
		},
	}
}
