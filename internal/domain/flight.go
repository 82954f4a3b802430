package domain

// FlightSnapshot is a read-only view of a flight fetched from the inventory
// service at booking time. It is never cached; every booking attempt re-reads
// current availability.
type FlightSnapshot struct {
	FlightID       string `json:"flightId"`
	FlightNumber   string `json:"flightNumber"`
	AirlineCode    string `json:"airlineCode"`
	TotalSeats     int    `json:"totalSeats"`
	AvailableSeats int    `json:"availableSeats"`
}
