package booking

import "github.com/kletskov/flightbooking/internal/domain"

// The validation functions below are pure: no I/O, deterministic, and
// fail-fast on the first violation in list order.

func validateManifestPresent(req *BookingRequest) error {
	if len(req.Passengers) == 0 {
		return domain.NewValidationError("Passenger required")
	}
	return nil
}

func validateTripType(req *BookingRequest) error {
	if req.TripType == "" {
		return domain.NewValidationError("Trip type required")
	}
	if req.TripType == domain.TripTypeRoundTrip && req.ReturnFlightID == "" {
		return domain.NewValidationError("Return flight required")
	}
	return nil
}

func validateSeatCapacity(available, needed int) error {
	if available < needed {
		return domain.NewValidationError("Not enough seats")
	}
	return nil
}

func validatePassengers(req *BookingRequest, roundTrip bool) error {
	for _, p := range req.Passengers {
		if p.Age <= 0 {
			return domain.NewValidationError("Invalid age")
		}
		if p.SeatOutbound == "" {
			return domain.NewValidationError("Outbound seat required")
		}
		if roundTrip && p.SeatReturn == "" {
			return domain.NewValidationError("Return seat required")
		}
	}
	return nil
}
