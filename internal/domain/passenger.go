package domain

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type Meal string

const (
	MealVeg    Meal = "VEG"
	MealNonVeg Meal = "NON_VEG"
)

// Passenger rows are written once as a batch alongside booking creation and
// never mutated afterwards; cancellation does not touch them.
type Passenger struct {
	ID           string `json:"passengerId"`
	BookingID    string `json:"bookingId"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Gender       Gender `json:"gender"`
	Meal         Meal   `json:"meal,omitempty"`
	SeatOutbound string `json:"seatOutbound"`
	SeatReturn   string `json:"seatReturn,omitempty"`
}
