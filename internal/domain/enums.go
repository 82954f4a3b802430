package domain

import "encoding/json"

var (
	TripTypeValues = []TripType{TripTypeOneWay, TripTypeRoundTrip}
	GenderValues   = []Gender{GenderMale, GenderFemale, GenderOther}
	MealValues     = []Meal{MealVeg, MealNonVeg}
)

func (t *TripType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &EnumError{Enum: "TripType", Value: string(data)}
	}
	if raw == "" {
		*t = ""
		return nil
	}
	for _, v := range TripTypeValues {
		if raw == string(v) {
			*t = v
			return nil
		}
	}
	return &EnumError{Enum: "TripType", Value: raw}
}

func (g *Gender) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &EnumError{Enum: "Gender", Value: string(data)}
	}
	if raw == "" {
		*g = ""
		return nil
	}
	for _, v := range GenderValues {
		if raw == string(v) {
			*g = v
			return nil
		}
	}
	return &EnumError{Enum: "Gender", Value: raw}
}

func (m *Meal) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &EnumError{Enum: "Meal", Value: string(data)}
	}
	if raw == "" {
		*m = ""
		return nil
	}
	for _, v := range MealValues {
		if raw == string(v) {
			*m = v
			return nil
		}
	}
	return &EnumError{Enum: "Meal", Value: raw}
}
