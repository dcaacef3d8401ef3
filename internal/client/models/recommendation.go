package models

import "errors"

// ErrProfileIncomplete is returned when a recommendation request is built
// from a user whose profile is missing extended fields. Callers are
// expected to check IsProfileComplete first; this error is the backstop.
var ErrProfileIncomplete = errors.New("profile incomplete")

// RecommendationRequest is the body of POST recommendations: a pure
// projection of a complete user profile. It is never persisted.
type RecommendationRequest struct {
	Age                  int     `json:"age"`
	Gender               string  `json:"gender"`
	Occupation           string  `json:"occupation"`
	Income               float64 `json:"income"`
	MaritalStatus        string  `json:"marital_status"`
	HasChildren          bool    `json:"has_children"`
	HasVehicle           bool    `json:"has_vehicle"`
	HasHome              bool    `json:"has_home"`
	HasMedicalConditions bool    `json:"has_medical_conditions"`
	TravelFrequency      string  `json:"travel_frequency"`
}

// RecommendationResponse is the body returned by POST recommendations.
// An empty list is a valid result, not an error.
type RecommendationResponse struct {
	Recommendations []Insurance `json:"recommendations"`
}

// NewRecommendationRequest projects a complete user profile into a
// recommendation request. Returns ErrProfileIncomplete if any of the ten
// profile fields is unset.
func NewRecommendationRequest(u *User) (*RecommendationRequest, error) {
	if u == nil || !u.IsProfileComplete() {
		return nil, ErrProfileIncomplete
	}
	return &RecommendationRequest{
		Age:                  *u.Age,
		Gender:               *u.Gender,
		Occupation:           *u.Occupation,
		Income:               *u.Income,
		MaritalStatus:        *u.MaritalStatus,
		HasChildren:          *u.HasChildren,
		HasVehicle:           *u.HasVehicle,
		HasHome:              *u.HasHome,
		HasMedicalConditions: *u.HasMedicalConditions,
		TravelFrequency:      *u.TravelFrequency,
	}, nil
}
