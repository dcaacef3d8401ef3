// Package models defines the domain types exchanged with the
// recommendation backend. Wire field names are dictated by the server
// and use snake_case.
package models

// User is the account as returned by the backend. The base identity
// fields are always present; the extended profile fields are optional
// until the user fills in their profile.
type User struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
	CreatedAt  string `json:"created_at"`

	FirstName            *string  `json:"first_name,omitempty"`
	LastName             *string  `json:"last_name,omitempty"`
	Age                  *int     `json:"age,omitempty"`
	Gender               *string  `json:"gender,omitempty"`
	Occupation           *string  `json:"occupation,omitempty"`
	Income               *float64 `json:"income,omitempty"`
	MaritalStatus        *string  `json:"marital_status,omitempty"`
	HasChildren          *bool    `json:"has_children,omitempty"`
	HasVehicle           *bool    `json:"has_vehicle,omitempty"`
	HasHome              *bool    `json:"has_home,omitempty"`
	HasMedicalConditions *bool    `json:"has_medical_conditions,omitempty"`
	TravelFrequency      *string  `json:"travel_frequency,omitempty"`
}

// Equal reports whether two users refer to the same account.
// Identity is the server-assigned id.
func (u *User) Equal(o *User) bool {
	if u == nil || o == nil {
		return u == o
	}
	return u.ID == o.ID
}

// IsProfileComplete reports whether all ten extended-profile fields are
// set. Recommendation requests must not be built from an incomplete
// profile.
func (u *User) IsProfileComplete() bool {
	return u.Age != nil &&
		u.Gender != nil &&
		u.Occupation != nil &&
		u.Income != nil &&
		u.MaritalStatus != nil &&
		u.HasChildren != nil &&
		u.HasVehicle != nil &&
		u.HasHome != nil &&
		u.HasMedicalConditions != nil &&
		u.TravelFrequency != nil
}

// LoginRequest is the body of POST auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse carries the server confirmation for a registration.
// Registration does not authenticate the user.
type RegisterResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AuthResponse is the body of a successful login. The access token is an
// opaque bearer credential; the client never inspects it.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
