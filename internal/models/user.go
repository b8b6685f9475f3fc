package models

import "time"

// PaymentMethod is a stored card on a user profile.
type PaymentMethod struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Brand    string `json:"brand,omitempty"`
	LastFour string `json:"last_four,omitempty"`
}

// User is a traveller profile. UserName is the login name exposed as
// user_id in reservation projections.
type User struct {
	ID             string                   `json:"id"`
	UserName       string                   `json:"user_name"`
	GivenName      string                   `json:"given_name"`
	FamilyName     string                   `json:"family_name"`
	Email          string                   `json:"email,omitempty"`
	Locale         string                   `json:"locale,omitempty"`
	Timezone       string                   `json:"timezone,omitempty"`
	DateOfBirth    string                   `json:"dob,omitempty"`
	Active         bool                     `json:"active"`
	PaymentMethods map[string]PaymentMethod `json:"payment_methods,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
	LastModified   time.Time                `json:"last_modified"`
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	out := *u
	if u.PaymentMethods != nil {
		out.PaymentMethods = make(map[string]PaymentMethod, len(u.PaymentMethods))
		for id, pm := range u.PaymentMethods {
			out.PaymentMethods[id] = pm
		}
	}
	return &out
}
