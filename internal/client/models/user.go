// Package models defines the data types exchanged with the account API.
package models

// UserProfile is the server's view of the account owner. The client never
// invents one locally; instances come from login/signup responses or from
// the profile endpoint.
type UserProfile struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName joins first and last name for display.
func (u UserProfile) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
