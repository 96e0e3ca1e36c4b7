// Package models defines the portal's stored record types. JSON field names
// match the storage layout of the system this portal replaces, so an
// exported dump of one is readable by the other.
package models

import "fmt"

// Role determines which dashboard views an account can reach.
type Role string

const (
	RoleParticipant Role = "participant"
	RoleSponsor     Role = "sponsor"
	RoleFacilitator Role = "facilitator"
	RoleAdmin       Role = "admin"
)

// ParseRole validates a user-supplied role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleParticipant, RoleSponsor, RoleFacilitator, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Account is a pseudonymous profile. No credential is attached: the
// pseudonym alone identifies the account, and any sign-in under it
// succeeds. Dates are stored as strings and are not validated.
type Account struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Role         Role   `json:"role"`
	SobrietyDate string `json:"sobrietyDate"`
	Joined       string `json:"joined"`
}
