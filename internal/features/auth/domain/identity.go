package domain

import (
	"errors"
	"time"
)

// Role describes how a user participates in the marketplace.
type Role string

const (
	// RoleRequester posts items for delivery.
	RoleRequester Role = "requester"
	// RoleTraveler fulfills delivery requests along their route.
	RoleTraveler Role = "traveler"
	// RoleBoth acts as requester and traveler.
	RoleBoth Role = "both"
)

// VerificationStatus represents the identity verification state of a user.
type VerificationStatus string

const (
	VerificationVerified   VerificationStatus = "verified"
	VerificationPending    VerificationStatus = "pending"
	VerificationUnverified VerificationStatus = "unverified"
)

var (
	// ErrInvalidRole is returned when a registration carries an unknown role.
	ErrInvalidRole = errors.New("invalid role")
	// ErrMissingCredentials is returned when email or password is empty.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrMissingName is returned when a registration carries no name.
	ErrMissingName = errors.New("name is required")
	// ErrInvalidToken is returned when a session token cannot be validated.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrSessionNotFound is returned when no session exists for a valid token.
	ErrSessionNotFound = errors.New("session not found")
)

// Identity represents an authenticated marketplace user.
type Identity struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Name is the display name of the user.
	Name string `json:"name"`
	// Email is the login email of the user.
	Email string `json:"email"`
	// Role describes how the user participates in the marketplace.
	Role Role `json:"role"`
	// Rating is the average review rating, between 0 and 5.
	Rating float64 `json:"rating"`
	// TotalDeliveries is the number of deliveries completed by the user.
	TotalDeliveries int `json:"totalDeliveries"`
	// JoinDate is the day the user joined, formatted YYYY-MM-DD.
	JoinDate string `json:"joinDate"`
	// VerificationStatus is the identity verification state.
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	// Phone is the optional contact phone number.
	Phone string `json:"phone,omitempty"`
	// Location is the optional home location of the user.
	Location string `json:"location,omitempty"`
}

// Credentials carries a login attempt.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that the credentials are complete.
func (c Credentials) Validate() error {
	if c.Email == "" || c.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

// Registration carries a signup attempt.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Validate checks that the registration is complete and the role is known.
func (r Registration) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}
	if r.Email == "" || r.Password == "" {
		return ErrMissingCredentials
	}
	switch r.Role {
	case RoleRequester, RoleTraveler, RoleBoth:
		return nil
	default:
		return ErrInvalidRole
	}
}

// Session is a server-side login record addressed by a signed token.
type Session struct {
	// ID is the unique session identifier embedded in the token.
	ID string `json:"id"`
	// Identity is the authenticated user snapshot held by the session.
	Identity Identity `json:"identity"`
	// CreatedAt is when the session was established.
	CreatedAt time.Time `json:"created_at"`
	// ExpiresAt is when the session stops being honored.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
