package domain

import (
	"errors"
	"time"
)

// Size represents the physical size class of a delivery item.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Urgency represents how time-sensitive a delivery request is.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Status represents the current state of a delivery request.
// Transitions are monotonic: posted -> accepted -> in-transit -> delivered,
// with cancelled reachable from any non-terminal state.
type Status string

const (
	StatusPosted    Status = "posted"
	StatusAccepted  Status = "accepted"
	StatusInTransit Status = "in-transit"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var (
	ErrMissingTitle   = errors.New("title is required")
	ErrInvalidSize    = errors.New("invalid size")
	ErrInvalidUrgency = errors.New("invalid urgency")
	ErrInvalidBudget  = errors.New("budget must be greater than zero")
	ErrInvalidWeight  = errors.New("weight must not be negative")
	// ErrNotOpen is returned when accepting a request that is no longer posted.
	ErrNotOpen = errors.New("request is not open for acceptance")
	// ErrTerminalStatus is returned when mutating a delivered or cancelled request.
	ErrTerminalStatus = errors.New("request is in a terminal status")
	// ErrNotAccepted is returned when advancing a request nobody has accepted.
	ErrNotAccepted = errors.New("request has not been accepted")
	// ErrRequestNotFound is returned when no request exists for an ID.
	ErrRequestNotFound = errors.New("request not found")
)

// Location is a pickup or dropoff point.
type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	ZipCode string  `json:"zipCode"`
}

// DeliveryRequest represents an item a requester wants carried.
type DeliveryRequest struct {
	// ID is the unique identifier for the request.
	ID string `json:"id"`
	// Title is the short headline shown in listings.
	Title string `json:"title"`
	// Description explains the item and any handling instructions.
	Description string `json:"description"`
	// ItemType categorizes the item (e.g., electronics, documents).
	ItemType string `json:"itemType"`
	// Size is the physical size class of the item.
	Size Size `json:"size"`
	// Weight is the item weight in pounds.
	Weight float64 `json:"weight"`
	// PickupLocation is where the traveler collects the item.
	PickupLocation Location `json:"pickupLocation"`
	// DropoffLocation is where the traveler delivers the item.
	DropoffLocation Location `json:"dropoffLocation"`
	// RequesterID identifies the user who posted the request.
	RequesterID string `json:"requesterId"`
	// RequesterName is the display name of the requester.
	RequesterName string `json:"requesterName"`
	// RequesterRating is the requester's average review rating.
	RequesterRating float64 `json:"requesterRating"`
	// TravelerID identifies the accepting traveler, once accepted.
	TravelerID string `json:"travelerId,omitempty"`
	// TravelerName is the display name of the accepting traveler.
	TravelerName string `json:"travelerName,omitempty"`
	// Status is the current lifecycle state.
	Status Status `json:"status"`
	// Budget is what the requester offers to pay, in dollars.
	Budget float64 `json:"budget"`
	// PreferredDate is the desired delivery day, formatted YYYY-MM-DD.
	PreferredDate string `json:"preferredDate"`
	// Urgency is how time-sensitive the request is.
	Urgency Urgency `json:"urgency"`
	// CreatedAt is when the request was posted.
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks that a request draft is complete enough to post.
func (r *DeliveryRequest) Validate() error {
	if r.Title == "" {
		return ErrMissingTitle
	}
	switch r.Size {
	case SizeSmall, SizeMedium, SizeLarge:
	default:
		return ErrInvalidSize
	}
	switch r.Urgency {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
	default:
		return ErrInvalidUrgency
	}
	if r.Budget <= 0 {
		return ErrInvalidBudget
	}
	if r.Weight < 0 {
		return ErrInvalidWeight
	}
	return nil
}

// Terminal reports whether the request has reached a final status.
func (r *DeliveryRequest) Terminal() bool {
	return r.Status == StatusDelivered || r.Status == StatusCancelled
}

// Accept records the traveler and moves the request from posted to accepted.
func (r *DeliveryRequest) Accept(travelerID, travelerName string) error {
	if r.Terminal() {
		return ErrTerminalStatus
	}
	if r.Status != StatusPosted {
		return ErrNotOpen
	}
	r.TravelerID = travelerID
	r.TravelerName = travelerName
	r.Status = StatusAccepted
	return nil
}

// Advance moves the request one step along the delivery lifecycle:
// accepted -> in-transit -> delivered.
func (r *DeliveryRequest) Advance() error {
	switch r.Status {
	case StatusAccepted:
		r.Status = StatusInTransit
		return nil
	case StatusInTransit:
		r.Status = StatusDelivered
		return nil
	case StatusPosted:
		return ErrNotAccepted
	default:
		return ErrTerminalStatus
	}
}

// Cancel moves any non-terminal request to cancelled.
func (r *DeliveryRequest) Cancel() error {
	if r.Terminal() {
		return ErrTerminalStatus
	}
	r.Status = StatusCancelled
	return nil
}
