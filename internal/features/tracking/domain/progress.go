package domain

import (
	"errors"
	"time"
)

var (
	// ErrProgressNotFound is returned when no progress record exists for a delivery.
	ErrProgressNotFound = errors.New("progress record not found")
	// ErrProgressComplete is returned when advancing past the last milestone.
	ErrProgressComplete = errors.New("delivery already completed")
	// ErrInvalidStep is returned when constructing progress at an unknown step.
	ErrInvalidStep = errors.New("invalid milestone step")
)

// MilestoneCount is the number of steps every delivery moves through.
const MilestoneCount = 4

// milestoneSeed is the fixed sequence of delivery milestones.
var milestoneSeed = [MilestoneCount]struct {
	title       string
	description string
}{
	{"Request Accepted", "Traveler accepted your delivery request"},
	{"Item Picked Up", "Item collected from pickup location"},
	{"In Transit", "Item is on the way to destination"},
	{"Delivered", "Item delivered successfully"},
}

// Milestone is a single step in the delivery timeline.
type Milestone struct {
	// Title is the short milestone name.
	Title string `json:"title"`
	// Description explains what the milestone means.
	Description string `json:"description"`
	// Completed reports whether the milestone has been reached.
	Completed bool `json:"completed"`
	// Current marks the milestone the delivery is working towards.
	Current bool `json:"current"`
	// Timestamp is when the milestone was completed, if it has been.
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Progress is the milestone timeline and live position of a delivery.
//
// Milestones before the current one are completed and carry timestamps;
// the current one and everything after are not. Exactly one milestone is
// current, except once the delivery is complete, when none is.
type Progress struct {
	// DeliveryID identifies the delivery this record tracks.
	DeliveryID string `json:"deliveryId"`
	// Milestones is the fixed four-step timeline.
	Milestones []Milestone `json:"milestones"`
	// CurrentLocation is the latest sampled street position of the traveler.
	CurrentLocation string `json:"currentLocation,omitempty"`
	// UpdatedAt is when the record last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProgress creates a progress record for a delivery with the first `step`
// milestones already completed. step may equal MilestoneCount for a record
// that is complete from the start.
func NewProgress(deliveryID string, step int, now time.Time) (*Progress, error) {
	if step < 0 || step > MilestoneCount {
		return nil, ErrInvalidStep
	}

	p := &Progress{
		DeliveryID: deliveryID,
		Milestones: make([]Milestone, MilestoneCount),
		UpdatedAt:  now,
	}
	for i := range p.Milestones {
		p.Milestones[i] = Milestone{
			Title:       milestoneSeed[i].title,
			Description: milestoneSeed[i].description,
		}
		if i < step {
			ts := now
			p.Milestones[i].Completed = true
			p.Milestones[i].Timestamp = &ts
		}
	}
	if step < MilestoneCount {
		p.Milestones[step].Current = true
	}
	return p, nil
}

// Complete reports whether every milestone has been reached.
func (p *Progress) Complete() bool {
	return p.CurrentIndex() == -1
}

// CurrentIndex returns the index of the current milestone, or -1 once the
// delivery is complete.
func (p *Progress) CurrentIndex() int {
	for i, m := range p.Milestones {
		if m.Current {
			return i
		}
	}
	return -1
}

// Advance completes the current milestone and moves the marker to the next
// one. Advancing a complete record is rejected.
func (p *Progress) Advance(now time.Time) error {
	idx := p.CurrentIndex()
	if idx == -1 {
		return ErrProgressComplete
	}

	ts := now
	p.Milestones[idx].Completed = true
	p.Milestones[idx].Current = false
	p.Milestones[idx].Timestamp = &ts
	if idx+1 < MilestoneCount {
		p.Milestones[idx+1].Current = true
	}
	p.UpdatedAt = now
	return nil
}

// SetLocation records a fresh location sample.
func (p *Progress) SetLocation(location string, now time.Time) {
	p.CurrentLocation = location
	p.UpdatedAt = now
}
