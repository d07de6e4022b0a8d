package domain

import (
	"errors"
	"time"
)

// PaymentStatus represents where a payment sits in the escrow flow.
// Transitions: pending -> held -> completed, with refunded reachable from
// pending and held. Completed and refunded are terminal.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusHeld      PaymentStatus = "held"
	StatusCompleted PaymentStatus = "completed"
	StatusRefunded  PaymentStatus = "refunded"
)

// PaymentMethod is how the requester funds a payment.
type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodDebitCard    PaymentMethod = "debit_card"
	MethodPayPal       PaymentMethod = "paypal"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

var (
	// ErrInvalidAmount is returned when creating a payment for zero or less.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrInvalidMethod is returned for an unknown payment method.
	ErrInvalidMethod = errors.New("invalid payment method")
	// ErrInvalidTransition is returned for a status change the escrow flow
	// does not allow.
	ErrInvalidTransition = errors.New("invalid payment transition")
	// ErrPaymentNotFound is returned when no payment exists for an ID.
	ErrPaymentNotFound = errors.New("payment not found")
)

// Payment is money moving from a requester to a traveler for one delivery.
type Payment struct {
	// ID is the unique identifier for the payment.
	ID string `json:"id"`
	// DeliveryID identifies the delivery being paid for.
	DeliveryID string `json:"deliveryId"`
	// Amount is the payment value in dollars.
	Amount float64 `json:"amount"`
	// Status is where the payment sits in the escrow flow.
	Status PaymentStatus `json:"status"`
	// Method is how the payment is funded.
	Method PaymentMethod `json:"paymentMethod"`
	// CreatedAt is when the payment was created.
	CreatedAt time.Time `json:"createdAt"`
	// CompletedAt is when the payment reached completed, and is only set
	// then.
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// NewPayment creates a pending payment for a delivery.
func NewPayment(id, deliveryID string, amount float64, method PaymentMethod, now time.Time) (*Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	switch method {
	case MethodCreditCard, MethodDebitCard, MethodPayPal, MethodBankTransfer:
	default:
		return nil, ErrInvalidMethod
	}

	return &Payment{
		ID:         id,
		DeliveryID: deliveryID,
		Amount:     amount,
		Status:     StatusPending,
		Method:     method,
		CreatedAt:  now,
	}, nil
}

// Terminal reports whether the payment has reached a final status.
func (p *Payment) Terminal() bool {
	return p.Status == StatusCompleted || p.Status == StatusRefunded
}

// Hold moves a pending payment into escrow.
func (p *Payment) Hold() error {
	if p.Status != StatusPending {
		return ErrInvalidTransition
	}
	p.Status = StatusHeld
	return nil
}

// Complete releases a held payment to the traveler and stamps completion.
func (p *Payment) Complete(now time.Time) error {
	if p.Status != StatusHeld {
		return ErrInvalidTransition
	}
	p.Status = StatusCompleted
	ts := now
	p.CompletedAt = &ts
	return nil
}

// Refund returns a pending or held payment to the requester.
func (p *Payment) Refund() error {
	if p.Terminal() {
		return ErrInvalidTransition
	}
	p.Status = StatusRefunded
	return nil
}

// Summary aggregates payments the way the earnings card shows them.
type Summary struct {
	// TotalEarnings is the sum of completed payments.
	TotalEarnings float64 `json:"totalEarnings"`
	// PendingAmount is the sum of held and pending payments.
	PendingAmount float64 `json:"pendingAmount"`
}

// Summarize folds a payment list into the earnings summary.
func Summarize(payments []Payment) Summary {
	var s Summary
	for _, p := range payments {
		switch p.Status {
		case StatusCompleted:
			s.TotalEarnings += p.Amount
		case StatusHeld, StatusPending:
			s.PendingAmount += p.Amount
		}
	}
	return s
}
