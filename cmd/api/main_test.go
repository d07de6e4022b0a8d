package main

import (
	paymentservice "courier-connect/internal/features/payments/service"
	requestports "courier-connect/internal/features/requests/ports"
	trackingservice "courier-connect/internal/features/tracking/service"
)

// The requests service reaches the payments and tracking features through its
// own secondary ports; the concrete types satisfy them structurally, so the
// wiring is checked here at compile time.
var (
	_ requestports.Escrow      = (*paymentservice.EscrowService)(nil)
	_ requestports.ProgressLog = (*trackingservice.ProgressRecorder)(nil)
)
