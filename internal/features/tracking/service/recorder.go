package service

import "context"

// ProgressRecorder is the error-only view of the tracking service taken by
// callers that drive the milestone record from delivery state changes. It
// keeps the lifecycle method set apart from the read-oriented primary port,
// whose Advance also returns the updated record.
type ProgressRecorder struct {
	svc *TrackingServiceImpl
}

// Recorder returns the lifecycle view of the service.
func (s *TrackingServiceImpl) Recorder() *ProgressRecorder {
	return &ProgressRecorder{svc: s}
}

// Begin opens the milestone record for an accepted delivery.
func (r *ProgressRecorder) Begin(ctx context.Context, deliveryID string) error {
	return r.svc.Begin(ctx, deliveryID)
}

// Advance completes the current milestone.
func (r *ProgressRecorder) Advance(ctx context.Context, deliveryID string) error {
	_, err := r.svc.Advance(ctx, deliveryID)
	return err
}

// Finish drives the milestone record to completion.
func (r *ProgressRecorder) Finish(ctx context.Context, deliveryID string) error {
	return r.svc.Finish(ctx, deliveryID)
}

// Abandon discards the milestone record of a cancelled delivery.
func (r *ProgressRecorder) Abandon(ctx context.Context, deliveryID string) error {
	return r.svc.Abandon(ctx, deliveryID)
}
