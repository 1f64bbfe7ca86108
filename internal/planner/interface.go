package planner

import "context"

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// ParseTasks converts a batch of natural-language task descriptions into
	// structured, geocodable task records. Per-item failures degrade to
	// fallback records; the batch itself only fails on context cancellation.
	ParseTasks(ctx context.Context, input ParseInput) (ParseOutput, error)
}
