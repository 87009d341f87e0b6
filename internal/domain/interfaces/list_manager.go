package interfaces

import (
	"context"

	"apollomcp/internal/domain/entities"
)

// ListManager mutates list membership for a batch of records without
// disturbing their other list memberships.
type ListManager interface {
	AddToList(ctx context.Context, recordIDs []string, labelName string) (*entities.ReconcileResult, error)
	RemoveFromList(ctx context.Context, recordIDs []string, labelName string) (*entities.ReconcileResult, error)
}
