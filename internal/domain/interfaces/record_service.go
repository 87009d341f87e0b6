package interfaces

import (
	"context"

	"apollomcp/internal/domain/entities"
)

// RecordService is the collaborator contract the list reconciler depends
// on: a broad paged listing of saved CRM records, and a bulk write that
// replaces the full label set per record. Apollo offers no
// fetch-by-id-list or add-single-label primitive, which is the whole
// reason the reconciler exists.
type RecordService interface {
	// SearchRecords lists saved records. There is no guarantee that a
	// record with a given ID appears on any particular page; callers
	// discover by paging and filtering locally.
	SearchRecords(ctx context.Context, query entities.RecordSearchQuery) (*entities.RecordPage, error)

	// BulkUpdateLabels replaces the full label_names of each listed
	// record in a single call. Destructive overwrite: labels absent from
	// the update are dropped by the remote service.
	BulkUpdateLabels(ctx context.Context, updates []entities.LabelUpdate) ([]entities.Record, error)
}
