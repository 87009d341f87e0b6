package services

import (
	"context"

	"apollomcp/internal/domain/entities"
	"apollomcp/internal/domain/errors"
	"apollomcp/internal/domain/interfaces"

	"go.uber.org/zap"
)

const (
	// MaxListBatch is the most record IDs one list operation accepts.
	// Callers with bigger batches chunk on their side.
	MaxListBatch = 10

	discoverPerPage  = 100
	discoverMaxPages = 10
)

type listMode int

const (
	listModeAdd listMode = iota
	listModeRemove
)

// listService changes list membership for a batch of CRM records via a
// read-merge-write sequence. Apollo's update endpoints replace the full
// label set, so a naive "add to list" would wipe every other list the
// record belongs to. The service fetches current labels first, merges,
// and writes back with one bulk call.
//
// Discovery pages through the saved records (up to
// discoverMaxPages x discoverPerPage); IDs that never surface are
// reported in NotFound rather than failing the batch. Concurrent calls
// that target the same record race last-write-wins at the remote
// service; there is no locking or versioning here.
type listService struct {
	records interfaces.RecordService
	logger  *zap.Logger
}

func NewListService(records interfaces.RecordService, logger *zap.Logger) *listService {
	return &listService{
		records: records,
		logger:  logger,
	}
}

func (s *listService) AddToList(ctx context.Context, recordIDs []string, labelName string) (*entities.ReconcileResult, error) {
	return s.reconcile(ctx, recordIDs, labelName, listModeAdd)
}

func (s *listService) RemoveFromList(ctx context.Context, recordIDs []string, labelName string) (*entities.ReconcileResult, error) {
	return s.reconcile(ctx, recordIDs, labelName, listModeRemove)
}

func (s *listService) reconcile(ctx context.Context, recordIDs []string, labelName string, mode listMode) (*entities.ReconcileResult, error) {
	if len(recordIDs) == 0 {
		return nil, errors.ValidationErrorf("at least one record ID is required")
	}
	if len(recordIDs) > MaxListBatch {
		return nil, errors.ValidationErrorf("too many record IDs: got %d, maximum is %d", len(recordIDs), MaxListBatch)
	}
	if labelName == "" {
		return nil, errors.ValidationErrorf("label name is required")
	}

	found, err := s.discover(ctx, recordIDs)
	if err != nil {
		return nil, err
	}

	result := &entities.ReconcileResult{
		Found:          make([]string, 0, len(found)),
		NotFound:       notFoundIDs(recordIDs, found),
		Updated:        []entities.Record{},
		TotalRequested: len(recordIDs),
	}
	for _, rec := range found {
		result.Found = append(result.Found, rec.ID)
	}

	if len(found) == 0 {
		s.logger.Warn("No records matched for list operation",
			zap.String("label", labelName),
			zap.Int("requested", len(recordIDs)))
		return result, nil
	}

	updates := make([]entities.LabelUpdate, 0, len(found))
	for _, rec := range found {
		updates = append(updates, entities.LabelUpdate{
			ID:         rec.ID,
			LabelNames: mergeLabels(rec.LabelNames, labelName, mode),
		})
	}

	updated, err := s.records.BulkUpdateLabels(ctx, updates)
	if err != nil {
		return nil, err
	}
	result.Updated = updated

	s.logger.Info("List membership updated",
		zap.String("label", labelName),
		zap.Int("found", len(result.Found)),
		zap.Int("not_found", len(result.NotFound)),
		zap.Int("total_requested", result.TotalRequested))
	return result, nil
}

// discover pages through the saved records and collects those whose ID
// was requested. First match wins if the listing surfaces an ID twice.
// Paging stops as soon as every requested ID has been seen, the service
// reports no further pages, or the page cap is reached.
func (s *listService) discover(ctx context.Context, recordIDs []string) ([]entities.Record, error) {
	wanted := make(map[string]bool, len(recordIDs))
	for _, id := range recordIDs {
		wanted[id] = true
	}

	seen := make(map[string]bool, len(wanted))
	found := make([]entities.Record, 0, len(wanted))

	for page := 1; page <= discoverMaxPages; page++ {
		result, err := s.records.SearchRecords(ctx, entities.RecordSearchQuery{
			Page:    page,
			PerPage: discoverPerPage,
		})
		if err != nil {
			return nil, err
		}

		for _, rec := range result.Records {
			if wanted[rec.ID] && !seen[rec.ID] {
				seen[rec.ID] = true
				found = append(found, rec)
			}
		}

		if len(seen) == len(wanted) {
			break
		}
		if len(result.Records) == 0 {
			break
		}
		if result.Pagination.TotalPages != 0 && page >= result.Pagination.TotalPages {
			break
		}
	}

	return found, nil
}

// notFoundIDs returns the requested IDs that discovery never surfaced,
// de-duplicated, in request order.
func notFoundIDs(recordIDs []string, found []entities.Record) []string {
	foundSet := make(map[string]bool, len(found))
	for _, rec := range found {
		foundSet[rec.ID] = true
	}

	notFound := make([]string, 0)
	reported := make(map[string]bool)
	for _, id := range recordIDs {
		if foundSet[id] || reported[id] {
			continue
		}
		reported[id] = true
		notFound = append(notFound, id)
	}
	return notFound
}

// mergeLabels computes the new label set. Add keeps the existing labels
// in order and appends the new one once; remove filters it out.
// Duplicates already present in the current set are dropped either way.
func mergeLabels(current []string, labelName string, mode listMode) []string {
	merged := make([]string, 0, len(current)+1)
	seen := make(map[string]bool, len(current)+1)
	for _, l := range current {
		if seen[l] {
			continue
		}
		if mode == listModeRemove && l == labelName {
			continue
		}
		seen[l] = true
		merged = append(merged, l)
	}
	if mode == listModeAdd && !seen[labelName] {
		merged = append(merged, labelName)
	}
	return merged
}

var _ interfaces.ListManager = (*listService)(nil)
