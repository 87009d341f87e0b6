package services

import (
	"context"
	goerrors "errors"
	"testing"

	"apollomcp/internal/domain/entities"
	"apollomcp/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Mock record service for testing
type mockRecordService struct {
	mock.Mock
}

func (m *mockRecordService) SearchRecords(ctx context.Context, query entities.RecordSearchQuery) (*entities.RecordPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) != nil {
		return args.Get(0).(*entities.RecordPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecordService) BulkUpdateLabels(ctx context.Context, updates []entities.LabelUpdate) ([]entities.Record, error) {
	args := m.Called(ctx, updates)
	if args.Get(0) != nil {
		return args.Get(0).([]entities.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func record(id string, labels ...string) entities.Record {
	return entities.Record{ID: id, LabelNames: labels}
}

func singlePage(records ...entities.Record) *entities.RecordPage {
	return &entities.RecordPage{
		Records: records,
		Pagination: entities.Pagination{
			Page:         1,
			PerPage:      discoverPerPage,
			TotalEntries: len(records),
			TotalPages:   1,
		},
	}
}

func TestListService_AddToList_PreservesExistingLabels(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())
	ctx := context.Background()

	mockRecords.On("SearchRecords", ctx, mock.Anything).
		Return(singlePage(record("acct_1", "Enterprise", "Active")), nil)
	mockRecords.On("BulkUpdateLabels", ctx, []entities.LabelUpdate{
		{ID: "acct_1", LabelNames: []string{"Enterprise", "Active", "Q1 Targets"}},
	}).Return([]entities.Record{record("acct_1", "Enterprise", "Active", "Q1 Targets")}, nil)

	result, err := service.AddToList(ctx, []string{"acct_1"}, "Q1 Targets")

	assert.NoError(t, err)
	assert.Equal(t, []string{"acct_1"}, result.Found)
	assert.Empty(t, result.NotFound)
	assert.Equal(t, 1, result.TotalRequested)
	assert.Len(t, result.Updated, 1)
	assert.ElementsMatch(t, []string{"Enterprise", "Active", "Q1 Targets"}, result.Updated[0].LabelNames)
	mockRecords.AssertExpectations(t)
}

func TestListService_RemoveFromList_RemovesOnlyTargetLabel(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())
	ctx := context.Background()

	mockRecords.On("SearchRecords", ctx, mock.Anything).
		Return(singlePage(record("acct_1", "Enterprise", "Q1 Targets", "High Value")), nil)
	mockRecords.On("BulkUpdateLabels", ctx, []entities.LabelUpdate{
		{ID: "acct_1", LabelNames: []string{"Enterprise", "High Value"}},
	}).Return([]entities.Record{record("acct_1", "Enterprise", "High Value")}, nil)

	result, err := service.RemoveFromList(ctx, []string{"acct_1"}, "Q1 Targets")

	assert.NoError(t, err)
	assert.Equal(t, []string{"acct_1"}, result.Found)
	assert.NotContains(t, result.Updated[0].LabelNames, "Q1 Targets")
	assert.Contains(t, result.Updated[0].LabelNames, "Enterprise")
	assert.Contains(t, result.Updated[0].LabelNames, "High Value")
	mockRecords.AssertExpectations(t)
}

func TestListService_AddToList_AlreadyPresentDoesNotDuplicate(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())
	ctx := context.Background()

	mockRecords.On("SearchRecords", ctx, mock.Anything).
		Return(singlePage(record("acct_1", "Enterprise", "Q1 Targets")), nil)
	// The write still happens, but the label set content is unchanged.
	mockRecords.On("BulkUpdateLabels", ctx, []entities.LabelUpdate{
		{ID: "acct_1", LabelNames: []string{"Enterprise", "Q1 Targets"}},
	}).Return([]entities.Record{record("acct_1", "Enterprise", "Q1 Targets")}, nil)

	result, err := service.AddToList(ctx, []string{"acct_1"}, "Q1 Targets")

	assert.NoError(t, err)
	count := 0
	for _, l := range result.Updated[0].LabelNames {
		if l == "Q1 Targets" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	mockRecords.AssertExpectations(t)
}

func TestListService_RemoveFromList_AbsentLabelIsNoOp(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())
	ctx := context.Background()

	mockRecords.On("SearchRecords", ctx, mock.Anything).
		Return(singlePage(record("acct_1", "Enterprise")), nil)
	mockRecords.On("BulkUpdateLabels", ctx, []entities.LabelUpdate{
		{ID: "acct_1", LabelNames: []string{"Enterprise"}},
	}).Return([]entities.Record{record("acct_1", "Enterprise")}, nil)

	result, err := service.RemoveFromList(ctx, []string{"acct_1"}, "Q1 Targets")

	// Still counted as found and updated, even though nothing changed.
	assert.NoError(t, err)
	assert.Equal(t, []string{"acct_1"}, result.Found)
	assert.Equal(t, []string{"Enterprise"}, result.Updated[0].LabelNames)
	mockRecords.AssertExpectations(t)
}

func TestListService_PartialMatchReporting(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())
	ctx := context.Background()

	mockRecords.On("SearchRecords", ctx, mock.Anything).
		Return(singlePage(record("acct_a", "X"), record("acct_c")), nil)
	mockRecords.On("BulkUpdateLabels", ctx, mock.Anything).
		Return([]entities.Record{record("acct_a", "X", "New List"), record("acct_c", "New List")}, nil)

	result, err := service.AddToList(ctx, []string{"acct_a", "acct_b", "acct_c"}, "New List")

	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"acct_a", "acct_c"}, result.Found)
	assert.Equal(t, []string{"acct_b"}, result.NotFound)
	assert.Equal(t, 3, result.TotalRequested)
	mockRecords.AssertExpectations(t)
}

func TestListService_DuplicateRequestedIDs(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())
	ctx := context.Background()

	mockRecords.On("SearchRecords", ctx, mock.Anything).
		Return(singlePage(record("acct_1", "A")), nil)
	mockRecords.On("BulkUpdateLabels", ctx, []entities.LabelUpdate{
		{ID: "acct_1", LabelNames: []string{"A", "B"}},
	}).Return([]entities.Record{record("acct_1", "A", "B")}, nil)

	result, err := service.AddToList(ctx, []string{"acct_1", "acct_1", "acct_missing", "acct_missing"}, "B")

	assert.NoError(t, err)
	// Each ID appears once in the partition, but total_requested counts
	// the request as given.
	assert.Equal(t, []string{"acct_1"}, result.Found)
	assert.Equal(t, []string{"acct_missing"}, result.NotFound)
	assert.Equal(t, 4, result.TotalRequested)
	mockRecords.AssertExpectations(t)
}

func TestListService_BatchCeilingRejectedBeforeAnyCall(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())

	ids := make([]string, MaxListBatch+1)
	for i := range ids {
		ids[i] = "acct"
	}

	result, err := service.AddToList(context.Background(), ids, "Some List")

	assert.Error(t, err)
	assert.Nil(t, result)
	var validationErr *errors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockRecords.AssertNotCalled(t, "SearchRecords", mock.Anything, mock.Anything)
	mockRecords.AssertNotCalled(t, "BulkUpdateLabels", mock.Anything, mock.Anything)
}

func TestListService_EmptyInputsRejected(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())
	ctx := context.Background()

	var validationErr *errors.ValidationError

	_, err := service.AddToList(ctx, nil, "Some List")
	assert.ErrorAs(t, err, &validationErr)

	_, err = service.RemoveFromList(ctx, []string{"acct_1"}, "")
	assert.ErrorAs(t, err, &validationErr)

	mockRecords.AssertNotCalled(t, "SearchRecords", mock.Anything, mock.Anything)
}

func TestListService_UntargetedRecordsNeverWritten(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())
	ctx := context.Background()

	// Discovery surfaces a bystander record that was not requested.
	mockRecords.On("SearchRecords", ctx, mock.Anything).
		Return(singlePage(record("acct_bystander", "Keep Me"), record("acct_1", "A")), nil)
	mockRecords.On("BulkUpdateLabels", ctx, mock.MatchedBy(func(updates []entities.LabelUpdate) bool {
		for _, u := range updates {
			if u.ID == "acct_bystander" {
				return false
			}
		}
		return len(updates) == 1 && updates[0].ID == "acct_1"
	})).Return([]entities.Record{record("acct_1", "A", "B")}, nil)

	result, err := service.AddToList(ctx, []string{"acct_1"}, "B")

	assert.NoError(t, err)
	assert.Equal(t, []string{"acct_1"}, result.Found)
	mockRecords.AssertExpectations(t)
}

func TestListService_NoMatchesSkipsWrite(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())
	ctx := context.Background()

	mockRecords.On("SearchRecords", ctx, mock.Anything).Return(singlePage(), nil)

	result, err := service.AddToList(ctx, []string{"acct_ghost"}, "Some List")

	assert.NoError(t, err)
	assert.Empty(t, result.Found)
	assert.Equal(t, []string{"acct_ghost"}, result.NotFound)
	assert.Empty(t, result.Updated)
	assert.Equal(t, 1, result.TotalRequested)
	mockRecords.AssertNotCalled(t, "BulkUpdateLabels", mock.Anything, mock.Anything)
}

func TestListService_DiscoveryPagesUntilAllFound(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())
	ctx := context.Background()

	pageOf := func(page int, records ...entities.Record) *entities.RecordPage {
		return &entities.RecordPage{
			Records:    records,
			Pagination: entities.Pagination{Page: page, PerPage: discoverPerPage, TotalEntries: 250, TotalPages: 3},
		}
	}

	mockRecords.On("SearchRecords", ctx, entities.RecordSearchQuery{Page: 1, PerPage: discoverPerPage}).
		Return(pageOf(1, record("acct_other")), nil).Once()
	mockRecords.On("SearchRecords", ctx, entities.RecordSearchQuery{Page: 2, PerPage: discoverPerPage}).
		Return(pageOf(2, record("acct_1", "A")), nil).Once()
	mockRecords.On("BulkUpdateLabels", ctx, mock.Anything).
		Return([]entities.Record{record("acct_1", "A", "B")}, nil)

	result, err := service.AddToList(ctx, []string{"acct_1"}, "B")

	// Page 3 is never requested: paging stops once every ID is seen.
	assert.NoError(t, err)
	assert.Equal(t, []string{"acct_1"}, result.Found)
	mockRecords.AssertExpectations(t)
}

func TestListService_DiscoveryErrorAbortsWithoutWrite(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())
	ctx := context.Background()

	mockRecords.On("SearchRecords", ctx, mock.Anything).
		Return(nil, errors.InternalErrorf("apollo request failed: status 500"))

	result, err := service.AddToList(ctx, []string{"acct_1"}, "Some List")

	assert.Error(t, err)
	assert.Nil(t, result)
	mockRecords.AssertNotCalled(t, "BulkUpdateLabels", mock.Anything, mock.Anything)
}

func TestListService_WriteErrorAborts(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())
	ctx := context.Background()

	mockRecords.On("SearchRecords", ctx, mock.Anything).
		Return(singlePage(record("acct_1", "A")), nil)
	mockRecords.On("BulkUpdateLabels", ctx, mock.Anything).
		Return(nil, errors.InternalErrorf("apollo request failed: status 502"))

	result, err := service.AddToList(ctx, []string{"acct_1"}, "B")

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestListService_UnauthorizedIsDistinctFromNotFound(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())
	ctx := context.Background()

	mockRecords.On("SearchRecords", ctx, mock.Anything).
		Return(nil, errors.UnauthorizedErrorf("apollo rejected the call: master API key required"))

	result, err := service.AddToList(ctx, []string{"acct_1"}, "Some List")

	assert.Error(t, err)
	assert.Nil(t, result)
	var unauthorizedErr *errors.UnauthorizedError
	assert.ErrorAs(t, err, &unauthorizedErr)
	var notFoundErr *errors.NotFoundError
	assert.False(t, goerrors.As(err, &notFoundErr))
}

func TestListService_AddThenAddAgainIsIdempotent(t *testing.T) {
	mockRecords := new(mockRecordService)
	service := NewListService(mockRecords, zap.NewNop())
	ctx := context.Background()

	// First call: label absent.
	mockRecords.On("SearchRecords", ctx, mock.Anything).
		Return(singlePage(record("acct_1", "A")), nil).Once()
	mockRecords.On("BulkUpdateLabels", ctx, []entities.LabelUpdate{
		{ID: "acct_1", LabelNames: []string{"A", "B"}},
	}).Return([]entities.Record{record("acct_1", "A", "B")}, nil).Twice()

	first, err := service.AddToList(ctx, []string{"acct_1"}, "B")
	assert.NoError(t, err)

	// Second call: label now present; the computed set is identical.
	mockRecords.On("SearchRecords", ctx, mock.Anything).
		Return(singlePage(record("acct_1", "A", "B")), nil).Once()

	second, err := service.AddToList(ctx, []string{"acct_1"}, "B")
	assert.NoError(t, err)
	assert.ElementsMatch(t, first.Updated[0].LabelNames, second.Updated[0].LabelNames)
	mockRecords.AssertExpectations(t)
}

func TestMergeLabels(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "X"}, mergeLabels([]string{"A", "B"}, "X", listModeAdd))
	assert.Equal(t, []string{"A", "X"}, mergeLabels([]string{"A", "X"}, "X", listModeAdd))
	assert.Equal(t, []string{"A"}, mergeLabels([]string{"A", "X"}, "X", listModeRemove))
	assert.Equal(t, []string{"A"}, mergeLabels([]string{"A"}, "X", listModeRemove))
	assert.Equal(t, []string{"X"}, mergeLabels(nil, "X", listModeAdd))
	assert.Equal(t, []string{}, mergeLabels(nil, "X", listModeRemove))
	// Pre-existing duplicates collapse.
	assert.Equal(t, []string{"A", "X"}, mergeLabels([]string{"A", "A", "X"}, "X", listModeAdd))
}
