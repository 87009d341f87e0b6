package tools

import (
	"context"
	"encoding/json"
	"testing"

	"apollomcp/internal/domain/entities"
	"apollomcp/internal/domain/errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockListManager struct {
	mock.Mock
}

func (m *mockListManager) AddToList(ctx context.Context, recordIDs []string, labelName string) (*entities.ReconcileResult, error) {
	args := m.Called(ctx, recordIDs, labelName)
	if result := args.Get(0); result != nil {
		return result.(*entities.ReconcileResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListManager) RemoveFromList(ctx context.Context, recordIDs []string, labelName string) (*entities.ReconcileResult, error) {
	args := m.Called(ctx, recordIDs, labelName)
	if result := args.Get(0); result != nil {
		return result.(*entities.ReconcileResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	assert.Len(t, result.Content, 1)
	text, ok := mcp.AsTextContent(result.Content[0])
	assert.True(t, ok)
	return text.Text
}

func TestAccountAddToList_ResultShape(t *testing.T) {
	lists := new(mockListManager)
	lists.On("AddToList", mock.Anything, []string{"account_1", "account_2"}, "Enterprise Targets").
		Return(&entities.ReconcileResult{
			Found:          []string{"account_1"},
			NotFound:       []string{"account_2"},
			Updated:        []entities.Record{{ID: "account_1", LabelNames: []string{"Enterprise Targets"}}},
			TotalRequested: 2,
		}, nil)

	tool := NewAccountAddToListTool(lists)
	result, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"account_ids": []any{"account_1", "account_2"},
		"label_name":  "Enterprise Targets",
	}))
	assert.NoError(t, err)
	assert.False(t, result.IsError)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Equal(t, []any{"account_1"}, payload["found_ids"])
	assert.Equal(t, []any{"account_2"}, payload["not_found_ids"])
	assert.Equal(t, float64(2), payload["total_requested"])

	updated := payload["updated_accounts"].([]any)
	assert.Len(t, updated, 1)
	assert.Equal(t, "account_1", updated[0].(map[string]any)["id"])

	_, hasContacts := payload["updated_contacts"]
	assert.False(t, hasContacts)

	lists.AssertExpectations(t)
}

func TestContactRemoveFromList_UsesContactArgNames(t *testing.T) {
	lists := new(mockListManager)
	lists.On("RemoveFromList", mock.Anything, []string{"contact_1"}, "Cold Leads").
		Return(&entities.ReconcileResult{
			Found:          []string{"contact_1"},
			Updated:        []entities.Record{{ID: "contact_1"}},
			TotalRequested: 1,
		}, nil)

	tool := NewContactRemoveFromListTool(lists)
	result, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"contact_ids": []any{"contact_1"},
		"label_name":  "Cold Leads",
	}))
	assert.NoError(t, err)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Contains(t, payload, "updated_contacts")
	// Empty partitions serialize as [], never null.
	assert.Equal(t, []any{}, payload["not_found_ids"])

	lists.AssertExpectations(t)
}

func TestAddToList_ValidationErrorSurface(t *testing.T) {
	lists := new(mockListManager)
	lists.On("AddToList", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.ValidationErrorf("too many record ids: got 11, maximum is 10"))

	tool := NewAccountAddToListTool(lists)
	result, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"account_ids": []any{"a"},
		"label_name":  "X",
	}))

	assert.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "validation:")
}

func TestAddToList_UnauthorizedErrorSurface(t *testing.T) {
	lists := new(mockListManager)
	lists.On("AddToList", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.UnauthorizedErrorf("this endpoint requires a master api key"))

	tool := NewAccountAddToListTool(lists)
	result, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"account_ids": []any{"a"},
		"label_name":  "X",
	}))

	assert.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "unauthorized:")
}

func TestToolNamesFollowRecordKind(t *testing.T) {
	lists := new(mockListManager)

	assert.Equal(t, "account_add_to_list", NewAccountAddToListTool(lists).Definition().Name)
	assert.Equal(t, "account_remove_from_list", NewAccountRemoveFromListTool(lists).Definition().Name)
	assert.Equal(t, "contact_add_to_list", NewContactAddToListTool(lists).Definition().Name)
	assert.Equal(t, "contact_remove_from_list", NewContactRemoveFromListTool(lists).Definition().Name)
}
