package apollo

import (
	"context"
	"net/http"

	"apollomcp/internal/domain/entities"
	"apollomcp/internal/domain/interfaces"
)

// accountRecords adapts the account endpoints to the RecordService
// contract the list reconciler consumes.
type accountRecords struct {
	client *Client
}

// AccountRecords returns the account collection as a RecordService.
func (c *Client) AccountRecords() interfaces.RecordService {
	return &accountRecords{client: c}
}

func (a *accountRecords) SearchRecords(ctx context.Context, query entities.RecordSearchQuery) (*entities.RecordPage, error) {
	return a.client.AccountSearch(ctx, query)
}

func (a *accountRecords) BulkUpdateLabels(ctx context.Context, updates []entities.LabelUpdate) ([]entities.Record, error) {
	var out struct {
		Accounts []entities.Record `json:"accounts"`
	}
	body := map[string]any{"accounts": updates}
	if err := a.client.do(ctx, http.MethodPost, "/accounts/bulk_update", nil, body, &out); err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

// contactRecords adapts the contact endpoints to the RecordService
// contract.
type contactRecords struct {
	client *Client
}

// ContactRecords returns the contact collection as a RecordService.
func (c *Client) ContactRecords() interfaces.RecordService {
	return &contactRecords{client: c}
}

func (a *contactRecords) SearchRecords(ctx context.Context, query entities.RecordSearchQuery) (*entities.RecordPage, error) {
	return a.client.ContactSearch(ctx, query)
}

func (a *contactRecords) BulkUpdateLabels(ctx context.Context, updates []entities.LabelUpdate) ([]entities.Record, error) {
	var out struct {
		Contacts []entities.Record `json:"contacts"`
	}
	body := map[string]any{"contacts": updates}
	if err := a.client.do(ctx, http.MethodPost, "/contacts/bulk_update", nil, body, &out); err != nil {
		return nil, err
	}
	return out.Contacts, nil
}

var (
	_ interfaces.RecordService = (*accountRecords)(nil)
	_ interfaces.RecordService = (*contactRecords)(nil)
)
