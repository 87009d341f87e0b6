package apollo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"apollomcp/internal/domain/entities"
	"apollomcp/internal/domain/errors"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

type accountPage struct {
	Accounts   []entities.Record   `json:"accounts"`
	Pagination entities.Pagination `json:"pagination"`
}

// AccountSearch searches accounts saved to the CRM (not the global
// company database).
func (c *Client) AccountSearch(ctx context.Context, query entities.RecordSearchQuery) (*entities.RecordPage, error) {
	params := url.Values{}
	if query.Query != "" {
		params.Set("q", query.Query)
	}
	for _, id := range query.LabelIDs {
		params.Add("account_label_ids[]", id)
	}
	page := query.Page
	if page <= 0 {
		page = 1
	}
	params.Set("page", itoa(page))
	params.Set("per_page", itoa(capPerPage(query.PerPage)))

	var out accountPage
	if err := c.do(ctx, http.MethodGet, "/accounts/search", params, nil, &out); err != nil {
		return nil, err
	}
	return &entities.RecordPage{Records: out.Accounts, Pagination: out.Pagination}, nil
}

// AccountCreate creates a new account. Requires a master API key.
func (c *Client) AccountCreate(ctx context.Context, request entities.AccountCreateRequest) (map[string]any, error) {
	if request.Name == "" {
		return nil, errors.ValidationErrorf("account name is required")
	}

	var out map[string]any
	if err := c.do(ctx, http.MethodPost, "/accounts", nil, request, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AccountUpdate updates an existing account. Requires a master API key.
// Only the provided fields change; label_names replaces the account's
// lists entirely.
func (c *Client) AccountUpdate(ctx context.Context, accountID string, request entities.AccountUpdateRequest) (map[string]any, error) {
	if accountID == "" {
		return nil, errors.ValidationErrorf("account ID is required")
	}

	var out map[string]any
	if err := c.do(ctx, http.MethodPut, "/accounts/"+url.PathEscape(accountID), nil, request, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AccountBulkCreate creates up to 100 accounts in one call. Requires a
// master API key. Accounts that already exist (matched by domain) are
// reported, not updated.
func (c *Client) AccountBulkCreate(ctx context.Context, accounts []map[string]any) (map[string]any, error) {
	if len(accounts) == 0 {
		return nil, errors.ValidationErrorf("at least one account is required")
	}
	if len(accounts) > maxBulkRecords {
		return nil, errors.ValidationErrorf("too many accounts: got %d, maximum is %d", len(accounts), maxBulkRecords)
	}

	var out map[string]any
	if err := c.do(ctx, http.MethodPost, "/accounts/bulk_create", nil, map[string]any{"accounts": accounts}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AccountBulkUpdate updates up to 100 accounts in one call. Requires a
// master API key.
func (c *Client) AccountBulkUpdate(ctx context.Context, accounts []map[string]any) (map[string]any, error) {
	if len(accounts) == 0 {
		return nil, errors.ValidationErrorf("at least one account is required")
	}
	if len(accounts) > maxBulkRecords {
		return nil, errors.ValidationErrorf("too many accounts: got %d, maximum is %d", len(accounts), maxBulkRecords)
	}

	var out map[string]any
	if err := c.do(ctx, http.MethodPost, "/accounts/bulk_update", nil, map[string]any{"accounts": accounts}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
