package apollo

import (
	"context"
	"net/http"
	"net/url"

	"apollomcp/internal/domain/entities"
	"apollomcp/internal/domain/errors"
)

type contactPage struct {
	Contacts   []entities.Record   `json:"contacts"`
	Pagination entities.Pagination `json:"pagination"`
}

// ContactSearch searches contacts saved to the CRM (not the global
// people database).
func (c *Client) ContactSearch(ctx context.Context, query entities.RecordSearchQuery) (*entities.RecordPage, error) {
	params := url.Values{}
	if query.Query != "" {
		params.Set("q", query.Query)
	}
	for _, id := range query.LabelIDs {
		params.Add("contact_label_ids[]", id)
	}
	page := query.Page
	if page <= 0 {
		page = 1
	}
	params.Set("page", itoa(page))
	params.Set("per_page", itoa(capPerPage(query.PerPage)))

	var out contactPage
	if err := c.do(ctx, http.MethodGet, "/contacts/search", params, nil, &out); err != nil {
		return nil, err
	}
	return &entities.RecordPage{Records: out.Contacts, Pagination: out.Pagination}, nil
}

// ContactCreate creates a new contact. Lists named in LabelNames are
// created automatically if they do not exist.
func (c *Client) ContactCreate(ctx context.Context, request entities.ContactCreateRequest) (map[string]any, error) {
	if request.FirstName == "" || request.LastName == "" {
		return nil, errors.ValidationErrorf("first and last name are required")
	}

	var out map[string]any
	if err := c.do(ctx, http.MethodPost, "/contacts", nil, request, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContactUpdate updates an existing contact. Only the provided fields
// change; label_names replaces the contact's lists entirely.
func (c *Client) ContactUpdate(ctx context.Context, contactID string, request entities.ContactUpdateRequest) (map[string]any, error) {
	if contactID == "" {
		return nil, errors.ValidationErrorf("contact ID is required")
	}

	var out map[string]any
	if err := c.do(ctx, http.MethodPut, "/contacts/"+url.PathEscape(contactID), nil, request, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContactBulkCreate creates up to 100 contacts in one call. Contacts
// that already exist (matched by email) are reported, not updated.
func (c *Client) ContactBulkCreate(ctx context.Context, contacts []map[string]any) (map[string]any, error) {
	if len(contacts) == 0 {
		return nil, errors.ValidationErrorf("at least one contact is required")
	}
	if len(contacts) > maxBulkRecords {
		return nil, errors.ValidationErrorf("too many contacts: got %d, maximum is %d", len(contacts), maxBulkRecords)
	}

	var out map[string]any
	if err := c.do(ctx, http.MethodPost, "/contacts/bulk_create", nil, map[string]any{"contacts": contacts}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContactBulkUpdate updates up to 100 contacts in one call. Each entry
// must carry an id; label_names replaces lists entirely per contact.
func (c *Client) ContactBulkUpdate(ctx context.Context, contacts []map[string]any) (map[string]any, error) {
	if len(contacts) == 0 {
		return nil, errors.ValidationErrorf("at least one contact is required")
	}
	if len(contacts) > maxBulkRecords {
		return nil, errors.ValidationErrorf("too many contacts: got %d, maximum is %d", len(contacts), maxBulkRecords)
	}

	var out map[string]any
	if err := c.do(ctx, http.MethodPost, "/contacts/bulk_update", nil, map[string]any{"contacts": contacts}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
