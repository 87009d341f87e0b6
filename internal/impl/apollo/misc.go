package apollo

import (
	"context"
	"net/http"

	"apollomcp/internal/domain/entities"
	"apollomcp/internal/domain/errors"
)

// UsageStats returns per-endpoint rate limit usage for the account.
// Requires a master API key.
func (c *Client) UsageStats(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodGet, "/usage_stats/api_usage_stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CustomFieldsList lists the typed custom field definitions in the CRM.
func (c *Client) CustomFieldsList(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodGet, "/typed_custom_fields", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CustomFieldCreate creates a new typed custom field definition.
func (c *Client) CustomFieldCreate(ctx context.Context, request entities.CustomFieldCreateRequest) (map[string]any, error) {
	if request.Label == "" {
		return nil, errors.ValidationErrorf("field label is required")
	}
	if request.Type == "" {
		return nil, errors.ValidationErrorf("field type is required")
	}
	if request.Modality == "" {
		return nil, errors.ValidationErrorf("field modality is required")
	}

	var out map[string]any
	if err := c.do(ctx, http.MethodPost, "/typed_custom_fields", nil, request, &out); err != nil {
		return nil, err
	}
	return out, nil
}
