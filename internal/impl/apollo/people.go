package apollo

import (
	"context"
	"net/http"

	"apollomcp/internal/domain/entities"
	"apollomcp/internal/domain/errors"
)

// PeopleEnrichment enriches data for one person. Identification fields
// are matched by Apollo; basic enrichment consumes no credits.
func (c *Client) PeopleEnrichment(ctx context.Context, query entities.PeopleEnrichmentQuery) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodPost, "/people/match", nil, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PeopleBulkEnrichment enriches up to 10 people in one request.
func (c *Client) PeopleBulkEnrichment(ctx context.Context, query entities.BulkPeopleEnrichmentQuery) (map[string]any, error) {
	if len(query.Details) == 0 {
		return nil, errors.ValidationErrorf("at least one person detail is required")
	}
	if len(query.Details) > 10 {
		return nil, errors.ValidationErrorf("too many person details: got %d, maximum is 10", len(query.Details))
	}

	var out map[string]any
	if err := c.do(ctx, http.MethodPost, "/people/bulk_match", nil, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PeopleSearch searches Apollo's global people database.
func (c *Client) PeopleSearch(ctx context.Context, query entities.PeopleSearchQuery) (map[string]any, error) {
	if query.PerPage > maxPerPage {
		query.PerPage = maxPerPage
	}

	var out map[string]any
	if err := c.do(ctx, http.MethodPost, "/mixed_people/search", nil, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}
