package apollo

import (
	"context"
	"net/http"
	"net/url"

	"apollomcp/internal/domain/entities"
	"apollomcp/internal/domain/errors"
)

// OrganizationEnrichment enriches data for one company by domain.
func (c *Client) OrganizationEnrichment(ctx context.Context, query entities.OrganizationEnrichmentQuery) (map[string]any, error) {
	if query.Domain == "" {
		return nil, errors.ValidationErrorf("domain is required")
	}

	params := url.Values{}
	params.Set("domain", query.Domain)

	var out map[string]any
	if err := c.do(ctx, http.MethodGet, "/organizations/enrich", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrganizationSearch searches Apollo's global company database.
func (c *Client) OrganizationSearch(ctx context.Context, query entities.OrganizationSearchQuery) (map[string]any, error) {
	if query.PerPage > maxPerPage {
		query.PerPage = maxPerPage
	}

	var out map[string]any
	if err := c.do(ctx, http.MethodPost, "/mixed_companies/search", nil, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrganizationJobPostings lists active job postings for a company.
func (c *Client) OrganizationJobPostings(ctx context.Context, organizationID string) (map[string]any, error) {
	if organizationID == "" {
		return nil, errors.ValidationErrorf("organization ID is required")
	}

	var out map[string]any
	if err := c.do(ctx, http.MethodGet, "/organizations/"+url.PathEscape(organizationID)+"/job_postings", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
