package tools

import (
	"context"

	"apollomcp/internal/domain/entities"

	"github.com/mark3labs/mcp-go/mcp"
)

type organizationAPI interface {
	OrganizationEnrichment(ctx context.Context, query entities.OrganizationEnrichmentQuery) (map[string]any, error)
	OrganizationSearch(ctx context.Context, query entities.OrganizationSearchQuery) (map[string]any, error)
	OrganizationJobPostings(ctx context.Context, organizationID string) (map[string]any, error)
}

// OrganizationEnrichmentTool enriches a company by domain.
type OrganizationEnrichmentTool struct {
	api organizationAPI
}

func NewOrganizationEnrichmentTool(api organizationAPI) *OrganizationEnrichmentTool {
	return &OrganizationEnrichmentTool{api: api}
}

func (t *OrganizationEnrichmentTool) Definition() mcp.Tool {
	return mcp.NewTool("organization_enrichment",
		mcp.WithDescription("Enrich company data by domain. Returns company basics, metrics, social "+
			"profiles, funding, tech stack, and account status from Apollo's global database. "+
			"Does not consume credits."),
		mcp.WithString("domain", mcp.Required(),
			mcp.Description("Company domain without www, e.g. \"apollo.io\"")),
	)
}

func (t *OrganizationEnrichmentTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var query entities.OrganizationEnrichmentQuery
	if err := decodeArgs(request, &query); err != nil {
		return mcp.NewToolResultError("validation: " + err.Error()), nil
	}

	result, err := t.api.OrganizationEnrichment(ctx, query)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

// OrganizationSearchTool searches the global company database.
type OrganizationSearchTool struct {
	api organizationAPI
}

func NewOrganizationSearchTool(api organizationAPI) *OrganizationSearchTool {
	return &OrganizationSearchTool{api: api}
}

func (t *OrganizationSearchTool) Definition() mcp.Tool {
	return mcp.NewTool("organization_search",
		mcp.WithDescription("Search companies by size, revenue, location, technology, and keywords. "+
			"Does not consume credits. Returns organization_id for organization_enrichment and "+
			"people_search. This searches the global database; use account_search for saved accounts."),
		mcp.WithArray("organization_num_employees_ranges", stringItems(),
			mcp.Description("Company size ranges, e.g. [\"1,10\", \"250,500\"]")),
		mcp.WithArray("organization_locations", stringItems(),
			mcp.Description("Company HQ locations")),
		mcp.WithArray("organization_not_locations", stringItems(),
			mcp.Description("Exclude companies with HQ in these locations")),
		mcp.WithNumber("revenue_range_min", mcp.Description("Minimum annual revenue")),
		mcp.WithNumber("revenue_range_max", mcp.Description("Maximum annual revenue")),
		mcp.WithArray("currently_using_any_of_technology_uids", stringItems(),
			mcp.Description("Technology UIDs, e.g. [\"salesforce\", \"google_analytics\"]")),
		mcp.WithArray("q_organization_keyword_tags", stringItems(),
			mcp.Description("Industry or keyword tags, e.g. [\"mining\", \"saas\"]")),
		mcp.WithString("q_organization_name", mcp.Description("Company name filter")),
		mcp.WithArray("organization_ids", stringItems(),
			mcp.Description("Restrict to these Apollo organization IDs")),
		mcp.WithNumber("page", mcp.Description("Page number (default 1)")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (default 25, max 100)")),
	)
}

func (t *OrganizationSearchTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var query entities.OrganizationSearchQuery
	if err := decodeArgs(request, &query); err != nil {
		return mcp.NewToolResultError("validation: " + err.Error()), nil
	}

	result, err := t.api.OrganizationSearch(ctx, query)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

// OrganizationJobPostingsTool lists a company's active job postings.
type OrganizationJobPostingsTool struct {
	api organizationAPI
}

func NewOrganizationJobPostingsTool(api organizationAPI) *OrganizationJobPostingsTool {
	return &OrganizationJobPostingsTool{api: api}
}

func (t *OrganizationJobPostingsTool) Definition() mcp.Tool {
	return mcp.NewTool("organization_job_postings",
		mcp.WithDescription("Get active job postings for a company. Useful for identifying hiring "+
			"signals and growth areas. Does not consume credits. Returns postings with title, url, "+
			"location, posted_at, and last_seen_at."),
		mcp.WithString("organization_id", mcp.Required(),
			mcp.Description("Apollo organization ID from organization_search")),
	)
}

func (t *OrganizationJobPostingsTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	organizationID := stringArg(request, "organization_id")
	if organizationID == "" {
		return mcp.NewToolResultError("validation: organization_id is required"), nil
	}

	result, err := t.api.OrganizationJobPostings(ctx, organizationID)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}
