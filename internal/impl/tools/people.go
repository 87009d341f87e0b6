package tools

import (
	"context"

	"apollomcp/internal/domain/entities"

	"github.com/mark3labs/mcp-go/mcp"
)

type peopleAPI interface {
	PeopleEnrichment(ctx context.Context, query entities.PeopleEnrichmentQuery) (map[string]any, error)
	PeopleBulkEnrichment(ctx context.Context, query entities.BulkPeopleEnrichmentQuery) (map[string]any, error)
	PeopleSearch(ctx context.Context, query entities.PeopleSearchQuery) (map[string]any, error)
}

// PeopleEnrichmentTool enriches a single person from identification
// fields.
type PeopleEnrichmentTool struct {
	api peopleAPI
}

func NewPeopleEnrichmentTool(api peopleAPI) *PeopleEnrichmentTool {
	return &PeopleEnrichmentTool{api: api}
}

func (t *PeopleEnrichmentTool) Definition() mcp.Tool {
	return mcp.NewTool("people_enrichment",
		mcp.WithDescription("Enrich data for a single person by providing identifying information. "+
			"Provide one or more of: id (Apollo person ID), email, name (or first_name + last_name), "+
			"linkedin_url, hashed_email, or domain/organization_name combined with a name. "+
			"Basic enrichment consumes no credits; reveal_personal_emails and reveal_phone_number may. "+
			"If reveal_phone_number is true, webhook_url is required and numbers arrive asynchronously."),
		mcp.WithString("id", mcp.Description("Apollo person ID (from people_search results)")),
		mcp.WithString("email", mcp.Description("Email address")),
		mcp.WithString("hashed_email", mcp.Description("MD5 or SHA-256 hashed email")),
		mcp.WithString("name", mcp.Description("Full name, e.g. \"Tim Zheng\"")),
		mcp.WithString("first_name", mcp.Description("First name (combine with last_name)")),
		mcp.WithString("last_name", mcp.Description("Last name (combine with first_name)")),
		mcp.WithString("domain", mcp.Description("Employer domain, combine with a name")),
		mcp.WithString("organization_name", mcp.Description("Employer name, combine with a name")),
		mcp.WithString("linkedin_url", mcp.Description("LinkedIn profile URL")),
		mcp.WithBoolean("reveal_personal_emails", mcp.Description("Reveal personal emails (may consume credits)")),
		mcp.WithBoolean("reveal_phone_number", mcp.Description("Reveal phone numbers (may consume credits, requires webhook_url)")),
		mcp.WithString("webhook_url", mcp.Description("Webhook for asynchronous phone number delivery")),
	)
}

func (t *PeopleEnrichmentTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var query entities.PeopleEnrichmentQuery
	if err := decodeArgs(request, &query); err != nil {
		return mcp.NewToolResultError("validation: " + err.Error()), nil
	}

	result, err := t.api.PeopleEnrichment(ctx, query)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

// PeopleBulkEnrichmentTool enriches up to 10 people in one request.
type PeopleBulkEnrichmentTool struct {
	api peopleAPI
}

func NewPeopleBulkEnrichmentTool(api peopleAPI) *PeopleBulkEnrichmentTool {
	return &PeopleBulkEnrichmentTool{api: api}
}

func (t *PeopleBulkEnrichmentTool) Definition() mcp.Tool {
	return mcp.NewTool("people_bulk_enrichment",
		mcp.WithDescription("Enrich data for up to 10 people in a single request. Each entry in "+
			"details takes the same identification fields as people_enrichment (id, email, name, "+
			"linkedin_url, hashed_email, domain/organization_name plus a name). More efficient than "+
			"individual enrichment calls. Basic enrichment consumes no credits."),
		mcp.WithArray("details", mcp.Required(), objectItems(),
			mcp.Description("Person identification objects, up to 10")),
		mcp.WithBoolean("reveal_personal_emails", mcp.Description("Reveal personal emails for all matched people (may consume credits)")),
		mcp.WithBoolean("reveal_phone_number", mcp.Description("Reveal phone numbers for all matched people (requires webhook_url)")),
		mcp.WithString("webhook_url", mcp.Description("Webhook for asynchronous phone number delivery")),
	)
}

func (t *PeopleBulkEnrichmentTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var query entities.BulkPeopleEnrichmentQuery
	if err := decodeArgs(request, &query); err != nil {
		return mcp.NewToolResultError("validation: " + err.Error()), nil
	}

	result, err := t.api.PeopleBulkEnrichment(ctx, query)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

// PeopleSearchTool searches the global people database.
type PeopleSearchTool struct {
	api peopleAPI
}

func NewPeopleSearchTool(api peopleAPI) *PeopleSearchTool {
	return &PeopleSearchTool{api: api}
}

func (t *PeopleSearchTool) Definition() mcp.Tool {
	return mcp.NewTool("people_search",
		mcp.WithDescription("Search Apollo's global database of contacts to find people matching your "+
			"criteria. Does not consume credits. Returns person_id for use with people_enrichment. "+
			"This searches the global database, not your CRM; use contact_search for saved contacts."),
		mcp.WithArray("person_titles", stringItems(),
			mcp.Description("Job titles, e.g. [\"marketing manager\", \"sales director\"]")),
		mcp.WithBoolean("include_similar_titles", mcp.Description("Also match similar titles (default true)")),
		mcp.WithArray("person_seniorities", stringItems(),
			mcp.Description("Seniority levels: owner, founder, c_suite, partner, vp, head, director, manager, senior, entry, intern")),
		mcp.WithArray("person_locations", stringItems(),
			mcp.Description("Where people live, e.g. [\"california\", \"ireland\"]")),
		mcp.WithArray("contact_email_status", stringItems(),
			mcp.Description("Email quality: verified, unverified, likely to engage, unavailable")),
		mcp.WithArray("organization_ids", stringItems(),
			mcp.Description("Apollo organization IDs from organization_search")),
		mcp.WithArray("q_organization_domains_list", stringItems(),
			mcp.Description("Employer domains, up to 1000")),
		mcp.WithArray("organization_locations", stringItems(),
			mcp.Description("Company HQ locations")),
		mcp.WithArray("organization_num_employees_ranges", stringItems(),
			mcp.Description("Company size ranges, e.g. [\"1,10\", \"250,500\"]")),
		mcp.WithString("q_keywords", mcp.Description("Keyword search across profile data")),
		mcp.WithNumber("page", mcp.Description("Page number (default 1)")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (default 25, max 100)")),
	)
}

func (t *PeopleSearchTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var query entities.PeopleSearchQuery
	if err := decodeArgs(request, &query); err != nil {
		return mcp.NewToolResultError("validation: " + err.Error()), nil
	}

	result, err := t.api.PeopleSearch(ctx, query)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}
