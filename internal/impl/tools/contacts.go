package tools

import (
	"context"

	"apollomcp/internal/domain/entities"

	"github.com/mark3labs/mcp-go/mcp"
)

type contactAPI interface {
	ContactSearch(ctx context.Context, query entities.RecordSearchQuery) (*entities.RecordPage, error)
	ContactCreate(ctx context.Context, request entities.ContactCreateRequest) (map[string]any, error)
	ContactUpdate(ctx context.Context, contactID string, request entities.ContactUpdateRequest) (map[string]any, error)
	ContactBulkCreate(ctx context.Context, contacts []map[string]any) (map[string]any, error)
	ContactBulkUpdate(ctx context.Context, contacts []map[string]any) (map[string]any, error)
}

// ContactSearchTool searches contacts saved to the CRM.
type ContactSearchTool struct {
	api contactAPI
}

func NewContactSearchTool(api contactAPI) *ContactSearchTool {
	return &ContactSearchTool{api: api}
}

func (t *ContactSearchTool) Definition() mcp.Tool {
	return mcp.NewTool("contact_search",
		mcp.WithDescription("Search contacts saved to YOUR Apollo CRM (not the global database; use "+
			"people_search for prospecting). Matches name, email, company, title. Returns contact_id "+
			"which contact_update requires."),
		mcp.WithString("query", mcp.Description("Search query matching name, email, company, title")),
		mcp.WithArray("label_ids", stringItems(),
			mcp.Description("Filter by list IDs (lists are called 'labels' in the Apollo API)")),
		mcp.WithNumber("page", mcp.Description("Page number (default 1)")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (default 25, max 100)")),
	)
}

func (t *ContactSearchTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := entities.RecordSearchQuery{
		Query:    stringArg(request, "query"),
		LabelIDs: stringSliceArg(request, "label_ids"),
		Page:     intArg(request, "page", 1),
		PerPage:  intArg(request, "per_page", 25),
	}

	page, err := t.api.ContactSearch(ctx, query)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(map[string]any{
		"contacts":   page.Records,
		"pagination": page.Pagination,
	})
}

// The scalar phone_number argument becomes an Apollo phone_numbers
// entry with type mobile.
func contactCreateFromArgs(request mcp.CallToolRequest) entities.ContactCreateRequest {
	out := entities.ContactCreateRequest{
		FirstName:        stringArg(request, "first_name"),
		LastName:         stringArg(request, "last_name"),
		Email:            stringArg(request, "email"),
		OrganizationName: stringArg(request, "organization_name"),
		Title:            stringArg(request, "title"),
		LabelNames:       stringSliceArg(request, "label_names"),
		City:             stringArg(request, "city"),
		State:            stringArg(request, "state"),
		Country:          stringArg(request, "country"),
		LinkedinURL:      stringArg(request, "linkedin_url"),
	}
	if phone := stringArg(request, "phone_number"); phone != "" {
		out.PhoneNumbers = []entities.PhoneNumber{{RawNumber: phone, Type: "mobile"}}
	}
	return out
}

// ContactCreateTool creates a contact, optionally adding it to lists.
type ContactCreateTool struct {
	api contactAPI
}

func NewContactCreateTool(api contactAPI) *ContactCreateTool {
	return &ContactCreateTool{api: api}
}

func (t *ContactCreateTool) Definition() mcp.Tool {
	return mcp.NewTool("contact_create",
		mcp.WithDescription("Create a new contact in your Apollo CRM and optionally add it to lists. "+
			"Email is recommended for future updates and enrichment. Lists named in label_names are "+
			"created automatically if they don't exist. Returns the created contact with contact_id."),
		mcp.WithString("first_name", mcp.Required(), mcp.Description("Contact's first name")),
		mcp.WithString("last_name", mcp.Required(), mcp.Description("Contact's last name")),
		mcp.WithString("email", mcp.Description("Email address (recommended)")),
		mcp.WithString("organization_name", mcp.Description("Company or organization name")),
		mcp.WithString("title", mcp.Description("Job title")),
		mcp.WithArray("label_names", stringItems(),
			mcp.Description("Lists to add the contact to, e.g. [\"Hot Leads\", \"Q1 2024\"]")),
		mcp.WithString("phone_number", mcp.Description("Phone number in international format, e.g. \"+1-555-0123\"")),
		mcp.WithString("city", mcp.Description("City")),
		mcp.WithString("state", mcp.Description("State or province")),
		mcp.WithString("country", mcp.Description("Country code, e.g. \"US\"")),
		mcp.WithString("linkedin_url", mcp.Description("LinkedIn profile URL")),
	)
}

func (t *ContactCreateTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := t.api.ContactCreate(ctx, contactCreateFromArgs(request))
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

// ContactUpdateTool updates a contact. Only provided fields change, but
// label_names replaces the contact's lists entirely.
type ContactUpdateTool struct {
	api contactAPI
}

func NewContactUpdateTool(api contactAPI) *ContactUpdateTool {
	return &ContactUpdateTool{api: api}
}

func (t *ContactUpdateTool) Definition() mcp.Tool {
	return mcp.NewTool("contact_update",
		mcp.WithDescription("Update an existing contact in your Apollo CRM. Only provided fields are "+
			"updated. WARNING: label_names REPLACES the contact's lists entirely; use "+
			"contact_add_to_list / contact_remove_from_list to change one list safely. "+
			"Use contact_search to find the contact_id."),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("Apollo contact ID")),
		mcp.WithString("first_name", mcp.Description("Update first name")),
		mcp.WithString("last_name", mcp.Description("Update last name")),
		mcp.WithString("email", mcp.Description("Update email address")),
		mcp.WithString("organization_name", mcp.Description("Update company name")),
		mcp.WithString("title", mcp.Description("Update job title")),
		mcp.WithArray("label_names", stringItems(),
			mcp.Description("Replace list membership entirely")),
		mcp.WithString("phone_number", mcp.Description("Update phone number")),
		mcp.WithString("city", mcp.Description("Update city")),
		mcp.WithString("state", mcp.Description("Update state or province")),
		mcp.WithString("country", mcp.Description("Update country code")),
		mcp.WithString("linkedin_url", mcp.Description("Update LinkedIn profile URL")),
	)
}

func (t *ContactUpdateTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contactID := stringArg(request, "contact_id")
	if contactID == "" {
		return mcp.NewToolResultError("validation: contact_id is required"), nil
	}

	update := entities.ContactUpdateRequest{
		FirstName:        stringArg(request, "first_name"),
		LastName:         stringArg(request, "last_name"),
		Email:            stringArg(request, "email"),
		OrganizationName: stringArg(request, "organization_name"),
		Title:            stringArg(request, "title"),
		LabelNames:       stringSliceArg(request, "label_names"),
		City:             stringArg(request, "city"),
		State:            stringArg(request, "state"),
		Country:          stringArg(request, "country"),
		LinkedinURL:      stringArg(request, "linkedin_url"),
	}
	if phone := stringArg(request, "phone_number"); phone != "" {
		update.PhoneNumbers = []entities.PhoneNumber{{RawNumber: phone, Type: "mobile"}}
	}

	result, err := t.api.ContactUpdate(ctx, contactID, update)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

// ContactBulkCreateTool creates up to 100 contacts in one request.
type ContactBulkCreateTool struct {
	api contactAPI
}

func NewContactBulkCreateTool(api contactAPI) *ContactBulkCreateTool {
	return &ContactBulkCreateTool{api: api}
}

func (t *ContactBulkCreateTool) Definition() mcp.Tool {
	return mcp.NewTool("contact_bulk_create",
		mcp.WithDescription("Bulk create up to 100 contacts in your Apollo CRM. More efficient than "+
			"creating one-by-one. Contacts that already exist (matched by email) are returned in "+
			"existing_contacts but are NOT updated. Lists named in label_names are created "+
			"automatically."),
		mcp.WithArray("contacts", mcp.Required(), objectItems(),
			mcp.Description("Contact objects (max 100), each with first_name and last_name plus "+
				"optional email, organization_name, title, label_names, city, state, country, linkedin_url")),
	)
}

func (t *ContactBulkCreateTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := t.api.ContactBulkCreate(ctx, mapSliceArg(request, "contacts"))
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

// ContactBulkUpdateTool updates up to 100 contacts in one request.
type ContactBulkUpdateTool struct {
	api contactAPI
}

func NewContactBulkUpdateTool(api contactAPI) *ContactBulkUpdateTool {
	return &ContactBulkUpdateTool{api: api}
}

func (t *ContactBulkUpdateTool) Definition() mcp.Tool {
	return mcp.NewTool("contact_bulk_update",
		mcp.WithDescription("Bulk update up to 100 contacts in your Apollo CRM. Only provided fields "+
			"change per contact. WARNING: label_names REPLACES each contact's lists entirely; use the "+
			"list helper tools to change one list safely."),
		mcp.WithArray("contacts", mcp.Required(), objectItems(),
			mcp.Description("Contact objects (max 100), each with id plus the fields to update")),
	)
}

func (t *ContactBulkUpdateTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := t.api.ContactBulkUpdate(ctx, mapSliceArg(request, "contacts"))
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}
