package tools

import (
	"context"

	"apollomcp/internal/domain/entities"

	"github.com/mark3labs/mcp-go/mcp"
)

type accountAPI interface {
	AccountSearch(ctx context.Context, query entities.RecordSearchQuery) (*entities.RecordPage, error)
	AccountCreate(ctx context.Context, request entities.AccountCreateRequest) (map[string]any, error)
	AccountUpdate(ctx context.Context, accountID string, request entities.AccountUpdateRequest) (map[string]any, error)
	AccountBulkCreate(ctx context.Context, accounts []map[string]any) (map[string]any, error)
	AccountBulkUpdate(ctx context.Context, accounts []map[string]any) (map[string]any, error)
}

// AccountSearchTool searches accounts saved to the CRM.
type AccountSearchTool struct {
	api accountAPI
}

func NewAccountSearchTool(api accountAPI) *AccountSearchTool {
	return &AccountSearchTool{api: api}
}

func (t *AccountSearchTool) Definition() mcp.Tool {
	return mcp.NewTool("account_search",
		mcp.WithDescription("Search accounts saved to YOUR Apollo CRM (not the global database; use "+
			"organization_search for prospecting). Matches name, domain. Returns account_id which "+
			"account_update requires."),
		mcp.WithString("query", mcp.Description("Search query matching name, domain")),
		mcp.WithArray("label_ids", stringItems(),
			mcp.Description("Filter by list IDs (lists are called 'labels' in the Apollo API)")),
		mcp.WithNumber("page", mcp.Description("Page number (default 1)")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (default 25, max 100)")),
	)
}

func (t *AccountSearchTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := entities.RecordSearchQuery{
		Query:    stringArg(request, "query"),
		LabelIDs: stringSliceArg(request, "label_ids"),
		Page:     intArg(request, "page", 1),
		PerPage:  intArg(request, "per_page", 25),
	}

	page, err := t.api.AccountSearch(ctx, query)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(map[string]any{
		"accounts":   page.Records,
		"pagination": page.Pagination,
	})
}

// AccountCreateTool creates an account. Master API key required.
type AccountCreateTool struct {
	api accountAPI
}

func NewAccountCreateTool(api accountAPI) *AccountCreateTool {
	return &AccountCreateTool{api: api}
}

func (t *AccountCreateTool) Definition() mcp.Tool {
	return mcp.NewTool("account_create",
		mcp.WithDescription("Create a new account in your Apollo CRM and optionally add it to lists. "+
			"Requires a master API key. Domain is recommended for deduplication. Lists named in "+
			"label_names are created automatically. Returns the created account with account_id."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Account name, e.g. \"Example Corp\"")),
		mcp.WithString("domain", mcp.Description("Domain without www, e.g. \"example.com\"")),
		mcp.WithString("owner_id", mcp.Description("Apollo user ID for the account owner")),
		mcp.WithString("account_stage_id", mcp.Description("Apollo ID for the account stage")),
		mcp.WithString("phone", mcp.Description("Primary phone number")),
		mcp.WithString("raw_address", mcp.Description("Corporate location, e.g. \"Dallas, United States\"")),
		mcp.WithArray("label_names", stringItems(),
			mcp.Description("Lists to add the account to, e.g. [\"Target Accounts\", \"Q1 2024\"]")),
	)
}

func (t *AccountCreateTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	create := entities.AccountCreateRequest{
		Name:           stringArg(request, "name"),
		Domain:         stringArg(request, "domain"),
		OwnerID:        stringArg(request, "owner_id"),
		AccountStageID: stringArg(request, "account_stage_id"),
		Phone:          stringArg(request, "phone"),
		RawAddress:     stringArg(request, "raw_address"),
		LabelNames:     stringSliceArg(request, "label_names"),
	}

	result, err := t.api.AccountCreate(ctx, create)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

// AccountUpdateTool updates an account. Master API key required.
type AccountUpdateTool struct {
	api accountAPI
}

func NewAccountUpdateTool(api accountAPI) *AccountUpdateTool {
	return &AccountUpdateTool{api: api}
}

func (t *AccountUpdateTool) Definition() mcp.Tool {
	return mcp.NewTool("account_update",
		mcp.WithDescription("Update an existing account in your Apollo CRM. Requires a master API "+
			"key. Only provided fields are updated. WARNING: label_names REPLACES the account's "+
			"lists entirely; use account_add_to_list / account_remove_from_list to change one list "+
			"safely. Use account_search to find the account_id."),
		mcp.WithString("account_id", mcp.Required(), mcp.Description("Apollo account ID")),
		mcp.WithString("name", mcp.Description("Update account name")),
		mcp.WithString("domain", mcp.Description("Update domain")),
		mcp.WithString("owner_id", mcp.Description("Update account owner")),
		mcp.WithString("account_stage_id", mcp.Description("Update account stage")),
		mcp.WithString("phone", mcp.Description("Update phone number")),
		mcp.WithString("raw_address", mcp.Description("Update address")),
		mcp.WithArray("label_names", stringItems(),
			mcp.Description("Replace list membership entirely")),
	)
}

func (t *AccountUpdateTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	accountID := stringArg(request, "account_id")
	if accountID == "" {
		return mcp.NewToolResultError("validation: account_id is required"), nil
	}

	update := entities.AccountUpdateRequest{
		Name:           stringArg(request, "name"),
		Domain:         stringArg(request, "domain"),
		OwnerID:        stringArg(request, "owner_id"),
		AccountStageID: stringArg(request, "account_stage_id"),
		Phone:          stringArg(request, "phone"),
		RawAddress:     stringArg(request, "raw_address"),
		LabelNames:     stringSliceArg(request, "label_names"),
	}

	result, err := t.api.AccountUpdate(ctx, accountID, update)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

// AccountBulkCreateTool creates up to 100 accounts in one request.
type AccountBulkCreateTool struct {
	api accountAPI
}

func NewAccountBulkCreateTool(api accountAPI) *AccountBulkCreateTool {
	return &AccountBulkCreateTool{api: api}
}

func (t *AccountBulkCreateTool) Definition() mcp.Tool {
	return mcp.NewTool("account_bulk_create",
		mcp.WithDescription("Bulk create up to 100 accounts in your Apollo CRM. Requires a master "+
			"API key. Accounts that already exist (matched by domain) are returned in "+
			"existing_accounts but are NOT updated. Lists named in label_names are created "+
			"automatically."),
		mcp.WithArray("accounts", mcp.Required(), objectItems(),
			mcp.Description("Account objects (max 100), each with name plus optional domain, "+
				"owner_id, account_stage_id, phone, raw_address, label_names")),
	)
}

func (t *AccountBulkCreateTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := t.api.AccountBulkCreate(ctx, mapSliceArg(request, "accounts"))
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

// AccountBulkUpdateTool updates up to 100 accounts in one request.
type AccountBulkUpdateTool struct {
	api accountAPI
}

func NewAccountBulkUpdateTool(api accountAPI) *AccountBulkUpdateTool {
	return &AccountBulkUpdateTool{api: api}
}

func (t *AccountBulkUpdateTool) Definition() mcp.Tool {
	return mcp.NewTool("account_bulk_update",
		mcp.WithDescription("Bulk update up to 100 accounts in your Apollo CRM. Requires a master "+
			"API key. Only provided fields change per account. WARNING: label_names REPLACES each "+
			"account's lists entirely; use the list helper tools to change one list safely."),
		mcp.WithArray("accounts", mcp.Required(), objectItems(),
			mcp.Description("Account objects (max 100), each with id plus the fields to update")),
	)
}

func (t *AccountBulkUpdateTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := t.api.AccountBulkUpdate(ctx, mapSliceArg(request, "accounts"))
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}
