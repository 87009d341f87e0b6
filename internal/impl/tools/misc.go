package tools

import (
	"context"

	"apollomcp/internal/domain/entities"

	"github.com/mark3labs/mcp-go/mcp"
)

type miscAPI interface {
	UsageStats(ctx context.Context) (map[string]any, error)
	LabelsList(ctx context.Context, modality string) (*entities.LabelListResponse, error)
	CustomFieldsList(ctx context.Context) (map[string]any, error)
	CustomFieldCreate(ctx context.Context, request entities.CustomFieldCreateRequest) (map[string]any, error)
}

// UsageStatsTool reports API usage and rate limits per endpoint.
type UsageStatsTool struct {
	api miscAPI
}

func NewUsageStatsTool(api miscAPI) *UsageStatsTool {
	return &UsageStatsTool{api: api}
}

func (t *UsageStatsTool) Definition() mcp.Tool {
	return mcp.NewTool("usage_stats",
		mcp.WithDescription("Get API usage and rate limits per endpoint. Requires a master API key. "+
			"Shows minute/hour/day limits with consumed and left_over counts."),
	)
}

func (t *UsageStatsTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := t.api.UsageStats(ctx)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

// LabelsListTool lists the labels (lists) in the Apollo account.
type LabelsListTool struct {
	api miscAPI
}

func NewLabelsListTool(api miscAPI) *LabelsListTool {
	return &LabelsListTool{api: api}
}

func (t *LabelsListTool) Definition() mcp.Tool {
	return mcp.NewTool("labels_list",
		mcp.WithDescription("List all labels/lists in your Apollo account. Requires a master API "+
			"key. Lists are called 'labels' in the Apollo API but appear as 'Lists' in the UI. "+
			"Returns id, name, modality, and cached_count per label."),
		mcp.WithString("modality",
			mcp.Description("Filter by \"contacts\", \"accounts\", or \"emailer_campaigns\" (default: all)"),
			mcp.Enum(entities.LabelModalityContacts, entities.LabelModalityAccounts, entities.LabelModalityEmailerCampaigns)),
	)
}

func (t *LabelsListTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := t.api.LabelsList(ctx, stringArg(request, "modality"))
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

// CustomFieldsListTool lists the typed custom field definitions.
type CustomFieldsListTool struct {
	api miscAPI
}

func NewCustomFieldsListTool(api miscAPI) *CustomFieldsListTool {
	return &CustomFieldsListTool{api: api}
}

func (t *CustomFieldsListTool) Definition() mcp.Tool {
	return mcp.NewTool("custom_fields_list",
		mcp.WithDescription("List all typed custom field definitions in your Apollo account. "+
			"Requires a master API key. Field IDs are needed to set typed_custom_fields on "+
			"contacts and accounts."),
	)
}

func (t *CustomFieldsListTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := t.api.CustomFieldsList(ctx)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}

// CustomFieldCreateTool creates a typed custom field definition.
type CustomFieldCreateTool struct {
	api miscAPI
}

func NewCustomFieldCreateTool(api miscAPI) *CustomFieldCreateTool {
	return &CustomFieldCreateTool{api: api}
}

func (t *CustomFieldCreateTool) Definition() mcp.Tool {
	return mcp.NewTool("custom_field_create",
		mcp.WithDescription("Create a new typed custom field definition. Requires a master API key."),
		mcp.WithString("label", mcp.Required(), mcp.Description("Display name of the field")),
		mcp.WithString("type", mcp.Required(),
			mcp.Description("Field type, e.g. \"string\", \"number\", \"date\", \"boolean\", \"picklist\"")),
		mcp.WithString("modality", mcp.Required(),
			mcp.Description("Which records the field attaches to: \"contacts\" or \"accounts\""),
			mcp.Enum(entities.LabelModalityContacts, entities.LabelModalityAccounts)),
	)
}

func (t *CustomFieldCreateTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var create entities.CustomFieldCreateRequest
	if err := decodeArgs(request, &create); err != nil {
		return mcp.NewToolResultError("validation: " + err.Error()), nil
	}

	result, err := t.api.CustomFieldCreate(ctx, create)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(result)
}
