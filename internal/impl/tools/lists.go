package tools

import (
	"context"
	"fmt"

	"apollomcp/internal/domain/entities"
	"apollomcp/internal/domain/interfaces"

	"github.com/mark3labs/mcp-go/mcp"
)

// listKind parameterizes the list helper tools over the two record
// collections that support lists. Tool names, argument names, and
// result keys all follow the kind.
type listKind struct {
	singular   string // "account"
	idsArg     string // "account_ids"
	updatedKey string // "updated_accounts"
	source     string // where callers get IDs from
}

var (
	accountKind = listKind{
		singular:   "account",
		idsArg:     "account_ids",
		updatedKey: "updated_accounts",
		source:     "account_search or organization_search",
	}
	contactKind = listKind{
		singular:   "contact",
		idsArg:     "contact_ids",
		updatedKey: "updated_contacts",
		source:     "contact_search",
	}
)

// AddToListTool adds a batch of records to a list while preserving every
// other list they belong to. It exists because the plain update tools
// replace label_names wholesale.
type AddToListTool struct {
	kind  listKind
	lists interfaces.ListManager
}

func NewAccountAddToListTool(lists interfaces.ListManager) *AddToListTool {
	return &AddToListTool{kind: accountKind, lists: lists}
}

func NewContactAddToListTool(lists interfaces.ListManager) *AddToListTool {
	return &AddToListTool{kind: contactKind, lists: lists}
}

func (t *AddToListTool) Definition() mcp.Tool {
	k := t.kind
	return mcp.NewTool(k.singular+"_add_to_list",
		mcp.WithDescription(fmt.Sprintf("Add up to 10 %[1]ss to a list WITHOUT losing their existing "+
			"lists. Requires a master API key. The plain update tools replace label_names entirely; "+
			"this tool fetches each %[1]s's current labels first, merges in the new one, and writes "+
			"back in a single bulk update. %[1]ss are discovered by searching up to 1000 saved "+
			"%[1]ss (10 pages of 100); IDs that don't surface are reported in not_found_ids rather "+
			"than failing the batch. The list is created automatically if it doesn't exist.", k.singular)),
		mcp.WithArray(k.idsArg, mcp.Required(), stringItems(),
			mcp.Description(fmt.Sprintf("Apollo %s IDs (up to 10), from %s", k.singular, k.source))),
		mcp.WithString("label_name", mcp.Required(),
			mcp.Description("Name of the list to add to, e.g. \"Target Accounts Q1 2024\"")),
	)
}

func (t *AddToListTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := stringSliceArg(request, t.kind.idsArg)
	labelName := stringArg(request, "label_name")

	result, err := t.lists.AddToList(ctx, ids, labelName)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(reconcileResultJSON(t.kind, result))
}

// RemoveFromListTool removes a batch of records from one list while
// preserving their other list memberships.
type RemoveFromListTool struct {
	kind  listKind
	lists interfaces.ListManager
}

func NewAccountRemoveFromListTool(lists interfaces.ListManager) *RemoveFromListTool {
	return &RemoveFromListTool{kind: accountKind, lists: lists}
}

func NewContactRemoveFromListTool(lists interfaces.ListManager) *RemoveFromListTool {
	return &RemoveFromListTool{kind: contactKind, lists: lists}
}

func (t *RemoveFromListTool) Definition() mcp.Tool {
	k := t.kind
	return mcp.NewTool(k.singular+"_remove_from_list",
		mcp.WithDescription(fmt.Sprintf("Remove up to 10 %[1]ss from a list WITHOUT affecting their "+
			"other lists. Requires a master API key. Fetches each %[1]s's current labels, drops only "+
			"the named one, and writes back in a single bulk update. A %[1]s that isn't on the list "+
			"is still updated (a no-op). IDs that can't be found among the first 1000 saved %[1]ss "+
			"are reported in not_found_ids.", k.singular)),
		mcp.WithArray(k.idsArg, mcp.Required(), stringItems(),
			mcp.Description(fmt.Sprintf("Apollo %s IDs (up to 10), from %s", k.singular, k.source))),
		mcp.WithString("label_name", mcp.Required(),
			mcp.Description("Name of the list to remove from, e.g. \"Cold Leads\"")),
	)
}

func (t *RemoveFromListTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := stringSliceArg(request, t.kind.idsArg)
	labelName := stringArg(request, "label_name")

	result, err := t.lists.RemoveFromList(ctx, ids, labelName)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(reconcileResultJSON(t.kind, result))
}

// reconcileResultJSON shapes a ReconcileResult for tool output. The
// updated records key is kind-specific (updated_accounts or
// updated_contacts); found/not_found arrays are always present, empty
// rather than null.
func reconcileResultJSON(kind listKind, result *entities.ReconcileResult) map[string]any {
	found := result.Found
	if found == nil {
		found = []string{}
	}
	notFound := result.NotFound
	if notFound == nil {
		notFound = []string{}
	}
	updated := result.Updated
	if updated == nil {
		updated = []entities.Record{}
	}
	return map[string]any{
		kind.updatedKey:   updated,
		"found_ids":       found,
		"not_found_ids":   notFound,
		"total_requested": result.TotalRequested,
	}
}
