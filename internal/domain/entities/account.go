package entities

// AccountCreateRequest creates a new account in the CRM. Requires a
// master API key.
type AccountCreateRequest struct {
	Name           string   `json:"name"`
	Domain         string   `json:"domain,omitempty"`
	OwnerID        string   `json:"owner_id,omitempty"`
	AccountStageID string   `json:"account_stage_id,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	RawAddress     string   `json:"raw_address,omitempty"`
	LabelNames     []string `json:"label_names,omitempty"`
}

// AccountUpdateRequest updates an existing account. Only non-zero fields
// are sent. LabelNames REPLACES the account's lists entirely; use the
// list helper tools to add or remove a single list safely.
type AccountUpdateRequest struct {
	Name           string   `json:"name,omitempty"`
	Domain         string   `json:"domain,omitempty"`
	OwnerID        string   `json:"owner_id,omitempty"`
	AccountStageID string   `json:"account_stage_id,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	RawAddress     string   `json:"raw_address,omitempty"`
	LabelNames     []string `json:"label_names,omitempty"`
}
