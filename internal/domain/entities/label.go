package entities

// Label modalities as reported by the Apollo API. Labels appear as
// "Lists" in the Apollo UI.
const (
	LabelModalityContacts         = "contacts"
	LabelModalityAccounts         = "accounts"
	LabelModalityEmailerCampaigns = "emailer_campaigns"
)

// Label is a list in the Apollo account.
type Label struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Modality    string `json:"modality"`
	CachedCount *int   `json:"cached_count,omitempty"`
	TeamID      string `json:"team_id,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// LabelListResponse wraps the bare array the /labels endpoint returns.
type LabelListResponse struct {
	Labels []Label `json:"labels"`
}
