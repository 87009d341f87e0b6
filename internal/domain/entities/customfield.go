package entities

// CustomFieldCreateRequest creates a new typed custom field definition.
type CustomFieldCreateRequest struct {
	Label    string         `json:"label"`
	Type     string         `json:"type"`
	Modality string         `json:"modality"`
	Meta     map[string]any `json:"meta,omitempty"`
}
