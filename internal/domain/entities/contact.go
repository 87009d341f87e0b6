package entities

// PhoneNumber is a phone number with type information.
type PhoneNumber struct {
	RawNumber string `json:"raw_number"`
	Type      string `json:"type,omitempty"`
}

// ContactCreateRequest creates a new contact in the CRM. Lists named in
// LabelNames are created automatically if they do not exist.
type ContactCreateRequest struct {
	FirstName        string        `json:"first_name"`
	LastName         string        `json:"last_name"`
	Email            string        `json:"email,omitempty"`
	OrganizationName string        `json:"organization_name,omitempty"`
	Title            string        `json:"title,omitempty"`
	LabelNames       []string      `json:"label_names,omitempty"`
	PhoneNumbers     []PhoneNumber `json:"phone_numbers,omitempty"`
	City             string        `json:"city,omitempty"`
	State            string        `json:"state,omitempty"`
	Country          string        `json:"country,omitempty"`
	LinkedinURL      string        `json:"linkedin_url,omitempty"`
}

// ContactUpdateRequest updates an existing contact. Only non-zero fields
// are sent. LabelNames REPLACES the contact's lists entirely; use the
// list helper tools to add or remove a single list safely.
type ContactUpdateRequest struct {
	FirstName        string        `json:"first_name,omitempty"`
	LastName         string        `json:"last_name,omitempty"`
	Email            string        `json:"email,omitempty"`
	OrganizationName string        `json:"organization_name,omitempty"`
	Title            string        `json:"title,omitempty"`
	LabelNames       []string      `json:"label_names,omitempty"`
	PhoneNumbers     []PhoneNumber `json:"phone_numbers,omitempty"`
	City             string        `json:"city,omitempty"`
	State            string        `json:"state,omitempty"`
	Country          string        `json:"country,omitempty"`
	LinkedinURL      string        `json:"linkedin_url,omitempty"`
}
