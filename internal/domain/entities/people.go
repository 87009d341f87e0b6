package entities

// PeopleEnrichmentQuery identifies a single person for enrichment.
// Provide one or more of the identification fields; Apollo matches the
// best candidate.
type PeopleEnrichmentQuery struct {
	ID                   string `json:"id,omitempty"`
	Email                string `json:"email,omitempty"`
	HashedEmail          string `json:"hashed_email,omitempty"`
	Name                 string `json:"name,omitempty"`
	FirstName            string `json:"first_name,omitempty"`
	LastName             string `json:"last_name,omitempty"`
	Domain               string `json:"domain,omitempty"`
	OrganizationName     string `json:"organization_name,omitempty"`
	LinkedinURL          string `json:"linkedin_url,omitempty"`
	RevealPersonalEmails bool   `json:"reveal_personal_emails,omitempty"`
	RevealPhoneNumber    bool   `json:"reveal_phone_number,omitempty"`
	WebhookURL           string `json:"webhook_url,omitempty"`
}

// BulkPeopleEnrichmentQuery enriches up to 10 people in one request.
// Each entry in Details carries the same identification fields as
// PeopleEnrichmentQuery.
type BulkPeopleEnrichmentQuery struct {
	Details              []map[string]any `json:"details"`
	RevealPersonalEmails bool             `json:"reveal_personal_emails,omitempty"`
	RevealPhoneNumber    bool             `json:"reveal_phone_number,omitempty"`
	WebhookURL           string           `json:"webhook_url,omitempty"`
}

// PeopleSearchQuery searches Apollo's global people database.
type PeopleSearchQuery struct {
	PersonTitles                   []string `json:"person_titles,omitempty"`
	IncludeSimilarTitles           *bool    `json:"include_similar_titles,omitempty"`
	PersonSeniorities              []string `json:"person_seniorities,omitempty"`
	PersonLocations                []string `json:"person_locations,omitempty"`
	ContactEmailStatus             []string `json:"contact_email_status,omitempty"`
	OrganizationIDs                []string `json:"organization_ids,omitempty"`
	QOrganizationDomainsList       []string `json:"q_organization_domains_list,omitempty"`
	OrganizationLocations          []string `json:"organization_locations,omitempty"`
	OrganizationNumEmployeesRanges []string `json:"organization_num_employees_ranges,omitempty"`
	QKeywords                      string   `json:"q_keywords,omitempty"`
	Page                           int      `json:"page,omitempty"`
	PerPage                        int      `json:"per_page,omitempty"`
}
