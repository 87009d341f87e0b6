package entities

// OrganizationEnrichmentQuery identifies a company by domain.
type OrganizationEnrichmentQuery struct {
	Domain string `json:"domain"`
}

// OrganizationSearchQuery searches Apollo's global company database.
type OrganizationSearchQuery struct {
	OrganizationNumEmployeesRanges     []string `json:"organization_num_employees_ranges,omitempty"`
	OrganizationLocations              []string `json:"organization_locations,omitempty"`
	OrganizationNotLocations           []string `json:"organization_not_locations,omitempty"`
	RevenueRangeMin                    *int     `json:"revenue_range_min,omitempty"`
	RevenueRangeMax                    *int     `json:"revenue_range_max,omitempty"`
	CurrentlyUsingAnyOfTechnologyUIDs  []string `json:"currently_using_any_of_technology_uids,omitempty"`
	QOrganizationKeywordTags           []string `json:"q_organization_keyword_tags,omitempty"`
	QOrganizationName                  string   `json:"q_organization_name,omitempty"`
	OrganizationIDs                    []string `json:"organization_ids,omitempty"`
	Page                               int      `json:"page,omitempty"`
	PerPage                            int      `json:"per_page,omitempty"`
}
