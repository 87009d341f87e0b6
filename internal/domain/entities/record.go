package entities

import "encoding/json"

// Record is a CRM record (account or contact) as returned by Apollo.
// Only the fields the label merge logic needs are modeled; everything
// else the API sends is kept in Fields and round-trips untouched.
type Record struct {
	ID         string
	LabelNames []string
	Fields     map[string]any
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if id, ok := raw["id"].(string); ok {
		r.ID = id
	}
	if labels, ok := raw["label_names"].([]any); ok {
		r.LabelNames = make([]string, 0, len(labels))
		for _, l := range labels {
			if s, ok := l.(string); ok {
				r.LabelNames = append(r.LabelNames, s)
			}
		}
	}

	delete(raw, "id")
	delete(raw, "label_names")
	r.Fields = raw
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["id"] = r.ID
	if r.LabelNames != nil {
		out["label_names"] = r.LabelNames
	}
	return json.Marshal(out)
}

// HasLabel reports whether the record is currently a member of the named
// list. Label names are case-sensitive.
func (r *Record) HasLabel(name string) bool {
	for _, l := range r.LabelNames {
		if l == name {
			return true
		}
	}
	return false
}

// RecordSearchQuery is the filter for listing saved records in the CRM.
type RecordSearchQuery struct {
	Query    string
	LabelIDs []string
	Page     int
	PerPage  int
}

// RecordPage is one page of search results.
type RecordPage struct {
	Records    []Record
	Pagination Pagination
}

// LabelUpdate replaces the full label set of one record. This is the
// destructive-overwrite write the list helpers exist to work around.
type LabelUpdate struct {
	ID         string   `json:"id"`
	LabelNames []string `json:"label_names"`
}
