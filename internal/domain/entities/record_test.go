package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_UnmarshalKeepsUnknownFields(t *testing.T) {
	payload := `{
		"id": "account_123",
		"label_names": ["Enterprise", "Q1 2024"],
		"name": "Example Corp",
		"domain": "example.com",
		"typed_custom_fields": {"field_1": "value"},
		"phone": null
	}`

	var record Record
	assert.NoError(t, json.Unmarshal([]byte(payload), &record))

	assert.Equal(t, "account_123", record.ID)
	assert.Equal(t, []string{"Enterprise", "Q1 2024"}, record.LabelNames)
	assert.Equal(t, "Example Corp", record.Fields["name"])
	assert.Equal(t, "example.com", record.Fields["domain"])
	assert.Contains(t, record.Fields, "typed_custom_fields")
	assert.Contains(t, record.Fields, "phone")

	// The modeled fields must not be duplicated into the bag.
	assert.NotContains(t, record.Fields, "id")
	assert.NotContains(t, record.Fields, "label_names")
}

func TestRecord_MarshalRoundTripsUnknownFields(t *testing.T) {
	var record Record
	assert.NoError(t, json.Unmarshal([]byte(`{"id": "c1", "label_names": ["A"], "title": "VP Sales"}`), &record))

	record.LabelNames = append(record.LabelNames, "B")

	data, err := json.Marshal(record)
	assert.NoError(t, err)

	var out map[string]any
	assert.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "c1", out["id"])
	assert.Equal(t, []any{"A", "B"}, out["label_names"])
	assert.Equal(t, "VP Sales", out["title"])
}

func TestRecord_MarshalOmitsNilLabels(t *testing.T) {
	data, err := json.Marshal(Record{ID: "c1"})
	assert.NoError(t, err)

	var out map[string]any
	assert.NoError(t, json.Unmarshal(data, &out))
	assert.NotContains(t, out, "label_names")
}

func TestRecord_HasLabelIsCaseSensitive(t *testing.T) {
	record := Record{LabelNames: []string{"Hot Leads"}}

	assert.True(t, record.HasLabel("Hot Leads"))
	assert.False(t, record.HasLabel("hot leads"))
	assert.False(t, record.HasLabel(""))
}
