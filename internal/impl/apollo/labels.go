package apollo

import (
	"context"
	"net/http"

	"apollomcp/internal/domain/entities"
)

// LabelsList lists all labels (lists) in the Apollo account. The
// endpoint takes no parameters and returns every label across all
// modalities; filtering by modality happens client-side. Requires a
// master API key.
func (c *Client) LabelsList(ctx context.Context, modality string) (*entities.LabelListResponse, error) {
	var labels []entities.Label
	if err := c.do(ctx, http.MethodGet, "/labels", nil, nil, &labels); err != nil {
		return nil, err
	}

	if modality != "" {
		filtered := make([]entities.Label, 0, len(labels))
		for _, label := range labels {
			if label.Modality == modality {
				filtered = append(filtered, label)
			}
		}
		labels = filtered
	}

	return &entities.LabelListResponse{Labels: labels}, nil
}
