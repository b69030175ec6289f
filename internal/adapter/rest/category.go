package rest

import (
	"context"

	"github.com/sneha3498/infosysproject/internal/entity"
)

func (c *Client) Categories(ctx context.Context) ([]entity.Category, error) {
	var models []categoryModel
	if err := c.getJSON(ctx, "/service_categories", nil, &models); err != nil {
		return nil, err
	}
	categories := make([]entity.Category, 0, len(models))
	for _, m := range models {
		categories = append(categories, m.toEntity())
	}
	return categories, nil
}
