package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sneha3498/infosysproject/internal/entity"
)

func (c *Client) ApproveListing(ctx context.Context, listingID int64) error {
	path := fmt.Sprintf("/admin/listings/%d/approve", listingID)
	return c.do(ctx, http.MethodPost, path, nil, nil, "", nil)
}

func (c *Client) RejectListing(ctx context.Context, listingID int64) error {
	path := fmt.Sprintf("/admin/listings/%d/reject", listingID)
	return c.do(ctx, http.MethodPost, path, nil, nil, "", nil)
}

func (c *Client) CreateCategory(ctx context.Context, name, description string) (*entity.Category, error) {
	payload := struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}{name, description}

	var model categoryModel
	if err := c.sendJSON(ctx, http.MethodPost, "/admin/create-category", payload, &model); err != nil {
		return nil, err
	}
	category := model.toEntity()
	return &category, nil
}
