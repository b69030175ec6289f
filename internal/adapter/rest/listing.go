package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sneha3498/infosysproject/internal/entity"
)

func (c *Client) ListingsByProvider(ctx context.Context, providerID int64) ([]entity.Listing, error) {
	var models []listingModel
	path := fmt.Sprintf("/provider/%d/listings", providerID)
	if err := c.getJSON(ctx, path, nil, &models); err != nil {
		return nil, err
	}
	listings := make([]entity.Listing, 0, len(models))
	for _, m := range models {
		listings = append(listings, m.toEntity())
	}
	return listings, nil
}

func (c *Client) ListingByID(ctx context.Context, listingID int64) (*entity.Listing, error) {
	var model listingModel
	path := fmt.Sprintf("/provider/%d/listing", listingID)
	if err := c.getJSON(ctx, path, nil, &model); err != nil {
		return nil, err
	}
	listing := model.toEntity()
	return &listing, nil
}

func (c *Client) CreateListing(ctx context.Context, providerID int64, draft entity.ListingDraft) (*entity.Listing, error) {
	var model listingModel
	path := fmt.Sprintf("/provider/%d/listings", providerID)
	if err := c.sendMultipart(ctx, http.MethodPost, path, draftFields(draft), draft.Image, &model); err != nil {
		return nil, err
	}
	listing := model.toEntity()
	return &listing, nil
}

func (c *Client) UpdateListing(ctx context.Context, listingID int64, draft entity.ListingDraft) (*entity.Listing, error) {
	var model listingModel
	path := fmt.Sprintf("/provider/listings/%d", listingID)
	if err := c.sendMultipart(ctx, http.MethodPut, path, draftFields(draft), draft.Image, &model); err != nil {
		return nil, err
	}
	listing := model.toEntity()
	return &listing, nil
}

func (c *Client) DeleteListing(ctx context.Context, listingID int64) error {
	path := fmt.Sprintf("/provider/listings/%d", listingID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

func draftFields(draft entity.ListingDraft) map[string]string {
	fields := map[string]string{
		"title":       draft.Title,
		"description": draft.Description,
		"price":       strconv.FormatFloat(draft.Price, 'f', -1, 64),
	}
	if draft.CategoryID != "" {
		fields["categoryId"] = draft.CategoryID
	}
	return fields
}
