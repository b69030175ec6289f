package rest

import (
	"context"
	"net/url"
	"strconv"

	"github.com/sneha3498/infosysproject/internal/entity"
)

func (c *Client) SearchNearby(ctx context.Context, query entity.SearchQuery) ([]entity.SearchResult, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(query.Coordinates.Latitude, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(query.Coordinates.Longitude, 'f', -1, 64))
	params.Set("categoryId", query.CategoryID)

	var models []listingModel
	if err := c.getJSON(ctx, "/customer/search", params, &models); err != nil {
		return nil, err
	}
	results := make([]entity.SearchResult, 0, len(models))
	for _, m := range models {
		results = append(results, m.toSearchResult())
	}
	return results, nil
}
