package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sneha3498/infosysproject/internal/entity"
)

func (c *Client) User(ctx context.Context, userID int64) (*entity.User, error) {
	var model userModel
	if err := c.getJSON(ctx, fmt.Sprintf("/user/%d", userID), nil, &model); err != nil {
		return nil, err
	}
	user := model.toEntity()
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, userID int64, update entity.ProfileUpdate) (*entity.User, error) {
	fields := map[string]string{
		"userName": update.UserName,
		"email":    update.Email,
	}
	if update.Number != 0 {
		fields["number"] = strconv.FormatInt(update.Number, 10)
	}

	var model userModel
	path := fmt.Sprintf("/user/%d/profile", userID)
	if err := c.sendMultipart(ctx, http.MethodPut, path, fields, update.Image, &model); err != nil {
		return nil, err
	}
	user := model.toEntity()
	return &user, nil
}

func (c *Client) UpdateLocation(ctx context.Context, userID int64, update entity.LocationUpdate) (*entity.User, error) {
	payload := struct {
		PermanentLatitude  float64 `json:"permanentLatitude"`
		PermanentLongitude float64 `json:"permanentLongitude"`
		PermanentAddress   string  `json:"permanentAddress"`
	}{update.Latitude, update.Longitude, update.Address}

	var model userModel
	path := fmt.Sprintf("/user/%d/location", userID)
	if err := c.sendJSON(ctx, http.MethodPut, path, payload, &model); err != nil {
		return nil, err
	}
	user := model.toEntity()
	return &user, nil
}
