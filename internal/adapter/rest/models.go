package rest

import (
	"encoding/json"
	"time"

	"github.com/sneha3498/infosysproject/internal/entity"
)

// Wire models. The backend keys entities by numeric ids and serializes
// timestamps without a zone, so decoding goes through these instead of the
// domain types.

type categoryModel struct {
	ID          json.Number `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
}

func (m categoryModel) toEntity() entity.Category {
	return entity.Category{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
	}
}

type listingModel struct {
	ID          json.Number `json:"id"`
	ProviderID  json.Number `json:"providerId"`
	CategoryID  json.Number `json:"categoryId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Images      string      `json:"images"`
	IsApproved  bool        `json:"isApproved"`
	CreatedAt   string      `json:"createdAt"`
	Distance    *float64    `json:"distance"`
}

func (m listingModel) toEntity() entity.Listing {
	return entity.Listing{
		ID:          m.ID.String(),
		ProviderID:  m.ProviderID.String(),
		CategoryID:  m.CategoryID.String(),
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		ImageURL:    m.Images,
		Approved:    m.IsApproved,
		CreatedAt:   parseBackendTime(m.CreatedAt),
	}
}

func (m listingModel) toSearchResult() entity.SearchResult {
	return entity.SearchResult{
		ID:          m.ID.String(),
		CategoryID:  m.CategoryID.String(),
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		ImageURL:    m.Images,
		Distance:    m.Distance,
	}
}

type userModel struct {
	ID                 json.Number `json:"id"`
	Email              string      `json:"email"`
	UserName           string      `json:"userName"`
	Role               string      `json:"role"`
	Image              string      `json:"image"`
	Number             int64       `json:"number"`
	PermanentLatitude  *float64    `json:"permanentLatitude"`
	PermanentLongitude *float64    `json:"permanentLongitude"`
	PermanentAddress   string      `json:"permanentAddress"`
	CreatedAt          string      `json:"createdAt"`
}

func (m userModel) toEntity() entity.User {
	return entity.User{
		ID:                 m.ID.String(),
		Email:              m.Email,
		UserName:           m.UserName,
		Role:               entity.Role(m.Role),
		ImageURL:           m.Image,
		Number:             m.Number,
		PermanentLatitude:  m.PermanentLatitude,
		PermanentLongitude: m.PermanentLongitude,
		PermanentAddress:   m.PermanentAddress,
		CreatedAt:          parseBackendTime(m.CreatedAt),
	}
}

var backendTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseBackendTime(raw string) time.Time {
	for _, layout := range backendTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
