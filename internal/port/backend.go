// Package port declares the interfaces the use cases depend on. Adapters
// under internal/adapter provide the implementations.
package port

import (
	"context"

	"github.com/sneha3498/infosysproject/internal/entity"
)

// AuthAPI is the backend's authentication surface. The backend issues and
// validates tokens; the client only stores and attaches them.
type AuthAPI interface {
	Login(ctx context.Context, creds entity.Credentials) (entity.AuthResult, error)
	Signup(ctx context.Context, form entity.SignupForm) (entity.AuthResult, error)
}

// CategoryAPI serves the server-owned category set.
type CategoryAPI interface {
	Categories(ctx context.Context) ([]entity.Category, error)
}

// SearchAPI serves category-filtered, location-bound provider search.
type SearchAPI interface {
	SearchNearby(ctx context.Context, query entity.SearchQuery) ([]entity.SearchResult, error)
}

// ListingAPI is the provider-scoped listing CRUD surface.
type ListingAPI interface {
	ListingsByProvider(ctx context.Context, providerID int64) ([]entity.Listing, error)
	ListingByID(ctx context.Context, listingID int64) (*entity.Listing, error)
	CreateListing(ctx context.Context, providerID int64, draft entity.ListingDraft) (*entity.Listing, error)
	UpdateListing(ctx context.Context, listingID int64, draft entity.ListingDraft) (*entity.Listing, error)
	DeleteListing(ctx context.Context, listingID int64) error
}

// ProfileAPI is the user profile read-update surface.
type ProfileAPI interface {
	User(ctx context.Context, userID int64) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID int64, update entity.ProfileUpdate) (*entity.User, error)
	UpdateLocation(ctx context.Context, userID int64, update entity.LocationUpdate) (*entity.User, error)
}

// AdminAPI is the moderation surface.
type AdminAPI interface {
	ApproveListing(ctx context.Context, listingID int64) error
	RejectListing(ctx context.Context, listingID int64) error
	CreateCategory(ctx context.Context, name, description string) (*entity.Category, error)
}
