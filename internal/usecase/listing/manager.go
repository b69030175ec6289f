// Package listing manages a provider's own listings for the duration of the
// "my services" view.
package listing

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/sneha3498/infosysproject/internal/entity"
	"github.com/sneha3498/infosysproject/internal/port"
	"github.com/sneha3498/infosysproject/internal/usecase/category"
)

// Manager holds the provider-scoped listing collection and runs its
// lifecycle against the backend. All identifiers are validated as numeric
// before any request is built.
type Manager struct {
	api        port.ListingAPI
	categories *category.Directory
	logger     *zap.Logger

	mu         sync.Mutex
	listings   []entity.Listing
	loadFailed bool
}

func NewManager(api port.ListingAPI, categories *category.Directory, logger *zap.Logger) *Manager {
	return &Manager{api: api, categories: categories, logger: logger}
}

// Load replaces the local collection with the backend's current set. A
// remote failure empties the collection and raises the error flag so the
// caller can offer a retry.
func (m *Manager) Load(ctx context.Context, providerID string) error {
	id, err := entity.ParseID(providerID)
	if err != nil {
		return fmt.Errorf("listing.Manager.Load: %w", err)
	}

	listings, err := m.api.ListingsByProvider(ctx, id)
	if err != nil {
		m.mu.Lock()
		m.listings = nil
		m.loadFailed = true
		m.mu.Unlock()
		m.logger.Error("Failed to load listings", zap.String("provider_id", providerID), zap.Error(err))
		return fmt.Errorf("listing.Manager.Load: %w", err)
	}

	m.mu.Lock()
	m.listings = listings
	m.loadFailed = false
	m.mu.Unlock()
	m.logger.Debug("Listings loaded", zap.String("provider_id", providerID), zap.Int("count", len(listings)))
	return nil
}

// Create submits a new listing. The caller is expected to navigate away and
// reload, so nothing is appended to the local collection here. A category is
// mandatory only when the directory currently has at least one.
func (m *Manager) Create(ctx context.Context, providerID string, draft entity.ListingDraft) (*entity.Listing, error) {
	id, err := entity.ParseID(providerID)
	if err != nil {
		return nil, fmt.Errorf("listing.Manager.Create: %w", err)
	}
	if err := m.validateDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("listing.Manager.Create: %w", err)
	}

	created, err := m.api.CreateListing(ctx, id, draft)
	if err != nil {
		m.logger.Error("Failed to create listing", zap.String("provider_id", providerID), zap.Error(err))
		return nil, fmt.Errorf("listing.Manager.Create: %w", err)
	}
	m.logger.Info("Listing created", zap.String("listing_id", created.ID), zap.String("provider_id", providerID))
	return created, nil
}

// Update fully replaces the editable fields of a listing.
func (m *Manager) Update(ctx context.Context, listingID string, draft entity.ListingDraft) (*entity.Listing, error) {
	id, err := entity.ParseID(listingID)
	if err != nil {
		return nil, fmt.Errorf("listing.Manager.Update: %w", err)
	}
	if err := m.validateDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("listing.Manager.Update: %w", err)
	}

	updated, err := m.api.UpdateListing(ctx, id, draft)
	if err != nil {
		m.logger.Error("Failed to update listing", zap.String("listing_id", listingID), zap.Error(err))
		return nil, fmt.Errorf("listing.Manager.Update: %w", err)
	}
	m.logger.Info("Listing updated", zap.String("listing_id", listingID))
	return updated, nil
}

// Delete removes a listing. Destructive: callers must have confirmed with
// the user before invoking. On success the entry leaves the local
// collection; on failure the collection is untouched and there is no undo.
func (m *Manager) Delete(ctx context.Context, listingID string) error {
	id, err := entity.ParseID(listingID)
	if err != nil {
		return fmt.Errorf("listing.Manager.Delete: %w", err)
	}

	if err := m.api.DeleteListing(ctx, id); err != nil {
		m.logger.Error("Failed to delete listing", zap.String("listing_id", listingID), zap.Error(err))
		return fmt.Errorf("listing.Manager.Delete: %w", err)
	}

	m.mu.Lock()
	kept := m.listings[:0]
	for _, l := range m.listings {
		if l.ID != listingID {
			kept = append(kept, l)
		}
	}
	m.listings = kept
	m.mu.Unlock()
	m.logger.Info("Listing deleted", zap.String("listing_id", listingID))
	return nil
}

// ToggleDisabled flips the disabled flag in the local collection only and
// returns the new value. The backend has no disable endpoint, so this is a
// UI preview that does not survive a reload. Two toggles restore the
// original value; no network call is made in either step.
func (m *Manager) ToggleDisabled(listingID string) (bool, error) {
	if _, err := entity.ParseID(listingID); err != nil {
		return false, fmt.Errorf("listing.Manager.ToggleDisabled: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.listings {
		if m.listings[i].ID == listingID {
			m.listings[i].Disabled = !m.listings[i].Disabled
			return m.listings[i].Disabled, nil
		}
	}
	return false, fmt.Errorf("listing.Manager.ToggleDisabled: listing %s: %w", listingID, entity.ErrNotFound)
}

// Get fetches a single listing by id.
func (m *Manager) Get(ctx context.Context, listingID string) (*entity.Listing, error) {
	id, err := entity.ParseID(listingID)
	if err != nil {
		return nil, fmt.Errorf("listing.Manager.Get: %w", err)
	}

	found, err := m.api.ListingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing.Manager.Get: %w", err)
	}
	return found, nil
}

// Listings returns a snapshot of the local collection.
func (m *Manager) Listings() []entity.Listing {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entity.Listing(nil), m.listings...)
}

// LoadFailed reports whether the last Load ended in a remote failure.
func (m *Manager) LoadFailed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadFailed
}

func (m *Manager) validateDraft(ctx context.Context, draft entity.ListingDraft) error {
	if draft.Title == "" {
		return fmt.Errorf("%w: title is required", entity.ErrValidation)
	}
	if draft.Description == "" {
		return fmt.Errorf("%w: description is required", entity.ErrValidation)
	}
	if draft.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", entity.ErrValidation)
	}
	if draft.CategoryID == "" && len(m.categories.ListOrEmpty(ctx)) > 0 {
		return fmt.Errorf("%w: categoryId is required", entity.ErrValidation)
	}
	return nil
}
