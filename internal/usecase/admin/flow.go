// Package admin covers listing moderation and category management.
package admin

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sneha3498/infosysproject/internal/entity"
	"github.com/sneha3498/infosysproject/internal/port"
	"github.com/sneha3498/infosysproject/internal/usecase/session"
)

// ErrForbidden rejects moderation attempts from non-admin sessions before
// any request is made. The backend re-checks the role on its side.
var ErrForbidden = errors.New("admin role required")

type Flow struct {
	api      port.AdminAPI
	sessions *session.Manager
	logger   *zap.Logger
}

func NewFlow(api port.AdminAPI, sessions *session.Manager, logger *zap.Logger) *Flow {
	return &Flow{api: api, sessions: sessions, logger: logger}
}

func (f *Flow) ApproveListing(ctx context.Context, listingID string) error {
	id, err := f.authorize(ctx, listingID)
	if err != nil {
		return fmt.Errorf("admin.Flow.ApproveListing: %w", err)
	}
	if err := f.api.ApproveListing(ctx, id); err != nil {
		f.logger.Error("Failed to approve listing", zap.String("listing_id", listingID), zap.Error(err))
		return fmt.Errorf("admin.Flow.ApproveListing: %w", err)
	}
	f.logger.Info("Listing approved", zap.String("listing_id", listingID))
	return nil
}

func (f *Flow) RejectListing(ctx context.Context, listingID string) error {
	id, err := f.authorize(ctx, listingID)
	if err != nil {
		return fmt.Errorf("admin.Flow.RejectListing: %w", err)
	}
	if err := f.api.RejectListing(ctx, id); err != nil {
		f.logger.Error("Failed to reject listing", zap.String("listing_id", listingID), zap.Error(err))
		return fmt.Errorf("admin.Flow.RejectListing: %w", err)
	}
	f.logger.Info("Listing rejected", zap.String("listing_id", listingID))
	return nil
}

func (f *Flow) CreateCategory(ctx context.Context, name, description string) (*entity.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("admin.Flow.CreateCategory: %w: name is required", entity.ErrValidation)
	}
	if err := f.requireAdmin(ctx); err != nil {
		return nil, fmt.Errorf("admin.Flow.CreateCategory: %w", err)
	}

	created, err := f.api.CreateCategory(ctx, name, description)
	if err != nil {
		f.logger.Error("Failed to create category", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("admin.Flow.CreateCategory: %w", err)
	}
	f.logger.Info("Category created", zap.String("category_id", created.ID), zap.String("name", name))
	return created, nil
}

func (f *Flow) authorize(ctx context.Context, listingID string) (int64, error) {
	id, err := entity.ParseID(listingID)
	if err != nil {
		return 0, err
	}
	if err := f.requireAdmin(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (f *Flow) requireAdmin(ctx context.Context) error {
	sess, err := f.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if sess.IsAnonymous() || sess.Role != entity.RoleAdmin {
		return ErrForbidden
	}
	return nil
}
