// Package profile handles user profile and permanent location read-update.
package profile

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sneha3498/infosysproject/internal/entity"
	"github.com/sneha3498/infosysproject/internal/port"
)

type Manager struct {
	api    port.ProfileAPI
	logger *zap.Logger
}

func NewManager(api port.ProfileAPI, logger *zap.Logger) *Manager {
	return &Manager{api: api, logger: logger}
}

func (m *Manager) Get(ctx context.Context, userID string) (*entity.User, error) {
	id, err := entity.ParseID(userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Manager.Get: %w", err)
	}

	user, err := m.api.User(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("profile.Manager.Get: %w", err)
	}
	return user, nil
}

func (m *Manager) UpdateProfile(ctx context.Context, userID string, update entity.ProfileUpdate) (*entity.User, error) {
	id, err := entity.ParseID(userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Manager.UpdateProfile: %w", err)
	}
	if update.UserName == "" || update.Email == "" {
		return nil, fmt.Errorf("profile.Manager.UpdateProfile: %w: userName and email are required", entity.ErrValidation)
	}

	user, err := m.api.UpdateProfile(ctx, id, update)
	if err != nil {
		m.logger.Error("Failed to update profile", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("profile.Manager.UpdateProfile: %w", err)
	}
	m.logger.Info("Profile updated", zap.String("user_id", userID))
	return user, nil
}

func (m *Manager) UpdateLocation(ctx context.Context, userID string, update entity.LocationUpdate) (*entity.User, error) {
	id, err := entity.ParseID(userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Manager.UpdateLocation: %w", err)
	}

	user, err := m.api.UpdateLocation(ctx, id, update)
	if err != nil {
		m.logger.Error("Failed to update location", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("profile.Manager.UpdateLocation: %w", err)
	}
	m.logger.Info("Location updated", zap.String("user_id", userID))
	return user, nil
}
