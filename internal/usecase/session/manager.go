// Package session owns the identity context. All session mutation goes
// through this manager; other components only read the stored session.
package session

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/sneha3498/infosysproject/internal/entity"
	"github.com/sneha3498/infosysproject/internal/port"
)

type Manager struct {
	auth   port.AuthAPI
	store  port.SessionStore
	logger *zap.Logger
}

func NewManager(auth port.AuthAPI, store port.SessionStore, logger *zap.Logger) *Manager {
	return &Manager{auth: auth, store: store, logger: logger}
}

// Current returns the stored session, or an anonymous one when nothing is
// stored.
func (m *Manager) Current(ctx context.Context) (*entity.Session, error) {
	sess, err := m.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("session.Manager.Current: %w", err)
	}
	if sess == nil {
		return &entity.Session{}, nil
	}
	return sess, nil
}

func (m *Manager) Login(ctx context.Context, email, password string, role entity.Role) (*entity.Session, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("session.Manager.Login: %w: email and password are required", entity.ErrValidation)
	}

	result, err := m.auth.Login(ctx, entity.Credentials{Email: email, Password: password, Role: role})
	if err != nil {
		m.logger.Error("Login failed", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("session.Manager.Login: %w", err)
	}

	sess := sessionFromToken(result.Token, role, "")
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("session.Manager.Login: failed to persist session: %w", err)
	}
	m.logger.Info("Logged in", zap.String("user_id", sess.UserID), zap.String("role", string(sess.Role)))
	return sess, nil
}

func (m *Manager) Signup(ctx context.Context, form entity.SignupForm) (*entity.Session, error) {
	if form.UserName == "" || form.Email == "" || form.Password == "" {
		return nil, fmt.Errorf("session.Manager.Signup: %w: userName, email and password are required", entity.ErrValidation)
	}
	if form.Password != form.ConfirmPassword {
		return nil, fmt.Errorf("session.Manager.Signup: %w: passwords do not match", entity.ErrValidation)
	}

	result, err := m.auth.Signup(ctx, form)
	if err != nil {
		m.logger.Error("Signup failed", zap.String("email", form.Email), zap.Error(err))
		return nil, fmt.Errorf("session.Manager.Signup: %w", err)
	}

	sess := sessionFromToken(result.Token, form.Role, form.UserName)
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("session.Manager.Signup: failed to persist session: %w", err)
	}
	m.logger.Info("Registered", zap.String("user_id", sess.UserID), zap.String("role", string(sess.Role)))
	return sess, nil
}

func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("session.Manager.Logout: %w", err)
	}
	m.logger.Info("Logged out")
	return nil
}

// sessionFromToken extracts userId and role from the issued token's claims.
// The backend validates tokens; the client only reads the payload, so the
// signature is not checked here. When a claim is missing the requested role
// is used as a fallback.
func sessionFromToken(token string, fallbackRole entity.Role, displayName string) *entity.Session {
	sess := &entity.Session{
		Role:        fallbackRole,
		DisplayName: displayName,
		AuthToken:   token,
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return sess
	}

	switch id := claims["userId"].(type) {
	case float64:
		sess.UserID = strconv.FormatInt(int64(id), 10)
	case string:
		sess.UserID = id
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		sess.Role = entity.Role(role)
	}
	if sess.DisplayName == "" {
		if sub, ok := claims["sub"].(string); ok {
			sess.DisplayName = sub
		}
	}
	return sess
}
