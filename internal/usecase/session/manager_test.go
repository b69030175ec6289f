package session

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sneha3498/infosysproject/internal/entity"
)

type MockAuthAPI struct{ mock.Mock }

func (m *MockAuthAPI) Login(ctx context.Context, creds entity.Credentials) (entity.AuthResult, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(entity.AuthResult), args.Error(1)
}

func (m *MockAuthAPI) Signup(ctx context.Context, form entity.SignupForm) (entity.AuthResult, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(entity.AuthResult), args.Error(1)
}

// memStore is an in-memory stand-in for the persisted session store.
type memStore struct {
	sess *entity.Session
}

func (s *memStore) Load(context.Context) (*entity.Session, error) { return s.sess, nil }
func (s *memStore) Save(_ context.Context, sess *entity.Session) error {
	s.sess = sess
	return nil
}
func (s *memStore) Clear(context.Context) error {
	s.sess = nil
	return nil
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestLogin_ExtractsClaimsAndPersists(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"userId": 7, "role": "PROVIDER", "sub": "pro@example.com"})

	auth := new(MockAuthAPI)
	auth.On("Login", mock.Anything, entity.Credentials{
		Email: "pro@example.com", Password: "secret", Role: entity.RoleProvider,
	}).Return(entity.AuthResult{Token: token}, nil)

	store := &memStore{}
	m := NewManager(auth, store, zap.NewNop())

	sess, err := m.Login(context.Background(), "pro@example.com", "secret", entity.RoleProvider)
	require.NoError(t, err)
	assert.Equal(t, "7", sess.UserID)
	assert.Equal(t, entity.RoleProvider, sess.Role)
	assert.Equal(t, token, sess.AuthToken)
	assert.Equal(t, "pro@example.com", sess.DisplayName)
	assert.Equal(t, sess, store.sess)
}

func TestLogin_FallsBackToRequestedRoleForOpaqueToken(t *testing.T) {
	auth := new(MockAuthAPI)
	auth.On("Login", mock.Anything, mock.Anything).
		Return(entity.AuthResult{Token: "not-a-jwt"}, nil)

	m := NewManager(auth, &memStore{}, zap.NewNop())

	sess, err := m.Login(context.Background(), "a@b.c", "pw", entity.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, sess.Role)
	assert.Empty(t, sess.UserID)
	assert.False(t, sess.IsAnonymous())
}

func TestLogin_MissingCredentials(t *testing.T) {
	auth := new(MockAuthAPI)
	m := NewManager(auth, &memStore{}, zap.NewNop())

	_, err := m.Login(context.Background(), "", "", entity.RoleCustomer)
	assert.ErrorIs(t, err, entity.ErrValidation)
	auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestSignup_PasswordMismatch(t *testing.T) {
	auth := new(MockAuthAPI)
	m := NewManager(auth, &memStore{}, zap.NewNop())

	_, err := m.Signup(context.Background(), entity.SignupForm{
		UserName: "x", Email: "a@b.c", Password: "one", ConfirmPassword: "two", Role: entity.RoleProvider,
	})
	assert.ErrorIs(t, err, entity.ErrValidation)
	auth.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestLogout_ClearsEverything(t *testing.T) {
	store := &memStore{sess: &entity.Session{UserID: "7", Role: entity.RoleProvider, AuthToken: "tok"}}
	m := NewManager(new(MockAuthAPI), store, zap.NewNop())

	require.NoError(t, m.Logout(context.Background()))

	sess, err := m.Current(context.Background())
	require.NoError(t, err)
	assert.True(t, sess.IsAnonymous())
}
