package port

import (
	"context"

	"github.com/sneha3498/infosysproject/internal/entity"
)

// SessionStore persists the session across runs. Load returns (nil, nil)
// when no session is stored; the caller treats that as anonymous.
type SessionStore interface {
	Load(ctx context.Context) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Clear(ctx context.Context) error
}
