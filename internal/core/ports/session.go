package ports

import (
	"context"

	"github.com/pghd/records-dashboard/internal/core/domain"
)

// SessionStore owns the persisted session credential. It is the only place
// token pairs are read, written, or cleared; everything else goes through
// these three operations.
type SessionStore interface {
	Get(ctx context.Context, sid string) (domain.TokenPair, error)
	Save(ctx context.Context, sid string, pair domain.TokenPair) error
	Delete(ctx context.Context, sid string) error
}
