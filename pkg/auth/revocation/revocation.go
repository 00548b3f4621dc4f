package revocation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redislib "github.com/redis/go-redis/v9"

	redisclient "github.com/aselbek/bazar-backend/pkg/redis"
)

const revokedMarker = "revoked"

type revocationStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

type revocationKeyer interface {
	RevokedRefreshKey(jti string) string
}

// Store is the denylist of refresh-token identifiers. Entries carry a TTL
// equal to the remaining token life, so the set garbage-collects itself.
type Store struct {
	store revocationStore
	keyer revocationKeyer
}

// NewStore constructs a revocation store backed by Redis.
func NewStore(client *redisclient.Client) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &Store{store: client, keyer: client}, nil
}

// Revoke adds the token identifier to the denylist until expiresAt. Revoking
// an already-revoked or already-expired token is a no-op that succeeds.
func (s *Store) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if strings.TrimSpace(jti) == "" {
		return fmt.Errorf("token id is required")
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.store.Set(ctx, s.keyer.RevokedRefreshKey(jti), revokedMarker, ttl)
}

// IsRevoked reports whether the token identifier sits in the denylist.
func (s *Store) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if strings.TrimSpace(jti) == "" {
		return false, fmt.Errorf("token id is required")
	}
	if _, err := s.store.Get(ctx, s.keyer.RevokedRefreshKey(jti)); err != nil {
		if errors.Is(err, redislib.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
