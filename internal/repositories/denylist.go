package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/treeseverywhere/api/internal/logger"
)

// TokenDenylistRepository stores revoked bearer tokens in Redis until
// their natural expiry. Tokens are keyed by hash so raw tokens never
// land in the cache.
type TokenDenylistRepository struct {
	client *redis.Client
	exp    time.Duration // matches the token lifetime
}

// NewTokenDenylistRepository creates a denylist repository. The expiration
// should equal the JWT lifetime; entries for expired tokens are useless.
func NewTokenDenylistRepository(client *redis.Client, expiration time.Duration) *TokenDenylistRepository {
	return &TokenDenylistRepository{
		client: client,
		exp:    expiration,
	}
}

func denylistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("token_denylist:%s", hex.EncodeToString(sum[:]))
}

// Revoke marks a token as revoked.
func (r *TokenDenylistRepository) Revoke(ctx context.Context, token string) error {
	key := denylistKey(token)
	err := r.client.Set(ctx, key, "revoked", r.exp).Err()

	logger.Log.Infow("denylist set",
		"key", key,
		"error", err,
	)

	return err
}

// IsRevoked reports whether a token has been revoked.
func (r *TokenDenylistRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	key := denylistKey(token)

	_, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}

	logger.Log.Infow("denylist get",
		"key", key,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return true, nil
}
