package rdx

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init creates the redis client. The cache is best-effort; callers log and
// continue when an operation fails.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

// CacheSession stores the latest issued auth token for a user.
func CacheSession(ctx context.Context, userID, token string) error {
	return Conn.HSet(ctx, "sessions", userID, token).Err()
}

// CacheResetToken keeps the outstanding reset token with the same 20 minute
// expiry as the token itself.
func CacheResetToken(ctx context.Context, userID, token string, ttl time.Duration) error {
	return Conn.Set(ctx, "reset:"+userID, token, ttl).Err()
}

// DropResetToken clears the cached reset token once it has been redeemed.
func DropResetToken(ctx context.Context, userID string) error {
	return Conn.Del(ctx, "reset:"+userID).Err()
}
