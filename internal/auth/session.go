package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

// SessionManager persists session tokens in Redis, keyed per user/device.
// The account core only needs PurgeUser: changing a password hash must
// invalidate every session the user still holds.
type SessionManager struct {
	rdb *redis.Client
}

func NewSessionManager(rdb *redis.Client) *SessionManager {
	return &SessionManager{rdb: rdb}
}

func sessionKey(userID uint64, device string) string {
	return fmt.Sprintf("booru:session:%d:%s", userID, device)
}

// SaveSession stores the session token for the specific user/device pair.
func (s *SessionManager) SaveSession(userID uint64, device, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKey(userID, device), token, ttl).Err()
}

// GetSession fetches the latest session token for a user/device.
func (s *SessionManager) GetSession(userID uint64, device string) (string, error) {
	return s.rdb.Get(ctx, sessionKey(userID, device)).Result()
}

// PurgeUser removes every stored session for the user, across devices.
func (s *SessionManager) PurgeUser(userID uint64) error {
	pattern := fmt.Sprintf("booru:session:%d:*", userID)
	iter := s.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
