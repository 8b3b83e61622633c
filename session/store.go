// Package session keeps the console's login state in Redis: the backend
// bearer token plus the normalized user record, one entry per browser
// session. Both the route guard and the screens read the same store, so
// there is exactly one source of truth for identity.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"peminjaman-console/models"
)

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Session is what login persists: the backend token travels with the user
// record, so clearing the session clears the token too.
type Session struct {
	Token     string             `json:"token"`
	User      models.SessionUser `json:"user"`
	IssuedAt  int64              `json:"iat"`
	ExpiresAt int64              `json:"exp"`
}

func key(id string) string         { return fmt.Sprintf("console:sess:%s", id) }
func userSetKey(userID int) string { return fmt.Sprintf("console:user_sessions:%d", userID) }
func touchKey(id string) string    { return fmt.Sprintf("console:sess_touch:%s", id) }

func (s *Store) Create(ctx context.Context, id, token string, user models.SessionUser) error {
	now := time.Now()
	b, _ := json.Marshal(Session{
		Token:     token,
		User:      user,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	})
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, key(id), b, s.ttl)
	pipe.SAdd(ctx, userSetKey(user.ID), id)
	pipe.Expire(ctx, userSetKey(user.ID), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	b, err := s.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Update rewrites the stored user record in place, keeping the token and
// the remaining TTL. Used after a profile edit.
func (s *Store) Update(ctx context.Context, id string, user models.SessionUser) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	sess.User = user
	b, _ := json.Marshal(sess)
	return s.rdb.Set(ctx, key(id), b, redis.KeepTTL).Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	sess, _ := s.Get(ctx, id)
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key(id))
	if sess != nil {
		pipe.SRem(ctx, userSetKey(sess.User.ID), id)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// RevokeAllForUser drops every session belonging to the user. Called when an
// admin deletes a user so a deleted account cannot keep an open console.
func (s *Store) RevokeAllForUser(ctx context.Context, userID int) error {
	ids, err := s.rdb.SMembers(ctx, userSetKey(userID)).Result()
	if err != nil && err != redis.Nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	for _, sid := range ids {
		pipe.Del(ctx, key(sid))
	}
	pipe.Del(ctx, userSetKey(userID))
	_, err = pipe.Exec(ctx)
	return err
}

// Touch extends the session TTL, throttled so an active admin does not hit
// Redis on every request. Returns true when the TTL was actually extended.
func (s *Store) Touch(ctx context.Context, id string, throttle time.Duration) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, touchKey(id), "1", throttle).Result()
	if err != nil || !ok {
		return false, err
	}
	if err := s.rdb.Expire(ctx, key(id), s.ttl).Err(); err != nil {
		return false, err
	}
	return true, nil
}
