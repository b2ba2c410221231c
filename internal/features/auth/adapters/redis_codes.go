package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"backoffice-api/internal/core/cache"
)

// RedisCodeStore implements ports.CodeStore on top of the cache port.
// Passcodes and cooldowns expire through key TTLs; sessions are plain
// presence keys so sign-out can revoke a token before it expires.
type RedisCodeStore struct {
	cache cache.Cache
}

// NewRedisCodeStore creates a new RedisCodeStore.
func NewRedisCodeStore(c cache.Cache) *RedisCodeStore {
	return &RedisCodeStore{
		cache: c,
	}
}

// SaveCode stores the passcode for an email, replacing any previous one.
func (s *RedisCodeStore) SaveCode(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.cache.Set(ctx, codeKey(email), []byte(code), ttl); err != nil {
		return fmt.Errorf("failed to save passcode: %w", err)
	}
	return nil
}

// PeekCode returns the stored passcode, or empty when none is stored.
func (s *RedisCodeStore) PeekCode(ctx context.Context, email string) (string, error) {
	data, err := s.cache.Get(ctx, codeKey(email))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read passcode: %w", err)
	}
	return string(data), nil
}

// ConsumeCode removes the stored passcode.
func (s *RedisCodeStore) ConsumeCode(ctx context.Context, email string) error {
	if err := s.cache.Delete(ctx, codeKey(email)); err != nil {
		return fmt.Errorf("failed to consume passcode: %w", err)
	}
	return nil
}

// ArmCooldown arms the resend cooldown. Returns false while one is running.
func (s *RedisCodeStore) ArmCooldown(ctx context.Context, email string, ttl time.Duration) (bool, error) {
	armed, err := s.cache.SetNX(ctx, cooldownKey(email), []byte("1"), ttl)
	if err != nil {
		return false, fmt.Errorf("failed to arm cooldown: %w", err)
	}
	return armed, nil
}

// SaveSession registers a session id for later revocation checks.
func (s *RedisCodeStore) SaveSession(ctx context.Context, sessionID string, ttl time.Duration) error {
	if err := s.cache.Set(ctx, sessionKey(sessionID), []byte("1"), ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// RevokeSession removes a session id.
func (s *RedisCodeStore) RevokeSession(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, sessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// SessionActive reports whether a session id is registered.
func (s *RedisCodeStore) SessionActive(ctx context.Context, sessionID string) (bool, error) {
	_, err := s.cache.Get(ctx, sessionKey(sessionID))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return true, nil
}

func codeKey(email string) string {
	return "otp:code:" + strings.ToLower(email)
}

func cooldownKey(email string) string {
	return "otp:cooldown:" + strings.ToLower(email)
}

func sessionKey(id string) string {
	return "session:" + id
}
