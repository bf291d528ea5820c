// Package redisdb caches per-account attendance state: the cooldown stamp
// between two actions and the last time-in/time-out toggle.
package redisdb

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Toggle states cached per account.
const (
	ToggleTimedIn  = "TIMED_IN"
	ToggleTimedOut = "TIMED_OUT"
)

type StatusStore struct {
	client   *redis.Client
	cooldown time.Duration
}

func NewStatusStore(client *redis.Client, cooldown time.Duration) *StatusStore {
	return &StatusStore{client: client, cooldown: cooldown}
}

func cooldownKey(accountID int) string {
	return fmt.Sprintf("attendance:cooldown:%d", accountID)
}

func toggleKey(accountID int) string {
	return fmt.Sprintf("attendance:toggle:%d", accountID)
}

// Window returns the configured cooldown window.
func (s *StatusStore) Window() time.Duration {
	return s.cooldown
}

// CooldownRemaining reports how long the account still has to wait before
// the next attendance action. Zero means the action may proceed.
func (s *StatusStore) CooldownRemaining(ctx context.Context, accountID int) (time.Duration, error) {
	value, err := s.client.Get(ctx, cooldownKey(accountID)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "reading cooldown stamp")
	}

	unix, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, nil
	}

	return Remaining(time.Unix(unix, 0), time.Now(), s.cooldown), nil
}

// MarkAction stamps an attendance action. The key expires with the window
// so stale stamps never block anyone.
func (s *StatusStore) MarkAction(ctx context.Context, accountID int, at time.Time) error {
	err := s.client.Set(ctx, cooldownKey(accountID), strconv.FormatInt(at.Unix(), 10), s.cooldown).Err()
	return errors.Wrap(err, "writing cooldown stamp")
}

// SetToggle caches the account's time-in/time-out state.
func (s *StatusStore) SetToggle(ctx context.Context, accountID int, status string) error {
	err := s.client.Set(ctx, toggleKey(accountID), status, 0).Err()
	return errors.Wrap(err, "writing toggle status")
}

// Toggle returns the cached state, or an empty string when nothing is
// cached.
func (s *StatusStore) Toggle(ctx context.Context, accountID int) (string, error) {
	value, err := s.client.Get(ctx, toggleKey(accountID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "reading toggle status")
	}
	return value, nil
}

// Remaining is the pure cooldown rule: how much of the window is left after
// the last action.
func Remaining(lastAction, now time.Time, window time.Duration) time.Duration {
	elapsed := now.Sub(lastAction)
	if elapsed >= window {
		return 0
	}
	return window - elapsed
}
