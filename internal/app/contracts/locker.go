package contracts

import (
	"context"
	"time"
)

// SlotLockService guards a (provider, start instant) booking slot across all
// running API instances. Acquisition is a single non-blocking attempt; the
// caller retries with backoff. Every operation degrades on lock-store
// transport failure instead of propagating it: a store outage disables
// double-booking protection rather than blocking all bookings.
type SlotLockService interface {
	// Acquire returns true iff this call created the lock for the slot,
	// granting exclusive ownership to requestorID until release or TTL expiry.
	Acquire(ctx context.Context, providerID string, start time.Time, requestorID string) bool
	// Release unconditionally drops the lock. Idempotent; releasing an absent
	// or expired lock is a no-op.
	Release(ctx context.Context, providerID string, start time.Time)
	// Extend resets the TTL on an existing lock and reports whether a lock
	// existed to extend.
	Extend(ctx context.Context, providerID string, start time.Time) bool
	// Owner reports the requestorID currently holding the slot, or "" when
	// the slot is unlocked.
	Owner(ctx context.Context, providerID string, start time.Time) string
}
