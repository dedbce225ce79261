package locker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeEntry struct {
	value     string
	expiresAt time.Time
}

// fakeLockStore is an in-memory stand-in for the Redis repository. Time is
// injected so TTL expiry can be exercised without sleeping.
type fakeLockStore struct {
	mu      sync.Mutex
	entries map[string]fakeEntry
	now     time.Time
	failing bool
}

func newFakeLockStore() *fakeLockStore {
	return &fakeLockStore{
		entries: make(map[string]fakeEntry),
		now:     time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC),
	}
}

func (f *fakeLockStore) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func (f *fakeLockStore) expiredLocked(e fakeEntry) bool {
	return !e.expiresAt.IsZero() && !f.now.Before(e.expiresAt)
}

func (f *fakeLockStore) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if f.failing {
		return errors.New("connection refused")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = fakeEntry{value: string(data), expiresAt: f.now.Add(exp)}
	return nil
}

func (f *fakeLockStore) Get(ctx context.Context, key string) (string, error) {
	if f.failing {
		return "", errors.New("connection refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[key]
	if !ok || f.expiredLocked(e) {
		return "", nil
	}
	return e.value, nil
}

func (f *fakeLockStore) Delete(ctx context.Context, key string) error {
	if f.failing {
		return errors.New("connection refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

func (f *fakeLockStore) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if f.failing {
		return false, errors.New("connection refused")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.entries[key]; ok && !f.expiredLocked(e) {
		return false, nil
	}
	f.entries[key] = fakeEntry{value: string(data), expiresAt: f.now.Add(exp)}
	return true, nil
}

func (f *fakeLockStore) Exists(ctx context.Context, key string) (bool, error) {
	if f.failing {
		return false, errors.New("connection refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[key]
	return ok && !f.expiredLocked(e), nil
}

func (f *fakeLockStore) Expire(ctx context.Context, key string, exp time.Duration) (bool, error) {
	if f.failing {
		return false, errors.New("connection refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[key]
	if !ok || f.expiredLocked(e) {
		return false, nil
	}
	e.expiresAt = f.now.Add(exp)
	f.entries[key] = e
	return true, nil
}

func (f *fakeLockStore) Ping(ctx context.Context) error {
	if f.failing {
		return errors.New("connection refused")
	}
	return nil
}

func newTestLocker(store *fakeLockStore, ttl time.Duration) *slotLockService {
	return &slotLockService{
		redisRepo: store,
		lockTTL:   ttl,
		Log:       zap.NewNop(),
	}
}

func TestSlotLockService_Acquire(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	t.Run("MutualExclusion", func(t *testing.T) {
		store := newFakeLockStore()
		svc := newTestLocker(store, 10*time.Second)

		assert.True(t, svc.Acquire(ctx, "dr-smith", start, "patient-1"))
		assert.False(t, svc.Acquire(ctx, "dr-smith", start, "patient-2"))
		assert.Equal(t, "patient-1", svc.Owner(ctx, "dr-smith", start))
	})

	t.Run("DifferentSlotsAreIndependent", func(t *testing.T) {
		store := newFakeLockStore()
		svc := newTestLocker(store, 10*time.Second)

		assert.True(t, svc.Acquire(ctx, "dr-smith", start, "patient-1"))
		assert.True(t, svc.Acquire(ctx, "dr-smith", start.Add(30*time.Minute), "patient-2"))
		assert.True(t, svc.Acquire(ctx, "dr-jones", start, "patient-3"))
	})

	t.Run("ExpiredLockIsReacquirable", func(t *testing.T) {
		store := newFakeLockStore()
		svc := newTestLocker(store, 10*time.Second)

		assert.True(t, svc.Acquire(ctx, "dr-smith", start, "patient-1"))
		store.advance(11 * time.Second)
		assert.True(t, svc.Acquire(ctx, "dr-smith", start, "patient-2"))
		assert.Equal(t, "patient-2", svc.Owner(ctx, "dr-smith", start))
	})

	t.Run("StoreOutageDegradesToNotAcquired", func(t *testing.T) {
		store := newFakeLockStore()
		store.failing = true
		svc := newTestLocker(store, 10*time.Second)

		assert.False(t, svc.Acquire(ctx, "dr-smith", start, "patient-1"))
	})
}

func TestSlotLockService_Release(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	t.Run("ReleasedSlotIsReacquirable", func(t *testing.T) {
		store := newFakeLockStore()
		svc := newTestLocker(store, 10*time.Second)

		assert.True(t, svc.Acquire(ctx, "dr-smith", start, "patient-1"))
		svc.Release(ctx, "dr-smith", start)
		assert.Equal(t, "", svc.Owner(ctx, "dr-smith", start))
		assert.True(t, svc.Acquire(ctx, "dr-smith", start, "patient-2"))
	})

	t.Run("ReleasingAbsentLockIsNoOp", func(t *testing.T) {
		store := newFakeLockStore()
		svc := newTestLocker(store, 10*time.Second)

		svc.Release(ctx, "dr-smith", start)
		svc.Release(ctx, "dr-smith", start)
		assert.True(t, svc.Acquire(ctx, "dr-smith", start, "patient-1"))
	})

	t.Run("StoreOutageIsSwallowed", func(t *testing.T) {
		store := newFakeLockStore()
		store.failing = true
		svc := newTestLocker(store, 10*time.Second)

		assert.NotPanics(t, func() {
			svc.Release(ctx, "dr-smith", start)
		})
	})
}

func TestSlotLockService_Extend(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	t.Run("ResetsTTL", func(t *testing.T) {
		store := newFakeLockStore()
		svc := newTestLocker(store, 10*time.Second)

		assert.True(t, svc.Acquire(ctx, "dr-smith", start, "patient-1"))
		store.advance(8 * time.Second)
		assert.True(t, svc.Extend(ctx, "dr-smith", start))
		store.advance(8 * time.Second)
		assert.Equal(t, "patient-1", svc.Owner(ctx, "dr-smith", start))
	})

	t.Run("NoLockToExtend", func(t *testing.T) {
		store := newFakeLockStore()
		svc := newTestLocker(store, 10*time.Second)

		assert.False(t, svc.Extend(ctx, "dr-smith", start))
	})

	t.Run("ExpiredLockCannotBeExtended", func(t *testing.T) {
		store := newFakeLockStore()
		svc := newTestLocker(store, 10*time.Second)

		assert.True(t, svc.Acquire(ctx, "dr-smith", start, "patient-1"))
		store.advance(11 * time.Second)
		assert.False(t, svc.Extend(ctx, "dr-smith", start))
	})

	t.Run("StoreOutageDegradesToFalse", func(t *testing.T) {
		store := newFakeLockStore()
		svc := newTestLocker(store, 10*time.Second)
		assert.True(t, svc.Acquire(ctx, "dr-smith", start, "patient-1"))

		store.failing = true
		assert.False(t, svc.Extend(ctx, "dr-smith", start))
	})
}

func TestSlotLockService_Owner(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	t.Run("UnlockedSlot", func(t *testing.T) {
		store := newFakeLockStore()
		svc := newTestLocker(store, 10*time.Second)

		assert.Equal(t, "", svc.Owner(ctx, "dr-smith", start))
	})

	t.Run("StoreOutageDegradesToEmpty", func(t *testing.T) {
		store := newFakeLockStore()
		svc := newTestLocker(store, 10*time.Second)
		assert.True(t, svc.Acquire(ctx, "dr-smith", start, "patient-1"))

		store.failing = true
		assert.Equal(t, "", svc.Owner(ctx, "dr-smith", start))
	})
}

func TestSlotLockKey(t *testing.T) {
	t.Run("CanonicalizesToUTC", func(t *testing.T) {
		jakarta := time.FixedZone("WIB", 7*3600)
		utc := time.Date(2026, 3, 9, 3, 0, 0, 0, time.UTC)
		local := time.Date(2026, 3, 9, 10, 0, 0, 0, jakarta)

		assert.Equal(t, SlotLockKey("dr-smith", utc), SlotLockKey("dr-smith", local))
		assert.Equal(t, "booking_lock:dr-smith:2026-03-09T03:00:00Z", SlotLockKey("dr-smith", utc))
	})

	t.Run("DistinctInstantsDistinctKeys", func(t *testing.T) {
		start := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
		assert.NotEqual(t,
			SlotLockKey("dr-smith", start),
			SlotLockKey("dr-smith", start.Add(30*time.Minute)),
		)
	})
}
