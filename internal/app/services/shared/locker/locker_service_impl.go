package locker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	slotLockServiceInstance contracts.SlotLockService
	onceSlotLockService     sync.Once
)

type slotLockService struct {
	redisRepo contracts.RedisRepository
	lockTTL   time.Duration
	Log       *zap.Logger
}

func NewSlotLockService(repo contracts.RedisRepository, lockTTL time.Duration, logger *zap.Logger) contracts.SlotLockService {
	onceSlotLockService.Do(func() {
		instance := &slotLockService{
			redisRepo: repo,
			lockTTL:   lockTTL,
			Log:       logger,
		}
		slotLockServiceInstance = instance
	})
	return slotLockServiceInstance
}

// SlotLockKey derives the lock key from the provider identifier and the
// canonical UTC form of the start instant. The same instant expressed in any
// accepted input format therefore always maps to the same key.
func SlotLockKey(providerID string, start time.Time) string {
	return fmt.Sprintf(constvars.RedisBookingLockKeyFormat, providerID, utils.CanonicalInstant(start))
}

func (s *slotLockService) Acquire(ctx context.Context, providerID string, start time.Time, requestorID string) bool {
	key := SlotLockKey(providerID, start)

	acquired, err := s.redisRepo.TrySetNX(ctx, key, requestorID, s.lockTTL)
	if err != nil {
		// Lock store outage degrades to "not acquired" instead of failing the
		// request: availability over consistency.
		s.Log.Error("slotLockService.Acquire lock store unavailable",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false
	}

	if !acquired {
		s.Log.Info("slotLockService.Acquire slot already locked",
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false
	}

	s.Log.Info("slotLockService.Acquire lock acquired",
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockOwnerKey, requestorID),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, s.lockTTL),
	)
	return true
}

func (s *slotLockService) Release(ctx context.Context, providerID string, start time.Time) {
	key := SlotLockKey(providerID, start)

	err := s.redisRepo.Delete(ctx, key)
	if err != nil {
		s.Log.Error("slotLockService.Release error deleting lock",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return
	}

	s.Log.Info("slotLockService.Release lock released",
		zap.String(constvars.LoggingRedisKey, key),
	)
}

func (s *slotLockService) Extend(ctx context.Context, providerID string, start time.Time) bool {
	key := SlotLockKey(providerID, start)

	extended, err := s.redisRepo.Expire(ctx, key, s.lockTTL)
	if err != nil {
		s.Log.Error("slotLockService.Extend error refreshing lock TTL",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false
	}

	return extended
}

func (s *slotLockService) Owner(ctx context.Context, providerID string, start time.Time) string {
	key := SlotLockKey(providerID, start)

	storedVal, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		s.Log.Error("slotLockService.Owner error reading lock",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return ""
	}
	if storedVal == "" {
		return ""
	}

	// Lock values are stored JSON-encoded by the redis repository.
	var owner string
	if err := json.Unmarshal([]byte(storedVal), &owner); err != nil {
		return storedVal
	}
	return owner
}
