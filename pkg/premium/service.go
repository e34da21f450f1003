// Package premium decides whether a guild currently has paid or trial
// access. Decisions are served from a TTL-bounded Redis cache in front
// of the MongoDB record store; a periodic refresher keeps entries near
// their expiry boundary honest.
package premium

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/taskcord/store-bot/pkg/cache"
	"github.com/taskcord/store-bot/pkg/logger"
	"github.com/taskcord/store-bot/pkg/models"
)

const cacheKeyPrefix = "premium:"

// RecordStore is the persistent source of premium records. Implemented
// by database.PremiumStore.
type RecordStore interface {
	GetByGuild(ctx context.Context, guildID string) (*models.PremiumInfo, error)
	GetOrCreate(ctx context.Context, guildID string, trialDays int) (*models.PremiumInfo, error)
	Update(ctx context.Context, guildID string, update models.PremiumUpdate) (*models.PremiumInfo, error)
	FindExpiringWithin(ctx context.Context, buffer time.Duration) ([]models.PremiumInfo, error)
	FindExpiredWithin(ctx context.Context, buffer time.Duration) ([]models.PremiumInfo, error)
}

// Options configures a Service. Zero fields fall back to defaults.
type Options struct {
	CacheTTL     time.Duration // default 1h
	ExpiryBuffer time.Duration // default 3m
	SafetyMargin time.Duration // default 180s
	TrialDays    int           // default 7
	Now          func() time.Time
}

// Service evaluates guild access and maintains the premium cache.
type Service struct {
	store  RecordStore
	cache  cache.Cache
	ttl    time.Duration
	buffer time.Duration
	margin time.Duration

	trialDays int
	now       func() time.Time

	mu          sync.Mutex
	stopRefresh chan struct{}
	refreshing  bool
}

// NewService creates a premium Service over the given store and cache.
func NewService(store RecordStore, kv cache.Cache, opts Options) *Service {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Hour
	}
	if opts.ExpiryBuffer <= 0 {
		opts.ExpiryBuffer = 3 * time.Minute
	}
	if opts.SafetyMargin <= 0 {
		opts.SafetyMargin = 180 * time.Second
	}
	if opts.TrialDays <= 0 {
		opts.TrialDays = 7
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Service{
		store:     store,
		cache:     kv,
		ttl:       opts.CacheTTL,
		buffer:    opts.ExpiryBuffer,
		margin:    opts.SafetyMargin,
		trialDays: opts.TrialDays,
		now:       opts.Now,
	}
}

func cacheKey(guildID string) string {
	return cacheKeyPrefix + guildID
}

// HasAccess reports whether the guild currently has premium or trial
// access. Cached entries are trusted until they expire or are
// invalidated; a miss reads the record store and primes the cache. A
// guild with no record gets no access and no cache entry. Store errors
// propagate so callers can fail closed.
func (s *Service) HasAccess(ctx context.Context, guildID string) (bool, error) {
	raw, found, err := s.cache.Get(ctx, cacheKey(guildID))
	if err != nil {
		logger.Warn(fmt.Sprintf("Premium cache read failed for guild %s: %v", guildID, err), "Premium")
	} else if found {
		payload, decErr := decodePayload(raw)
		if decErr == nil {
			return payload.hasAccessAt(s.now()), nil
		}
		logger.Warn(fmt.Sprintf("Malformed premium cache entry for guild %s: %v", guildID, decErr), "Premium")
	}

	info, err := s.store.GetByGuild(ctx, guildID)
	if err != nil {
		return false, fmt.Errorf("premium record lookup for guild %s: %w", guildID, err)
	}
	if info == nil {
		return false, nil
	}

	s.writeCache(ctx, guildID, info, s.ttl)
	return info.HasAccessAt(s.now()), nil
}

// Invalidate drops the guild's cache entry. Deleting a missing key is
// a no-op. Every admin mutation of a record must call this.
func (s *Service) Invalidate(ctx context.Context, guildID string) error {
	return s.cache.Del(ctx, cacheKey(guildID))
}

// writeCache stores a record projection; failures are logged but never
// propagated, the next read falls back to the store.
func (s *Service) writeCache(ctx context.Context, guildID string, info *models.PremiumInfo, ttl time.Duration) {
	encoded, err := encodePayload(payloadFromRecord(info))
	if err != nil {
		logger.Warn(fmt.Sprintf("Failed to encode premium entry for guild %s: %v", guildID, err), "Premium")
		return
	}
	if err := s.cache.Set(ctx, cacheKey(guildID), encoded, ttl); err != nil {
		logger.Warn(fmt.Sprintf("Premium cache write failed for guild %s: %v", guildID, err), "Premium")
	}
}

// EnsureRecord returns the guild's premium record, creating it with the
// starter trial when the guild has none.
func (s *Service) EnsureRecord(ctx context.Context, guildID string) (*models.PremiumInfo, error) {
	return s.store.GetOrCreate(ctx, guildID, s.trialDays)
}

// GetRecord returns the guild's premium record, or nil when none exists.
func (s *Service) GetRecord(ctx context.Context, guildID string) (*models.PremiumInfo, error) {
	return s.store.GetByGuild(ctx, guildID)
}

// ExtendTrial pushes the guild's trial end date the given number of
// days past now (or past the current end when it is still in the
// future), then invalidates and re-primes the cache.
func (s *Service) ExtendTrial(ctx context.Context, guildID string, days int) (*models.PremiumInfo, error) {
	info, err := s.store.GetOrCreate(ctx, guildID, s.trialDays)
	if err != nil {
		return nil, err
	}

	now := s.now()
	base := now
	if info.TrialEndDate != nil && info.TrialEndDate.After(now) {
		base = *info.TrialEndDate
	}
	newEnd := base.AddDate(0, 0, days)

	isTrial := true
	hasUsed := true
	updated, err := s.store.Update(ctx, guildID, models.PremiumUpdate{
		IsTrial:      &isTrial,
		TrialEndDate: &newEnd,
		HasUsedTrial: &hasUsed,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Invalidate(ctx, guildID); err != nil {
		logger.Warn(fmt.Sprintf("Cache invalidation failed for guild %s: %v", guildID, err), "Premium")
	}
	if err := s.RefreshGuild(ctx, guildID); err != nil {
		logger.Warn(fmt.Sprintf("Cache re-prime failed for guild %s: %v", guildID, err), "Premium")
	}
	return updated, nil
}

// GrantPremium marks the guild premium until the given instant, then
// invalidates and re-primes the cache.
func (s *Service) GrantPremium(ctx context.Context, guildID string, until time.Time) (*models.PremiumInfo, error) {
	isPremium := true
	updated, err := s.store.Update(ctx, guildID, models.PremiumUpdate{
		IsPremium:         &isPremium,
		PremiumExpiryDate: &until,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Invalidate(ctx, guildID); err != nil {
		logger.Warn(fmt.Sprintf("Cache invalidation failed for guild %s: %v", guildID, err), "Premium")
	}
	if err := s.RefreshGuild(ctx, guildID); err != nil {
		logger.Warn(fmt.Sprintf("Cache re-prime failed for guild %s: %v", guildID, err), "Premium")
	}
	return updated, nil
}

// RevokePremium clears both access flags and pushes both expiry dates
// into the past. The record is never deleted so hasUsedTrial survives.
func (s *Service) RevokePremium(ctx context.Context, guildID string) (*models.PremiumInfo, error) {
	off := false
	past := s.now().Add(-time.Minute)
	updated, err := s.store.Update(ctx, guildID, models.PremiumUpdate{
		IsPremium:         &off,
		PremiumExpiryDate: &past,
		IsTrial:           &off,
		TrialEndDate:      &past,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Invalidate(ctx, guildID); err != nil {
		logger.Warn(fmt.Sprintf("Cache invalidation failed for guild %s: %v", guildID, err), "Premium")
	}
	return updated, nil
}

// RefreshGuild re-primes a single guild's cache entry from the record
// store. A guild with no record has its entry removed instead.
func (s *Service) RefreshGuild(ctx context.Context, guildID string) error {
	info, err := s.store.GetByGuild(ctx, guildID)
	if err != nil {
		return err
	}
	if info == nil {
		return s.cache.Del(ctx, cacheKey(guildID))
	}
	s.writeCache(ctx, guildID, info, s.ttl)
	return nil
}

// RefreshExpiringAndExpired is the periodic cache maintenance pass.
// Records expiring within the buffer window get a cache entry whose TTL
// covers the remaining life plus the safety margin, so the entry dies
// shortly after the access does. Records that expired within the last
// buffer window get their entries invalidated.
func (s *Service) RefreshExpiringAndExpired(ctx context.Context) error {
	now := s.now()

	expiring, err := s.store.FindExpiringWithin(ctx, s.buffer)
	if err != nil {
		return fmt.Errorf("querying expiring premium records: %w", err)
	}
	for i := range expiring {
		info := &expiring[i]
		expiry := latestRelevantExpiry(info, now)
		remaining := expiry.Sub(now)
		if remaining < 0 {
			remaining = 0
		}
		s.writeCache(ctx, info.GuildID, info, remaining+s.margin)
	}

	expired, err := s.store.FindExpiredWithin(ctx, s.buffer)
	if err != nil {
		return fmt.Errorf("querying expired premium records: %w", err)
	}
	for i := range expired {
		if err := s.Invalidate(ctx, expired[i].GuildID); err != nil {
			logger.Warn(fmt.Sprintf("Cache invalidation failed for guild %s: %v", expired[i].GuildID, err), "Premium")
		}
	}

	logger.Info(fmt.Sprintf("Premium refresh: %d expiring re-primed, %d expired invalidated", len(expiring), len(expired)), "Premium")
	return nil
}

// latestRelevantExpiry picks the furthest future expiry among the axes
// whose flag is set, falling back to now when neither applies.
func latestRelevantExpiry(info *models.PremiumInfo, now time.Time) time.Time {
	best := now
	if info.IsPremium && info.PremiumExpiryDate != nil && info.PremiumExpiryDate.After(best) {
		best = *info.PremiumExpiryDate
	}
	if info.IsTrial && info.TrialEndDate != nil && info.TrialEndDate.After(best) {
		best = *info.TrialEndDate
	}
	return best
}

// StartAutoRefresh runs RefreshExpiringAndExpired on a ticker. A failed
// run is logged and retried on the next tick. If a refresher is already
// running it is replaced.
func (s *Service) StartAutoRefresh(interval time.Duration) {
	s.mu.Lock()
	if s.refreshing {
		close(s.stopRefresh)
	}
	s.refreshing = true
	s.stopRefresh = make(chan struct{})
	stopChan := s.stopRefresh
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		logger.Info("Premium auto-refresh started (interval: "+interval.String()+")", "Premium")

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				if err := s.RefreshExpiringAndExpired(ctx); err != nil {
					logger.Error("Premium auto-refresh failed: "+err.Error(), "Premium")
				}
				cancel()
			case <-stopChan:
				logger.Info("Premium auto-refresh stopped", "Premium")
				return
			}
		}
	}()
}

// StopAutoRefresh stops the refresher goroutine.
func (s *Service) StopAutoRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refreshing {
		close(s.stopRefresh)
		s.refreshing = false
	}
}
