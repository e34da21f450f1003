package premium

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taskcord/store-bot/pkg/models"
)

// fakeStore is an in-memory RecordStore with call counting.
type fakeStore struct {
	records  map[string]*models.PremiumInfo
	getCalls int
	failGet  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]*models.PremiumInfo)}
}

func (f *fakeStore) GetByGuild(ctx context.Context, guildID string) (*models.PremiumInfo, error) {
	f.getCalls++
	if f.failGet {
		return nil, errors.New("store unavailable")
	}
	info, ok := f.records[guildID]
	if !ok {
		return nil, nil
	}
	copied := *info
	return &copied, nil
}

func (f *fakeStore) GetOrCreate(ctx context.Context, guildID string, trialDays int) (*models.PremiumInfo, error) {
	if info, ok := f.records[guildID]; ok {
		copied := *info
		return &copied, nil
	}
	now := time.Now()
	end := now.AddDate(0, 0, trialDays)
	info := &models.PremiumInfo{
		GuildID:        guildID,
		IsTrial:        true,
		TrialStartDate: &now,
		TrialEndDate:   &end,
		HasUsedTrial:   true,
	}
	f.records[guildID] = info
	copied := *info
	return &copied, nil
}

func (f *fakeStore) Update(ctx context.Context, guildID string, update models.PremiumUpdate) (*models.PremiumInfo, error) {
	info, ok := f.records[guildID]
	if !ok {
		info = &models.PremiumInfo{GuildID: guildID}
		f.records[guildID] = info
	}
	if update.IsPremium != nil {
		info.IsPremium = *update.IsPremium
	}
	if update.PremiumExpiryDate != nil {
		d := *update.PremiumExpiryDate
		info.PremiumExpiryDate = &d
	}
	if update.IsTrial != nil {
		info.IsTrial = *update.IsTrial
	}
	if update.TrialStartDate != nil {
		d := *update.TrialStartDate
		info.TrialStartDate = &d
	}
	if update.TrialEndDate != nil {
		d := *update.TrialEndDate
		info.TrialEndDate = &d
	}
	if update.HasUsedTrial != nil {
		info.HasUsedTrial = *update.HasUsedTrial
	}
	copied := *info
	return &copied, nil
}

func (f *fakeStore) FindExpiringWithin(ctx context.Context, buffer time.Duration) ([]models.PremiumInfo, error) {
	now := time.Now()
	return f.findInWindow(now, now.Add(buffer)), nil
}

func (f *fakeStore) FindExpiredWithin(ctx context.Context, buffer time.Duration) ([]models.PremiumInfo, error) {
	now := time.Now()
	return f.findInWindow(now.Add(-buffer), now), nil
}

func (f *fakeStore) findInWindow(from, to time.Time) []models.PremiumInfo {
	var results []models.PremiumInfo
	for _, info := range f.records {
		if info.IsPremium && info.PremiumExpiryDate != nil &&
			info.PremiumExpiryDate.After(from) && !info.PremiumExpiryDate.After(to) {
			results = append(results, *info)
			continue
		}
		if info.IsTrial && info.TrialEndDate != nil &&
			info.TrialEndDate.After(from) && !info.TrialEndDate.After(to) {
			results = append(results, *info)
		}
	}
	return results
}

// fakeCache is an in-memory TTL cache recording the TTL of each write.
type fakeCache struct {
	data     map[string]string
	ttls     map[string]time.Duration
	setCalls int
	failGet  bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		data: make(map[string]string),
		ttls: make(map[string]time.Duration),
	}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failGet {
		return "", false, errors.New("cache unavailable")
	}
	val, ok := f.data[key]
	return val, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	f.setCalls++
	f.data[key] = value
	f.ttls[key] = ttl
	return nil
}

func (f *fakeCache) Del(ctx context.Context, key string) error {
	delete(f.data, key)
	delete(f.ttls, key)
	return nil
}

func (f *fakeCache) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		keys = append(keys, k)
	}
	return keys, nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func newTestService(store *fakeStore, kv *fakeCache) *Service {
	return NewService(store, kv, Options{})
}

func TestHasAccessPremiumActive(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.records["g1"] = &models.PremiumInfo{
		GuildID:           "g1",
		IsPremium:         true,
		PremiumExpiryDate: timePtr(time.Now().Add(24 * time.Hour)),
		IsTrial:           false,
	}
	store.records["g2"] = &models.PremiumInfo{
		GuildID:           "g2",
		IsPremium:         true,
		PremiumExpiryDate: timePtr(time.Now().Add(24 * time.Hour)),
		IsTrial:           true,
		TrialEndDate:      timePtr(time.Now().Add(-time.Hour)),
	}
	svc := newTestService(store, newFakeCache())

	for _, guildID := range []string{"g1", "g2"} {
		got, err := svc.HasAccess(ctx, guildID)
		if err != nil {
			t.Fatalf("HasAccess(%s) error = %v", guildID, err)
		}
		if !got {
			t.Errorf("HasAccess(%s) = false, want true", guildID)
		}
	}
}

func TestHasAccessBothFlagsFalse(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.records["g1"] = &models.PremiumInfo{
		GuildID:           "g1",
		IsPremium:         false,
		PremiumExpiryDate: timePtr(time.Now().Add(24 * time.Hour)),
		IsTrial:           false,
		TrialEndDate:      timePtr(time.Now().Add(24 * time.Hour)),
	}
	svc := newTestService(store, newFakeCache())

	got, err := svc.HasAccess(ctx, "g1")
	if err != nil {
		t.Fatalf("HasAccess() error = %v", err)
	}
	if got {
		t.Error("HasAccess() = true, want false")
	}
}

func TestHasAccessNoRecord(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	kv := newFakeCache()
	svc := newTestService(store, kv)

	got, err := svc.HasAccess(ctx, "missing")
	if err != nil {
		t.Fatalf("HasAccess() error = %v", err)
	}
	if got {
		t.Error("HasAccess() = true, want false")
	}
	if len(kv.data) != 0 {
		t.Errorf("cache entries after no-record check = %d, want 0", len(kv.data))
	}
}

func TestHasAccessIdempotence(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.records["g1"] = &models.PremiumInfo{
		GuildID:           "g1",
		IsPremium:         true,
		PremiumExpiryDate: timePtr(time.Now().Add(24 * time.Hour)),
	}
	kv := newFakeCache()
	svc := newTestService(store, kv)

	first, err := svc.HasAccess(ctx, "g1")
	if err != nil {
		t.Fatalf("HasAccess() error = %v", err)
	}
	second, err := svc.HasAccess(ctx, "g1")
	if err != nil {
		t.Fatalf("HasAccess() error = %v", err)
	}

	if first != second {
		t.Errorf("HasAccess() results differ: %v then %v", first, second)
	}
	if store.getCalls != 1 {
		t.Errorf("store reads = %d, want 1 (second call should hit cache)", store.getCalls)
	}
	if kv.setCalls != 1 {
		t.Errorf("cache writes = %d, want 1", kv.setCalls)
	}
}

func TestInvalidateForcesStoreRead(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.records["g1"] = &models.PremiumInfo{
		GuildID:           "g1",
		IsPremium:         true,
		PremiumExpiryDate: timePtr(time.Now().Add(24 * time.Hour)),
	}
	kv := newFakeCache()
	svc := newTestService(store, kv)

	if _, err := svc.HasAccess(ctx, "g1"); err != nil {
		t.Fatalf("HasAccess() error = %v", err)
	}

	// Flip the record behind the cache's back, then invalidate.
	off := false
	past := time.Now().Add(-time.Hour)
	if _, err := store.Update(ctx, "g1", models.PremiumUpdate{IsPremium: &off, PremiumExpiryDate: &past}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if err := svc.Invalidate(ctx, "g1"); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}

	readsBefore := store.getCalls
	got, err := svc.HasAccess(ctx, "g1")
	if err != nil {
		t.Fatalf("HasAccess() error = %v", err)
	}
	if store.getCalls != readsBefore+1 {
		t.Errorf("store reads after invalidate = %d, want %d", store.getCalls, readsBefore+1)
	}
	if got {
		t.Error("HasAccess() after revoke+invalidate = true, want false")
	}
}

func TestInvalidateMissingKey(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeStore(), newFakeCache())

	if err := svc.Invalidate(ctx, "never-cached"); err != nil {
		t.Errorf("Invalidate() on missing key error = %v, want nil", err)
	}
}

func TestHasAccessCacheFailureFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.records["g1"] = &models.PremiumInfo{
		GuildID:           "g1",
		IsPremium:         true,
		PremiumExpiryDate: timePtr(time.Now().Add(24 * time.Hour)),
	}
	kv := newFakeCache()
	kv.failGet = true
	svc := newTestService(store, kv)

	got, err := svc.HasAccess(ctx, "g1")
	if err != nil {
		t.Fatalf("HasAccess() error = %v", err)
	}
	if !got {
		t.Error("HasAccess() = false, want true (cache failure should fall back to store)")
	}
	if store.getCalls != 1 {
		t.Errorf("store reads = %d, want 1", store.getCalls)
	}
}

func TestHasAccessMalformedCacheEntry(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.records["g1"] = &models.PremiumInfo{
		GuildID:           "g1",
		IsPremium:         true,
		PremiumExpiryDate: timePtr(time.Now().Add(24 * time.Hour)),
	}
	kv := newFakeCache()
	kv.data[cacheKey("g1")] = "{broken"
	svc := newTestService(store, kv)

	got, err := svc.HasAccess(ctx, "g1")
	if err != nil {
		t.Fatalf("HasAccess() error = %v", err)
	}
	if !got {
		t.Error("HasAccess() = false, want true (malformed entry is a miss)")
	}
	if store.getCalls != 1 {
		t.Errorf("store reads = %d, want 1", store.getCalls)
	}
}

func TestHasAccessStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.failGet = true
	svc := newTestService(store, newFakeCache())

	if _, err := svc.HasAccess(ctx, "g1"); err == nil {
		t.Error("HasAccess() error = nil, want error on store failure")
	}
}

func TestRefresherExtendsExpiringTTL(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	expiry := time.Now().Add(2 * time.Minute)
	store.records["g1"] = &models.PremiumInfo{
		GuildID:           "g1",
		IsPremium:         true,
		PremiumExpiryDate: &expiry,
	}
	kv := newFakeCache()
	svc := newTestService(store, kv)

	if err := svc.RefreshExpiringAndExpired(ctx); err != nil {
		t.Fatalf("RefreshExpiringAndExpired() error = %v", err)
	}

	ttl, ok := kv.ttls[cacheKey("g1")]
	if !ok {
		t.Fatal("expected a cache entry for expiring guild, found none")
	}

	// 2 minutes remaining + 180s margin, with tolerance for test runtime.
	want := 300 * time.Second
	diff := ttl - want
	if diff < -5*time.Second || diff > 5*time.Second {
		t.Errorf("refreshed TTL = %v, want ~%v", ttl, want)
	}
}

func TestRefresherInvalidatesJustExpired(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.records["g1"] = &models.PremiumInfo{
		GuildID:      "g1",
		IsTrial:      true,
		TrialEndDate: timePtr(time.Now().Add(-time.Minute)),
	}
	kv := newFakeCache()
	svc := newTestService(store, kv)

	// Simulate a stale entry still claiming access.
	encoded, err := encodePayload(statusPayload{IsTrial: true, TrialEndDate: timePtr(time.Now().Add(time.Hour))})
	if err != nil {
		t.Fatalf("encodePayload() error = %v", err)
	}
	kv.data[cacheKey("g1")] = encoded

	if err := svc.RefreshExpiringAndExpired(ctx); err != nil {
		t.Fatalf("RefreshExpiringAndExpired() error = %v", err)
	}

	if _, ok := kv.data[cacheKey("g1")]; ok {
		t.Error("cache entry still present after just-expired refresh, want absent")
	}

	got, err := svc.HasAccess(ctx, "g1")
	if err != nil {
		t.Fatalf("HasAccess() error = %v", err)
	}
	if got {
		t.Error("HasAccess() after expiry = true, want false")
	}
	if store.getCalls == 0 {
		t.Error("store reads = 0, want at least 1 after invalidation")
	}
}

func TestExtendTrialReflectsImmediately(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.records["g1"] = &models.PremiumInfo{
		GuildID:      "g1",
		IsTrial:      true,
		TrialEndDate: timePtr(time.Now().Add(-time.Hour)),
		HasUsedTrial: true,
	}
	kv := newFakeCache()
	svc := newTestService(store, kv)

	// Prime the cache with the lapsed state.
	got, err := svc.HasAccess(ctx, "g1")
	if err != nil {
		t.Fatalf("HasAccess() error = %v", err)
	}
	if got {
		t.Fatal("HasAccess() before extension = true, want false")
	}

	updated, err := svc.ExtendTrial(ctx, "g1", 5)
	if err != nil {
		t.Fatalf("ExtendTrial() error = %v", err)
	}
	if updated.TrialEndDate == nil || !updated.TrialEndDate.After(time.Now().AddDate(0, 0, 4)) {
		t.Errorf("ExtendTrial() trialEndDate = %v, want ~5 days out", updated.TrialEndDate)
	}

	got, err = svc.HasAccess(ctx, "g1")
	if err != nil {
		t.Fatalf("HasAccess() error = %v", err)
	}
	if !got {
		t.Error("HasAccess() after extension = false, want true")
	}
}

func TestRevokePremiumKeepsRecord(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.records["g1"] = &models.PremiumInfo{
		GuildID:           "g1",
		IsPremium:         true,
		PremiumExpiryDate: timePtr(time.Now().Add(24 * time.Hour)),
		HasUsedTrial:      true,
	}
	svc := newTestService(store, newFakeCache())

	updated, err := svc.RevokePremium(ctx, "g1")
	if err != nil {
		t.Fatalf("RevokePremium() error = %v", err)
	}
	if updated.IsPremium || updated.IsTrial {
		t.Errorf("RevokePremium() flags = premium:%v trial:%v, want both false", updated.IsPremium, updated.IsTrial)
	}
	if !updated.HasUsedTrial {
		t.Error("RevokePremium() cleared hasUsedTrial, want preserved")
	}
	if _, ok := store.records["g1"]; !ok {
		t.Error("record deleted by revoke, want kept")
	}

	got, err := svc.HasAccess(ctx, "g1")
	if err != nil {
		t.Fatalf("HasAccess() error = %v", err)
	}
	if got {
		t.Error("HasAccess() after revoke = true, want false")
	}
}

func TestEnsureRecordStarterTrial(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newTestService(store, newFakeCache())

	info, err := svc.EnsureRecord(ctx, "g1")
	if err != nil {
		t.Fatalf("EnsureRecord() error = %v", err)
	}
	if !info.IsTrial {
		t.Error("EnsureRecord() isTrial = false, want true")
	}
	if !info.HasUsedTrial {
		t.Error("EnsureRecord() hasUsedTrial = false, want true")
	}
	if info.TrialEndDate == nil || !info.TrialEndDate.After(time.Now().AddDate(0, 0, 6)) {
		t.Errorf("EnsureRecord() trialEndDate = %v, want ~7 days out", info.TrialEndDate)
	}
}

func TestDecodePayloadMalformed(t *testing.T) {
	if _, err := decodePayload("not json at all"); err == nil {
		t.Error("decodePayload() error = nil, want error")
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	p := statusPayload{IsPremium: true, PremiumExpiryDate: &expiry}

	encoded, err := encodePayload(p)
	if err != nil {
		t.Fatalf("encodePayload() error = %v", err)
	}
	decoded, err := decodePayload(encoded)
	if err != nil {
		t.Fatalf("decodePayload() error = %v", err)
	}

	if decoded.IsPremium != p.IsPremium {
		t.Errorf("decoded.IsPremium = %v, want %v", decoded.IsPremium, p.IsPremium)
	}
	if decoded.PremiumExpiryDate == nil || !decoded.PremiumExpiryDate.Equal(expiry) {
		t.Errorf("decoded.PremiumExpiryDate = %v, want %v", decoded.PremiumExpiryDate, expiry)
	}
}
