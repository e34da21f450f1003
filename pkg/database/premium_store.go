package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taskcord/store-bot/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// premiumCollection holds the per-guild premium/trial records.
const premiumCollection = "premium_info"

var ErrPremiumStoreNotConnected = errors.New("premium store: database not connected")

// PremiumStore reads and writes premium records directly against the
// collection. It deliberately bypasses the DataManager cache: the
// premium service layers its own Redis cache on top, and invalidation
// there must always reach database truth.
type PremiumStore struct {
	db *Database
}

// NewPremiumStore creates a PremiumStore backed by the given database.
func NewPremiumStore(db *Database) *PremiumStore {
	return &PremiumStore{db: db}
}

func (s *PremiumStore) collection() (*mongo.Collection, error) {
	if !s.db.Connected() {
		return nil, ErrPremiumStoreNotConnected
	}
	col := s.db.GetCollection(premiumCollection)
	if col == nil {
		return nil, ErrPremiumStoreNotConnected
	}
	return col, nil
}

// GetByGuild returns the premium record for a guild, or nil when the
// guild has no record.
func (s *PremiumStore) GetByGuild(ctx context.Context, guildID string) (*models.PremiumInfo, error) {
	col, err := s.collection()
	if err != nil {
		return nil, err
	}

	var info models.PremiumInfo
	err = col.FindOne(ctx, bson.M{"guildId": guildID}).Decode(&info)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading premium record for guild %s: %w", guildID, err)
	}
	return &info, nil
}

// GetOrCreate returns a guild's premium record, creating it with a
// starter trial when none exists. The starter trial marks the trial as
// used so it cannot be claimed again after it lapses.
func (s *PremiumStore) GetOrCreate(ctx context.Context, guildID string, trialDays int) (*models.PremiumInfo, error) {
	existing, err := s.GetByGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	col, err := s.collection()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trialEnd := now.AddDate(0, 0, trialDays)
	info := models.PremiumInfo{
		GuildID:        guildID,
		IsPremium:      false,
		IsTrial:        true,
		TrialStartDate: &now,
		TrialEndDate:   &trialEnd,
		HasUsedTrial:   true,
	}

	opts := options.Update().SetUpsert(true)
	if _, err := col.UpdateOne(ctx, bson.M{"guildId": guildID}, bson.M{"$setOnInsert": info}, opts); err != nil {
		return nil, fmt.Errorf("creating premium record for guild %s: %w", guildID, err)
	}

	// Re-read so a concurrent creation still yields the stored record.
	return s.GetByGuild(ctx, guildID)
}

// Update applies a partial update to a guild's premium record and
// returns the updated document.
func (s *PremiumStore) Update(ctx context.Context, guildID string, update models.PremiumUpdate) (*models.PremiumInfo, error) {
	col, err := s.collection()
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if update.IsPremium != nil {
		fields["isPremium"] = *update.IsPremium
	}
	if update.PremiumExpiryDate != nil {
		fields["premiumExpiryDate"] = *update.PremiumExpiryDate
	}
	if update.IsTrial != nil {
		fields["isTrial"] = *update.IsTrial
	}
	if update.TrialStartDate != nil {
		fields["trialStartDate"] = *update.TrialStartDate
	}
	if update.TrialEndDate != nil {
		fields["trialEndDate"] = *update.TrialEndDate
	}
	if update.HasUsedTrial != nil {
		fields["hasUsedTrial"] = *update.HasUsedTrial
	}
	if len(fields) == 0 {
		return s.GetByGuild(ctx, guildID)
	}

	fields["guildId"] = guildID

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var info models.PremiumInfo
	err = col.FindOneAndUpdate(ctx, bson.M{"guildId": guildID}, bson.M{"$set": fields}, opts).Decode(&info)
	if err != nil {
		return nil, fmt.Errorf("updating premium record for guild %s: %w", guildID, err)
	}
	return &info, nil
}

// FindExpiringWithin returns records whose premium or trial expiry falls
// in the window (now, now+buffer].
func (s *PremiumStore) FindExpiringWithin(ctx context.Context, buffer time.Duration) ([]models.PremiumInfo, error) {
	now := time.Now()
	return s.findInWindow(ctx, now, now.Add(buffer))
}

// FindExpiredWithin returns records whose premium or trial expiry falls
// in the window [now-buffer, now).
func (s *PremiumStore) FindExpiredWithin(ctx context.Context, buffer time.Duration) ([]models.PremiumInfo, error) {
	now := time.Now()
	return s.findInWindow(ctx, now.Add(-buffer), now)
}

// findInWindow matches records where either expiry axis falls inside
// (from, to], restricted to the flag that makes the axis meaningful.
func (s *PremiumStore) findInWindow(ctx context.Context, from, to time.Time) ([]models.PremiumInfo, error) {
	col, err := s.collection()
	if err != nil {
		return nil, err
	}

	query := bson.M{
		"$or": []bson.M{
			{
				"isPremium":         true,
				"premiumExpiryDate": bson.M{"$gt": from, "$lte": to},
			},
			{
				"isTrial":      true,
				"trialEndDate": bson.M{"$gt": from, "$lte": to},
			},
		},
	}

	cursor, err := col.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying premium expiry window: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var results []models.PremiumInfo
	for cursor.Next(ctx) {
		var info models.PremiumInfo
		if err := cursor.Decode(&info); err != nil {
			continue
		}
		results = append(results, info)
	}
	return results, cursor.Err()
}
