package premium

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/taskcord/store-bot/pkg/models"
)

// statusPayload is the JSON document cached in Redis per guild. It is a
// fixed-schema projection of the premium record; only the fields the
// access rule needs are carried. Dates are RFC 3339.
type statusPayload struct {
	IsPremium         bool       `json:"isPremium"`
	IsTrial           bool       `json:"isTrial"`
	PremiumExpiryDate *time.Time `json:"premiumExpiryDate,omitempty"`
	TrialEndDate      *time.Time `json:"trialEndDate,omitempty"`
}

func payloadFromRecord(info *models.PremiumInfo) statusPayload {
	return statusPayload{
		IsPremium:         info.IsPremium,
		IsTrial:           info.IsTrial,
		PremiumExpiryDate: info.PremiumExpiryDate,
		TrialEndDate:      info.TrialEndDate,
	}
}

func (p statusPayload) hasAccessAt(now time.Time) bool {
	rec := models.PremiumInfo{
		IsPremium:         p.IsPremium,
		IsTrial:           p.IsTrial,
		PremiumExpiryDate: p.PremiumExpiryDate,
		TrialEndDate:      p.TrialEndDate,
	}
	return rec.HasAccessAt(now)
}

func encodePayload(p statusPayload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodePayload parses a cached entry. Any error means the entry is
// unusable and callers treat it as a cache miss.
func decodePayload(raw string) (statusPayload, error) {
	var p statusPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return statusPayload{}, err
	}
	return p, nil
}
