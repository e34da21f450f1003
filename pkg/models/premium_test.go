package models

import (
	"testing"
	"time"
)

func TestHasAccessAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	cases := []struct {
		name string
		info PremiumInfo
		want bool
	}{
		{"active premium", PremiumInfo{IsPremium: true, PremiumExpiryDate: &future}, true},
		{"expired premium", PremiumInfo{IsPremium: true, PremiumExpiryDate: &past}, false},
		{"premium flag without date", PremiumInfo{IsPremium: true}, false},
		{"date without premium flag", PremiumInfo{PremiumExpiryDate: &future}, false},
		{"active trial", PremiumInfo{IsTrial: true, TrialEndDate: &future}, true},
		{"expired trial", PremiumInfo{IsTrial: true, TrialEndDate: &past}, false},
		{"trial flag without date", PremiumInfo{IsTrial: true}, false},
		{"expired premium but active trial", PremiumInfo{
			IsPremium: true, PremiumExpiryDate: &past,
			IsTrial: true, TrialEndDate: &future,
		}, true},
		{"empty record", PremiumInfo{}, false},
	}

	for _, tc := range cases {
		if got := tc.info.HasAccessAt(now); got != tc.want {
			t.Errorf("%s: HasAccessAt = %v, want %v", tc.name, got, tc.want)
		}
	}

	// expiry exactly at now does not grant access
	exact := now
	info := PremiumInfo{IsPremium: true, PremiumExpiryDate: &exact}
	if info.HasAccessAt(now) {
		t.Error("expiry equal to now should not grant access")
	}
}
