package models

import "time"

// PremiumInfo is the per-guild premium/trial record. There is at most one
// document per guild; it is created lazily with a starter trial and never
// deleted during normal operation (revoking flips the flags and pushes the
// expiry dates into the past so HasUsedTrial survives).
type PremiumInfo struct {
	GuildID           string     `bson:"guildId" json:"guildId"`
	IsPremium         bool       `bson:"isPremium" json:"isPremium"`
	PremiumExpiryDate *time.Time `bson:"premiumExpiryDate,omitempty" json:"premiumExpiryDate,omitempty"`
	IsTrial           bool       `bson:"isTrial" json:"isTrial"`
	TrialStartDate    *time.Time `bson:"trialStartDate,omitempty" json:"trialStartDate,omitempty"`
	TrialEndDate      *time.Time `bson:"trialEndDate,omitempty" json:"trialEndDate,omitempty"`
	HasUsedTrial      bool       `bson:"hasUsedTrial" json:"hasUsedTrial"`
}

// HasAccessAt reports whether the record grants paid or trial access at the
// given instant. Expiry dates are only trusted while the matching flag is
// set; premium and trial are evaluated independently.
func (p *PremiumInfo) HasAccessAt(now time.Time) bool {
	if p.IsPremium && p.PremiumExpiryDate != nil && p.PremiumExpiryDate.After(now) {
		return true
	}
	if p.IsTrial && p.TrialEndDate != nil && p.TrialEndDate.After(now) {
		return true
	}
	return false
}

// PremiumUpdate describes a partial mutation of a PremiumInfo document.
// Nil fields are left untouched.
type PremiumUpdate struct {
	IsPremium         *bool
	PremiumExpiryDate *time.Time
	IsTrial           *bool
	TrialStartDate    *time.Time
	TrialEndDate      *time.Time
	HasUsedTrial      *bool
}
