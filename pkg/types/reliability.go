// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Tier is the authority level of a source.
type Tier string

const (
	TierPrimary   Tier = "primary"
	TierSecondary Tier = "secondary"
	TierTertiary  Tier = "tertiary"
)

// Valid reports whether t is one of the three tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierPrimary, TierSecondary, TierTertiary:
		return true
	}
	return false
}

// Assessment is the reliability judgement for one captured source.
type Assessment struct {
	Tier   Tier    `json:"tier" yaml:"tier"`
	Score  float64 `json:"score" yaml:"score"`
	Reason string  `json:"reason" yaml:"reason"`
}
