// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reliability rates captured sources as primary, secondary or
// tertiary. Rules are checked in order and the first match wins: configured
// domain groups, then TLD suffixes, then a default for the source type.
package reliability

import (
	"fmt"
	"strings"

	"github.com/pdiddy/quickcite/internal/classify"
	"github.com/pdiddy/quickcite/internal/normalize"
	"github.com/pdiddy/quickcite/pkg/types"
)

// typeDefaults is the fallback tier per source type.
var typeDefaults = map[types.SourceType]types.Assessment{
	types.SourceGovernment:  {Tier: types.TierPrimary, Score: 0.85},
	types.SourceLegal:       {Tier: types.TierPrimary, Score: 0.85},
	types.SourcePatent:      {Tier: types.TierPrimary, Score: 0.85},
	types.SourceStandard:    {Tier: types.TierPrimary, Score: 0.85},
	types.SourceAcademic:    {Tier: types.TierPrimary, Score: 0.85},
	types.SourceBook:        {Tier: types.TierSecondary, Score: 0.70},
	types.SourceNews:        {Tier: types.TierSecondary, Score: 0.70},
	types.SourceWebsite:     {Tier: types.TierTertiary, Score: 0.50},
	types.SourceVideo:       {Tier: types.TierTertiary, Score: 0.50},
	types.SourceSocialMedia: {Tier: types.TierTertiary, Score: 0.50},
}

// Scorer assesses records against a rule set.
type Scorer struct {
	rules Rules
}

// NewScorer returns a Scorer over rules.
func NewScorer(rules Rules) *Scorer {
	return &Scorer{rules: rules}
}

// Assess rates record.
func (s *Scorer) Assess(record types.CaptureRecord) types.Assessment {
	record = record.Normalize()
	host := normalize.Host(record.SourceURL)

	if host != "" {
		for _, g := range s.rules.DomainGroups {
			for _, d := range g.Domains {
				if matchDomain(host, d) {
					return types.Assessment{
						Tier:   g.Tier,
						Score:  g.Score,
						Reason: fmt.Sprintf("%s matches %s domain %s", host, g.Category, d),
					}
				}
			}
		}
		for _, t := range s.rules.TLDPatterns {
			if strings.HasSuffix(host, strings.ToLower(t.Suffix)) {
				return types.Assessment{
					Tier:   t.Tier,
					Score:  t.Score,
					Reason: fmt.Sprintf("%s ends in %s", host, t.Suffix),
				}
			}
		}
	}

	st := classify.Record(record)
	a := typeDefaults[st]
	a.Reason = fmt.Sprintf("default for %s sources", st)
	return a
}

func matchDomain(host, domain string) bool {
	domain = strings.TrimPrefix(strings.ToLower(domain), "www.")
	return host == domain || strings.HasSuffix(host, "."+domain)
}
