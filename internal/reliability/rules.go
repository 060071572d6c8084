// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reliability

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/quickcite/pkg/types"
)

// DomainGroup assigns a tier to a named set of hosts. A domain matches its
// subdomains too.
type DomainGroup struct {
	Category string     `yaml:"category"`
	Tier     types.Tier `yaml:"tier"`
	Score    float64    `yaml:"score"`
	Domains  []string   `yaml:"domains"`
}

// TLDRule assigns a tier to hosts ending in Suffix (".gov", ".ac.uk").
type TLDRule struct {
	Suffix      string     `yaml:"suffix"`
	Tier        types.Tier `yaml:"tier"`
	Score       float64    `yaml:"score"`
	Description string     `yaml:"description"`
}

// Rules is the reliability rule set, normally read from a YAML file of the
// form:
//
//	domain_groups:
//	  - category: reference
//	    tier: secondary
//	    score: 0.7
//	    domains: [britannica.com]
//	tld_patterns:
//	  - suffix: .gov
//	    tier: primary
//	    score: 0.9
type Rules struct {
	DomainGroups []DomainGroup `yaml:"domain_groups"`
	TLDPatterns  []TLDRule     `yaml:"tld_patterns"`
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		DomainGroups: []DomainGroup{
			{Category: "scholarly", Tier: types.TierPrimary, Score: 0.9, Domains: []string{
				"arxiv.org", "doi.org", "pubmed.ncbi.nlm.nih.gov", "jstor.org",
				"nature.com", "science.org", "ieeexplore.ieee.org", "dl.acm.org",
				"springer.com", "sciencedirect.com", "plos.org",
			}},
			{Category: "standards", Tier: types.TierPrimary, Score: 0.9, Domains: []string{
				"iso.org", "ietf.org", "rfc-editor.org", "w3.org", "standards.ieee.org",
			}},
			{Category: "wire", Tier: types.TierSecondary, Score: 0.75, Domains: []string{
				"reuters.com", "apnews.com", "bbc.co.uk", "bbc.com",
				"nytimes.com", "washingtonpost.com", "theguardian.com",
			}},
			{Category: "reference", Tier: types.TierTertiary, Score: 0.55, Domains: []string{
				"wikipedia.org", "britannica.com",
			}},
			{Category: "user generated", Tier: types.TierTertiary, Score: 0.35, Domains: []string{
				"medium.com", "reddit.com", "quora.com", "substack.com",
			}},
		},
		TLDPatterns: []TLDRule{
			{Suffix: ".gov", Tier: types.TierPrimary, Score: 0.9, Description: "government"},
			{Suffix: ".mil", Tier: types.TierPrimary, Score: 0.9, Description: "military"},
			{Suffix: ".edu", Tier: types.TierPrimary, Score: 0.85, Description: "educational"},
			{Suffix: ".ac.uk", Tier: types.TierPrimary, Score: 0.85, Description: "educational"},
		},
	}
}

// LoadRules reads a YAML rule file. A missing file yields DefaultRules.
// Entries with an unknown tier or a score outside [0, 1] are rejected.
func LoadRules(path string) (Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultRules(), nil
	}
	if err != nil {
		return Rules{}, eris.Wrapf(err, "reliability: reading %s", path)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, eris.Wrapf(err, "reliability: parsing %s", path)
	}
	if err := rules.validate(); err != nil {
		return Rules{}, eris.Wrapf(err, "reliability: %s", path)
	}
	return rules, nil
}

func (r Rules) validate() error {
	for _, g := range r.DomainGroups {
		if !g.Tier.Valid() {
			return eris.Errorf("domain group %q: unknown tier %q", g.Category, g.Tier)
		}
		if g.Score < 0 || g.Score > 1 {
			return eris.Errorf("domain group %q: score %v out of range", g.Category, g.Score)
		}
	}
	for _, t := range r.TLDPatterns {
		if !t.Tier.Valid() {
			return eris.Errorf("tld %q: unknown tier %q", t.Suffix, t.Tier)
		}
		if t.Score < 0 || t.Score > 1 {
			return eris.Errorf("tld %q: score %v out of range", t.Suffix, t.Score)
		}
		if !strings.HasPrefix(t.Suffix, ".") {
			return eris.Errorf("tld %q: suffix must start with a dot", t.Suffix)
		}
	}
	return nil
}
