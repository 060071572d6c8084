// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify assigns a SourceType to a captured page from its title and
// URL using an ordered list of pattern rules. The first matching rule wins and
// every input falls through to website.
package classify

import (
	"net/url"
	"strings"

	"github.com/pdiddy/quickcite/pkg/types"
)

// Rule pairs a predicate with the SourceType it assigns.
type Rule struct {
	Name  string
	Type  types.SourceType
	Match func(in Input) bool
}

// Input is the pre-parsed view of a capture that rules match against.
type Input struct {
	Title string
	URL   string

	// Host is the lowercased hostname without "www.".
	Host string

	// Path is the URL path, lowercased.
	Path string
}

// NewInput parses title and rawURL into an Input. Unparseable URLs keep the
// raw string with an empty host.
func NewInput(title, rawURL string) Input {
	in := Input{Title: strings.TrimSpace(title), URL: strings.TrimSpace(rawURL)}
	u, err := url.Parse(in.URL)
	if err != nil {
		return in
	}
	in.Host = strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	in.Path = strings.ToLower(u.Path)
	return in
}

// rules is the classification cascade in priority order. Authoritative
// sources come first because their signals are specific and would otherwise
// be masked by the looser keyword rules further down.
var rules = []Rule{
	{Name: "government", Type: types.SourceGovernment, Match: isGovernment},
	{Name: "legal", Type: types.SourceLegal, Match: isLegal},
	{Name: "patent", Type: types.SourcePatent, Match: isPatent},
	{Name: "standard", Type: types.SourceStandard, Match: isStandard},
	{Name: "video", Type: types.SourceVideo, Match: isVideo},
	{Name: "social_media", Type: types.SourceSocialMedia, Match: isSocial},
	{Name: "academic", Type: types.SourceAcademic, Match: isAcademic},
	{Name: "book", Type: types.SourceBook, Match: isBook},
	{Name: "news", Type: types.SourceNews, Match: isNews},
}

// Rules returns a copy of the classification cascade in priority order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Classify returns the SourceType of the page with the given title and URL.
func Classify(title, rawURL string) types.SourceType {
	in := NewInput(title, rawURL)
	for _, r := range rules {
		if r.Match(in) {
			return r.Type
		}
	}
	return types.SourceWebsite
}

// Record classifies a capture record. Records flagged as video by the
// metadata collaborator are always video.
func Record(r types.CaptureRecord) types.SourceType {
	if r.IsVideo {
		return types.SourceVideo
	}
	return Classify(r.SourceTitle, r.SourceURL)
}

// hostIs reports whether host equals one of domains or is a subdomain of one.
func hostIs(host string, domains ...string) bool {
	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
