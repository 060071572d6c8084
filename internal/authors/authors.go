// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package authors turns free-text author strings into structured AuthorInfo
// and provides the name transforms every citation style shares.
package authors

import (
	"regexp"
	"strings"

	"github.com/pdiddy/quickcite/pkg/types"
)

var (
	// corporateWordRe matches organizational suffixes and keywords. Words
	// that double as surnames (Press, Staff, Center) are left out.
	corporateWordRe = regexp.MustCompile(`(?i)\b(inc|llc|llp|ltd|plc|gmbh|corp|corporation|company|university|college|institute|foundation|agency|department|dept|committee|association|society|council|organization|organisation|bureau|commission|ministry|administration|laboratory|laboratories|consortium|federation|editors|editorial board)\b\.?`)

	// corporateAcronymRe matches well-known agency acronyms. Case-sensitive
	// so that "who" in prose is not the World Health Organization.
	corporateAcronymRe = regexp.MustCompile(`\b(EPA|NASA|CDC|FDA|NIH|NSF|NIST|NOAA|USDA|FBI|CIA|IRS|SEC|FTC|FCC|DOE|DOJ|WHO|UN|UNESCO|UNICEF|OECD|IMF|NATO|EU|IEEE|ACM|ISO|W3C|IETF|BBC|CNN|NPR|PBS|AP)\b`)

	// corporateNameRe matches well-known corporations and publishers, only as
	// the whole string or followed by an organizational tail ("Reuters
	// Staff"), so that "Jane Wiley" or "Fiona Apple" stay people.
	corporateNameRe = regexp.MustCompile(`^(Google|Microsoft|Apple|Amazon|Meta|IBM|Intel|NVIDIA|Nvidia|OpenAI|Anthropic|Reuters|Bloomberg|Wikipedia|Mozilla|GitHub|Elsevier|Springer|Wiley)(\s+(Inc|LLC|Ltd|Corp|Research|Labs|AI|News|Press|Staff|Team|Blog|Contributors|Developers|Editors))*\.?$`)

	// andRe matches the word conjunction between names.
	andRe = regexp.MustCompile(`(?i)\s+and\s+`)

	// ampRe matches the ampersand conjunction between names.
	ampRe = regexp.MustCompile(`\s*&\s*`)
)

// IsCorporate reports whether raw names an organization rather than a person.
func IsCorporate(raw string) bool {
	return corporateWordRe.MatchString(raw) ||
		corporateAcronymRe.MatchString(raw) ||
		corporateNameRe.MatchString(strings.TrimSpace(raw))
}

// Parse splits a free-text author string into individual names.
//
// An empty string or "Unknown Author" yields Count 0 (flagged corporate so
// renderers print the sentinel rather than a name). Corporate names are kept
// whole with Count 1. Otherwise the string is split on " and " when present,
// else on " & "; each segment is then split on ";" when present, else on
// ",", except that a lone "Last, First" pair (one comma, one word before it)
// stays a single name.
func Parse(raw string) types.AuthorInfo {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, types.UnknownAuthor) {
		return noAuthor()
	}
	if IsCorporate(raw) {
		return types.AuthorInfo{Authors: []string{raw}, IsCorporate: true, Count: 1}
	}

	var names []string
	for _, seg := range splitConjunction(raw) {
		names = append(names, splitList(seg)...)
	}
	if len(names) == 0 {
		return noAuthor()
	}
	return types.AuthorInfo{Authors: names, Count: len(names)}
}

func noAuthor() types.AuthorInfo {
	return types.AuthorInfo{Authors: []string{}, IsCorporate: true, Count: 0}
}

func splitConjunction(raw string) []string {
	switch {
	case andRe.MatchString(raw):
		return andRe.Split(raw, -1)
	case strings.Contains(raw, "&"):
		return ampRe.Split(raw, -1)
	}
	return []string{raw}
}

func splitList(seg string) []string {
	seg = trimName(seg)
	if seg == "" {
		return nil
	}

	var parts []string
	switch {
	case strings.Contains(seg, ";"):
		parts = strings.Split(seg, ";")
	case isLastFirstPair(seg):
		return []string{seg}
	default:
		parts = strings.Split(seg, ",")
	}

	var names []string
	for _, p := range parts {
		if p = trimName(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// isLastFirstPair reports whether seg looks like "Doe, Jane": exactly one
// comma with a single word before it.
func isLastFirstPair(seg string) bool {
	if strings.Count(seg, ",") != 1 {
		return false
	}
	before, after, _ := strings.Cut(seg, ",")
	return len(strings.Fields(before)) == 1 && strings.TrimSpace(after) != ""
}

func trimName(s string) string {
	return strings.Trim(strings.TrimSpace(s), ",; ")
}
