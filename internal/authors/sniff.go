// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authors

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// titleAuthorPatterns find an author credit in a page title, most specific
// first. Names must be capitalized words.
var titleAuthorPatterns = []*regexp.Regexp{
	// "Title - By Jane Doe", "Title | By Jane Doe"
	regexp.MustCompile(`\s*[-–|]\s*(?i:by)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	// "Title by Jane Doe"
	regexp.MustCompile(`\s+(?i:by)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	// "Title | Jane Doe | Site"
	regexp.MustCompile(`\s*[-–|]\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s*[-–|]`),
}

// urlAuthorPatterns find an author slug in a URL path.
var urlAuthorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)/author/([^/?#]+)`),
	regexp.MustCompile(`(?i)/by/([^/?#]+)`),
}

// Sniff makes a best-effort guess at the author from a page title or URL.
// It returns "" when nothing matches.
func Sniff(title, rawURL string) string {
	for _, re := range titleAuthorPatterns {
		if m := re.FindStringSubmatch(title); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	for _, re := range urlAuthorPatterns {
		m := re.FindStringSubmatch(rawURL)
		if m == nil {
			continue
		}
		slug, err := url.PathUnescape(m[1])
		if err != nil {
			slug = m[1]
		}
		slug = strings.NewReplacer("-", " ", "_", " ").Replace(slug)
		if name := titleCase(slug); name != "" {
			return name
		}
	}
	return ""
}

// titleCase capitalizes the first letter of each word and collapses spaces.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
