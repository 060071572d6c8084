// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// knownHosts maps hostnames to their conventional container names. Lookups
// strip "www." and fall back to parent domains ("m.youtube.com" → youtube.com).
var knownHosts = map[string]string{
	"arxiv.org":               "arXiv",
	"youtube.com":             "YouTube",
	"youtu.be":                "YouTube",
	"vimeo.com":               "Vimeo",
	"dailymotion.com":         "Dailymotion",
	"dai.ly":                  "Dailymotion",
	"ted.com":                 "TED",
	"twitch.tv":               "Twitch",
	"twitter.com":             "X",
	"x.com":                   "X",
	"facebook.com":            "Facebook",
	"instagram.com":           "Instagram",
	"linkedin.com":            "LinkedIn",
	"tiktok.com":              "TikTok",
	"scholar.google.com":      "Google Scholar",
	"books.google.com":        "Google Books",
	"patents.google.com":      "Google Patents",
	"en.wikipedia.org":        "Wikipedia",
	"wikipedia.org":           "Wikipedia",
	"github.com":              "GitHub",
	"nytimes.com":             "The New York Times",
	"washingtonpost.com":      "The Washington Post",
	"theguardian.com":         "The Guardian",
	"bbc.com":                 "BBC",
	"bbc.co.uk":               "BBC",
	"reuters.com":             "Reuters",
	"pubmed.ncbi.nlm.nih.gov": "PubMed",
	"jstor.org":               "JSTOR",
	"ieeexplore.ieee.org":     "IEEE Xplore",
	"iso.org":                 "ISO",
	"standards.ieee.org":      "IEEE",
	"ietf.org":                "IETF",
	"rfc-editor.org":          "RFC Editor",
	"w3.org":                  "W3C",
}

var (
	// bySegmentRe matches title segments that credit an author ("by Jane Doe").
	bySegmentRe = regexp.MustCompile(`(?i)^by\s`)

	// dashSepRe matches spaced hyphen, en-dash and em-dash separators.
	dashSepRe = regexp.MustCompile(`\s+[-–—]\s+`)

	// doiInURLRe extracts a DOI from a doi.org URL or an embedded /doi/ path.
	doiInURLRe = regexp.MustCompile(`(?i)(?:doi\.org/|/doi/(?:abs/|full/|pdf/)?)(10\.\d{4,9}/[^\s?#]+)`)

	// spaceRe collapses runs of whitespace.
	spaceRe = regexp.MustCompile(`\s+`)
)

// SentenceCase lowers every letter of title and capitalizes the first one.
// Proper nouns are not preserved ("NASA Report" becomes "Nasa report").
func SentenceCase(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	lower := cases.Lower(language.English).String(title)
	for i, r := range lower {
		if unicode.IsLetter(r) {
			return lower[:i] + string(unicode.ToUpper(r)) + lower[i+utf8.RuneLen(r):]
		}
	}
	return lower
}

// ParseTitleAndWebsite splits a page title into the work's clean title and
// its container name.
//
// The title is split on "|" when present, else on a spaced dash. The first
// segment is the clean title; the first later segment that is not a
// "by <author>" credit and is longer than two characters is the container.
// A non-empty explicit name always wins as container. Without either, the
// container comes from the URL host.
func ParseTitleAndWebsite(title, rawURL, explicit string) (clean, container string) {
	title = strings.TrimSpace(title)
	segments := splitTitle(title)

	clean = title
	if len(segments) > 0 {
		clean = segments[0]
	}

	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return clean, explicit
	}

	for _, seg := range segments[min(1, len(segments)):] {
		if bySegmentRe.MatchString(seg) || utf8.RuneCountInString(seg) <= 2 {
			continue
		}
		return clean, seg
	}

	return clean, HostName(rawURL)
}

func splitTitle(title string) []string {
	var parts []string
	switch {
	case strings.Contains(title, "|"):
		parts = strings.Split(title, "|")
	case dashSepRe.MatchString(title):
		parts = dashSepRe.Split(title, -1)
	default:
		return []string{title}
	}

	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{title}
	}
	return out
}

// HostName derives a container name from a URL: a known-host name when one
// applies, else the bare host without "www." and with its first letter
// capitalized. Empty for URLs without a host.
func HostName(rawURL string) string {
	host := Host(rawURL)
	if host == "" {
		return ""
	}
	if name, ok := lookupHost(host); ok {
		return name
	}
	r, n := utf8.DecodeRuneInString(host)
	return string(unicode.ToUpper(r)) + host[n:]
}

func lookupHost(host string) (string, bool) {
	for h := host; h != ""; {
		if name, ok := knownHosts[h]; ok {
			return name, true
		}
		dot := strings.IndexByte(h, '.')
		if dot < 0 {
			break
		}
		h = h[dot+1:]
		if !strings.Contains(h, ".") {
			break
		}
	}
	return "", false
}

// Host returns the lowercased hostname of rawURL with any "www." prefix
// removed. Scheme-less inputs such as "example.com/page" are accepted.
func Host(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "http://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// StripScheme removes a leading http:// or https:// from rawURL.
func StripScheme(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	for _, prefix := range []string{"https://", "http://"} {
		if len(rawURL) >= len(prefix) && strings.EqualFold(rawURL[:len(prefix)], prefix) {
			return rawURL[len(prefix):]
		}
	}
	return rawURL
}

// DOIFromURL extracts a DOI embedded in a URL, or "" when there is none.
func DOIFromURL(rawURL string) string {
	m := doiInURLRe.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return strings.TrimRight(m[1], ".,;")
}

// DOILink renders a DOI as an https://doi.org/ link. A DOI already given as a
// URL is normalized to the doi.org form.
func DOILink(doi string) string {
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return ""
	}
	if d := DOIFromURL(doi); d != "" {
		doi = d
	}
	doi = strings.TrimPrefix(doi, "doi:")
	return "https://doi.org/" + strings.TrimSpace(doi)
}

// ShortTitle returns the first four words of title followed by "...", or
// the whole title when it has four words or fewer.
func ShortTitle(title string) string {
	words := strings.Fields(title)
	if len(words) <= 4 {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:4], " ") + "..."
}

// Collapse trims s and replaces internal whitespace runs with one space.
func Collapse(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
