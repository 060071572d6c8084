// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"regexp"
	"strings"
)

// patentURLRe matches patent identifiers in patent-office URLs:
// "/patent/US7654321B2", "/patent/EP1234567A1/en".
var patentURLRe = regexp.MustCompile(`/patents?/([A-Z]{2}\d{4,}[A-Z]?\d{0,2})`)

// arxivIDRe matches arXiv identifiers in abs and pdf URLs.
var arxivIDRe = regexp.MustCompile(`arxiv\.org/(?:abs|pdf)/(\d{4}\.\d{4,5}(?:v\d+)?)`)

// ReporterCitation returns the court-reporter citation in title
// ("347 U.S. 483"), or "".
func ReporterCitation(title string) string {
	return strings.TrimSpace(reporterRe.FindString(title))
}

// PatentNumber returns the patent number named in title, else the one
// embedded in a patent-office URL, or "".
func PatentNumber(title, rawURL string) string {
	if m := usPatentRe.FindString(title); m != "" {
		return strings.TrimSpace(m)
	}
	if m := intlPatentRe.FindString(title); m != "" {
		return strings.TrimSpace(m)
	}
	if m := patentURLRe.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}

// Designation returns the standards designation in title ("ISO 9001:2015",
// "RFC 9110"), or "". A trailing ":YYYY" edition year is kept.
func Designation(title string) string {
	loc := designationRe.FindStringIndex(title)
	if loc == nil {
		return ""
	}
	end := loc[1]
	for end < len(title) && strings.IndexByte("0123456789.-:", title[end]) >= 0 {
		end++
	}
	return strings.TrimRight(strings.TrimSpace(title[loc[0]:end]), ".-:")
}

// ArxivID returns the arXiv identifier in rawURL, or "".
func ArxivID(rawURL string) string {
	if m := arxivIDRe.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}
