// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize formats the raw fields of a capture record for citation:
// dates per style, sentence case, title/container splitting and URL helpers.
// Every function is total: input it cannot interpret is returned unchanged.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/pdiddy/quickcite/pkg/types"
)

// mlaMonths holds MLA month abbreviations. May, June and July stay in full.
var mlaMonths = [...]string{
	"", "Jan.", "Feb.", "Mar.", "Apr.", "May", "June",
	"July", "Aug.", "Sept.", "Oct.", "Nov.", "Dec.",
}

var (
	// yearOnlyRe matches a bare four-digit year.
	yearOnlyRe = regexp.MustCompile(`^\d{4}$`)

	// yearMonthRe matches "2024-03" and "2024/03".
	yearMonthRe = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})$`)

	// monthYearRe matches "March 2024" and "Mar. 2024".
	monthYearRe = regexp.MustCompile(`^([A-Za-z]+)\.?,?\s+(\d{4})$`)

	// abbrevDotRe matches month abbreviations followed by a period ("Jan.").
	abbrevDotRe = regexp.MustCompile(`\b([A-Za-z]{3,4})\.`)

	// yearRe finds a plausible year anywhere in a string.
	yearRe = regexp.MustCompile(`\b(1[5-9]\d{2}|20\d{2})\b`)
)

// granularity is how much of a date the input carried.
type granularity int

const (
	granYear granularity = iota
	granMonth
	granDay
)

// parsed is an interpreted date with its granularity.
type parsed struct {
	t    time.Time
	gran granularity
}

// FormatDate renders input in the date format of style:
//
//	MLA      15 Jan. 2023
//	APA      2023, January 15
//	Chicago  January 15, 2023
//
// Inputs carrying only a year (or month and year) render at that
// granularity. Unparseable input is returned verbatim.
func FormatDate(input string, style types.Style) string {
	input = strings.TrimSpace(input)
	p, ok := parseDate(input)
	if !ok {
		return input
	}

	y, m, d := p.t.Date()
	switch p.gran {
	case granYear:
		return fmt.Sprintf("%d", y)
	case granMonth:
		switch style {
		case types.StyleMLA:
			return fmt.Sprintf("%s %d", mlaMonths[m], y)
		case types.StyleAPA:
			return fmt.Sprintf("%d, %s", y, m)
		default:
			return fmt.Sprintf("%s %d", m, y)
		}
	}

	switch style {
	case types.StyleMLA:
		return fmt.Sprintf("%d %s %d", d, mlaMonths[m], y)
	case types.StyleAPA:
		return fmt.Sprintf("%d, %s %d", y, m, d)
	default:
		return fmt.Sprintf("%s %d, %d", m, d, y)
	}
}

// Year returns the four-digit year of input, or "" when none can be found.
func Year(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if p, ok := parseDate(input); ok {
		return fmt.Sprintf("%d", p.t.Year())
	}
	if m := yearRe.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return ""
}

// PublicationDate returns the source's own date: CreationDate, or for videos
// the upload date. Empty when unknown; the capture timestamp is never used.
func PublicationDate(r types.CaptureRecord) string {
	if r.CreationDate != "" {
		return r.CreationDate
	}
	return r.VideoUploadDate
}

// CitationYear is the year used by APA references and author-date in-text
// citations: the publication year when known, else the capture year.
func CitationYear(r types.CaptureRecord) string {
	if y := Year(PublicationDate(r)); y != "" {
		return y
	}
	return Year(r.Timestamp)
}

// AccessedDate returns the capture date shown in "Accessed" clauses:
// AccessDate when present, else the Timestamp.
func AccessedDate(r types.CaptureRecord) string {
	if r.AccessDate != "" {
		return r.AccessDate
	}
	return r.Timestamp
}

func parseDate(input string) (p parsed, ok bool) {
	if input == "" {
		return parsed{}, false
	}
	defer func() {
		if recover() != nil {
			p, ok = parsed{}, false
		}
	}()

	if yearOnlyRe.MatchString(input) {
		t, err := time.Parse("2006", input)
		return parsed{t: t, gran: granYear}, err == nil
	}
	if m := yearMonthRe.FindStringSubmatch(input); m != nil {
		t, err := time.Parse("2006-1", m[1]+"-"+m[2])
		return parsed{t: t, gran: granMonth}, err == nil
	}
	if m := monthYearRe.FindStringSubmatch(input); m != nil {
		if month, found := lookupMonth(m[1]); found {
			t := time.Date(atoiYear(m[2]), month, 1, 0, 0, 0, 0, time.UTC)
			return parsed{t: t, gran: granMonth}, true
		}
	}

	cleaned := abbrevDotRe.ReplaceAllString(input, "$1")
	cleaned = strings.ReplaceAll(cleaned, "Sept ", "Sep ")
	t, err := dateparse.ParseIn(cleaned, time.UTC)
	if err != nil {
		return parsed{}, false
	}
	return parsed{t: t, gran: granDay}, true
}

func lookupMonth(name string) (time.Month, bool) {
	name = strings.ToLower(name)
	if len(name) < 3 {
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if name == full || strings.HasPrefix(full, name) {
			return m, true
		}
	}
	return 0, false
}

func atoiYear(s string) int {
	y := 0
	for _, c := range s {
		y = y*10 + int(c-'0')
	}
	return y
}

// DateParts returns the CSL date-parts of input: [year], [year, month] or
// [year, month, day] depending on what input carries. Nil when unparseable.
func DateParts(input string) []int {
	p, ok := parseDate(strings.TrimSpace(input))
	if !ok {
		return nil
	}
	y, m, d := p.t.Date()
	switch p.gran {
	case granYear:
		return []int{y}
	case granMonth:
		return []int{y, int(m)}
	}
	return []int{y, int(m), d}
}

// ISODate renders input as YYYY-MM-DD, or "" when it has no day granularity.
func ISODate(input string) string {
	p, ok := parseDate(strings.TrimSpace(input))
	if !ok || p.gran != granDay {
		return ""
	}
	return p.t.Format("2006-01-02")
}
