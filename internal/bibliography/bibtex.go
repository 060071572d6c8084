// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibliography

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/quickcite/internal/authors"
	"github.com/pdiddy/quickcite/internal/cite"
	"github.com/pdiddy/quickcite/internal/classify"
	"github.com/pdiddy/quickcite/internal/normalize"
	"github.com/pdiddy/quickcite/pkg/types"
)

// bibtexTypes maps source types to BibTeX (biblatex) entry types.
var bibtexTypes = map[types.SourceType]string{
	types.SourceAcademic:    "article",
	types.SourceBook:        "book",
	types.SourceNews:        "article",
	types.SourceGovernment:  "techreport",
	types.SourceLegal:       "misc",
	types.SourcePatent:      "patent",
	types.SourceStandard:    "standard",
	types.SourceVideo:       "online",
	types.SourceSocialMedia: "online",
	types.SourceWebsite:     "online",
}

// CitationKeys assigns AuthorYear keys to records in order. The author part
// is the first author's surname (first word for corporate authors, first
// title word without an author), folded to ASCII letters; the year is the
// citation year or "nd". Colliding keys get a, b, c… suffixes.
func CitationKeys(records []types.CaptureRecord) []string {
	bases := make([]string, len(records))
	counts := make(map[string]int)
	for i, r := range records {
		bases[i] = baseKey(r.Normalize())
		counts[bases[i]]++
	}

	keys := make([]string, len(records))
	seen := make(map[string]int)
	for i, base := range bases {
		if counts[base] == 1 {
			keys[i] = base
			continue
		}
		keys[i] = base + suffix(seen[base])
		seen[base]++
	}
	return keys
}

func suffix(n int) string {
	s := ""
	for {
		s = string(rune('a'+n%26)) + s
		n = n/26 - 1
		if n < 0 {
			return s
		}
	}
}

func baseKey(r types.CaptureRecord) string {
	info := authors.Parse(r.Author)
	var name string
	switch {
	case info.Count == 0:
		name = firstWord(r.SourceTitle)
	case info.IsCorporate:
		name = firstWord(info.First())
	default:
		name = authors.LastName(info.Authors[0])
	}
	name = keyPart(name)
	if name == "" {
		name = "Anon"
	}

	year := cite.NewSource(r, classify.Record(r)).Common().Year
	if year == "" {
		year = "nd"
	}
	return name + year
}

func firstWord(s string) string {
	for _, w := range strings.Fields(s) {
		if k := keyPart(w); k != "" && !stopWords[strings.ToLower(k)] {
			return w
		}
	}
	return ""
}

var stopWords = map[string]bool{"the": true, "a": true, "an": true}

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// keyPart folds s to ASCII letters and digits with the first letter upper.
func keyPart(s string) string {
	folded, _, err := transform.String(foldAccents, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, c := range folded {
		if c < unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c)) {
			b.WriteRune(c)
		}
	}
	out := b.String()
	if out == "" {
		return ""
	}
	return strings.ToUpper(out[:1]) + out[1:]
}

// BibTeX renders records as BibTeX entries keyed by CitationKeys.
func BibTeX(records []types.CaptureRecord) string {
	keys := CitationKeys(records)

	var b strings.Builder
	for i, rec := range records {
		rec = rec.Normalize()
		st := classify.Record(rec)
		src := cite.NewSource(rec, st)
		c := src.Common()

		fmt.Fprintf(&b, "@%s{%s,\n", bibtexTypes[st], keys[i])
		field(&b, "title", c.Title)
		if c.Authors.Count > 0 {
			if c.Authors.IsCorporate {
				field(&b, "author", "{"+c.Authors.First()+"}")
			} else {
				field(&b, "author", strings.Join(c.Authors.Authors, " and "))
			}
		}
		if y := c.Year; y != "" {
			field(&b, "year", y)
		}

		switch s := src.(type) {
		case cite.JournalArticle:
			field(&b, "journal", s.Container)
			field(&b, "volume", s.Volume)
			field(&b, "number", s.Issue)
			field(&b, "pages", strings.ReplaceAll(s.Pages, "-", "--"))
			field(&b, "doi", s.DOI)
		case cite.NewsArticle:
			field(&b, "journal", s.Container)
		case cite.Book:
			field(&b, "publisher", s.Publisher)
			field(&b, "edition", s.Edition)
		case cite.GovernmentDoc:
			field(&b, "institution", firstNonEmpty(s.Agency, s.Container))
		case cite.LegalCase:
			field(&b, "howpublished", s.Reporter)
		case cite.Patent:
			field(&b, "number", s.Number)
		case cite.Standard:
			field(&b, "number", s.Designation)
			field(&b, "organization", s.Container)
		case cite.Video:
			field(&b, "organization", s.Platform)
		case cite.SocialPost:
			field(&b, "organization", s.Platform)
		default:
			field(&b, "organization", c.Container)
		}

		field(&b, "url", c.URL)
		if d := normalize.ISODate(c.Accessed); d != "" {
			field(&b, "urldate", d)
		}
		b.WriteString("}\n\n")
	}
	return b.String()
}

func field(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %s = {%s},\n", name, value)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
