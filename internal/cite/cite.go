// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite renders capture records as MLA, APA and Chicago citations.
//
// A record is classified, parsed into a Source variant and rendered through
// the style's template table. Output may carry <em>…</em> emphasis markers;
// field values are escaped so the markers are unambiguous. Plain strips them
// for plain-text destinations. Rendering never fails: absent fields are
// omitted from their clause.
package cite

import (
	"strings"

	"github.com/pdiddy/quickcite/internal/authors"
	"github.com/pdiddy/quickcite/internal/classify"
	"github.com/pdiddy/quickcite/internal/normalize"
	"github.com/pdiddy/quickcite/pkg/types"
)

// Render classifies record and renders its full citation in style.
func Render(record types.CaptureRecord, style types.Style) string {
	record = record.Normalize()
	return RenderSource(NewSource(record, classify.Record(record)), style)
}

// RenderSource renders an already-built source variant in style. Unknown
// styles render as MLA.
func RenderSource(src Source, style types.Style) string {
	switch style {
	case types.StyleAPA:
		return renderAPA(src)
	case types.StyleChicago:
		return renderChicago(src)
	}
	return renderMLA(src)
}

// RenderAll renders record in every supported style.
func RenderAll(record types.CaptureRecord) map[types.Style]string {
	record = record.Normalize()
	src := NewSource(record, classify.Record(record))
	out := make(map[types.Style]string, len(types.AllStyles))
	for _, style := range types.AllStyles {
		out[style] = RenderSource(src, style)
	}
	return out
}

var sentenceCase = normalize.SentenceCase

// authorList formats the author clause shared by the three styles: the first
// author inverted, a second author in natural order after conj, and "et al."
// from three authors on. Corporate names print as given. Empty for no author.
func authorList(info types.AuthorInfo, conj string) string {
	switch {
	case info.Count == 0 || len(info.Authors) == 0:
		return ""
	case info.IsCorporate:
		return escape(info.First())
	}

	first := authors.Invert(info.Authors[0])
	switch info.Count {
	case 1:
		return escape(first)
	case 2:
		sep := " " + conj + " "
		if strings.Contains(first, ",") {
			sep = "," + sep
		}
		return escape(first + sep + authors.Natural(info.Authors[1]))
	}
	return escape(first + ", et al.")
}

// handleSuffix appends a social-media handle to an author clause.
func handleSuffix(clause string, src Source) string {
	post, ok := src.(SocialPost)
	if !ok || post.Handle == "" || clause == "" {
		return clause
	}
	return clause + " [" + escape(post.Handle) + "]"
}

// location is the DOI link for academic sources that have one, else the URL.
func location(src Source) string {
	if j, ok := src.(JournalArticle); ok && j.DOI != "" {
		return escape(normalize.DOILink(j.DOI))
	}
	return escape(src.Common().URL)
}

// pagesLabel prefixes MLA page ranges with "pp." and single pages with "p.".
func pagesLabel(pages string) string {
	if strings.ContainsAny(pages, "-–,") {
		return "pp. " + pages
	}
	return "p. " + pages
}

// sameName reports whether two display names are equal ignoring case.
func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
