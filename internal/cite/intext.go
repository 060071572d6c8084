// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"github.com/pdiddy/quickcite/internal/authors"
	"github.com/pdiddy/quickcite/internal/normalize"
	"github.com/pdiddy/quickcite/pkg/types"
)

// InText renders the parenthetical citation for record:
//
//	MLA      (Doe), (Doe and Roe), (Doe et al.)
//	APA      (Doe & Roe, 2023)
//	Chicago  (Doe and Roe 2023)
//
// Without an author the quoted short title stands in for the name. APA and
// Chicago print "n.d." when no year is known. Page numbers are never given.
// The result is plain text: it carries no emphasis and is not escaped.
func InText(record types.CaptureRecord, info types.AuthorInfo, style types.Style) string {
	record = record.Normalize()
	conj := "and"
	if style == types.StyleAPA {
		conj = "&"
	}

	name := inTextName(info, conj)
	if name == "" {
		title, _ := normalize.ParseTitleAndWebsite(record.SourceTitle, record.SourceURL, record.SourceName)
		if title == "" {
			title = types.UnknownAuthor
		}
		name = quoted(normalize.ShortTitle(title))
	}

	year := normalize.CitationYear(record)
	if year == "" {
		year = "n.d."
	}

	switch style {
	case types.StyleAPA:
		return "(" + name + ", " + year + ")"
	case types.StyleChicago:
		return "(" + name + " " + year + ")"
	}
	return "(" + name + ")"
}

func inTextName(info types.AuthorInfo, conj string) string {
	switch {
	case info.Count == 0 || len(info.Authors) == 0:
		return ""
	case info.IsCorporate:
		return info.First()
	case info.Count == 1:
		return authors.LastName(info.Authors[0])
	case info.Count == 2:
		return authors.LastName(info.Authors[0]) + " " + conj + " " + authors.LastName(info.Authors[1])
	}
	return authors.LastName(info.Authors[0]) + " et al."
}
