// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"github.com/pdiddy/quickcite/internal/normalize"
	"github.com/pdiddy/quickcite/pkg/types"
)

// renderAPA lays out
//
//	Author (date). Title [Label]. Container, details. URL
//
// The URL keeps its scheme and is never followed by a period.
func renderAPA(src Source) string {
	c := src.Common()
	tpl := lookup(types.StyleAPA, src.Type())

	author := handleSuffix(authorList(c.Authors, "&"), src)
	if author == "" {
		author = types.UnknownAuthor
	}
	head := author + " (" + apaDate(src) + ")."

	return join(" ",
		head,
		terminate(apaTitle(src, tpl)),
		terminate(apaSource(src, tpl)),
		location(src),
	)
}

// apaDate is the full date for web-native sources that carry one, else the
// citation year, else "n.d.".
func apaDate(src Source) string {
	c := src.Common()
	switch src.Type() {
	case types.SourceWebsite, types.SourceNews, types.SourceVideo, types.SourceSocialMedia:
		if c.Published != "" {
			return escape(normalize.FormatDate(c.Published, types.StyleAPA))
		}
	}
	if c.Year != "" {
		return c.Year
	}
	return "n.d."
}

func apaTitle(src Source, tpl template) string {
	title := tpl.formatTitle(src.Common().Title)
	if title == "" {
		return ""
	}

	switch s := src.(type) {
	case Book:
		if s.Edition != "" {
			title += " (" + escape(s.Edition) + ")"
		}
	case Standard:
		if s.Designation != "" {
			title += " (" + escape(s.Designation) + ")"
		}
	case Patent:
		if s.Number != "" {
			title += " (Patent No. " + escape(s.Number) + ")"
		}
	case LegalCase:
		if s.Reporter != "" {
			title += ", " + escape(s.Reporter)
		}
	}

	if tpl.label != "" {
		title += " [" + tpl.label + "]"
	}
	return title
}

// apaSource is the element that names where the work appeared. A container
// that repeats a corporate author is dropped.
func apaSource(src Source, tpl template) string {
	c := src.Common()
	container := c.Container
	if c.Authors.IsCorporate && sameName(container, c.Authors.First()) {
		container = ""
	}

	switch s := src.(type) {
	case JournalArticle:
		vol := ""
		if s.Volume != "" {
			vol = italic(escape(s.Volume))
			if s.Issue != "" {
				vol += "(" + escape(s.Issue) + ")"
			}
		}
		return join(", ", tpl.formatContainer(container), vol, escape(s.Pages))
	case Book:
		return escape(s.Publisher)
	case GovernmentDoc:
		if s.Agency != "" && !sameName(s.Agency, c.Authors.First()) {
			return escape(s.Agency)
		}
	}
	return tpl.formatContainer(container)
}
