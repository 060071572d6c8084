// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"github.com/pdiddy/quickcite/internal/normalize"
	"github.com/pdiddy/quickcite/pkg/types"
)

// renderChicago lays out the bibliography form
//
//	Author. "Title." Container, details. Date. URL.
//
// Journal articles use "Journal vol, no. issue (year): pages." instead.
// Without an author the entry starts at the title; without a publication
// date an Accessed clause is added. A record with nothing to print renders
// as "Unknown Author." so the citation is never empty.
func renderChicago(src Source) string {
	c := src.Common()
	tpl := lookup(types.StyleChicago, src.Type())

	title := tpl.formatTitle(c.Title)
	if l, ok := src.(LegalCase); ok && l.Reporter != "" && title != "" {
		title += ", " + escape(l.Reporter)
	}

	var accessed string
	if c.Published == "" && c.Accessed != "" {
		accessed = terminate("Accessed " + escape(normalize.FormatDate(c.Accessed, types.StyleChicago)))
	}

	out := join(" ",
		terminate(handleSuffix(authorList(c.Authors, "and"), src)),
		terminate(title),
		chicagoBody(src, tpl),
		accessed,
		terminate(location(src)),
	)
	if out == "" {
		return types.UnknownAuthor + "."
	}
	return out
}

func chicagoBody(src Source, tpl template) string {
	c := src.Common()
	year := normalize.Year(c.Published)

	switch s := src.(type) {
	case JournalArticle:
		pub := tpl.formatContainer(c.Container)
		if s.Volume != "" {
			pub = join(" ", pub, escape(s.Volume))
		}
		if s.Issue != "" {
			pub = join(", ", pub, "no. "+escape(s.Issue))
		}
		if year != "" {
			pub = join(" ", pub, "("+year+")")
		}
		if s.Pages != "" {
			pub += ": " + escape(s.Pages)
		}
		return terminate(pub)
	case Book:
		return join(" ", terminate(escape(s.Edition)), terminate(join(", ", escape(s.Publisher), year)))
	}

	container := tpl.formatContainer(c.Container)
	if sameName(c.Container, c.Title) {
		container = ""
	}
	if tpl.label != "" && container != "" {
		container += " " + tpl.label
	}

	elems := []string{container}
	switch s := src.(type) {
	case GovernmentDoc:
		if !sameName(s.Agency, s.Container) {
			elems = append(elems, escape(s.Agency))
		}
	case Patent:
		if s.Number != "" {
			elems = append(elems, "Patent "+escape(s.Number))
		}
	case Standard:
		elems = append(elems, escape(s.Designation))
	case Video:
		if s.Channel != "" && !sameName(s.Channel, s.Authors.First()) {
			elems = append(elems, "posted by "+escape(s.Channel))
		}
	}

	var date string
	if c.Published != "" {
		date = terminate(escape(normalize.FormatDate(c.Published, types.StyleChicago)))
	}
	return join(" ", terminate(join(", ", elems...)), date)
}
