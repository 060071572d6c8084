// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"github.com/pdiddy/quickcite/internal/normalize"
	"github.com/pdiddy/quickcite/pkg/types"
)

// renderMLA lays out
//
//	Author. "Title." Container, details, date, location. Accessed date.
//
// The Accessed clause is always present; "n.d." stands in when the record
// carries no capture date at all.
func renderMLA(src Source) string {
	c := src.Common()
	tpl := lookup(types.StyleMLA, src.Type())

	author := handleSuffix(authorList(c.Authors, "and"), src)
	if author == "" {
		author = types.UnknownAuthor
	}

	var elems []string
	if !sameName(c.Container, c.Title) {
		elems = append(elems, tpl.formatContainer(c.Container))
	}
	elems = append(elems, mlaDetails(src)...)
	if c.Published != "" {
		elems = append(elems, escape(normalize.FormatDate(c.Published, types.StyleMLA)))
	}
	elems = append(elems, mlaLocation(src))

	accessed := normalize.FormatDate(c.Accessed, types.StyleMLA)
	if accessed == "" {
		accessed = "n.d."
	}

	return join(" ",
		terminate(author),
		terminate(tpl.formatTitle(c.Title)),
		terminate(join(", ", elems...)),
		terminate("Accessed "+escape(accessed)),
	)
}

func mlaDetails(src Source) []string {
	switch s := src.(type) {
	case JournalArticle:
		var d []string
		if s.Volume != "" {
			d = append(d, "vol. "+escape(s.Volume))
		}
		if s.Issue != "" {
			d = append(d, "no. "+escape(s.Issue))
		}
		if s.Pages != "" {
			d = append(d, escape(pagesLabel(s.Pages)))
		}
		return d
	case Book:
		return []string{escape(s.Edition), escape(s.Publisher)}
	case GovernmentDoc:
		if !sameName(s.Agency, s.Container) {
			return []string{escape(s.Agency)}
		}
	case LegalCase:
		return []string{escape(s.Reporter)}
	case Patent:
		if s.Number != "" {
			return []string{"Patent " + escape(s.Number)}
		}
	case Standard:
		return []string{escape(s.Designation)}
	case Video:
		if s.Channel != "" && !sameName(s.Channel, s.Authors.First()) {
			return []string{"uploaded by " + escape(s.Channel)}
		}
	}
	return nil
}

// mlaLocation is the DOI link when there is one, else the URL without its
// scheme.
func mlaLocation(src Source) string {
	if j, ok := src.(JournalArticle); ok && j.DOI != "" {
		return escape(normalize.DOILink(j.DOI))
	}
	return escape(normalize.StripScheme(src.Common().URL))
}
