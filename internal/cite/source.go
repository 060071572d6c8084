// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pdiddy/quickcite/internal/authors"
	"github.com/pdiddy/quickcite/internal/classify"
	"github.com/pdiddy/quickcite/internal/normalize"
	"github.com/pdiddy/quickcite/pkg/types"
)

// Core holds the fields every source variant shares. Values are raw
// (unescaped); renderers escape them when formatting.
type Core struct {
	Authors   types.AuthorInfo
	Title     string
	Container string
	URL       string

	// Published is the source's own date as captured, or "".
	Published string

	// Accessed is the capture date used in "Accessed" clauses.
	Accessed string

	// Year is the citation year: publication year, else capture year, else "".
	Year string
}

// Source is one of the concrete variants below, selected by SourceType.
type Source interface {
	Type() types.SourceType
	Common() Core
}

type (
	WebPage struct{ Core }

	NewsArticle struct{ Core }

	JournalArticle struct {
		Core
		Volume string
		Issue  string
		Pages  string
		DOI    string
	}

	Book struct {
		Core
		Publisher string
		Edition   string
	}

	GovernmentDoc struct {
		Core
		Agency string
	}

	LegalCase struct {
		Core
		Reporter string
	}

	Patent struct {
		Core
		Number string
	}

	Standard struct {
		Core
		Designation string
	}

	Video struct {
		Core
		Channel  string
		Platform string
	}

	SocialPost struct {
		Core
		Platform string
		Handle   string
	}
)

func (c Core) Common() Core { return c }

func (WebPage) Type() types.SourceType        { return types.SourceWebsite }
func (NewsArticle) Type() types.SourceType    { return types.SourceNews }
func (JournalArticle) Type() types.SourceType { return types.SourceAcademic }
func (Book) Type() types.SourceType           { return types.SourceBook }
func (GovernmentDoc) Type() types.SourceType  { return types.SourceGovernment }
func (LegalCase) Type() types.SourceType      { return types.SourceLegal }
func (Patent) Type() types.SourceType         { return types.SourcePatent }
func (Standard) Type() types.SourceType       { return types.SourceStandard }
func (Video) Type() types.SourceType          { return types.SourceVideo }
func (SocialPost) Type() types.SourceType     { return types.SourceSocialMedia }

var (
	// editionRe finds an edition statement in a book title.
	editionRe = regexp.MustCompile(`(?i)[(,:\s]*\b(\d+(?:st|nd|rd|th)|first|second|third|fourth|fifth|sixth|revised)\s+edition\b\)?`)

	// caseYearRe matches a trailing "(1954)" after a reporter citation.
	caseYearRe = regexp.MustCompile(`\s*\(\d{4}\)\s*$`)

	// handleRe finds the account segment of a social-media URL path.
	handleRe = regexp.MustCompile(`^/@?([A-Za-z0-9_.]{1,30})(?:/|$)`)
)

var editionWords = map[string]string{
	"first": "1st", "second": "2nd", "third": "3rd", "fourth": "4th",
	"fifth": "5th", "sixth": "6th", "revised": "Rev.",
}

// socialReserved are path segments that are not account names.
var socialReserved = map[string]bool{
	"status": true, "posts": true, "p": true, "reel": true, "watch": true,
	"in": true, "company": true, "pages": true, "groups": true, "hashtag": true,
	"search": true, "explore": true, "i": true, "home": true, "share": true,
}

// NewSource builds the variant for t from record. The record is normalized
// first so placeholder values never reach a citation.
func NewSource(record types.CaptureRecord, t types.SourceType) Source {
	r := record.Normalize()
	title, container := normalize.ParseTitleAndWebsite(r.SourceTitle, r.SourceURL, r.SourceName)
	core := Core{
		Authors:   authors.Parse(r.Author),
		Title:     title,
		Container: container,
		URL:       r.SourceURL,
		Published: normalize.PublicationDate(r),
		Accessed:  normalize.AccessedDate(r),
		Year:      normalize.CitationYear(r),
	}

	switch t {
	case types.SourceNews:
		return NewsArticle{Core: core}
	case types.SourceAcademic:
		doi := r.DOI
		if doi == "" {
			doi = normalize.DOIFromURL(r.SourceURL)
		}
		return JournalArticle{Core: core, Volume: r.Volume, Issue: r.Issue, Pages: r.Pages, DOI: doi}
	case types.SourceBook:
		b := Book{Core: core, Publisher: r.Publisher}
		if loc := editionRe.FindStringSubmatchIndex(core.Title); loc != nil {
			word := strings.ToLower(core.Title[loc[2]:loc[3]])
			if short, ok := editionWords[word]; ok {
				word = short
			}
			b.Edition = word + " ed."
			b.Title = strings.TrimSpace(core.Title[:loc[0]] + core.Title[loc[1]:])
		}
		return b
	case types.SourceGovernment:
		return GovernmentDoc{Core: core, Agency: r.Publisher}
	case types.SourceLegal:
		l := LegalCase{Core: core, Reporter: classify.ReporterCitation(core.Title)}
		if l.Reporter != "" {
			cleaned := strings.Replace(core.Title, l.Reporter, "", 1)
			cleaned = caseYearRe.ReplaceAllString(cleaned, "")
			l.Title = strings.Trim(strings.TrimSpace(cleaned), ",;")
		}
		return l
	case types.SourcePatent:
		p := Patent{Core: core, Number: classify.PatentNumber(r.SourceTitle, r.SourceURL)}
		p.Title, p.Number = stripFromTitle(p.Title, p.Number)
		return p
	case types.SourceStandard:
		st := Standard{Core: core, Designation: classify.Designation(r.SourceTitle)}
		st.Title, st.Designation = stripFromTitle(st.Title, st.Designation)
		return st
	case types.SourceVideo:
		v := Video{Core: core, Channel: r.VideoChannel, Platform: r.VideoPlatform}
		if v.Platform == "" {
			v.Platform = normalize.HostName(r.SourceURL)
		}
		if v.Container == "" {
			v.Container = v.Platform
		}
		return v
	case types.SourceSocialMedia:
		return SocialPost{Core: core, Platform: normalize.HostName(r.SourceURL), Handle: socialHandle(r.SourceURL)}
	}
	return WebPage{Core: core}
}

// stripFromTitle removes an identifier that leads or trails the title so it
// is printed once. A title that is nothing but the identifier keeps it and
// the identifier is dropped instead.
func stripFromTitle(title, id string) (string, string) {
	if id == "" || !strings.Contains(title, id) {
		return title, id
	}
	rest := strings.Trim(strings.Replace(title, id, "", 1), " :-–,()")
	if rest == "" {
		return title, ""
	}
	return rest, id
}

func socialHandle(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	m := handleRe.FindStringSubmatch(u.Path)
	if m == nil || socialReserved[strings.ToLower(m[1])] {
		return ""
	}
	return "@" + m[1]
}
