// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibliography

import (
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/quickcite/internal/cite"
	"github.com/pdiddy/quickcite/internal/classify"
	"github.com/pdiddy/quickcite/internal/normalize"
	"github.com/pdiddy/quickcite/pkg/types"
)

// CSLItem is a bibliographic entry in CSL-YAML form, consumable by Pandoc
// and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	Number         string    `yaml:"number,omitempty"`
	Edition        string    `yaml:"edition,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	Accessed       *CSLDate  `yaml:"accessed,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName is a person's name in CSL form. Corporate authors use Literal.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate is a date in CSL date-parts form.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

var cslTypes = map[types.SourceType]string{
	types.SourceAcademic:    "article-journal",
	types.SourceBook:        "book",
	types.SourceNews:        "article-newspaper",
	types.SourceGovernment:  "report",
	types.SourceLegal:       "legal_case",
	types.SourcePatent:      "patent",
	types.SourceStandard:    "standard",
	types.SourceVideo:       "motion_picture",
	types.SourceSocialMedia: "post",
	types.SourceWebsite:     "webpage",
}

// FormatCSL writes records as a CSL-YAML list to w. Item ids are the
// BibTeX citation keys.
func FormatCSL(records []types.CaptureRecord, w io.Writer) error {
	keys := CitationKeys(records)
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(r, keys[i])
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

func toCSLItem(r types.CaptureRecord, id string) CSLItem {
	r = r.Normalize()
	st := classify.Record(r)
	src := cite.NewSource(r, st)
	c := src.Common()

	item := CSLItem{
		ID:             id,
		Type:           cslTypes[st],
		Title:          c.Title,
		ContainerTitle: c.Container,
		URL:            c.URL,
		Issued:         cslDate(c.Published),
		Accessed:       cslDate(c.Accessed),
	}
	if c.Authors.IsCorporate {
		for _, a := range c.Authors.Authors {
			item.Author = append(item.Author, CSLName{Literal: a})
		}
	} else {
		for _, a := range c.Authors.Authors {
			item.Author = append(item.Author, parseAuthorName(a))
		}
	}

	switch s := src.(type) {
	case cite.JournalArticle:
		item.Volume, item.Issue, item.Page, item.DOI = s.Volume, s.Issue, s.Pages, s.DOI
	case cite.Book:
		item.Publisher, item.Edition = s.Publisher, s.Edition
	case cite.GovernmentDoc:
		item.Publisher = s.Agency
	case cite.LegalCase:
		item.Number = s.Reporter
	case cite.Patent:
		item.Number = s.Number
	case cite.Standard:
		item.Number = s.Designation
	case cite.Video:
		item.Publisher = s.Platform
	case cite.SocialPost:
		item.Publisher = s.Platform
	}
	return item
}

func cslDate(s string) *CSLDate {
	parts := normalize.DateParts(s)
	if parts == nil {
		return nil
	}
	return &CSLDate{DateParts: [][]int{parts}}
}

// parseAuthorName splits a name into CSL family/given parts. "Last, First"
// splits on the comma; otherwise the last token is the family name. Single
// tokens use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	if family, given, ok := strings.Cut(name, ","); ok {
		return CSLName{Family: strings.TrimSpace(family), Given: strings.TrimSpace(given)}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
