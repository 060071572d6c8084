// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibliography orders and groups rendered citations into a Works
// Cited, References or Bibliography list, and exports records as BibTeX
// and CSL-YAML.
package bibliography

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pdiddy/quickcite/internal/cite"
	"github.com/pdiddy/quickcite/internal/classify"
	"github.com/pdiddy/quickcite/pkg/types"
)

// Options control Assemble.
type Options struct {
	// Style selects the citation style (default MLA).
	Style types.Style

	// Group partitions entries by source category under headers.
	Group bool

	// Plain strips emphasis markers and decodes entities.
	Plain bool

	// Width wraps entries at this many characters with a four-space
	// hanging indent. Zero disables wrapping.
	Width int
}

// Category is a bibliography section and the source types it collects.
type Category struct {
	Name  string
	Types []types.SourceType
}

// Categories lists the sections in the order they are printed.
var Categories = []Category{
	{Name: "Academic Sources", Types: []types.SourceType{types.SourceAcademic}},
	{Name: "Books", Types: []types.SourceType{types.SourceBook}},
	{Name: "News Articles", Types: []types.SourceType{types.SourceNews}},
	{Name: "Government Documents", Types: []types.SourceType{types.SourceGovernment}},
	{Name: "Legal Sources", Types: []types.SourceType{types.SourceLegal}},
	{Name: "Patents", Types: []types.SourceType{types.SourcePatent}},
	{Name: "Standards", Types: []types.SourceType{types.SourceStandard}},
	{Name: "Videos", Types: []types.SourceType{types.SourceVideo}},
	{Name: "Social Media", Types: []types.SourceType{types.SourceSocialMedia}},
	{Name: "Websites", Types: []types.SourceType{types.SourceWebsite}},
}

var headings = map[types.Style]string{
	types.StyleMLA:     "Works Cited",
	types.StyleAPA:     "References",
	types.StyleChicago: "Bibliography",
}

// Heading returns the list title for style.
func Heading(style types.Style) string {
	if h, ok := headings[style]; ok {
		return h
	}
	return headings[types.StyleMLA]
}

// Entry is one rendered record with its sort key and source type.
type Entry struct {
	Record   types.CaptureRecord
	Type     types.SourceType
	Key      string
	Citation string
}

// SortKey derives the alphabetization key from a free-text author: the text
// before the first comma of an inverted name, else a lone token, else the
// final whitespace-delimited token as a surname proxy. An absent author
// sorts as "Unknown Author".
func SortKey(author string) string {
	author = strings.TrimSpace(author)
	if author == "" {
		author = types.UnknownAuthor
	}
	if before, _, ok := strings.Cut(author, ","); ok {
		return strings.TrimSpace(before)
	}
	fields := strings.Fields(author)
	return fields[len(fields)-1]
}

// Entries renders records in style and returns them sorted by SortKey.
// Comparison is case-insensitive English collation; ties keep input order.
func Entries(records []types.CaptureRecord, style types.Style) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		r = r.Normalize()
		st := classify.Record(r)
		entries[i] = Entry{
			Record:   r,
			Type:     st,
			Key:      SortKey(r.Author),
			Citation: cite.RenderSource(cite.NewSource(r, st), style),
		}
	}

	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(entries, func(i, j int) bool {
		return col.CompareString(entries[i].Key, entries[j].Key) < 0
	})
	return entries
}

// Assemble renders records as a bibliography: the style heading, then the
// sorted entries separated by blank lines, optionally under category
// headers. Empty categories are skipped.
func Assemble(records []types.CaptureRecord, opts Options) string {
	style := opts.Style
	if style == "" {
		style = types.StyleMLA
	}
	entries := Entries(records, style)

	var b strings.Builder
	b.WriteString(Heading(style))
	b.WriteString("\n")

	if !opts.Group {
		writeEntries(&b, entries, opts)
		return b.String()
	}

	for _, cat := range Categories {
		var group []Entry
		for _, e := range entries {
			if inCategory(e.Type, cat) {
				group = append(group, e)
			}
		}
		if len(group) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(cat.Name)
		b.WriteString("\n")
		writeEntries(&b, group, opts)
	}
	return b.String()
}

func inCategory(t types.SourceType, cat Category) bool {
	for _, ct := range cat.Types {
		if t == ct {
			return true
		}
	}
	return false
}

func writeEntries(b *strings.Builder, entries []Entry, opts Options) {
	for _, e := range entries {
		text := e.Citation
		if opts.Plain {
			text = cite.Plain(text)
		}
		if opts.Width > 0 {
			text = HangingIndent(text, opts.Width)
		}
		b.WriteString("\n")
		b.WriteString(text)
		b.WriteString("\n")
	}
}

// HangingIndent wraps text at width characters. The first line is flush left
// and continuation lines are indented four spaces. Words longer than a line
// are not broken.
func HangingIndent(text string, width int) string {
	const indent = "    "
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return text
	}

	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		wl := len([]rune(w))
		switch {
		case i == 0:
		case lineLen+1+wl > width:
			b.WriteString("\n")
			b.WriteString(indent)
			lineLen = len(indent)
		default:
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(w)
		lineLen += wl
	}
	return b.String()
}
