// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import "github.com/pdiddy/quickcite/pkg/types"

// titleForm is how a style sets a work's title.
type titleForm int

const (
	titleQuoted titleForm = iota
	titleItalic
	titlePlain
)

// containerForm is how a style sets the container name.
type containerForm int

const (
	containerItalic containerForm = iota
	containerPlain
	containerNone
)

// template is one row of a style's table.
//
// label is a genre descriptor: APA prints it in brackets after the title
// ("[Video]"), Chicago appends it to the container ("YouTube video"), MLA
// does not use it.
type template struct {
	title     titleForm
	sentence  bool
	container containerForm
	label     string
}

var mlaTemplates = map[types.SourceType]template{
	types.SourceWebsite:     {title: titleQuoted, container: containerItalic},
	types.SourceNews:        {title: titleQuoted, container: containerItalic},
	types.SourceAcademic:    {title: titleQuoted, container: containerItalic},
	types.SourceGovernment:  {title: titleQuoted, container: containerItalic},
	types.SourceVideo:       {title: titleQuoted, container: containerItalic},
	types.SourceSocialMedia: {title: titleQuoted, container: containerItalic},
	types.SourceBook:        {title: titleItalic, container: containerNone},
	types.SourceLegal:       {title: titleItalic, container: containerItalic},
	types.SourceStandard:    {title: titleItalic, container: containerPlain},
	types.SourcePatent:      {title: titlePlain, container: containerNone},
}

var apaTemplates = map[types.SourceType]template{
	types.SourceWebsite:     {title: titleItalic, sentence: true, container: containerPlain},
	types.SourceNews:        {title: titlePlain, sentence: true, container: containerItalic},
	types.SourceAcademic:    {title: titlePlain, sentence: true, container: containerItalic},
	types.SourceGovernment:  {title: titleItalic, sentence: true, container: containerPlain},
	types.SourceVideo:       {title: titleItalic, sentence: true, container: containerPlain, label: "Video"},
	types.SourceSocialMedia: {title: titlePlain, sentence: true, container: containerPlain, label: "Post"},
	types.SourceBook:        {title: titleItalic, sentence: true, container: containerNone},
	types.SourceLegal:       {title: titleItalic, container: containerNone},
	types.SourceStandard:    {title: titleItalic, sentence: true, container: containerPlain},
	types.SourcePatent:      {title: titleItalic, sentence: true, container: containerNone},
}

var chicagoTemplates = map[types.SourceType]template{
	types.SourceWebsite:     {title: titleQuoted, container: containerPlain},
	types.SourceNews:        {title: titleQuoted, container: containerItalic},
	types.SourceAcademic:    {title: titleQuoted, container: containerItalic},
	types.SourceGovernment:  {title: titleQuoted, container: containerPlain},
	types.SourceVideo:       {title: titleQuoted, container: containerPlain, label: "video"},
	types.SourceSocialMedia: {title: titleQuoted, container: containerPlain, label: "post"},
	types.SourceBook:        {title: titleItalic, container: containerNone},
	types.SourceLegal:       {title: titleItalic, container: containerNone},
	types.SourceStandard:    {title: titleItalic, container: containerPlain},
	types.SourcePatent:      {title: titlePlain, container: containerNone},
}

var templates = map[types.Style]map[types.SourceType]template{
	types.StyleMLA:     mlaTemplates,
	types.StyleAPA:     apaTemplates,
	types.StyleChicago: chicagoTemplates,
}

// lookup returns the row for style and t, falling back to the website row.
func lookup(style types.Style, t types.SourceType) template {
	table, ok := templates[style]
	if !ok {
		table = mlaTemplates
	}
	if tpl, ok := table[t]; ok {
		return tpl
	}
	return table[types.SourceWebsite]
}

// formatTitle escapes title and sets it per tpl, with terminal punctuation.
// Quoted titles carry their period inside the quotes.
func (tpl template) formatTitle(title string) string {
	if title == "" {
		return ""
	}
	if tpl.sentence {
		title = sentenceCase(title)
	}
	title = escape(title)
	switch tpl.title {
	case titleQuoted:
		return quoted(terminate(title))
	case titleItalic:
		return italic(title)
	}
	return title
}

func (tpl template) formatContainer(container string) string {
	if container == "" {
		return ""
	}
	switch tpl.container {
	case containerItalic:
		return italic(escape(container))
	case containerPlain:
		return escape(container)
	}
	return ""
}
