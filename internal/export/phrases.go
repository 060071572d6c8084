// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"strings"

	"github.com/pdiddy/quickcite/pkg/types"
)

// PhraseTemplates are the built-in signal phrases. Placeholders are
// {author}, {title} and {quote}.
var PhraseTemplates = []string{
	`According to {author}, "{quote}"`,
	`As {author} notes in "{title}," "{quote}"`,
	`{author} argues that "{quote}"`,
	`In "{title}," {author} writes, "{quote}"`,
	`{author} observes, "{quote}"`,
	`As reported in "{title}," "{quote}"`,
}

// Fallbacks used when a record lacks the value.
const (
	untitled     = "Article Title"
	missingQuote = "direct quote"
)

// SignalPhrase fills tmpl with record's author, title and quote text.
func SignalPhrase(tmpl string, record types.CaptureRecord) string {
	record = record.Normalize()
	author := orDefault(record.Author, types.UnknownAuthor)
	title := orDefault(record.SourceTitle, untitled)
	quote := orDefault(record.Text, missingQuote)

	return strings.NewReplacer(
		"{author}", author,
		"{title}", title,
		"{quote}", quote,
	).Replace(tmpl)
}

// SignalPhrases fills every built-in template for record.
func SignalPhrases(record types.CaptureRecord) []string {
	out := make([]string, len(PhraseTemplates))
	for i, tmpl := range PhraseTemplates {
		out[i] = SignalPhrase(tmpl, record)
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
