// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"testing"

	"github.com/pdiddy/quickcite/pkg/types"
)

func TestTemplatesCoverEverySourceType(t *testing.T) {
	for _, style := range types.AllStyles {
		table, ok := templates[style]
		if !ok {
			t.Fatalf("no template table for %s", style)
		}
		for _, st := range types.AllSourceTypes {
			if _, ok := table[st]; !ok {
				t.Errorf("%s table has no row for %s", style, st)
			}
		}
		if len(table) != len(types.AllSourceTypes) {
			t.Errorf("%s table has %d rows, want %d", style, len(table), len(types.AllSourceTypes))
		}
	}
}

func TestMLAQuotesPageTitlesAndItalicizesContainers(t *testing.T) {
	for _, st := range []types.SourceType{types.SourceWebsite, types.SourceNews, types.SourceAcademic} {
		tpl := lookup(types.StyleMLA, st)
		if tpl.title != titleQuoted {
			t.Errorf("MLA %s title form = %d, want quoted", st, tpl.title)
		}
		if tpl.container != containerItalic {
			t.Errorf("MLA %s container form = %d, want italic", st, tpl.container)
		}
	}
}

func TestAPAArticleTitlesNotItalic(t *testing.T) {
	for _, st := range []types.SourceType{types.SourceNews, types.SourceAcademic} {
		tpl := lookup(types.StyleAPA, st)
		if tpl.title != titlePlain || !tpl.sentence {
			t.Errorf("APA %s = %+v, want plain sentence-case title", st, tpl)
		}
		if tpl.container != containerItalic {
			t.Errorf("APA %s container = %d, want italic", st, tpl.container)
		}
	}
}

func TestFormatTitle(t *testing.T) {
	tests := []struct {
		tpl   template
		title string
		want  string
	}{
		{template{title: titleQuoted}, "Hello", `"Hello."`},
		{template{title: titleQuoted}, "Why?", `"Why?"`},
		{template{title: titleItalic, sentence: true}, "Big Ideas", "<em>Big ideas</em>"},
		{template{title: titlePlain}, "A & B", "A &amp; B"},
		{template{title: titleQuoted}, "", ""},
	}
	for _, tt := range tests {
		if got := tt.tpl.formatTitle(tt.title); got != tt.want {
			t.Errorf("formatTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestPlain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<em>arXiv</em>, vol. 5", "*arXiv*, vol. 5"},
		{"Tom &amp; Jerry &lt;3", "Tom & Jerry <3"},
		{"no markup", "no markup"},
	}
	for _, tt := range tests {
		if got := Plain(tt.in); got != tt.want {
			t.Errorf("Plain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
