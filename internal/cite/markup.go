// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"html"
	"strings"
)

// Emphasis markers wrapped around italicized spans.
const (
	emOpen  = "<em>"
	emClose = "</em>"
)

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escape makes a field value safe to embed next to emphasis markers.
func escape(s string) string {
	return escaper.Replace(s)
}

func italic(s string) string {
	if s == "" {
		return ""
	}
	return emOpen + s + emClose
}

func quoted(s string) string {
	if s == "" {
		return ""
	}
	return `"` + s + `"`
}

// Plain converts a citation string for destinations without rich text:
// emphasized spans become *span* and escaped entities are decoded.
func Plain(s string) string {
	s = strings.NewReplacer(emOpen, "*", emClose, "*").Replace(s)
	return html.UnescapeString(s)
}

// terminate appends a period unless s already ends in sentence punctuation.
// Closing quotes and emphasis markers are looked through.
func terminate(s string) string {
	if s == "" || endsSentence(s) {
		return s
	}
	return s + "."
}

func endsSentence(s string) bool {
	s = strings.TrimSuffix(s, emClose)
	s = strings.TrimSuffix(s, `"`)
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case '.', '?', '!':
		return true
	}
	return false
}

// join concatenates the non-empty parts with sep.
func join(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
