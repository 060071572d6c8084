// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export produces the plain-text quote export and fills signal
// phrase templates for a quote.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/quickcite/internal/cite"
	"github.com/pdiddy/quickcite/pkg/types"
)

const width = 80

// exportTimeLayout matches the en-US long date with time,
// e.g. "March 1, 2024 at 10:30 AM".
const exportTimeLayout = "January 2, 2006 at 03:04 PM"

// Text renders records as the plain-text export document. Citations for the
// styles enabled in prefs are printed without markup.
func Text(records []types.CaptureRecord, prefs types.ExportConfig, now time.Time) string {
	rule := strings.Repeat("=", width)
	sep := strings.Repeat("-", width)

	var b strings.Builder
	b.WriteString("QUICKCITE - EXPORT\n")
	fmt.Fprintf(&b, "Exported: %s\n", now.Format(exportTimeLayout))
	fmt.Fprintf(&b, "Total Quotes: %d\n", len(records))
	b.WriteString(rule + "\n\n")

	for i, r := range records {
		r = r.Normalize()
		fmt.Fprintf(&b, "QUOTE %d\n", i+1)
		b.WriteString(sep + "\n\n")

		b.WriteString("Quote:\n")
		fmt.Fprintf(&b, "\"%s\"\n\n", r.Text)

		if prefs.IncludeMetadata {
			fmt.Fprintf(&b, "Source: %s\n", r.SourceTitle)
			fmt.Fprintf(&b, "URL: %s\n", r.SourceURL)
			if r.Author != "" {
				fmt.Fprintf(&b, "Author: %s\n", r.Author)
			}
			fmt.Fprintf(&b, "Saved: %s\n", r.AccessDate)
			fmt.Fprintf(&b, "Timestamp: %s\n\n", r.Timestamp)
		}

		for _, style := range prefs.Styles() {
			fmt.Fprintf(&b, "%s Format:\n", style.Label())
			fmt.Fprintf(&b, "  %s\n\n", cite.Plain(cite.Render(r, style)))
		}

		b.WriteString(rule + "\n\n")
	}
	return b.String()
}

// FileName returns the default export file name for now,
// e.g. "quotes-export-2024-03-01.txt".
func FileName(now time.Time) string {
	return "quotes-export-" + now.Format("2006-01-02") + ".txt"
}
