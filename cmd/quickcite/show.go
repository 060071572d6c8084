// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quickcite/internal/cite"
	"github.com/pdiddy/quickcite/internal/session"
	"github.com/pdiddy/quickcite/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved quote with its citations",
	Long: `Show opens a saved quote and prints its metadata, detected source type,
reliability tier, full and in-text citations in every style and the signal
phrases built from it. The ID may be shortened to any unique prefix.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	return withSession(cmd, func(ctx context.Context, s *session.Session) error {
		d, err := s.Open(ctx, args[0])
		if err != nil {
			return err
		}
		defer s.CloseCurrent()

		w := cmd.OutOrStdout()
		if done, err := encode(w, format, d); done {
			return err
		}
		printDetails(w, d)
		return nil
	})
}

func printDetails(w io.Writer, d session.Details) {
	r := d.Record
	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(w, "%-12s %s\n", label+":", value)
		}
	}

	fmt.Fprintf(w, "\"%s\"\n\n", r.Text)
	field("ID", r.ID)
	field("Title", r.SourceTitle)
	field("URL", r.SourceURL)
	field("Author", r.Author)
	field("Published", r.CreationDate)
	field("Saved", r.AccessDate)
	field("Type", string(d.Type))
	field("Reliability", fmt.Sprintf("%s (%.2f) %s", d.Reliability.Tier, d.Reliability.Score, d.Reliability.Reason))
	if len(r.Tags) > 0 {
		field("Tags", fmt.Sprint(r.Tags))
	}

	for _, style := range types.AllStyles {
		fmt.Fprintf(w, "\n%s:\n  %s\n  %s\n", style.Label(), cite.Plain(d.Citations[style]), d.InText[style])
	}

	fmt.Fprintln(w, "\nSignal phrases:")
	for i, p := range d.Phrases {
		fmt.Fprintf(w, "  %d. %s\n", i+1, p)
	}
}

func init() {
	showCmd.Flags().String("format", "text", "output format: text, json or yaml")

	rootCmd.AddCommand(showCmd)
}
