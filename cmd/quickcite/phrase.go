// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/pdiddy/quickcite/internal/export"
	"github.com/pdiddy/quickcite/internal/session"
)

var phraseCmd = &cobra.Command{
	Use:   "phrase <id>",
	Short: "Print signal phrases that introduce a saved quote",
	Long: `Phrase fills the signal-phrase templates with the quote's author, title
and text. Without --template every template is printed, numbered; with
--template N only that one.`,
	Args: cobra.ExactArgs(1),
	RunE: runPhrase,
}

func runPhrase(cmd *cobra.Command, args []string) error {
	n, _ := cmd.Flags().GetInt("template")
	if n < 0 || n > len(export.PhraseTemplates) {
		return eris.Errorf("template must be between 1 and %d", len(export.PhraseTemplates))
	}

	return withSession(cmd, func(ctx context.Context, s *session.Session) error {
		d, err := s.Open(ctx, args[0])
		if err != nil {
			return err
		}
		defer s.CloseCurrent()

		w := cmd.OutOrStdout()
		if n > 0 {
			fmt.Fprintln(w, export.SignalPhrase(export.PhraseTemplates[n-1], d.Record))
			return nil
		}
		for i, p := range d.Phrases {
			fmt.Fprintf(w, "%d. %s\n", i+1, p)
		}
		return nil
	})
}

func init() {
	phraseCmd.Flags().Int("template", 0, "print only template N (1-based)")

	rootCmd.AddCommand(phraseCmd)
}
