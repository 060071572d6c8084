// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quickcite/internal/cite"
	"github.com/pdiddy/quickcite/internal/session"
	"github.com/pdiddy/quickcite/pkg/types"
)

var citeCmd = &cobra.Command{
	Use:   "cite <id>",
	Short: "Print the citation of a saved quote",
	Long: `Cite prints the full citation of a saved quote in the chosen style
(display.style by default). Titles and containers are italicized with <em>
markup unless --plain is given. Use --in-text for the parenthetical form and
--all for every style.`,
	Args: cobra.ExactArgs(1),
	RunE: runCite,
}

func runCite(cmd *cobra.Command, args []string) error {
	style, err := styleFlag(cmd)
	if err != nil {
		return err
	}
	inText, _ := cmd.Flags().GetBool("in-text")
	plain, _ := cmd.Flags().GetBool("plain")
	all, _ := cmd.Flags().GetBool("all")

	return withSession(cmd, func(ctx context.Context, s *session.Session) error {
		d, err := s.Open(ctx, args[0])
		if err != nil {
			return err
		}
		defer s.CloseCurrent()

		render := func(st types.Style) string {
			if inText {
				return d.InText[st]
			}
			if plain {
				return cite.Plain(d.Citations[st])
			}
			return d.Citations[st]
		}

		w := cmd.OutOrStdout()
		if !all {
			fmt.Fprintln(w, render(style))
			return nil
		}
		for _, st := range types.AllStyles {
			fmt.Fprintf(w, "%s: %s\n", st.Label(), render(st))
		}
		return nil
	})
}

func init() {
	citeCmd.Flags().String("style", "", "citation style: mla, apa or chicago (default: display.style)")
	citeCmd.Flags().Bool("in-text", false, "print the in-text citation")
	citeCmd.Flags().Bool("plain", false, "strip <em> markup and HTML entities")
	citeCmd.Flags().Bool("all", false, "print every style")

	rootCmd.AddCommand(citeCmd)
}
