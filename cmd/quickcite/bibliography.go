// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/pdiddy/quickcite/internal/bibliography"
	"github.com/pdiddy/quickcite/internal/session"
)

var bibliographyCmd = &cobra.Command{
	Use:     "bibliography [query]",
	Aliases: []string{"bib"},
	Short:   "Assemble a Works Cited, References or Bibliography list",
	Long: `Bibliography renders every matching quote in one style, sorts the entries
by author surname and prints them under the style's heading. With --group
entries are split into sections by source category.

--format bibtex and --format csl write the same records as BibTeX entries
or CSL-YAML for reference managers instead.`,
	RunE: runBibliography,
}

func runBibliography(cmd *cobra.Command, args []string) error {
	opts, err := listOptsFromFlags(cmd, args)
	if err != nil {
		return err
	}
	style, err := styleFlag(cmd)
	if err != nil {
		return err
	}
	group, _ := cmd.Flags().GetBool("group")
	plain, _ := cmd.Flags().GetBool("plain")
	width, _ := cmd.Flags().GetInt("width")
	format, _ := cmd.Flags().GetString("format")

	return withSession(cmd, func(ctx context.Context, s *session.Session) error {
		records, err := s.List(ctx, opts)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return eris.New("no quotes to cite")
		}

		return writeOutput(cmd, func(w io.Writer) error {
			switch format {
			case "", "text":
				_, err := fmt.Fprint(w, bibliography.Assemble(records, bibliography.Options{
					Style: style,
					Group: group,
					Plain: plain,
					Width: width,
				}))
				return err
			case "bibtex":
				_, err := fmt.Fprint(w, bibliography.BibTeX(records))
				return err
			case "csl":
				return bibliography.FormatCSL(records, w)
			default:
				return eris.Errorf("unknown format %q: use text, bibtex or csl", format)
			}
		})
	})
}

func init() {
	addFilterFlags(bibliographyCmd)
	bibliographyCmd.Flags().String("style", "", "citation style: mla, apa or chicago (default: display.style)")
	bibliographyCmd.Flags().Bool("group", false, "group entries by source category")
	bibliographyCmd.Flags().Bool("plain", false, "strip <em> markup and HTML entities")
	bibliographyCmd.Flags().Int("width", 0, "wrap entries with a hanging indent at this width (0 = no wrap)")
	bibliographyCmd.Flags().String("format", "text", "output format: text, bibtex or csl")
	bibliographyCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(bibliographyCmd)
}
