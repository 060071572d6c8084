// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/quickcite/internal/export"
	"github.com/pdiddy/quickcite/internal/session"
)

var exportCmd = &cobra.Command{
	Use:   "export [query]",
	Short: "Export saved quotes as a text document, JSON or YAML",
	Long: `Export writes matching quotes out. The text format is a printable document
with each quote, its metadata and its citations in the styles enabled under
export.* in the config; --mla, --apa, --chicago and --metadata override those
settings for one run. JSON and YAML dump the raw records.

With --format text and no --output, the document is written to
quotes-export-YYYY-MM-DD.txt in the current directory. Use -o - for stdout.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	opts, err := listOptsFromFlags(cmd, args)
	if err != nil {
		return err
	}
	if opts.Order == "" {
		opts.Order = cfg.Display.SortOrder
	}
	format, _ := cmd.Flags().GetString("format")

	prefs := cfg.Export
	for name, dst := range map[string]*bool{
		"mla":      &prefs.IncludeMLA,
		"apa":      &prefs.IncludeAPA,
		"chicago":  &prefs.IncludeChicago,
		"metadata": &prefs.IncludeMetadata,
	} {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetBool(name)
		}
	}

	now := time.Now()
	if format == "text" && !cmd.Flags().Changed("output") {
		if err := cmd.Flags().Set("output", export.FileName(now)); err != nil {
			return eris.Wrap(err, "setting output")
		}
	}

	return withSession(cmd, func(ctx context.Context, s *session.Session) error {
		return writeOutput(cmd, func(w io.Writer) error {
			switch format {
			case "text":
				records, err := s.List(ctx, opts)
				if err != nil {
					return err
				}
				logger.Info("exporting quotes",
					zap.Int("count", len(records)),
					zap.Int("styles", len(prefs.Styles())))
				_, err = fmt.Fprint(w, export.Text(records, prefs, now))
				return err
			case "json":
				return s.Store().ExportJSON(ctx, w, opts)
			case "yaml":
				return s.Store().ExportYAML(ctx, w, opts)
			default:
				return eris.Errorf("unknown format %q: use text, json or yaml", format)
			}
		})
	})
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().String("format", "text", "output format: text, json or yaml")
	exportCmd.Flags().StringP("output", "o", "", "output file (default: quotes-export-<date>.txt for text, stdout otherwise)")
	exportCmd.Flags().Bool("mla", true, "include MLA citations (text format)")
	exportCmd.Flags().Bool("apa", true, "include APA citations (text format)")
	exportCmd.Flags().Bool("chicago", false, "include Chicago citations (text format)")
	exportCmd.Flags().Bool("metadata", true, "include source metadata (text format)")

	rootCmd.AddCommand(exportCmd)
}
