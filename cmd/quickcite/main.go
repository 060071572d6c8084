// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the quickcite CLI.
// Implements: capture (save), the quote list and detail views, full and
// in-text citations, bibliography assembly with BibTeX and CSL export,
// plain-text and structured export, signal phrases and quote deletion.
package main

import (
	"context"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/quickcite/internal/config"
	"github.com/pdiddy/quickcite/internal/quotes"
	"github.com/pdiddy/quickcite/internal/reliability"
	"github.com/pdiddy/quickcite/internal/session"
	"github.com/pdiddy/quickcite/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg and logger are populated before any subcommand runs.
var (
	cfg    *types.Config
	logger = zap.NewNop()
)

// rootCmd is the base command for the quickcite CLI.
var rootCmd = &cobra.Command{
	Use:   "quickcite",
	Short: "Capture quotations and generate MLA, APA and Chicago citations",
	Long: `quickcite keeps a local collection of quoted passages with their
provenance (title, URL, author, dates, bibliographic numbers) and renders
citations from them. Each quote is classified into a source type, such as a
journal article, news story, court case, patent or video, and formatted
according to that type's rules in MLA, APA or Chicago style.

Captured quotes are stored in a SQLite database. Use save to add one, list
and show to browse, cite and bibliography to produce citations, and export
to write the collection out.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.Log.Level = lvl
		}
		l, err := config.InitLogger(cfg.Log)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./quickcite.yaml or ~/.config/quickcite/quickcite.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "override log.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("db", "", "override store.path")
}

// withSession opens the store and a session for the duration of fn.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session.Session) error) error {
	storeCfg := cfg.Store
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		storeCfg.Path = db
	}

	store, err := quotes.Open(storeCfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	rules, err := reliability.LoadRules(cfg.Reliability.RulesFile)
	if err != nil {
		return err
	}

	s := session.New(store, reliability.NewScorer(rules), *cfg, logger)
	return fn(cmd.Context(), s)
}

// styleFlag returns the --style flag value, or the configured default.
func styleFlag(cmd *cobra.Command) (types.Style, error) {
	raw, _ := cmd.Flags().GetString("style")
	if raw == "" {
		return cfg.Display.Style, nil
	}
	style, ok := types.ParseStyle(raw)
	if !ok {
		return "", eris.Errorf("unknown style %q: use mla, apa or chicago", raw)
	}
	return style, nil
}

// writeOutput calls fn with the --output file, or stdout when unset.
func writeOutput(cmd *cobra.Command, fn func(w io.Writer) error) error {
	path, _ := cmd.Flags().GetString("output")
	if path == "" || path == "-" {
		return fn(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "creating %s", path)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "writing %s", path)
	}
	logger.Info("wrote output", zap.String("path", path))
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
