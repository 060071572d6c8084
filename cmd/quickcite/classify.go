// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/pdiddy/quickcite/internal/classify"
	"github.com/pdiddy/quickcite/internal/reliability"
	"github.com/pdiddy/quickcite/pkg/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a page title and URL without saving anything",
	Long: `Classify runs the source classifier on a title and URL and prints the
detected source type and reliability tier. With --explain it lists every
rule in priority order and whether it matched.`,
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	url, _ := cmd.Flags().GetString("url")
	video, _ := cmd.Flags().GetBool("video")
	explain, _ := cmd.Flags().GetBool("explain")
	if title == "" && url == "" {
		return eris.New("--title or --url required")
	}

	rec := types.CaptureRecord{SourceTitle: title, SourceURL: url, IsVideo: video}
	rules, err := reliability.LoadRules(cfg.Reliability.RulesFile)
	if err != nil {
		return err
	}
	a := reliability.NewScorer(rules).Assess(rec)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "type:        %s\n", classify.Record(rec))
	fmt.Fprintf(w, "reliability: %s (%.2f) %s\n", a.Tier, a.Score, a.Reason)

	if explain {
		in := classify.NewInput(title, url)
		fmt.Fprintln(w)
		for _, r := range classify.Rules() {
			mark := " "
			if r.Match(in) {
				mark = "x"
			}
			fmt.Fprintf(w, "  [%s] %s\n", mark, r.Name)
		}
	}
	return nil
}

func init() {
	classifyCmd.Flags().String("title", "", "page title")
	classifyCmd.Flags().String("url", "", "page URL")
	classifyCmd.Flags().Bool("video", false, "treat the source as a video")
	classifyCmd.Flags().Bool("explain", false, "show which rules matched")

	rootCmd.AddCommand(classifyCmd)
}
