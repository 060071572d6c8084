// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/pdiddy/quickcite/internal/classify"
	"github.com/pdiddy/quickcite/internal/normalize"
	"github.com/pdiddy/quickcite/internal/quotes"
	"github.com/pdiddy/quickcite/internal/session"
	"github.com/pdiddy/quickcite/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List saved quotes",
	Long: `List shows saved quotes, newest first unless --order or display.sort_order
says otherwise. A query matches quote text, title and author.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	opts, err := listOptsFromFlags(cmd, args)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	return withSession(cmd, func(ctx context.Context, s *session.Session) error {
		records, err := s.List(ctx, opts)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if records == nil {
			records = []types.CaptureRecord{}
		}
		if done, err := encode(w, format, records); done {
			return err
		}

		if len(records) == 0 {
			fmt.Fprintln(w, "No quotes saved.")
			return nil
		}
		fmt.Fprintf(w, "%-8s  %-12s  %-40s  %-24s  %s\n", "ID", "Type", "Quote", "Source", "Author")
		fmt.Fprintln(w, strings.Repeat("-", 110))
		for _, r := range records {
			title, _ := normalize.ParseTitleAndWebsite(r.SourceTitle, r.SourceURL, r.SourceName)
			fmt.Fprintf(w, "%-8s  %-12s  %-40s  %-24s  %s\n",
				shortID(r.ID), classify.Record(r), truncate(r.Text, 40),
				truncate(title, 24), truncate(r.Author, 24))
		}
		fmt.Fprintf(w, "\n%d quotes\n", len(records))
		return nil
	})
}

func listOptsFromFlags(cmd *cobra.Command, args []string) (quotes.ListOptions, error) {
	query, _ := cmd.Flags().GetString("query")
	if query == "" && len(args) > 0 {
		query = strings.Join(args, " ")
	}
	tag, _ := cmd.Flags().GetString("tag")
	limit, _ := cmd.Flags().GetInt("limit")
	order, _ := cmd.Flags().GetString("order")

	opts := quotes.ListOptions{Query: query, Tag: tag, Limit: limit}
	switch types.SortOrder(order) {
	case "":
	case types.SortNewest, types.SortOldest:
		opts.Order = types.SortOrder(order)
	default:
		return opts, eris.Errorf("unknown order %q: use newest or oldest", order)
	}
	return opts, nil
}

// shortID is the ID prefix shown in listings. show, cite and delete
// accept it in place of the full ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens s to n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	s = normalize.Collapse(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// addFilterFlags registers the quote filter flags shared by list, export
// and bibliography.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("query", "", "substring filter over text, title and author")
	cmd.Flags().String("tag", "", "filter by tag")
	cmd.Flags().Int("limit", 0, "maximum quotes (0 = all)")
	cmd.Flags().String("order", "", "newest or oldest (default: display.sort_order)")
}

func init() {
	addFilterFlags(listCmd)
	listCmd.Flags().String("format", "text", "output format: text, json or yaml")

	rootCmd.AddCommand(listCmd)
}
