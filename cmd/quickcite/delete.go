// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/pdiddy/quickcite/internal/session"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Aliases: []string{"rm"},
	Short:   "Delete saved quotes",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			for _, id := range args {
				if err := s.Delete(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			}
			return nil
		})
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved quote",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return eris.New("clear deletes every saved quote; pass --yes to confirm")
		}
		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			n, err := s.Clear(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d quotes\n", n)
			return nil
		})
	},
}

func init() {
	clearCmd.Flags().Bool("yes", false, "confirm deleting every quote")

	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}
