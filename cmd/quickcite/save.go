// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/quickcite/internal/authors"
	"github.com/pdiddy/quickcite/internal/session"
	"github.com/pdiddy/quickcite/pkg/types"
)

// accessDateLayout is the human-readable capture date, e.g. "March 1, 2024".
const accessDateLayout = "January 2, 2006"

// timestampLayout is ISO-8601 with milliseconds in UTC.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

var saveCmd = &cobra.Command{
	Use:   "save [quote text]",
	Short: "Capture a quotation with its source metadata",
	Long: `Save stores a quoted passage together with the page it came from. The
quote text is taken from --text or the positional arguments; --url is
required. When --author is empty, the author is looked for in the title
("... by Jane Doe") and the URL (/author/jane-doe).

The saved quote's ID is printed; use it with show, cite and delete.`,
	RunE: runSave,
}

func runSave(cmd *cobra.Command, args []string) error {
	rec, err := recordFromFlags(cmd, args, time.Now())
	if err != nil {
		return err
	}
	return withSession(cmd, func(ctx context.Context, s *session.Session) error {
		saved, err := s.Save(ctx, rec)
		if err != nil {
			return err
		}
		logger.Info("quote saved", zap.String("id", saved.ID))
		fmt.Fprintln(cmd.OutOrStdout(), saved.ID)
		return nil
	})
}

func recordFromFlags(cmd *cobra.Command, args []string, now time.Time) (types.CaptureRecord, error) {
	flag := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return strings.TrimSpace(v)
	}

	text := flag("text")
	if text == "" {
		text = strings.TrimSpace(strings.Join(args, " "))
	}
	if text == "" {
		return types.CaptureRecord{}, eris.New("quote text required: pass --text or positional arguments")
	}
	url := flag("url")
	if url == "" {
		return types.CaptureRecord{}, eris.New("--url is required")
	}

	isVideo, _ := cmd.Flags().GetBool("video")
	tags, _ := cmd.Flags().GetStringSlice("tag")

	rec := types.CaptureRecord{
		Text:            text,
		SourceTitle:     flag("title"),
		SourceURL:       url,
		Author:          flag("author"),
		SourceName:      flag("source-name"),
		Timestamp:       now.UTC().Format(timestampLayout),
		AccessDate:      now.Format(accessDateLayout),
		CreationDate:    flag("date"),
		Volume:          flag("volume"),
		Issue:           flag("issue"),
		Pages:           flag("pages"),
		DOI:             flag("doi"),
		Publisher:       flag("publisher"),
		IsVideo:         isVideo,
		VideoChannel:    flag("channel"),
		VideoPlatform:   flag("platform"),
		VideoUploadDate: flag("upload-date"),
		Tags:            tags,
	}
	if rec.Author == "" {
		rec.Author = authors.Sniff(rec.SourceTitle, rec.SourceURL)
	}
	return rec, nil
}

// addSaveFlags registers the capture flags read by recordFromFlags.
func addSaveFlags(cmd *cobra.Command) {
	cmd.Flags().String("text", "", "quoted passage")
	cmd.Flags().String("url", "", "source page URL (required)")
	cmd.Flags().String("title", "", "page title, e.g. \"Article | Site\"")
	cmd.Flags().String("author", "", "author string, e.g. \"Jane Doe and John Roe\"")
	cmd.Flags().String("source-name", "", "authoritative container name, e.g. a journal")
	cmd.Flags().String("date", "", "publication date of the source")
	cmd.Flags().String("volume", "", "journal volume")
	cmd.Flags().String("issue", "", "journal issue")
	cmd.Flags().String("pages", "", "page range, e.g. 10-20")
	cmd.Flags().String("doi", "", "digital object identifier")
	cmd.Flags().String("publisher", "", "publisher or issuing agency")
	cmd.Flags().Bool("video", false, "treat the source as a video")
	cmd.Flags().String("channel", "", "video channel")
	cmd.Flags().String("platform", "", "video platform")
	cmd.Flags().String("upload-date", "", "video upload date")
	cmd.Flags().StringSlice("tag", nil, "label to attach (repeatable)")
}

func init() {
	addSaveFlags(saveCmd)

	rootCmd.AddCommand(saveCmd)
}
