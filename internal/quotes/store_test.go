// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quotes

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/quickcite/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "quotes.db")
	s, err := Open(types.StoreConfig{Path: path}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func record(text, ts string) types.CaptureRecord {
	return types.CaptureRecord{
		Text:        text,
		SourceTitle: "How Go Schedules Goroutines | Go Blog",
		SourceURL:   "https://go.dev/blog/sched",
		Author:      "Rob Pike",
		Timestamp:   ts,
		AccessDate:  "March 1, 2024",
	}
}

func TestSaveAndGet(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	in := record("Goroutines are cheap.", "2024-03-01T10:00:00Z")
	in.Volume = "5"
	in.IsVideo = true
	in.Tags = []string{"go", "runtime"}

	saved, err := s.Save(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.True(t, got.IsVideo)
	assert.Equal(t, []string{"go", "runtime"}, got.Tags)
}

func TestSaveNormalizesAndStoresNull(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	in := record("  padded  ", "2024-03-01T10:00:00Z")
	in.Author = "undefined"
	saved, err := s.Save(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "padded", saved.Text)
	assert.Empty(t, saved.Author)

	var authorNull, doiNull, tagsNull bool
	err = s.db.QueryRow(`SELECT author IS NULL, doi IS NULL, tags IS NULL FROM quotes WHERE id = ?`, saved.ID).
		Scan(&authorNull, &doiNull, &tagsNull)
	require.NoError(t, err)
	assert.True(t, authorNull)
	assert.True(t, doiNull)
	assert.True(t, tagsNull)
}

func TestSaveRequiresTextAndURL(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, types.CaptureRecord{SourceURL: "https://example.com"})
	assert.Error(t, err)

	_, err = s.Save(ctx, types.CaptureRecord{Text: "x"})
	assert.Error(t, err)
}

func TestSaveReplacesByID(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, record("first", "2024-03-01T10:00:00Z"))
	require.NoError(t, err)

	saved.Text = "second"
	_, err = s.Save(ctx, saved)
	require.NoError(t, err)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Text)
}

func TestGetNotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrNotFound))
}

func TestListOrderAndFilters(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	old := record("Share memory by communicating.", "2024-01-01T00:00:00Z")
	old.Tags = []string{"proverb"}
	mid := record("Goroutines are cheap.", "2024-02-01T00:00:00Z")
	mid.Author = "Russ Cox"
	newer := record("Clear is better than clever.", "2024-03-01T00:00:00Z")
	newer.Tags = []string{"proverb", "style"}
	for _, r := range []types.CaptureRecord{old, mid, newer} {
		_, err := s.Save(ctx, r)
		require.NoError(t, err)
	}

	texts := func(rs []types.CaptureRecord) []string {
		var out []string
		for _, r := range rs {
			out = append(out, r.Text)
		}
		return out
	}

	got, err := s.List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{newer.Text, mid.Text, old.Text}, texts(got))

	got, err = s.List(ctx, ListOptions{Order: types.SortOldest, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{old.Text, mid.Text}, texts(got))

	got, err = s.List(ctx, ListOptions{Query: "CHEAP"})
	require.NoError(t, err)
	assert.Equal(t, []string{mid.Text}, texts(got))

	got, err = s.List(ctx, ListOptions{Query: "schedules goroutines"})
	require.NoError(t, err)
	assert.Len(t, got, 3, "query matches the shared title")

	got, err = s.List(ctx, ListOptions{Query: "cox"})
	require.NoError(t, err)
	assert.Equal(t, []string{mid.Text}, texts(got))

	got, err = s.List(ctx, ListOptions{Tag: "proverb", Order: types.SortOldest})
	require.NoError(t, err)
	assert.Equal(t, []string{old.Text, newer.Text}, texts(got))

	got, err = s.List(ctx, ListOptions{Query: "100%"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteAndClear(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	a, err := s.Save(ctx, record("a", "2024-01-01T00:00:00Z"))
	require.NoError(t, err)
	_, err = s.Save(ctx, record("b", "2024-01-02T00:00:00Z"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, a.ID))
	assert.True(t, eris.Is(s.Delete(ctx, a.ID), ErrNotFound))

	n, err := s.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExport(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, record("Goroutines are cheap.", "2024-03-01T10:00:00Z"))
	require.NoError(t, err)

	var yb bytes.Buffer
	require.NoError(t, s.ExportYAML(ctx, &yb, ListOptions{}))
	var fromYAML Dump
	require.NoError(t, yaml.Unmarshal(yb.Bytes(), &fromYAML))
	assert.Equal(t, 1, fromYAML.Count)
	require.Len(t, fromYAML.Quotes, 1)
	assert.Equal(t, saved.ID, fromYAML.Quotes[0].ID)

	var jb bytes.Buffer
	require.NoError(t, s.ExportJSON(ctx, &jb, ListOptions{}))
	var fromJSON Dump
	require.NoError(t, json.Unmarshal(jb.Bytes(), &fromJSON))
	assert.Equal(t, saved.ID, fromJSON.Quotes[0].ID)

	_, err = s.Clear(ctx)
	require.NoError(t, err)
	jb.Reset()
	require.NoError(t, s.ExportJSON(ctx, &jb, ListOptions{}))
	assert.Contains(t, jb.String(), `"quotes": []`)
}

func TestResolve(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	a := record("a", "2024-01-01T00:00:00Z")
	a.ID = "abc11111"
	b := record("b", "2024-01-02T00:00:00Z")
	b.ID = "abc22222"
	for _, r := range []types.CaptureRecord{a, b} {
		_, err := s.Save(ctx, r)
		require.NoError(t, err)
	}

	id, err := s.Resolve(ctx, "abc1")
	require.NoError(t, err)
	assert.Equal(t, "abc11111", id)

	id, err = s.Resolve(ctx, "abc22222")
	require.NoError(t, err)
	assert.Equal(t, "abc22222", id)

	_, err = s.Resolve(ctx, "abc")
	assert.True(t, eris.Is(err, ErrAmbiguous))

	_, err = s.Resolve(ctx, "zzz")
	assert.True(t, eris.Is(err, ErrNotFound))

	_, err = s.Resolve(ctx, "")
	assert.True(t, eris.Is(err, ErrNotFound))
}
