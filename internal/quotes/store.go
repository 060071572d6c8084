// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quotes persists captured quotations in SQLite.
// Implements: the persistence collaborator (save, load, list, delete,
// clear) behind the citation pipeline. Source types are never stored;
// they are recomputed from the record on every read.
package quotes

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pdiddy/quickcite/pkg/types"
)

const defaultPath = "quickcite.db"

// ErrNotFound is returned when no quote has the requested ID.
var ErrNotFound = eris.New("quote not found")

// Store manages the quote database.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens or creates the quote database at cfg.Path and creates the
// schema if it does not exist.
func Open(cfg types.StoreConfig, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	path := cfg.Path
	if path == "" {
		path = defaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, eris.Wrapf(err, "quotes: creating directory %s", dir)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, eris.Wrap(err, "quotes: opening database")
	}

	s := &Store{db: db, log: log.With(zap.String("db", path))}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "quotes: creating schema")
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS quotes (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			text TEXT NOT NULL,
			source_title TEXT,
			source_url TEXT NOT NULL,
			author TEXT,
			source_name TEXT,
			timestamp TEXT,
			access_date TEXT,
			creation_date TEXT,
			volume TEXT,
			issue TEXT,
			pages TEXT,
			doi TEXT,
			publisher TEXT,
			is_video INTEGER NOT NULL DEFAULT 0,
			video_channel TEXT,
			video_platform TEXT,
			video_upload_date TEXT,
			tags TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_timestamp ON quotes(timestamp)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return eris.Wrap(err, "executing schema statement")
		}
	}
	return nil
}

// Save inserts record, or replaces the stored quote with the same ID. An
// empty ID is assigned a new UUID. The saved record is returned.
func (s *Store) Save(ctx context.Context, record types.CaptureRecord) (types.CaptureRecord, error) {
	record = record.Normalize()
	if record.Text == "" {
		return record, eris.New("quotes: quote text is empty")
	}
	if record.SourceURL == "" {
		return record, eris.New("quotes: source URL is empty")
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	var tags any
	if len(record.Tags) > 0 {
		data, err := json.Marshal(record.Tags)
		if err != nil {
			return record, eris.Wrap(err, "quotes: encoding tags")
		}
		tags = string(data)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quotes (id, text, source_title, source_url, author, source_name,
			timestamp, access_date, creation_date, volume, issue, pages, doi, publisher,
			is_video, video_channel, video_platform, video_upload_date, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			text=excluded.text, source_title=excluded.source_title,
			source_url=excluded.source_url, author=excluded.author,
			source_name=excluded.source_name, timestamp=excluded.timestamp,
			access_date=excluded.access_date, creation_date=excluded.creation_date,
			volume=excluded.volume, issue=excluded.issue, pages=excluded.pages,
			doi=excluded.doi, publisher=excluded.publisher, is_video=excluded.is_video,
			video_channel=excluded.video_channel, video_platform=excluded.video_platform,
			video_upload_date=excluded.video_upload_date, tags=excluded.tags`,
		record.ID, record.Text, null(record.SourceTitle), record.SourceURL,
		null(record.Author), null(record.SourceName), null(record.Timestamp),
		null(record.AccessDate), null(record.CreationDate), null(record.Volume),
		null(record.Issue), null(record.Pages), null(record.DOI), null(record.Publisher),
		record.IsVideo, null(record.VideoChannel), null(record.VideoPlatform),
		null(record.VideoUploadDate), tags,
	)
	if err != nil {
		return record, eris.Wrapf(err, "quotes: saving %s", record.ID)
	}
	s.log.Debug("saved quote", zap.String("id", record.ID))
	return record, nil
}

// Get returns the quote with the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (types.CaptureRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM quotes WHERE id = ?`, id)
	r, err := scanRecord(row)
	if eris.Is(err, sql.ErrNoRows) {
		return types.CaptureRecord{}, eris.Wrapf(ErrNotFound, "quotes: %s", id)
	}
	if err != nil {
		return types.CaptureRecord{}, eris.Wrapf(err, "quotes: loading %s", id)
	}
	return r, nil
}

// ErrAmbiguous is returned by Resolve when a prefix matches several quotes.
var ErrAmbiguous = eris.New("quote ID prefix is ambiguous")

// Resolve expands an ID prefix to the full ID of the one quote it matches.
func (s *Store) Resolve(ctx context.Context, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", eris.Wrap(ErrNotFound, "quotes: empty ID")
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM quotes WHERE id LIKE ? ESCAPE '\' LIMIT 2`, escapeLike(prefix)+"%")
	if err != nil {
		return "", eris.Wrapf(err, "quotes: resolving %s", prefix)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", eris.Wrapf(err, "quotes: resolving %s", prefix)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", eris.Wrapf(err, "quotes: resolving %s", prefix)
	}

	switch len(ids) {
	case 0:
		return "", eris.Wrapf(ErrNotFound, "quotes: %s", prefix)
	case 1:
		return ids[0], nil
	}
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
	}
	return "", eris.Wrapf(ErrAmbiguous, "quotes: %s", prefix)
}

// ListOptions filter and order List results.
type ListOptions struct {
	// Order is newest (default) or oldest first by capture time.
	Order types.SortOrder

	// Query keeps quotes whose text, title or author contains it,
	// case-insensitively.
	Query string

	// Tag keeps quotes carrying this tag.
	Tag string

	// Limit caps the result count. Zero means no limit.
	Limit int
}

// List returns stored quotes matching opts.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]types.CaptureRecord, error) {
	var (
		where []string
		args  []any
	)
	if q := strings.TrimSpace(opts.Query); q != "" {
		pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
		where = append(where,
			`(lower(text) LIKE ? ESCAPE '\' OR lower(source_title) LIKE ? ESCAPE '\' OR lower(author) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern)
	}
	if opts.Tag != "" {
		where = append(where, `EXISTS (SELECT 1 FROM json_each(quotes.tags) WHERE json_each.value = ?)`)
		args = append(args, opts.Tag)
	}

	query := `SELECT ` + columns + ` FROM quotes`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	if opts.Order == types.SortOldest {
		query += ` ORDER BY timestamp ASC, rowid ASC`
	} else {
		query += ` ORDER BY timestamp DESC, rowid DESC`
	}
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "quotes: listing")
	}
	defer rows.Close()

	var out []types.CaptureRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, eris.Wrap(err, "quotes: scanning row")
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "quotes: listing")
	}
	return out, nil
}

// Count returns the number of stored quotes.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM quotes`).Scan(&n); err != nil {
		return 0, eris.Wrap(err, "quotes: counting")
	}
	return n, nil
}

// Delete removes the quote with the given ID, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "quotes: deleting %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrapf(err, "quotes: deleting %s", id)
	}
	if n == 0 {
		return eris.Wrapf(ErrNotFound, "quotes: %s", id)
	}
	s.log.Debug("deleted quote", zap.String("id", id))
	return nil
}

// Clear removes every quote and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quotes`)
	if err != nil {
		return 0, eris.Wrap(err, "quotes: clearing")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, eris.Wrap(err, "quotes: clearing")
	}
	s.log.Info("cleared quotes", zap.Int64("removed", n))
	return int(n), nil
}

const columns = `id, text, source_title, source_url, author, source_name, timestamp,
	access_date, creation_date, volume, issue, pages, doi, publisher, is_video,
	video_channel, video_platform, video_upload_date, tags`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (types.CaptureRecord, error) {
	var (
		r    types.CaptureRecord
		opt  [14]sql.NullString
		tags sql.NullString
	)
	err := sc.Scan(&r.ID, &r.Text, &opt[0], &r.SourceURL, &opt[1], &opt[2], &opt[3],
		&opt[4], &opt[5], &opt[6], &opt[7], &opt[8], &opt[9], &opt[10], &r.IsVideo,
		&opt[11], &opt[12], &opt[13], &tags)
	if err != nil {
		return r, err
	}

	for i, dst := range []*string{
		&r.SourceTitle, &r.Author, &r.SourceName, &r.Timestamp, &r.AccessDate,
		&r.CreationDate, &r.Volume, &r.Issue, &r.Pages, &r.DOI, &r.Publisher,
		&r.VideoChannel, &r.VideoPlatform, &r.VideoUploadDate,
	} {
		*dst = opt[i].String
	}
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &r.Tags); err != nil {
			return r, eris.Wrap(err, "decoding tags")
		}
	}
	return r, nil
}

// null maps an absent field to SQL NULL.
func null(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
