// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the application state of one quickcite run: the
// quote store, the reliability scorer, the loaded configuration, a cache of
// rendered citations and the quote currently open for viewing.
package session

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pdiddy/quickcite/internal/authors"
	"github.com/pdiddy/quickcite/internal/cite"
	"github.com/pdiddy/quickcite/internal/classify"
	"github.com/pdiddy/quickcite/internal/export"
	"github.com/pdiddy/quickcite/internal/quotes"
	"github.com/pdiddy/quickcite/internal/reliability"
	"github.com/pdiddy/quickcite/pkg/types"
)

// ErrNoCurrent is returned by operations on the current quote when none is
// open.
var ErrNoCurrent = eris.New("no quote is open")

// Details is everything shown for an opened quote.
type Details struct {
	Record      types.CaptureRecord    `json:"record" yaml:"record"`
	Type        types.SourceType       `json:"source_type" yaml:"source_type"`
	Reliability types.Assessment       `json:"reliability" yaml:"reliability"`
	Citations   map[types.Style]string `json:"citations" yaml:"citations"`
	InText      map[types.Style]string `json:"in_text" yaml:"in_text"`
	Phrases     []string               `json:"signal_phrases" yaml:"signal_phrases"`
}

// Session is the explicit application state. It is not safe for concurrent
// use; the citation cache is.
type Session struct {
	store   *quotes.Store
	scorer  *reliability.Scorer
	cfg     types.Config
	cache   *citationCache
	log     *zap.Logger
	current *types.CaptureRecord
}

// New returns a Session over store. A nil scorer uses the default rules.
func New(store *quotes.Store, scorer *reliability.Scorer, cfg types.Config, log *zap.Logger) *Session {
	if scorer == nil {
		scorer = reliability.NewScorer(reliability.DefaultRules())
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		store:  store,
		scorer: scorer,
		cfg:    cfg,
		cache:  newCitationCache(cfg.Cache.TTL),
		log:    log,
	}
}

// Config returns the configuration the session was built with.
func (s *Session) Config() types.Config {
	return s.cfg
}

// Store returns the underlying quote store.
func (s *Session) Store() *quotes.Store {
	return s.store
}

// Save stores record and drops any cached citations for it.
func (s *Session) Save(ctx context.Context, record types.CaptureRecord) (types.CaptureRecord, error) {
	saved, err := s.store.Save(ctx, record)
	if err != nil {
		return saved, eris.Wrap(err, "session: save")
	}
	s.cache.invalidate(saved.ID)
	if s.current != nil && s.current.ID == saved.ID {
		s.current = &saved
	}
	return saved, nil
}

// Open loads the quote with id (or a unique ID prefix), makes it current
// and returns its details.
func (s *Session) Open(ctx context.Context, id string) (Details, error) {
	full, err := s.store.Resolve(ctx, id)
	if err != nil {
		return Details{}, eris.Wrap(err, "session: open")
	}
	record, err := s.store.Get(ctx, full)
	if err != nil {
		return Details{}, eris.Wrap(err, "session: open")
	}
	s.current = &record
	s.log.Debug("opened quote", zap.String("id", full))
	return s.Describe(record), nil
}

// Describe computes the details of record without making it current.
func (s *Session) Describe(record types.CaptureRecord) Details {
	d := Details{
		Record:      record,
		Type:        classify.Record(record),
		Reliability: s.scorer.Assess(record),
		Citations:   make(map[types.Style]string, len(types.AllStyles)),
		InText:      make(map[types.Style]string, len(types.AllStyles)),
		Phrases:     export.SignalPhrases(record),
	}
	for _, style := range types.AllStyles {
		d.Citations[style] = s.Citation(record, style)
		d.InText[style] = s.InText(record, style)
	}
	return d
}

// Citation renders the full citation of record in style, from the cache
// when the record has an ID.
func (s *Session) Citation(record types.CaptureRecord, style types.Style) string {
	return s.cached(record, style, formFull, func() string {
		return cite.Render(record, style)
	})
}

// InText renders the in-text citation of record in style.
func (s *Session) InText(record types.CaptureRecord, style types.Style) string {
	return s.cached(record, style, formInText, func() string {
		return cite.InText(record, authors.Parse(record.Author), style)
	})
}

func (s *Session) cached(record types.CaptureRecord, style types.Style, f form, render func() string) string {
	if record.ID == "" {
		return render()
	}
	if c, ok := s.cache.get(record.ID, style, f); ok {
		return c
	}
	c := render()
	s.cache.set(record.ID, style, f, c)
	return c
}

// Current returns the open quote.
func (s *Session) Current() (types.CaptureRecord, bool) {
	if s.current == nil {
		return types.CaptureRecord{}, false
	}
	return *s.current, true
}

// CloseCurrent forgets the open quote. The quote itself is kept.
func (s *Session) CloseCurrent() {
	s.current = nil
}

// DeleteCurrent deletes the open quote and closes it.
func (s *Session) DeleteCurrent(ctx context.Context) error {
	if s.current == nil {
		return ErrNoCurrent
	}
	return s.Delete(ctx, s.current.ID)
}

// Delete removes the quote with id (or a unique ID prefix), closing it
// first if it is current.
func (s *Session) Delete(ctx context.Context, id string) error {
	id, err := s.store.Resolve(ctx, id)
	if err != nil {
		return eris.Wrap(err, "session: delete")
	}
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.cache.invalidate(id)
	if err := s.store.Delete(ctx, id); err != nil {
		return eris.Wrap(err, "session: delete")
	}
	return nil
}

// Clear removes every quote, closes the current one and empties the cache.
func (s *Session) Clear(ctx context.Context) (int, error) {
	s.current = nil
	s.cache.flush()
	n, err := s.store.Clear(ctx)
	if err != nil {
		return 0, eris.Wrap(err, "session: clear")
	}
	return n, nil
}

// List returns stored quotes ordered by the configured sort order unless
// opts sets one.
func (s *Session) List(ctx context.Context, opts quotes.ListOptions) ([]types.CaptureRecord, error) {
	if opts.Order == "" {
		opts.Order = s.cfg.Display.SortOrder
	}
	records, err := s.store.List(ctx, opts)
	if err != nil {
		return nil, eris.Wrap(err, "session: list")
	}
	return records, nil
}
