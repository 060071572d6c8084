// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quotes

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/quickcite/pkg/types"
)

// Dump is the document written by ExportYAML and ExportJSON.
type Dump struct {
	Count  int                   `json:"count" yaml:"count"`
	Quotes []types.CaptureRecord `json:"quotes" yaml:"quotes"`
}

// ExportYAML writes the quotes matching opts to w as YAML.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, opts ListOptions) error {
	dump, err := s.dump(ctx, opts)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(dump); err != nil {
		return eris.Wrap(err, "quotes: marshaling YAML")
	}
	return nil
}

// ExportJSON writes the quotes matching opts to w as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer, opts ListOptions) error {
	dump, err := s.dump(ctx, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		return eris.Wrap(err, "quotes: marshaling JSON")
	}
	return nil
}

func (s *Store) dump(ctx context.Context, opts ListOptions) (Dump, error) {
	records, err := s.List(ctx, opts)
	if err != nil {
		return Dump{}, eris.Wrap(err, "quotes: querying for export")
	}
	if records == nil {
		records = []types.CaptureRecord{}
	}
	return Dump{Count: len(records), Quotes: records}, nil
}
