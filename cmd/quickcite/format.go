// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"go.yaml.in/yaml/v3"
)

// encode writes v to w as JSON or YAML. It reports false for any other
// format so the caller can print text.
func encode(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return true, enc.Encode(v)
	case "text", "":
		return false, nil
	}
	return true, eris.Errorf("unsupported format %q: use text, json or yaml", format)
}
