// Package ingest loads already-parsed class descriptions — JSON documents
// holding a class name and its methods — from disk or an io.Reader, for
// feeding into the property synthesis core. It is independent of whether
// the JSON originated from internal/headerscan or was hand-authored.
package ingest

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/jawae/vtkprops/internal/properties"
)

// Class is a named collection of methods, the unit of work the CLI passes
// to the property synthesis core.
type Class struct {
	Name    string                `json:"name"`
	Methods []properties.Function `json:"methods"`
}

// Load decodes a single Class from r.
func Load(r io.Reader) (Class, error) {
	var c Class
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Class{}, fmt.Errorf("ingest: decode class: %w", err)
	}
	return c, nil
}
