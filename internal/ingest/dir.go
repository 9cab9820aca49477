package ingest

import (
	"fmt"
	"io/fs"

	"github.com/bmatcuk/doublestar/v4"
)

// LoadDir loads every class description file under fsys matching pattern
// (a doublestar glob, e.g. "**/*.json"), in lexical match order.
func LoadDir(fsys fs.FS, pattern string) ([]Class, error) {
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("ingest: glob %q: %w", pattern, err)
	}

	classes := make([]Class, 0, len(matches))
	for _, path := range matches {
		f, err := fsys.Open(path)
		if err != nil {
			return nil, fmt.Errorf("ingest: open %s: %w", path, err)
		}
		c, err := Load(f)
		closeErr := f.Close()
		if err != nil {
			return nil, fmt.Errorf("ingest: %s: %w", path, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("ingest: close %s: %w", path, closeErr)
		}
		classes = append(classes, c)
	}
	return classes, nil
}
