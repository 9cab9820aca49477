// Package headerscan is a best-effort tree-sitter-backed front end that
// turns raw C++ header text into draft properties.Function records. It is
// explicitly a convenience, not a parser replacement: it only recognizes
// method declarations whose shape is simple enough to resolve
// unambiguously, and it never fabricates a classification it isn't
// confident in — anything it can't confidently resolve is dropped with a
// one-line reason, never silently turned into a guess.
package headerscan

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/jawae/vtkprops/internal/logging"
	"github.com/jawae/vtkprops/internal/properties"
	"go.uber.org/zap"
)

// SkippedSignature records one method-shaped declaration the scanner found
// but declined to classify, and why.
type SkippedSignature struct {
	Signature string
	Reason    string
}

// ScanResult is the best-effort extraction for one header file.
type ScanResult struct {
	FilePath  string
	Functions []properties.Function
	Skipped   []SkippedSignature
}

// Scan extracts draft Function records from every header in paths. Files
// are processed concurrently by a worker pool bounded to GOMAXPROCS; the
// returned slice is stabilized back to the order paths were given in,
// regardless of completion order.
func Scan(ctx context.Context, paths []string) ([]ScanResult, error) {
	results := make([]ScanResult, len(paths))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(paths) {
		workers = len(paths)
	}
	if workers < 1 {
		workers = 1
	}

	type job struct {
		index int
		path  string
	}
	jobs := make(chan job)

	var wg sync.WaitGroup
	var firstErr error
	var mu sync.Mutex

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if ctx.Err() != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = ctx.Err()
					}
					mu.Unlock()
					continue
				}
				r, err := scanFile(ctx, j.path)
				if err != nil {
					logging.Get().Warn("headerscan: file failed, skipping",
						zap.String("path", j.path), zap.Error(err))
					r = ScanResult{FilePath: j.path}
				}
				results[j.index] = r
			}
		}()
	}

	for i, p := range paths {
		jobs <- job{index: i, path: p}
	}
	close(jobs)
	wg.Wait()

	return results, firstErr
}

func scanFile(ctx context.Context, path string) (ScanResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return ScanResult{}, fmt.Errorf("headerscan: read %s: %w", path, err)
	}
	return scanContent(ctx, path, content)
}

func scanContent(ctx context.Context, path string, content []byte) (ScanResult, error) {
	if ctx.Err() != nil {
		return ScanResult{}, ctx.Err()
	}

	parser := sitter.NewParser()
	parser.SetLanguage(cpp.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return ScanResult{}, fmt.Errorf("headerscan: parse %s: %w", path, err)
	}
	defer tree.Close()

	result := ScanResult{FilePath: path}
	walk(tree.RootNode(), content, &result)

	sort.SliceStable(result.Functions, func(i, j int) bool { return result.Functions[i].Name < result.Functions[j].Name })
	return result, nil
}

// walk descends the parse tree looking for member function declarations
// (both in-class declarations and inline definitions) and feeds each one
// through classifyDeclarator.
func walk(n *sitter.Node, src []byte, result *ScanResult) {
	if n == nil {
		return
	}

	switch n.Type() {
	case "field_declaration", "function_definition":
		if fn, skip, ok := classifyDeclarator(n, src); ok {
			if skip.Reason != "" {
				result.Skipped = append(result.Skipped, skip)
			} else {
				result.Functions = append(result.Functions, fn)
			}
			return
		}
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		walk(n.Child(i), src, result)
	}
}

func text(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return string(src[n.StartByte():n.EndByte()])
}
