package headerscan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawae/vtkprops/internal/properties"
)

func writeHeader(t *testing.T, content string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "vtkSphereSource.h")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanRadiusAccessorPairFeedsCoreToSameProperty(t *testing.T) {
	path := writeHeader(t, `
class vtkSphereSource {
public:
  void SetRadius(double r);
  double GetRadius();
};
`)

	results, err := Scan(context.Background(), []string{path})
	require.NoError(t, err)
	require.Len(t, results, 1)

	cp, err := properties.Build(results[0].Functions)
	require.NoError(t, err)
	require.Len(t, cp.Properties, 1)

	p := cp.Properties[0]
	assert.Equal(t, "Radius", p.Name)
	assert.Equal(t, properties.Double, p.Type.Base)
	assert.True(t, p.PublicMethods.Has(properties.BasicSet))
	assert.True(t, p.PublicMethods.Has(properties.BasicGet))
}

func TestScanRecordsSkipReasonForOperatorOverload(t *testing.T) {
	path := writeHeader(t, `
class vtkVector {
public:
  vtkVector operator+(const vtkVector &other);
};
`)

	results, err := Scan(context.Background(), []string{path})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Empty(t, results[0].Functions)
	require.Len(t, results[0].Skipped, 1)
	assert.Contains(t, results[0].Skipped[0].Reason, "operator")
}

func TestScanPreservesInputOrderAcrossConcurrentWorkers(t *testing.T) {
	var paths []string
	for i := 0; i < 8; i++ {
		paths = append(paths, writeHeader(t, `
class X {
public:
  void SetV(int v);
  int GetV();
};
`))
	}

	results, err := Scan(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, len(paths))
	for i, r := range results {
		assert.Equal(t, paths[i], r.FilePath)
	}
}

func TestScanDegradesOnUnreadableFileRatherThanAborting(t *testing.T) {
	results, err := Scan(context.Background(), []string{filepath.Join(t.TempDir(), "missing.h")})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Functions)
}
