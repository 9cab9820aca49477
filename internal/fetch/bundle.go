// Package fetch downloads a versioned bundle of naming-convention fixture
// files — sample class descriptions used to regression-test the property
// synthesis core against real-world naming quirks — from a plain
// version-indexed HTTP endpoint, selecting the latest release. It reuses
// the teacher's nuget-index-shaped downloader pattern, retargeted at a
// JSON release index since there is no NuGet-equivalent registry for this
// domain.
package fetch

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-version"

	"github.com/jawae/vtkprops/internal/logging"
	"go.uber.org/zap"
)

// releaseIndexURL is the version-indexed JSON endpoint listing known
// releases of the fixture bundle.
const releaseIndexURL = "https://vtkprops.example.org/fixtures/index.json"

// Bundle is one downloaded release: a version string, the set of named
// JSON fixture payloads it contained, and the URL it was fetched from.
type Bundle struct {
	Version   string
	Payloads  map[string][]byte
	SourceURL string
}

type releaseIndex struct {
	Releases []release `json:"releases"`
}

type release struct {
	Version string `json:"version"`
	URL     string `json:"url"`
}

// DownloadFixtures fetches the highest-semver release of the fixture
// bundle and extracts its JSON payloads into destDir, honoring ctx
// cancellation throughout.
func DownloadFixtures(ctx context.Context, destDir string) (Bundle, error) {
	indexBytes, err := queryGet(ctx, releaseIndexURL)
	if err != nil {
		return Bundle{}, fmt.Errorf("fetch: query release index: %w", err)
	}

	var idx releaseIndex
	if err := json.Unmarshal(indexBytes, &idx); err != nil {
		return Bundle{}, fmt.Errorf("fetch: decode release index: %w", err)
	}
	if len(idx.Releases) == 0 {
		return Bundle{}, fmt.Errorf("fetch: release index at %s has no releases", releaseIndexURL)
	}

	latest, err := latestRelease(idx.Releases)
	if err != nil {
		return Bundle{}, err
	}

	logging.Get().Info("fetch: downloading fixture bundle",
		zap.String("version", latest.Version), zap.String("url", latest.URL))

	archive, err := queryGet(ctx, latest.URL)
	if err != nil {
		return Bundle{}, fmt.Errorf("fetch: download bundle %s: %w", latest.Version, err)
	}

	payloads, err := extractJSONPayloads(archive, destDir)
	if err != nil {
		return Bundle{}, fmt.Errorf("fetch: extract bundle %s: %w", latest.Version, err)
	}

	return Bundle{Version: latest.Version, Payloads: payloads, SourceURL: latest.URL}, nil
}

// latestRelease picks the release with the highest semantic version,
// using the same hashicorp/go-version sort-and-pick-latest approach the
// teacher uses for its own metadata packages.
func latestRelease(releases []release) (release, error) {
	versions := make(version.Collection, 0, len(releases))
	byVersion := make(map[string]release, len(releases))

	for _, r := range releases {
		v, err := version.NewVersion(r.Version)
		if err != nil {
			return release{}, fmt.Errorf("fetch: release %q has invalid version: %w", r.Version, err)
		}
		versions = append(versions, v)
		byVersion[v.String()] = r
	}

	sort.Sort(versions)
	best := versions[len(versions)-1]
	return byVersion[best.String()], nil
}

// extractJSONPayloads unpacks every .json entry in a zip archive, writing
// each to destDir and returning its bytes keyed by archive-relative name.
func extractJSONPayloads(archiveBytes []byte, destDir string) (map[string][]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archiveBytes), int64(len(archiveBytes)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create dest dir: %w", err)
	}

	payloads := make(map[string][]byte)
	for _, f := range zr.File {
		if filepath.Ext(f.Name) != ".json" {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in archive: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		closeErr := rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s in archive: %w", f.Name, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("close %s in archive: %w", f.Name, closeErr)
		}

		outPath := filepath.Join(destDir, filepath.Base(f.Name))
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", outPath, err)
		}

		payloads[f.Name] = data
	}

	return payloads, nil
}

// queryGet performs a context-aware GET and returns the response body,
// erroring on any status other than 200 OK rather than swallowing it.
func queryGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
