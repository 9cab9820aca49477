package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jawae/vtkprops/internal/fetch"
	"github.com/jawae/vtkprops/internal/logging"
)

var fetchDestDir string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the latest naming-convention fixture bundle",
	Args:  cobra.NoArgs,
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchDestDir, "dest", "testdata/fixtures", "directory to extract fixtures into")
}

func runFetch(cmd *cobra.Command, args []string) error {
	bundle, err := fetch.DownloadFixtures(cmd.Context(), fetchDestDir)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	logging.Get().Info("fetch: bundle downloaded",
		zap.String("version", bundle.Version), zap.Int("payloads", len(bundle.Payloads)))
	fmt.Printf("fetched fixture bundle %s (%d payload(s)) from %s\n", bundle.Version, len(bundle.Payloads), bundle.SourceURL)
	return nil
}
