package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jawae/vtkprops/internal/headerscan"
	"github.com/jawae/vtkprops/internal/logging"
	"github.com/jawae/vtkprops/internal/properties"
	"github.com/jawae/vtkprops/internal/report"
)

var scanCmd = &cobra.Command{
	Use:   "scan <header.h...>",
	Short: "Best-effort scan of C++ headers into a property model",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	results, err := headerscan.Scan(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	for _, r := range results {
		for _, skip := range r.Skipped {
			logging.Get().Debug("scan: skipped signature",
				zap.String("file", r.FilePath), zap.String("signature", skip.Signature), zap.String("reason", skip.Reason))
		}

		cp, err := properties.Build(r.Functions)
		if err != nil {
			return fmt.Errorf("scan: %s: %w", r.FilePath, err)
		}
		fmt.Println(report.Render(r.FilePath, cp))
	}
	return nil
}
