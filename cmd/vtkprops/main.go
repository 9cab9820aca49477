// Command vtkprops synthesizes a property model of a C++ class from its
// method signatures: it can scan headers, ingest hand-authored JSON class
// descriptions, emit Go accessor stubs from the result, and fetch a
// versioned bundle of naming-convention test fixtures.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jawae/vtkprops/internal/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "vtkprops",
	Short: "Infer C++ property models from method signatures",
	Long: `vtkprops synthesizes a property model of a C++ class from the list of
methods it exposes: it groups methods by the logical attribute they access,
classifies each method's role, and reports the resulting properties.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(verbose); err != nil {
			return fmt.Errorf("vtkprops: init logging: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(synthCmd, scanCmd, emitCmd, fetchCmd, watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
