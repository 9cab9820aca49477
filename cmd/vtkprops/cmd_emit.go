package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jawae/vtkprops/internal/codegen"
	"github.com/jawae/vtkprops/internal/ingest"
	"github.com/jawae/vtkprops/internal/properties"
)

var (
	emitOutputPath string
	emitPackage    string
)

var emitCmd = &cobra.Command{
	Use:   "emit <file.json>",
	Short: "Emit Go accessor stubs for a synthesized property model",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmit,
}

func init() {
	emitCmd.Flags().StringVarP(&emitOutputPath, "output", "o", "", "output .go file (default: stdout)")
	emitCmd.Flags().StringVar(&emitPackage, "package", "pinvoke", "package name for the generated file")
}

func runEmit(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("emit: open %s: %w", args[0], err)
	}
	defer f.Close()

	class, err := ingest.Load(f)
	if err != nil {
		return fmt.Errorf("emit: %w", err)
	}

	cp, err := properties.Build(class.Methods)
	if err != nil {
		return fmt.Errorf("emit: %w", err)
	}

	out := cmd.OutOrStdout()
	if emitOutputPath != "" {
		outFile, err := os.Create(emitOutputPath)
		if err != nil {
			return fmt.Errorf("emit: create %s: %w", emitOutputPath, err)
		}
		defer outFile.Close()
		out = outFile
	}

	if err := codegen.EmitAccessors(out, emitPackage, cp.Properties); err != nil {
		return fmt.Errorf("emit: %w", err)
	}
	return nil
}
