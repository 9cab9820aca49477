package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jawae/vtkprops/internal/ingest"
	"github.com/jawae/vtkprops/internal/logging"
	"github.com/jawae/vtkprops/internal/properties"
	"github.com/jawae/vtkprops/internal/report"
)

var synthCmd = &cobra.Command{
	Use:   "synth <file.json>",
	Short: "Synthesize a property model from a JSON class description",
	Args:  cobra.ExactArgs(1),
	RunE:  runSynth,
}

func runSynth(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("synth: open %s: %w", args[0], err)
	}
	defer f.Close()

	class, err := ingest.Load(f)
	if err != nil {
		return fmt.Errorf("synth: %w", err)
	}

	cp, err := properties.Build(class.Methods)
	if err != nil {
		return fmt.Errorf("synth: %w", err)
	}

	logSkippedMethods(class, cp)

	fmt.Println(report.Render(class.Name, cp))
	return nil
}

// logSkippedMethods reports at debug level every method the returned
// ClassProperties left unassigned (PropertyOf == -1). It logs one message
// per such method and does not tell apart the three silent-drop categories
// the core documents (structural rejection, shape rejection, match
// failure). This is diagnostic sugar layered on top of the pure core, not a
// change to its contract: the core itself never logs.
func logSkippedMethods(class ingest.Class, cp properties.ClassProperties) {
	for i, fn := range class.Methods {
		if cp.PropertyOf[i] == -1 {
			logging.Get().Debug("synth: method did not join any property", zap.String("name", fn.Name))
		}
	}
}
