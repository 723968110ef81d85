package cmd

import (
	"fmt"

	"go-netcfg/internal/types"
)

// reportOutcome turns an apply outcome into the command's exit condition,
// printing the diagnostic and remediation hint on failure.
func reportOutcome(outcome types.ApplyOutcome) error {
	if outcome.Success {
		fmt.Println("Configuration applied")
		return nil
	}
	if outcome.Hint != "" {
		fmt.Printf("Hint: %s\n", outcome.Hint)
	}
	return fmt.Errorf("apply failed (%s): %s", outcome.Kind, outcome.Diagnostic)
}
