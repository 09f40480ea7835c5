// =============================================================================
// Payroll File Encoder - Check Command
// =============================================================================
//
// This file defines the 'check' command, which runs the structural checker
// over generated event XML files. The checker confirms a handful of
// mandatory substrings; it is a coarse sanity check before submission, not
// schema validation.
//
// COMMAND USAGE:
//   payfile check <file.xml> [file.xml ...]
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigrhx/payfile/internal/esocial"
)

// checkCmd represents the 'check' command.
var checkCmd = &cobra.Command{
	Use:   "check <file.xml> [file.xml ...]",
	Short: "Run the structural checker over generated event XML files",
	Long: `The check command inspects generated eSocial event documents for the
structural markers the receiving system requires: the XML declaration, the
eSocial namespace, the root element and the event identifier attribute.

A clean result does not guarantee acceptance; the receiving system performs
full schema validation on its side.`,

	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args)
	},
}

// init registers the check command.
func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck checks every named file and reports complaints. The command
// fails if any file has complaints, so it can gate a submission script.
func runCheck(paths []string) error {
	failed := 0

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		problems := esocial.Check(string(data))
		if len(problems) == 0 {
			fmt.Printf("%s: ok\n", path)
			continue
		}

		failed++
		for _, p := range problems {
			fmt.Printf("%s: %s\n", path, p)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed the structural check", failed, len(paths))
	}
	return nil
}
