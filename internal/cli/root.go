// Package cli implements the basegen command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	appName    = "basegen"
	appVersion = "0.1.0"
)

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Test-fixture toolkit for the base compiler",
		Long: appName + ` generates randomized, syntactically valid base programs for
fuzz-testing a base compiler, and grades the compiler's diagnostic log
against annotated expectation files.`,
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newOpTestsCmd())
	cmd.AddCommand(newCorpusCmd())
	return cmd
}

// Execute runs the root command, reporting failure through the exit code.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
