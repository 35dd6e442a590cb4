package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkpro118/basegen/internal/diaglog"
	"github.com/mkpro118/basegen/internal/expect"
	"github.com/mkpro118/basegen/internal/grade"
)

func newCheckCmd() *cobra.Command {
	var (
		logPath      string
		expectPath   string
		taxonomyPath string
		linesOnly    bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Grade a compiler diagnostic log against an annotated expectation file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var log *diaglog.Log
			var err error
			if logPath == "-" {
				log, err = diaglog.Parse(cmd.InOrStdin())
			} else {
				log, err = diaglog.ParseFile(logPath)
			}
			if err != nil {
				return err
			}
			for _, line := range log.Malformed {
				cmd.PrintErrf("warning: unparseable ERROR line: %s\n", line)
			}

			var report *grade.Report
			if linesOnly {
				f, err := os.Open(expectPath)
				if err != nil {
					return fmt.Errorf("opening expectation file: %w", err)
				}
				marked, err := expect.MarkedLines(f)
				f.Close()
				if err != nil {
					return err
				}
				report = grade.DiffLines(marked, log)
			} else {
				tax := expect.DefaultTaxonomy()
				if taxonomyPath != "" {
					tax, err = expect.LoadTaxonomy(taxonomyPath)
					if err != nil {
						return err
					}
				}
				expected, err := expect.ParseFile(expectPath, tax)
				if err != nil {
					return err
				}
				report = grade.Diff(expected, log)
			}

			report.Render(cmd.OutOrStdout())
			if !report.Passed() {
				return fmt.Errorf("diagnostics did not match expectations")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&logPath, "log", "l", "-", "diagnostic log file, - for stdin")
	cmd.Flags().StringVarP(&expectPath, "expect", "e", "", "annotated expectation file")
	cmd.Flags().StringVar(&taxonomyPath, "taxonomy", "", "YAML error-code taxonomy override")
	cmd.Flags().BoolVar(&linesOnly, "lines-only", false, "grade erroring line sets, ignore messages")
	_ = cmd.MarkFlagRequired("expect")
	return cmd
}
