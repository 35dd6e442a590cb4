package cli

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkpro118/basegen/internal/gen"
)

func newOpTestsCmd() *cobra.Command {
	var (
		seed       int64
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "optests",
		Short: "Emit the exhaustive operator/operand-kind test matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			g := gen.New(seed)

			var sb strings.Builder
			for _, c := range g.OperatorTests() {
				sb.WriteString(c.Banner())
				sb.WriteString("\n")
				sb.WriteString(c.Program)
				sb.WriteString("\n\n")
			}

			if outputPath == "" {
				cmd.Print(sb.String())
				return nil
			}
			return os.WriteFile(outputPath, []byte(sb.String()), 0o644)
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "seed for deterministic generation")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the bundle to a file")
	return cmd
}
