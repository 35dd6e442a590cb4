package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkpro118/basegen/internal/corpus"
	"github.com/mkpro118/basegen/internal/gen"
)

// addOptionFlags binds the generator knobs shared by generate and batch.
func addOptionFlags(cmd *cobra.Command, opts *gen.Options) {
	cmd.Flags().IntVar(&opts.IdentLen, "ident-len", opts.IdentLen, "identifier length")
	cmd.Flags().IntVar(&opts.MaxExprDepth, "max-expr-depth", opts.MaxExprDepth, "limit expression tree depth")
	cmd.Flags().IntVar(&opts.MaxArgs, "max-args", opts.MaxArgs, "limit randomized call argument count")
	cmd.Flags().IntVar(&opts.MaxSectionCount, "max-section-count", opts.MaxSectionCount, "limit random declaration/statement counts")
	cmd.Flags().IntVar(&opts.MaxNestDepth, "max-nest-depth", opts.MaxNestDepth, "limit block nesting depth")
	cmd.Flags().Float64Var(&opts.ParenProb, "paren-prob", opts.ParenProb, "probability of parenthesizing subexpressions")
}

func newGenerateCmd() *cobra.Command {
	opts := gen.Defaults()
	var (
		seed       int64
		stmts      int
		outputPath string
		corpusPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one randomized base program",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			g := gen.NewWithOptions(seed, opts)
			program := g.WrapStatement(g.Statements(stmts))

			if corpusPath != "" {
				store, err := corpus.Open(corpusPath)
				if err != nil {
					return err
				}
				defer store.Close()
				id, err := store.Save(cmd.Context(), corpus.Fixture{
					Seed:    seed,
					Profile: "generate",
					Program: program,
				})
				if err != nil {
					return err
				}
				cmd.PrintErrf("saved fixture %s (seed %d)\n", id, seed)
			}

			if outputPath == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), program)
				return err
			}
			return os.WriteFile(outputPath, []byte(program+"\n"), 0o644)
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "seed for deterministic generation")
	cmd.Flags().IntVarP(&stmts, "stmts", "n", 1, "number of statements in the function body")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the program to a file")
	cmd.Flags().StringVar(&corpusPath, "save", "", "also record the program in this corpus database")
	addOptionFlags(cmd, &opts)
	return cmd
}
