package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mkpro118/basegen/internal/corpus"
)

func newCorpusCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Inspect a fixture corpus database",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "corpus.db", "corpus database path")

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := corpus.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			fixtures, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ID", "Seed", "Profile", "Verdict", "Created"})
			for _, f := range fixtures {
				t.AppendRow(table.Row{f.ID, f.Seed, f.Profile, f.Verdict, f.CreatedAt.Format("2006-01-02 15:04:05")})
			}
			t.Render()
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored fixture program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := corpus.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			f, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.Program)
			return nil
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}
