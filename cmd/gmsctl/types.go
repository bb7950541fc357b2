package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reglacier/gmskit/typedb"
)

func init() {
	rootCmd.AddCommand(newTypesCmd())
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types <yaml>",
		Short: "Load a type database and list its types",
		Long: `The types command loads and links a type database, then lists every
registered type with its short name, kind, and bound hashes. Linking
failures (unresolved parents, fields, or elements) are reported as errors,
which makes the command double as a database validator.

Example:
  gmsctl types glacier-types.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(args)
		},
	}
}

func runTypes(args []string) error {
	reg, err := loadRegistry(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSHORT\tKIND\tHASHES")
	reg.ForEach(func(t *typedb.Type) bool {
		hashes := ""
		for i, h := range t.Hashes() {
			if i > 0 {
				hashes += " "
			}
			hashes += fmt.Sprintf("0x%08X", h)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Name(), t.ShortName(), t.Kind(), hashes)
		return true
	})
	return w.Flush()
}
