package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newEntitiesCmd())
}

func newEntitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entities <gms> <buf>",
		Short: "Dump the geometry-entity table",
		Long: `The entities command decodes the geometry-entity table and lists one
line per record: index, name (indented by depth), type hash, instance id,
and parent index.

Example:
  gmsctl entities M01.gms M01.buf`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntities(args)
		},
	}
}

func runEntities(args []string) error {
	objects, err := loadObjects(args[0], args[1])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "IDX\tNAME\tTYPE\tINSTANCE\tPARENT")
	for i, o := range objects {
		e := o.Entity()
		parent := fmt.Sprintf("%d", e.ParentIndex())
		if e.IsRoot() {
			parent = "-"
		}
		fmt.Fprintf(w, "%d\t%s%s\t0x%08X\t0x%08X\t%s\n",
			i, strings.Repeat("  ", int(e.DepthLevel())), e.Name(),
			e.TypeID(), e.InstanceID(), parent)
	}
	return w.Flush()
}
