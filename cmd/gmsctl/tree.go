package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reglacier/gmskit/gms"
	"github.com/reglacier/gmskit/internal/mmfile"
	"github.com/reglacier/gmskit/prp"
	"github.com/reglacier/gmskit/scene"
	"github.com/reglacier/gmskit/scene/printer"
)

var (
	treeDepth       int
	treeASCII       bool
	treeNoCtrl      bool
	treeTypesDBPath string
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().StringVar(&treeTypesDBPath, "types", "", "Type database file (YAML)")
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeASCII, "ascii", false, "ASCII-only branch characters")
	cmd.Flags().BoolVar(&treeNoCtrl, "no-controllers", false, "Hide controllers")
	_ = cmd.MarkFlagRequired("types")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <gms> <buf> <prp>",
		Short: "Load a scene and display its object tree",
		Long: `The tree command decodes the geometry-entity table and the property
instruction stream, loads the scene against the type database, and prints
the resulting object tree.

Example:
  gmsctl tree M01.gms M01.buf M01.prp --types glacier-types.yaml
  gmsctl tree M01.gms M01.buf M01.prp --types glacier-types.yaml --depth 2 --ascii`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
}

func runTree(args []string) error {
	reg, err := loadRegistry(treeTypesDBPath)
	if err != nil {
		return err
	}

	objects, err := loadObjects(args[0], args[1])
	if err != nil {
		return err
	}

	printVerbose("Opening instruction stream: %s\n", args[2])
	prpData, unmapPRP, err := mmfile.Map(args[2])
	if err != nil {
		return fmt.Errorf("open instruction stream: %w", err)
	}
	defer unmapPRP()

	instructions, err := prp.Decode(prpData)
	if err != nil {
		return err
	}
	printVerbose("Decoded %d instructions\n", len(instructions))

	loader := scene.NewLoader(reg)
	if err := loader.Load(objects, prp.NewCursor(instructions)); err != nil {
		return err
	}
	if len(objects) == 0 {
		return nil
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = treeDepth
	opts.ASCII = treeASCII
	opts.ShowControllers = !treeNoCtrl
	opts.Color = !noColor
	return printer.New(os.Stdout, opts).PrintTree(objects[0])
}

// loadObjects decodes the entity table and wraps it in unlinked scene
// objects.
func loadObjects(gmsPath, bufPath string) ([]*scene.Object, error) {
	printVerbose("Opening entity table: %s\n", gmsPath)
	meta, unmapMeta, err := mmfile.Map(gmsPath)
	if err != nil {
		return nil, fmt.Errorf("open entity table: %w", err)
	}
	defer unmapMeta()

	printVerbose("Opening string buffer: %s\n", bufPath)
	strs, unmapStrs, err := mmfile.Map(bufPath)
	if err != nil {
		return nil, fmt.Errorf("open string buffer: %w", err)
	}
	defer unmapStrs()

	entities, err := gms.DecodeEntities(meta, strs)
	if err != nil {
		return nil, err
	}
	printVerbose("Decoded %d entities\n", len(entities))
	return scene.ObjectsFromEntities(entities), nil
}
