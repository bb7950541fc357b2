package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/reglacier/gmskit/typedb"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "gmsctl",
	Short: "Inspect Glacier scene archives",
	Long: `gmsctl is a tool for inspecting Glacier engine scene archives.
It decodes geometry-entity tables, loads type databases, and reconstructs
full scene trees from the property instruction stream.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
	})
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printVerbose prints a message only when verbose mode is enabled.
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// loadRegistry builds a linked registry from a type database file.
func loadRegistry(path string) (*typedb.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open type database: %w", err)
	}
	defer f.Close()

	db, err := typedb.LoadDatabase(f)
	if err != nil {
		return nil, err
	}

	reg := typedb.NewRegistry()
	if err := typedb.RegisterBuiltins(reg); err != nil {
		return nil, err
	}
	if err := db.Register(reg); err != nil {
		return nil, err
	}
	if err := reg.LinkTypes(); err != nil {
		return nil, err
	}
	printVerbose("Loaded %d types from %s\n", reg.Len(), path)
	return reg, nil
}
