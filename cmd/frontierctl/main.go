// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command frontierctl drives the frontier-based ZDD construction engine
// from the command line: build a diagram from a graph file and a spec
// selection, dump it in one of a few interchange formats, walk a
// directory of graphs in batch, enumerate the vertex sets a
// VertexSetCover spec accepts, or serve a
// read-only inspection endpoint over an already-built diagram.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "frontierctl",
		Short: "Build, inspect, and serve frontier-based ZDDs over graphs",
	}
	root.AddCommand(newBuildCmd())
	root.AddCommand(newDumpCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newCoverCmd())
	root.AddCommand(newServeCmd())
	return root
}

// addSpecFlags wires the flags every spec-consuming subcommand shares
// onto cmd's flag set, writing into f.
func addSpecFlags(cmd *cobra.Command, f *specFlags) {
	fl := cmd.Flags()
	fl.StringVar(&f.kind, "spec", "ccs", "spec family: ccs, vig, vcut, pac, power, dc, ecnt, vcnt, cover, vc")
	fl.StringVar(&f.mode, "mode", "", "ccs/vig mode: connected, forest, or tree")
	fl.StringVar(&f.ordering, "ordering", "bfs", "item ordering: as-is, dfs, bfs, greedy")
	fl.IntVar(&f.s, "s", -1, "pac source vertex (-1 for a cycle query)")
	fl.IntVar(&f.t, "t", -1, "pac target vertex (-1 for a cycle query)")
	fl.StringVar(&f.constraint, "constraint", "", "cardinality constraint, \"lo:hi\" or a single value")
	fl.StringVar(&f.terminals, "terminals", "", "comma-separated Steiner terminal vertex ids (ccs only; select set for vc)")
	fl.BoolVar(&f.useCutDC, "cut-dc", false, "enable range-count pruning (dc only)")
	fl.BoolVar(&f.vertexVar, "vertex-var", false, "route ccs/vig/vcut/pac through their HybridGraph vertex-item variants")
	fl.BoolVar(&f.noIsolate, "no-isolate", false, "reject isolated, edge-less vertices (vig --vertex-var only)")
	fl.StringVar(&f.nonSelect, "non-select", "", "comma-separated vertex ids that must be left (vc only)")
}
