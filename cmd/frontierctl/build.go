// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/frontierzdd/frontier/zdd"
)

func newBuildCmd() *cobra.Command {
	var f specFlags
	cmd := &cobra.Command{
		Use:   "build <graph-file>",
		Short: "Build and reduce a ZDD from a graph file and a spec selection, printing its stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dd, stats, err := buildAndReduce(args[0], f)
			if err != nil {
				return err
			}
			printStats(cmd, args[0], stats, dd)
			return nil
		},
	}
	addSpecFlags(cmd, &f)
	return cmd
}

// buildAndReduce runs the full build+reduce pipeline, the one path every
// spec-consuming subcommand funnels through.
func buildAndReduce(path string, f specFlags) (*zdd.DD, graphStats, error) {
	spec, stats, err := buildAny(path, f)
	if err != nil {
		return nil, graphStats{}, err
	}
	u, err := zdd.NewBuilder(spec).Build()
	if err != nil {
		return nil, graphStats{}, err
	}
	return zdd.Reduce(u), stats, nil
}

// printStats is the direct descendant of stdio.go's PrintStats: a short
// textual summary of the graph, the reduced diagram's shape, and its
// cardinality, with large counts scaled for readability.
func printStats(cmd *cobra.Command, path string, stats graphStats, dd *zdd.DD) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "graph:       %s\n", path)
	fmt.Fprintf(out, "vertices:    %s\n", humanize.Comma(int64(stats.NumV)))
	fmt.Fprintf(out, "edges:       %s\n", humanize.Comma(int64(stats.NumE)))
	fmt.Fprintln(out, "==============")
	fmt.Fprintf(out, "top level:   %d\n", dd.Top)
	fmt.Fprintf(out, "nodes:       %s\n", humanize.Comma(int64(dd.NodeCount())))
	fmt.Fprintf(out, "cardinality: %s\n", humanize.BigComma(zdd.Cardinality(dd)))
}
