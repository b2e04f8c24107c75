// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/frontierzdd/frontier/zdd"
)

func newCoverCmd() *cobra.Command {
	var f specFlags
	var limit int
	cmd := &cobra.Command{
		Use:   "cover <graph-file>",
		Short: "Enumerate VertexSetCover vertex selections of a graph, smallest first (edge coverage and connectivity are not checked)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.kind = "cover"
			dd, _, err := buildAndReduce(args[0], f)
			if err != nil {
				return err
			}
			return printCovers(cmd, args[0], f, dd, limit)
		},
	}
	addSpecFlags(cmd, &f)
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of covers to print (0 for unlimited)")
	return cmd
}

// printCovers enumerates the accepted paths of a VertexSetCover diagram
// and prints the selected vertex ids, smallest cover first. Levels in
// the "after" item sequence interleave vertex and edge items, so only
// levels whose item is a vertex item are translated into vertex ids.
func printCovers(cmd *cobra.Command, path string, f specFlags, dd *zdd.DD, limit int) error {
	_, g, err := buildHybridSpec(path, f)
	if err != nil {
		return err
	}

	vertexLevel := map[int]int{} // level -> vertex id, for "after"-sequence vertex items
	for i := 0; i < g.NumI(); i++ {
		it := g.ItemAf(i)
		if it.IsVertex {
			vertexLevel[g.NumI()-i] = it.V
		}
	}

	var covers [][]int
	err = zdd.EnumeratePaths(dd, func(selected []int) error {
		var cover []int
		for _, lvl := range selected {
			if v, ok := vertexLevel[lvl]; ok {
				cover = append(cover, v)
			}
		}
		sort.Ints(cover)
		covers = append(covers, cover)
		return nil
	})
	if err != nil {
		return err
	}
	sort.Slice(covers, func(i, j int) bool { return len(covers[i]) < len(covers[j]) })

	out := cmd.OutOrStdout()
	n := len(covers)
	if limit > 0 && n > limit {
		n = limit
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(out, "size %d: %v\n", len(covers[i]), covers[i])
	}
	if limit > 0 && len(covers) > limit {
		fmt.Fprintf(out, "... %d more covers omitted\n", len(covers)-limit)
	}
	return nil
}
