// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/spf13/cobra"

	"github.com/frontierzdd/frontier/zdd"
)

func newBatchCmd() *cobra.Command {
	var f specFlags
	cmd := &cobra.Command{
		Use:   "batch <directory>",
		Short: "Build the same spec over every graph file in a directory, printing one run per file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0], f)
		},
	}
	addSpecFlags(cmd, &f)
	return cmd
}

func runBatch(cmd *cobra.Command, dir string, f specFlags) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	out := cmd.OutOrStdout()
	for _, path := range paths {
		run := petname.Generate(2, "-")
		dd, stats, err := buildAndReduce(path, f)
		if err != nil {
			fmt.Fprintf(out, "[%s] %s: FAILED: %s\n", run, path, err)
			continue
		}
		fmt.Fprintf(out, "[%s] %s: V=%d E=%d nodes=%d cardinality=%s\n",
			run, path, stats.NumV, stats.NumE, dd.NodeCount(), zdd.Cardinality(dd).String())
	}
	return nil
}
