// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"github.com/frontierzdd/frontier/zdd"
)

func newDumpCmd() *cobra.Command {
	var f specFlags
	var format, output string
	var useGzip bool
	cmd := &cobra.Command{
		Use:   "dump <graph-file>",
		Short: "Build a ZDD and write it in the sapporo, dot, or matrix interchange format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dd, _, err := buildAndReduce(args[0], f)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				out, err := os.Create(output)
				if err != nil {
					return err
				}
				defer out.Close()
				w = out
			}
			if useGzip {
				gz := gzip.NewWriter(w)
				defer gz.Close()
				w = gz
			}

			return dumpFormat(w, format, dd)
		},
	}
	addSpecFlags(cmd, &f)
	cmd.Flags().StringVar(&format, "format", "sapporo", "dump format: sapporo, dot, or matrix")
	cmd.Flags().StringVar(&output, "output", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&useGzip, "gzip", false, "gzip-compress the output")
	return cmd
}

func dumpFormat(w io.Writer, format string, dd *zdd.DD) error {
	switch format {
	case "sapporo", "":
		return zdd.DumpSapporo(w, dd)
	case "dot":
		return zdd.DumpDOT(w, dd)
	case "matrix":
		return zdd.DumpMatrix(w, dd)
	default:
		return fmt.Errorf("unknown dump format %q (want sapporo, dot, or matrix)", format)
	}
}
