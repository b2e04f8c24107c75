// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/frontierzdd/frontier/httpapi"
)

func newServeCmd() *cobra.Command {
	var f specFlags
	var addr string
	cmd := &cobra.Command{
		Use:   "serve <graph-file>",
		Short: "Build a ZDD and serve a read-only inspection endpoint over it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dd, stats, err := buildAndReduce(args[0], f)
			if err != nil {
				return err
			}
			srv := httpapi.New(dd, args[0], stats.NumV, stats.NumE)
			fmt.Fprintf(cmd.OutOrStdout(), "serving %s on %s (/stats, /cardinality, /dump.sapporo, /dump.dot)\n", args[0], addr)
			return http.ListenAndServe(addr, srv)
		},
	}
	addSpecFlags(cmd, &f)
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "address to listen on")
	return cmd
}
