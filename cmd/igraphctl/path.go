// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/igraphgo/igraph"
)

func newPathCmd() *cobra.Command {
	var (
		dims     []int
		from, to int
		method   string
		circular bool
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print a shortest path in a square lattice",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []igraph.Option
			if circular {
				opts = append(opts, igraph.Circular())
			}
			g, err := igraph.Lattice(dims, opts...)
			if err != nil {
				return err
			}
			defer g.Close()
			path, err := g.ShortestPath(cmd.Context(), from, to, igraph.WithMethod(method))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&dims, "dims", []int{4, 3}, "lattice dimension sizes")
	cmd.Flags().IntVar(&from, "from", 0, "source vertex")
	cmd.Flags().IntVar(&to, "to", 11, "target vertex")
	cmd.Flags().StringVar(&method, "method", igraph.MethodAuto, "auto, bfs, dijkstra or bellman_ford")
	cmd.Flags().BoolVar(&circular, "circular", false, "wrap every dimension")
	return cmd
}
