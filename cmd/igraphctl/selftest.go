// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/igraphgo/attr"
	"github.com/katalvlaran/igraphgo/igraph"
)

func newSelftestCmd() *cobra.Command {
	var n, m int
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Build a random graph, attach attributes and simplify it",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			start := time.Now()

			g, err := igraph.Random(cmd.Context(), n, m, igraph.WithLoops())
			if err != nil {
				return err
			}
			defer g.Close()
			fmt.Fprintf(out, "random graph:   %s vertices, %s edges\n",
				humanize.Comma(int64(g.VertexCount())), humanize.Comma(int64(g.EdgeCount())))

			es, err := g.Edges()
			if err != nil {
				return err
			}
			weights := make([]float64, g.EdgeCount())
			for i := range weights {
				weights[i] = 1
			}
			if err := es.Set("weight", weights); err != nil {
				return err
			}
			if err := g.Simplify(attr.NewSpec(attr.Use(attr.Sum))); err != nil {
				return err
			}
			fmt.Fprintf(out, "simplified:     %s edges\n", humanize.Comma(int64(g.EdgeCount())))

			avg, err := g.AveragePathLength(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "mean distance:  %s\n", humanize.FtoaWithDigits(avg, 3))
			fmt.Fprintf(out, "finished:       %s\n", humanize.RelTime(start, time.Now(), "ago", "from now"))
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "vertices", 1000, "number of vertices")
	cmd.Flags().IntVar(&m, "edges", 5000, "number of edges")
	return cmd
}
