// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mgraph/builder"
	"github.com/katalvlaran/mgraph/matrix"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		size       int
		weighted   bool
		minW, maxW int
		undirected bool
		seed       int64
		ids        string
		output     string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a random adjacency matrix as CSV",
		Long: `Generate a size x size adjacency matrix with a zero diagonal. Cells are
0/1, or integers in [min, max) with --weighted. --undirected averages each
cell with its mirror. Without --seed the current time seeds the generator.`,
		Example: `  mgraph gen --size 10 --weighted --min 1 --max 9 --undirected --seed 7 -o g.csv
  mgraph import g.csv G`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			idFn, err := builder.IDScheme(ids)
			if err != nil {
				return usageErr(err)
			}
			opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithIDScheme(idFn)}
			if weighted {
				opts = append(opts, builder.WithWeights(minW, maxW))
			}
			if undirected {
				opts = append(opts, builder.WithUndirected())
			}

			grid, err := builder.RandomAdjacency(size, opts...)
			if err != nil {
				return usageErr(err)
			}

			var w io.Writer = a.out
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return errors.Wrap(err, "create output")
				}
				defer f.Close()
				w = f
			}
			if err := matrix.WriteGrid(w, grid); err != nil {
				return errors.Wrap(err, "write matrix")
			}
			a.log.Debug("generated matrix",
				zap.Int("size", size),
				zap.Int64("seed", seed),
				zap.Bool("weighted", weighted),
				zap.Bool("undirected", undirected),
				zap.String("output", output),
			)

			return nil
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&size, "size", "n", 10, "number of nodes")
	flags.BoolVar(&weighted, "weighted", false, "integer weights instead of 0/1")
	flags.IntVar(&minW, "min", 0, "smallest weight (inclusive)")
	flags.IntVar(&maxW, "max", 11, "largest weight (exclusive)")
	flags.BoolVar(&undirected, "undirected", false, "symmetric matrix")
	flags.Int64Var(&seed, "seed", 0, "random seed")
	flags.StringVar(&ids, "ids", "one", `node ids: one|zero|excel|<prefix>#`)
	flags.StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
