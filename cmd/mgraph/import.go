// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mgraph/core"
	"github.com/katalvlaran/mgraph/matrix"
	"github.com/katalvlaran/mgraph/shell"
)

func newImportCmd(a *app) *cobra.Command {
	var zeroEdges bool
	cmd := &cobra.Command{
		Use:   "import <file.csv> <name>",
		Short: "Import a CSV adjacency matrix and print its edges",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, name := args[0], args[1]
			var opts []matrix.Option
			if zeroEdges {
				opts = append(opts, matrix.WithZeroEdges())
			}

			reg := a.newShell().Registry()
			c, sum, err := reg.ImportFile(name, core.Value("CSV:"+path), path, opts...)
			if err != nil {
				return err
			}
			a.log.Info("imported",
				zap.String("file", path),
				zap.String("cluster", name),
				zap.Int("nodes", sum.Nodes),
				zap.Int("edges", sum.Edges),
				zap.Int("skipped", sum.Skipped),
			)

			fmt.Fprintln(a.out, sum.String()+".")
			fmt.Fprintln(a.out, shell.EdgeList(c.Graph))

			return nil
		},
	}
	cmd.Flags().BoolVar(&zeroEdges, "zero-edges", false, "create edges for numeric zero cells too")

	return cmd
}
