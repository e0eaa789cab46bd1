// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mgraph/shell"
)

func newREPLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive shell (default)",
		Args:  usageArgs(cobra.NoArgs),
		RunE:  a.runREPL,
	}
}

// runREPL reads commands from stdin until exit, end of input or a signal.
func (a *app) runREPL(cmd *cobra.Command, _ []string) error {
	r := &shell.REPL{
		Shell:    a.newShell(),
		Renderer: shell.NewRenderer(a.cfg.Shell.Plain),
		Prompt:   a.cfg.Shell.Prompt,
		In:       a.in,
		Out:      a.out,
		Log:      a.log,
	}
	err := r.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
