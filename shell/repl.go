// SPDX-License-Identifier: MIT

package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// REPL reads command lines from In and writes rendered results to Out.
// A failing command is reported and the loop continues; only exit, end of
// input or context cancellation end it.
type REPL struct {
	Shell    *Shell
	Renderer *Renderer
	Prompt   string
	In       io.Reader
	Out      io.Writer
	Log      *zap.Logger
}

// Run drives the loop. It returns nil on exit or end of input and ctx.Err()
// when ctx is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("session started", zap.String("session", r.Shell.Session()))
	defer log.Info("session ended", zap.String("session", r.Shell.Session()))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(r.In)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	fmt.Fprintln(r.Out, r.Renderer.Header(r.Shell.Registry().View()))
	fmt.Fprintln(r.Out, "Type commands or 'help'.")
	for {
		fmt.Fprint(r.Out, r.Renderer.Prompt(r.Prompt, r.Shell.Registry().View()))

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.Out)
			return ctx.Err()
		case err := <-readErr:
			fmt.Fprintln(r.Out)
			return err
		case line = <-lines:
		}

		before := r.Shell.Registry().View()
		res, err := r.Shell.Exec(line)
		switch {
		case errors.Is(err, ErrExit):
			fmt.Fprintln(r.Out, "Exiting... Goodbye!")
			return nil
		case err != nil:
			fmt.Fprintln(r.Out, r.Renderer.Error(err))
			continue
		case res.Text == "":
			continue
		}
		if res.View != before {
			fmt.Fprintln(r.Out, r.Renderer.Header(res.View))
		}
		fmt.Fprintln(r.Out, r.Renderer.Result(res))
	}
}
