// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mgraph/shell"
)

// errCommandsFailed reports that at least one exec command failed.
var errCommandsFailed = errors.New("command(s) failed")

func newExecCmd(a *app) *cobra.Command {
	var (
		script   string
		failFast bool
	)
	cmd := &cobra.Command{
		Use:   "exec [commands...]",
		Short: "Run shell commands non-interactively",
		Long: `Run each argument as one shell command, or every line of the file given
with -f ("-" reads stdin). Results go to stdout and failures to stderr.
The exit status is 1 when any command failed; --fail-fast stops at the
first failure. An exit command ends the run.`,
		Example: `  mgraph exec "node new 1 a" "node new 2 b" "edge new 1 2 e1 5" "node p 1 2"
  mgraph exec -f session.txt --fail-fast`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if script != "" {
				read, err := a.readScript(script)
				if err != nil {
					return err
				}
				lines = append(read, args...)
			}
			if len(lines) == 0 {
				return usageErr(errors.New("exec: no commands given"))
			}

			return a.execLines(lines, failFast)
		},
	}
	cmd.Flags().StringVarP(&script, "file", "f", "", "script with one command per line (- for stdin)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first failing command")

	return cmd
}

// execLines runs lines on one shell session.
func (a *app) execLines(lines []string, failFast bool) error {
	sh := a.newShell()
	render := shell.NewRenderer(a.cfg.Shell.Plain)

	failed := 0
	for n, line := range lines {
		res, err := sh.Exec(line)
		switch {
		case errors.Is(err, shell.ErrExit):
			a.log.Debug("exec stopped by exit", zap.Int("line", n+1))
			return a.execOutcome(failed)
		case err != nil:
			failed++
			fmt.Fprintln(a.errOut, render.Error(pkgerrors.WithMessagef(err, "line %d", n+1)))
			if failFast {
				return a.execOutcome(failed)
			}
		case res.Text != "":
			fmt.Fprintln(a.out, render.Result(res))
		}
	}

	return a.execOutcome(failed)
}

func (a *app) execOutcome(failed int) error {
	if failed == 0 {
		return nil
	}

	return fmt.Errorf("%d %w", failed, errCommandsFailed)
}

// readScript returns the lines of path, or of stdin for "-".
func (a *app) readScript(path string) ([]string, error) {
	var r io.Reader = a.in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "open script")
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, pkgerrors.Wrapf(err, "read script %s", path)
	}

	return lines, nil
}
