// SPDX-License-Identifier: MIT
// File: root.go
// Role: cobra wiring: global flags, configuration and logger set-up shared by
//       every subcommand.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mgraph/cluster"
	"github.com/katalvlaran/mgraph/internal/config"
	"github.com/katalvlaran/mgraph/internal/logging"
	"github.com/katalvlaran/mgraph/shell"
)

// globalFlags are the persistent flags of the root command.
type globalFlags struct {
	configFile string
	logLevel   string
	plain      bool
	verbose    bool
}

// app is the state shared by subcommands once PersistentPreRunE has run.
type app struct {
	flags  globalFlags
	cfg    *config.Config
	log    *zap.Logger
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// run executes the CLI and returns the process exit status.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{in: in, out: out, errOut: errOut}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if a.log != nil {
		_ = a.log.Sync()
	}
	code := exitCode(err)
	if code != ExitSuccess {
		fmt.Fprintln(errOut, "mgraph:", err)
	}

	return code
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "mgraph",
		Short: "In-memory multi-graph shell",
		Long: `mgraph stores nodes and parallel edges with values, groups them into
clusters that can be isolated as a working view, answers neighbour and
path queries and imports CSV adjacency matrices.

Run without a subcommand to start the interactive shell.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runREPL,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErr(err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configFile, "config", "", "path to a YAML config file")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug|info|warn|error|off")
	pf.BoolVar(&a.flags.plain, "plain", false, "disable styled output")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		newREPLCmd(a),
		newExecCmd(a),
		newImportCmd(a),
		newGenCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads the configuration, applies flags, validates and builds the
// logger. Failures are usage errors (exit status 2).
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flags.configFile)
	if err != nil {
		return usageErr(err)
	}
	if a.flags.verbose {
		cfg.Log.Level = "debug"
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if cmd.Flags().Changed("plain") {
		cfg.Shell.Plain = a.flags.plain
	}
	if err := config.Validate(cfg); err != nil {
		return usageErr(err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return usageErr(err)
	}
	a.cfg, a.log = cfg, logger
	a.log.Debug("config loaded",
		zap.String("command", cmd.Name()),
		zap.String("file", a.flags.configFile),
		zap.String("log_level", cfg.Log.Level),
		zap.Int("max_paths", cfg.Shell.MaxPaths),
	)

	return nil
}

// newShell builds a shell over a fresh registry configured from a.cfg.
func (a *app) newShell() *shell.Shell {
	reg := cluster.New(cluster.WithGlobalName(a.cfg.Shell.GlobalName))

	return shell.New(
		shell.WithRegistry(reg),
		shell.WithLogger(a.log),
		shell.WithMaxPaths(a.cfg.Shell.MaxPaths),
	)
}

// usageArgs turns positional-argument failures into usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return usageErr(check(cmd, args))
	}
}
