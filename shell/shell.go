// SPDX-License-Identifier: MIT
// File: shell.go
// Role: Command dispatcher: one raw line -> tokens -> registry/graph call ->
//       Result. Rendering and the read loop live in render.go and repl.go.
//
// Routing:
//   - "<cluster> node|edge ..." targets that cluster's graph explicitly.
//   - Unqualified node/edge commands target Registry.Active().

package shell

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/mgraph/cluster"
	"github.com/katalvlaran/mgraph/core"
)

// Result is the outcome of one successful command.
type Result struct {
	// Text is the human-readable output, possibly multi-line.
	Text string

	// Paths holds the node sequences produced by p, wp and allp.
	Paths [][]core.ID

	// View is the working view after the command ran.
	View string

	// Elapsed is the dispatch time.
	Elapsed time.Duration
}

// Option configures a Shell.
type Option func(*Shell)

// WithRegistry runs commands against reg instead of a fresh registry.
func WithRegistry(reg *cluster.Registry) Option {
	return func(s *Shell) {
		if reg != nil {
			s.reg = reg
		}
	}
}

// WithLogger sets the debug logger (default zap.NewNop()).
func WithLogger(l *zap.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxPaths caps the paths listed by allp; n <= 0 lists all.
func WithMaxPaths(n int) Option {
	return func(s *Shell) {
		if n > 0 {
			s.maxPaths = n
		}
	}
}

// WithSessionID overrides the generated session id used in log entries.
func WithSessionID(id string) Option {
	return func(s *Shell) {
		if id != "" {
			s.session = id
		}
	}
}

// Shell executes command lines. It is not safe for concurrent use.
type Shell struct {
	reg      *cluster.Registry
	log      *zap.Logger
	session  string
	maxPaths int
}

// New returns a Shell over an empty registry unless WithRegistry is given.
func New(opts ...Option) *Shell {
	s := &Shell{
		log:     zap.NewNop(),
		session: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.reg == nil {
		s.reg = cluster.New()
	}
	s.log = s.log.With(zap.String("session", s.session))

	return s
}

// Registry exposes the registry the shell mutates.
func (s *Shell) Registry() *cluster.Registry {
	return s.reg
}

// Session returns the session id.
func (s *Shell) Session() string {
	return s.session
}

// Exec runs one command line. Blank lines and lines starting with '#' are
// no-ops. Engine failures come back unchanged so callers can match them
// with errors.Is against the core kinds; exit commands return ErrExit.
func (s *Shell) Exec(line string) (Result, error) {
	start := time.Now()
	toks := strings.Fields(line)
	if len(toks) == 0 || strings.HasPrefix(toks[0], "#") {
		return Result{View: s.reg.View()}, nil
	}

	res, err := s.dispatch(toks)
	res.View = s.reg.View()
	res.Elapsed = time.Since(start)

	fields := []zap.Field{
		zap.String("cmd", strings.Join(toks[:min(len(toks), 2)], " ")),
		zap.String("view", res.View),
		zap.Duration("elapsed", res.Elapsed),
	}
	if err != nil {
		if kind := core.KindOf(err); kind != nil {
			fields = append(fields, zap.String("kind", kind.Error()))
		}
		fields = append(fields, zap.Error(err))
	}
	s.log.Debug("command", fields...)

	return res, err
}

// dispatch routes a tokenized line.
func (s *Shell) dispatch(toks []string) (Result, error) {
	head := strings.ToLower(toks[0])
	switch head {
	case "help", "h", "?":
		return Result{Text: helpText}, nil
	case "exit", "quit", "q":
		return Result{}, ErrExit
	}

	cat := category(head)
	if cat == "" && len(toks) >= 2 {
		if scoped := category(strings.ToLower(toks[1])); scoped == catNode || scoped == catEdge {
			g, err := s.reg.Resolve(toks[0])
			if err != nil {
				return Result{}, err
			}
			if scoped == catNode {
				return s.node(g, toks[2:])
			}
			return s.edge(g, toks[2:])
		}
	}

	switch cat {
	case catNode:
		return s.node(s.reg.Active(), toks[1:])
	case catEdge:
		return s.edge(s.reg.Active(), toks[1:])
	case catCluster:
		return s.cluster(toks[1:])
	}

	return Result{}, unknownError(toks[0])
}

// Command categories.
const (
	catNode    = "node"
	catEdge    = "edge"
	catCluster = "cluster"
)

// category resolves a category word or alias; "" when unknown.
func category(word string) string {
	switch word {
	case "node", "n":
		return catNode
	case "edge", "e":
		return catEdge
	case "cluster", "c":
		return catCluster
	}

	return ""
}

// subcommand lowercases a sub-command word and folds its aliases.
func subcommand(word string) string {
	w := strings.ToLower(word)
	switch w {
	case "rmb", "remove", "rm":
		return "rmv"
	case "neigh", "neighbors", "neighbours":
		return "nbr"
	case "add":
		return "new"
	}

	return w
}

// joinValue builds a value from the remaining tokens.
func joinValue(toks []string) core.Value {
	return core.Value(strings.Join(toks, " "))
}
