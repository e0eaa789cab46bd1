// SPDX-License-Identifier: MIT

// Package shell is the command layer over the engine: it tokenizes command
// lines, resolves the target graph through a cluster.Registry, calls the
// core, bfs, dfs, dijkstra and matrix operations and formats the outcome.
//
// Shell.Exec runs one line and returns a Result or an error. Engine errors
// keep their core kind (errors.Is(err, core.ErrNotFound) and so on); grammar
// errors match ErrUsage; exit commands return ErrExit. REPL wraps Exec in an
// interactive loop, and Renderer styles the output with lipgloss or leaves
// it plain.
//
//	sh := shell.New()
//	_, _ = sh.Exec("node new 1 10")
//	_, _ = sh.Exec("node new 2 20")
//	_, _ = sh.Exec("edge new 1 2 e1 7")
//	res, _ := sh.Exec("node p 1 2") // res.Text == "[1, e1, 2]"
package shell
