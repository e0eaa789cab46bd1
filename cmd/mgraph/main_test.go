// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mgraph/matrix"
)

// cli runs the command line with stdin and returns status, stdout, stderr.
func cli(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestVersion(t *testing.T) {
	code, out, _ := cli(t, "", "version")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "mgraph dev\n", out)
}

func TestExec_Transcript(t *testing.T) {
	code, out, errOut := cli(t, "", "--plain", "exec",
		"node new 1 10", "node new 2 20", "edge new 1 2 e1 7",
		"node p 1 2", "node rmv 1", "edge get e1")

	assert.Equal(t, ExitError, code)
	assert.Contains(t, out, "[1, e1, 2]\n")
	assert.Contains(t, out, "Node 1 removed.")
	assert.Contains(t, errOut, "error: line 6: Edge: edge e1 not found in _all_")
	assert.Contains(t, errOut, "1 command(s) failed")
}

func TestExec_FailFastAndExit(t *testing.T) {
	code, out, _ := cli(t, "", "--plain", "exec", "--fail-fast", "node get 1", "node new 1 a")
	assert.Equal(t, ExitError, code)
	assert.NotContains(t, out, "Node 1 added.")

	code, out, _ = cli(t, "", "--plain", "exec", "node new 1 a", "exit", "node get 9")
	assert.Equal(t, ExitSuccess, code, "commands after exit do not run")
	assert.Contains(t, out, "Node 1 added.")
}

func TestExec_Script(t *testing.T) {
	script := writeTemp(t, "s.txt", "# build a triangle\nnode new a 1\nnode new b 2\nnode new c 3\n"+
		"edge new a b auto 1\nedge new b c auto 1\nedge new a c auto 1\nnode allp a c\n")

	code, out, errOut := cli(t, "", "--plain", "exec", "-f", script)
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Contains(t, out, "1 : [a, a_c_1, c]\n2 : [a, a_b_1, b, b_c_1, c]")

	code, out, _ = cli(t, "node new x 1\nnode list\n", "--plain", "exec", "-f", "-")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "Node x: 1")

	code, _, _ = cli(t, "", "exec")
	assert.Equal(t, ExitUsage, code)

	code, _, _ = cli(t, "", "exec", "-f", filepath.Join(t.TempDir(), "absent"))
	assert.Equal(t, ExitError, code)
}

func TestImport(t *testing.T) {
	path := writeTemp(t, "abc.csv", ",A,B,C\nA,,5,2\nB,,,0\nC,,,\n")

	code, out, errOut := cli(t, "", "import", path, "M")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Contains(t, out, "imported 3 node(s) and 2 edge(s) into M.")
	assert.Contains(t, out, "A -> B: [ A_B_1: 5 ]")

	code, out, _ = cli(t, "", "import", "--zero-edges", path, "M")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "and 3 edge(s)")

	bad := writeTemp(t, "bad.csv", ",A,B\nA,1\nB,1,\n")
	code, _, errOut = cli(t, "", "import", bad, "M")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "malformed input")

	code, _, _ = cli(t, "", "import", path)
	assert.Equal(t, ExitUsage, code)
}

func TestImport_NameShadowsCommandWords(t *testing.T) {
	path := writeTemp(t, "ab.csv", ",A,B\nA,,4\nB,,\n")

	for _, name := range []string{"c", "node", "edge", "cluster", "help"} {
		code, out, errOut := cli(t, "", "import", path, name)
		require.Equal(t, ExitSuccess, code, "%s: %s", name, errOut)
		assert.Equal(t, "imported 2 node(s) and 1 edge(s) into "+name+".\nA -> B: [ A_B_1: 4 ]\n", out, name)
	}
}

func TestGen(t *testing.T) {
	code, out, errOut := cli(t, "", "gen", "--size", "3", "--seed", "1", "--weighted", "--min", "1", "--max", "5", "--undirected")
	require.Equal(t, ExitSuccess, code, errOut)

	grid, err := matrix.ReadGrid(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, grid, 4)
	assert.Equal(t, []string{"", "1", "2", "3"}, grid[0])
	for i := 1; i <= 3; i++ {
		assert.Equal(t, "0", grid[i][i])
		for j := 1; j <= 3; j++ {
			assert.Equal(t, grid[i][j], grid[j][i])
		}
	}

	file := filepath.Join(t.TempDir(), "g.csv")
	code, _, _ = cli(t, "", "gen", "-n", "4", "--seed", "2", "--weighted", "--min", "1", "--max", "3", "--ids", "excel", "-o", file)
	require.Equal(t, ExitSuccess, code)
	code, out, _ = cli(t, "", "import", file, "G")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "imported 4 node(s) and 12 edge(s) into G.")

	for _, args := range [][]string{
		{"gen", "--size", "0", "--seed", "1"},
		{"gen", "--weighted", "--min", "5", "--max", "5"},
		{"gen", "--ids", "roman"},
		{"gen", "--bogus"},
	} {
		code, _, _ = cli(t, "", args...)
		assert.Equal(t, ExitUsage, code, args)
	}
}

func TestREPL_FromStdin(t *testing.T) {
	code, out, _ := cli(t, "node new 1 a\nnode get 2\nnode list\nexit\n", "--plain")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "mgraph[_all_]> ")
	assert.Contains(t, out, "error: Node: node 2 not found in _all_")
	assert.Contains(t, out, "Node 1: a")
	assert.Contains(t, out, "Goodbye")

	code, out, _ = cli(t, "node list\n", "--plain", "repl")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "no nodes")
}

func TestConfig(t *testing.T) {
	code, _, _ := cli(t, "", "--log-level", "loud", "version")
	assert.Equal(t, ExitUsage, code)

	bad := writeTemp(t, "bad.yaml", "shell:\n  max_paths: -2\n")
	code, _, errOut := cli(t, "", "--config", bad, "version")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "shell.max_paths")

	logFile := filepath.Join(t.TempDir(), "mgraph.log")
	cfg := writeTemp(t, "ok.yaml", "log:\n  level: debug\n  format: json\n  file: "+logFile+"\nshell:\n  plain: true\n  max_paths: 1\n  global_name: world\n")
	code, out, errOut := cli(t, "", "--config", cfg, "exec",
		"node new 1 a", "node new 2 b", "node new 3 c",
		"edge new 1 2 auto 1", "edge new 2 3 auto 1", "edge new 1 3 auto 1",
		"node allp 1 3", "cluster list")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Contains(t, out, "(stopped after 1 paths)")
	assert.Contains(t, out, "world: nodes=[1 2 3] edges=3")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"command"`)
	assert.Contains(t, string(data), `"view":"world"`)
}
