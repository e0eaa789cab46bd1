// SPDX-License-Identifier: MIT

package cluster_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mgraph/cluster"
	"github.com/katalvlaran/mgraph/core"
	"github.com/katalvlaran/mgraph/matrix"
)

func grid3() [][]string {
	return [][]string{
		{"", "A", "B", "C"},
		{"A", "", "5", "2"},
		{"B", "5", "", ""},
		{"C", "2", "", ""},
	}
}

func TestImport(t *testing.T) {
	r := cluster.New()
	c, sum, err := r.Import("X", "csv", grid3())
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Edges)

	got, err := r.Get("X")
	require.NoError(t, err)
	assert.Same(t, c, got)
	assert.Equal(t, []core.ID{"A", "B", "C"}, c.Graph.NodeIDs())
	e, err := c.Graph.EdgeBetween("A", "B")
	require.NoError(t, err)
	assert.Equal(t, core.Value("5"), e.Value)

	_, _, err = r.Import("X", "csv", grid3())
	assert.ErrorIs(t, err, core.ErrDuplicateID)
}

func TestImport_AllOrNothing(t *testing.T) {
	r := cluster.New()
	bad := [][]string{{"", "A", "B"}, {"A", "", "1"}, {"B", "1"}}
	_, _, err := r.Import("X", "csv", bad)
	assert.ErrorIs(t, err, matrix.ErrRaggedRow)
	assert.ErrorIs(t, err, core.ErrMalformedInput)
	assert.Zero(t, r.Len())

	mismatch := [][]string{{"", "A", "B"}, {"B", "", "1"}, {"A", "1", ""}}
	_, _, err = r.Import("X", "csv", mismatch)
	assert.ErrorIs(t, err, matrix.ErrHeaderMismatch)
	_, err = r.Get("X")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.csv")
	require.NoError(t, os.WriteFile(path, []byte(",1,2\n1,,3\n2,3,\n"), 0o600))

	r := cluster.New()
	c, sum, err := r.ImportFile("M", core.Value("CSV:"+path), path)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Nodes)
	assert.Equal(t, 2, c.Graph.EdgeCount())

	_, _, err = r.ImportFile("N", "v", filepath.Join(t.TempDir(), "none.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 1, r.Len())
}
