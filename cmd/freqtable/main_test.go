package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bjornpagen/pairdist/pairlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortFreqs(t *testing.T) {
	got := sortFreqs(pairlist.FreqMap{9: 1, 3: 3, 5: 1, 4: 1})

	assert.Equal(t, []freq{
		{Value: 3, Count: 3},
		{Value: 4, Count: 1},
		{Value: 5, Count: 1},
		{Value: 9, Count: 1},
	}, got)
	assert.Empty(t, sortFreqs(nil))
}

func TestDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("3 4\n4 3\n2 5\nbad\n1 3\n3 9\n3 3\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, dump(path, &out, nil))
	assert.Equal(t, "3 3\n4 1\n5 1\n9 1\n", out.String())
}

func TestDump_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := dump(filepath.Join(t.TempDir(), "nope.txt"), &out, nil)

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, out.String())
}
