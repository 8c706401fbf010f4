//go:build unix

package pairlist

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_FIFO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, syscall.Mkfifo(path, 0600))

	errc := make(chan error, 1)
	go func() {
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			errc <- err
			return
		}
		_, err = f.WriteString("3 4\n4 3\n")
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		errc <- err
	}()

	c, err := Read(path, nil)
	require.NoError(t, err)
	require.NoError(t, <-errc)

	assert.Equal(t, []uint64{3, 4}, c.Left)
	assert.Equal(t, []uint64{4, 3}, c.Right)
}
