package pkg

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var errDiskFull = errors.New("disk full")

type brokenOutput struct{}

func (brokenOutput) Write([]byte) (int, error) {
	return 0, errDiskFull
}

func TestTeeWriter_Write(t *testing.T) {
	stdout := &strings.Builder{}
	stdout.WriteString("boot;")
	file := &strings.Builder{}

	tw := NewTeeWriter(stdout, nil, file)
	require.Equal(t, 2, tw.Outputs())

	n, err := tw.Write([]byte("simulation 2025-08-20 done;"))
	require.NoError(t, err)
	assert.Equal(t, 27, n)

	assert.Equal(t, "boot;simulation 2025-08-20 done;", stdout.String())
	assert.Equal(t, "simulation 2025-08-20 done;", file.String())
}

func TestTeeWriter_Write_OneOutputFails(t *testing.T) {
	file := &strings.Builder{}
	tw := NewTeeWriter(brokenOutput{}, file)

	n, err := tw.Write([]byte("reset"))
	require.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, 5, n)
	assert.Equal(t, "reset", file.String())
}

func TestTeeWriter_Write_AllOutputsFail(t *testing.T) {
	tw := NewTeeWriter(brokenOutput{}, brokenOutput{})

	n, err := tw.Write([]byte("reset"))
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Len(t, multierr.Errors(err), 2)
}
