package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flipflopcrf/ffcrf/crf"
)

func TestSaveLoadMatrix_RoundTrip(t *testing.T) {
	// GIVEN a matrix with distinct float32 values in every cell
	m := crf.NewMatrix(3, 5)
	for i := range m.Data {
		m.Data[i] = float32(i) * 1.5
	}

	// WHEN saving to disk and loading it back
	path := filepath.Join(t.TempDir(), "m.bin")
	require.NoError(t, SaveMatrix(path, m))

	got, err := LoadMatrix(path)
	require.NoError(t, err)

	// THEN dimensions and data MUST round-trip exactly
	assert.Equal(t, m.Rows, got.Rows)
	assert.Equal(t, m.Cols, got.Cols)
	assert.Equal(t, m.Data, got.Data)
}

func TestLoadMatrix_BadMagicFails(t *testing.T) {
	// GIVEN a file whose magic bytes don't match the matrix format
	path := filepath.Join(t.TempDir(), "bad.bin")
	require.NoError(t, os.WriteFile(path, []byte("NOPE"), 0o644))

	// WHEN loading it as a matrix
	// THEN it MUST return an error
	_, err := LoadMatrix(path)
	assert.Error(t, err)
}

func TestLoadMatrix_MissingFileFails(t *testing.T) {
	// GIVEN a path to a file that does not exist
	// WHEN loading it as a matrix
	// THEN it MUST return an error
	_, err := LoadMatrix(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}
