// cmd/matio.go
package cmd

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/flipflopcrf/ffcrf/crf"
)

// matrixMagic identifies the tiny binary matrix format used by the decode
// and score subcommands: a 4-byte magic, little-endian rows/cols uint32s,
// then rows*cols little-endian float32s, row-major. No library in the
// retrieval pack reads/writes this ad hoc numerical format, so this one
// file goes directly to encoding/binary.
var matrixMagic = [4]byte{'F', 'F', 'M', '1'}

// LoadMatrix reads a Matrix previously written by SaveMatrix.
func LoadMatrix(path string) (*crf.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening matrix file: %w", err)
	}
	defer f.Close()

	var magic [4]byte
	if err := binary.Read(f, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("reading matrix magic: %w", err)
	}
	if magic != matrixMagic {
		return nil, fmt.Errorf("matio: bad magic %q, expected %q", magic, matrixMagic)
	}

	var rows, cols uint32
	if err := binary.Read(f, binary.LittleEndian, &rows); err != nil {
		return nil, fmt.Errorf("reading matrix rows: %w", err)
	}
	if err := binary.Read(f, binary.LittleEndian, &cols); err != nil {
		return nil, fmt.Errorf("reading matrix cols: %w", err)
	}

	m := crf.NewMatrix(int(rows), int(cols))
	if err := binary.Read(f, binary.LittleEndian, m.Data); err != nil {
		return nil, fmt.Errorf("reading matrix data: %w", err)
	}
	return m, nil
}

// SaveMatrix writes m to path in the format LoadMatrix reads.
func SaveMatrix(path string, m *crf.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating matrix file: %w", err)
	}
	defer f.Close()

	if err := binary.Write(f, binary.LittleEndian, matrixMagic); err != nil {
		return fmt.Errorf("writing matrix magic: %w", err)
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(m.Rows)); err != nil {
		return fmt.Errorf("writing matrix rows: %w", err)
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(m.Cols)); err != nil {
		return fmt.Errorf("writing matrix cols: %w", err)
	}
	if err := binary.Write(f, binary.LittleEndian, m.Data); err != nil {
		return fmt.Errorf("writing matrix data: %w", err)
	}
	return nil
}
