package timezone_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedTZif encodes a version 1 zoneinfo file holding a single fixed offset.
func fixedTZif(abbr string, offset int32) []byte {
	var buf bytes.Buffer

	buf.WriteString("TZif")
	buf.WriteByte(0)
	buf.Write(make([]byte, 15))

	counts := []uint32{0, 0, 0, 0, 1, uint32(len(abbr) + 1)}
	for _, count := range counts {
		_ = binary.Write(&buf, binary.BigEndian, count)
	}

	_ = binary.Write(&buf, binary.BigEndian, offset)
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteString(abbr)
	buf.WriteByte(0)

	return buf.Bytes()
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o600))
}
