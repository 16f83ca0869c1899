package table

import (
	"bytes"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Checksum returns the hexadecimal BLAKE3-256 digest of the CSV encoding of t.
func Checksum(t Table) string {
	buf := new(bytes.Buffer)
	if err := WriteCSV(buf, t); err != nil {
		// bytes.Buffer writes do not fail
		panic(err)
	}
	hasher := blake3.New()
	hasher.Write(buf.Bytes())
	return hex.EncodeToString(hasher.Sum(nil))
}
