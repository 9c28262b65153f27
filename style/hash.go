package style

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/blake2b"
)

// Digest is the structural hash of a concrete style value. Equal values have
// equal digests; any field change produces a different one.
type Digest [blake2b.Size256]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Schema tags. The byte after the tag is the schema version, bump it whenever
// field order or encoding of a type changes.
const (
	schemaColor     = "color"
	schemaEdge      = "edge"
	schemaBorders   = "borders"
	schemaFont      = "font"
	schemaFill      = "fill"
	schemaAlignment = "alignment"
	schemaNumFmt    = "numfmt"
	schemaStyle     = "style"

	schemaVersion byte = 1
)

// canonical accumulates the canonical byte encoding of one value. Strings are
// length prefixed and floats are written bit-exact, so no two field sequences
// share an encoding.
type canonical struct {
	buf []byte
}

func newCanonical(tag string) *canonical {
	c := &canonical{buf: make([]byte, 0, 128)}
	c.str(tag)
	c.buf = append(c.buf, schemaVersion)
	return c
}

func (c *canonical) str(s string) *canonical {
	c.buf = binary.AppendUvarint(c.buf, uint64(len(s)))
	c.buf = append(c.buf, s...)
	return c
}

func (c *canonical) int(v int) *canonical {
	c.buf = binary.AppendVarint(c.buf, int64(v))
	return c
}

func (c *canonical) float(f float64) *canonical {
	if f == 0 {
		// fold -0 into +0
		f = 0
	}
	c.buf = binary.BigEndian.AppendUint64(c.buf, math.Float64bits(f))
	return c
}

func (c *canonical) bool(b bool) *canonical {
	if b {
		c.buf = append(c.buf, 1)
	} else {
		c.buf = append(c.buf, 0)
	}
	return c
}

func (c *canonical) digest(d Digest) *canonical {
	c.buf = append(c.buf, d[:]...)
	return c
}

func (c *canonical) sum() Digest {
	return blake2b.Sum256(c.buf)
}
