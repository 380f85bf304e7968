package idgen

import (
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/outofforest/objectid/pkg/oid"
)

// hashSource is an endless byte stream derived from the key.
type hashSource struct {
	key   string
	seq   uint64
	block []byte
}

func (hs *hashSource) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(hs.block) == 0 {
			h := sha256.New()
			// hash does not return errors or short writes
			_, _ = h.Write([]byte(hs.key))
			_ = binary.Write(h, binary.LittleEndian, hs.seq)
			hs.seq++
			hs.block = h.Sum(nil)
		}
		c := copy(p[n:], hs.block)
		hs.block = hs.block[c:]
		n += c
	}
	return n, nil
}

// NewDeterministic creates new deterministic ID generator stamping every identifier with the timestamp.
// Generators with the same key will produce exactly the same identifier sequences.
func NewDeterministic(key string, timestamp uint32) Generator {
	now := time.Unix(int64(timestamp), 0)
	return New(oid.NewGenerator(
		oid.WithSource(&hashSource{key: key}),
		oid.WithClock(func() time.Time { return now }),
	))
}
