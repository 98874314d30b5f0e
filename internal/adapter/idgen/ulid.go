// Package idgen provides run identifiers.
package idgen

import (
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates lexicographically sortable run IDs.
type ULIDGenerator struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy io.Reader
}

// NewULIDGenerator creates a new ULIDGenerator using the wall clock and the default entropy source.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// NewULIDGeneratorWith creates a generator with a fixed clock and entropy source.
// IDs minted within the same millisecond increase monotonically.
func NewULIDGeneratorWith(now func() time.Time, entropy io.Reader) *ULIDGenerator {
	return &ULIDGenerator{now: now, entropy: ulid.Monotonic(entropy, 0)}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	if g.now == nil {
		return ulid.Make().String()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}
