package region

import (
	"fmt"
	"sync/atomic"
)

const derivedIDPrefix = "x"

// IDGenerator produces a deterministic sequence of fresh ids for
// intersection-derived Regions, in the style of core.Graph's atomic
// "e1", "e2", ... edge-ID counter.
type IDGenerator struct {
	next uint64
}

// NewIDGenerator returns an IDGenerator starting at 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next id in the sequence ("x1", "x2", ...).
//
// Complexity: O(1). Safe for concurrent use.
func (g *IDGenerator) Next() string {
	return fmt.Sprintf("%s%d", derivedIDPrefix, atomic.AddUint64(&g.next, 1))
}
