package octree

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"

	"github.com/octomesh/spatial/geometry"
	"github.com/octomesh/spatial/utils"
)

// NumPhases is the number of temporal shards a Temporal index maintains.
const NumPhases = 12

// Temporal is a bank of twelve independent octrees, one per step of a
// repeating temporal cycle. Operations take their phase as a plain integer;
// an operation addressing a phase outside [0, 11] quietly does nothing. The
// shards share no state, so distinct phases can be mutated concurrently.
type Temporal[T any] struct {
	shards [NumPhases]*Tree[T]
	logger golog.Logger
}

// NewTemporal creates twelve empty trees, each covering the given region
// with the same maximum depth.
func NewTemporal[T any](bounds geometry.BoundingBox, maxDepth uint8, logger golog.Logger) *Temporal[T] {
	temporal := &Temporal[T]{logger: logger}
	for i := range temporal.shards {
		temporal.shards[i] = New[T](bounds, maxDepth, logger)
	}
	return temporal
}

func validPhase(phaseIdx int) bool {
	return phaseIdx >= 0 && phaseIdx < NumPhases
}

// Insert stores a payload for the given point in one phase's tree. Inserts
// addressed to a phase outside [0, 11] are dropped.
func (temporal *Temporal[T]) Insert(phaseIdx int, p r3.Vector, payload T) {
	if !validPhase(phaseIdx) {
		temporal.logger.Debugf("phase %d outside [0, %d], dropping insert", phaseIdx, NumPhases-1)
		return
	}
	temporal.shards[phaseIdx].Insert(p, payload)
}

// At returns the payload one phase's tree stores for the leaf region
// containing the given point. It reports false for phases outside [0, 11].
func (temporal *Temporal[T]) At(phaseIdx int, x, y, z float64) (T, bool) {
	if !validPhase(phaseIdx) {
		var zero T
		return zero, false
	}
	return temporal.shards[phaseIdx].At(x, y, z)
}

// QueryBoundingBox runs a box query against one phase's tree. Phases outside
// [0, 11] yield no results.
func (temporal *Temporal[T]) QueryBoundingBox(phaseIdx int, query geometry.BoundingBox) []T {
	if !validPhase(phaseIdx) {
		return nil
	}
	return temporal.shards[phaseIdx].QueryBoundingBox(query)
}

// QueryRadius runs a radius query against one phase's tree. Phases outside
// [0, 11] yield no results.
func (temporal *Temporal[T]) QueryRadius(phaseIdx int, center r3.Vector, radius float64) []T {
	if !validPhase(phaseIdx) {
		return nil
	}
	return temporal.shards[phaseIdx].QueryRadius(center, radius)
}

// QueryBoundingBoxAllPhases runs a box query against every phase in order
// and concatenates the results. A payload stored in several phases appears
// once per phase holding it.
func (temporal *Temporal[T]) QueryBoundingBoxAllPhases(query geometry.BoundingBox) []T {
	var results []T
	for _, shard := range temporal.shards {
		results = append(results, shard.QueryBoundingBox(query)...)
	}
	return results
}

// Phase returns the tree backing one phase for direct use, or nil for phases
// outside [0, 11].
func (temporal *Temporal[T]) Phase(phaseIdx int) *Tree[T] {
	if !validPhase(phaseIdx) {
		return nil
	}
	return temporal.shards[phaseIdx]
}

// GlobalStats aggregates the statistics of all twelve phase trees.
type GlobalStats struct {
	TotalNodes      int
	TotalData       int
	MaxDepthReached uint8
}

// GlobalStats sums the per-phase tree statistics.
func (temporal *Temporal[T]) GlobalStats() GlobalStats {
	var global GlobalStats
	for _, shard := range temporal.shards {
		stats := shard.Stats()
		global.TotalNodes += stats.TotalNodes
		global.TotalData += stats.NodesWithData
		global.MaxDepthReached = utils.MaxUint8(global.MaxDepthReached, stats.MaxDepthReached)
	}
	return global
}

// Clear resets every phase tree to a single empty root.
func (temporal *Temporal[T]) Clear() {
	for _, shard := range temporal.shards {
		shard.Clear()
	}
}
