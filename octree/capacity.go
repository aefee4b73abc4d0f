package octree

import "github.com/octomesh/spatial/octant"

// TheoreticalNodeCount returns the total number of nodes in a fully
// subdivided octree of the given depth, (8^(depth+1) - 1) / 7. The result
// overflows uint64 beyond depth 20.
func TheoreticalNodeCount(depth uint8) uint64 {
	power := uint64(1)
	for i := uint8(0); i <= depth; i++ {
		power *= octant.NumOctants
	}
	return (power - 1) / 7
}

// LeafCountAtDepth returns the number of leaves in a fully subdivided octree
// of the given depth, 8^depth. The result overflows uint64 beyond depth 21.
func LeafCountAtDepth(depth uint8) uint64 {
	power := uint64(1)
	for i := uint8(0); i < depth; i++ {
		power *= octant.NumOctants
	}
	return power
}
