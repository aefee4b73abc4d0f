// Package octree implements a recursive octant partition of 3D space with
// lazy subdivision, pruned spatial queries and a twelve-phase temporal
// extension.
//
// A Tree covers a fixed axis-aligned region. Inserting a point subdivides
// the region along the descent path, halving each axis at every level, until
// the configured maximum depth is reached; the payload then lands on the
// deepest leaf containing the point. Spatial queries prune whole subtrees by
// their bounding boxes, so query cost follows the populated portion of the
// tree rather than its full theoretical extent.
package octree

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"

	"github.com/octomesh/spatial/geometry"
	"github.com/octomesh/spatial/octant"
	"github.com/octomesh/spatial/utils"
)

// DefaultMaxDepth is the subdivision limit used when callers have no
// particular resolution in mind. A fully subdivided tree of this depth has
// over sixteen million leaves.
const DefaultMaxDepth uint8 = 8

// Tree is an octree covering a fixed region of space. Each payload is stored
// on the deepest leaf whose region contains its point, so two points falling
// inside the same leaf region share one payload slot and the later insert
// wins. A Tree is not safe for concurrent use.
type Tree[T any] struct {
	root     *Node[T]
	maxDepth uint8
	logger   golog.Logger
}

// New creates an empty Tree covering the given region. The tree never
// subdivides more than maxDepth levels below the root.
func New[T any](bounds geometry.BoundingBox, maxDepth uint8, logger golog.Logger) *Tree[T] {
	return &Tree[T]{
		root:     newNode[T](bounds, 0),
		maxDepth: maxDepth,
		logger:   logger,
	}
}

// Root returns the root node of the tree.
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Bounds returns the region of space the tree covers.
func (tree *Tree[T]) Bounds() geometry.BoundingBox {
	return tree.root.bounds
}

// MaxDepth returns the subdivision limit of the tree.
func (tree *Tree[T]) MaxDepth() uint8 {
	return tree.maxDepth
}

// Insert stores a payload for the given point, subdividing along the descent
// path as needed until the maximum depth is reached. Any payload already
// stored for the same leaf region is replaced. Points outside the tree's
// bounds are dropped.
func (tree *Tree[T]) Insert(p r3.Vector, payload T) {
	if !tree.root.bounds.Contains(p) {
		tree.logger.Debugf("point %v outside tree bounds %v, dropping insert", p, tree.root.bounds)
		return
	}
	if node := tree.findOrCreateLeaf(p); node != nil {
		node.SetPayload(payload)
	}
}

// findOrCreateLeaf descends towards the given point, subdividing every leaf
// it passes through, and returns the node at the maximum depth containing
// the point.
func (tree *Tree[T]) findOrCreateLeaf(p r3.Vector) *Node[T] {
	current := tree.root
	for current != nil && current.depth < tree.maxDepth {
		if current.leaf {
			current.Subdivide()
		}
		current = current.Child(octant.FromPosition(p, current.bounds.Center()))
	}
	return current
}

// At returns the payload stored for the leaf region containing the given
// point. It reports false when the point lies outside the tree's bounds or
// nothing has been stored there.
func (tree *Tree[T]) At(x, y, z float64) (T, bool) {
	var zero T
	p := geometry.NewVector(x, y, z)
	if !tree.root.bounds.Contains(p) {
		return zero, false
	}
	node := tree.root.Descend(p)
	if node == nil || !node.hasData {
		return zero, false
	}
	return node.payload, true
}

// QueryBoundingBox returns the payloads of all occupied leaves whose regions
// intersect the query box. Touching the box on a face, an edge or a corner
// is enough to be included. Subtrees whose regions miss the box entirely are
// pruned without descending into them.
func (tree *Tree[T]) QueryBoundingBox(query geometry.BoundingBox) []T {
	var results []T
	queryBoundingBox(tree.root, query, &results)
	return results
}

func queryBoundingBox[T any](node *Node[T], query geometry.BoundingBox, results *[]T) {
	if !node.bounds.Intersects(query) {
		return
	}
	if node.leaf {
		if node.hasData {
			*results = append(*results, node.payload)
		}
		return
	}
	for _, child := range node.children {
		if child != nil {
			queryBoundingBox(child, query, results)
		}
	}
}

// QueryRadius returns the payloads of all occupied leaves whose region
// centers lie within radius of the given center. Subtrees lying entirely
// farther from the center than the radius are pruned.
func (tree *Tree[T]) QueryRadius(center r3.Vector, radius float64) []T {
	var results []T
	queryRadius(tree.root, center, utils.Square(radius), &results)
	return results
}

func queryRadius[T any](node *Node[T], center r3.Vector, radiusSq float64, results *[]T) {
	if node.bounds.DistanceSquared(center) > radiusSq {
		return
	}
	if node.hasData {
		offset := node.bounds.Center().Sub(center)
		if offset.Dot(offset) <= radiusSq {
			*results = append(*results, node.payload)
		}
	}
	for _, child := range node.children {
		if child != nil {
			queryRadius(child, center, radiusSq, results)
		}
	}
}

// SubdivideToDepth eagerly subdivides every reachable leaf until the whole
// tree reaches the given depth. Depths beyond the tree's maximum are clamped
// to it, and existing payloads are unaffected.
func (tree *Tree[T]) SubdivideToDepth(depth uint8) {
	subdivideToDepth(tree.root, utils.MinUint8(depth, tree.maxDepth))
}

func subdivideToDepth[T any](node *Node[T], target uint8) {
	if node.depth >= target {
		return
	}
	if node.leaf {
		node.Subdivide()
	}
	for _, child := range node.children {
		if child != nil {
			subdivideToDepth(child, target)
		}
	}
}

// TreeStats summarizes the shape of a tree.
type TreeStats struct {
	TotalNodes      int
	LeafNodes       int
	InternalNodes   int
	NodesWithData   int
	MaxDepthReached uint8
}

// Stats walks the whole tree and counts its nodes.
func (tree *Tree[T]) Stats() TreeStats {
	var stats TreeStats
	tree.root.Walk(func(node *Node[T]) bool {
		stats.TotalNodes++
		if node.leaf {
			stats.LeafNodes++
		} else {
			stats.InternalNodes++
		}
		if node.hasData {
			stats.NodesWithData++
		}
		stats.MaxDepthReached = utils.MaxUint8(stats.MaxDepthReached, node.depth)
		return true
	})
	return stats
}

// Clear discards every node and payload, resetting the tree to a single
// empty root over the same bounds.
func (tree *Tree[T]) Clear() {
	tree.root = newNode[T](tree.root.bounds, 0)
}
