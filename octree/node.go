package octree

import (
	"github.com/golang/geo/r3"

	"github.com/octomesh/spatial/geometry"
	"github.com/octomesh/spatial/octant"
)

// Node is a single cell of an octree. A node is either a leaf or has been
// subdivided into exactly eight children, one per octant of its bounding box.
// Any node can carry one payload, though trees built through Tree.Insert only
// ever store payloads on leaves at the maximum depth.
type Node[T any] struct {
	bounds   geometry.BoundingBox
	depth    uint8
	leaf     bool
	children [octant.NumOctants]*Node[T]
	payload  T
	hasData  bool
}

func newNode[T any](bounds geometry.BoundingBox, depth uint8) *Node[T] {
	return &Node[T]{bounds: bounds, depth: depth, leaf: true}
}

// Bounds returns the region of space the node covers.
func (node *Node[T]) Bounds() geometry.BoundingBox {
	return node.bounds
}

// Depth returns how many subdivisions separate the node from the root.
func (node *Node[T]) Depth() uint8 {
	return node.depth
}

// IsLeaf reports whether the node has not been subdivided.
func (node *Node[T]) IsLeaf() bool {
	return node.leaf
}

// Payload returns the payload stored on the node, if any.
func (node *Node[T]) Payload() (T, bool) {
	return node.payload, node.hasData
}

// SetPayload stores a payload on the node, replacing any previous one.
func (node *Node[T]) SetPayload(payload T) {
	node.payload = payload
	node.hasData = true
}

// ClearPayload removes the payload from the node.
func (node *Node[T]) ClearPayload() {
	var zero T
	node.payload = zero
	node.hasData = false
}

// Child returns the child covering the given octant of the node, or nil when
// the node is a leaf.
func (node *Node[T]) Child(o octant.Octant) *Node[T] {
	if node.leaf {
		return nil
	}
	return node.children[o.Value()]
}

// Subdivide splits a leaf into eight children, one per octant of its region,
// each one level deeper. The node stops being a leaf and loses its payload.
// Subdividing an internal node does nothing.
func (node *Node[T]) Subdivide() {
	if !node.leaf {
		return
	}
	center := node.bounds.Center()
	for i := range node.children {
		childBounds := node.childBounds(center, octant.New(uint8(i)))
		node.children[i] = newNode[T](childBounds, node.depth+1)
	}
	node.leaf = false
	node.ClearPayload()
}

// childBounds carves the octant of the node's region on the given side of
// each dividing plane through center.
func (node *Node[T]) childBounds(center r3.Vector, o octant.Octant) geometry.BoundingBox {
	lower, upper := node.bounds.Min, node.bounds.Max
	if o.XPositive() {
		lower.X = center.X
	} else {
		upper.X = center.X
	}
	if o.YPositive() {
		lower.Y = center.Y
	} else {
		upper.Y = center.Y
	}
	if o.ZPositive() {
		lower.Z = center.Z
	} else {
		upper.Z = center.Z
	}
	return geometry.NewBoundingBox(lower, upper)
}

// Descend walks from the node down to the leaf whose region contains the
// given point, classifying the point against each node center along the way.
// Points on a dividing plane descend into the positive side.
func (node *Node[T]) Descend(p r3.Vector) *Node[T] {
	if node.leaf {
		return node
	}
	child := node.Child(octant.FromPosition(p, node.bounds.Center()))
	if child == nil {
		return nil
	}
	return child.Descend(p)
}

// Walk visits the node and every node below it depth first, parents before
// children and children in octant order. The walk stops as soon as fn
// returns false and Walk reports whether it ran to completion.
func (node *Node[T]) Walk(fn func(*Node[T]) bool) bool {
	if !fn(node) {
		return false
	}
	if node.leaf {
		return true
	}
	for _, child := range node.children {
		if child == nil {
			continue
		}
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}
