package octree

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/octomesh/spatial/octant"
)

// CheckInvariants walks the tree and verifies its structure: no node sits
// deeper than the maximum depth, every node has either zero or eight children,
// payloads live only on leaves and each child covers exactly its octant of
// the parent region, one level deeper. It returns nil for a healthy tree and
// otherwise the combined violations.
func (tree *Tree[T]) CheckInvariants() error {
	var result error
	tree.root.Walk(func(node *Node[T]) bool {
		if node.depth > tree.maxDepth {
			result = multierr.Append(result, errors.Errorf(
				"node %v at depth %d exceeds maximum depth %d", node.bounds, node.depth, tree.maxDepth))
		}
		if node.leaf {
			for _, child := range node.children {
				if child != nil {
					result = multierr.Append(result, errors.Errorf(
						"leaf node %v has a child", node.bounds))
					break
				}
			}
			return true
		}
		if node.hasData {
			result = multierr.Append(result, errors.Errorf(
				"internal node %v carries a payload", node.bounds))
		}
		center := node.bounds.Center()
		for i, child := range node.children {
			if child == nil {
				result = multierr.Append(result, errors.Errorf(
					"internal node %v is missing child %d", node.bounds, i))
				continue
			}
			if child.depth != node.depth+1 {
				result = multierr.Append(result, errors.Errorf(
					"child %d of node %v has depth %d, want %d",
					i, node.bounds, child.depth, node.depth+1))
			}
			if want := node.childBounds(center, octant.New(uint8(i))); child.bounds != want {
				result = multierr.Append(result, errors.Errorf(
					"child %d of node %v covers %v, want %v", i, node.bounds, child.bounds, want))
			}
		}
		return true
	})
	return result
}

// CheckInvariants validates every phase tree and labels any violations with
// their phase.
func (temporal *Temporal[T]) CheckInvariants() error {
	var result error
	for i, shard := range temporal.shards {
		if err := shard.CheckInvariants(); err != nil {
			result = multierr.Append(result, errors.Wrapf(err, "phase %d", i))
		}
	}
	return result
}
