package geometry

import (
	"fmt"
	"sort"

	"github.com/rfoley/glimmer/pkg/core"
)

// BVHNode is a node in a bounding volume hierarchy: a binary tree over
// hittables that prunes intersection search from linear to roughly
// logarithmic. Children are hittables themselves, so leaves are the scene
// primitives directly.
type BVHNode struct {
	Left  core.Hittable
	Right core.Hittable
	Box   core.AABB
}

// NewBVH builds a hierarchy over the given objects for the shutter interval
// [time0, time1]. Every object must be boundable; passing an unbounded
// hittable is a construction-time error since traversal correctness depends
// on every leaf having a box.
func NewBVH(objects []core.Hittable, time0, time1 float64) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, fmt.Errorf("cannot build BVH over empty object list")
	}

	// Copy so sorting does not reorder the caller's slice
	objectsCopy := make([]core.Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, time0, time1)
}

// buildBVH recursively splits objects at the midpoint of the axis with the
// widest extent. Splitting on a random axis would make tree quality vary run
// to run; the longest axis is deterministic and never worse.
func buildBVH(objects []core.Hittable, time0, time1 float64) (*BVHNode, error) {
	enclosing, err := enclosingBox(objects, time0, time1)
	if err != nil {
		return nil, err
	}
	axis := enclosing.LongestAxis()

	node := &BVHNode{}

	switch len(objects) {
	case 1:
		// Both children alias the single leaf; traversal tests it twice
		// but the tree shape stays uniform
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		if compareBoxMin(objects[0], objects[1], axis, time0, time1) {
			node.Left = objects[0]
			node.Right = objects[1]
		} else {
			node.Left = objects[1]
			node.Right = objects[0]
		}
	default:
		sortByBoxMin(objects, axis, time0, time1)

		mid := len(objects) / 2
		left, err := buildBVH(objects[:mid], time0, time1)
		if err != nil {
			return nil, err
		}
		right, err := buildBVH(objects[mid:], time0, time1)
		if err != nil {
			return nil, err
		}
		node.Left = left
		node.Right = right
	}

	leftBox, leftBounded := node.Left.BoundingBox(time0, time1)
	rightBox, rightBounded := node.Right.BoundingBox(time0, time1)
	if !leftBounded || !rightBounded {
		return nil, fmt.Errorf("unbounded hittable passed into BVH construction")
	}
	node.Box = leftBox.Union(rightBox)

	return node, nil
}

// enclosingBox unions the boxes of all objects, erroring on unbounded members
func enclosingBox(objects []core.Hittable, time0, time1 float64) (core.AABB, error) {
	var box core.AABB
	for i, object := range objects {
		objectBox, bounded := object.BoundingBox(time0, time1)
		if !bounded {
			return core.AABB{}, fmt.Errorf("unbounded hittable passed into BVH construction")
		}
		if i == 0 {
			box = objectBox
		} else {
			box = box.Union(objectBox)
		}
	}
	return box, nil
}

// compareBoxMin orders two hittables by bounding-box minimum along an axis
func compareBoxMin(a, b core.Hittable, axis int, time0, time1 float64) bool {
	boxA, _ := a.BoundingBox(time0, time1)
	boxB, _ := b.BoundingBox(time0, time1)
	return boxA.Min.Axis(axis) < boxB.Min.Axis(axis)
}

// sortByBoxMin sorts hittables by their bounding-box minimum along an axis
func sortByBoxMin(objects []core.Hittable, axis int, time0, time1 float64) {
	sort.Slice(objects, func(i, j int) bool {
		return compareBoxMin(objects[i], objects[j], axis, time0, time1)
	})
}

// Hit tests the node's own box first; on a miss the whole subtree is pruned.
// The left child's hit tightens tMax before the right child is tested, so
// whichever record survives is the closer of the two.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}

	rightHit, hitRight := n.Right.Hit(ray, tMin, tMax)
	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the node's precomputed box
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// Stats describes the structure of a built hierarchy
type Stats struct {
	Nodes    int // Interior nodes
	Leaves   int // Primitive references (aliased leaves counted once)
	MaxDepth int
}

// CollectStats walks the tree and reports its shape, mostly for logging
func (n *BVHNode) CollectStats() Stats {
	stats := Stats{}
	n.collectStats(0, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *Stats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []core.Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if childNode, ok := child.(*BVHNode); ok {
			childNode.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
		}
	}
}
