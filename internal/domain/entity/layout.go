// Package entity contains domain entities representing core editor concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"errors"
	"fmt"
	"math"
)

// ViewSpaceID uniquely identifies a view space (an editing pane).
type ViewSpaceID string

// Orientation indicates how a splitter lays out its children.
type Orientation int

const (
	OrientationHorizontal Orientation = iota // Children side by side, left to right
	OrientationVertical                      // Children stacked, top to bottom
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// Opposite returns the other orientation.
func (o Orientation) Opposite() Orientation {
	if o == OrientationHorizontal {
		return OrientationVertical
	}
	return OrientationHorizontal
}

// ErrInvalidLayout is wrapped by every error returned from LayoutNode.Validate.
var ErrInvalidLayout = errors.New("invalid layout")

const sizeTolerance = 1e-9

// LayoutNode represents a node in the view space split tree.
// It can be either:
//   - Leaf node: holds a single view space
//   - Splitter node: holds ordered children with an orientation and
//     per-child proportional sizes that sum to 1.0
//
// Parent is a navigational back-reference; a node owns its Children.
type LayoutNode struct {
	ID        string
	ViewSpace ViewSpaceID // Non-empty for leaf nodes
	Parent    *LayoutNode // nil for root

	// Splitter fields
	Orientation Orientation
	Children    []*LayoutNode
	Sizes       []float64
}

// NewLeaf creates a leaf node for a view space.
func NewLeaf(id ViewSpaceID) *LayoutNode {
	return &LayoutNode{
		ID:        string(id),
		ViewSpace: id,
	}
}

// NewSplitter creates an empty splitter node.
func NewSplitter(id string, orientation Orientation) *LayoutNode {
	return &LayoutNode{
		ID:          id,
		Orientation: orientation,
	}
}

// IsLeaf returns true if this node holds a view space.
func (n *LayoutNode) IsLeaf() bool {
	return n.ViewSpace != ""
}

// IsSplitter returns true if this node is a container.
func (n *LayoutNode) IsSplitter() bool {
	return !n.IsLeaf()
}

// IsRoot returns true if the node has no parent.
func (n *LayoutNode) IsRoot() bool {
	return n.Parent == nil
}

// IndexOf returns the position of child among n's children, or -1.
func (n *LayoutNode) IndexOf(child *LayoutNode) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// Share returns the proportion of its parent allocated to this node.
// The root always owns the whole area.
func (n *LayoutNode) Share() float64 {
	if n.Parent == nil {
		return 1.0
	}
	idx := n.Parent.IndexOf(n)
	if idx < 0 || idx >= len(n.Parent.Sizes) {
		return 0
	}
	return n.Parent.Sizes[idx]
}

// InsertChild inserts child at index with the given proportional size.
// Sizes of the other children are left untouched.
func (n *LayoutNode) InsertChild(index int, child *LayoutNode, size float64) {
	if index < 0 {
		index = 0
	}
	if index > len(n.Children) {
		index = len(n.Children)
	}
	n.Children = append(n.Children, nil)
	copy(n.Children[index+1:], n.Children[index:])
	n.Children[index] = child

	n.Sizes = append(n.Sizes, 0)
	copy(n.Sizes[index+1:], n.Sizes[index:])
	n.Sizes[index] = size

	child.Parent = n
}

// AppendChild adds child as the last child.
func (n *LayoutNode) AppendChild(child *LayoutNode, size float64) {
	n.InsertChild(len(n.Children), child, size)
}

// RemoveChildAt detaches the child at index and returns it with its size.
func (n *LayoutNode) RemoveChildAt(index int) (*LayoutNode, float64) {
	if index < 0 || index >= len(n.Children) {
		return nil, 0
	}
	child := n.Children[index]
	size := n.Sizes[index]
	n.Children = append(n.Children[:index], n.Children[index+1:]...)
	n.Sizes = append(n.Sizes[:index], n.Sizes[index+1:]...)
	child.Parent = nil
	return child, size
}

// ReplaceChildAt puts child in place of the child at index, keeping its size.
// The replaced node is detached and returned.
func (n *LayoutNode) ReplaceChildAt(index int, child *LayoutNode) *LayoutNode {
	if index < 0 || index >= len(n.Children) {
		return nil
	}
	old := n.Children[index]
	n.Children[index] = child
	child.Parent = n
	old.Parent = nil
	return old
}

// Walk traverses the tree depth-first calling fn for each node.
// Returns early if fn returns false.
func (n *LayoutNode) Walk(fn func(*LayoutNode) bool) {
	n.walk(fn)
}

func (n *LayoutNode) walk(fn func(*LayoutNode) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(fn) {
			return false
		}
	}
	return true
}

// Leaves returns the leaf nodes in depth-first order.
func (n *LayoutNode) Leaves() []*LayoutNode {
	var leaves []*LayoutNode
	n.Walk(func(node *LayoutNode) bool {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}

// FindLeaf searches the tree for the leaf holding the given view space.
func (n *LayoutNode) FindLeaf(id ViewSpaceID) *LayoutNode {
	var found *LayoutNode
	n.Walk(func(node *LayoutNode) bool {
		if node.ViewSpace == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// LeafCount returns the number of view spaces in the tree.
func (n *LayoutNode) LeafCount() int {
	return len(n.Leaves())
}

// Depth returns the number of ancestors of n.
func (n *LayoutNode) Depth() int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// Validate checks the structural invariants of the tree rooted at n:
// the root is a splitter with at least one child, every other splitter has
// at least two, sizes match children and sum to 1, back-references point to
// the owning splitter, and nested splitters alternate orientation.
func (n *LayoutNode) Validate() error {
	if n == nil {
		return fmt.Errorf("%w: nil root", ErrInvalidLayout)
	}
	if n.Parent != nil {
		return fmt.Errorf("%w: root %q has a parent", ErrInvalidLayout, n.ID)
	}
	if n.IsLeaf() {
		return fmt.Errorf("%w: root %q is a leaf", ErrInvalidLayout, n.ID)
	}
	if len(n.Children) == 0 {
		return fmt.Errorf("%w: root %q is empty", ErrInvalidLayout, n.ID)
	}
	return n.validateSplitter()
}

func (n *LayoutNode) validateSplitter() error {
	if n.Parent != nil && len(n.Children) < 2 {
		return fmt.Errorf("%w: splitter %q has %d children", ErrInvalidLayout, n.ID, len(n.Children))
	}
	if len(n.Sizes) != len(n.Children) {
		return fmt.Errorf("%w: splitter %q has %d sizes for %d children",
			ErrInvalidLayout, n.ID, len(n.Sizes), len(n.Children))
	}
	if n.Parent != nil && n.Orientation == n.Parent.Orientation {
		return fmt.Errorf("%w: splitter %q repeats parent orientation %s", ErrInvalidLayout, n.ID, n.Orientation)
	}

	total := 0.0
	for i, child := range n.Children {
		if child.Parent != n {
			return fmt.Errorf("%w: child %q of %q has wrong parent", ErrInvalidLayout, child.ID, n.ID)
		}
		if n.Sizes[i] <= 0 {
			return fmt.Errorf("%w: child %q of %q has size %v", ErrInvalidLayout, child.ID, n.ID, n.Sizes[i])
		}
		total += n.Sizes[i]

		if child.IsLeaf() {
			if len(child.Children) != 0 {
				return fmt.Errorf("%w: leaf %q has children", ErrInvalidLayout, child.ID)
			}
			continue
		}
		if err := child.validateSplitter(); err != nil {
			return err
		}
	}
	if math.Abs(total-1.0) > sizeTolerance {
		return fmt.Errorf("%w: sizes of %q sum to %v", ErrInvalidLayout, n.ID, total)
	}
	return nil
}
