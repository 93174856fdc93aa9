package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/bnema/viewspace/internal/domain/entity"
	"github.com/bnema/viewspace/internal/logging"
)

// IDGenerator produces unique IDs for newly created splitter nodes.
type IDGenerator func() string

var (
	// ErrLastViewSpace is returned when closing the only remaining view space.
	ErrLastViewSpace = errors.New("cannot close the last view space")
	// ErrNotAttached is returned when a leaf has no owning splitter.
	ErrNotAttached = errors.New("view space is not attached to a splitter")
	// ErrNothingToResize is returned when a node has no sibling to trade size with.
	ErrNothingToResize = errors.New("nothing to resize")
	// ErrInvalidSizes is returned when SetSizes receives unusable proportions.
	ErrInvalidSizes = errors.New("invalid sizes")
)

// SplitPlacement describes where a split put the new view space.
type SplitPlacement string

const (
	// PlacementFirstSplit: the single-child root took the requested orientation.
	PlacementFirstSplit SplitPlacement = "first_split"
	// PlacementSibling: inserted next to the target in a same-orientation splitter.
	PlacementSibling SplitPlacement = "sibling"
	// PlacementNested: a new splitter replaced the target.
	PlacementNested SplitPlacement = "nested"
)

// CloseMerge describes how the tree collapsed after a close.
type CloseMerge string

const (
	// MergeNone: the splitter kept at least two children.
	MergeNone CloseMerge = "none"
	// MergeRootPane: the root was left with a single view space.
	MergeRootPane CloseMerge = "root_pane"
	// MergeRootSplice: the remaining splitter was spliced into the root.
	MergeRootSplice CloseMerge = "root_splice"
	// MergePromotePane: the sibling view space replaced its splitter.
	MergePromotePane CloseMerge = "promote_pane"
	// MergeSplice: the sibling splitter's children replaced their grandparent slot.
	MergeSplice CloseMerge = "splice"
)

// ManageViewSpacesUseCase handles split tree operations.
type ManageViewSpacesUseCase struct {
	idGenerator IDGenerator
}

// NewManageViewSpacesUseCase creates a new split tree use case.
func NewManageViewSpacesUseCase(idGenerator IDGenerator) *ManageViewSpacesUseCase {
	return &ManageViewSpacesUseCase{
		idGenerator: idGenerator,
	}
}

// SplitInput contains parameters for splitting a view space.
type SplitInput struct {
	Target       *entity.LayoutNode // Leaf to split
	NewViewSpace entity.ViewSpaceID
	Orientation  entity.Orientation
}

// SplitOutput contains the result of a split operation.
type SplitOutput struct {
	NewLeaf   *entity.LayoutNode
	Container *entity.LayoutNode // Splitter holding both target and new leaf
	Placement SplitPlacement
}

// Split places a new leaf next to the target.
//
// A single-child root adopts the orientation and halves its only share.
// A parent with the same orientation gets the new leaf right after the
// target, which gives up half of its share. Otherwise a new splitter with
// the requested orientation takes the target's slot and holds both halves.
func (uc *ManageViewSpacesUseCase) Split(ctx context.Context, input SplitInput) (*SplitOutput, error) {
	log := logging.FromContext(ctx)

	if input.Target == nil || !input.Target.IsLeaf() {
		return nil, fmt.Errorf("target leaf is required")
	}
	if input.NewViewSpace == "" {
		return nil, fmt.Errorf("new view space id is required")
	}
	parent := input.Target.Parent
	if parent == nil {
		return nil, ErrNotAttached
	}
	idx := parent.IndexOf(input.Target)
	if idx < 0 {
		return nil, ErrNotAttached
	}

	log.Debug().
		Str("target", input.Target.ID).
		Str("orientation", input.Orientation.String()).
		Int("siblings", len(parent.Children)).
		Msg("splitting view space")

	newLeaf := entity.NewLeaf(input.NewViewSpace)
	out := &SplitOutput{NewLeaf: newLeaf}

	switch {
	case len(parent.Children) == 1:
		parent.Orientation = input.Orientation
		size := parent.Sizes[0]
		parent.Sizes[0] = size / 2
		parent.AppendChild(newLeaf, size/2)
		out.Container = parent
		out.Placement = PlacementFirstSplit

	case parent.Orientation == input.Orientation:
		share := parent.Sizes[idx]
		parent.Sizes[idx] = share / 2
		parent.InsertChild(idx+1, newLeaf, share/2)
		out.Container = parent
		out.Placement = PlacementSibling

	default:
		nested := entity.NewSplitter(uc.idGenerator(), input.Orientation)
		parent.ReplaceChildAt(idx, nested)
		nested.AppendChild(input.Target, 0.5)
		nested.AppendChild(newLeaf, 0.5)
		out.Container = nested
		out.Placement = PlacementNested
	}

	log.Info().
		Str("new_view_space", string(input.NewViewSpace)).
		Str("container", out.Container.ID).
		Str("placement", string(out.Placement)).
		Msg("view space split completed")

	return out, nil
}

// CloseOutput contains the result of a close operation.
type CloseOutput struct {
	// Container is the splitter that now holds the closed leaf's former sibling(s).
	Container *entity.LayoutNode
	Merge     CloseMerge
	// Removed lists splitter nodes dropped from the tree by the merge.
	Removed []*entity.LayoutNode
}

// Close detaches a leaf and collapses any splitter left with a single child.
//
// With three or more siblings the leaf is simply removed and its share goes
// to the preceding sibling (the following one when it was first). With one
// sibling the parent is eliminated: at the root the sibling's content becomes
// the root's content, elsewhere the sibling (or its children) take the
// parent's slot in the grandparent.
func (uc *ManageViewSpacesUseCase) Close(ctx context.Context, leaf *entity.LayoutNode) (*CloseOutput, error) {
	log := logging.FromContext(ctx)

	if leaf == nil || !leaf.IsLeaf() {
		return nil, fmt.Errorf("leaf is required")
	}
	parent := leaf.Parent
	if parent == nil {
		return nil, ErrNotAttached
	}
	idx := parent.IndexOf(leaf)
	if idx < 0 {
		return nil, ErrNotAttached
	}
	if parent.IsRoot() && len(parent.Children) < 2 {
		return nil, ErrLastViewSpace
	}

	log.Debug().
		Str("leaf", leaf.ID).
		Str("parent", parent.ID).
		Int("siblings", len(parent.Children)).
		Msg("closing view space")

	var out *CloseOutput
	switch {
	case len(parent.Children) > 2:
		_, size := parent.RemoveChildAt(idx)
		receiver := idx - 1
		if receiver < 0 {
			receiver = 0
		}
		parent.Sizes[receiver] += size
		out = &CloseOutput{Container: parent, Merge: MergeNone}

	case parent.IsRoot():
		out = closeInRoot(parent, idx)

	default:
		out = closeInNested(parent, idx)
	}

	log.Info().
		Str("closed", leaf.ID).
		Str("container", out.Container.ID).
		Str("merge", string(out.Merge)).
		Msg("view space closed")

	return out, nil
}

// closeInRoot removes the child at idx from a two-child root.
func closeInRoot(root *entity.LayoutNode, idx int) *CloseOutput {
	root.RemoveChildAt(idx)
	other := root.Children[0]

	if other.IsLeaf() {
		root.Sizes[0] = 1.0
		return &CloseOutput{Container: root, Merge: MergeRootPane}
	}

	root.RemoveChildAt(0)
	root.Orientation = other.Orientation
	children, sizes := detachChildren(other)
	for i, child := range children {
		root.AppendChild(child, sizes[i])
	}
	return &CloseOutput{
		Container: root,
		Merge:     MergeRootSplice,
		Removed:   []*entity.LayoutNode{other},
	}
}

// closeInNested removes the child at idx from a two-child non-root splitter
// and eliminates that splitter.
func closeInNested(parent *entity.LayoutNode, idx int) *CloseOutput {
	parent.RemoveChildAt(idx)
	other := parent.Children[0]
	grandparent := parent.Parent
	pIdx := grandparent.IndexOf(parent)

	if other.IsLeaf() {
		parent.RemoveChildAt(0)
		grandparent.ReplaceChildAt(pIdx, other)
		return &CloseOutput{
			Container: grandparent,
			Merge:     MergePromotePane,
			Removed:   []*entity.LayoutNode{parent},
		}
	}

	parent.RemoveChildAt(0)
	_, share := grandparent.RemoveChildAt(pIdx)
	children, sizes := detachChildren(other)
	for i, child := range children {
		grandparent.InsertChild(pIdx+i, child, sizes[i]*share)
	}
	return &CloseOutput{
		Container: grandparent,
		Merge:     MergeSplice,
		Removed:   []*entity.LayoutNode{parent, other},
	}
}

// detachChildren empties a splitter and returns its former children and sizes.
func detachChildren(n *entity.LayoutNode) ([]*entity.LayoutNode, []float64) {
	children := n.Children
	sizes := n.Sizes
	n.Children = nil
	n.Sizes = nil
	for _, child := range children {
		child.Parent = nil
	}
	return children, sizes
}

// Resize grows node's share by delta (negative shrinks it), trading with the
// following sibling, or the preceding one when node is last. Both shares are
// kept at or above minShare.
func (uc *ManageViewSpacesUseCase) Resize(
	ctx context.Context,
	node *entity.LayoutNode,
	delta float64,
	minShare float64,
) error {
	log := logging.FromContext(ctx)

	if node == nil {
		return fmt.Errorf("node is required")
	}
	parent := node.Parent
	if parent == nil || len(parent.Children) < 2 {
		return ErrNothingToResize
	}
	idx := parent.IndexOf(node)
	if idx < 0 {
		return ErrNotAttached
	}
	other := idx + 1
	if other >= len(parent.Children) {
		other = idx - 1
	}

	pair := parent.Sizes[idx] + parent.Sizes[other]
	minShare = clampFloat64(minShare, 0, pair/2)
	oldSize := parent.Sizes[idx]
	newSize := clampFloat64(oldSize+delta, minShare, pair-minShare)
	parent.Sizes[idx] = newSize
	parent.Sizes[other] = pair - newSize

	log.Debug().
		Str("node", node.ID).
		Float64("old_size", oldSize).
		Float64("new_size", newSize).
		Msg("view space resized")

	return nil
}

// SetSizes replaces a splitter's proportions. Sizes are normalised to sum to 1.
func (uc *ManageViewSpacesUseCase) SetSizes(ctx context.Context, splitter *entity.LayoutNode, sizes []float64) error {
	log := logging.FromContext(ctx)

	if splitter == nil || !splitter.IsSplitter() {
		return fmt.Errorf("splitter is required")
	}
	if len(sizes) != len(splitter.Children) {
		return fmt.Errorf("%w: got %d sizes for %d children", ErrInvalidSizes, len(sizes), len(splitter.Children))
	}

	total := 0.0
	for _, s := range sizes {
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidSizes, sizes)
		}
		total += s
	}

	normalized := make([]float64, len(sizes))
	for i, s := range sizes {
		normalized[i] = s / total
	}
	splitter.Sizes = normalized

	log.Debug().Str("splitter", splitter.ID).Floats64("sizes", normalized).Msg("splitter sizes set")
	return nil
}

// Equalize gives every child of splitter the same share.
func (uc *ManageViewSpacesUseCase) Equalize(ctx context.Context, splitter *entity.LayoutNode) error {
	if splitter == nil || len(splitter.Children) == 0 {
		return ErrNothingToResize
	}
	sizes := make([]float64, len(splitter.Children))
	for i := range sizes {
		sizes[i] = 1
	}
	return uc.SetSizes(ctx, splitter, sizes)
}

func clampFloat64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
