package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/viewspace/internal/domain/entity"
)

func newTestUseCase() *ManageViewSpacesUseCase {
	n := 0
	return NewManageViewSpacesUseCase(func() string {
		n++
		return fmt.Sprintf("split-%d", n)
	})
}

func leafIDs(root *entity.LayoutNode) []entity.ViewSpaceID {
	var ids []entity.ViewSpaceID
	for _, leaf := range root.Leaves() {
		ids = append(ids, leaf.ViewSpace)
	}
	return ids
}

func singleRoot(id entity.ViewSpaceID) (*entity.LayoutNode, *entity.LayoutNode) {
	root := entity.NewSplitter("root", entity.OrientationHorizontal)
	leaf := entity.NewLeaf(id)
	root.AppendChild(leaf, 1.0)
	return root, leaf
}

func TestSplit_FirstSplitAdoptsOrientation(t *testing.T) {
	uc := newTestUseCase()
	root, a := singleRoot("a")

	out, err := uc.Split(context.Background(), SplitInput{
		Target:       a,
		NewViewSpace: "b",
		Orientation:  entity.OrientationVertical,
	})

	require.NoError(t, err)
	assert.Equal(t, PlacementFirstSplit, out.Placement)
	assert.Same(t, root, out.Container)
	assert.Equal(t, entity.OrientationVertical, root.Orientation)
	assert.Equal(t, []entity.ViewSpaceID{"a", "b"}, leafIDs(root))
	assert.Equal(t, []float64{0.5, 0.5}, root.Sizes)
	require.NoError(t, root.Validate())
}

func TestSplit_SameOrientationInsertsSiblingAfterTarget(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	root, a := singleRoot("a")
	_, err := uc.Split(ctx, SplitInput{Target: a, NewViewSpace: "b", Orientation: entity.OrientationHorizontal})
	require.NoError(t, err)

	out, err := uc.Split(ctx, SplitInput{Target: a, NewViewSpace: "c", Orientation: entity.OrientationHorizontal})

	require.NoError(t, err)
	assert.Equal(t, PlacementSibling, out.Placement)
	assert.Equal(t, []entity.ViewSpaceID{"a", "c", "b"}, leafIDs(root))
	assert.Equal(t, []float64{0.25, 0.25, 0.5}, root.Sizes)
	require.NoError(t, root.Validate())
}

func TestSplit_OtherOrientationNestsAndKeepsShare(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	root, a := singleRoot("a")
	out, err := uc.Split(ctx, SplitInput{Target: a, NewViewSpace: "b", Orientation: entity.OrientationHorizontal})
	require.NoError(t, err)
	require.NoError(t, uc.SetSizes(ctx, root, []float64{0.3, 0.7}))

	out, err = uc.Split(ctx, SplitInput{Target: out.NewLeaf, NewViewSpace: "c", Orientation: entity.OrientationVertical})

	require.NoError(t, err)
	assert.Equal(t, PlacementNested, out.Placement)
	nested := out.Container
	assert.Equal(t, "split-1", nested.ID)
	assert.Same(t, root, nested.Parent)
	assert.Equal(t, entity.OrientationVertical, nested.Orientation)
	assert.Equal(t, []float64{0.5, 0.5}, nested.Sizes)
	assert.InDelta(t, 0.7, nested.Share(), 1e-9)
	assert.Equal(t, []entity.ViewSpaceID{"a", "b", "c"}, leafIDs(root))
	require.NoError(t, root.Validate())
}

func TestSplit_Errors(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Split(ctx, SplitInput{NewViewSpace: "b"})
	assert.Error(t, err)

	_, a := singleRoot("a")
	_, err = uc.Split(ctx, SplitInput{Target: a})
	assert.Error(t, err)

	_, err = uc.Split(ctx, SplitInput{Target: entity.NewLeaf("loose"), NewViewSpace: "b"})
	assert.ErrorIs(t, err, ErrNotAttached)
}

// Split P0 side by side, split P1 top/bottom, then close P1.
func TestSplitThenClose_CollapsesNestedSplitter(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	root, p0 := singleRoot("p0")

	out, err := uc.Split(ctx, SplitInput{Target: p0, NewViewSpace: "p1", Orientation: entity.OrientationHorizontal})
	require.NoError(t, err)
	p1 := out.NewLeaf

	out, err = uc.Split(ctx, SplitInput{Target: p1, NewViewSpace: "p2", Orientation: entity.OrientationVertical})
	require.NoError(t, err)
	require.Equal(t, PlacementNested, out.Placement)
	nested := out.Container

	closed, err := uc.Close(ctx, p1)

	require.NoError(t, err)
	assert.Equal(t, MergePromotePane, closed.Merge)
	assert.Same(t, root, closed.Container)
	assert.Equal(t, []*entity.LayoutNode{nested}, closed.Removed)
	assert.Equal(t, entity.OrientationHorizontal, root.Orientation)
	assert.Equal(t, []entity.ViewSpaceID{"p0", "p2"}, leafIDs(root))
	assert.Equal(t, []float64{0.5, 0.5}, root.Sizes)
	assert.False(t, root.Children[1].IsSplitter())
	require.NoError(t, root.Validate())
}

func TestClose_ThreeChildrenGivesShareToNeighbour(t *testing.T) {
	tests := []struct {
		name      string
		close     int
		wantIDs   []entity.ViewSpaceID
		wantSizes []float64
	}{
		{name: "first goes to following", close: 0, wantIDs: []entity.ViewSpaceID{"b", "c"}, wantSizes: []float64{0.5, 0.5}},
		{name: "middle goes to preceding", close: 1, wantIDs: []entity.ViewSpaceID{"a", "c"}, wantSizes: []float64{0.5, 0.5}},
		{name: "last goes to preceding", close: 2, wantIDs: []entity.ViewSpaceID{"a", "b"}, wantSizes: []float64{0.25, 0.75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase()
			root := entity.NewSplitter("root", entity.OrientationHorizontal)
			root.AppendChild(entity.NewLeaf("a"), 0.25)
			root.AppendChild(entity.NewLeaf("b"), 0.25)
			root.AppendChild(entity.NewLeaf("c"), 0.5)

			out, err := uc.Close(context.Background(), root.Children[tt.close])

			require.NoError(t, err)
			assert.Equal(t, MergeNone, out.Merge)
			assert.Empty(t, out.Removed)
			assert.Equal(t, tt.wantIDs, leafIDs(root))
			assert.Equal(t, tt.wantSizes, root.Sizes)
			require.NoError(t, root.Validate())
		})
	}
}

func TestClose_RootWithPaneSiblingKeepsSingleChild(t *testing.T) {
	uc := newTestUseCase()
	root := entity.NewSplitter("root", entity.OrientationVertical)
	root.AppendChild(entity.NewLeaf("a"), 0.3)
	root.AppendChild(entity.NewLeaf("b"), 0.7)

	out, err := uc.Close(context.Background(), root.Children[1])

	require.NoError(t, err)
	assert.Equal(t, MergeRootPane, out.Merge)
	assert.Equal(t, []entity.ViewSpaceID{"a"}, leafIDs(root))
	assert.Equal(t, []float64{1.0}, root.Sizes)
	require.NoError(t, root.Validate())
}

func TestClose_RootWithSplitterSiblingSplicesIntoRoot(t *testing.T) {
	uc := newTestUseCase()
	inner := entity.NewSplitter("inner", entity.OrientationHorizontal)
	inner.AppendChild(entity.NewLeaf("b"), 0.3)
	inner.AppendChild(entity.NewLeaf("c"), 0.7)
	root := entity.NewSplitter("root", entity.OrientationVertical)
	root.AppendChild(entity.NewLeaf("a"), 0.5)
	root.AppendChild(inner, 0.5)

	out, err := uc.Close(context.Background(), root.Children[0])

	require.NoError(t, err)
	assert.Equal(t, MergeRootSplice, out.Merge)
	assert.Equal(t, []*entity.LayoutNode{inner}, out.Removed)
	assert.Equal(t, entity.OrientationHorizontal, root.Orientation)
	assert.Equal(t, []entity.ViewSpaceID{"b", "c"}, leafIDs(root))
	assert.Equal(t, []float64{0.3, 0.7}, root.Sizes)
	assert.Empty(t, inner.Children)
	require.NoError(t, root.Validate())
}

func TestClose_NestedWithSplitterSiblingSplicesScaledSizes(t *testing.T) {
	uc := newTestUseCase()
	deep := entity.NewSplitter("deep", entity.OrientationHorizontal)
	deep.AppendChild(entity.NewLeaf("c"), 0.4)
	deep.AppendChild(entity.NewLeaf("d"), 0.6)
	mid := entity.NewSplitter("mid", entity.OrientationVertical)
	mid.AppendChild(entity.NewLeaf("b"), 0.5)
	mid.AppendChild(deep, 0.5)
	root := entity.NewSplitter("root", entity.OrientationHorizontal)
	root.AppendChild(entity.NewLeaf("a"), 0.5)
	root.AppendChild(mid, 0.5)

	out, err := uc.Close(context.Background(), mid.Children[0])

	require.NoError(t, err)
	assert.Equal(t, MergeSplice, out.Merge)
	assert.Same(t, root, out.Container)
	assert.ElementsMatch(t, []*entity.LayoutNode{mid, deep}, out.Removed)
	assert.Equal(t, []entity.ViewSpaceID{"a", "c", "d"}, leafIDs(root))
	require.Len(t, root.Sizes, 3)
	assert.InDelta(t, 0.5, root.Sizes[0], 1e-9)
	assert.InDelta(t, 0.2, root.Sizes[1], 1e-9)
	assert.InDelta(t, 0.3, root.Sizes[2], 1e-9)
	require.NoError(t, root.Validate())
}

func TestClose_Errors(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	_, a := singleRoot("a")
	_, err := uc.Close(ctx, a)
	assert.ErrorIs(t, err, ErrLastViewSpace)

	_, err = uc.Close(ctx, entity.NewLeaf("loose"))
	assert.ErrorIs(t, err, ErrNotAttached)

	_, err = uc.Close(ctx, nil)
	assert.Error(t, err)
}

func TestSplitAndClose_RandomSequenceKeepsTreeValid(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	root, _ := singleRoot("v0")

	orientations := []entity.Orientation{
		entity.OrientationHorizontal,
		entity.OrientationVertical,
		entity.OrientationVertical,
		entity.OrientationHorizontal,
		entity.OrientationVertical,
		entity.OrientationHorizontal,
	}
	for i, o := range orientations {
		leaves := root.Leaves()
		target := leaves[(i*7)%len(leaves)]
		_, err := uc.Split(ctx, SplitInput{
			Target:       target,
			NewViewSpace: entity.ViewSpaceID(fmt.Sprintf("v%d", i+1)),
			Orientation:  o,
		})
		require.NoError(t, err)
		require.NoError(t, root.Validate(), "after split %d", i)
	}
	require.Equal(t, len(orientations)+1, root.LeafCount())

	for i := 0; root.LeafCount() > 1; i++ {
		leaves := root.Leaves()
		_, err := uc.Close(ctx, leaves[(i*5)%len(leaves)])
		require.NoError(t, err)
		require.NoError(t, root.Validate(), "after close %d", i)
	}
	assert.Equal(t, []float64{1.0}, root.Sizes)
}

func TestResize_TradesWithNeighbour(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	root := entity.NewSplitter("root", entity.OrientationHorizontal)
	a := entity.NewLeaf("a")
	b := entity.NewLeaf("b")
	root.AppendChild(a, 0.5)
	root.AppendChild(b, 0.5)

	require.NoError(t, uc.Resize(ctx, a, 0.1, 0.1))
	assert.InDelta(t, 0.6, root.Sizes[0], 1e-9)
	assert.InDelta(t, 0.4, root.Sizes[1], 1e-9)

	// The last child trades with the one before it and stops at the minimum.
	require.NoError(t, uc.Resize(ctx, b, 0.8, 0.1))
	assert.InDelta(t, 0.1, root.Sizes[0], 1e-9)
	assert.InDelta(t, 0.9, root.Sizes[1], 1e-9)
	require.NoError(t, root.Validate())
}

func TestResize_Errors(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	_, a := singleRoot("a")
	assert.ErrorIs(t, uc.Resize(ctx, a, 0.1, 0.1), ErrNothingToResize)
	assert.Error(t, uc.Resize(ctx, nil, 0.1, 0.1))
}

func TestSetSizesAndEqualize(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	root := entity.NewSplitter("root", entity.OrientationVertical)
	root.AppendChild(entity.NewLeaf("a"), 0.5)
	root.AppendChild(entity.NewLeaf("b"), 0.25)
	root.AppendChild(entity.NewLeaf("c"), 0.25)

	require.NoError(t, uc.SetSizes(ctx, root, []float64{1, 1, 2}))
	assert.Equal(t, []float64{0.25, 0.25, 0.5}, root.Sizes)

	assert.ErrorIs(t, uc.SetSizes(ctx, root, []float64{1, 1}), ErrInvalidSizes)
	assert.ErrorIs(t, uc.SetSizes(ctx, root, []float64{1, 0, 1}), ErrInvalidSizes)
	assert.Equal(t, []float64{0.25, 0.25, 0.5}, root.Sizes)

	require.NoError(t, uc.Equalize(ctx, root))
	for _, s := range root.Sizes {
		assert.InDelta(t, 1.0/3, s, 1e-9)
	}
	require.NoError(t, root.Validate())
}
