package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/viewspace/internal/domain/entity"
)

func splitter(id string, o entity.Orientation, children ...*entity.LayoutNode) *entity.LayoutNode {
	n := entity.NewSplitter(id, o)
	for _, c := range children {
		n.AppendChild(c, 1.0/float64(len(children)))
	}
	return n
}

func TestLayoutNode_InsertAndRemoveKeepSizesAligned(t *testing.T) {
	root := entity.NewSplitter("root", entity.OrientationHorizontal)
	a := entity.NewLeaf("a")
	b := entity.NewLeaf("b")
	c := entity.NewLeaf("c")

	root.AppendChild(a, 0.5)
	root.AppendChild(c, 0.5)
	root.InsertChild(1, b, 0.25)

	require.Len(t, root.Children, 3)
	assert.Equal(t, []*entity.LayoutNode{a, b, c}, root.Children)
	assert.Equal(t, []float64{0.5, 0.25, 0.5}, root.Sizes)
	assert.Same(t, root, b.Parent)
	assert.Equal(t, 0.25, b.Share())

	removed, size := root.RemoveChildAt(1)
	assert.Same(t, b, removed)
	assert.Equal(t, 0.25, size)
	assert.Nil(t, b.Parent)
	assert.Equal(t, []float64{0.5, 0.5}, root.Sizes)
}

func TestLayoutNode_ReplaceChildAtKeepsSize(t *testing.T) {
	a := entity.NewLeaf("a")
	b := entity.NewLeaf("b")
	root := splitter("root", entity.OrientationVertical, a, b)
	x := entity.NewLeaf("x")

	old := root.ReplaceChildAt(0, x)

	assert.Same(t, a, old)
	assert.Nil(t, a.Parent)
	assert.Same(t, root, x.Parent)
	assert.Equal(t, []float64{0.5, 0.5}, root.Sizes)
}

func TestLayoutNode_LeavesAndDepth(t *testing.T) {
	a := entity.NewLeaf("a")
	b := entity.NewLeaf("b")
	c := entity.NewLeaf("c")
	inner := splitter("s1", entity.OrientationHorizontal, b, c)
	root := splitter("root", entity.OrientationVertical, a, inner)

	leaves := root.Leaves()
	require.Len(t, leaves, 3)
	assert.Equal(t, entity.ViewSpaceID("a"), leaves[0].ViewSpace)
	assert.Equal(t, entity.ViewSpaceID("b"), leaves[1].ViewSpace)
	assert.Equal(t, entity.ViewSpaceID("c"), leaves[2].ViewSpace)
	assert.Equal(t, 3, root.LeafCount())
	assert.Equal(t, 1, a.Depth())
	assert.Equal(t, 2, c.Depth())
	assert.Same(t, c, root.FindLeaf("c"))
	assert.Nil(t, root.FindLeaf("missing"))
}

func TestLayoutNode_Validate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *entity.LayoutNode
		wantErr bool
	}{
		{
			name: "single child root",
			build: func() *entity.LayoutNode {
				return splitter("root", entity.OrientationHorizontal, entity.NewLeaf("a"))
			},
		},
		{
			name: "nested alternating splitters",
			build: func() *entity.LayoutNode {
				inner := splitter("s1", entity.OrientationHorizontal, entity.NewLeaf("b"), entity.NewLeaf("c"))
				return splitter("root", entity.OrientationVertical, entity.NewLeaf("a"), inner)
			},
		},
		{
			name: "empty root",
			build: func() *entity.LayoutNode {
				return entity.NewSplitter("root", entity.OrientationHorizontal)
			},
			wantErr: true,
		},
		{
			name: "leaf root",
			build: func() *entity.LayoutNode {
				return entity.NewLeaf("a")
			},
			wantErr: true,
		},
		{
			name: "single child nested splitter",
			build: func() *entity.LayoutNode {
				inner := splitter("s1", entity.OrientationHorizontal, entity.NewLeaf("b"))
				return splitter("root", entity.OrientationVertical, entity.NewLeaf("a"), inner)
			},
			wantErr: true,
		},
		{
			name: "nested splitter repeats orientation",
			build: func() *entity.LayoutNode {
				inner := splitter("s1", entity.OrientationVertical, entity.NewLeaf("b"), entity.NewLeaf("c"))
				return splitter("root", entity.OrientationVertical, entity.NewLeaf("a"), inner)
			},
			wantErr: true,
		},
		{
			name: "sizes do not sum to one",
			build: func() *entity.LayoutNode {
				root := splitter("root", entity.OrientationVertical, entity.NewLeaf("a"), entity.NewLeaf("b"))
				root.Sizes[1] = 0.25
				return root
			},
			wantErr: true,
		},
		{
			name: "broken back-reference",
			build: func() *entity.LayoutNode {
				root := splitter("root", entity.OrientationVertical, entity.NewLeaf("a"), entity.NewLeaf("b"))
				root.Children[0].Parent = nil
				return root
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidLayout)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOrientation_Opposite(t *testing.T) {
	assert.Equal(t, entity.OrientationVertical, entity.OrientationHorizontal.Opposite())
	assert.Equal(t, entity.OrientationHorizontal, entity.OrientationVertical.Opposite())
	assert.Equal(t, "horizontal", entity.OrientationHorizontal.String())
}
