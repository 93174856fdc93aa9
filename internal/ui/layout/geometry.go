// Package layout turns a split tree into screen geometry: one rectangle per
// view space plus the divider lines between siblings.
package layout

import (
	"errors"
	"math"

	"github.com/bnema/viewspace/internal/domain/entity"
)

// ErrNilRoot is returned when computing geometry for a nil tree.
var ErrNilRoot = errors.New("root node is nil")

// DividerWidth is the number of cells between two siblings.
const DividerWidth = 1

// Rect is an area in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell at (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Region is the area allotted to one view space.
type Region struct {
	ViewSpace entity.ViewSpaceID
	Rect      Rect
}

// Divider separates two siblings of a splitter. Orientation is the
// splitter's: a horizontal splitter draws vertical divider lines.
type Divider struct {
	Splitter    string
	Orientation entity.Orientation
	Rect        Rect
}

// Geometry is the computed placement of a whole tree.
type Geometry struct {
	Area     Rect
	Regions  []Region // Tree order
	Dividers []Divider
}

// Compute lays out root inside area.
func Compute(root *entity.LayoutNode, area Rect) (*Geometry, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	g := &Geometry{Area: area}
	g.place(root, area)
	return g, nil
}

// Region returns the rectangle of a view space.
func (g *Geometry) Region(id entity.ViewSpaceID) (Rect, bool) {
	for _, r := range g.Regions {
		if r.ViewSpace == id {
			return r.Rect, true
		}
	}
	return Rect{}, false
}

// At returns the view space under the cell at (x, y).
func (g *Geometry) At(x, y int) (entity.ViewSpaceID, bool) {
	for _, r := range g.Regions {
		if r.Rect.Contains(x, y) {
			return r.ViewSpace, true
		}
	}
	return "", false
}

func (g *Geometry) place(node *entity.LayoutNode, area Rect) {
	if node.IsLeaf() {
		g.Regions = append(g.Regions, Region{ViewSpace: node.ViewSpace, Rect: area})
		return
	}
	if len(node.Children) == 0 {
		return
	}

	horizontal := node.Orientation == entity.OrientationHorizontal
	length := area.Height
	if horizontal {
		length = area.Width
	}

	gaps := DividerWidth * (len(node.Children) - 1)
	lengths := Distribute(max(length-gaps, 0), node.Sizes)

	offset := 0
	for i, child := range node.Children {
		if i > 0 {
			div := Rect{X: area.X, Y: area.Y + offset, Width: area.Width, Height: DividerWidth}
			if horizontal {
				div = Rect{X: area.X + offset, Y: area.Y, Width: DividerWidth, Height: area.Height}
			}
			g.Dividers = append(g.Dividers, Divider{Splitter: node.ID, Orientation: node.Orientation, Rect: div})
			offset += DividerWidth
		}

		childArea := Rect{X: area.X, Y: area.Y + offset, Width: area.Width, Height: lengths[i]}
		if horizontal {
			childArea = Rect{X: area.X + offset, Y: area.Y, Width: lengths[i], Height: area.Height}
		}
		g.place(child, childArea)
		offset += lengths[i]
	}
}

// Distribute splits total cells by proportional sizes. Boundaries are
// rounded from the running sum so the parts always add up to total.
func Distribute(total int, sizes []float64) []int {
	out := make([]int, len(sizes))
	if len(sizes) == 0 || total <= 0 {
		return out
	}

	sum := 0.0
	for _, s := range sizes {
		if s > 0 {
			sum += s
		}
	}
	if sum == 0 {
		return out
	}

	acc := 0.0
	prev := 0
	for i, s := range sizes {
		if s > 0 {
			acc += s
		}
		edge := int(math.Round(acc / sum * float64(total)))
		if i == len(sizes)-1 {
			edge = total
		}
		out[i] = edge - prev
		prev = edge
	}
	return out
}
