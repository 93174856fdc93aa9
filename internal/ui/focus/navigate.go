// Package focus finds the view space to focus when moving in a screen direction.
package focus

import (
	"context"
	"sort"

	"github.com/bnema/viewspace/internal/domain/entity"
	"github.com/bnema/viewspace/internal/logging"
	"github.com/bnema/viewspace/internal/ui/layout"
)

// Direction indicates the direction for focus navigation.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Large penalty for candidates without perpendicular overlap, so panes on
// the same row (or column) always win.
const noOverlapPenalty = 10_000_000

type candidate struct {
	id    entity.ViewSpaceID
	score int
}

// Navigate returns the view space nearest to from in direction.
// Candidates are scored by primary_distance*1000 + perpendicular_distance
// between centers, plus a penalty when they do not overlap from on the
// perpendicular axis.
func Navigate(ctx context.Context, geo *layout.Geometry, from entity.ViewSpaceID, dir Direction) (entity.ViewSpaceID, bool) {
	log := logging.FromContext(ctx)
	if geo == nil {
		return "", false
	}

	active, ok := geo.Region(from)
	if !ok {
		log.Debug().Str("view_space", string(from)).Msg("active region not found")
		return "", false
	}

	var candidates []candidate
	acx, acy := center(active)
	for _, r := range geo.Regions {
		if r.ViewSpace == from || r.Rect.Empty() {
			continue
		}
		cx, cy := center(r.Rect)
		inDirection, primary, perp, overlap := evalDirection(active, r.Rect, cx-acx, cy-acy, dir)
		if !inDirection {
			continue
		}
		score := primary*1000 + perp
		if !overlap {
			score += noOverlapPenalty
		}
		candidates = append(candidates, candidate{id: r.ViewSpace, score: score})
	}

	if len(candidates) == 0 {
		log.Debug().Str("direction", string(dir)).Msg("no view space in direction")
		return "", false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})
	return candidates[0].id, true
}

func evalDirection(active, rect layout.Rect, dx, dy int, dir Direction) (inDirection bool, primary, perp int, overlap bool) {
	switch dir {
	case Left:
		return dx < 0, abs(dx), abs(dy), overlapsVertically(active, rect)
	case Right:
		return dx > 0, abs(dx), abs(dy), overlapsVertically(active, rect)
	case Up:
		return dy < 0, abs(dy), abs(dx), overlapsHorizontally(active, rect)
	case Down:
		return dy > 0, abs(dy), abs(dx), overlapsHorizontally(active, rect)
	default:
		return false, 0, 0, false
	}
}

func center(r layout.Rect) (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

func overlapsVertically(a, b layout.Rect) bool {
	return a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

func overlapsHorizontally(a, b layout.Rect) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
