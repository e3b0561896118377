package entity

import (
	"fmt"

	"github.com/rocketscienceinc/latix/internal/apperror"
)

// diagonalJump is a mirrored destination pair (x-dx, y) and (x+dx, y).
type diagonalJump struct {
	dx int
	y  int
}

// diagonalJumps holds the destinations of the diagonal tiles, keyed by row.
// The rows are not derivable from each other; keep them literal.
var diagonalJumps = map[int][3]diagonalJump{
	1: {{1, 0}, {1, 2}, {2, 3}},
	7: {{2, 5}, {1, 6}, {1, 8}},
	2: {{1, 1}, {1, 3}, {2, 0}},
	6: {{1, 7}, {1, 5}, {2, 8}},
	3: {{1, 2}, {2, 1}, {3, 0}},
	5: {{1, 6}, {2, 7}, {3, 8}},
}

// MovementOptions - returns the candidate destinations of a piece at origin
// as seen by viewer. Blocked candidates are kept as InvalidCoord so the slot
// count only depends on the origin's class.
func (that *Board) MovementOptions(origin Coord, viewer Player) []Coord {
	candidates := candidateSlots(origin)

	for i, dest := range candidates {
		if that.IsBlocked(dest, viewer) {
			candidates[i] = InvalidCoord
		}
	}

	return candidates
}

// HasValidMove - reports whether at least one slot from origin is not blocked.
func (that *Board) HasValidMove(origin Coord, viewer Player) bool {
	for _, dest := range that.MovementOptions(origin, viewer) {
		if dest.Valid() {
			return true
		}
	}

	return false
}

// CanMove - reports whether dest is a valid slot for a piece at origin.
func (that *Board) CanMove(origin, dest Coord, viewer Player) bool {
	if !dest.Valid() {
		return false
	}

	for _, candidate := range that.MovementOptions(origin, viewer) {
		if candidate == dest {
			return true
		}
	}

	return false
}

// IsBlocked - a destination is blocked when it is non-passable or holds the
// viewer's own piece. Without a viewer any occupied tile blocks.
func (that *Board) IsBlocked(c Coord, viewer Player) bool {
	if IsNonPassable(c) {
		return true
	}

	tile := that.Tile(c)
	if viewer == NoPlayer {
		return tile != Empty
	}

	return tile == viewer.Piece()
}

func candidateSlots(origin Coord) []Coord {
	x, y := origin.X, origin.Y

	switch Classify(origin) {
	case Spawner, Regular:
		return []Coord{
			{x - 1, y},
			{x + 1, y},
			{x, y + 1}, {x, y + 2},
			{x, y - 1}, {x, y - 2},
		}
	case Diagonal:
		return diagonalSlots(origin)
	case OutOfBounds, NonPassable:
		return nil
	default:
		panic(fmt.Sprintf("unknown tile class of %s", origin))
	}
}

func diagonalSlots(origin Coord) []Coord {
	jumps, ok := diagonalJumps[origin.Y]
	if !ok || !IsDiagonal(origin) {
		panic(fmt.Errorf("%w: case of %d,%d not handled", apperror.ErrTopologyDrift, origin.X, origin.Y))
	}

	slots := make([]Coord, 0, len(jumps)*2)
	for _, jump := range jumps {
		slots = append(slots,
			Coord{origin.X - jump.dx, jump.y},
			Coord{origin.X + jump.dx, jump.y},
		)
	}

	return slots
}
