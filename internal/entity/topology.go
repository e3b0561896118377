package entity

// TileClass is the topological class of a coordinate. It depends on the
// coordinate only, never on what the cell holds.
type TileClass uint8

const (
	OutOfBounds TileClass = iota
	NonPassable
	Spawner
	Diagonal
	Regular
)

func (that TileClass) String() string {
	switch that {
	case OutOfBounds:
		return "out-of-bounds"
	case NonPassable:
		return "non-passable"
	case Spawner:
		return "spawner"
	case Diagonal:
		return "diagonal"
	case Regular:
		return "regular"
	default:
		return "unknown"
	}
}

var (
	player1Spawner = Coord{X: 4, Y: 0}
	player2Spawner = Coord{X: 4, Y: 8}
)

// Classify - returns the class of c. Spawners are reported as Spawner even
// though they are also non-passable.
func Classify(c Coord) TileClass {
	switch {
	case IsOutOfBounds(c):
		return OutOfBounds
	case IsSpawner(c):
		return Spawner
	case IsNonPassable(c):
		return NonPassable
	case IsDiagonal(c):
		return Diagonal
	default:
		return Regular
	}
}

func IsOutOfBounds(c Coord) bool {
	return c.X < 0 || c.X >= Dimension || c.Y < 0 || c.Y >= Dimension
}

// IsNonPassable - out-of-bounds cells, the centre cross and both spawners.
func IsNonPassable(c Coord) bool {
	if IsOutOfBounds(c) {
		return true
	}

	return (c.Y == 4 && (c.X == 3 || c.X == 4 || c.X == 5)) || IsSpawner(c)
}

func IsSpawner(c Coord) bool {
	return c == player1Spawner || c == player2Spawner
}

// SpawnerOf - returns the spawner cell of the given player.
func SpawnerOf(player Player) (Coord, bool) {
	switch player {
	case Player1:
		return player1Spawner, true
	case Player2:
		return player2Spawner, true
	default:
		return InvalidCoord, false
	}
}

func IsDiagonal(c Coord) bool {
	return ((c.Y == 1 || c.Y == 7) && (c.X == 2 || c.X == 6)) ||
		((c.Y == 2 || c.Y == 6) && (c.X == 1 || c.X == 7)) ||
		((c.Y == 3 || c.Y == 5) && c.X == 4)
}

// IsRegular - passable and not diagonal. Out-of-bounds input is never regular.
func IsRegular(c Coord) bool {
	return !IsNonPassable(c) && !IsDiagonal(c)
}
