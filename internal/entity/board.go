package entity

// Board is the 9x9 tile grid, indexed [y][x].
type Board struct {
	tiles [Dimension][Dimension]Tile
}

// NewBoard - returns a board in the starting layout.
func NewBoard() *Board {
	board := &Board{}
	board.Reset()

	return board
}

// Reset - rebuilds the starting layout.
func (that *Board) Reset() {
	for y := 0; y < Dimension; y++ {
		for x := 0; x < Dimension; x++ {
			that.tiles[y][x] = startingTile(x, y)
		}
	}
}

func startingTile(x, y int) Tile {
	switch {
	case y == 4 && x >= 3 && x <= 5:
		return Reserved
	case (y == 0 || y == 8) && x == 4:
		return Reserved
	case y == 0 && x >= 1 && x <= 7, y == 1 && x >= 2 && x <= 6:
		return Player1Piece
	case y == 8 && x >= 1 && x <= 7, y == 7 && x >= 2 && x <= 6:
		return Player2Piece
	default:
		return Empty
	}
}

// Tile - returns the tile at c. Panics on out-of-bounds input.
func (that *Board) Tile(c Coord) Tile {
	return that.tiles[c.Y][c.X]
}

// SetTile - overwrites the tile at c. Panics on out-of-bounds input.
func (that *Board) SetTile(c Coord, tile Tile) {
	that.tiles[c.Y][c.X] = tile
}

// HasPiece - reports whether c holds a piece of player. Out-of-bounds is false.
func (that *Board) HasPiece(c Coord, player Player) bool {
	if IsOutOfBounds(c) || player == NoPlayer {
		return false
	}

	return that.tiles[c.Y][c.X] == player.Piece()
}

// TrySpawn - places a new piece on the player's spawner if it does not
// already hold one of that player's pieces.
func (that *Board) TrySpawn(player Player, c Coord) bool {
	spawner, ok := SpawnerOf(player)
	if !ok || c != spawner {
		return false
	}

	if that.HasPiece(c, player) {
		return false
	}

	that.SetTile(c, player.Piece())

	return true
}

// MovePiece - relocates the piece at from to to without checking legality.
// The source becomes Reserved when it is a spawner and Empty otherwise.
func (that *Board) MovePiece(from, to Coord) {
	if from == to {
		return
	}

	switch piece := that.Tile(from); piece {
	case Player1Piece, Player2Piece:
		that.SetTile(to, piece)
		if IsSpawner(from) {
			that.SetTile(from, Reserved)
		} else {
			that.SetTile(from, Empty)
		}
	case Empty, Reserved:
	default:
		panic("unknown tile state " + piece.String())
	}
}

// Tiles - returns a copy of the grid, indexed [y][x].
func (that *Board) Tiles() [Dimension][Dimension]Tile {
	return that.tiles
}

// Clone - returns an independent copy of the board.
func (that *Board) Clone() *Board {
	clone := *that

	return &clone
}

// Count - returns the number of tiles equal to tile.
func (that *Board) Count(tile Tile) int {
	count := 0
	for y := 0; y < Dimension; y++ {
		for x := 0; x < Dimension; x++ {
			if that.tiles[y][x] == tile {
				count++
			}
		}
	}

	return count
}
