package entity

// Verdict is the terminal state of a board.
type Verdict uint8

const (
	NoVerdict Verdict = iota
	Player1Wins
	Player2Wins
	Draw
)

func (that Verdict) String() string {
	switch that {
	case Player1Wins:
		return "P1 wins"
	case Player2Wins:
		return "P2 wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Finished - reports whether the verdict ends the game.
func (that Verdict) Finished() bool {
	return that != NoVerdict
}

// Tally is the result of one board scan.
type Tally struct {
	Player1Pieces int
	Player2Pieces int
	Player1Mobile bool
	Player2Mobile bool
}

// Scan - counts the pieces on passable tiles and checks mobility. A player
// loses mobility as soon as one of their pieces has no valid destination.
func (that *Board) Scan() Tally {
	tally := Tally{Player1Mobile: true, Player2Mobile: true}

	for y := 0; y < Dimension; y++ {
		for x := 0; x < Dimension; x++ {
			c := Coord{X: x, Y: y}
			if IsNonPassable(c) {
				continue
			}

			switch tile := that.Tile(c); tile {
			case Player1Piece:
				tally.Player1Pieces++
				if tally.Player1Mobile && !that.HasValidMove(c, Player1) {
					tally.Player1Mobile = false
				}
			case Player2Piece:
				tally.Player2Pieces++
				if tally.Player2Mobile && !that.HasValidMove(c, Player2) {
					tally.Player2Mobile = false
				}
			case Empty, Reserved:
			default:
				panic("unknown tile state " + tile.String())
			}
		}
	}

	return tally
}

// Winner - returns the verdict for the current board.
func (that *Board) Winner() Verdict {
	return that.Scan().Verdict()
}

// Verdict - applies the terminal rules: piece count first, mobility second.
func (that Tally) Verdict() Verdict {
	switch {
	case that.Player1Pieces == 0:
		if that.Player2Pieces == 0 {
			return Draw
		}
		return Player2Wins
	case that.Player2Pieces == 0:
		return Player1Wins
	case !that.Player1Mobile:
		if !that.Player2Mobile {
			return Draw
		}
		return Player2Wins
	case !that.Player2Mobile:
		return Player1Wins
	default:
		return NoVerdict
	}
}
