package entity

import "fmt"

// Tile is the content of a single board cell.
type Tile uint8

const (
	Empty Tile = iota
	Player1Piece
	Player2Piece
	Reserved
)

func (that Tile) String() string {
	switch that {
	case Empty:
		return "empty"
	case Player1Piece:
		return "p1"
	case Player2Piece:
		return "p2"
	case Reserved:
		return "reserved"
	default:
		return fmt.Sprintf("tile(%d)", uint8(that))
	}
}

// Valid - reports whether the tile is one of the four known states.
func (that Tile) Valid() bool {
	switch that {
	case Empty, Player1Piece, Player2Piece, Reserved:
		return true
	default:
		return false
	}
}

// Owner - returns the player whose piece sits on the tile, or NoPlayer.
func (that Tile) Owner() Player {
	switch that {
	case Player1Piece:
		return Player1
	case Player2Piece:
		return Player2
	case Empty, Reserved:
		return NoPlayer
	default:
		panic(fmt.Sprintf("unknown tile state %d", uint8(that)))
	}
}

// Player identifies a side. NoPlayer is used as a neutral viewer.
type Player uint8

const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (that Player) String() string {
	switch that {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "none"
	}
}

// Piece - returns the tile holding this player's piece.
func (that Player) Piece() Tile {
	switch that {
	case Player1:
		return Player1Piece
	case Player2:
		return Player2Piece
	default:
		panic(fmt.Sprintf("player %d has no piece", uint8(that)))
	}
}

// Opponent - returns the other side.
func (that Player) Opponent() Player {
	switch that {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}
