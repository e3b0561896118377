package entity

import "fmt"

// Dimension is the side length of the square board.
const Dimension = 9

// Coord is a board coordinate. x grows to the right, y grows from player 1's
// home row towards player 2's.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InvalidCoord marks a blocked movement slot.
var InvalidCoord = Coord{X: -1, Y: -1}

func At(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Valid - reports whether the coordinate is not the blocked-slot sentinel.
func (that Coord) Valid() bool {
	return that != InvalidCoord
}

// String - formats the coordinate as column number and row letter, e.g. "4b".
func (that Coord) String() string {
	if that.Y < 0 || that.Y >= 26 {
		return fmt.Sprintf("%d,%d", that.X, that.Y)
	}

	return fmt.Sprintf("%d%c", that.X, 'a'+rune(that.Y))
}
