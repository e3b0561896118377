package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/latix/internal/entity"
	"github.com/rocketscienceinc/latix/internal/usecase"
)

// Render - draws the grid with one glyph per tile, row letters on the left
// and column numbers on top, then the phase, spawn budgets and status line.
func Render(view usecase.View, status string) string {
	var sb strings.Builder

	sb.WriteString("  ")
	for x := 0; x < entity.Dimension; x++ {
		fmt.Fprintf(&sb, " %d", x)
	}
	sb.WriteByte('\n')

	for y := 0; y < entity.Dimension; y++ {
		fmt.Fprintf(&sb, " %c", 'a'+rune(y))
		for x := 0; x < entity.Dimension; x++ {
			sb.WriteByte(' ')
			if view.HasOrigin && view.Origin == entity.At(x, y) {
				sb.WriteByte('*')
				continue
			}
			sb.WriteByte(glyph(view.Tiles[y][x]))
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "%s | spawns P1:%d P2:%d\n", view.Phase, view.Player1Spawns, view.Player2Spawns)

	if status != "" {
		sb.WriteString(status)
		sb.WriteByte('\n')
	}

	return sb.String()
}

func glyph(tile entity.Tile) byte {
	switch tile {
	case entity.Player1Piece:
		return '1'
	case entity.Player2Piece:
		return '2'
	case entity.Empty:
		return '+'
	case entity.Reserved:
		return 'x'
	default:
		panic("unknown tile state " + tile.String())
	}
}
