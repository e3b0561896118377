package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/latix/internal/entity"
	"github.com/rocketscienceinc/latix/internal/latix"
)

const helpText = `commands: <x> <y> | <x><row letter> select a cell (e.g. "4 1" or "4b"), ` +
	`r reset, s save, o open, p print, q quit`

func (that *Server) handleSelect(_ context.Context, command *Command) (string, error) {
	c, ok := parseCoord(command.Args)
	if !ok {
		return fmt.Sprintf("cannot read a cell from %q", command.Args), nil
	}

	// clicks outside the playable area never reach the engine
	if entity.IsOutOfBounds(c) {
		return fmt.Sprintf("%d,%d is outside the board", c.X, c.Y), nil
	}

	result := that.uGame.Select(c)

	return describe(result), nil
}

func (that *Server) handleReset(_ context.Context, _ *Command) (string, error) {
	that.uGame.Reset()

	return "new game", nil
}

func (that *Server) handleSave(ctx context.Context, _ *Command) (string, error) {
	if err := that.uGame.Save(ctx); err != nil {
		return "saving game [FAIL]: " + err.Error(), nil
	}

	return "saving game [DONE]", nil
}

func (that *Server) handleOpen(ctx context.Context, _ *Command) (string, error) {
	if err := that.uGame.Load(ctx); err != nil {
		return "opening game [FAIL]: " + err.Error(), nil
	}

	return "opening game [DONE]", nil
}

func (that *Server) handlePrint(_ context.Context, _ *Command) (string, error) {
	return "", nil
}

func (that *Server) handleHelp(_ context.Context, _ *Command) (string, error) {
	return helpText, nil
}

func (that *Server) handleQuit(_ context.Context, _ *Command) (string, error) {
	return "", errQuit
}

// parseCoord - accepts "4 1" or the compact "4b".
func parseCoord(args []string) (entity.Coord, bool) {
	switch len(args) {
	case 1:
		arg := args[0]
		if len(arg) < 2 {
			return entity.InvalidCoord, false
		}

		row := arg[len(arg)-1]
		if row < 'a' || row > 'z' {
			return entity.InvalidCoord, false
		}

		x, err := strconv.Atoi(arg[:len(arg)-1])
		if err != nil {
			return entity.InvalidCoord, false
		}

		return entity.At(x, int(row-'a')), true

	case 2:
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return entity.InvalidCoord, false
		}

		y, err := strconv.Atoi(args[1])
		if err != nil {
			return entity.InvalidCoord, false
		}

		return entity.At(x, y), true

	default:
		return entity.InvalidCoord, false
	}
}

func describe(result latix.Result) string {
	var status string

	switch result.Outcome {
	case latix.OriginSelected:
		status = fmt.Sprintf("%s picked %s", result.Player, result.From)
	case latix.SelectionCancelled:
		status = fmt.Sprintf("%s dropped %s", result.Player, result.From)
	case latix.Moved:
		status = fmt.Sprintf("%s %s-%s", result.Player, result.From, result.To)
	case latix.Spawned:
		status = fmt.Sprintf("%s spawn", result.Player)
	case latix.Ignored:
		status = "nothing happened, try again"
	}

	if result.Verdict.Finished() {
		status += fmt.Sprintf("; game over: %s, new game started", result.Verdict)
	}

	return status
}
