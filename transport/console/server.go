package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/latix/internal/entity"
	"github.com/rocketscienceinc/latix/internal/latix"
	"github.com/rocketscienceinc/latix/internal/usecase"
)

var errQuit = errors.New("quit")

type uGame interface {
	Select(c entity.Coord) latix.Result
	Reset()
	Save(ctx context.Context) error
	Load(ctx context.Context) error
	View() usecase.View
}

// Command is one parsed input line.
type Command struct {
	Action string
	Args   []string
}

// Server reads commands line by line and prints the board after each one.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	in  io.Reader
	out io.Writer

	handlers map[string]func(ctx context.Context, command *Command) (string, error)
}

func New(logger *slog.Logger, uGame uGame, in io.Reader, out io.Writer) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		in:     in,
		out:    out,

		handlers: make(map[string]func(context.Context, *Command) (string, error)),
	}

	server.handle(server.handleSelect, "select")
	server.handle(server.handleReset, "r", "reset")
	server.handle(server.handleSave, "s", "save")
	server.handle(server.handleOpen, "o", "open")
	server.handle(server.handlePrint, "p", "print")
	server.handle(server.handleHelp, "h", "help", "?")
	server.handle(server.handleQuit, "q", "quit", "exit")

	return server
}

func (that *Server) handle(handler func(context.Context, *Command) (string, error), actions ...string) {
	for _, action := range actions {
		that.handlers[action] = handler
	}
}

// Start - processes input until quit, end of input or context cancellation.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		readErr <- scanner.Err()
	}()

	that.printBoard(helpText)

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				log.Info("input closed")
				return nil
			}

			quit, err := that.handleLine(ctx, line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func (that *Server) handleLine(ctx context.Context, line string) (bool, error) {
	command, ok := parseCommand(line)
	if !ok {
		return false, nil
	}

	handler, ok := that.handlers[command.Action]
	if !ok {
		that.printStatus(fmt.Sprintf("unknown command %q, type h for help", line))
		return false, nil
	}

	status, err := handler(ctx, command)
	if errors.Is(err, errQuit) {
		return true, nil
	}

	if err != nil {
		return false, err
	}

	that.printBoard(status)

	return false, nil
}

// parseCommand - a line whose first word is not a known action is treated
// as a cell selection.
func parseCommand(line string) (*Command, bool) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, false
	}

	switch fields[0] {
	case "r", "reset", "s", "save", "o", "open", "p", "print", "h", "help", "?", "q", "quit", "exit":
		return &Command{Action: fields[0], Args: fields[1:]}, true
	default:
		return &Command{Action: "select", Args: fields}, true
	}
}

func (that *Server) printBoard(status string) {
	if _, err := io.WriteString(that.out, Render(that.uGame.View(), status)); err != nil {
		that.logger.Error("failed to write board", "error", err)
	}
}

func (that *Server) printStatus(status string) {
	if _, err := fmt.Fprintln(that.out, status); err != nil {
		that.logger.Error("failed to write status", "error", err)
	}
}
