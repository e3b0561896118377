package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/latix/internal/entity"
	"github.com/rocketscienceinc/latix/internal/latix"
	"github.com/rocketscienceinc/latix/internal/repository"
	"github.com/rocketscienceinc/latix/internal/usecase"
)

var errDiskFull = errors.New("disk full")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGame(t *testing.T) *usecase.GameManager {
	t.Helper()

	saveRepo, err := repository.NewFileSaveRepository(t.TempDir())
	require.NoError(t, err)

	return usecase.NewGameManager(discardLogger(), saveRepo, "latix")
}

func TestServer_Start(t *testing.T) {
	t.Run("Plays, saves, resets and opens", func(t *testing.T) {
		// Given: a console fed with a short session
		var out bytes.Buffer
		game := newGame(t)
		server := New(discardLogger(), game, strings.NewReader("4b\n4c\ns\nr\no\nq\np\n"), &out)

		// When: the server runs
		err := server.Start(context.Background())

		// Then: every command reported its outcome
		require.NoError(t, err)

		output := out.String()
		assert.Contains(t, output, "P1 picked 4b")
		assert.Contains(t, output, "P1 4b-4c")
		assert.Contains(t, output, "saving game [DONE]")
		assert.Contains(t, output, "new game")
		assert.Contains(t, output, "opening game [DONE]")

		// and the saved move is live again, with input after quit left unread
		view := game.View()
		assert.Equal(t, entity.Player1Piece, view.Tiles[2][4])
		assert.Equal(t, latix.PhaseP1SelectOrigin, view.Phase)
		assert.True(t, strings.HasSuffix(output, "opening game [DONE]\n"))
	})

	t.Run("Stops at end of input", func(t *testing.T) {
		var out bytes.Buffer
		server := New(discardLogger(), newGame(t), strings.NewReader("4 0\n"), &out)

		err := server.Start(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), "P1 spawn")
		assert.Contains(t, out.String(), "P2 select origin | spawns P1:4 P2:5")
	})

	t.Run("Open without a save", func(t *testing.T) {
		var out bytes.Buffer
		server := New(discardLogger(), newGame(t), strings.NewReader("o\n"), &out)

		require.NoError(t, server.Start(context.Background()))

		assert.Contains(t, out.String(), "opening game [FAIL]")
	})

	t.Run("Stops on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		reader, writer := io.Pipe()
		defer writer.Close()

		server := New(discardLogger(), newGame(t), reader, io.Discard)

		require.NoError(t, server.Start(ctx))
	})
}

type failingGame struct {
	*usecase.GameManager
}

func (that failingGame) Save(_ context.Context) error {
	return errDiskFull
}

func TestServer_handleSave(t *testing.T) {
	// Given: a game whose store fails
	server := New(discardLogger(), failingGame{newGame(t)}, strings.NewReader(""), io.Discard)

	// When: the game is saved
	status, err := server.handleSave(context.Background(), &Command{Action: "s"})

	// Then: the failure is shown and play continues
	require.NoError(t, err)
	assert.Equal(t, "saving game [FAIL]: disk full", status)
}

func TestServer_handleSelect(t *testing.T) {
	server := New(discardLogger(), newGame(t), strings.NewReader(""), io.Discard)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "compact", args: []string{"4b"}, want: "P1 picked 4b"},
		{name: "cancel", args: []string{"4", "1"}, want: "P1 dropped 4b"},
		{name: "empty cell", args: []string{"0", "4"}, want: "nothing happened, try again"},
		{name: "outside", args: []string{"9", "0"}, want: "9,0 is outside the board"},
		{name: "garbage", args: []string{"foo"}, want: `cannot read a cell from ["foo"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := server.handleSelect(context.Background(), &Command{Action: "select", Args: tt.args})

			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestParseCommand(t *testing.T) {
	command, ok := parseCommand("  S  ")
	require.True(t, ok)
	assert.Equal(t, &Command{Action: "s", Args: []string{}}, command)

	command, ok = parseCommand("4 1")
	require.True(t, ok)
	assert.Equal(t, &Command{Action: "select", Args: []string{"4", "1"}}, command)

	_, ok = parseCommand("   ")
	assert.False(t, ok)
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		args []string
		want entity.Coord
		ok   bool
	}{
		{args: []string{"4b"}, want: entity.At(4, 1), ok: true},
		{args: []string{"0i"}, want: entity.At(0, 8), ok: true},
		{args: []string{"12a"}, want: entity.At(12, 0), ok: true},
		{args: []string{"3", "7"}, want: entity.At(3, 7), ok: true},
		{args: []string{"-1", "2"}, want: entity.At(-1, 2), ok: true},
		{args: []string{"b"}, want: entity.InvalidCoord},
		{args: []string{"44"}, want: entity.InvalidCoord},
		{args: []string{"x", "1"}, want: entity.InvalidCoord},
		{args: []string{"1", "2", "3"}, want: entity.InvalidCoord},
		{args: nil, want: entity.InvalidCoord},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, ok := parseCoord(tt.args)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "P2 4h-4g", describe(latix.Result{
		Outcome: latix.Moved,
		Player:  entity.Player2,
		From:    entity.At(4, 7),
		To:      entity.At(4, 6),
	}))

	assert.Equal(t, "P1 0a-0b; game over: P1 wins, new game started", describe(latix.Result{
		Outcome: latix.Moved,
		Player:  entity.Player1,
		From:    entity.At(0, 0),
		To:      entity.At(0, 1),
		Verdict: entity.Player1Wins,
	}))
}

func TestRender(t *testing.T) {
	// Given: a fresh board with a pending origin
	view := usecase.View{
		Tiles:         entity.NewBoard().Tiles(),
		Phase:         latix.PhaseP1SelectDestination,
		Origin:        entity.At(4, 1),
		HasOrigin:     true,
		Player1Spawns: 5,
		Player2Spawns: 3,
	}

	// When: it is rendered
	lines := strings.Split(Render(view, "P1 picked 4b"), "\n")

	// Then: every row uses the text glyphs
	require.Len(t, lines, 13)
	assert.Equal(t, "   0 1 2 3 4 5 6 7 8", lines[0])
	assert.Equal(t, " a + 1 1 1 x 1 1 1 +", lines[1])
	assert.Equal(t, " b + + 1 1 * 1 1 + +", lines[2])
	assert.Equal(t, " c + + + + + + + + +", lines[3])
	assert.Equal(t, " e + + + x x x + + +", lines[5])
	assert.Equal(t, " i + 2 2 2 x 2 2 2 +", lines[9])
	assert.Equal(t, "P1 select destination | spawns P1:5 P2:3", lines[10])
	assert.Equal(t, "P1 picked 4b", lines[11])
	assert.Equal(t, "", lines[12])
}
