package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameSession(t *testing.T) {
	session := NewGameSession()

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, NewBoard().Tiles(), session.Board.Tiles())
	assert.Equal(t, InitialSpawns, session.RemainingSpawns(Player1))
	assert.Equal(t, InitialSpawns, session.RemainingSpawns(Player2))
	assert.Equal(t, 0, session.RemainingSpawns(NoPlayer))
	assert.NotEqual(t, session.ID, NewGameSession().ID)
}

func TestGameSession_Spawn(t *testing.T) {
	t.Run("Spends the budget", func(t *testing.T) {
		session := NewGameSession()

		require.True(t, session.Spawn(Player1, At(4, 0)))

		assert.Equal(t, InitialSpawns-1, session.RemainingSpawns(Player1))
		assert.Equal(t, InitialSpawns, session.RemainingSpawns(Player2))
	})

	t.Run("Refused spawn keeps the budget", func(t *testing.T) {
		session := NewGameSession()

		require.False(t, session.Spawn(Player1, At(4, 8)))

		assert.Equal(t, InitialSpawns, session.RemainingSpawns(Player1))
	})

	t.Run("Stops when the budget is spent", func(t *testing.T) {
		// Given: player 1 spawns and moves the piece away five times
		session := NewGameSession()
		for i := 0; i < InitialSpawns; i++ {
			require.True(t, session.Spawn(Player1, At(4, 0)), "spawn %d", i)
			session.Board.MovePiece(At(4, 0), At(0, i+2))
		}

		// When: a sixth spawn is attempted
		ok := session.Spawn(Player1, At(4, 0))

		// Then: it is refused and the spawner stays reserved
		assert.False(t, ok)
		assert.Equal(t, 0, session.RemainingSpawns(Player1))
		assert.Equal(t, Reserved, session.Board.Tile(At(4, 0)))
	})
}
