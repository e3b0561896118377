package entity

import (
	"time"

	"github.com/google/uuid"
)

// InitialSpawns is the spawn budget each player starts with.
const InitialSpawns = 5

// GameSession is one game in progress: the board and both spawn budgets.
type GameSession struct {
	ID        string
	Board     *Board
	StartedAt time.Time

	player1Spawns int
	player2Spawns int
}

// NewGameSession - creates a session in the starting layout with full spawn budgets.
func NewGameSession() *GameSession {
	return &GameSession{
		ID:            uuid.New().String(),
		Board:         NewBoard(),
		StartedAt:     time.Now(),
		player1Spawns: InitialSpawns,
		player2Spawns: InitialSpawns,
	}
}

// RemainingSpawns - returns how many spawns the player has left.
func (that *GameSession) RemainingSpawns(player Player) int {
	switch player {
	case Player1:
		return that.player1Spawns
	case Player2:
		return that.player2Spawns
	default:
		return 0
	}
}

// Spawn - spends one spawn of player on c. Returns false, without touching
// the budget or the board, when the budget is exhausted or the spawn is refused.
func (that *GameSession) Spawn(player Player, c Coord) bool {
	if that.RemainingSpawns(player) <= 0 {
		return false
	}

	if !that.Board.TrySpawn(player, c) {
		return false
	}

	switch player {
	case Player1:
		that.player1Spawns--
	case Player2:
		that.player2Spawns--
	case NoPlayer:
	}

	return true
}

// Elapsed - time since the session was created.
func (that *GameSession) Elapsed() time.Duration {
	return time.Since(that.StartedAt)
}

// Snapshot - captures the persisted part of the session.
func (that *GameSession) Snapshot() *Snapshot {
	return &Snapshot{
		Tiles:         that.Board.Tiles(),
		Player1Spawns: that.player1Spawns,
		Player2Spawns: that.player2Spawns,
	}
}

// RestoreSession - builds a new session from a validated snapshot.
func RestoreSession(snapshot *Snapshot) (*GameSession, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	return &GameSession{
		ID:            uuid.New().String(),
		Board:         &Board{tiles: snapshot.Tiles},
		StartedAt:     time.Now(),
		player1Spawns: snapshot.Player1Spawns,
		player2Spawns: snapshot.Player2Spawns,
	}, nil
}
