package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/latix/internal/entity"
	"github.com/rocketscienceinc/latix/internal/latix"
)

type saveRepo interface {
	Save(ctx context.Context, slot string, snapshot *entity.Snapshot) error
	Load(ctx context.Context, slot string) (*entity.Snapshot, error)
}

// View is a consistent copy of the session for rendering.
type View struct {
	SessionID     string
	Tiles         [entity.Dimension][entity.Dimension]entity.Tile
	Phase         latix.Phase
	Origin        entity.Coord
	HasOrigin     bool
	Player1Spawns int
	Player2Spawns int
}

// GameManager owns the single active session and serialises access to it.
type GameManager struct {
	logger   *slog.Logger
	saveRepo saveRepo
	slot     string

	mu         sync.Mutex
	controller *latix.TurnController
}

func NewGameManager(logger *slog.Logger, saveRepo saveRepo, slot string) *GameManager {
	manager := &GameManager{
		logger:   logger.With("component", "game_manager"),
		saveRepo: saveRepo,
		slot:     slot,

		controller: latix.NewTurnController(),
	}

	manager.logger.Info("game started", "session", manager.controller.Session().ID)

	return manager
}

// Select - applies one chosen cell to the active session.
func (that *GameManager) Select(c entity.Coord) latix.Result {
	that.mu.Lock()
	defer that.mu.Unlock()

	session := that.controller.Session()
	result := that.controller.Select(c)

	that.logResult(session, result)

	return result
}

// Reset - abandons the active session and starts a new one.
func (that *GameManager) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	previous := that.controller.Session().ID
	that.controller.Reset()

	that.logger.Info("game reset", "previous", previous, "session", that.controller.Session().ID)
}

// Save - writes the grid and both spawn budgets to the configured slot.
func (that *GameManager) Save(ctx context.Context) error {
	log := that.logger.With("method", "Save", "slot", that.slot)

	that.mu.Lock()
	snapshot := that.controller.Session().Snapshot()
	that.mu.Unlock()

	if err := that.saveRepo.Save(ctx, that.slot, snapshot); err != nil {
		log.Error("failed to save game", "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}

	log.Info("game saved")

	return nil
}

// Load - replaces the active session with the saved one. The active session
// is untouched unless the record was read and validated in full.
func (that *GameManager) Load(ctx context.Context) error {
	log := that.logger.With("method", "Load", "slot", that.slot)

	snapshot, err := that.saveRepo.Load(ctx, that.slot)
	if err != nil {
		log.Error("failed to load game", "error", err)
		return fmt.Errorf("failed to load game: %w", err)
	}

	session, err := entity.RestoreSession(snapshot)
	if err != nil {
		log.Error("saved game is invalid", "error", err)
		return fmt.Errorf("failed to restore game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if verdict := that.controller.Restore(session); verdict.Finished() {
		log.Info("loaded game was already over, restarted", "verdict", verdict.String())
		return nil
	}

	log.Info("game loaded", "session", session.ID, "phase", that.controller.Phase().String())

	return nil
}

// View - returns a copy of the active session.
func (that *GameManager) View() View {
	that.mu.Lock()
	defer that.mu.Unlock()

	session := that.controller.Session()
	origin, hasOrigin := that.controller.Origin()

	return View{
		SessionID:     session.ID,
		Tiles:         session.Board.Tiles(),
		Phase:         that.controller.Phase(),
		Origin:        origin,
		HasOrigin:     hasOrigin,
		Player1Spawns: session.RemainingSpawns(entity.Player1),
		Player2Spawns: session.RemainingSpawns(entity.Player2),
	}
}

func (that *GameManager) logResult(session *entity.GameSession, result latix.Result) {
	log := that.logger.With("session", session.ID, "at", fmt.Sprintf("%ds", int(session.Elapsed().Seconds())))

	switch result.Outcome {
	case latix.Spawned:
		log.Info("spawn", "player", result.Player.String(), "cell", result.To.String())
	case latix.Moved:
		log.Info("move", "player", result.Player.String(), "notation", result.From.String()+"-"+result.To.String())
	case latix.OriginSelected, latix.SelectionCancelled:
		log.Debug(result.Outcome.String(), "player", result.Player.String(), "cell", result.From.String())
	case latix.Ignored:
	}

	if result.Verdict.Finished() {
		log.Info("game over", "verdict", result.Verdict.String(), "next", that.controller.Session().ID)
	}
}
