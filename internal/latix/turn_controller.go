package latix

import (
	"github.com/rocketscienceinc/latix/internal/entity"
)

// Phase is the state of the turn machine.
type Phase uint8

const (
	PhaseInit Phase = iota
	PhaseP1SelectOrigin
	PhaseP1SelectDestination
	PhaseP2SelectOrigin
	PhaseP2SelectDestination
)

func (that Phase) String() string {
	switch that {
	case PhaseInit:
		return "init"
	case PhaseP1SelectOrigin:
		return "P1 select origin"
	case PhaseP1SelectDestination:
		return "P1 select destination"
	case PhaseP2SelectOrigin:
		return "P2 select origin"
	case PhaseP2SelectDestination:
		return "P2 select destination"
	default:
		return "unknown"
	}
}

// Player - returns the side expected to act in this phase.
func (that Phase) Player() entity.Player {
	switch that {
	case PhaseP1SelectOrigin, PhaseP1SelectDestination:
		return entity.Player1
	case PhaseP2SelectOrigin, PhaseP2SelectDestination:
		return entity.Player2
	default:
		return entity.NoPlayer
	}
}

func originPhase(player entity.Player) Phase {
	if player == entity.Player2 {
		return PhaseP2SelectOrigin
	}
	return PhaseP1SelectOrigin
}

func destinationPhase(player entity.Player) Phase {
	if player == entity.Player2 {
		return PhaseP2SelectDestination
	}
	return PhaseP1SelectDestination
}

// Outcome describes what a single input did.
type Outcome uint8

const (
	Ignored Outcome = iota
	OriginSelected
	SelectionCancelled
	Moved
	Spawned
)

func (that Outcome) String() string {
	switch that {
	case OriginSelected:
		return "origin selected"
	case SelectionCancelled:
		return "selection cancelled"
	case Moved:
		return "moved"
	case Spawned:
		return "spawned"
	default:
		return "ignored"
	}
}

// Result is returned for every input. Verdict is set when the game ended
// and a fresh session was started in its place.
type Result struct {
	Outcome Outcome
	Player  entity.Player
	From    entity.Coord
	To      entity.Coord
	Verdict entity.Verdict
}

// TurnController sequences turns over a GameSession. It is not safe for
// concurrent use.
type TurnController struct {
	session *entity.GameSession
	phase   Phase
	origin  entity.Coord
}

// NewTurnController - returns a controller with a fresh session waiting for player 1.
func NewTurnController() *TurnController {
	controller := &TurnController{phase: PhaseInit}
	controller.Tick()

	return controller
}

func (that *TurnController) Session() *entity.GameSession {
	return that.session
}

func (that *TurnController) Phase() Phase {
	return that.phase
}

// Origin - returns the pending origin while a destination is expected.
func (that *TurnController) Origin() (entity.Coord, bool) {
	switch that.phase {
	case PhaseP1SelectDestination, PhaseP2SelectDestination:
		return that.origin, true
	default:
		return entity.InvalidCoord, false
	}
}

// Tick - starts a session when in Init, otherwise checks for a verdict and
// restarts the game if there is one.
func (that *TurnController) Tick() entity.Verdict {
	if that.phase == PhaseInit {
		that.start()
		return entity.NoVerdict
	}

	verdict := that.session.Board.Winner()
	if verdict.Finished() {
		that.phase = PhaseInit
		that.start()
	}

	return verdict
}

// Reset - discards the current session and starts a new one.
func (that *TurnController) Reset() {
	that.phase = PhaseInit
	that.Tick()
}

// Restore - replaces the session, keeping whose turn it is. A pending origin
// is dropped because the grid it referred to is gone.
func (that *TurnController) Restore(session *entity.GameSession) entity.Verdict {
	player := that.phase.Player()
	if player == entity.NoPlayer {
		player = entity.Player1
	}

	that.session = session
	that.phase = originPhase(player)
	that.origin = entity.InvalidCoord

	return that.Tick()
}

// Select - feeds one chosen coordinate into the machine.
func (that *TurnController) Select(c entity.Coord) Result {
	if verdict := that.Tick(); verdict.Finished() {
		return Result{Outcome: Ignored, Verdict: verdict}
	}

	var result Result

	switch that.phase {
	case PhaseP1SelectOrigin, PhaseP2SelectOrigin:
		result = that.selectOrigin(c)
	case PhaseP1SelectDestination, PhaseP2SelectDestination:
		result = that.selectDestination(c)
	case PhaseInit:
		result = Result{Outcome: Ignored}
	}

	if result.Outcome == Moved || result.Outcome == Spawned {
		result.Verdict = that.Tick()
	}

	return result
}

func (that *TurnController) start() {
	that.session = entity.NewGameSession()
	that.origin = entity.InvalidCoord
	that.phase = PhaseP1SelectOrigin
}

func (that *TurnController) selectOrigin(c entity.Coord) Result {
	player := that.phase.Player()

	if that.session.Board.HasPiece(c, player) {
		that.origin = c
		that.phase = destinationPhase(player)

		return Result{Outcome: OriginSelected, Player: player, From: c, To: entity.InvalidCoord}
	}

	if that.session.Spawn(player, c) {
		that.phase = originPhase(player.Opponent())

		return Result{Outcome: Spawned, Player: player, From: entity.InvalidCoord, To: c}
	}

	return Result{Outcome: Ignored, Player: player, From: entity.InvalidCoord, To: entity.InvalidCoord}
}

func (that *TurnController) selectDestination(c entity.Coord) Result {
	player := that.phase.Player()
	origin := that.origin

	if c == origin {
		that.origin = entity.InvalidCoord
		that.phase = originPhase(player)

		return Result{Outcome: SelectionCancelled, Player: player, From: origin, To: entity.InvalidCoord}
	}

	if !that.session.Board.CanMove(origin, c, player) {
		return Result{Outcome: Ignored, Player: player, From: origin, To: entity.InvalidCoord}
	}

	that.session.Board.MovePiece(origin, c)
	that.origin = entity.InvalidCoord
	that.phase = originPhase(player.Opponent())

	return Result{Outcome: Moved, Player: player, From: origin, To: c}
}
