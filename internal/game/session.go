package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// Session is the state of one match between the engine and either itself or a human.
type Session struct {
	Kind        entity.MatchKind `json:"tipo"`
	Human       entity.Mark      `json:"humano"`
	FirstPlayer entity.Mark      `json:"primeiroJogador"`
	Board       entity.Board     `json:"tabuleiro"`
	Turn        entity.Mark      `json:"vez"`
	Actions     []entity.Action  `json:"acoes"`
	Result      entity.Result    `json:"resultado"`
}

// Input carries the human's move. Position is nil when the engine is to move.
type Input struct {
	Position *int
}

// At is the input for a human move on pos.
func At(pos int) Input {
	return Input{Position: &pos}
}

// NewSession starts an empty board with X to move. human is Empty for an AI vs AI match.
func NewSession(kind entity.MatchKind, human entity.Mark) (Session, error) {
	if !kind.IsValid() {
		return Session{}, fmt.Errorf("%w: unknown tipo %q", apperror.ErrInvalidRecord, string(kind))
	}

	switch {
	case kind == entity.KindAIvsAI && human != entity.Empty:
		return Session{}, fmt.Errorf("%w: an AI vs AI match has no human", apperror.ErrInvalidPlayer)
	case kind == entity.KindAIvsHuman && !human.IsPlayer():
		return Session{}, fmt.Errorf("%w: the human must play X or O, got %q", apperror.ErrInvalidPlayer, string(human))
	}

	return Session{
		Kind:        kind,
		Human:       human,
		FirstPlayer: entity.PlayerX,
		Turn:        entity.PlayerX,
		Actions:     []entity.Action{},
	}, nil
}

func (that Session) IsOver() bool {
	return that.Result.IsTerminal()
}

func (that Session) IsHumanTurn() bool {
	return !that.IsOver() && that.Human != entity.Empty && that.Turn == that.Human
}

// Advance plays one move and returns the next session. s is never modified.
func Advance(s Session, in Input) (Session, error) {
	if s.IsOver() {
		return s, fmt.Errorf("%w: result %s", apperror.ErrGameAlreadyOver, string(s.Result))
	}

	var position int

	if s.IsHumanTurn() {
		if in.Position == nil {
			return s, apperror.ErrInputRequired
		}
		position = *in.Position
	} else {
		move, err := tictactoe.BestMove(s.Board, s.Turn)
		if err != nil {
			return s, fmt.Errorf("engine move failed: %w", err)
		}
		position = move.Position
	}

	board, err := s.Board.ApplyMove(position, s.Turn)
	if err != nil {
		return s, err
	}

	next := s
	next.Board = board
	next.Actions = append(slices.Clone(s.Actions), entity.Action{Player: s.Turn, Position: position})
	next.Result = board.TerminalResult()
	next.Turn = s.Turn.Opponent()

	return next, nil
}

// PlayOut advances until the game ends, calling observe after every move when it is set.
// It stops with ErrInputRequired if the human is to move.
func PlayOut(s Session, observe func(Session)) (Session, error) {
	for !s.IsOver() {
		next, err := Advance(s, Input{})
		if err != nil {
			return s, err
		}

		s = next
		if observe != nil {
			observe(s)
		}
	}

	return s, nil
}

// Record converts the session into a history entry dated now.
func (that Session) Record(now time.Time) entity.GameRecord {
	return entity.GameRecord{
		Kind:        that.Kind,
		Date:        now,
		Result:      that.Result,
		FinalBoard:  that.Board,
		Actions:     slices.Clone(that.Actions),
		FirstPlayer: that.FirstPlayer,
	}
}
