package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/game"
)

type historyRecorder interface {
	Append(ctx context.Context, record *entity.GameRecord) (*entity.GameRecord, error)
}

// MatchService plays engine matches and files finished ones into the history.
type MatchService struct {
	logger  *slog.Logger
	history historyRecorder

	now func() time.Time
}

func NewMatchService(logger *slog.Logger, history historyRecorder) *MatchService {
	return &MatchService{
		logger:  logger.With("component", "match-service"),
		history: history,
		now:     time.Now,
	}
}

// PlayAIvsAI plays a whole engine against engine match and saves it.
func (that *MatchService) PlayAIvsAI(ctx context.Context) (game.Session, *entity.GameRecord, error) {
	session, err := game.NewSession(entity.KindAIvsAI, entity.Empty)
	if err != nil {
		return game.Session{}, nil, err
	}

	session, err = game.PlayOut(session, nil)
	if err != nil {
		return session, nil, fmt.Errorf("could not play match: %w", err)
	}

	record, err := that.Save(ctx, session)
	if err != nil {
		return session, nil, err
	}

	return session, record, nil
}

// Save stores a finished session of either kind.
func (that *MatchService) Save(ctx context.Context, session game.Session) (*entity.GameRecord, error) {
	log := that.logger.With("method", "Save")

	if !session.IsOver() {
		return nil, apperror.ErrGameInProgress
	}

	record := session.Record(that.now().UTC())

	saved, err := that.history.Append(ctx, &record)
	if err != nil {
		log.Error("could not save match", "error", err)
		return nil, fmt.Errorf("could not save match: %w", err)
	}

	log.Info("match saved", "id", saved.ID, "tipo", saved.Kind, "resultado", saved.Result)

	return saved, nil
}
