package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/game"
	mockedService "github.com/rocketscienceinc/tictactoe-minimax/mocks/service"
)

func newTestMatchService(history historyRecorder) *MatchService {
	svc := NewMatchService(slog.New(slog.NewTextHandler(io.Discard, nil)), history)
	svc.now = func() time.Time { return fixedNow }

	return svc
}

func echoRecord(_ context.Context, record *entity.GameRecord) (*entity.GameRecord, error) {
	saved := *record
	saved.ID = "saved"

	return &saved, nil
}

func TestMatchService_PlayAIvsAI(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays to a draw and saves the match", func(t *testing.T) {
		// Given: a history that accepts anything
		mockHistory := mockedService.NewMockhistoryRecorder(t)
		svc := newTestMatchService(mockHistory)

		mockHistory.EXPECT().
			Append(mock.Anything, mock.AnythingOfType("*entity.GameRecord")).
			RunAndReturn(echoRecord).
			Once()

		// When: the engine plays itself
		session, record, err := svc.PlayAIvsAI(ctx)

		// Then: the game is a full-board draw and the stored record mirrors it
		require.NoError(t, err)
		assert.Equal(t, entity.ResultDraw, session.Result)
		assert.Equal(t, "saved", record.ID)
		assert.Equal(t, entity.KindAIvsAI, record.Kind)
		assert.Equal(t, fixedNow, record.Date)
		assert.Equal(t, session.Board, record.FinalBoard)
		assert.Len(t, record.Actions, entity.BoardSize)
	})

	t.Run("Reports save failures", func(t *testing.T) {
		mockHistory := mockedService.NewMockhistoryRecorder(t)
		svc := newTestMatchService(mockHistory)

		mockHistory.EXPECT().
			Append(mock.Anything, mock.Anything).
			Return(nil, errDiskFull).
			Once()

		session, _, err := svc.PlayAIvsAI(ctx)

		require.ErrorIs(t, err, errDiskFull)
		assert.True(t, session.IsOver())
	})
}

func TestMatchService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Refuses a game in progress", func(t *testing.T) {
		// Given: a session with no moves
		svc := newTestMatchService(mockedService.NewMockhistoryRecorder(t))
		session, err := game.NewSession(entity.KindAIvsHuman, entity.PlayerO)
		require.NoError(t, err)

		// When: saving it
		_, err = svc.Save(ctx, session)

		// Then: nothing is stored
		require.ErrorIs(t, err, apperror.ErrGameInProgress)
	})

	t.Run("Saves a finished human match", func(t *testing.T) {
		// Given: a human who lost as O after opening on an edge
		mockHistory := mockedService.NewMockhistoryRecorder(t)
		svc := newTestMatchService(mockHistory)

		session, _ := game.NewSession(entity.KindAIvsHuman, entity.PlayerO)
		humanMoves := []int{1, 2, 5, 6}
		for !session.IsOver() {
			var in game.Input
			if session.IsHumanTurn() {
				in = game.At(session.Board.LegalMoves()[0])
				for _, pos := range humanMoves {
					if session.Board[pos] == entity.Empty {
						in = game.At(pos)
						break
					}
				}
			}

			next, err := game.Advance(session, in)
			require.NoError(t, err)
			session = next
		}

		mockHistory.EXPECT().
			Append(mock.Anything, mock.MatchedBy(func(r *entity.GameRecord) bool {
				return r.Kind == entity.KindAIvsHuman && r.Result == session.Result
			})).
			RunAndReturn(echoRecord).
			Once()

		// When: saving it
		record, err := svc.Save(ctx, session)

		// Then: the record keeps the human kind and the engine never lost
		require.NoError(t, err)
		assert.Equal(t, entity.KindAIvsHuman, record.Kind)
		assert.NotEqual(t, entity.ResultO, record.Result)
	})
}
