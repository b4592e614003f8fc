package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/game"
)

func (that *Server) handleNewGame(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleNewGame")

	var payload NewGamePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return that.sendError(conn, "invalid payload: "+err.Error())
	}

	if payload.Kind == "" {
		payload.Kind = entity.KindAIvsAI
	}

	session, err := game.NewSession(payload.Kind, payload.Human)
	if err != nil {
		return that.sendError(conn, err.Error())
	}

	conn.session = &session
	log.Info("match started", "tipo", session.Kind, "humano", session.Human)

	if err = that.send(conn, actionState, ResponsePayload{Game: conn.session}); err != nil {
		return err
	}

	return that.runEngine(ctx, conn)
}

func (that *Server) handleTurn(ctx context.Context, conn *connection, msg *Message) error {
	if conn.session == nil {
		return that.sendError(conn, "no game in progress")
	}

	var payload TurnPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return that.sendError(conn, "invalid payload: "+err.Error())
	}

	if payload.Position == nil {
		return that.sendError(conn, "posicao is required")
	}

	if !conn.session.IsHumanTurn() {
		return that.sendError(conn, "not your turn")
	}

	next, err := game.Advance(*conn.session, game.At(*payload.Position))
	if err != nil {
		return that.sendError(conn, err.Error())
	}

	conn.session = &next

	if err = that.send(conn, actionState, ResponsePayload{Game: conn.session}); err != nil {
		return err
	}

	return that.runEngine(ctx, conn)
}

// runEngine plays engine moves one at a time until the human is to move or the game ends.
func (that *Server) runEngine(ctx context.Context, conn *connection) error {
	for !conn.session.IsOver() && !conn.session.IsHumanTurn() {
		if err := that.wait(ctx); err != nil {
			return err
		}

		next, err := game.Advance(*conn.session, game.Input{})
		if err != nil {
			return that.sendError(conn, err.Error())
		}

		conn.session = &next

		if err = that.send(conn, actionState, ResponsePayload{Game: conn.session}); err != nil {
			return err
		}
	}

	if conn.session.IsOver() {
		return that.finish(ctx, conn)
	}

	return nil
}

func (that *Server) finish(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "finish")

	record, err := that.matches.Save(ctx, *conn.session)
	if err != nil {
		log.Error("could not save match", "error", err)
		if err = that.send(conn, actionFinished, ResponsePayload{Game: conn.session}); err != nil {
			return err
		}
		return that.sendError(conn, "failed to save match")
	}

	return that.send(conn, actionFinished, ResponsePayload{Game: conn.session, Record: record})
}

func (that *Server) wait(ctx context.Context) error {
	if that.moveDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(that.moveDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
