package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/game"
)

const writeWait = 10 * time.Second

type matchSaver interface {
	Save(ctx context.Context, session game.Session) (*entity.GameRecord, error)
}

type handlerFunc func(ctx context.Context, conn *connection, message *Message) error

// Server runs one match per socket, streaming the engine's moves as they are made.
type Server struct {
	logger    *slog.Logger
	matches   matchSaver
	moveDelay time.Duration
	upgrader  websocket.Upgrader

	handlers map[string]handlerFunc
}

// connection is the per-socket state. Messages are handled one at a time, so session needs no lock.
type connection struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
	session *game.Session
}

func New(logger *slog.Logger, matches matchSaver, moveDelay time.Duration) *Server {
	server := &Server{
		logger:    logger.With("component", "websocket"),
		matches:   matches,
		moveDelay: moveDelay,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionTurn] = server.handleTurn

	return server
}

func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	ws, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", "error", err)
		return
	}
	defer ws.Close()

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	if err = that.handleMessages(r.Context(), &connection{ws: ws}); err != nil {
		log.Info("WebSocket connection closed", "reason", err)
	}
}

// handleMessages - processes messages from the client until the socket closes.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.ws.ReadMessage()
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = that.sendError(conn, "invalid message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = that.sendError(conn, fmt.Sprintf("unknown action %q", message.Action)); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, conn, &message); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			log.Error("error processing message", "action", message.Action, "error", err)
			return err
		}
	}
}

func (that *Server) send(conn *connection, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	conn.writeMu.Lock()
	defer conn.writeMu.Unlock()

	_ = conn.ws.SetWriteDeadline(time.Now().Add(writeWait))

	if err = conn.ws.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *connection, message string) error {
	return that.send(conn, actionError, ResponsePayload{Error: message})
}
