package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/game"
)

type historyService interface {
	Append(ctx context.Context, record *entity.GameRecord) (*entity.GameRecord, error)
	List(ctx context.Context) ([]entity.GameRecord, error)
}

type matchService interface {
	PlayAIvsAI(ctx context.Context) (game.Session, *entity.GameRecord, error)
}

type Options struct {
	History      historyService
	Matches      matchService
	Socket       http.Handler
	StaticDir    string
	MaxTreeDepth int
}

type handlers struct {
	logger *slog.Logger

	history      historyService
	matches      matchService
	maxTreeDepth int
}

// NewRouter wires the JSON API, the live match socket and the static browser screens.
func NewRouter(logger *slog.Logger, opts Options) http.Handler {
	h := &handlers{
		logger:       logger.With("component", "rest"),
		history:      opts.History,
		matches:      opts.Matches,
		maxTreeDepth: opts.MaxTreeDepth,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors)

	r.Get("/ping", pingHandler)

	r.Get("/historico", h.listHistory)
	r.Post("/salvar-partida", h.saveMatch)

	r.Route("/api", func(r chi.Router) {
		r.Post("/jogada", h.bestMove)
		r.Post("/arvore", h.searchTree)
		r.Post("/ia-vs-ia", h.playAIvsAI)
	})

	if opts.Socket != nil {
		r.Handle("/ws", opts.Socket)
	}

	if opts.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
	}

	return r
}
