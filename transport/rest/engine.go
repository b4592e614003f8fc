package rest

import (
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type positionRequest struct {
	Board  *entity.Board `json:"tabuleiro"`
	Player entity.Mark   `json:"jogador"`
}

type treeRequest struct {
	positionRequest
	Depth *int `json:"profundidade"`
}

func (that *handlers) bestMove(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Board == nil {
		writeError(w, http.StatusBadRequest, "tabuleiro is required")
		return
	}

	move, err := tictactoe.BestMove(*req.Board, req.Player)
	if err != nil {
		writeError(w, engineErrorStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, move)
}

// searchTree renders the continuations of a position; the depth is capped by configuration.
func (that *handlers) searchTree(w http.ResponseWriter, r *http.Request) {
	var req treeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Board == nil {
		writeError(w, http.StatusBadRequest, "tabuleiro is required")
		return
	}

	depth := that.maxTreeDepth
	if req.Depth != nil {
		depth = min(*req.Depth, that.maxTreeDepth)
	}

	tree, err := tictactoe.BuildTree(*req.Board, req.Player, depth)
	if err != nil {
		writeError(w, engineErrorStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, tree)
}

func (that *handlers) playAIvsAI(w http.ResponseWriter, r *http.Request) {
	_, record, err := that.matches.PlayAIvsAI(r.Context())
	if err != nil {
		that.logger.Error("could not play AI vs AI match", "error", err)
		writeError(w, http.StatusInternalServerError, "Falha ao salvar")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func engineErrorStatus(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameAlreadyOver):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidBoard),
		errors.Is(err, apperror.ErrInvalidPlayer),
		errors.Is(err, apperror.ErrInvalidDepth):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
