package rest

import (
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type saveResponse struct {
	Success bool   `json:"sucesso"`
	ID      string `json:"id"`
}

// listHistory never fails towards the browser: a broken store reads as an empty history.
func (that *handlers) listHistory(w http.ResponseWriter, r *http.Request) {
	records, err := that.history.List(r.Context())
	if err != nil {
		that.logger.Error("could not list history", "error", err)
		records = nil
	}

	if records == nil {
		records = []entity.GameRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

func (that *handlers) saveMatch(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "saveMatch")

	var record entity.GameRecord
	if err := decodeBody(w, r, &record); err != nil {
		log.Warn("rejected malformed record", "error", err)
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	saved, err := that.history.Append(r.Context(), &record)
	if errors.Is(err, apperror.ErrInvalidRecord) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err != nil {
		log.Error("could not save record", "error", err)
		writeError(w, http.StatusInternalServerError, "Falha ao salvar")
		return
	}

	writeJSON(w, http.StatusOK, saveResponse{Success: true, ID: saved.ID})
}
