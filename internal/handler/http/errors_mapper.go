package http

import (
	"errors"
	"net/http"

	"github.com/SeKiZo0/NotesApp/internal/logger"
	"github.com/SeKiZo0/NotesApp/internal/service"
	"github.com/SeKiZo0/NotesApp/internal/store"
	"github.com/SeKiZo0/NotesApp/internal/utils"
	"github.com/SeKiZo0/NotesApp/models"
)

// writeError converts a service or repository error into the API error
// taxonomy:
//
//   - validation errors -> 400 with the descriptive message, logged at
//     debug level only (not a server fault);
//   - unknown note id -> 404 with a fixed message, no internal detail;
//   - everything else -> 500; the underlying error is logged server-side
//     and echoed to the caller only in the development environment.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrValidation):
		log.Debug().Err(err).Str("func", fn).Msg("request validation failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)

	case errors.Is(err, store.ErrNoteNotFound):
		utils.WriteJSON(w, models.ErrorResponse{Error: "note not found"}, http.StatusNotFound)

	default:
		log.Error().Err(err).Str("func", fn).Msg("internal server error")

		message := "internal server error"
		if h.development {
			message = err.Error()
		}
		utils.WriteJSON(w, models.ErrorResponse{Error: message}, http.StatusInternalServerError)
	}
}
