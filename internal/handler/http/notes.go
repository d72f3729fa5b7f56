package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SeKiZo0/NotesApp/internal/logger"
	"github.com/SeKiZo0/NotesApp/internal/utils"
	"github.com/SeKiZo0/NotesApp/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NotesService.ListNotes(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.listNotes")
		return
	}

	utils.WriteJSON(w, models.NotesListResponse{Notes: notes}, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	note, err := h.services.NotesService.GetNote(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getNote")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.createNote").Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	note, err := h.services.NotesService.CreateNote(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createNote")
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.updateNote").Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	note, err := h.services.NotesService.UpdateNote(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateNote")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.NotesService.DeleteNote(r.Context(), id); err != nil {
		h.writeError(w, r, err, "*Handler.deleteNote")
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{
		Message: "note deleted",
		ID:      id,
	}, http.StatusOK)
}
