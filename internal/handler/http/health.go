package http

import (
	"net/http"
	"time"

	"github.com/SeKiZo0/NotesApp/internal/logger"
	"github.com/SeKiZo0/NotesApp/internal/utils"
	"github.com/SeKiZo0/NotesApp/models"
)

// health is the liveness probe. It never touches the database and succeeds
// as long as the process is running.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}

// dbHealth is the readiness probe. It issues a trivial ping against the
// database; orchestration uses the result to decide whether this instance
// should receive traffic.
func (h *Handler) dbHealth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.pinger.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Str("func", "*Handler.dbHealth").Msg("database is unreachable")
		utils.WriteJSON(w, models.DBHealthResponse{
			Status: "error",
			Error:  err.Error(),
		}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.DBHealthResponse{Status: "ok"}, http.StatusOK)
}
