package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/SeKiZo0/NotesApp/internal/utils"
	"github.com/SeKiZo0/NotesApp/internal/web"
	"github.com/SeKiZo0/NotesApp/models"
)

// Init assembles the router: API routes under /api, the two health probes,
// and the embedded browser client on everything else.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(api chi.Router) {
		api.Route("/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Get("/{id}", h.getNote)
			r.Put("/{id}", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
		})

		// unmatched API path: distinct from an entity-level 404
		api.NotFound(routeNotFound)
		api.MethodNotAllowed(methodNotAllowed)
	})

	router.Get("/health", h.health)
	router.Get("/health/db", h.dbHealth)

	// embedded single-page client
	router.Handle("/*", http.FileServer(http.FS(web.Assets())))

	return router
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: "route not found"}, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: "method not allowed"}, http.StatusMethodNotAllowed)
}
