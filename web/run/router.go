package webapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func router(webapp *WebApp) http.Handler {
	r := chi.NewRouter()

	r.Post("/api/scan", webapp.startScan())
	r.Post("/api/cancel", webapp.cancelScan())
	r.Get("/api/progress", webapp.progress())
	r.Get("/api/result", webapp.result())
	r.Get("/api/history", webapp.history())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	return r
}
