package fakeservice

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Handler returns the HTTP handler serving the fake API.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(s.recovery)
	r.Use(s.logging)
	r.Use(chimiddleware.RealIP)
	r.Use(s.recorder)

	r.Get("/v1/login", s.login)

	// Legacy routes, authenticated with the API key
	r.Group(func(r chi.Router) {
		r.Use(s.requireAPIKey)

		r.Get("/api/v1/user", s.getUser)
		r.Get("/api/v1/team", s.listTeams)
		r.Get("/api/v1/team/{teamID}/space", s.listSpaces)
		r.Get("/api/v1/team/{teamID}/task", s.listTeamTasks)
	})

	// Current routes, authenticated with the bearer token
	r.Group(func(r chi.Router) {
		r.Use(s.requireBearer)

		r.Get("/v2/task", s.enrichTasks)
		r.Get("/v2/taskId", s.listTaskIDs)
		r.Get("/v1/task/{taskID}", s.getTask)
		r.Put("/v1/task/{taskID}", s.updateTask)
		r.Get("/v1/project/{spaceID}/category", s.listCategories)
		r.Post("/v1/subcategory/{subcategoryID}/task", s.createTask)
		r.Get("/v1/tag", s.listTags)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found", "APP_001")
	})

	return r
}

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError sends an error body in the service's {err, ECODE} shape.
func writeError(w http.ResponseWriter, status int, msg, code string) {
	writeJSON(w, status, map[string]string{"err": msg, "ECODE": code})
}
