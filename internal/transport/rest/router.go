// Package rest exposes the application services over a JSON HTTP API.
package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/adapter/photostore"
	"github.com/molcom/timeclock-backend/internal/config"
	authsvc "github.com/molcom/timeclock-backend/internal/service/auth"
	projectsvc "github.com/molcom/timeclock-backend/internal/service/project"
	settingssvc "github.com/molcom/timeclock-backend/internal/service/settings"
	tasksvc "github.com/molcom/timeclock-backend/internal/service/task"
	timeentrysvc "github.com/molcom/timeclock-backend/internal/service/timeentry"
	usersvc "github.com/molcom/timeclock-backend/internal/service/user"
	worksitesvc "github.com/molcom/timeclock-backend/internal/service/worksite"
	"github.com/molcom/timeclock-backend/internal/transport/middleware"
)

// loginRateLimit caps login attempts per IP per minute.
const loginRateLimit = 10

// TokenValidator decodes a bearer token into a user identity.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, bool, error)
}

// Services bundles everything the HTTP layer exposes.
type Services struct {
	Auth      *authsvc.Service
	Entries   *timeentrysvc.Service
	Users     *usersvc.Service
	Worksites *worksitesvc.Service
	Projects  *projectsvc.Service
	Tasks     *tasksvc.Service
	Settings  *settingssvc.Service
}

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	svc     Services
	photos  *photostore.Store
	version string
	log     *slog.Logger
}

// NewHandlers creates the REST handler set. version is reported by the
// health endpoint.
func NewHandlers(log *slog.Logger, svc Services, photos *photostore.Store, version string) *Handlers {
	return &Handlers{
		svc:     svc,
		photos:  photos,
		version: version,
		log:     log.With("transport", "rest"),
	}
}

// Router assembles the route table and middleware stack. The returned
// RateLimiter must be stopped on shutdown.
func (h *Handlers) Router(cfg config.CORSConfig, validator TokenValidator) (http.Handler, *middleware.RateLimiter) {
	mux := http.NewServeMux()

	limiter := middleware.NewRateLimiter(time.Minute)
	loginLimit := limiter.Limit(loginRateLimit)

	mux.HandleFunc("GET /health", h.health)

	mux.Handle("POST /api/auth/login", loginLimit(http.HandlerFunc(h.login)))
	mux.HandleFunc("GET /api/auth/me", h.me)

	mux.HandleFunc("GET /api/time-entries", h.listEntries)
	mux.HandleFunc("POST /api/time-entries", h.createEntry)
	mux.HandleFunc("GET /api/time-entries/active", h.activeTimer)
	mux.HandleFunc("PUT /api/time-entries/{id}/clock-out", h.clockOut)
	mux.HandleFunc("PUT /api/time-entries/{id}", h.updateEntry)
	mux.HandleFunc("DELETE /api/time-entries/{id}", h.deleteEntry)

	mux.HandleFunc("GET /api/users", h.listUsers)
	mux.HandleFunc("POST /api/users", h.createUser)
	mux.HandleFunc("PUT /api/users/{id}", h.updateUser)
	mux.HandleFunc("PUT /api/users/{id}/password", h.resetPassword)
	mux.HandleFunc("DELETE /api/users/{id}", h.deleteUser)

	mux.HandleFunc("GET /api/worksites", h.listWorksites)
	mux.HandleFunc("POST /api/worksites", h.createWorksite)
	mux.HandleFunc("PUT /api/worksites/{id}", h.updateWorksite)
	mux.HandleFunc("DELETE /api/worksites/{id}", h.deleteWorksite)

	mux.HandleFunc("GET /api/projects", h.listProjects)
	mux.HandleFunc("POST /api/projects", h.createProject)
	mux.HandleFunc("PUT /api/projects/{id}", h.updateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", h.deleteProject)

	mux.HandleFunc("GET /api/tasks", h.listTasks)
	mux.HandleFunc("POST /api/tasks", h.createTask)
	mux.HandleFunc("PUT /api/tasks/{id}", h.updateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.deleteTask)

	mux.HandleFunc("GET /api/settings", h.getSettings)
	mux.HandleFunc("PUT /api/settings", h.updateSettings)

	mux.HandleFunc("POST /api/photos", h.uploadPhoto)
	mux.HandleFunc("GET /uploads/{path...}", h.servePhoto)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(h.log),
		middleware.Logger(h.log),
		middleware.CORS(cfg),
		middleware.Auth(validator),
	)

	return chain(mux), limiter
}
