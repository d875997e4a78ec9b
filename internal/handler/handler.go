package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskmeter/taskmeter/internal/handler/dto"
	"github.com/taskmeter/taskmeter/internal/middleware"
	"github.com/taskmeter/taskmeter/internal/repository"
	"github.com/taskmeter/taskmeter/internal/service"
)

// Version is the API version reported by the service info endpoint.
const Version = "1.0.0"

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	pool             *pgxpool.Pool
	taskService      *service.TaskService
	analyticsService *service.AnalyticsService
	taskRepo         *repository.TaskRepository
	userRepo         *repository.UserRepository
	authMiddleware   *middleware.AuthMiddleware
}

// New creates a new Handler instance with all dependencies.
func New(pool *pgxpool.Pool) *Handler {
	taskRepo := repository.NewTaskRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	taskService := service.NewTaskService(taskRepo)
	analyticsService := service.NewAnalyticsService(taskRepo)

	authMiddleware := middleware.NewAuthMiddleware(userRepo)

	return &Handler{
		pool:             pool,
		taskService:      taskService,
		analyticsService: analyticsService,
		taskRepo:         taskRepo,
		userRepo:         userRepo,
		authMiddleware:   authMiddleware,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Service info and health check
	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// API v1 routes with authentication
	mux.Handle("GET /api/v1/tasks", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleListTasks)))
	mux.Handle("POST /api/v1/tasks", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleCreateTask)))
	mux.Handle("GET /api/v1/tasks/{id}", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleGetTask)))
	mux.Handle("PUT /api/v1/tasks/{id}", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleUpdateTask)))
	mux.Handle("DELETE /api/v1/tasks/{id}", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleDeleteTask)))
	mux.Handle("GET /api/v1/analytics/user-stats/{userId}", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleUserStats)))
	mux.Handle("GET /api/v1/analytics/productivity/{userId}", h.authMiddleware.Authenticate(http.HandlerFunc(h.handleProductivity)))
}

// handleRoot returns the service info document.
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.ServiceInfoResponse{
		Message: "TaskMeter Analytics API",
		Version: Version,
		Status:  "running",
	})
}

// handleHealthz returns 200 OK if the database is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.pool.Ping(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Ping checks if the database is reachable (used for testing).
func (h *Handler) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps a domain error and writes the error response.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// extractPathID extracts and validates a UUID path parameter.
// Returns (id, true) if valid, ("", false) if invalid (error already sent to client).
func extractPathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := r.PathValue(name)
	if id == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", name+" is required")
		return "", false
	}

	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", name+" must be a valid UUID")
		return "", false
	}

	return id, true
}
