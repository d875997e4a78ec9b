package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/taskmeter/taskmeter/internal/domain"
	"github.com/taskmeter/taskmeter/internal/handler/dto"
	"github.com/taskmeter/taskmeter/internal/middleware"
	"github.com/taskmeter/taskmeter/internal/repository"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// handleCreateTask creates a new task for the authenticated user.
// @Summary Create task
// @Description Create a new task owned by the authenticated user
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task fields"
// @Success 201 {object} dto.TaskResponse
// @Security BearerAuth
// @Router /tasks [post]
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON body")
		return
	}

	task := &domain.Task{
		OwnerID:     user.ID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		Status:      domain.TaskStatus(req.Status),
		DueDate:     req.DueDate,
	}

	created, err := h.taskService.CreateTask(ctx, task)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}

// handleGetTask returns a single task owned by the authenticated user.
// @Summary Get task
// @Tags tasks
// @Produce json
// @Param id path string true "Task UUID"
// @Success 200 {object} dto.TaskResponse
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	taskID, ok := extractPathID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(ctx, taskID, user.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleUpdateTask applies field changes to an owned task.
// @Summary Update task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task UUID"
// @Param request body dto.UpdateTaskRequest true "Changed fields"
// @Success 200 {object} dto.TaskResponse
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	taskID, ok := extractPathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON body")
		return
	}

	updated, err := h.taskService.UpdateTask(ctx, taskID, user.ID, func(task *domain.Task) {
		if req.Title != nil {
			task.Title = *req.Title
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.Priority != nil {
			task.Priority = domain.TaskPriority(*req.Priority)
		}
		if req.Status != nil {
			task.Status = domain.TaskStatus(*req.Status)
		}
		if req.DueDate != nil {
			task.DueDate = req.DueDate
		}
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// handleDeleteTask removes an owned task.
// @Summary Delete task
// @Tags tasks
// @Param id path string true "Task UUID"
// @Success 204
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	taskID, ok := extractPathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(ctx, taskID, user.ID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListTasks returns the authenticated user's tasks with filters.
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param status query string false "Comma-separated statuses"
// @Param priority query string false "Comma-separated priorities"
// @Param search query string false "Title substring"
// @Param sort query string false "Sort fields, - prefix for DESC"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.TasksListResponse
// @Security BearerAuth
// @Router /tasks [get]
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	filters := parseListFilters(r, user.ID)

	tasks, total, err := h.taskService.ListTasks(ctx, filters)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]dto.TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = dto.ToTaskResponse(&tasks[i])
	}

	respondJSON(w, http.StatusOK, dto.TasksListResponse{
		Tasks:  items,
		Total:  total,
		Limit:  filters.Limit,
		Offset: filters.Offset,
	})
}

// parseListFilters parses task list query parameters with defaults.
func parseListFilters(r *http.Request, ownerID string) repository.TaskListFilters {
	query := r.URL.Query()

	filters := repository.TaskListFilters{
		OwnerID: ownerID,
		Search:  query.Get("search"),
		Limit:   defaultListLimit,
	}

	if v := query.Get("status"); v != "" {
		filters.Statuses = strings.Split(v, ",")
	}
	if v := query.Get("priority"); v != "" {
		filters.Priorities = strings.Split(v, ",")
	}
	if v := query.Get("sort"); v != "" {
		filters.Sort = strings.Split(v, ",")
	}
	if v := query.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxListLimit {
			filters.Limit = n
		}
	}
	if v := query.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	return filters
}
