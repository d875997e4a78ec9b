package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/taskmeter/taskmeter/internal/config"
	"github.com/taskmeter/taskmeter/internal/domain"
	"github.com/taskmeter/taskmeter/internal/handler/dto"
)

// handleUserStats returns the point-in-time statistics snapshot for a user.
// An unknown user is not an error: it yields an all-zero snapshot, since "no
// tasks" and "unknown user" are indistinguishable to a read-only aggregator.
// @Summary Get user statistics
// @Description Aggregate task counts, distributions and completion rate
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID"
// @Success 200 {object} dto.UserStatsResponse
// @Security BearerAuth
// @Router /analytics/user-stats/{userId} [get]
func (h *Handler) handleUserStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := extractPathID(w, r, "userId")
	if !ok {
		return
	}

	snap, err := h.analyticsService.UserStats(ctx, userID)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "failed to fetch task records")
		return
	}

	respondJSON(w, http.StatusOK, dto.ToUserStatsResponse(userID, snap))
}

// handleProductivity returns the day-bucketed productivity trend for a user.
// @Summary Get productivity analysis
// @Description Created/completed counts per day over the trailing window with a derived score
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID"
// @Param days query int false "Window size in days (default 30)"
// @Success 200 {object} dto.ProductivityResponse
// @Security BearerAuth
// @Router /analytics/productivity/{userId} [get]
func (h *Handler) handleProductivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := extractPathID(w, r, "userId")
	if !ok {
		return
	}

	days := config.DefaultWindowDays
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "days must be a positive integer")
			return
		}
		days = n
	}

	snap, err := h.analyticsService.Productivity(ctx, userID, days, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWindow) {
			respondDomainError(w, err)
			return
		}
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "failed to fetch task records")
		return
	}

	respondJSON(w, http.StatusOK, dto.ToProductivityResponse(userID, snap))
}
