// Package handlers exposes the reservation and queue services over HTTP.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dinewise/internal/apperr"
	"dinewise/internal/hours"
	"dinewise/internal/queue"
	"dinewise/internal/reservations"
	"dinewise/internal/response"
	"dinewise/internal/restaurants"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services are the components the handlers call into.
type Services struct {
	Restaurants  *restaurants.Directory
	Hours        *hours.Service
	Reservations *reservations.Ledger
	Queue        *queue.Ledger
	Store        Pinger
	// Location is the zone reservation times without an offset are read in
	// and every timestamp is written in.
	Location *time.Location
}

type Handler struct {
	restaurants  *restaurants.Directory
	hours        *hours.Service
	reservations *reservations.Ledger
	queue        *queue.Ledger
	store        Pinger
	loc          *time.Location
	log          *slog.Logger
}

func New(s Services, log *slog.Logger) *Handler {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		restaurants:  s.Restaurants,
		hours:        s.Hours,
		reservations: s.Reservations,
		queue:        s.Queue,
		store:        s.Store,
		loc:          loc,
		log:          log,
	}
}

// Health godoc
// @Summary		Health check
// @Description	Pings the database and, when configured, Redis
// @Tags			health
// @Produce		json
// @Success		200	{object}	response.HealthResponse
// @Failure		503	{object}	response.ErrorResponse	"Store unreachable (DB_ERROR)"
// @Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Error("health check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{
			Code:    apperr.ErrStore.Code,
			Message: "store unreachable",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok"})
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse with the status of its kind.
func (h *Handler) respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = &apperr.Error{Kind: apperr.KindStore, Code: apperr.ErrStore.Code, Message: "internal error", Err: err}
	}

	status := statusFor(appErr.Kind)
	body := response.ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if status >= http.StatusInternalServerError {
		if appErr.Err != nil {
			body.Details = appErr.Err.Error()
		}
		h.log.Error("request failed", slog.String("path", c.FullPath()), slog.Any("error", err))
	}
	c.AbortWithStatusJSON(status, body)
}

// bindError reports a malformed or incomplete request body.
func bindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{
		Code:    apperr.ErrValidation.Code,
		Message: "missing or malformed fields",
		Details: err.Error(),
	})
}

func (h *Handler) pathID(c *gin.Context) (uint, bool) {
	return h.parseID(c, "id", c.Param("id"))
}

func (h *Handler) queryID(c *gin.Context, name string) (uint, bool) {
	return h.parseID(c, name, c.Query(name))
}

func (h *Handler) parseID(c *gin.Context, name, raw string) (uint, bool) {
	if raw == "" {
		h.respondError(c, apperr.Validation(name, "is required"))
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		h.respondError(c, apperr.Validation(name, "must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}
