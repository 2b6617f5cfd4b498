package handlers

import (
	"errors"
	"net/http"

	"dinewise/internal/apperr"
	"dinewise/internal/response"

	"github.com/gin-gonic/gin"
)

type JoinQueueRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required" example:"1"`
	CustomerName string `json:"customer_name" binding:"required" example:"Ann Lee"`
	PhoneNumber  string `json:"phone_number" binding:"required" example:"555-0101"`
}

// JoinQueue godoc
// @Summary		Join the walk-in queue
// @Description	Adds the customer to the end of today's queue and notifies websocket subscribers
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			entry	body		JoinQueueRequest	true	"Customer data"
// @Success		201		{object}	response.QueueJoinResponse
// @Failure		400		{object}	response.ErrorResponse	"Validation error (VALIDATION_ERROR)"
// @Failure		500		{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/queue [post]
func (h *Handler) JoinQueue(c *gin.Context) {
	var req JoinQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	ticket, err := h.queue.Join(c.Request.Context(), req.RestaurantID, req.CustomerName, req.PhoneNumber)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.QueueJoinResponse{QueueID: ticket.ID, Position: ticket.Position})
}

// ListQueue godoc
// @Summary		Today's queue of a restaurant
// @Tags			queue
// @Produce		json
// @Param			restaurant_id	query		int	true	"Restaurant ID"
// @Success		200				{object}	response.QueueResponse
// @Failure		400				{object}	response.ErrorResponse	"Missing restaurant_id (VALIDATION_ERROR)"
// @Failure		500				{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/queue [get]
func (h *Handler) ListQueue(c *gin.Context) {
	restaurantID, ok := h.queryID(c, "restaurant_id")
	if !ok {
		return
	}
	tickets, err := h.queue.ListFor(c.Request.Context(), restaurantID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	items := make([]response.QueueItem, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, response.QueueItem{
			ID:           t.ID,
			RestaurantID: t.RestaurantID,
			CustomerName: t.CustomerName,
			PhoneNumber:  t.PhoneNumber,
			JoinTime:     t.JoinTime.In(h.loc),
			Position:     t.Position,
		})
	}
	c.JSON(http.StatusOK, response.QueueResponse{Queue: items})
}

// QueueStatus godoc
// @Summary		Position of a waiting customer
// @Description	Looks the customer up by name (case-insensitive) and exact phone number. Responds with null when the customer is not waiting.
// @Tags			queue
// @Produce		json
// @Param			customer_name	query		string	true	"Customer name"
// @Param			phone_number	query		string	true	"Phone number"
// @Param			restaurant_id	query		int		true	"Restaurant ID"
// @Success		200				{object}	response.QueueStatusResponse
// @Failure		400				{object}	response.ErrorResponse	"Missing query parameter (VALIDATION_ERROR)"
// @Failure		500				{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/queue/status [get]
func (h *Handler) QueueStatus(c *gin.Context) {
	name, phone := c.Query("customer_name"), c.Query("phone_number")
	if name == "" || phone == "" {
		h.respondError(c, apperr.Validation("", "customer_name, phone_number and restaurant_id are required"))
		return
	}
	restaurantID, ok := h.queryID(c, "restaurant_id")
	if !ok {
		return
	}

	ticket, err := h.queue.StatusOf(c.Request.Context(), restaurantID, name, phone)
	if errors.Is(err, apperr.ErrQueueEntryNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.QueueStatusResponse{
		QueueID:      ticket.ID,
		CustomerName: ticket.CustomerName,
		PhoneNumber:  ticket.PhoneNumber,
		Position:     ticket.Position,
	})
}

// LeaveQueue godoc
// @Summary		Leave the queue
// @Tags			queue
// @Produce		json
// @Param			id	path		int	true	"Queue entry ID"
// @Success		200	{object}	response.SuccessResponse
// @Failure		404	{object}	response.ErrorResponse	"Unknown entry (QUEUE_ENTRY_NOT_FOUND)"
// @Router			/queue/{id} [delete]
func (h *Handler) LeaveQueue(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.queue.Leave(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}
