package handlers

import (
	"net/http"

	"dinewise/internal/apperr"
	"dinewise/internal/models"
	"dinewise/internal/reservations"
	"dinewise/internal/response"
	"dinewise/internal/slot"

	"github.com/gin-gonic/gin"
)

type ReservationRequest struct {
	RestaurantID uint `json:"restaurant_id" binding:"required" example:"1"`
	// RFC 3339, or "2006-01-02 15:04" / "2006-01-02T15:04" in the server's zone
	ReservationTime string `json:"reservation_time" binding:"required" example:"2024-06-03T11:15:00Z"`
	CustomerName    string `json:"customer_name" binding:"required" example:"Ann Lee"`
	PhoneNumber     string `json:"phone_number" binding:"required" example:"555-0101"`
}

func (h *Handler) reservationRequest(c *gin.Context) (reservations.Request, bool) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return reservations.Request{}, false
	}
	at, err := slot.Parse(req.ReservationTime, h.loc)
	if err != nil {
		h.respondError(c, apperr.Validation("reservation_time", "%v", err))
		return reservations.Request{}, false
	}
	return reservations.Request{
		RestaurantID: req.RestaurantID,
		Time:         at,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
	}, true
}

// BookReservation godoc
// @Summary		Book a table
// @Description	Books a place in the 30-minute slot containing reservation_time. A slot holds at most 5 reservations.
// @Tags			reservations
// @Accept			json
// @Produce		json
// @Param			reservation	body		ReservationRequest	true	"Reservation data"
// @Success		201			{object}	response.ReservationCreatedResponse
// @Failure		400			{object}	response.ErrorResponse	"Validation error (VALIDATION_ERROR, NO_SCHEDULE_CONFIGURED, CLOSED_ALL_DAY, OUTSIDE_HOURS)"
// @Failure		409			{object}	response.ErrorResponse	"Slot is full (SLOT_FULL)"
// @Failure		500			{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/reservations [post]
func (h *Handler) BookReservation(c *gin.Context) {
	req, ok := h.reservationRequest(c)
	if !ok {
		return
	}
	reservation, err := h.reservations.Book(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.ReservationCreatedResponse{
		ReservationID: reservation.ID,
		Timeslot:      reservation.Slot.In(h.loc),
	})
}

// ListReservations godoc
// @Summary		Reservations of a restaurant
// @Tags			reservations
// @Produce		json
// @Param			restaurant_id	query		int	true	"Restaurant ID"
// @Success		200				{object}	response.ReservationsResponse
// @Failure		400				{object}	response.ErrorResponse	"Missing restaurant_id (VALIDATION_ERROR)"
// @Failure		500				{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/reservations [get]
func (h *Handler) ListReservations(c *gin.Context) {
	restaurantID, ok := h.queryID(c, "restaurant_id")
	if !ok {
		return
	}
	list, err := h.reservations.ListFor(c.Request.Context(), restaurantID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	for i := range list {
		h.localize(&list[i])
	}
	c.JSON(http.StatusOK, response.ReservationsResponse{Reservations: list})
}

// RescheduleReservation godoc
// @Summary		Move a reservation
// @Description	Moves the reservation to the slot containing reservation_time and updates its details. The reservation does not count against its own capacity.
// @Tags			reservations
// @Accept			json
// @Produce		json
// @Param			id			path		int					true	"Reservation ID"
// @Param			reservation	body		ReservationRequest	true	"New reservation data"
// @Success		200			{object}	response.RescheduleResponse
// @Failure		400			{object}	response.ErrorResponse	"Validation error (VALIDATION_ERROR, NO_SCHEDULE_CONFIGURED, CLOSED_ALL_DAY, OUTSIDE_HOURS)"
// @Failure		404			{object}	response.ErrorResponse	"Unknown reservation (RESERVATION_NOT_FOUND)"
// @Failure		409			{object}	response.ErrorResponse	"Slot is full (SLOT_FULL)"
// @Router			/reservations/{id} [put]
func (h *Handler) RescheduleReservation(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	req, ok := h.reservationRequest(c)
	if !ok {
		return
	}
	reservation, err := h.reservations.Reschedule(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RescheduleResponse{Success: true, Timeslot: reservation.Slot.In(h.loc)})
}

// CancelReservation godoc
// @Summary		Cancel a reservation
// @Tags			reservations
// @Produce		json
// @Param			id	path		int	true	"Reservation ID"
// @Success		200	{object}	response.SuccessResponse
// @Failure		404	{object}	response.ErrorResponse	"Unknown reservation (RESERVATION_NOT_FOUND)"
// @Router			/reservations/{id} [delete]
func (h *Handler) CancelReservation(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.reservations.Cancel(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

func (h *Handler) localize(r *models.Reservation) {
	r.Slot = r.Slot.In(h.loc)
	r.CreatedAt = r.CreatedAt.In(h.loc)
}
