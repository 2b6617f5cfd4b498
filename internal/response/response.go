package response

import (
	"time"

	"dinewise/internal/models"
)

// SuccessResponse is returned by deletions
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	// Machine readable code
	// example: SLOT_FULL
	Code string `json:"code"`

	// Human readable message
	// example: This timeslot is fully booked. Please choose a different time.
	Message string `json:"message"`

	// Underlying cause, only for storage failures
	// example: database is locked
	Details string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// RestaurantIDResponse is returned by signup and login
type RestaurantIDResponse struct {
	RestaurantID uint `json:"restaurant_id" example:"1"`
}

type RestaurantsResponse struct {
	Restaurants []models.Restaurant `json:"restaurants"`
}

type OpeningHoursResponse struct {
	OpeningHours []models.OpeningHour `json:"opening_hours"`
}

type ReservationCreatedResponse struct {
	ReservationID uint      `json:"reservation_id" example:"12"`
	Timeslot      time.Time `json:"timeslot" example:"2024-06-03T11:00:00Z"`
}

type RescheduleResponse struct {
	Success  bool      `json:"success" example:"true"`
	Timeslot time.Time `json:"timeslot" example:"2024-06-03T12:30:00Z"`
}

type ReservationsResponse struct {
	Reservations []models.Reservation `json:"reservations"`
}

type QueueJoinResponse struct {
	QueueID  uint `json:"queue_id" example:"7"`
	Position int  `json:"position" example:"3"`
}

// QueueItem is one entry of a restaurant's queue listing
type QueueItem struct {
	ID           uint      `json:"id" example:"7"`
	RestaurantID uint      `json:"restaurant_id" example:"1"`
	CustomerName string    `json:"customer_name" example:"Ann Lee"`
	PhoneNumber  string    `json:"phone_number" example:"555-0101"`
	JoinTime     time.Time `json:"join_time"`
	Position     int       `json:"position" example:"1"`
}

type QueueResponse struct {
	Queue []QueueItem `json:"queue"`
}

// QueueStatusResponse describes one waiting customer
type QueueStatusResponse struct {
	QueueID      uint   `json:"queue_id" example:"7"`
	CustomerName string `json:"customer_name" example:"Ann Lee"`
	PhoneNumber  string `json:"phone_number" example:"555-0101"`
	Position     int    `json:"position" example:"2"`
}
