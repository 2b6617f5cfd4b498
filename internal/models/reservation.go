package models

import "time"

type Reservation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"index:idx_reservations_slot;not null" json:"restaurant_id"`
	Slot         time.Time `gorm:"column:reservation_time;index:idx_reservations_slot;not null" json:"reservation_time"` // start of the 30-minute slot
	CustomerName string    `gorm:"not null" json:"customer_name"`
	PhoneNumber  string    `gorm:"not null" json:"phone_number"`
	CreatedAt    time.Time `json:"created_at"`
}
