package models

import "time"

// QueueEntry is one walk-in customer waiting at a restaurant.
// Position is not stored: it is derived from JoinTime on every read.
type QueueEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"index:idx_queue_entries_join;not null" json:"restaurant_id"`
	CustomerName string    `gorm:"not null" json:"customer_name"`
	PhoneNumber  string    `gorm:"not null" json:"phone_number"`
	JoinTime     time.Time `gorm:"index:idx_queue_entries_join;not null" json:"join_time"`
}
