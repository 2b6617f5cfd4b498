package models

import "time"

type Restaurant struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Location    string    `json:"location"`
	Cuisine     string    `json:"cuisine"`
	UserID      string    `gorm:"column:userid;uniqueIndex;not null" json:"userid"`
	Password    string    `gorm:"not null" json:"-"` // plaintext unless PASSWORD_HASHING=bcrypt
	Phone       string    `json:"phone,omitempty"`
	Website     string    `json:"website,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
