package models

// OpeningHour is the open/close window of one restaurant on one day of the week.
// OpenTime == CloseTime means closed all day.
type OpeningHour struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"uniqueIndex:idx_opening_hours_day;not null" json:"restaurant_id"`
	DayOfWeek    int    `gorm:"uniqueIndex:idx_opening_hours_day;not null" json:"day_of_week"` // 0=Sunday, 6=Saturday
	OpenTime     string `gorm:"size:5;not null" json:"open_time"`                               // "HH:MM"
	CloseTime    string `gorm:"size:5;not null" json:"close_time"`                              // "HH:MM"
}

// ClosedAllDay reports whether the rule marks the whole day as closed.
func (h OpeningHour) ClosedAllDay() bool {
	return h.OpenTime == h.CloseTime
}
