// Package hours stores per-day opening windows and checks slots against them.
package hours

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dinewise/internal/apperr"
	"dinewise/internal/models"
	"dinewise/internal/slot"

	"gorm.io/gorm"
)

// Rule is one day of a weekly schedule as supplied by callers.
type Rule struct {
	DayOfWeek int    `json:"day_of_week" example:"1"`
	OpenTime  string `json:"open_time" example:"11:00"`
	CloseTime string `json:"close_time" example:"22:00"`
}

type Service struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewService(db *gorm.DB, log *slog.Logger) *Service {
	return &Service{db: db, log: log}
}

// Validate checks that timeOfDay ("HH:MM") falls inside the restaurant's window for weekday.
// The window is half-open: the close time itself is not bookable.
func (s *Service) Validate(ctx context.Context, restaurantID uint, weekday int, timeOfDay string) error {
	var rule models.OpeningHour
	err := s.db.WithContext(ctx).
		Where("restaurant_id = ? AND day_of_week = ?", restaurantID, weekday).
		Take(&rule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNoScheduleConfigured
	}
	if err != nil {
		return apperr.Store("load opening hours", err)
	}

	if rule.ClosedAllDay() {
		return apperr.ErrClosedAllDay
	}
	if timeOfDay < rule.OpenTime || timeOfDay >= rule.CloseTime {
		return apperr.ErrOutsideHours
	}
	return nil
}

// Week returns the restaurant's rules ordered by day.
func (s *Service) Week(ctx context.Context, restaurantID uint) ([]models.OpeningHour, error) {
	if err := s.ensureRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	rules := make([]models.OpeningHour, 0, 7)
	if err := s.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("day_of_week ASC").
		Find(&rules).Error; err != nil {
		return nil, apperr.Store("load opening hours", err)
	}
	return rules, nil
}

// SetWeek replaces the whole weekly schedule. Rules are validated before storage is touched
// and the delete + insert run in one transaction, so a failure keeps the previous schedule.
// An empty rule set is rejected; a day is closed with open_time equal to close_time.
func (s *Service) SetWeek(ctx context.Context, restaurantID uint, rules []Rule) ([]models.OpeningHour, error) {
	if len(rules) == 0 {
		return nil, apperr.Validation("opening_hours", "at least one rule is required")
	}
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}
	if err := s.ensureRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return ReplaceWeek(tx, restaurantID, rules)
	})
	if err != nil {
		s.log.Error("opening hours replace rolled back", slog.Uint64("restaurant_id", uint64(restaurantID)), slog.Any("error", err))
		return nil, err
	}

	s.log.Info("opening hours replaced", slog.Uint64("restaurant_id", uint64(restaurantID)), slog.Int("days", len(rules)))
	return s.Week(ctx, restaurantID)
}

// ReplaceWeek deletes every rule of the restaurant and inserts rules using tx.
// Callers must run it inside a transaction and validate rules first.
func ReplaceWeek(tx *gorm.DB, restaurantID uint, rules []Rule) error {
	if err := tx.Where("restaurant_id = ?", restaurantID).Delete(&models.OpeningHour{}).Error; err != nil {
		return apperr.Store("delete opening hours", err)
	}
	if len(rules) == 0 {
		return nil
	}

	rows := make([]models.OpeningHour, 0, len(rules))
	for _, r := range rules {
		rows = append(rows, models.OpeningHour{
			RestaurantID: restaurantID,
			DayOfWeek:    r.DayOfWeek,
			OpenTime:     r.OpenTime,
			CloseTime:    r.CloseTime,
		})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return apperr.Store("insert opening hours", err)
	}
	return nil
}

// ValidateRules checks a weekly schedule without touching storage.
func ValidateRules(rules []Rule) error {
	if len(rules) > 7 {
		return apperr.Validation("opening_hours", "at most 7 days, got %d", len(rules))
	}
	seen := make(map[int]bool, len(rules))
	for i, r := range rules {
		field := fmt.Sprintf("opening_hours[%d]", i)
		if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
			return apperr.Validation(field, "day_of_week must be between 0 (Sunday) and 6 (Saturday)")
		}
		if seen[r.DayOfWeek] {
			return apperr.Validation(field, "day_of_week %d listed twice", r.DayOfWeek)
		}
		seen[r.DayOfWeek] = true

		if !slot.ValidClock(r.OpenTime) {
			return apperr.Validation(field, "open_time %q must be HH:MM with minutes 00 or 30", r.OpenTime)
		}
		if !slot.ValidClock(r.CloseTime) {
			return apperr.Validation(field, "close_time %q must be HH:MM with minutes 00 or 30", r.CloseTime)
		}
		if r.CloseTime < r.OpenTime {
			return apperr.Validation(field, "close_time %s is before open_time %s", r.CloseTime, r.OpenTime)
		}
	}
	return nil
}

func (s *Service) ensureRestaurant(ctx context.Context, restaurantID uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Restaurant{}).Where("id = ?", restaurantID).Count(&count).Error; err != nil {
		return apperr.Store("load restaurant", err)
	}
	if count == 0 {
		return apperr.ErrRestaurantNotFound
	}
	return nil
}
