package hours

import (
	"context"
	"errors"
	"testing"

	"dinewise/internal/apperr"
	"dinewise/internal/logging"
	"dinewise/internal/models"
	"dinewise/internal/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func fullWeek(open, close string) []Rule {
	rules := make([]Rule, 0, 7)
	for d := 0; d < 7; d++ {
		rules = append(rules, Rule{DayOfWeek: d, OpenTime: open, CloseTime: close})
	}
	return rules
}

func TestValidate(t *testing.T) {
	store := storagetest.New(t)
	r := storagetest.Restaurant(t, store, "Trattoria", "u1")
	svc := NewService(store.DB, logging.Discard())
	ctx := context.Background()

	_, err := svc.SetWeek(ctx, r.ID, []Rule{
		{DayOfWeek: 1, OpenTime: "11:00", CloseTime: "22:00"},
		{DayOfWeek: 2, OpenTime: "00:00", CloseTime: "00:00"},
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		weekday int
		clock   string
		want    error
	}{
		{"opening boundary is bookable", 1, "11:00", nil},
		{"middle of the day", 1, "17:30", nil},
		{"last slot before close", 1, "21:30", nil},
		{"close boundary is not bookable", 1, "22:00", apperr.ErrOutsideHours},
		{"before opening", 1, "10:30", apperr.ErrOutsideHours},
		{"closed all day", 2, "12:00", apperr.ErrClosedAllDay},
		{"no rule for the day", 3, "12:00", apperr.ErrNoScheduleConfigured},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := svc.Validate(ctx, r.ID, test.weekday, test.clock)
			if test.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestSetWeekReplacesSchedule(t *testing.T) {
	store := storagetest.New(t)
	r := storagetest.Restaurant(t, store, "Trattoria", "u1")
	svc := NewService(store.DB, logging.Discard())
	ctx := context.Background()

	week, err := svc.SetWeek(ctx, r.ID, fullWeek("09:00", "17:00"))
	require.NoError(t, err)
	require.Len(t, week, 7)

	week, err = svc.SetWeek(ctx, r.ID, []Rule{
		{DayOfWeek: 5, OpenTime: "18:00", CloseTime: "23:30"},
		{DayOfWeek: 0, OpenTime: "12:00", CloseTime: "15:00"},
	})
	require.NoError(t, err)
	require.Len(t, week, 2)
	assert.Equal(t, 0, week[0].DayOfWeek)
	assert.Equal(t, 5, week[1].DayOfWeek)
	assert.Equal(t, "23:30", week[1].CloseTime)
}

func TestSetWeekInvalidRuleKeepsPreviousSchedule(t *testing.T) {
	store := storagetest.New(t)
	r := storagetest.Restaurant(t, store, "Trattoria", "u1")
	svc := NewService(store.DB, logging.Discard())
	ctx := context.Background()

	_, err := svc.SetWeek(ctx, r.ID, fullWeek("11:00", "22:00"))
	require.NoError(t, err)

	bad := fullWeek("11:00", "22:00")
	bad[4].CloseTime = "22:15"
	_, err = svc.SetWeek(ctx, r.ID, bad)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	week, err := svc.Week(ctx, r.ID)
	require.NoError(t, err)
	assert.Len(t, week, 7)
}

func TestSetWeekStoreFailureRollsBack(t *testing.T) {
	store := storagetest.New(t)
	r := storagetest.Restaurant(t, store, "Trattoria", "u1")
	svc := NewService(store.DB, logging.Discard())
	ctx := context.Background()

	_, err := svc.SetWeek(ctx, r.ID, fullWeek("11:00", "22:00"))
	require.NoError(t, err)

	failInsert := false
	require.NoError(t, store.DB.Callback().Create().Before("gorm:create").Register("test:fail_opening_hours", func(db *gorm.DB) {
		if failInsert && db.Statement.Table == "opening_hours" {
			_ = db.AddError(errors.New("disk full"))
		}
	}))
	failInsert = true

	_, err = svc.SetWeek(ctx, r.ID, fullWeek("08:00", "12:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrStore)

	failInsert = false
	week, err := svc.Week(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, week, 7)
	for _, rule := range week {
		assert.Equal(t, "11:00", rule.OpenTime)
		assert.Equal(t, "22:00", rule.CloseTime)
	}
}

func TestSetWeekEmptyKeepsPreviousSchedule(t *testing.T) {
	store := storagetest.New(t)
	r := storagetest.Restaurant(t, store, "Trattoria", "u1")
	svc := NewService(store.DB, logging.Discard())
	ctx := context.Background()

	_, err := svc.SetWeek(ctx, r.ID, []Rule{{DayOfWeek: 1, OpenTime: "11:00", CloseTime: "22:00"}})
	require.NoError(t, err)

	for _, rules := range [][]Rule{nil, {}} {
		_, err = svc.SetWeek(ctx, r.ID, rules)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	}

	week, err := svc.Week(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, week, 1)
	assert.NoError(t, svc.Validate(ctx, r.ID, 1, "12:00"))
}

func TestSetWeekUnknownRestaurant(t *testing.T) {
	store := storagetest.New(t)
	svc := NewService(store.DB, logging.Discard())

	_, err := svc.SetWeek(context.Background(), 42, fullWeek("11:00", "22:00"))
	assert.ErrorIs(t, err, apperr.ErrRestaurantNotFound)

	_, err = svc.Week(context.Background(), 42)
	assert.ErrorIs(t, err, apperr.ErrRestaurantNotFound)

	var count int64
	store.DB.Model(&models.OpeningHour{}).Count(&count)
	assert.Zero(t, count)
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name  string
		rules []Rule
		ok    bool
	}{
		{"empty schedule", nil, true},
		{"full week", fullWeek("11:00", "22:00"), true},
		{"closed day", []Rule{{DayOfWeek: 0, OpenTime: "00:00", CloseTime: "00:00"}}, true},
		{"day out of range", []Rule{{DayOfWeek: 7, OpenTime: "11:00", CloseTime: "22:00"}}, false},
		{"negative day", []Rule{{DayOfWeek: -1, OpenTime: "11:00", CloseTime: "22:00"}}, false},
		{"duplicate day", []Rule{{DayOfWeek: 1, OpenTime: "11:00", CloseTime: "22:00"}, {DayOfWeek: 1, OpenTime: "12:00", CloseTime: "13:00"}}, false},
		{"open off grid", []Rule{{DayOfWeek: 1, OpenTime: "11:15", CloseTime: "22:00"}}, false},
		{"close not padded", []Rule{{DayOfWeek: 1, OpenTime: "08:00", CloseTime: "9:00"}}, false},
		{"close before open", []Rule{{DayOfWeek: 1, OpenTime: "22:00", CloseTime: "11:00"}}, false},
		{"eight days", append(fullWeek("11:00", "22:00"), Rule{DayOfWeek: 1, OpenTime: "11:00", CloseTime: "22:00"}), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateRules(test.rules)
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperr.ErrValidation)
			}
		})
	}
}
