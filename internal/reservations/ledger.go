// Package reservations books capacity-limited 30-minute slots.
package reservations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dinewise/internal/apperr"
	"dinewise/internal/lock"
	"dinewise/internal/models"
	"dinewise/internal/slot"

	"gorm.io/gorm"
)

// Capacity is the maximum number of reservations per (restaurant, slot).
const Capacity = 5

// HoursValidator checks a normalized slot against opening hours.
type HoursValidator interface {
	Validate(ctx context.Context, restaurantID uint, weekday int, timeOfDay string) error
}

// Request carries the fields shared by Book and Reschedule.
type Request struct {
	RestaurantID uint
	Time         time.Time
	CustomerName string
	PhoneNumber  string
}

func (r Request) validate() error {
	if r.RestaurantID == 0 {
		return apperr.Validation("restaurant_id", "is required")
	}
	if r.Time.IsZero() {
		return apperr.Validation("reservation_time", "is required")
	}
	if strings.TrimSpace(r.CustomerName) == "" {
		return apperr.Validation("customer_name", "is required")
	}
	if strings.TrimSpace(r.PhoneNumber) == "" {
		return apperr.Validation("phone_number", "is required")
	}
	return nil
}

// DefaultHoldTimeout bounds the transaction run under a slot lock. It stays below
// lock.RedisTTL so a stalled writer is rolled back before its lock can expire.
const DefaultHoldTimeout = 10 * time.Second

type Ledger struct {
	db          *gorm.DB
	hours       HoursValidator
	locker      lock.Locker
	holdTimeout time.Duration
	loc         *time.Location
	log         *slog.Logger
}

type Option func(*Ledger)

// WithLocation sets the zone slots are computed in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(l *Ledger) { l.loc = loc }
}

// WithLocker replaces the in-process slot lock, e.g. with lock.NewRedis.
func WithLocker(locker lock.Locker) Option {
	return func(l *Ledger) { l.locker = locker }
}

// WithHoldTimeout changes DefaultHoldTimeout.
func WithHoldTimeout(d time.Duration) Option {
	return func(l *Ledger) { l.holdTimeout = d }
}

func NewLedger(db *gorm.DB, hours HoursValidator, log *slog.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		db:          db,
		hours:       hours,
		locker:      lock.NewLocal(),
		holdTimeout: DefaultHoldTimeout,
		loc:         time.Local,
		log:         log,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Book reserves a place in the slot containing req.Time.
func (l *Ledger) Book(ctx context.Context, req Request) (*models.Reservation, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	s, err := l.checkSlot(ctx, req)
	if err != nil {
		return nil, err
	}

	reservation := models.Reservation{
		RestaurantID: req.RestaurantID,
		Slot:         s.Start,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
	}
	err = l.withSlotLock(ctx, req.RestaurantID, s, func(tx *gorm.DB) error {
		if err := ensureCapacity(tx, req.RestaurantID, s.Start, 0); err != nil {
			return err
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return apperr.Store("insert reservation", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.log.Info("reservation booked",
		slog.Uint64("reservation_id", uint64(reservation.ID)),
		slog.Uint64("restaurant_id", uint64(req.RestaurantID)),
		slog.Time("slot", s.Start))
	return &reservation, nil
}

// Reschedule moves reservation id to the slot containing req.Time and updates its details.
// The reservation does not count against its own target slot.
func (l *Ledger) Reschedule(ctx context.Context, id uint, req Request) (*models.Reservation, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	var existing models.Reservation
	if err := l.db.WithContext(ctx).Take(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrReservationNotFound
		}
		return nil, apperr.Store("load reservation", err)
	}

	s, err := l.checkSlot(ctx, req)
	if err != nil {
		return nil, err
	}

	var updated models.Reservation
	err = l.withSlotLock(ctx, req.RestaurantID, s, func(tx *gorm.DB) error {
		if err := ensureCapacity(tx, req.RestaurantID, s.Start, id); err != nil {
			return err
		}
		res := tx.Model(&models.Reservation{}).Where("id = ?", id).Updates(map[string]any{
			"restaurant_id":    req.RestaurantID,
			"reservation_time": s.Start,
			"customer_name":    req.CustomerName,
			"phone_number":     req.PhoneNumber,
		})
		if res.Error != nil {
			return apperr.Store("update reservation", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.ErrReservationNotFound
		}
		if err := tx.Take(&updated, id).Error; err != nil {
			return apperr.Store("reload reservation", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.log.Info("reservation rescheduled",
		slog.Uint64("reservation_id", uint64(id)),
		slog.Time("from", existing.Slot),
		slog.Time("to", s.Start))
	return &updated, nil
}

// Cancel deletes reservation id.
func (l *Ledger) Cancel(ctx context.Context, id uint) error {
	res := l.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if res.Error != nil {
		return apperr.Store("delete reservation", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrReservationNotFound
	}
	l.log.Info("reservation cancelled", slog.Uint64("reservation_id", uint64(id)))
	return nil
}

// ListFor returns the restaurant's reservations by slot ascending.
func (l *Ledger) ListFor(ctx context.Context, restaurantID uint) ([]models.Reservation, error) {
	reservations := make([]models.Reservation, 0)
	if err := l.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("reservation_time ASC").
		Order("id ASC").
		Find(&reservations).Error; err != nil {
		return nil, apperr.Store("list reservations", err)
	}
	return reservations, nil
}

// checkSlot normalizes req.Time in the ledger's zone and validates it against opening hours.
func (l *Ledger) checkSlot(ctx context.Context, req Request) (slot.Slot, error) {
	s := slot.Normalize(req.Time.In(l.loc))
	if err := l.hours.Validate(ctx, req.RestaurantID, s.Weekday, s.TimeOfDay); err != nil {
		return slot.Slot{}, err
	}
	return s, nil
}

// withSlotLock runs fn in a transaction while holding the lock of (restaurantID, s).
// Count and insert of one slot are therefore never interleaved with another writer.
func (l *Ledger) withSlotLock(ctx context.Context, restaurantID uint, s slot.Slot, fn func(tx *gorm.DB) error) error {
	unlock, err := l.locker.Lock(ctx, slotKey(restaurantID, s))
	if err != nil {
		return apperr.Store("acquire slot lock", err)
	}
	defer unlock()

	txCtx, cancel := context.WithTimeout(ctx, l.holdTimeout)
	defer cancel()
	return l.db.WithContext(txCtx).Transaction(fn)
}

func slotKey(restaurantID uint, s slot.Slot) string {
	return fmt.Sprintf("slot:%d:%d", restaurantID, s.Start.Unix())
}

// ensureCapacity fails with ErrSlotFull when the slot already holds Capacity reservations,
// not counting excludeID.
func ensureCapacity(tx *gorm.DB, restaurantID uint, start time.Time, excludeID uint) error {
	q := tx.Model(&models.Reservation{}).
		Where("restaurant_id = ? AND reservation_time = ?", restaurantID, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return apperr.Store("count reservations", err)
	}
	if count >= Capacity {
		return apperr.ErrSlotFull
	}
	return nil
}
