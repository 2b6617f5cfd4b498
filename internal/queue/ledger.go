// Package queue keeps the walk-in queue of every restaurant.
//
// Positions are never stored. A customer's position is 1 plus the number of
// same-restaurant entries that joined strictly earlier, computed from the current
// rows on every read. Entries from previous local days are purged before reads and
// by a daily job.
package queue

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"dinewise/internal/apperr"
	"dinewise/internal/models"

	"gorm.io/gorm"
)

// Event names published to the Notifier.
const (
	EventJoined = "joined"
	EventLeft   = "left"
	EventPurged = "purged"
)

// Notifier is told about every change of a restaurant's queue.
type Notifier interface {
	QueueChanged(restaurantID uint, event string, entryID uint)
}

type nopNotifier struct{}

func (nopNotifier) QueueChanged(uint, string, uint) {}

// Ticket is a queue entry together with its derived position.
type Ticket struct {
	models.QueueEntry
	Position int `json:"position"`
}

type Ledger struct {
	db       *gorm.DB
	now      func() time.Time
	loc      *time.Location
	notifier Notifier
	log      *slog.Logger
}

type Option func(*Ledger)

// WithClock overrides time.Now, used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithLocation sets the zone whose calendar day bounds the queue. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(l *Ledger) { l.loc = loc }
}

// WithNotifier publishes queue changes, e.g. to the websocket hub.
func WithNotifier(n Notifier) Option {
	return func(l *Ledger) {
		if n != nil {
			l.notifier = n
		}
	}
}

func NewLedger(db *gorm.DB, log *slog.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		db:       db,
		now:      time.Now,
		loc:      time.Local,
		notifier: nopNotifier{},
		log:      log,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Join appends a customer to the restaurant's queue and returns the new entry with its position.
func (l *Ledger) Join(ctx context.Context, restaurantID uint, name, phone string) (*Ticket, error) {
	if restaurantID == 0 {
		return nil, apperr.Validation("restaurant_id", "is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("customer_name", "is required")
	}
	if strings.TrimSpace(phone) == "" {
		return nil, apperr.Validation("phone_number", "is required")
	}

	// every driver keeps at least milliseconds, so the stored join time equals now
	now := l.now().In(l.loc).Truncate(time.Millisecond)
	if _, err := l.PurgeStale(ctx, now); err != nil {
		return nil, err
	}

	entry := models.QueueEntry{
		RestaurantID: restaurantID,
		CustomerName: name,
		PhoneNumber:  phone,
		JoinTime:     now,
	}
	if err := l.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, apperr.Store("insert queue entry", err)
	}

	position, err := l.position(ctx, entry)
	if err != nil {
		return nil, err
	}

	l.log.Info("queue joined",
		slog.Uint64("queue_id", uint64(entry.ID)),
		slog.Uint64("restaurant_id", uint64(restaurantID)),
		slog.Int("position", position))
	l.notifier.QueueChanged(restaurantID, EventJoined, entry.ID)
	return &Ticket{QueueEntry: entry, Position: position}, nil
}

// ListFor returns today's queue of the restaurant ordered by join time.
func (l *Ledger) ListFor(ctx context.Context, restaurantID uint) ([]Ticket, error) {
	if _, err := l.PurgeStale(ctx, l.now()); err != nil {
		return nil, err
	}

	var entries []models.QueueEntry
	if err := l.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("join_time ASC").
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, apperr.Store("list queue", err)
	}

	positions := Positions(entries)
	tickets := make([]Ticket, len(entries))
	for i, e := range entries {
		tickets[i] = Ticket{QueueEntry: e, Position: positions[i]}
	}
	return tickets, nil
}

// StatusOf finds a customer by case-insensitive name and exact phone.
// Names are folded in Go so every driver compares Unicode names the same way.
// When the same customer joined twice, the earliest entry is returned.
func (l *Ledger) StatusOf(ctx context.Context, restaurantID uint, name, phone string) (*Ticket, error) {
	if _, err := l.PurgeStale(ctx, l.now()); err != nil {
		return nil, err
	}

	var candidates []models.QueueEntry
	if err := l.db.WithContext(ctx).
		Where("restaurant_id = ? AND phone_number = ?", restaurantID, phone).
		Order("join_time ASC").
		Order("id ASC").
		Find(&candidates).Error; err != nil {
		return nil, apperr.Store("find queue entry", err)
	}

	var entry models.QueueEntry
	found := false
	for _, c := range candidates {
		if strings.EqualFold(c.CustomerName, name) {
			entry, found = c, true
			break
		}
	}
	if !found {
		return nil, apperr.ErrQueueEntryNotFound
	}

	position, err := l.position(ctx, entry)
	if err != nil {
		return nil, err
	}
	return &Ticket{QueueEntry: entry, Position: position}, nil
}

// Leave removes entry id from its queue.
func (l *Ledger) Leave(ctx context.Context, id uint) error {
	var entry models.QueueEntry
	err := l.db.WithContext(ctx).Take(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrQueueEntryNotFound
	}
	if err != nil {
		return apperr.Store("find queue entry", err)
	}

	res := l.db.WithContext(ctx).Delete(&models.QueueEntry{}, id)
	if res.Error != nil {
		return apperr.Store("delete queue entry", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrQueueEntryNotFound
	}

	l.log.Info("queue left", slog.Uint64("queue_id", uint64(id)), slog.Uint64("restaurant_id", uint64(entry.RestaurantID)))
	l.notifier.QueueChanged(entry.RestaurantID, EventLeft, id)
	return nil
}

// PurgeStale deletes every entry that joined before the local calendar day of now.
// Entries of the current day are never touched, so it is safe to run at any time.
func (l *Ledger) PurgeStale(ctx context.Context, now time.Time) (int64, error) {
	cutoff := StartOfDay(now, l.loc)

	var restaurantIDs []uint
	if err := l.db.WithContext(ctx).Model(&models.QueueEntry{}).
		Where("join_time < ?", cutoff).
		Distinct().
		Pluck("restaurant_id", &restaurantIDs).Error; err != nil {
		return 0, apperr.Store("find stale queue entries", err)
	}
	if len(restaurantIDs) == 0 {
		return 0, nil
	}

	res := l.db.WithContext(ctx).Where("join_time < ?", cutoff).Delete(&models.QueueEntry{})
	if res.Error != nil {
		return 0, apperr.Store("purge stale queue entries", res.Error)
	}

	if res.RowsAffected > 0 {
		l.log.Info("stale queue entries purged", slog.Int64("removed", res.RowsAffected), slog.Time("cutoff", cutoff))
		for _, id := range restaurantIDs {
			l.notifier.QueueChanged(id, EventPurged, 0)
		}
	}
	return res.RowsAffected, nil
}

func (l *Ledger) position(ctx context.Context, entry models.QueueEntry) (int, error) {
	var earlier int64
	if err := l.db.WithContext(ctx).Model(&models.QueueEntry{}).
		Where("restaurant_id = ? AND join_time < ?", entry.RestaurantID, entry.JoinTime).
		Count(&earlier).Error; err != nil {
		return 0, apperr.Store("count queue position", err)
	}
	return int(earlier) + 1, nil
}

// Positions derives the position of each entry of one restaurant's queue.
// entries must be sorted by JoinTime ascending. Entries sharing a JoinTime share a position.
func Positions(entries []models.QueueEntry) []int {
	positions := make([]int, len(entries))
	for i := range entries {
		if i > 0 && entries[i].JoinTime.Equal(entries[i-1].JoinTime) {
			positions[i] = positions[i-1]
			continue
		}
		positions[i] = i + 1
	}
	return positions
}

// StartOfDay returns local midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
