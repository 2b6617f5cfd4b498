// Package tasks запускает периодические служебные задачи.
package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Purger удаляет записи живой очереди, оставшиеся с прошлых дней.
type Purger interface {
	PurgeStale(ctx context.Context, now time.Time) (int64, error)
}

type Scheduler struct {
	cron    *cron.Cron
	purger  Purger
	now     func() time.Time
	timeout time.Duration
	log     *slog.Logger
}

// NewScheduler регистрирует очистку очереди по расписанию schedule (cron-выражение из шести полей, с секундами).
func NewScheduler(schedule string, purger Purger, log *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		purger:  purger,
		now:     time.Now,
		timeout: time.Minute,
		log:     log,
	}
	if _, err := s.cron.AddFunc(schedule, s.PurgeQueues); err != nil {
		return nil, fmt.Errorf("schedule queue purge %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("cron scheduler started", slog.Int("jobs", len(s.cron.Entries())))
}

// Stop запрещает новые запуски и ждёт текущую задачу, пока не истёк ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("cron scheduler stop timed out")
	}
}

// PurgeQueues выполняет очистку. Ошибка только логируется, следующий запуск попробует снова.
func (s *Scheduler) PurgeQueues() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	removed, err := s.purger.PurgeStale(ctx, s.now())
	if err != nil {
		s.log.Error("queue purge failed", slog.Any("error", err))
		return
	}
	s.log.Info("queue purge finished", slog.Int64("removed", removed))
}
