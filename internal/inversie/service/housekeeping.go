package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/store"
	"github.com/aussiebroadwan/inversie/pkg/slogx"
)

// Publisher delivers a notification to an external broker. Publish returns
// nil only once the broker has taken responsibility for the message.
type Publisher interface {
	Publish(ctx context.Context, n domain.Notification) error
}

const defaultRelayBatch = 100

// HousekeepingService periodically deletes expired sessions and, when a
// Publisher is configured, relays unpublished notifications to it. Session
// validity never depends on the sweep.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Publisher Publisher
	Clock     Clock

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour. pub may be nil.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration, pub Publisher) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Publisher: pub,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "relay", s.Publisher != nil)
}

// Stop blocks until the in-flight run has finished. It is a no-op when the
// worker was never started.
func (s *HousekeepingService) Stop() {
	if !s.started.Load() {
		return
	}
	s.stopOnce.Do(func() {
		close(s.stopCh)
		<-s.doneCh
		s.Logger.Info("housekeeping service stopped")
	})
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-s.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	s.RunOnce(ctx)
	for {
		select {
		case <-ticker.C:
			s.RunOnce(ctx)
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single sweep. Each step is independent so a failure in
// one does not stop the other.
func (s *HousekeepingService) RunOnce(ctx context.Context) {
	ctx = slogx.WithContext(ctx, s.Logger)

	n, err := s.Store.Sessions().DeleteExpiredSessions(ctx, s.Clock.now())
	if err != nil {
		s.Logger.Error("failed to delete expired sessions", slogx.Err(err))
	} else {
		s.Logger.Debug("deleted expired sessions", "count", n)
	}

	if s.Publisher != nil {
		published, err := s.RelayNotifications(ctx)
		if err != nil {
			s.Logger.Error("notification relay stopped early", "published", published, slogx.Err(err))
		} else if published > 0 {
			s.Logger.Info("relayed notifications", "published", published)
		}
	}
}

// RelayNotifications publishes pending notifications oldest first and marks
// each one only after Publish returned nil, which a Publisher must not do
// before the broker confirmed the message. A crash between the two steps
// republishes, so delivery is at least once. Rows whose data is not valid
// JSON can never be delivered; they are marked and logged so they do not
// hold up the rest of the queue.
func (s *HousekeepingService) RelayNotifications(ctx context.Context) (int, error) {
	published := 0
	for {
		batch, err := s.Store.Notifications().ListUnpublished(ctx, defaultRelayBatch)
		if err != nil {
			return published, err
		}
		for _, n := range batch {
			if n.Data != nil && !json.Valid([]byte(*n.Data)) {
				s.Logger.Warn("dropping undeliverable notification", "notification_id", n.ID, "type", n.Type)
				if err := s.Store.Notifications().MarkPublished(ctx, n.ID, s.Clock.now()); err != nil {
					return published, err
				}
				continue
			}
			if err := s.Publisher.Publish(ctx, n); err != nil {
				return published, err
			}
			if err := s.Store.Notifications().MarkPublished(ctx, n.ID, s.Clock.now()); err != nil {
				return published, err
			}
			published++
		}
		if len(batch) < defaultRelayBatch {
			return published, nil
		}
	}
}
