package wearable

import (
	"context"
	"fmt"
	"time"

	"github.com/fittrackhq/fittrack/internal/telemetry/metrics"
	"github.com/fittrackhq/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=syncer_mocks_test.go -package=wearable_test

type dayTotalsProvider interface {
	DayTotals(ctx context.Context, day time.Time) (*DayTotals, error)
}

type metricsRepo interface {
	UpsertDaily(ctx context.Context, metric *Metric) (*Metric, error)
}

type statsRecomputeTrigger interface {
	TriggerRecompute(ctx context.Context, userID int) error
}

// Syncer periodically pulls today's totals from the wearable provider,
// upserts the daily metric and kicks a stats recompute for each user.
type Syncer struct {
	provider dayTotalsProvider
	repo     metricsRepo
	stats    statsRecomputeTrigger
	metrics  *metrics.Manager
	userIDs  []int
	interval time.Duration
	now      func() time.Time
}

func NewSyncer(
	provider dayTotalsProvider,
	repo metricsRepo,
	stats statsRecomputeTrigger,
	metricsManager *metrics.Manager,
	userIDs []int,
	interval time.Duration,
) *Syncer {
	return &Syncer{
		provider: provider,
		repo:     repo,
		stats:    stats,
		metrics:  metricsManager,
		userIDs:  userIDs,
		interval: interval,
		now:      time.Now,
	}
}

// Start blocks until ctx is done. Run it in its own goroutine.
func (s *Syncer) Start(ctx context.Context) {
	log.Debugf("wearable syncer started, interval %s, %d user(s)", s.interval, len(s.userIDs))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugln("wearable syncer stopping ...")
			return
		case <-ticker.C:
			s.syncAll(ctx)
		}
	}
}

func (s *Syncer) syncAll(ctx context.Context) {
	for _, userID := range s.userIDs {
		if err := s.SyncUser(ctx, userID); err != nil {
			log.Errorf("wearable sync for user %d: %s", userID, err)
		}
	}
}

// SyncUser pulls today's totals and stores them as the user's daily
// metric. Also reachable through the manual sync endpoint.
func (s *Syncer) SyncUser(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "wearable.syncUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := s.now().UTC()
	dayTotals, err := s.provider.DayTotals(ctx, now)
	if err != nil {
		return fmt.Errorf("get day totals: %w", err)
	}

	if _, err := s.repo.UpsertDaily(ctx, &Metric{
		UserID:         userID,
		Date:           now,
		Steps:          dayTotals.Steps,
		AvgHeartRate:   dayTotals.AvgHeartRate,
		CaloriesBurned: dayTotals.CaloriesBurned,
		Source:         SourceGoogleFit,
		LastSyncedAt:   now,
	}); err != nil {
		return fmt.Errorf("upsert daily metric: %w", err)
	}

	s.metrics.CounterWearableSyncs.Inc()

	if err := s.stats.TriggerRecompute(ctx, userID); err != nil {
		log.Errorf("wearable metric synced, trigger stats recompute for user %d: %s", userID, err)
	}

	return nil
}
