package stats

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fittrackhq/fittrack/internal/insights"
	"github.com/fittrackhq/fittrack/internal/nutrition"
	"github.com/fittrackhq/fittrack/internal/posture"
	"github.com/fittrackhq/fittrack/internal/progress"
	"github.com/fittrackhq/fittrack/internal/telemetry/metrics"
	"github.com/fittrackhq/fittrack/internal/telemetry/tracing"
	"github.com/fittrackhq/fittrack/internal/wearable"
	"github.com/fittrackhq/fittrack/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test

const insightCacheTTL = time.Hour

type workoutLogsSource interface {
	ListAll(ctx context.Context, userID int) ([]workouts.WorkoutLog, error)
}

type nutritionLogsSource interface {
	ListAll(ctx context.Context, userID int) ([]nutrition.NutritionLog, error)
}

type progressEntriesSource interface {
	ListAll(ctx context.Context, userID int) ([]progress.Entry, error)
}

type postureSessionsSource interface {
	ListAll(ctx context.Context, userID int) ([]posture.Session, error)
}

type wearableMetricsSource interface {
	ListAll(ctx context.Context, userID int) ([]wearable.Metric, error)
}

type userStatsRepo interface {
	Upsert(ctx context.Context, userStats *UserStats) error
	Get(ctx context.Context, userID int) (*UserStats, error)
	SaveInsightCache(ctx context.Context, userID int, cache InsightCache) error
}

type insightsGenerator interface {
	Generate(ctx context.Context, summary insights.StatsSummary) ([]string, error)
}

// Service is the recompute orchestrator: it fans out to the five
// source collections, reduces them through the analyzer and replaces
// the materialized record.
type Service struct {
	workoutLogs     workoutLogsSource
	nutritionLogs   nutritionLogsSource
	progressEntries progressEntriesSource
	postureSessions postureSessionsSource
	wearableMetrics wearableMetricsSource
	repo            userStatsRepo
	analyzer        *Analyzer
	insights        insightsGenerator
	metrics         *metrics.Manager
	now             func() time.Time
}

type NewServiceParams struct {
	WorkoutLogs     workoutLogsSource
	NutritionLogs   nutritionLogsSource
	ProgressEntries progressEntriesSource
	PostureSessions postureSessionsSource
	WearableMetrics wearableMetricsSource
	Repo            userStatsRepo
	Analyzer        *Analyzer
	Insights        insightsGenerator
	Metrics         *metrics.Manager
}

func NewService(params NewServiceParams) *Service {
	return &Service{
		workoutLogs:     params.WorkoutLogs,
		nutritionLogs:   params.NutritionLogs,
		progressEntries: params.ProgressEntries,
		postureSessions: params.PostureSessions,
		wearableMetrics: params.WearableMetrics,
		repo:            params.Repo,
		analyzer:        params.Analyzer,
		insights:        params.Insights,
		metrics:         params.Metrics,
		now:             time.Now,
	}
}

// Recompute rebuilds the user's stats from the full source history and
// upserts the result. A failed fetch of any source aborts the whole
// recompute, nothing is written and the previous record stays visible.
func (s *Service) Recompute(ctx context.Context, userID int) (_ *UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.recompute")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	recomputeStart := time.Now()

	var (
		wg       sync.WaitGroup
		errMutex sync.Mutex
		fetchErr error
		logs     SourceLogs
	)

	addFetchErr := func(err error) {
		errMutex.Lock()
		defer errMutex.Unlock()
		fetchErr = multierr.Append(fetchErr, err)
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		var err error
		if logs.WorkoutLogs, err = s.workoutLogs.ListAll(ctx, userID); err != nil {
			addFetchErr(fmt.Errorf("fetch workout logs: %w", err))
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if logs.NutritionLogs, err = s.nutritionLogs.ListAll(ctx, userID); err != nil {
			addFetchErr(fmt.Errorf("fetch nutrition logs: %w", err))
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if logs.ProgressEntries, err = s.progressEntries.ListAll(ctx, userID); err != nil {
			addFetchErr(fmt.Errorf("fetch progress entries: %w", err))
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if logs.PostureSessions, err = s.postureSessions.ListAll(ctx, userID); err != nil {
			addFetchErr(fmt.Errorf("fetch posture sessions: %w", err))
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if logs.WearableMetrics, err = s.wearableMetrics.ListAll(ctx, userID); err != nil {
			addFetchErr(fmt.Errorf("fetch wearable metrics: %w", err))
		}
	}()
	wg.Wait()

	if fetchErr != nil {
		s.metrics.CounterRecomputeFailures.Inc()
		return nil, fetchErr
	}

	userStats := s.analyzer.Reduce(userID, logs)
	if err := s.repo.Upsert(ctx, userStats); err != nil {
		s.metrics.CounterRecomputeFailures.Inc()
		return nil, fmt.Errorf("upsert user stats: %w", err)
	}

	s.metrics.CounterRecomputes.Inc()
	s.metrics.HistRecomputeDuration.Observe(time.Since(recomputeStart).Seconds())

	log.Debugf("stats recomputed for user %d in %s", userID, time.Since(recomputeStart))

	return userStats, nil
}

// TriggerRecompute is the convenience form the CRUD handlers call
// after a source log write, when the fresh record itself is not
// needed.
func (s *Service) TriggerRecompute(ctx context.Context, userID int) error {
	_, err := s.Recompute(ctx, userID)
	return err
}

// GetStats returns the materialized record, lazily computing it the
// first time a user shows up.
func (s *Service) GetStats(ctx context.Context, userID int) (*UserStats, error) {
	userStats, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrUserStatsNotFound) {
		return s.Recompute(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	return userStats, nil
}

// GetInsights returns short advisory strings for the user, cached for
// an hour inside the stats record. Any recompute clears the cache, so
// fresh stats always force fresh insights. Generator failures degrade
// to a static fallback list, the call itself never fails on them.
func (s *Service) GetInsights(ctx context.Context, userID int) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.getInsights")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userStats, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if cache := userStats.AiInsightCache; cache != nil && s.now().Sub(cache.Timestamp) < insightCacheTTL {
		s.metrics.CounterInsightsCacheHits.Inc()
		return cache.Insights, nil
	}

	generatedInsights, err := s.insights.Generate(ctx, insights.StatsSummary{
		TotalWorkouts: userStats.TotalWorkouts,
		Streak:        userStats.CurrentStreak,
		AvgPosture:    float64(userStats.AvgPostureScore),
		TotalCals:     userStats.TotalCaloriesBurned,
		TotalSteps:    userStats.TotalSteps,
		AvgHeartRate:  float64(userStats.AvgHeartRate),
	})
	if err != nil {
		log.Errorf("generate insights for user %d: %s", userID, err)
		s.metrics.CounterInsightsFallbacks.Inc()
		generatedInsights = insights.FallbackInsights
	}

	if err := s.repo.SaveInsightCache(ctx, userID, InsightCache{
		Insights:  generatedInsights,
		Timestamp: s.now(),
	}); err != nil {
		// insights are still good, only the caching failed
		log.Errorf("save insight cache for user %d: %s", userID, err)
	}

	s.metrics.CounterInsightsGenerated.Inc()

	return generatedInsights, nil
}
