package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fittrackhq/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUserStatsNotFound = errors.New("user stats not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert replaces the user's whole stats row. The insight cache
// columns are reset on purpose: new stats invalidate old insights.
func (r *Repo) Upsert(ctx context.Context, userStats *UserStats) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	trendsJson, err := marshalTrends(userStats)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_stats
				(user_id, total_workouts, total_calories_burned, current_streak,
				total_steps, avg_posture_score, total_posture_sessions, avg_heart_rate,
				weekly_calories, weight_trend, steps_trend, posture_trend,
				workout_trend, heart_rate_trend, workout_distribution,
				last_recalculated, ai_insights, ai_insights_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NULL, NULL)
			ON CONFLICT (user_id) DO UPDATE SET
				total_workouts = EXCLUDED.total_workouts,
				total_calories_burned = EXCLUDED.total_calories_burned,
				current_streak = EXCLUDED.current_streak,
				total_steps = EXCLUDED.total_steps,
				avg_posture_score = EXCLUDED.avg_posture_score,
				total_posture_sessions = EXCLUDED.total_posture_sessions,
				avg_heart_rate = EXCLUDED.avg_heart_rate,
				weekly_calories = EXCLUDED.weekly_calories,
				weight_trend = EXCLUDED.weight_trend,
				steps_trend = EXCLUDED.steps_trend,
				posture_trend = EXCLUDED.posture_trend,
				workout_trend = EXCLUDED.workout_trend,
				heart_rate_trend = EXCLUDED.heart_rate_trend,
				workout_distribution = EXCLUDED.workout_distribution,
				last_recalculated = EXCLUDED.last_recalculated,
				ai_insights = NULL,
				ai_insights_at = NULL;`,
		userStats.UserID, userStats.TotalWorkouts, userStats.TotalCaloriesBurned,
		userStats.CurrentStreak, userStats.TotalSteps, userStats.AvgPostureScore,
		userStats.TotalPostureSessions, userStats.AvgHeartRate,
		trendsJson.weeklyCalories, trendsJson.weightTrend, trendsJson.stepsTrend,
		trendsJson.postureTrend, trendsJson.workoutTrend, trendsJson.heartRateTrend,
		trendsJson.workoutDistribution, userStats.LastRecalculated,
	)
	if err != nil {
		return fmt.Errorf("upsert user stats: %w", err)
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, userID int) (_ *UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				user_id, total_workouts, total_calories_burned, current_streak,
				total_steps, avg_posture_score, total_posture_sessions, avg_heart_rate,
				weekly_calories, weight_trend, steps_trend, posture_trend,
				workout_trend, heart_rate_trend, workout_distribution,
				last_recalculated, ai_insights, ai_insights_at
			FROM user_stats
			WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrUserStatsNotFound
	}

	var userStats UserStats
	var weeklyCaloriesJson, weightTrendJson, stepsTrendJson []byte
	var postureTrendJson, workoutTrendJson, heartRateTrendJson []byte
	var workoutDistributionJson []byte
	var aiInsightsJson []byte
	var aiInsightsAt *time.Time
	if err := rows.Scan(
		&userStats.UserID, &userStats.TotalWorkouts, &userStats.TotalCaloriesBurned,
		&userStats.CurrentStreak, &userStats.TotalSteps, &userStats.AvgPostureScore,
		&userStats.TotalPostureSessions, &userStats.AvgHeartRate,
		&weeklyCaloriesJson, &weightTrendJson, &stepsTrendJson,
		&postureTrendJson, &workoutTrendJson, &heartRateTrendJson,
		&workoutDistributionJson, &userStats.LastRecalculated,
		&aiInsightsJson, &aiInsightsAt,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	for _, trendColumn := range []struct {
		name   string
		data   []byte
		target any
	}{
		{"weekly_calories", weeklyCaloriesJson, &userStats.WeeklyCalories},
		{"weight_trend", weightTrendJson, &userStats.WeightTrend},
		{"steps_trend", stepsTrendJson, &userStats.StepsTrend},
		{"posture_trend", postureTrendJson, &userStats.PostureTrend},
		{"workout_trend", workoutTrendJson, &userStats.WorkoutTrend},
		{"heart_rate_trend", heartRateTrendJson, &userStats.HeartRateTrend},
		{"workout_distribution", workoutDistributionJson, &userStats.WorkoutDistribution},
	} {
		if err := json.Unmarshal(trendColumn.data, trendColumn.target); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", trendColumn.name, err)
		}
	}

	if aiInsightsJson != nil && aiInsightsAt != nil {
		var insights []string
		if err := json.Unmarshal(aiInsightsJson, &insights); err != nil {
			return nil, fmt.Errorf("unmarshal ai insights: %w", err)
		}
		userStats.AiInsightCache = &InsightCache{
			Insights:  insights,
			Timestamp: *aiInsightsAt,
		}
	}

	return &userStats, nil
}

// SaveInsightCache writes freshly generated insights next to the stats
// row without touching any derived field.
func (r *Repo) SaveInsightCache(ctx context.Context, userID int, cache InsightCache) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.saveInsightCache")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	insightsJson, err := json.Marshal(cache.Insights)
	if err != nil {
		return fmt.Errorf("marshal insights: %w", err)
	}

	commandTag, err := r.db.Exec(
		ctx,
		`UPDATE user_stats
			SET ai_insights = $1, ai_insights_at = $2
			WHERE user_id = $3;`,
		insightsJson, cache.Timestamp, userID,
	)
	if err != nil {
		return fmt.Errorf("update insight cache: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return ErrUserStatsNotFound
	}

	return nil
}

type trendsJson struct {
	weeklyCalories      []byte
	weightTrend         []byte
	stepsTrend          []byte
	postureTrend        []byte
	workoutTrend        []byte
	heartRateTrend      []byte
	workoutDistribution []byte
}

func marshalTrends(userStats *UserStats) (*trendsJson, error) {
	var t trendsJson
	var err error
	if t.weeklyCalories, err = json.Marshal(userStats.WeeklyCalories); err != nil {
		return nil, fmt.Errorf("marshal weekly calories: %w", err)
	}
	if t.weightTrend, err = json.Marshal(userStats.WeightTrend); err != nil {
		return nil, fmt.Errorf("marshal weight trend: %w", err)
	}
	if t.stepsTrend, err = json.Marshal(userStats.StepsTrend); err != nil {
		return nil, fmt.Errorf("marshal steps trend: %w", err)
	}
	if t.postureTrend, err = json.Marshal(userStats.PostureTrend); err != nil {
		return nil, fmt.Errorf("marshal posture trend: %w", err)
	}
	if t.workoutTrend, err = json.Marshal(userStats.WorkoutTrend); err != nil {
		return nil, fmt.Errorf("marshal workout trend: %w", err)
	}
	if t.heartRateTrend, err = json.Marshal(userStats.HeartRateTrend); err != nil {
		return nil, fmt.Errorf("marshal heart rate trend: %w", err)
	}
	if t.workoutDistribution, err = json.Marshal(userStats.WorkoutDistribution); err != nil {
		return nil, fmt.Errorf("marshal workout distribution: %w", err)
	}
	return &t, nil
}
