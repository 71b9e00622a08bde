package wearable

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fittrackhq/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrMetricNotFound = errors.New("wearable metric not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// UpsertDaily writes the metric for its day, replacing a previously
// synced value for the same (user, date). The date is truncated to
// midnight UTC so the unique constraint sees one row per day.
func (r *Repo) UpsertDaily(ctx context.Context, metric *Metric) (_ *Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.wearable.upsertDaily")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	metric.Date = metric.Date.UTC().Truncate(24 * time.Hour)

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO wearable_metric
				(user_id, date, steps, avg_heart_rate, calories_burned, source, last_synced_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (user_id, date) DO UPDATE SET
				steps = EXCLUDED.steps,
				avg_heart_rate = EXCLUDED.avg_heart_rate,
				calories_burned = EXCLUDED.calories_burned,
				source = EXCLUDED.source,
				last_synced_at = EXCLUDED.last_synced_at
			RETURNING id;`,
		metric.UserID, metric.Date, metric.Steps, metric.AvgHeartRate,
		metric.CaloriesBurned, metric.Source, metric.LastSyncedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	metric.ID = id
	return metric, nil
}

func (r *Repo) Get(ctx context.Context, userID int, date time.Time) (*Metric, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, date, steps, avg_heart_rate,
				calories_burned, source, last_synced_at
			FROM wearable_metric
			WHERE user_id = $1 AND date = $2;`,
		userID, date.UTC().Truncate(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	metrics, err := r.rows2metrics(rows)
	if err != nil {
		return nil, err
	}

	if len(metrics) != 1 {
		return nil, ErrMetricNotFound
	}

	return &metrics[0], nil
}

func (r *Repo) ListAll(ctx context.Context, userID int) (_ []Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.wearable.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, date, steps, avg_heart_rate,
				calories_burned, source, last_synced_at
			FROM wearable_metric
			WHERE user_id = $1
			ORDER BY date;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2metrics(rows)
}

func (r *Repo) rows2metrics(rows pgx.Rows) ([]Metric, error) {
	var metrics []Metric
	for rows.Next() {
		var id int
		var userID int
		var date time.Time
		var steps int
		var avgHeartRate float64
		var caloriesBurned int
		var source string
		var lastSyncedAt time.Time
		if err := rows.Scan(
			&id, &userID, &date, &steps, &avgHeartRate,
			&caloriesBurned, &source, &lastSyncedAt,
		); err != nil {
			return nil, err
		}

		metrics = append(metrics, Metric{
			ID:             id,
			UserID:         userID,
			Date:           date,
			Steps:          steps,
			AvgHeartRate:   avgHeartRate,
			CaloriesBurned: caloriesBurned,
			Source:         source,
			LastSyncedAt:   lastSyncedAt,
		})
	}

	if metrics == nil {
		metrics = make([]Metric, 0)
	}

	return metrics, nil
}
