package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fittrackhq/fittrack/internal/telemetry/tracing"
	"github.com/fittrackhq/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrWorkoutLogNotFound = errors.New("workout log not found")
	ErrWorkoutNotFound    = errors.New("workout not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workoutLog *WorkoutLog) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_log
				(user_id, workout_id, completed_at, duration_mins, calories_burned)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		workoutLog.UserID, workoutLog.WorkoutID, workoutLog.CompletedAt,
		workoutLog.DurationMins, workoutLog.CaloriesBurned,
	)
	if err != nil {
		// workout_id points to an unknown catalog workout
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil && pkg.IsForeignKeyViolationError(err) {
			return nil, ErrWorkoutNotFound
		}
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	workoutLog.ID = id
	return workoutLog, nil
}

func (r *Repo) Get(ctx context.Context, id int) (*WorkoutLog, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				wl.id, wl.user_id, wl.workout_id, COALESCE(w.type, ''),
				wl.completed_at, wl.duration_mins, wl.calories_burned
			FROM workout_log wl
			LEFT JOIN workout w ON w.id = wl.workout_id
			WHERE wl.id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	workoutLogs, err := r.rows2workoutLogs(rows)
	if err != nil {
		return nil, err
	}

	if len(workoutLogs) != 1 {
		return nil, ErrWorkoutLogNotFound
	}

	return &workoutLogs[0], nil
}

// ListAll returns the full workout log history for one user,
// with the workout type resolved through the workout catalog.
func (r *Repo) ListAll(ctx context.Context, userID int) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				wl.id, wl.user_id, wl.workout_id, COALESCE(w.type, ''),
				wl.completed_at, wl.duration_mins, wl.calories_burned
			FROM workout_log wl
			LEFT JOIN workout w ON w.id = wl.workout_id
			WHERE wl.user_id = $1
			ORDER BY wl.completed_at;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2workoutLogs(rows)
}

func (r *Repo) rows2workoutLogs(rows pgx.Rows) ([]WorkoutLog, error) {
	var workoutLogs []WorkoutLog
	for rows.Next() {
		var id int
		var userID int
		var workoutID *int
		var workoutType string
		var completedAt time.Time
		var durationMins int
		var caloriesBurned int
		if err := rows.Scan(
			&id, &userID, &workoutID, &workoutType,
			&completedAt, &durationMins, &caloriesBurned,
		); err != nil {
			return nil, err
		}

		workoutLogs = append(workoutLogs, WorkoutLog{
			ID:             id,
			UserID:         userID,
			WorkoutID:      workoutID,
			WorkoutType:    workoutType,
			CompletedAt:    completedAt,
			DurationMins:   durationMins,
			CaloriesBurned: caloriesBurned,
		})
	}

	if workoutLogs == nil {
		workoutLogs = make([]WorkoutLog, 0)
	}

	return workoutLogs, nil
}
