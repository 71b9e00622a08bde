package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fittrackhq/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrEntryNotFound = errors.New("progress entry not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry *Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO progress_entry
				(user_id, date, weight, body_fat, steps, active_minutes, sleep_hours, calories_burned)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		entry.UserID, entry.Date, entry.Weight, entry.BodyFat,
		entry.Steps, entry.ActiveMinutes, entry.SleepHours, entry.CaloriesBurned,
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

	entry.ID = id
	return entry, nil
}

func (r *Repo) Get(ctx context.Context, id int) (*Entry, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, date, weight, body_fat,
				steps, active_minutes, sleep_hours, calories_burned
			FROM progress_entry
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries, err := r.rows2entries(rows)
	if err != nil {
		return nil, err
	}

	if len(entries) != 1 {
		return nil, ErrEntryNotFound
	}

	return &entries[0], nil
}

func (r *Repo) ListAll(ctx context.Context, userID int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, date, weight, body_fat,
				steps, active_minutes, sleep_hours, calories_burned
			FROM progress_entry
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

	return r.rows2entries(rows)
}

func (r *Repo) rows2entries(rows pgx.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var id int
		var userID int
		var date time.Time
		var weight, bodyFat, sleepHours *float64
		var steps, activeMinutes, caloriesBurned *int
		if err := rows.Scan(
			&id, &userID, &date, &weight, &bodyFat,
			&steps, &activeMinutes, &sleepHours, &caloriesBurned,
		); err != nil {
			return nil, err
		}

		entries = append(entries, Entry{
			ID:             id,
			UserID:         userID,
			Date:           date,
			Weight:         weight,
			BodyFat:        bodyFat,
			Steps:          steps,
			ActiveMinutes:  activeMinutes,
			SleepHours:     sleepHours,
			CaloriesBurned: caloriesBurned,
		})
	}

	if entries == nil {
		entries = make([]Entry, 0)
	}

	return entries, nil
}
