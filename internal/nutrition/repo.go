package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fittrackhq/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNutritionLogNotFound = errors.New("nutrition log not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, nutritionLog *NutritionLog) (_ *NutritionLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO nutrition_log
				(user_id, date, total_calories, total_protein, total_carbs, total_fats, target_calories)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		nutritionLog.UserID, nutritionLog.Date, nutritionLog.TotalCalories,
		nutritionLog.TotalProtein, nutritionLog.TotalCarbs, nutritionLog.TotalFats,
		nutritionLog.TargetCalories,
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

	nutritionLog.ID = id
	return nutritionLog, nil
}

func (r *Repo) Get(ctx context.Context, id int) (*NutritionLog, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, date, total_calories,
				total_protein, total_carbs, total_fats, target_calories
			FROM nutrition_log
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

	nutritionLogs, err := r.rows2nutritionLogs(rows)
	if err != nil {
		return nil, err
	}

	if len(nutritionLogs) != 1 {
		return nil, ErrNutritionLogNotFound
	}

	return &nutritionLogs[0], nil
}

func (r *Repo) ListAll(ctx context.Context, userID int) (_ []NutritionLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, date, total_calories,
				total_protein, total_carbs, total_fats, target_calories
			FROM nutrition_log
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

	return r.rows2nutritionLogs(rows)
}

func (r *Repo) rows2nutritionLogs(rows pgx.Rows) ([]NutritionLog, error) {
	var nutritionLogs []NutritionLog
	for rows.Next() {
		var id int
		var userID int
		var date time.Time
		var totalCalories int
		var totalProtein, totalCarbs, totalFats float64
		var targetCalories *int
		if err := rows.Scan(
			&id, &userID, &date, &totalCalories,
			&totalProtein, &totalCarbs, &totalFats, &targetCalories,
		); err != nil {
			return nil, err
		}

		nutritionLogs = append(nutritionLogs, NutritionLog{
			ID:             id,
			UserID:         userID,
			Date:           date,
			TotalCalories:  totalCalories,
			TotalProtein:   totalProtein,
			TotalCarbs:     totalCarbs,
			TotalFats:      totalFats,
			TargetCalories: targetCalories,
		})
	}

	if nutritionLogs == nil {
		nutritionLogs = make([]NutritionLog, 0)
	}

	return nutritionLogs, nil
}
