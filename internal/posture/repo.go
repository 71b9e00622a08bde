package posture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fittrackhq/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSessionNotFound = errors.New("posture session not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, session *Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.posture.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO posture_session
				(user_id, date, avg_score, duration_secs, corrections_triggered)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		session.UserID, session.Date, session.AvgScore,
		session.DurationSecs, session.CorrectionsTriggered,
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

	session.ID = id
	return session, nil
}

func (r *Repo) Get(ctx context.Context, id int) (*Session, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, date, avg_score, duration_secs, corrections_triggered
			FROM posture_session
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

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, err
	}

	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}

	return &sessions[0], nil
}

func (r *Repo) ListAll(ctx context.Context, userID int) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.posture.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, date, avg_score, duration_secs, corrections_triggered
			FROM posture_session
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

	return r.rows2sessions(rows)
}

func (r *Repo) rows2sessions(rows pgx.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		var id int
		var userID int
		var date time.Time
		var avgScore float64
		var durationSecs int
		var correctionsTriggered int
		if err := rows.Scan(
			&id, &userID, &date, &avgScore, &durationSecs, &correctionsTriggered,
		); err != nil {
			return nil, err
		}

		sessions = append(sessions, Session{
			ID:                   id,
			UserID:               userID,
			Date:                 date,
			AvgScore:             avgScore,
			DurationSecs:         durationSecs,
			CorrectionsTriggered: correctionsTriggered,
		})
	}

	if sessions == nil {
		sessions = make([]Session, 0)
	}

	return sessions, nil
}
