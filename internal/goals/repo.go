package goals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mohammad0234/fitness-tracker-backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrGoalNotFound = errors.New("goal not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO goal (type, exercise_id, target_value, baseline, start_date, end_date, achieved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`,
		goal.Type, goal.ExerciseID, goal.TargetValue, goal.Baseline,
		goal.StartDate, goal.EndDate, goal.Achieved, goal.CreatedAt,
	).Scan(&goal.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("goal.id", goal.ID))
	return &goal, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	goal := &Goal{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, type, exercise_id, target_value, baseline, start_date, end_date, achieved, created_at
			FROM goal
			WHERE id = $1
		`, id).
		Scan(
			&goal.ID, &goal.Type, &goal.ExerciseID, &goal.TargetValue, &goal.Baseline,
			&goal.StartDate, &goal.EndDate, &goal.Achieved, &goal.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

// ListActive returns the goals not yet marked achieved, newest first.
// Expired goals stay in the list, expiry is a read-time label.
func (r *Repo) ListActive(ctx context.Context) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.listactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, type, exercise_id, target_value, baseline, start_date, end_date, achieved, created_at
		FROM goal
			WHERE achieved IS FALSE
		ORDER BY created_at DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2goals(rows)
}

func (r *Repo) ListAll(ctx context.Context) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, type, exercise_id, target_value, baseline, start_date, end_date, achieved, created_at
		FROM goal
		ORDER BY created_at DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2goals(rows)
}

func (r *Repo) Update(ctx context.Context, goal *Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", goal.ID))

	tag, err := r.db.Exec(ctx, `
		UPDATE goal
		SET type = $1, exercise_id = $2, target_value = $3, baseline = $4,
			start_date = $5, end_date = $6, achieved = $7
		WHERE id = $8;`,
		goal.Type, goal.ExerciseID, goal.TargetValue, goal.Baseline,
		goal.StartDate, goal.EndDate, goal.Achieved, goal.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `
		DELETE FROM goal WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) rows2goals(rows pgx.Rows) ([]Goal, error) {
	goals := make([]Goal, 0)
	for rows.Next() {
		var g Goal
		if err := rows.Scan(
			&g.ID, &g.Type, &g.ExerciseID, &g.TargetValue, &g.Baseline,
			&g.StartDate, &g.EndDate, &g.Achieved, &g.CreatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}
