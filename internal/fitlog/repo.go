package fitlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mohammad0234/fitness-tracker-backend/internal/telemetry/tracing"
	"github.com/mohammad0234/fitness-tracker-backend/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
)

type HistoryParams struct {
	From *time.Time
	To   *time.Time
}

type ListParams struct {
	HistoryParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// AddWorkout stores the workout together with its sets and marks the day
// in the daily log. The whole write happens in one transaction. When a
// workout with the same client ID was synced before, the stored one is
// returned instead of creating a duplicate.
func (r *Repo) AddWorkout(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.addworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.client_id", workout.ClientID.String()))

	addedWorkout, err := r.insertWorkout(ctx, workout)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			// synced before, hand out the stored one
			return r.GetByClientID(ctx, workout.ClientID)
		}
		return nil, err
	}
	return addedWorkout, nil
}

func (r *Repo) insertWorkout(ctx context.Context, workout Workout) (_ *Workout, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
		INSERT INTO workout (client_id, note, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`,
		workout.ClientID,
		workout.Note,
		workout.CreatedAt,
	).Scan(&workout.ID)
	if err != nil {
		return nil, err
	}

	for i := range workout.Sets {
		set := &workout.Sets[i]
		set.WorkoutID = workout.ID
		if set.CreatedAt.IsZero() {
			set.CreatedAt = workout.CreatedAt
		}
		err = tx.QueryRow(ctx, `
			INSERT INTO workout_set (workout_id, exercise_id, kilos, reps, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`,
			set.WorkoutID, set.ExerciseID, set.Kilos, set.Reps, set.CreatedAt,
		).Scan(&set.ID)
		if err != nil {
			return nil, fmt.Errorf("insert set %d: %w", i, err)
		}
	}

	// a workout always overrides a previously logged rest day
	_, err = tx.Exec(ctx, `
		INSERT INTO daily_log (day, activity)
		VALUES ($1, 'workout')
		ON CONFLICT (day) DO UPDATE SET activity = 'workout'
	`, Day(workout.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("upsert daily log: %w", err)
	}

	return &workout, nil
}

func (r *Repo) GetByClientID(ctx context.Context, clientID uuid.UUID) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.getbyclientid")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workout := &Workout{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, client_id, note, created_at
			FROM workout
			WHERE client_id = $1
		`, clientID).
		Scan(&workout.ID, &workout.ClientID, &workout.Note, &workout.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	workout.Sets, err = r.workoutSets(ctx, workout.ID)
	if err != nil {
		return nil, err
	}
	return workout, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	workout := &Workout{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, client_id, note, created_at
			FROM workout
			WHERE id = $1
		`, id).
		Scan(&workout.ID, &workout.ClientID, &workout.Note, &workout.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	workout.Sets, err = r.workoutSets(ctx, workout.ID)
	if err != nil {
		return nil, err
	}
	return workout, nil
}

// AddSet appends a set to an already stored workout.
func (r *Repo) AddSet(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.addset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.workout_id", set.WorkoutID))

	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_set (workout_id, exercise_id, kilos, reps, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		set.WorkoutID, set.ExerciseID, set.Kilos, set.Reps, set.CreatedAt,
	).Scan(&set.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("set.id", set.ID))
	return &set, nil
}

// WorkoutsForDate returns all workouts logged on the given calendar day,
// with their sets, ordered oldest first.
func (r *Repo) WorkoutsForDate(ctx context.Context, day time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.workoutsfordate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day = Day(day)
	span.SetAttributes(attribute.String("day", day.Format("2006-01-02")))

	rows, err := r.db.Query(ctx, `
		SELECT id, client_id, note, created_at
		FROM workout
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at ASC
	`, day, day.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	for i := range workouts {
		workouts[i].Sets, err = r.workoutSets(ctx, workouts[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return workouts, nil
}

// AddRestDay logs the day as a rest day. If the day already has an
// activity, the stored one is kept, so a workout can never be
// downgraded to rest.
func (r *Repo) AddRestDay(ctx context.Context, day time.Time) (_ *DailyLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.addrestday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day = Day(day)
	_, err = r.db.Exec(ctx, `
		INSERT INTO daily_log (day, activity)
		VALUES ($1, 'rest')
		ON CONFLICT (day) DO NOTHING
	`, day)
	if err != nil {
		return nil, err
	}

	entry := &DailyLogEntry{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, day, activity
			FROM daily_log
			WHERE day = $1
		`, day).
		Scan(&entry.ID, &entry.Day, &entry.Activity)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *Repo) AddBodyWeightEntry(ctx context.Context, entry BodyWeightEntry) (_ *BodyWeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.addbodyweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO body_weight (kilos, created_at)
		VALUES ($1, $2)
		RETURNING id
	`,
		entry.Kilos, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("entry.id", entry.ID))
	return &entry, nil
}

// DailyLogHistory returns the daily log entries within the given range,
// ordered by day ascending. A nil bound leaves that side open.
func (r *Repo) DailyLogHistory(ctx context.Context, params HistoryParams) (_ []DailyLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.dailyloghistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, day, activity
		FROM daily_log
			WHERE ($1::timestamp IS NULL OR day >= $1)
			AND ($2::timestamp IS NULL OR day <= $2)
		ORDER BY day ASC;`,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2dailyLog(rows)
}

// WorkoutDates returns the distinct calendar days on which at least one
// workout was logged, within the given range, ordered ascending.
func (r *Repo) WorkoutDates(ctx context.Context, from, to time.Time) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.workoutdates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT date_trunc('day', created_at) AS day
		FROM workout
			WHERE created_at >= $1 AND created_at <= $2
		ORDER BY day ASC;`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	dates := make([]time.Time, 0)
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		dates = append(dates, day)
	}
	return dates, nil
}

// ExerciseSets returns all sets for one exercise within the given range,
// ordered by creation time ascending.
func (r *Repo) ExerciseSets(ctx context.Context, exerciseID string, from, to time.Time) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.exercisesets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	rows, err := r.db.Query(ctx, `
		SELECT id, workout_id, exercise_id, kilos, reps, created_at
		FROM workout_set
			WHERE exercise_id = $1
			AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at ASC;`,
		exerciseID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2sets(rows)
}

// BodyWeightHistory returns all body weight reports ordered by
// creation time ascending.
func (r *Repo) BodyWeightHistory(ctx context.Context) (_ []BodyWeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.bodyweighthistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, kilos, created_at
		FROM body_weight
		ORDER BY created_at ASC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	entries := make([]BodyWeightEntry, 0)
	for rows.Next() {
		var entry BodyWeightEntry
		if err := rows.Scan(&entry.ID, &entry.Kilos, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// List returns one page of workouts, newest first, without their sets.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Workout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	countAll, err := r.WorkoutsCount(ctx, params.HistoryParams)
	if err != nil {
		return nil, -1, err
	}

	if countAll <= limit {
		limit = countAll
		offset = 0
	}

	if countAll-offset < limit {
		offset = countAll - limit
	}

	span.SetAttributes(attribute.Int("count_all", countAll))
	span.SetAttributes(attribute.Int("limit", limit))
	span.SetAttributes(attribute.Int("offset", offset))

	rows, err := r.db.Query(ctx, `
		SELECT id, client_id, note, created_at
		FROM workout
			WHERE ($1::timestamp IS NULL OR created_at >= $1)
			AND ($2::timestamp IS NULL OR created_at <= $2)
		ORDER BY created_at DESC
		LIMIT $3
		OFFSET $4;`,
		params.From, params.To,
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, -1, err
	}
	return workouts, countAll, nil
}

func (r *Repo) WorkoutsCount(ctx context.Context, params HistoryParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT COUNT(*) FROM workout
			WHERE ($1::timestamp IS NULL OR created_at >= $1)
			AND ($2::timestamp IS NULL OR created_at <= $2);
	`,
		params.From, params.To,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get workouts count")
}

// RegenerateDailyLog rebuilds the workout entries of the daily log from
// the workout history. Explicitly logged rest days are kept as they are.
// Returns the number of days marked as workout days.
func (r *Repo) RegenerateDailyLog(ctx context.Context) (marked int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.regeneratedailylog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		INSERT INTO daily_log (day, activity)
		SELECT DISTINCT date_trunc('day', created_at), 'workout'
		FROM workout
		ON CONFLICT (day) DO UPDATE SET activity = 'workout';
	`)
	if err != nil {
		return 0, err
	}

	marked = int(tag.RowsAffected())
	span.SetAttributes(attribute.Int("marked", marked))
	return marked, nil
}

func (r *Repo) workoutSets(ctx context.Context, workoutID int) ([]Set, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, workout_id, exercise_id, kilos, reps, created_at
		FROM workout_set
			WHERE workout_id = $1
		ORDER BY id ASC;`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2sets(rows)
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	workouts := make([]Workout, 0)
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.ClientID, &w.Note, &w.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}

func (r *Repo) rows2sets(rows pgx.Rows) ([]Set, error) {
	sets := make([]Set, 0)
	for rows.Next() {
		var s Set
		if err := rows.Scan(&s.ID, &s.WorkoutID, &s.ExerciseID, &s.Kilos, &s.Reps, &s.CreatedAt); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, nil
}

func (r *Repo) rows2dailyLog(rows pgx.Rows) ([]DailyLogEntry, error) {
	entries := make([]DailyLogEntry, 0)
	for rows.Next() {
		var entry DailyLogEntry
		if err := rows.Scan(&entry.ID, &entry.Day, &entry.Activity); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
