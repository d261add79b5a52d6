package goals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mohammad0234/fitness-tracker-backend/internal/fitlog"
	"github.com/mohammad0234/fitness-tracker-backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=goals_test

var ErrNotAchieved = errors.New("goal progress is below the target")

type goalsRepo interface {
	Add(ctx context.Context, goal Goal) (*Goal, error)
	Get(ctx context.Context, id int) (*Goal, error)
	ListActive(ctx context.Context) ([]Goal, error)
	ListAll(ctx context.Context) ([]Goal, error)
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id int) error
}

// activitySource supplies the historical samples goal progress is
// measured against.
type activitySource interface {
	WorkoutDates(ctx context.Context, from, to time.Time) ([]time.Time, error)
	ExerciseSets(ctx context.Context, exerciseID string, from, to time.Time) ([]fitlog.Set, error)
	BodyWeightHistory(ctx context.Context) ([]fitlog.BodyWeightEntry, error)
}

type GoalWithProgress struct {
	Goal     Goal     `json:"goal"`
	Progress Progress `json:"progress"`
}

type Service struct {
	repo     goalsRepo
	activity activitySource
}

func NewService(repo goalsRepo, activity activitySource) *Service {
	return &Service{
		repo:     repo,
		activity: activity,
	}
}

func (s *Service) Create(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.service.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := goal.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Add(ctx, goal)
}

func (s *Service) Get(ctx context.Context, id int) (*Goal, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, goal *Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.service.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := goal.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, goal)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// GetWithProgress returns the goal together with its progress as of now.
func (s *Service) GetWithProgress(ctx context.Context, id int, now time.Time) (_ *GoalWithProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.service.getwithprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", id))

	goal, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	progress, err := s.progressFor(ctx, *goal, now)
	if err != nil {
		return nil, err
	}

	return &GoalWithProgress{
		Goal:     *goal,
		Progress: *progress,
	}, nil
}

// ListActiveWithProgress returns all non-achieved goals with their
// progress, the shape the goals screen renders directly.
func (s *Service) ListActiveWithProgress(ctx context.Context, now time.Time) (_ []GoalWithProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.service.listactivewithprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	activeGoals, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	goalsWithProgress := make([]GoalWithProgress, 0, len(activeGoals))
	for _, goal := range activeGoals {
		progress, err := s.progressFor(ctx, goal, now)
		if err != nil {
			return nil, fmt.Errorf("progress for goal %d: %w", goal.ID, err)
		}
		goalsWithProgress = append(goalsWithProgress, GoalWithProgress{
			Goal:     goal,
			Progress: *progress,
		})
	}
	return goalsWithProgress, nil
}

// MarkAchieved flips the goal to achieved, but only once the progress
// actually reached the target. Achieved is a terminal state.
func (s *Service) MarkAchieved(ctx context.Context, id int, now time.Time) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.service.markachieved")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", id))

	goal, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal.Achieved {
		return goal, nil
	}

	progress, err := s.progressFor(ctx, *goal, now)
	if err != nil {
		return nil, err
	}
	if progress.Fraction < 1 {
		return nil, ErrNotAchieved
	}

	goal.Achieved = true
	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *Service) progressFor(ctx context.Context, goal Goal, now time.Time) (*Progress, error) {
	samples, err := s.samplesFor(ctx, goal, now)
	if err != nil {
		return nil, err
	}
	progress := Compute(goal, samples, now)
	return &progress, nil
}

func (s *Service) samplesFor(ctx context.Context, goal Goal, now time.Time) ([]Sample, error) {
	switch goal.Type {
	case TypeWorkoutFrequency:
		windowEnd := now
		if goal.EndDate.Before(now) {
			windowEnd = goal.EndDate
		}
		dates, err := s.activity.WorkoutDates(ctx, goal.StartDate, windowEnd)
		if err != nil {
			return nil, fmt.Errorf("get workout dates: %w", err)
		}
		return WorkoutDatesToSamples(dates), nil

	case TypeExerciseTarget:
		sets, err := s.activity.ExerciseSets(ctx, goal.ExerciseID, goal.StartDate, goal.EndDate)
		if err != nil {
			return nil, fmt.Errorf("get exercise sets: %w", err)
		}
		samples := make([]Sample, 0, len(sets))
		for _, set := range sets {
			samples = append(samples, Sample{Date: set.CreatedAt, Value: set.Kilos})
		}
		return samples, nil

	case TypeWeightTarget:
		entries, err := s.activity.BodyWeightHistory(ctx)
		if err != nil {
			return nil, fmt.Errorf("get body weight history: %w", err)
		}
		samples := make([]Sample, 0, len(entries))
		for _, entry := range entries {
			samples = append(samples, Sample{Date: entry.CreatedAt, Value: entry.Kilos})
		}
		return samples, nil

	default:
		return nil, ErrInvalidType
	}
}
