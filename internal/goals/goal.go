package goals

import (
	"errors"
	"time"
)

// Type can be one of:
//   - exercise_target: reach a weight on one exercise
//   - workout_frequency: log a number of workout days in the window
//   - weight_target: reach a body weight
type Type string

const (
	TypeExerciseTarget   Type = "exercise_target"
	TypeWorkoutFrequency Type = "workout_frequency"
	TypeWeightTarget     Type = "weight_target"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeExerciseTarget, TypeWorkoutFrequency, TypeWeightTarget:
		return true
	default:
		return false
	}
}

var (
	ErrInvalidType      = errors.New("invalid goal type")
	ErrInvalidDateRange = errors.New("goal end date is before start date")
	ErrInvalidTarget    = errors.New("invalid goal target value")
	ErrMissingExercise  = errors.New("exercise target goal needs an exercise id")
)

// Goal is one user-defined target over a date window. Baseline is the
// metric value snapshotted when the goal was created and is the zero
// point for progress.
type Goal struct {
	ID          int       `json:"id"`
	Type        Type      `json:"type"`
	ExerciseID  string    `json:"exerciseId,omitempty"`
	TargetValue float64   `json:"targetValue"`
	Baseline    float64   `json:"baseline"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Achieved    bool      `json:"achieved"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate rejects structurally invalid goals before any computation.
func (g Goal) Validate() error {
	if !g.Type.IsValid() {
		return ErrInvalidType
	}
	if g.EndDate.Before(g.StartDate) {
		return ErrInvalidDateRange
	}
	if g.TargetValue < 0 {
		return ErrInvalidTarget
	}
	if g.Type == TypeWorkoutFrequency && g.TargetValue == 0 {
		return ErrInvalidTarget
	}
	if g.Type == TypeExerciseTarget && g.ExerciseID == "" {
		return ErrMissingExercise
	}
	return nil
}
