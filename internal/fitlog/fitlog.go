package fitlog

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType can be one of:
//   - workout
//   - rest
type ActivityType string

const (
	ActivityWorkout ActivityType = "workout"
	ActivityRest    ActivityType = "rest"
)

func (at ActivityType) String() string {
	return string(at)
}

func (at ActivityType) IsValid() bool {
	switch at {
	case ActivityWorkout, ActivityRest:
		return true
	default:
		return false
	}
}

// DailyLogEntry marks one calendar day as a workout or a rest day.
// There is at most one entry per day; a workout always wins over
// an explicitly logged rest day.
type DailyLogEntry struct {
	ID       int          `json:"id"`
	Day      time.Time    `json:"day"`
	Activity ActivityType `json:"activity"`
}

// Workout is one training session, logged from the mobile app.
// ClientID is generated on the device so that offline sessions
// can be synced more than once without creating duplicates.
type Workout struct {
	ID        int       `json:"id"`
	ClientID  uuid.UUID `json:"clientId"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Sets      []Set     `json:"sets,omitempty"`
}

type Set struct {
	ID         int       `json:"id"`
	WorkoutID  int       `json:"workoutId"`
	ExerciseID string    `json:"exerciseId"`
	Kilos      float64   `json:"kilos"`
	Reps       int       `json:"reps"`
	CreatedAt  time.Time `json:"createdAt"`
}

type BodyWeightEntry struct {
	ID        int       `json:"id"`
	Kilos     float64   `json:"kilos"`
	CreatedAt time.Time `json:"createdAt"`
}

// Day strips the time of day, leaving the calendar day key
// used everywhere activity dates are compared.
func Day(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
