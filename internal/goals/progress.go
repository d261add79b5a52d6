package goals

import (
	"math"
	"sort"
	"time"

	"github.com/mohammad0234/fitness-tracker-backend/internal/fitlog"
)

// Sample is one historical data point relevant to a goal: a body
// weight reading, the heaviest set of an exercise, or a workout date
// (value then carries the cumulative workout count).
type Sample struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Progress is everything the goal detail screen shows. Fraction can
// exceed 1 when the goal is overachieved, clamping is up to the caller.
type Progress struct {
	Current             float64    `json:"current"`
	Fraction            float64    `json:"fraction"`
	DaysLeft            int        `json:"daysLeft"`
	Expired             bool       `json:"expired"`
	ImprovementPercent  float64    `json:"improvementPercent"`
	ProjectedCompletion *time.Time `json:"projectedCompletion,omitempty"`
}

// Compute derives the progress of a goal from its samples, as of now.
// It is pure and safe to call concurrently. With no samples the result
// is the neutral state: current at baseline, fraction 0, no projection.
func Compute(goal Goal, samples []Sample, now time.Time) Progress {
	samples = relevantSamples(goal, samples, now)

	progress := Progress{
		Current:  goal.Baseline,
		DaysLeft: daysLeft(goal.EndDate, now),
	}

	if len(samples) > 0 {
		progress.Current = currentValue(goal, samples)
		progress.Fraction = fraction(goal, progress.Current)
		progress.ProjectedCompletion = projectCompletion(goal, samples)
	}

	progress.Expired = now.After(goal.EndDate) && progress.Fraction < 1
	progress.ImprovementPercent = improvementPercent(goal.Baseline, progress.Current)

	return progress
}

// WorkoutDatesToSamples turns distinct workout dates into cumulative
// count samples, the shape the frequency goal projection works on.
func WorkoutDatesToSamples(dates []time.Time) []Sample {
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		day := fitlog.Day(date)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	samples := make([]Sample, 0, len(days))
	for i, day := range days {
		samples = append(samples, Sample{Date: day, Value: float64(i + 1)})
	}
	return samples
}

// relevantSamples keeps the samples the goal type actually measures,
// sorted by date ascending.
func relevantSamples(goal Goal, samples []Sample, now time.Time) []Sample {
	cutoff := now
	if goal.Type == TypeWorkoutFrequency && goal.EndDate.Before(now) {
		cutoff = goal.EndDate
	}

	kept := make([]Sample, 0, len(samples))
	for _, sample := range samples {
		if sample.Date.Before(goal.StartDate) {
			continue
		}
		if sample.Date.After(cutoff) {
			continue
		}
		kept = append(kept, sample)
	}

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Date.Before(kept[j].Date)
	})
	return kept
}

func currentValue(goal Goal, samples []Sample) float64 {
	switch goal.Type {
	case TypeWorkoutFrequency:
		// cumulative count, the last sample carries the total
		return samples[len(samples)-1].Value
	case TypeExerciseTarget:
		// personal best within the goal window
		best := samples[0].Value
		for _, sample := range samples[1:] {
			if sample.Value > best {
				best = sample.Value
			}
		}
		return best
	case TypeWeightTarget:
		// most recent reading
		return samples[len(samples)-1].Value
	default:
		return goal.Baseline
	}
}

func fraction(goal Goal, current float64) float64 {
	var f float64
	switch goal.Type {
	case TypeWorkoutFrequency:
		f = current / goal.TargetValue
	case TypeExerciseTarget, TypeWeightTarget:
		denominator := goal.TargetValue - goal.Baseline
		if denominator == 0 {
			if current >= goal.TargetValue {
				return 1
			}
			return 0
		}
		f = (current - goal.Baseline) / denominator
	}
	if f < 0 {
		return 0
	}
	return f
}

func daysLeft(endDate, now time.Time) int {
	left := int(math.Ceil(endDate.Sub(now).Hours() / 24))
	if left < 0 {
		return 0
	}
	return left
}

func improvementPercent(baseline, current float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (current - baseline) / baseline * 100
}

// projectCompletion extrapolates linearly from the earliest and latest
// samples. No projection when there are fewer than two samples, the
// rate is zero, or the trend moves away from the target.
func projectCompletion(goal Goal, samples []Sample) *time.Time {
	if len(samples) < 2 {
		return nil
	}

	earliest := samples[0]
	latest := samples[len(samples)-1]

	daysBetween := latest.Date.Sub(earliest.Date).Hours() / 24
	if daysBetween <= 0 {
		return nil
	}

	dailyRate := (latest.Value - earliest.Value) / daysBetween
	if dailyRate == 0 {
		return nil
	}

	needed := goal.TargetValue - latest.Value
	if needed == 0 {
		projected := latest.Date
		return &projected
	}
	if (needed > 0) != (dailyRate > 0) {
		// trending away from the target
		return nil
	}

	daysNeeded := math.Abs(needed) / math.Abs(dailyRate)
	projected := latest.Date.Add(time.Duration(daysNeeded * 24 * float64(time.Hour)))
	return &projected
}
