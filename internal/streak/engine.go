package streak

import (
	"sort"
	"time"

	"github.com/mohammad0234/fitness-tracker-backend/internal/fitlog"
)

// State holds the streak numbers shown on the home screen.
type State struct {
	CurrentStreak int  `json:"currentStreak"`
	LongestStreak int  `json:"longestStreak"`
	Milestone     bool `json:"milestone"`
}

// CurrentStreak walks backward day by day starting at asOf and counts
// the consecutive days with a logged activity. Rest days keep the
// streak alive just like workouts. If asOf has no activity, the
// streak is 0.
func CurrentStreak(entries []fitlog.DailyLogEntry, asOf time.Time) int {
	days := activeDays(entries)
	streak := 0
	for day := fitlog.Day(asOf); ; day = day.Add(-24 * time.Hour) {
		if _, ok := days[day]; !ok {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak finds the longest run of consecutive calendar days
// with activity, anywhere in the supplied entries.
func LongestStreak(entries []fitlog.DailyLogEntry) int {
	days := activeDays(entries)
	if len(days) == 0 {
		return 0
	}

	sorted := make([]time.Time, 0, len(days))
	for day := range days {
		sorted = append(sorted, day)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// IsMilestone reports whether the streak ending exactly at the given
// day hits one of the celebrated lengths, 7 or 30. The check is
// retroactive, any past day can be queried.
func IsMilestone(entries []fitlog.DailyLogEntry, day time.Time) bool {
	streak := CurrentStreak(entries, day)
	return streak == 7 || streak == 30
}

// ActiveDaysInMonth counts the distinct calendar days with activity in
// the given month. Duplicate entries on the same day count once.
func ActiveDaysInMonth(entries []fitlog.DailyLogEntry, year int, month time.Month) int {
	count := 0
	for day := range activeDays(entries) {
		if day.Year() == year && day.Month() == month {
			count++
		}
	}
	return count
}

// activeDays dedups the entries into a set of day keys.
func activeDays(entries []fitlog.DailyLogEntry) map[time.Time]struct{} {
	days := make(map[time.Time]struct{}, len(entries))
	for _, entry := range entries {
		days[fitlog.Day(entry.Day)] = struct{}{}
	}
	return days
}
