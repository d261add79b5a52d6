package streak

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/mohammad0234/fitness-tracker-backend/internal/fitlog"
	"github.com/mohammad0234/fitness-tracker-backend/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=streak_mocks_test.go -package=streak_test

type dailyLogRepo interface {
	DailyLogHistory(ctx context.Context, params fitlog.HistoryParams) ([]fitlog.DailyLogEntry, error)
}

const (
	oneMinute         = 60
	streakCacheExpire = oneMinute * 5 // default expire in seconds
)

// Analyzer computes streak numbers from the daily log. The home screen
// asks for the state on every visit, so computed states are cached for
// a few minutes.
type Analyzer struct {
	repo  dailyLogRepo
	cache *freecache.Cache

	// NowFunc is used to get the current time, changeable for testing purposes
	NowFunc func() time.Time
}

func NewAnalyzer(repo dailyLogRepo) *Analyzer {
	megabyte := 1024 * 1024
	return &Analyzer{
		repo:    repo,
		cache:   freecache.NewCache(megabyte),
		NowFunc: time.Now,
	}
}

// StreakState returns the current and longest streak as of now,
// together with the milestone flag for today.
func (a *Analyzer) StreakState(ctx context.Context) (_ *State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streak.analyzer.state")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := a.NowFunc()
	cacheKey := fmt.Sprintf("state::%s", fitlog.Day(now).Format("2006-01-02"))
	if stateBytes, err := a.cache.Get([]byte(cacheKey)); err == nil {
		state := &State{}
		if err = json.Unmarshal(stateBytes, state); err == nil {
			log.Tracef("streak state for %s found in cache", cacheKey)
			return state, nil
		}
		log.Errorf("failed to unmarshal cached streak state: %s", err)
	}

	entries, err := a.repo.DailyLogHistory(ctx, fitlog.HistoryParams{})
	if err != nil {
		return nil, fmt.Errorf("get daily log history: %w", err)
	}

	current := CurrentStreak(entries, now)
	state := &State{
		CurrentStreak: current,
		LongestStreak: LongestStreak(entries),
		Milestone:     current == 7 || current == 30,
	}

	stateBytes, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal streak state: %w", err)
	}
	if err := a.cache.Set([]byte(cacheKey), stateBytes, streakCacheExpire); err != nil {
		log.Errorf("failed to cache streak state: %s", err)
	}

	return state, nil
}

// Milestone reports whether the streak ending at the given day was
// exactly 7 or 30 days long.
func (a *Analyzer) Milestone(ctx context.Context, day time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streak.analyzer.milestone")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.repo.DailyLogHistory(ctx, fitlog.HistoryParams{})
	if err != nil {
		return false, fmt.Errorf("get daily log history: %w", err)
	}
	return IsMilestone(entries, day), nil
}

// MonthActiveDays counts the distinct active days of one month.
func (a *Analyzer) MonthActiveDays(ctx context.Context, year int, month time.Month) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streak.analyzer.monthactivedays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)
	entries, err := a.repo.DailyLogHistory(ctx, fitlog.HistoryParams{
		From: &monthStart,
		To:   &monthEnd,
	})
	if err != nil {
		return 0, fmt.Errorf("get daily log history: %w", err)
	}
	return ActiveDaysInMonth(entries, year, month), nil
}
