package streak

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mohammad0234/fitness-tracker-backend/internal/telemetry/metrics"
	"github.com/mohammad0234/fitness-tracker-backend/internal/telemetry/tracing"
	"github.com/mohammad0234/fitness-tracker-backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=streak_test

type streakAnalyzer interface {
	StreakState(ctx context.Context) (*State, error)
	Milestone(ctx context.Context, day time.Time) (bool, error)
	MonthActiveDays(ctx context.Context, year int, month time.Month) (int, error)
}

type MilestoneResponse struct {
	Day       string `json:"day"`
	Milestone bool   `json:"milestone"`
}

type MonthCountResponse struct {
	Year       int `json:"year"`
	Month      int `json:"month"`
	ActiveDays int `json:"activeDays"`
}

type Handler struct {
	analyzer streakAnalyzer
	metrics  *metrics.Manager
}

func NewHandler(analyzer streakAnalyzer, metrics *metrics.Manager) *Handler {
	return &Handler{
		analyzer: analyzer,
		metrics:  metrics,
	}
}

func (handler *Handler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.streak.state")
	defer span.End()

	state, err := handler.analyzer.StreakState(ctx)
	if err != nil {
		log.Errorf("failed to get streak state: %s", err)
		http.Error(w, "failed to get streak state", http.StatusInternalServerError)
		return
	}

	if state.Milestone {
		handler.metrics.CounterStreakMilestones.Inc()
	}

	stateJson, err := json.Marshal(state)
	if err != nil {
		log.Errorf("failed to marshal streak state: %s", err)
		http.Error(w, "failed to marshal streak state", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, stateJson, http.StatusOK)
}

func (handler *Handler) HandleMilestone(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.streak.milestone")
	defer span.End()

	vars := mux.Vars(r)
	dayStr := vars["date"]
	day, err := time.Parse("2006-01-02", dayStr)
	if err != nil {
		http.Error(w, "failed to parse date param", http.StatusBadRequest)
		return
	}

	milestone, err := handler.analyzer.Milestone(ctx, day)
	if err != nil {
		log.Errorf("failed to get milestone for %s: %s", dayStr, err)
		http.Error(w, "failed to get milestone", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(MilestoneResponse{
		Day:       dayStr,
		Milestone: milestone,
	})
	if err != nil {
		log.Errorf("failed to marshal milestone response: %s", err)
		http.Error(w, "failed to marshal milestone response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleMonthCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.streak.monthcount")
	defer span.End()

	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		http.Error(w, "failed to parse year param", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "failed to parse month param", http.StatusBadRequest)
		return
	}

	activeDays, err := handler.analyzer.MonthActiveDays(ctx, year, time.Month(month))
	if err != nil {
		log.Errorf("failed to get month active days for %d-%d: %s", year, month, err)
		http.Error(w, "failed to get month active days", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(MonthCountResponse{
		Year:       year,
		Month:      month,
		ActiveDays: activeDays,
	})
	if err != nil {
		log.Errorf("failed to marshal month count response: %s", err)
		http.Error(w, "failed to marshal month count response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
