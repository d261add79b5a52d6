package fitlog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mohammad0234/fitness-tracker-backend/internal/telemetry/metrics"
	"github.com/mohammad0234/fitness-tracker-backend/internal/telemetry/tracing"
	"github.com/mohammad0234/fitness-tracker-backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=fitlog_mocks_test.go -package=fitlog_test

type fitlogRepo interface {
	AddWorkout(ctx context.Context, workout Workout) (*Workout, error)
	AddSet(ctx context.Context, set Set) (*Set, error)
	Get(ctx context.Context, id int) (*Workout, error)
	WorkoutsForDate(ctx context.Context, day time.Time) ([]Workout, error)
	AddRestDay(ctx context.Context, day time.Time) (*DailyLogEntry, error)
	AddBodyWeightEntry(ctx context.Context, entry BodyWeightEntry) (*BodyWeightEntry, error)
	DailyLogHistory(ctx context.Context, params HistoryParams) ([]DailyLogEntry, error)
	ExerciseSets(ctx context.Context, exerciseID string, from, to time.Time) ([]Set, error)
	BodyWeightHistory(ctx context.Context) ([]BodyWeightEntry, error)
	List(ctx context.Context, params ListParams) (_ []Workout, total int, err error)
}

type NewRestDayRequest struct {
	Day time.Time `json:"day"`
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo    fitlogRepo
	metrics *metrics.Manager
}

func NewHandler(repo fitlogRepo, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metrics,
	}
}

func (handler *Handler) HandleNewWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.newworkout")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	for _, set := range workout.Sets {
		if set.ExerciseID == "" {
			http.Error(w, "error, set exercise id empty", http.StatusBadRequest)
			return
		}
		if set.Kilos < 0 || set.Reps < 0 {
			http.Error(w, "error, negative kilos or reps", http.StatusBadRequest)
			return
		}
	}

	if workout.ClientID == uuid.Nil {
		// logged directly, not synced from the app
		workout.ClientID = uuid.New()
	}
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now()
	}

	addedWorkout, err := handler.repo.AddWorkout(ctx, workout)
	if err != nil {
		log.Errorf("failed to add new workout [%s]: %s", workout.ClientID, err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	addedWorkoutJson, err := json.Marshal(addedWorkout)
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutsLogged.Inc()

	log.Debugf("new workout added: %s", addedWorkoutJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedWorkoutJson, http.StatusCreated)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.addset")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	workoutID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, workout id NaN", http.StatusBadRequest)
		return
	}

	var set Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Tracef("add set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}
	if set.ExerciseID == "" {
		http.Error(w, "error, set exercise id empty", http.StatusBadRequest)
		return
	}
	if set.Kilos < 0 || set.Reps < 0 {
		http.Error(w, "error, negative kilos or reps", http.StatusBadRequest)
		return
	}
	set.WorkoutID = workoutID

	addedSet, err := handler.repo.AddSet(ctx, set)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to add set to workout %d: %s", workoutID, err)
		http.Error(w, "error, failed to add set", http.StatusInternalServerError)
		return
	}

	addedSetJson, err := json.Marshal(addedSet)
	if err != nil {
		log.Errorf("failed to marshal new set: %s", err)
		http.Error(w, "error, failed to add set", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedSetJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.get")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout %d: %s", id, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "failed to marshal workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusOK)
}

func (handler *Handler) HandleWorkoutsForDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.workoutsforday")
	defer span.End()

	vars := mux.Vars(r)
	day, err := time.Parse("2006-01-02", vars["date"])
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	workouts, err := handler.repo.WorkoutsForDate(ctx, day)
	if err != nil {
		log.Errorf("failed to get workouts for %s: %s", vars["date"], err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	workoutsJson, err := json.Marshal(workouts)
	if err != nil {
		log.Errorf("failed to marshal workouts: %s", err)
		http.Error(w, "failed to marshal workouts", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutsJson, http.StatusOK)
}

func (handler *Handler) HandleNewRestDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.newrestday")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req NewRestDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new rest day, unmarshal json params: %s", err)
		http.Error(w, "add rest day failed", http.StatusBadRequest)
		return
	}

	if req.Day.IsZero() {
		req.Day = time.Now()
	}

	entry, err := handler.repo.AddRestDay(ctx, req.Day)
	if err != nil {
		log.Errorf("failed to add rest day: %s", err)
		http.Error(w, "error, failed to add rest day", http.StatusInternalServerError)
		return
	}

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal rest day entry: %s", err)
		http.Error(w, "error, failed to add rest day", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterRestDaysLogged.Inc()

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusCreated)
}

func (handler *Handler) HandleWeightReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.weightreport")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry BodyWeightEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("new weight report, unmarshal json params: %s", err)
		http.Error(w, "add weight report failed", http.StatusBadRequest)
		return
	}

	if entry.Kilos <= 0 {
		http.Error(w, "error, kilos must be positive", http.StatusBadRequest)
		return
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	addedEntry, err := handler.repo.AddBodyWeightEntry(ctx, entry)
	if err != nil {
		log.Errorf("failed to add weight report: %s", err)
		http.Error(w, "error, failed to add weight report", http.StatusInternalServerError)
		return
	}

	entryJson, err := json.Marshal(addedEntry)
	if err != nil {
		log.Errorf("failed to marshal weight report: %s", err)
		http.Error(w, "error, failed to add weight report", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWeightReports.Inc()

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusCreated)
}

// HandleCalendar returns the daily log entries for the requested range,
// used to render the activity calendar in the app.
func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.calendar")
	defer span.End()

	from, err := parseDayParam(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "failed to parse from param", http.StatusBadRequest)
		return
	}
	to, err := parseDayParam(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "failed to parse to param", http.StatusBadRequest)
		return
	}

	entries, err := handler.repo.DailyLogHistory(ctx, HistoryParams{From: from, To: to})
	if err != nil {
		log.Errorf("failed to get daily log history: %s", err)
		http.Error(w, "failed to get daily log history", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("failed to marshal daily log history: %s", err)
		http.Error(w, "failed to marshal daily log history", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entriesJson, http.StatusOK)
}

func (handler *Handler) HandleExerciseSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.exercisesets")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID := vars["exid"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	from, err := parseDayParam(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "failed to parse from param", http.StatusBadRequest)
		return
	}
	to, err := parseDayParam(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "failed to parse to param", http.StatusBadRequest)
		return
	}

	fromTime := time.Time{}
	if from != nil {
		fromTime = *from
	}
	toTime := time.Now()
	if to != nil {
		toTime = to.Add(24 * time.Hour)
	}

	sets, err := handler.repo.ExerciseSets(ctx, exerciseID, fromTime, toTime)
	if err != nil {
		log.Errorf("failed to get sets for exercise [%s]: %s", exerciseID, err)
		http.Error(w, "failed to get exercise sets", http.StatusInternalServerError)
		return
	}

	setsJson, err := json.Marshal(sets)
	if err != nil {
		log.Errorf("failed to marshal exercise sets: %s", err)
		http.Error(w, "failed to marshal exercise sets", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, setsJson, http.StatusOK)
}

func (handler *Handler) HandleWeightHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.weighthistory")
	defer span.End()

	entries, err := handler.repo.BodyWeightHistory(ctx)
	if err != nil {
		log.Errorf("failed to get body weight history: %s", err)
		http.Error(w, "failed to get body weight history", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("failed to marshal body weight history: %s", err)
		http.Error(w, "failed to marshal body weight history", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entriesJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.list")
	defer span.End()

	vars := mux.Vars(r)
	pageStr := vars["page"]
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		log.Tracef("handle get workouts page, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	sizeStr := vars["size"]
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		log.Tracef("handle get workouts page, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	from, err := parseDayParam(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "failed to parse from param", http.StatusBadRequest)
		return
	}
	to, err := parseDayParam(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "failed to parse to param", http.StatusBadRequest)
		return
	}

	workouts, total, err := handler.repo.List(ctx, ListParams{
		HistoryParams: HistoryParams{From: from, To: to},
		Page:          page,
		Size:          size,
	})
	if err != nil {
		log.Errorf("list workouts error: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListResponse{
		Workouts: workouts,
		Total:    total,
	})
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

// parseDayParam parses an optional YYYY-MM-DD query parameter.
func parseDayParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
