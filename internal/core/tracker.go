package core

import (
	"context"
	"errors"
	"exercisetracker/internal/repository"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var ErrUserNotFound error = errors.New("user not found")

var TimeNow = time.Now

// Tracker implements the user and exercise log operations on top of the repository.
type Tracker struct {
	logs *zap.SugaredLogger
	repo Repository
}

// NewTracker is a constructor function for the Tracker type.
func NewTracker(logger *zap.SugaredLogger, repo Repository) *Tracker {
	return &Tracker{
		logs: logger,
		repo: repo,
	}
}

// CreateUser stores a new user. Usernames are not required to be unique.
func (t *Tracker) CreateUser(ctx context.Context, username string) (UserRecord, error) {
	user, err := t.repo.CreateUser(ctx, username)
	if err != nil {
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	t.logs.Infow("user created", "userId", user.ID, "username", user.Username)

	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// ListUsers returns every user in storage order.
func (t *Tracker) ListUsers(ctx context.Context) ([]UserRecord, error) {
	users, err := t.repo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}

	records := make([]UserRecord, len(users))
	for i, u := range users {
		records[i] = UserRecord{
			ID:       u.ID,
			Username: u.Username,
		}
	}
	return records, nil
}

// LogExercise looks up the user and stores an exercise under its username.
// The date defaults to the current day at call time.
func (t *Tracker) LogExercise(ctx context.Context, userID string, msg ExerciseMessage) (ExerciseRecord, error) {
	user, err := t.getUser(ctx, userID)
	if err != nil {
		return ExerciseRecord{}, err
	}

	date := CalendarDate(TimeNow())
	if msg.Date != nil {
		date = CalendarDate(*msg.Date)
	}

	exercise, err := t.repo.CreateExercise(ctx, repository.Exercise{
		Username:    user.Username,
		Description: msg.Description,
		Duration:    msg.Duration,
		Date:        date,
	})
	if err != nil {
		return ExerciseRecord{}, fmt.Errorf("create exercise: %w", err)
	}

	t.logs.Infow("exercise logged", "userId", user.ID, "exerciseId", exercise.ID, "date", exercise.Date)

	return ExerciseRecord{
		UserID:      user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}, nil
}

// GetExerciseLog returns the user's exercises in ascending date order,
// restricted to the query's inclusive range and limit.
func (t *Tracker) GetExerciseLog(ctx context.Context, userID string, query LogQuery) (ExerciseLog, error) {
	user, err := t.getUser(ctx, userID)
	if err != nil {
		return ExerciseLog{}, err
	}

	filter := repository.ExerciseFilter{
		Username: user.Username,
		Limit:    query.Limit,
	}
	if query.From != nil {
		from := CalendarDate(*query.From)
		filter.From = &from
	}
	if query.To != nil {
		to := CalendarDate(*query.To)
		filter.To = &to
	}

	exercises, err := t.repo.GetExercises(ctx, filter)
	if err != nil {
		return ExerciseLog{}, fmt.Errorf("get exercises: %w", err)
	}

	entries := make([]LogEntry, len(exercises))
	for i, ex := range exercises {
		entries[i] = LogEntry{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        ex.Date,
		}
	}

	t.logs.Infow("exercise log fetched", "userId", user.ID, "count", len(entries))

	return ExerciseLog{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(entries),
		Log:      entries,
	}, nil
}

func (t *Tracker) getUser(ctx context.Context, userID string) (repository.User, error) {
	user, err := t.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, ErrUserNotFound
		}
		return repository.User{}, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

// CalendarDate drops the time of day, keeping the date as seen in t's location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
