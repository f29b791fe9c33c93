package repository

import (
	"context"
	"errors"
	"exercisetracker/internal/db"
	"fmt"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")

type ExerciseRepository struct {
	db Storage
}

func NewExerciseRepository(db Storage) *ExerciseRepository {
	return &ExerciseRepository{
		db: db,
	}
}

func (r *ExerciseRepository) Migrate() error {
	err := r.db.MigrateModels(&User{}, &Exercise{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *ExerciseRepository) CreateUser(ctx context.Context, username string) (User, error) {
	user := User{
		ID:       uuid.NewString(),
		Username: username,
	}

	if err := r.db.Create(ctx, &user); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *ExerciseRepository) GetUserByID(ctx context.Context, id string) (User, error) {
	// ids are always uuids, anything else cannot be stored
	if _, err := uuid.Parse(id); err != nil {
		return User{}, ErrUserNotFound
	}

	var user User
	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *ExerciseRepository) GetAllUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	if err := r.db.GetAll(ctx, &users); err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}

	return users, nil
}

func (r *ExerciseRepository) CreateExercise(ctx context.Context, exercise Exercise) (Exercise, error) {
	exercise.ID = uuid.NewString()

	if err := r.db.Create(ctx, &exercise); err != nil {
		return Exercise{}, fmt.Errorf("create exercise: %w", err)
	}

	return exercise, nil
}

func (r *ExerciseRepository) GetExercises(ctx context.Context, filter ExerciseFilter) ([]Exercise, error) {
	query := db.Filter{
		Conditions: []db.Condition{
			{Query: "username = ?", Args: []any{filter.Username}},
		},
		OrderBy: "date",
		Limit:   filter.Limit,
	}
	if filter.From != nil {
		query.Conditions = append(query.Conditions, db.Condition{Query: "date >= ?", Args: []any{*filter.From}})
	}
	if filter.To != nil {
		query.Conditions = append(query.Conditions, db.Condition{Query: "date <= ?", Args: []any{*filter.To}})
	}

	exercises := []Exercise{}
	if err := r.db.Find(ctx, query, &exercises); err != nil {
		return nil, fmt.Errorf("get exercises for %q: %w", filter.Username, err)
	}

	return exercises, nil
}
