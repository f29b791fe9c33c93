package handler

import (
	"context"
	"exercisetracker/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TrackerService . TrackerService
type TrackerService interface {
	CreateUser(ctx context.Context, username string) (core.UserRecord, error)
	ListUsers(ctx context.Context) ([]core.UserRecord, error)
	LogExercise(ctx context.Context, userID string, msg core.ExerciseMessage) (core.ExerciseRecord, error)
	GetExerciseLog(ctx context.Context, userID string, query core.LogQuery) (core.ExerciseLog, error)
}

//counterfeiter:generate -o fake -fake-name RequestDecoder . RequestDecoder
type RequestDecoder interface {
	DecodePayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name Pinger . Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}
