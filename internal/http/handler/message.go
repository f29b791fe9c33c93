package handler

import (
	"exercisetracker/internal/core"
	"exercisetracker/internal/http/payload"
)

const (
	oopsErr         = "Oops! Something went wrong. Please try again later."
	unexpectedErr   = "unexpected error occurred"
	invalidUserErr  = "username is required and must be string"
	userNotFoundErr = "there is no user for this id"
	notNumericErr   = "duration must be a number"
	invalidDateErr  = "dates must look like 2006-01-02"
	invalidLimitErr = "limit must be a non-negative integer"
)

type Response struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ExerciseResponse identifies the owning user, not the stored exercise.
type ExerciseResponse struct {
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
	ID          string  `json:"id"`
}

type LogEntryResponse struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

type LogResponse struct {
	Username string             `json:"username"`
	Count    int                `json:"count"`
	ID       string             `json:"id"`
	Log      []LogEntryResponse `json:"log"`
}

func toUserResponse(u core.UserRecord) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
	}
}

func toExerciseResponse(e core.ExerciseRecord) ExerciseResponse {
	return ExerciseResponse{
		Username:    e.Username,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        payload.FormatDate(e.Date),
		ID:          e.UserID,
	}
}

func toLogResponse(l core.ExerciseLog) LogResponse {
	entries := make([]LogEntryResponse, len(l.Log))
	for i, entry := range l.Log {
		entries[i] = LogEntryResponse{
			Description: entry.Description,
			Duration:    entry.Duration,
			Date:        payload.FormatDate(entry.Date),
		}
	}

	return LogResponse{
		Username: l.Username,
		Count:    len(entries),
		ID:       l.UserID,
		Log:      entries,
	}
}
