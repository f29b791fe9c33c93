package handler

import (
	"encoding/json"
	"errors"
	"exercisetracker/internal/core"
	"exercisetracker/internal/http/handler/middleware"
	"exercisetracker/internal/http/payload"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

var (
	CreateUser  = "POST /api/users"
	ListUsers   = "GET /api/users"
	LogExercise = "POST /api/users/{id}/exercises"
	GetLogs     = "GET /api/users/{id}/logs"
)

type TrackerHandler struct {
	logs           *zap.SugaredLogger
	requestDecoder RequestDecoder
	tracker        TrackerService
}

func NewTrackerHandler(logger *zap.SugaredLogger, requestDecoder RequestDecoder, trackerService TrackerService) *TrackerHandler {
	return &TrackerHandler{
		logs:           logger,
		requestDecoder: requestDecoder,
		tracker:        trackerService,
	}
}

func (h *TrackerHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var req payload.UserRequest
	if err := h.requestDecoder.DecodePayload(r, &req); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not create user",
			Error:   invalidUserErr,
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	user, err := h.tracker.CreateUser(r.Context(), req.Username)
	if err != nil {
		h.serverError(w, err, "failed to create user", CreateUser, requestId)
		return
	}

	respond(h.logs, w, toUserResponse(user), http.StatusCreated, requestId)
}

func (h *TrackerHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	users, err := h.tracker.ListUsers(r.Context())
	if err != nil {
		h.serverError(w, err, "failed to list users", ListUsers, requestId)
		return
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = toUserResponse(u)
	}

	h.logs.Infow("users retrieved",
		"count", len(resp),
		"handler", ListUsers,
		"request_id", requestId)

	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleLogExercise(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	userID := r.PathValue("id")

	var req payload.ExerciseRequest
	if err := h.requestDecoder.DecodePayload(r, &req); err != nil {
		h.badRequest(w, "Could not log exercise", fmt.Errorf("invalid request payload: %w", err), LogExercise, requestId)
		return
	}

	msg, err := req.ToMessage()
	if err != nil {
		h.badRequest(w, "Could not log exercise", fmt.Errorf("invalid request payload: %w", err), LogExercise, requestId)
		return
	}

	exercise, err := h.tracker.LogExercise(r.Context(), userID, msg)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.userNotFound(w, userID, LogExercise, requestId)
			return
		}
		h.serverError(w, err, "failed to log exercise", LogExercise, requestId)
		return
	}

	respond(h.logs, w, toExerciseResponse(exercise), http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleGetLogs(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	userID := r.PathValue("id")

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.badRequest(w, "Could not retrieve logs", fmt.Errorf("parse query parameters: %w", err), GetLogs, requestId)
		return
	}

	var req payload.LogRequest
	if err := req.Bind(values); err != nil {
		h.badRequest(w, "Could not retrieve logs", fmt.Errorf("bind query parameters: %w", err), GetLogs, requestId)
		return
	}
	if err := payload.ValidatePayload(&req); err != nil {
		h.badRequest(w, "Could not retrieve logs", fmt.Errorf("validate query parameters: %w", err), GetLogs, requestId)
		return
	}

	query, err := req.ToQuery()
	if err != nil {
		h.badRequest(w, "Could not retrieve logs", fmt.Errorf("convert query parameters: %w", err), GetLogs, requestId)
		return
	}

	log, err := h.tracker.GetExerciseLog(r.Context(), userID, query)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.userNotFound(w, userID, GetLogs, requestId)
			return
		}
		h.serverError(w, err, "failed to get exercise log", GetLogs, requestId)
		return
	}

	h.logs.Infow("exercise log retrieved",
		"userId", userID,
		"count", log.Count,
		"handler", GetLogs,
		"request_id", requestId)

	respond(h.logs, w, toLogResponse(log), http.StatusOK, requestId)
}

func (h *TrackerHandler) badRequest(w http.ResponseWriter, message string, err error, handler, requestId string) {
	respond(h.logs, w, Response{
		Message: message,
		Error:   badRequestReason(err),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("bad request",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func badRequestReason(err error) string {
	switch {
	case errors.Is(err, payload.ErrNotNumeric):
		return notNumericErr
	case errors.Is(err, payload.ErrInvalidDate):
		return invalidDateErr
	case errors.Is(err, payload.ErrInvalidLimit):
		return invalidLimitErr
	}
	return err.Error()
}

func (h *TrackerHandler) userNotFound(w http.ResponseWriter, userID, handler, requestId string) {
	respond(h.logs, w, Response{
		Message: "Request failed",
		Error:   userNotFoundErr,
	}, http.StatusBadRequest,
		requestId)
	h.logs.Infow("user not found",
		"userId", userID,
		"handler", handler,
		"request_id", requestId)
}

// serverError hides storage details from the client.
func (h *TrackerHandler) serverError(w http.ResponseWriter, err error, logMsg, handler, requestId string) {
	respond(h.logs, w, Response{
		Message: "Request failed",
		Error:   unexpectedErr,
	}, http.StatusInternalServerError,
		requestId)
	h.logs.Errorw(logMsg,
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func respond(logs *zap.SugaredLogger, w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
