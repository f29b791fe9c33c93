package handler

import (
	"context"
	"exercisetracker/internal/http/handler/middleware"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var Health = "GET /healthz"

const pingTimeout = 2 * time.Second

type HealthHandler struct {
	logs   *zap.SugaredLogger
	pinger Pinger
}

func NewHealthHandler(logger *zap.SugaredLogger, pinger Pinger) *HealthHandler {
	return &HealthHandler{
		logs:   logger,
		pinger: pinger,
	}
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logs.Errorw("database ping failed",
			"error", err,
			"handler", Health,
			"request_id", requestId)
		respond(h.logs, w, map[string]string{"status": "unavailable"}, http.StatusServiceUnavailable, requestId)
		return
	}

	respond(h.logs, w, map[string]string{"status": "ok"}, http.StatusOK, requestId)
}
