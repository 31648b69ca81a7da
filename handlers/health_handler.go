package handlers

import (
	"context"
	"net/http"
)

// HealthChecker — то, что умеет отвечать на вопрос "жива ли база".
type HealthChecker interface {
	CheckHealth(ctx context.Context) bool
}

type HealthHandler struct {
	checker HealthChecker
}

func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if !h.checker.CheckHealth(r.Context()) {
		if err := writeJSON(w, http.StatusServiceUnavailable, jsonResponse{"status": "unavailable"}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "ok"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
