package handlers

import (
	"net/http"

	"github.com/Dosada05/recruiting-platform/services"
	"github.com/Dosada05/recruiting-platform/validation"
)

type RegistrationHandler struct {
	service services.RegistrationService
}

func NewRegistrationHandler(service services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

func (h *RegistrationHandler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var payload validation.Payload
	if err := readJSON(w, r, &payload); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	outcome := h.service.RegisterPlayer(r.Context(), payload)
	writeOutcome(w, r, outcome, "playerId")
}

func (h *RegistrationHandler) RegisterCoach(w http.ResponseWriter, r *http.Request) {
	var payload validation.Payload
	if err := readJSON(w, r, &payload); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	outcome := h.service.RegisterCoach(r.Context(), payload)
	writeOutcome(w, r, outcome, "coachId")
}

// writeOutcome переводит исход регистрации в тело ответа:
// 201 — message + id, 400 — список полевых ошибок, 409/500 — message.
func writeOutcome(w http.ResponseWriter, r *http.Request, outcome services.RegistrationOutcome, idKey string) {
	body := jsonResponse{"success": outcome.Success}
	switch {
	case len(outcome.Errors) > 0:
		body["errors"] = outcome.Errors
	case outcome.Success:
		body["message"] = outcome.Message
		body[idKey] = outcome.ID
	default:
		body["message"] = outcome.Message
	}

	if err := writeJSON(w, outcome.Status, body, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
