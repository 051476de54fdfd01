package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.trai.ch/courier/internal/core/domain"
)

const (
	msgAccepted  = "Task received and processing"
	msgDuplicate = "Task already processed"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleTask(w http.ResponseWriter, r *http.Request) {
	var req domain.TaskRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Detail: "Request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "Malformed request body"})
		return
	}

	decision, err := s.intake.Accept(r.Context(), &req)
	if err != nil {
		status, detail := classify(err)
		if status == http.StatusInternalServerError {
			s.logger.Error(err, "task", req.Task)
		}
		writeJSON(w, status, errorResponse{Detail: detail})
		return
	}

	msg := msgAccepted
	if decision == domain.Duplicate {
		msg = msgDuplicate
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "courier"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// classify maps an intake error to its status code and client-facing detail.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidSecret):
		return http.StatusUnauthorized, "Invalid secret"
	case errors.Is(err, domain.ErrEmailMismatch):
		return http.StatusBadRequest, "Email mismatch"
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrDispatchFailed):
		return http.StatusServiceUnavailable, "Service is not accepting tasks"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
