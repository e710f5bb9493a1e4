package mockrouter

import (
	"encoding/json"
	"net/http"

	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/models"
)

func writeOK(w http.ResponseWriter, r *http.Request, data any) {
	log := logger.FromRequest(r)

	raw, err := json.Marshal(data)
	if err != nil {
		log.Err(err).Msg("encode response data")
		writeFailure(w, r, http.StatusInternalServerError, "INTERNAL", "could not encode response")
		return
	}

	resp := models.RouterResponse{OK: true, Status: http.StatusOK, Data: raw}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		log.Err(err).Msg("write response")
	}
}

func writeFailure(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	log := logger.FromRequest(r)

	resp := models.RouterResponse{
		OK:     false,
		Status: status,
		Error:  &models.RouterError{Code: code, Message: message},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Err(err).Msg("write error response")
	}
}

func writeAdmin(w http.ResponseWriter, r *http.Request, success bool, message string) {
	log := logger.FromRequest(r)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(models.AdminResponse{Success: success, Message: message}); err != nil {
		log.Err(err).Msg("write admin response")
	}
}
