package mockrouter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/models"
)

// routerAction is the single POST endpoint of the action protocol: the outer
// body is {body: "..."} with the inner request JSON-encoded as a string.
func (h *Handler) routerAction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var envelope models.RouterEnvelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		writeFailure(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request envelope")
		return
	}

	var req struct {
		Action    string          `json:"action"`
		Payload   json.RawMessage `json:"payload"`
		JWTToken  string          `json:"jwt_token"`
		RequestID string          `json:"request_id"`
	}
	if err := json.Unmarshal([]byte(envelope.Body), &req); err != nil {
		writeFailure(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	log.Debug().Str("action", req.Action).Str("request_id", req.RequestID).Msg("router action")

	if req.Action == models.ActionLogin {
		h.actionLogin(w, r, req.Payload)
		return
	}

	claims, err := parseToken(req.JWTToken)
	if err != nil {
		writeFailure(w, r, http.StatusUnauthorized, "AUTH_REQUIRED", "invalid or expired token")
		return
	}

	switch req.Action {
	case models.ActionDownloadCert:
		h.actionDownloadCertificate(w, r, req.Payload)
	case models.ActionResendCert:
		h.actionResendCertificate(w, r, req.Payload)
	case models.ActionListOrgLearners:
		h.actionListLearners(w, r, req.Payload, claims)
	case models.ActionLearnerStatistics:
		h.actionStatistics(w, r, req.Payload, claims)
	case models.ActionCreateCourse:
		h.actionCreateCourse(w, r, req.Payload, claims)
	default:
		writeFailure(w, r, http.StatusBadRequest, "UNKNOWN_ACTION", fmt.Sprintf("unknown action %q", req.Action))
	}
}

func (h *Handler) actionLogin(w http.ResponseWriter, r *http.Request, payload json.RawMessage) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(payload, &creds); err != nil || creds.Email == "" || creds.Password == "" {
		writeFailure(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "email and password are required")
		return
	}

	acc, ok := h.store.findAccount(creds.Email, creds.Password)
	if !ok {
		writeFailure(w, r, http.StatusUnauthorized, "AUTH_FAILED", "Invalid email or password")
		return
	}

	token, err := issueToken(acc)
	if err != nil {
		writeFailure(w, r, http.StatusInternalServerError, "INTERNAL", "could not issue token")
		return
	}

	writeOK(w, r, models.LoginData{Token: token, Role: acc.Role, OrganizationID: acc.OrganizationID})
}

func (h *Handler) actionDownloadCertificate(w http.ResponseWriter, r *http.Request, payload json.RawMessage) {
	var req struct {
		LearnerEmail string `json:"learner_email"`
		CourseID     string `json:"course_id"`
	}
	if err := json.Unmarshal(payload, &req); err != nil || req.LearnerEmail == "" || req.CourseID == "" {
		writeFailure(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "learner_email and course_id are required")
		return
	}

	if _, enrolled := h.store.learnerHasCourse(req.LearnerEmail, req.CourseID); !enrolled {
		writeFailure(w, r, http.StatusNotFound, "NOT_FOUND", "no certificate for this learner and course")
		return
	}

	objectID, fileName := h.store.issueObject(req.LearnerEmail, req.CourseID)
	url := fmt.Sprintf("http://%s/objects/%s", r.Host, objectID)

	writeOK(w, r, models.DownloadCertificateData{URL: url, FileName: fileName})
}

func (h *Handler) actionResendCertificate(w http.ResponseWriter, r *http.Request, payload json.RawMessage) {
	var req struct {
		LearnerEmail string `json:"learner_email"`
		CourseID     string `json:"course_id"`
	}
	if err := json.Unmarshal(payload, &req); err != nil || req.LearnerEmail == "" || req.CourseID == "" {
		writeFailure(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "learner_email and course_id are required")
		return
	}

	if _, enrolled := h.store.learnerHasCourse(req.LearnerEmail, req.CourseID); !enrolled {
		writeFailure(w, r, http.StatusNotFound, "NOT_FOUND", "no certificate for this learner and course")
		return
	}

	writeOK(w, r, models.ResendCertificateData{
		Message: fmt.Sprintf("Certificate resent to %s", req.LearnerEmail),
	})
}

func (h *Handler) actionListLearners(w http.ResponseWriter, r *http.Request, payload json.RawMessage, claims sessionClaims) {
	orgID, ok := h.organizationFromPayload(w, r, payload, claims)
	if !ok {
		return
	}

	writeOK(w, r, h.store.organizationLearners(orgID))
}

func (h *Handler) actionStatistics(w http.ResponseWriter, r *http.Request, payload json.RawMessage, claims sessionClaims) {
	orgID, ok := h.organizationFromPayload(w, r, payload, claims)
	if !ok {
		return
	}

	writeOK(w, r, h.store.statistics(orgID))
}

// organizationFromPayload resolves and authorizes the organization a read
// targets. POCs may only read their own organization; admins may read any.
func (h *Handler) organizationFromPayload(w http.ResponseWriter, r *http.Request, payload json.RawMessage, claims sessionClaims) (string, bool) {
	var req struct {
		OrganizationID string `json:"organization_id"`
	}
	if err := json.Unmarshal(payload, &req); err != nil || req.OrganizationID == "" {
		writeFailure(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "organization_id is required")
		return "", false
	}

	if claims.Role != models.RoleAdmin && claims.OrganizationID != req.OrganizationID {
		writeFailure(w, r, http.StatusForbidden, "FORBIDDEN", "organization access denied")
		return "", false
	}

	return req.OrganizationID, true
}

func (h *Handler) actionCreateCourse(w http.ResponseWriter, r *http.Request, payload json.RawMessage, claims sessionClaims) {
	if claims.Role != models.RoleAdmin {
		writeFailure(w, r, http.StatusForbidden, "FORBIDDEN", "admin role required")
		return
	}

	var course models.Course
	if err := json.Unmarshal(payload, &course); err != nil || course.ID == "" || course.Title == "" {
		writeFailure(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "course id and title are required")
		return
	}

	created, err := h.store.createCourse(course)
	if err != nil {
		writeFailure(w, r, http.StatusConflict, "COURSE_EXISTS", err.Error())
		return
	}

	writeOK(w, r, created)
}

// object serves a previously issued certificate blob. Expired or unknown IDs
// report 403 the way real signed URLs do.
func (h *Handler) object(w http.ResponseWriter, r *http.Request) {
	objectID := chi.URLParam(r, "objectID")

	obj, ok := h.store.takeObject(objectID)
	if !ok {
		http.Error(w, "signature expired", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", obj.FileName))
	_, _ = w.Write(obj.Data)
}

func (h *Handler) adminResend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LearnerEmail string `json:"learner_email"`
		CourseID     string `json:"course_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LearnerEmail == "" || req.CourseID == "" {
		writeAdmin(w, r, false, "learner_email and course_id are required")
		return
	}

	if _, enrolled := h.store.learnerHasCourse(req.LearnerEmail, req.CourseID); !enrolled {
		writeAdmin(w, r, false, "learner not found")
		return
	}

	writeAdmin(w, r, true, fmt.Sprintf("Certificate resent to %s", req.LearnerEmail))
}

func (h *Handler) adminUpdateLearner(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var update models.LearnerUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	update.Email = email

	learner, ok := h.store.updateLearner(update)
	if !ok {
		http.Error(w, "learner not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(learner); err != nil {
		logger.FromRequest(r).Err(err).Msg("write learner response")
	}
}
