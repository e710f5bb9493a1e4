package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certdesk/certdesk/internal/config"
	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/models"
)

func newTestRouterAdapter(t *testing.T, serverURL string) RouterAdapter {
	t.Helper()
	log := logger.Nop()
	cfg := config.ConsoleBackend{RouterURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewRouterAdapter(cfg, log)
	require.NoError(t, err)
	return a
}

// decodeInnerRequest unwraps the {body: "..."} envelope back into the inner
// router request, the way the backend does.
func decodeInnerRequest(t *testing.T, r *http.Request) models.RouterRequest {
	t.Helper()

	var env models.RouterEnvelope
	require.NoError(t, json.NewDecoder(r.Body).Decode(&env))

	var inner models.RouterRequest
	require.NoError(t, json.Unmarshal([]byte(env.Body), &inner))
	return inner
}

func writeRouterSuccess(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	resp := models.RouterResponse{OK: true, Status: http.StatusOK, Data: raw}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func writeRouterFailure(t *testing.T, w http.ResponseWriter, status int, code, message string) {
	t.Helper()

	resp := models.RouterResponse{
		OK:     false,
		Status: status,
		Error:  &models.RouterError{Code: code, Message: message},
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func TestNewRouterAdapter_InvalidURL(t *testing.T) {
	log := logger.Nop()

	_, err := NewRouterAdapter(config.ConsoleBackend{RouterURL: ""}, log)
	assert.Error(t, err)

	_, err = NewRouterAdapter(config.ConsoleBackend{RouterURL: "://broken"}, log)
	assert.Error(t, err)
}

func TestRouterLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/router", r.URL.Path)

		inner := decodeInnerRequest(t, r)
		assert.Equal(t, models.ActionLogin, inner.Action)
		assert.NotEmpty(t, inner.RequestID)
		assert.Empty(t, inner.JWTToken)

		writeRouterSuccess(t, w, models.LoginData{Token: "jwt-token", Role: models.RoleAdmin})
	}))
	defer srv.Close()

	a := newTestRouterAdapter(t, srv.URL)
	session, err := a.Login(context.Background(), "admin@corp.example", "secret")

	require.NoError(t, err)
	assert.Equal(t, "admin@corp.example", session.Email)
	assert.Equal(t, "jwt-token", session.Token)
	assert.Equal(t, models.RoleAdmin, session.Role)
}

func TestRouterLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeRouterFailure(t, w, http.StatusUnauthorized, "AUTH_FAILED", "Invalid email or password")
	}))
	defer srv.Close()

	a := newTestRouterAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "admin@corp.example", "wrong")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "AUTH_FAILED", apiErr.Code)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestRouterLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeRouterSuccess(t, w, models.LoginData{})
	}))
	defer srv.Close()

	a := newTestRouterAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "admin@corp.example", "secret")

	assert.Error(t, err)
}

func TestRouterDownloadCertificateURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner := decodeInnerRequest(t, r)
		assert.Equal(t, models.ActionDownloadCert, inner.Action)
		assert.Equal(t, "jwt-token", inner.JWTToken)

		writeRouterSuccess(t, w, models.DownloadCertificateData{
			URL:      "https://objects.example/signed/abc",
			FileName: "certificate.pdf",
		})
	}))
	defer srv.Close()

	a := newTestRouterAdapter(t, srv.URL)
	session := models.Session{Token: "jwt-token"}
	data, err := a.DownloadCertificateURL(context.Background(), session, "learner@corp.example", "go-101")

	require.NoError(t, err)
	assert.Equal(t, "https://objects.example/signed/abc", data.URL)
	assert.Equal(t, "certificate.pdf", data.FileName)
}

func TestRouterDownloadCertificateURL_MissingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeRouterSuccess(t, w, models.DownloadCertificateData{FileName: "certificate.pdf"})
	}))
	defer srv.Close()

	a := newTestRouterAdapter(t, srv.URL)
	_, err := a.DownloadCertificateURL(context.Background(), models.Session{Token: "jwt"}, "learner@corp.example", "go-101")

	assert.Error(t, err)
}

func TestRouterResendCertificate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner := decodeInnerRequest(t, r)
		assert.Equal(t, models.ActionResendCert, inner.Action)

		writeRouterSuccess(t, w, models.ResendCertificateData{Message: "Certificate resent to learner@corp.example"})
	}))
	defer srv.Close()

	a := newTestRouterAdapter(t, srv.URL)
	result, err := a.ResendCertificate(context.Background(), models.Session{Token: "jwt"}, "learner@corp.example", "go-101")

	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.Equal(t, "Certificate resent to learner@corp.example", result.Message)
}

func TestRouterResendCertificate_BackendFailureBecomesResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeRouterFailure(t, w, http.StatusBadRequest, "VALIDATION_ERROR", "learner has no certificate for this course")
	}))
	defer srv.Close()

	a := newTestRouterAdapter(t, srv.URL)
	result, err := a.ResendCertificate(context.Background(), models.Session{Token: "jwt"}, "learner@corp.example", "go-101")

	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.Equal(t, "VALIDATION_ERROR", result.Code)
	assert.Equal(t, "learner has no certificate for this course", result.Message)
}

func TestRouterResendCertificate_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	a := newTestRouterAdapter(t, srv.URL)
	_, err := a.ResendCertificate(context.Background(), models.Session{Token: "jwt"}, "learner@corp.example", "go-101")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestRouterListOrganizationLearners_Success(t *testing.T) {
	learners := []models.Learner{
		{Email: "a@corp.example", Name: "Alice", OrganizationID: "org-1"},
		{Email: "b@corp.example", Name: "Bob", OrganizationID: "org-1"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner := decodeInnerRequest(t, r)
		assert.Equal(t, models.ActionListOrgLearners, inner.Action)

		writeRouterSuccess(t, w, learners)
	}))
	defer srv.Close()

	a := newTestRouterAdapter(t, srv.URL)
	got, err := a.ListOrganizationLearners(context.Background(), models.Session{Token: "jwt"}, "org-1")

	require.NoError(t, err)
	assert.Equal(t, learners, got)
}

func TestRouterLearnerStatistics_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner := decodeInnerRequest(t, r)
		assert.Equal(t, models.ActionLearnerStatistics, inner.Action)

		writeRouterSuccess(t, w, models.LearnerStatistics{TotalLearners: 12, CertificatesIssued: 7})
	}))
	defer srv.Close()

	a := newTestRouterAdapter(t, srv.URL)
	stats, err := a.LearnerStatistics(context.Background(), models.Session{Token: "jwt"}, "org-1")

	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalLearners)
	assert.Equal(t, 7, stats.CertificatesIssued)
}

func TestRouterCreateCourse_Duplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeRouterFailure(t, w, http.StatusConflict, "COURSE_EXISTS", "course go-101 already exists")
	}))
	defer srv.Close()

	a := newTestRouterAdapter(t, srv.URL)
	_, err := a.CreateCourse(context.Background(), models.Session{Token: "jwt"}, models.Course{ID: "go-101"})

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "COURSE_EXISTS", apiErr.Code)
}

func TestRouterCall_NonEnvelopeBodyFallsBackToHTTPMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	a := newTestRouterAdapter(t, srv.URL)
	_, err := a.ListOrganizationLearners(context.Background(), models.Session{Token: "jwt"}, "org-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}
