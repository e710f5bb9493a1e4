package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/certdesk/certdesk/internal/config"
	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/models"
)

type routerAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewRouterAdapter constructs the HTTP implementation of [RouterAdapter]. It
// normalises and validates the base URL from cfg.RouterURL and configures the
// underlying client with the resolved base URL and request timeout.
//
// Returns an error if cfg.RouterURL is empty or cannot be parsed as a valid
// URL.
func NewRouterAdapter(cfg config.ConsoleBackend, logger *logger.Logger) (RouterAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.RouterURL)
	if err != nil {
		return nil, fmt.Errorf("invalid router base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &routerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [RouterAdapter]. It executes the LOGIN action with the
// given credentials and returns a session holding the issued token and role.
func (r *routerAdapter) Login(ctx context.Context, email, password string) (models.Session, error) {
	payload := map[string]string{"email": email, "password": password}

	resp, err := r.call(ctx, models.ActionLogin, payload, "")
	if err != nil {
		return models.Session{}, err
	}

	var data models.LoginData
	if err = json.Unmarshal(resp.Data, &data); err != nil {
		return models.Session{}, fmt.Errorf("decode login response: %w", err)
	}
	if data.Token == "" {
		return models.Session{}, fmt.Errorf("login response carries no token")
	}

	return models.Session{Email: email, Token: data.Token, Role: data.Role, OrganizationID: data.OrganizationID}, nil
}

// DownloadCertificateURL implements [RouterAdapter]. It executes
// DOWNLOAD_CERTIFICATE and returns the time-limited object URL plus the
// server-suggested file name. A success envelope with a missing URL field is
// reported as an error.
func (r *routerAdapter) DownloadCertificateURL(ctx context.Context, session models.Session, learnerEmail, courseID string) (models.DownloadCertificateData, error) {
	payload := map[string]string{"learner_email": learnerEmail, "course_id": courseID}

	resp, err := r.call(ctx, models.ActionDownloadCert, payload, session.Token)
	if err != nil {
		return models.DownloadCertificateData{}, err
	}

	var data models.DownloadCertificateData
	if err = json.Unmarshal(resp.Data, &data); err != nil {
		return models.DownloadCertificateData{}, fmt.Errorf("decode download response: %w", err)
	}
	if data.URL == "" {
		return models.DownloadCertificateData{}, fmt.Errorf("download response carries no object url")
	}

	return data, nil
}

// ResendCertificate implements [RouterAdapter]. The self-service surface's
// {ok,data,error} envelope is folded into a tagged [models.ActionResult], so
// a backend-reported failure is a result, not a returned error.
func (r *routerAdapter) ResendCertificate(ctx context.Context, session models.Session, learnerEmail, courseID string) (models.ActionResult, error) {
	payload := map[string]string{"learner_email": learnerEmail, "course_id": courseID}

	resp, err := r.call(ctx, models.ActionResendCert, payload, session.Token)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return models.FailureResult(apiErr.Code, apiErr.Message), nil
		}
		return models.ActionResult{}, err
	}

	var data models.ResendCertificateData
	if len(resp.Data) > 0 {
		if err = json.Unmarshal(resp.Data, &data); err != nil {
			return models.ActionResult{}, fmt.Errorf("decode resend response: %w", err)
		}
	}

	return models.SuccessResult(data.Message), nil
}

// ListOrganizationLearners implements [RouterAdapter].
func (r *routerAdapter) ListOrganizationLearners(ctx context.Context, session models.Session, organizationID string) ([]models.Learner, error) {
	payload := map[string]string{"organization_id": organizationID}

	resp, err := r.call(ctx, models.ActionListOrgLearners, payload, session.Token)
	if err != nil {
		return nil, err
	}

	var learners []models.Learner
	if err = json.Unmarshal(resp.Data, &learners); err != nil {
		return nil, fmt.Errorf("decode learners response: %w", err)
	}

	return learners, nil
}

// LearnerStatistics implements [RouterAdapter].
func (r *routerAdapter) LearnerStatistics(ctx context.Context, session models.Session, organizationID string) (models.LearnerStatistics, error) {
	payload := map[string]string{"organization_id": organizationID}

	resp, err := r.call(ctx, models.ActionLearnerStatistics, payload, session.Token)
	if err != nil {
		return models.LearnerStatistics{}, err
	}

	var stats models.LearnerStatistics
	if err = json.Unmarshal(resp.Data, &stats); err != nil {
		return models.LearnerStatistics{}, fmt.Errorf("decode statistics response: %w", err)
	}

	return stats, nil
}

// CreateCourse implements [RouterAdapter]. Duplicate courses surface as an
// [*APIError] whose code the backend sets to COURSE_EXISTS.
func (r *routerAdapter) CreateCourse(ctx context.Context, session models.Session, course models.Course) (models.Course, error) {
	resp, err := r.call(ctx, models.ActionCreateCourse, course, session.Token)
	if err != nil {
		return models.Course{}, err
	}

	var created models.Course
	if err = json.Unmarshal(resp.Data, &created); err != nil {
		return models.Course{}, fmt.Errorf("decode course response: %w", err)
	}

	return created, nil
}

// call wraps one router invocation: the inner request is JSON-encoded into
// the {body: "..."} envelope the backend expects, POSTed, and the uniform
// {ok,status,data,error} response decoded. A decoded envelope with ok=false
// becomes an [*APIError] carrying the backend's code/message verbatim.
func (r *routerAdapter) call(ctx context.Context, action string, payload any, token string) (models.RouterResponse, error) {
	inner := models.RouterRequest{
		Action:    action,
		Payload:   payload,
		JWTToken:  token,
		RequestID: uuid.NewString(),
	}
	body, err := json.Marshal(inner)
	if err != nil {
		return models.RouterResponse{}, fmt.Errorf("encode %s request: %w", action, err)
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RouterEnvelope{Body: string(body)}).
		Post("/router")
	if err != nil {
		return models.RouterResponse{}, fmt.Errorf("%s request: %w", action, err)
	}

	var rr models.RouterResponse
	if err = json.Unmarshal(resp.Body(), &rr); err != nil {
		// not the router envelope; fall back to HTTP-level mapping
		if mapped := mapHTTPError(resp); mapped != nil {
			return models.RouterResponse{}, mapped
		}
		return models.RouterResponse{}, fmt.Errorf("decode %s response: %w", action, err)
	}

	if !rr.OK {
		apiErr := &APIError{Status: rr.Status}
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode()
		}
		if rr.Error != nil {
			apiErr.Code = rr.Error.Code
			apiErr.Message = rr.Error.Message
		}
		return rr, apiErr
	}

	return rr, nil
}
