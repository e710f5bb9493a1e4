package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/certdesk/certdesk/internal/config"
	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/models"
)

type adminAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewAdminAdapter constructs the HTTP implementation of [AdminAdapter] for
// the privileged admin surface. The base URL comes from cfg.AdminURL and is
// normalised the same way as the router address.
func NewAdminAdapter(cfg config.ConsoleBackend, logger *logger.Logger) (AdminAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.AdminURL)
	if err != nil {
		return nil, fmt.Errorf("invalid admin base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &adminAdapter{client: client, logger: logger}, nil
}

// ResendCertificate implements [AdminAdapter]. The surface's bare
// {success,message} response is folded into a tagged [models.ActionResult];
// the privileged surface reports no machine-readable failure code, so a
// rejected resend comes back with an empty Code.
func (a *adminAdapter) ResendCertificate(ctx context.Context, session models.Session, learnerEmail, courseID string) (models.ActionResult, error) {
	body := map[string]string{"learner_email": learnerEmail, "course_id": courseID}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(session.Token).
		SetBody(body).
		Post("/admin/certificates/resend")
	if err != nil {
		return models.ActionResult{}, fmt.Errorf("admin resend request: %w", err)
	}

	var ar models.AdminResponse
	if err = json.Unmarshal(resp.Body(), &ar); err != nil {
		if mapped := mapHTTPError(resp); mapped != nil {
			return models.ActionResult{}, mapped
		}
		return models.ActionResult{}, fmt.Errorf("decode admin resend response: %w", err)
	}

	if !ar.Success {
		return models.FailureResult("", ar.Message), nil
	}

	return models.SuccessResult(ar.Message), nil
}

// UpdateLearner implements [AdminAdapter].
func (a *adminAdapter) UpdateLearner(ctx context.Context, session models.Session, update models.LearnerUpdate) (models.Learner, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(session.Token).
		SetBody(update).
		Put(fmt.Sprintf("/admin/learners/%s", update.Email))
	if err != nil {
		return models.Learner{}, fmt.Errorf("admin update learner request: %w", err)
	}
	if mapped := mapHTTPError(resp); mapped != nil {
		return models.Learner{}, mapped
	}

	var learner models.Learner
	if err = json.Unmarshal(resp.Body(), &learner); err != nil {
		return models.Learner{}, fmt.Errorf("decode admin update learner response: %w", err)
	}

	return learner, nil
}
