package adapter

import (
	"context"
	"fmt"
	"mime"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/certdesk/certdesk/internal/logger"
)

type objectFetcher struct {
	client *resty.Client
	logger *logger.Logger
}

// NewObjectFetcher constructs the HTTP implementation of [ObjectFetcher].
// Signed object URLs are absolute, so the client carries no base URL, only a
// timeout.
func NewObjectFetcher(timeout time.Duration, logger *logger.Logger) ObjectFetcher {
	client := resty.New().SetTimeout(timeout)

	return &objectFetcher{client: client, logger: logger}
}

// Fetch implements [ObjectFetcher]. The returned name is taken from the
// Content-Disposition filename parameter and is empty when the header is
// absent or unparseable.
func (o *objectFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	resp, err := o.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, "", fmt.Errorf("fetch object request: %w", err)
	}
	if mapped := mapHTTPError(resp); mapped != nil {
		return nil, "", mapped
	}

	return resp.Body(), dispositionFileName(resp.Header().Get("Content-Disposition")), nil
}

func dispositionFileName(header string) string {
	if header == "" {
		return ""
	}

	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}

	return params["filename"]
}
