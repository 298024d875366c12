// Package submit provides the HTTP client for the profile-submission and
// results-email collaborator services.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kamau/career-compass/internal/schemas"
	"github.com/kamau/career-compass/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "CareerCompass/1.0"

const (
	submitProfilePath    = "/api/submit_profile"
	sendResultsEmailPath = "/api/send_results_email"
)

// Options configures the client behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults for the client.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client talks to the external recommendation services.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the service at baseURL.
// A nil logger disables logging; nil opts use DefaultOptions.
func NewClient(baseURL string, logger *zap.Logger, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  opts.UserAgent,
		httpClient: &http.Client{Timeout: opts.Timeout},
		logger:     logger,
	}
}

// SubmitProfile validates the payload, posts it to the profile service and
// returns the decoded response. The payload is checked against the embedded
// profile JSON Schema before anything goes on the wire.
func (c *Client) SubmitProfile(ctx context.Context, payload *types.ProfilePayload) (*types.SubmitResponse, error) {
	if err := payload.Validate(); err != nil {
		return nil, &Error{Endpoint: submitProfilePath, Message: "invalid payload", Cause: err}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{Endpoint: submitProfilePath, Message: "failed to encode payload", Cause: err}
	}
	if err := schemas.ValidateProfile(body); err != nil {
		return nil, &Error{Endpoint: submitProfilePath, Message: "payload failed schema validation", Cause: err}
	}

	c.logger.Debug("submitting profile",
		zap.String("endpoint", submitProfilePath),
		zap.Int("answers", len(payload.TemperamentAnswers)),
		zap.Int("interests", len(payload.Interests)))

	respBody, err := c.post(ctx, submitProfilePath, body)
	if err != nil {
		return nil, err
	}

	var result types.SubmitResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &Error{Endpoint: submitProfilePath, Message: "failed to decode response", Cause: err}
	}
	return &result, nil
}

// SendResultsEmail asks the email service to deliver the recommendation to
// the given address. rec may be nil when the profile service returned no
// recommendation. The response body carries no information beyond success.
func (c *Client) SendResultsEmail(ctx context.Context, email string, rec *types.Recommendation) error {
	req := &types.EmailRequest{Email: email, Recommendation: rec}
	if err := req.Validate(); err != nil {
		return &Error{Endpoint: sendResultsEmailPath, Message: "invalid request", Cause: err}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return &Error{Endpoint: sendResultsEmailPath, Message: "failed to encode request", Cause: err}
	}

	c.logger.Debug("sending results email", zap.String("endpoint", sendResultsEmailPath))

	_, err = c.post(ctx, sendResultsEmailPath, body)
	return err
}

// post issues a JSON POST and returns the response body. Non-2xx statuses
// become an *Error carrying the status and the body text.
func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Endpoint: path, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Endpoint: path, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Endpoint: path, StatusCode: resp.StatusCode, Message: "failed to read response", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("service returned error status",
			zap.String("endpoint", path),
			zap.Int("status", resp.StatusCode))
		return nil, &Error{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Message:    "HTTP " + strconv.Itoa(resp.StatusCode) + ": " + strings.TrimSpace(string(respBody)),
		}
	}

	return respBody, nil
}
