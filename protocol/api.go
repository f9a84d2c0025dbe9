// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package protocol

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	BASE_URL           = "https://api.bebop.xyz"
	ERROR_KEY          = "error"
	SOURCE_AUTH_HEADER = "source-auth"

	ENV_PROD = "PROD"
	ENV_TEST = "TEST"

	API_RETRIES        = 3
	API_RETRY_WAIT_MIN = 250 * time.Millisecond
	API_RETRY_WAIT_MAX = 2 * time.Second
)

var ErrBasicAuthRequired = errors.New("basic auth is required for the test environment")

type BasicAuth struct {
	Username string
	Password string
}

// APIError is returned when the Bebop API answered but refused the request,
// either with a non 2xx status code or with an error key in the body.
type APIError struct {
	StatusCode int
	URL        string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bebop api error: status %d, %s: %s", e.StatusCode, e.URL, e.Message)
}

// Rejected reports whether the API definitively refused the request. Server side
// failures are not considered definitive.
func (e *APIError) Rejected() bool {
	return e.StatusCode < http.StatusInternalServerError
}

// BaseURL returns the API root for the environment.
func BaseURL(env string) (string, error) {
	switch strings.ToUpper(env) {
	case ENV_PROD, "":
		return BASE_URL, nil
	case ENV_TEST:
		return strings.Replace(BASE_URL, "api", "api-test", 1), nil
	default:
		return "", fmt.Errorf("unknown environment %s", env)
	}
}

type noRetryKey struct{}

// BebopCheckRetry retries connection errors, 429 and 5xx responses unless the
// request context marks the call as not retryable.
func BebopCheckRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if noRetry, ok := ctx.Value(noRetryKey{}).(bool); ok && noRetry {
		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

type requestOptions struct {
	sourceAuth string
}

type RequestOption func(*requestOptions)

// WithSourceAuth overrides the client wide source-auth header for one request.
func WithSourceAuth(sourceAuth string) RequestOption {
	return func(o *requestOptions) {
		if sourceAuth != "" {
			o.sourceAuth = sourceAuth
		}
	}
}

type API struct {
	HTTPClient *http.Client
	BaseURL    string

	auth       *BasicAuth
	sourceAuth string
}

func NewAPI(env string, auth *BasicAuth, sourceAuth string) (*API, error) {
	baseURL, err := BaseURL(env)
	if err != nil {
		return nil, err
	}
	if strings.ToUpper(env) == ENV_TEST && (auth == nil || auth.Username == "") {
		return nil, ErrBasicAuthRequired
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = API_RETRIES - 1
	retryClient.RetryWaitMin = API_RETRY_WAIT_MIN
	retryClient.RetryWaitMax = API_RETRY_WAIT_MAX
	retryClient.CheckRetry = BebopCheckRetry
	retryClient.Logger = nil

	return &API{
		HTTPClient: retryClient.StandardClient(),
		BaseURL:    baseURL,
		auth:       auth,
		sourceAuth: sourceAuth,
	}, nil
}

// Get sends a GET request with the query params and decodes the JSON response into out.
func (a *API) Get(ctx context.Context, path string, params url.Values, out interface{}, opts ...RequestOption) error {
	u := a.BaseURL + path
	if len(params) > 0 {
		u = fmt.Sprintf("%s?%s", u, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return a.do(req, out, opts...)
}

// Post sends the body as JSON and decodes the JSON response into out.
// Posts are never retried so a submission reaches the API at most once.
func (a *API) Post(ctx context.Context, path string, body interface{}, out interface{}, opts ...RequestOption) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx = context.WithValue(ctx, noRetryKey{}, true)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return a.do(req, out, opts...)
}

func (a *API) do(req *http.Request, out interface{}, opts ...RequestOption) error {
	o := &requestOptions{sourceAuth: a.sourceAuth}
	for _, opt := range opts {
		opt(o)
	}

	req.Header.Set("Accept", "application/json")
	if o.sourceAuth != "" {
		req.Header.Set(SOURCE_AUTH_HEADER, o.sourceAuth)
	}
	if a.auth != nil {
		req.SetBasicAuth(a.auth.Username, a.auth.Password)
	}

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{
			StatusCode: resp.StatusCode,
			URL:        req.URL.Path,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	if e, ok := raw[ERROR_KEY]; ok {
		return &APIError{
			StatusCode: resp.StatusCode,
			URL:        req.URL.Path,
			Message:    errorMessage(e),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return nil
}

func errorMessage(raw json.RawMessage) string {
	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil {
		return msg
	}

	var structured struct {
		ErrorCode int    `json:"errorCode"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(raw, &structured); err == nil && structured.Message != "" {
		return fmt.Sprintf("code %d: %s", structured.ErrorCode, structured.Message)
	}

	return string(raw)
}
