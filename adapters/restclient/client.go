package restclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"crmviewer/domain"
	"crmviewer/helpers"
	"crmviewer/interfaces"

	"github.com/buger/jsonparser"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	// RequestIDHeader carries a per-request correlation id, echoed in the logs.
	RequestIDHeader = "X-Request-Id"

	maxBodySize = 32 << 20
	maxDetail   = 512
)

// New creates an interfaces.RestClient that sends requests to baseURL (the org instance URL) with client.
// Authentication is the job of client's transport. Panics on empty baseURL, nil client or nil logger.
//
// Called from NewClientFactory; tests call it directly with an httptest server.
func New(baseURL string, client *http.Client, logger log.Logger) interfaces.RestClient {
	return &restClient{
		baseURL: strings.TrimRight(helpers.StrPanic(baseURL, "adapters.restclient.client.go: baseURL is required"), "/"),
		client:  helpers.NilPanic(client, "adapters.restclient.client.go: http client is required"),
		logger:  log.WithPrefix(helpers.NilPanic(logger, "adapters.restclient.client.go: logger is required"), "component", "RestClient"),
	}
}

// NewClientFactory returns an interfaces.ClientFactory building clients that authenticate with the
// session's access token as an OAuth2 bearer token, on top of base (timeouts, transport).
//
// The factory returns an error when the session has no access token or its instance URL is not absolute http(s).
//
// Called from cmd/main; the factory is used by service.SessionManager on login and restore.
func NewClientFactory(base *http.Client, logger log.Logger) interfaces.ClientFactory {
	base = helpers.NilPanic(base, "adapters.restclient.client.go: base http client is required")
	logger = helpers.NilPanic(logger, "adapters.restclient.client.go: logger is required")

	return func(session domain.Session) (interfaces.RestClient, error) {
		if session.AccessToken == "" {
			return nil, fmt.Errorf("session has no access token")
		}
		u, err := url.Parse(session.InstanceURL)
		if err != nil {
			return nil, fmt.Errorf("can't parse instance url %q: %w", session.InstanceURL, err)
		}
		if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			return nil, fmt.Errorf("instance url %q is not an absolute http(s) url", session.InstanceURL)
		}

		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: session.AccessToken,
			TokenType:   "Bearer",
		}))
		client.Timeout = base.Timeout

		return New(u.Scheme+"://"+u.Host, client, logger), nil
	}
}

// restClient implements interfaces.RestClient over net/http. Each SendAsync runs on its own goroutine
// and calls exactly one of the callback methods.
type restClient struct {
	baseURL string
	client  *http.Client
	logger  log.Logger
}

// SendAsync implements interfaces.RestClient.
//
// OnSuccess receives every answer from the backend, including non-2xx ones (Success=false, Detail
// set from the status line and the CRM error body). OnError receives network errors, a cancelled ctx
// and unreadable bodies.
func (c *restClient) SendAsync(ctx context.Context, query domain.Query, callback interfaces.AsyncRequestCallback) {
	go func() {
		response, err := c.do(ctx, query)
		if err != nil {
			callback.OnError(err)
			return
		}
		callback.OnSuccess(query, response)
	}()
}

func (c *restClient) do(ctx context.Context, query domain.Query) (domain.Response, error) {
	method := query.Method
	if method == "" {
		method = http.MethodGet
	}
	requestID := uuid.NewString()
	logger := log.With(c.logger, "method", method, "path", query.Path, "request_id", requestID)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+query.Path, nil)
	if err != nil {
		return domain.Response{}, fmt.Errorf("can't create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		level.Warn(logger).Log("msg", "Request failed", "err", err)
		return domain.Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		level.Warn(logger).Log("msg", "Can't read response body", "status", resp.StatusCode, "err", err)
		return domain.Response{}, fmt.Errorf("can't read response body: %w", err)
	}

	response := domain.Response{
		StatusCode: resp.StatusCode,
		Success:    resp.StatusCode >= 200 && resp.StatusCode < 300,
		Payload:    body,
	}
	if !response.Success {
		response.Detail = errorDetail(resp.Status, body)
		level.Warn(logger).Log("msg", "Request rejected", "status", resp.StatusCode, "detail", response.Detail)
		return response, nil
	}

	level.Debug(logger).Log("msg", "Request done", "status", resp.StatusCode, "bytes", len(body))
	return response, nil
}

// errorDetail renders a non-2xx answer. The REST API reports errors as
// [{"errorCode": "...", "message": "..."}]; other bodies are quoted as is, truncated.
func errorDetail(status string, body []byte) string {
	var errorCode, message string
	_, _ = jsonparser.ArrayEach(body, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if err != nil || dataType != jsonparser.Object || message != "" {
			return
		}
		errorCode, _ = jsonparser.GetString(value, "errorCode")
		message, _ = jsonparser.GetString(value, "message")
	})

	switch {
	case errorCode != "" && message != "":
		return status + ": " + errorCode + ": " + message
	case message != "":
		return status + ": " + message
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return status
	}
	if len(text) > maxDetail {
		text = text[:maxDetail] + "..."
	}
	return status + ": " + text
}
