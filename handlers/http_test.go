package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crmviewer/domain"
	"crmviewer/interfaces/mock"
	"crmviewer/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errBody struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestEcho(t *testing.T, server ServerInterface) *echo.Echo {
	t.Helper()
	e := echo.New()
	validator, err := NewRequestValidator()
	require.NoError(t, err)
	e.Use(validator)
	RegisterHandlers(e, server)
	service.RegisterErrorHandler(e, log.NewNopLogger())
	return e
}

func newTestServer(repository *mock.RepositoryMock, sessions *mock.SessionManagerMock) (*HTTPServer, *service.StateHolder) {
	state := service.NewStateHolder(log.NewNopLogger())
	return NewHTTPServer(repository, sessions, state, log.NewNopLogger()), state
}

func do(e *echo.Echo, method string, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) StateResponse {
	t.Helper()
	var resp StateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	var body errBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	return body.Error.Code, body.Error.Message
}

func waitForState(t *testing.T, state *service.StateHolder, expected domain.UIState) {
	t.Helper()
	assert.Eventually(t, func() bool {
		return assert.ObjectsAreEqual(expected, state.State())
	}, 2*time.Second, 5*time.Millisecond)
}

func TestNewHTTPServer_Panics(t *testing.T) {
	repository := &mock.RepositoryMock{}
	sessions := &mock.SessionManagerMock{}
	state := service.NewStateHolder(log.NewNopLogger())
	logger := log.NewNopLogger()

	assert.PanicsWithValue(t, "handlers.http.go: repository is required", func() { NewHTTPServer(nil, sessions, state, logger) })
	assert.PanicsWithValue(t, "handlers.http.go: session manager is required", func() { NewHTTPServer(repository, nil, state, logger) })
	assert.PanicsWithValue(t, "handlers.http.go: state holder is required", func() { NewHTTPServer(repository, sessions, nil, logger) })
	assert.PanicsWithValue(t, "handlers.http.go: logger is required", func() { NewHTTPServer(repository, sessions, state, nil) })
}

func TestHTTPServer_Healthz(t *testing.T) {
	server, _ := newTestServer(&mock.RepositoryMock{}, &mock.SessionManagerMock{})
	rec := do(newTestEcho(t, server), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHTTPServer_GetState(t *testing.T) {
	server, _ := newTestServer(&mock.RepositoryMock{}, &mock.SessionManagerMock{})
	rec := do(newTestEcho(t, server), http.MethodGet, "/v1/state", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"loading":false}`, rec.Body.String())
}

func TestHTTPServer_Fetch(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		body     string
		prepare  func(repository *mock.RepositoryMock, release <-chan struct{})
		expected domain.UIState
	}{
		{
			name:   "contacts",
			target: "/v1/contacts/fetch",
			prepare: func(repository *mock.RepositoryMock, release <-chan struct{}) {
				repository.ContactNamesFunc = func(ctx context.Context) ([]string, error) {
					<-release
					return []string{"Ada", "Bob"}, nil
				}
			},
			expected: domain.UIState{Data: []string{"Ada", "Bob"}},
		},
		{
			name:   "accounts",
			target: "/v1/accounts/fetch",
			prepare: func(repository *mock.RepositoryMock, release <-chan struct{}) {
				repository.AccountNamesFunc = func(ctx context.Context) ([]string, error) {
					<-release
					return []string{"Acme"}, nil
				}
			},
			expected: domain.UIState{Data: []string{"Acme"}},
		},
		{
			name:   "objects without session",
			target: "/v1/objects/fetch",
			prepare: func(repository *mock.RepositoryMock, release <-chan struct{}) {
				repository.DescribeObjectsFunc = func(ctx context.Context) ([]string, error) {
					<-release
					return nil, service.NewNoSessionError()
				}
			},
			expected: domain.UIState{Error: "Salesforce client not available."},
		},
		{
			name:   "objects app not found",
			target: "/v1/objects/fetch",
			prepare: func(repository *mock.RepositoryMock, release <-chan struct{}) {
				repository.DescribeObjectsFunc = func(ctx context.Context) ([]string, error) {
					<-release
					return nil, service.NewAppNotFoundError("LightningSales")
				}
			},
			expected: domain.UIState{Error: "The 'LightningSales' app was not found."},
		},
		{
			name:   "query",
			target: "/v1/query/fetch",
			body:   `{"soql":"SELECT Name FROM Lead"}`,
			prepare: func(repository *mock.RepositoryMock, release <-chan struct{}) {
				repository.RecordNamesFunc = func(ctx context.Context, soql string) ([]string, error) {
					<-release
					if soql != "SELECT Name FROM Lead" {
						return nil, assert.AnError
					}
					return []string{"Lee"}, nil
				}
			},
			expected: domain.UIState{Data: []string{"Lee"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			release := make(chan struct{})
			repository := &mock.RepositoryMock{}
			tt.prepare(repository, release)
			server, state := newTestServer(repository, &mock.SessionManagerMock{})
			e := newTestEcho(t, server)

			rec := do(e, http.MethodPost, tt.target, tt.body)
			require.Equal(t, http.StatusAccepted, rec.Code)
			assert.Equal(t, StateResponse{Data: []string{}, Loading: true}, decodeState(t, rec))

			close(release)
			waitForState(t, state, tt.expected)
		})
	}
}

func TestHTTPServer_FetchQueryBadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: `{invalid`},
		{name: "soql missing", body: `{}`},
		{name: "soql empty", body: `{"soql":""}`},
		{name: "soql blank", body: `{"soql":"   "}`},
		{name: "soql not a string", body: `{"soql":42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := &mock.RepositoryMock{}
			server, state := newTestServer(repository, &mock.SessionManagerMock{})

			rec := do(newTestEcho(t, server), http.MethodPost, "/v1/query/fetch", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			code, _ := decodeError(t, rec)
			assert.Equal(t, service.ErrBadParameter, code)
			assert.Empty(t, repository.RecordNamesCalls())
			assert.Equal(t, domain.UIState{}, state.State())
		})
	}
}

func TestHTTPServer_ClearState(t *testing.T) {
	release := make(chan struct{})
	repository := &mock.RepositoryMock{
		ContactNamesFunc: func(ctx context.Context) ([]string, error) {
			<-release
			return []string{"Ada"}, nil
		},
	}
	server, state := newTestServer(repository, &mock.SessionManagerMock{})
	e := newTestEcho(t, server)

	require.Equal(t, http.StatusAccepted, do(e, http.MethodPost, "/v1/contacts/fetch", "").Code)

	rec := do(e, http.MethodPost, "/v1/clear", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StateResponse{Data: []string{}}, decodeState(t, rec))

	close(release)
	waitForState(t, state, domain.UIState{Data: []string{"Ada"}})
}

func TestHTTPServer_PutSession(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		loginErr       error
		expectedStatus int
		expectedLogins int
	}{
		{
			name:           "ok",
			body:           `{"instance_url":"https://acme.my.salesforce.com","access_token":"00D-token","user_id":"005xx"}`,
			expectedStatus: http.StatusNoContent,
			expectedLogins: 1,
		},
		{
			name:           "400 invalid JSON",
			body:           `{invalid`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "400 missing access_token",
			body:           `{"instance_url":"https://acme.my.salesforce.com"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "400 blank instance_url",
			body:           `{"instance_url":" ","access_token":"00D-token"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "400 login rejects session",
			body:           `{"instance_url":"ftp://acme","access_token":"00D-token"}`,
			loginErr:       service.NewBadParameterError("instance_url is not an absolute http(s) URL", nil),
			expectedStatus: http.StatusBadRequest,
			expectedLogins: 1,
		},
		{
			name:           "500 session store fails",
			body:           `{"instance_url":"https://acme.my.salesforce.com","access_token":"00D-token"}`,
			loginErr:       service.NewInternalServerError("Redis write key error", nil),
			expectedStatus: http.StatusInternalServerError,
			expectedLogins: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &mock.SessionManagerMock{
				LoginFunc: func(ctx context.Context, session domain.Session) error {
					return tt.loginErr
				},
			}
			server, _ := newTestServer(&mock.RepositoryMock{}, sessions)

			rec := do(newTestEcho(t, server), http.MethodPut, "/v1/session", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			require.Len(t, sessions.LoginCalls(), tt.expectedLogins)
			if tt.expectedStatus == http.StatusNoContent {
				assert.Empty(t, rec.Body.Bytes())
				assert.Equal(t, domain.Session{
					InstanceURL: "https://acme.my.salesforce.com",
					AccessToken: "00D-token",
					UserID:      "005xx",
				}, sessions.LoginCalls()[0].Session)
				return
			}
			code, msg := decodeError(t, rec)
			assert.NotEmpty(t, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestHTTPServer_GetSession(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		sessions := &mock.SessionManagerMock{
			CurrentFunc: func(ctx context.Context) (domain.Session, error) {
				return domain.Session{InstanceURL: "https://acme.my.salesforce.com", AccessToken: "secret", UserID: "005xx"}, nil
			},
		}
		server, _ := newTestServer(&mock.RepositoryMock{}, sessions)

		rec := do(newTestEcho(t, server), http.MethodGet, "/v1/session", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"instance_url":"https://acme.my.salesforce.com","user_id":"005xx"}`, rec.Body.String())
	})
	t.Run("404 no session", func(t *testing.T) {
		sessions := &mock.SessionManagerMock{
			CurrentFunc: func(ctx context.Context) (domain.Session, error) {
				return domain.Session{}, service.NewEntityNotFoundError("no active session", nil)
			},
		}
		server, _ := newTestServer(&mock.RepositoryMock{}, sessions)

		rec := do(newTestEcho(t, server), http.MethodGet, "/v1/session", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		code, msg := decodeError(t, rec)
		assert.Equal(t, service.ErrEntityNotFound, code)
		assert.Equal(t, "no active session", msg)
	})
}

func TestHTTPServer_DeleteSession(t *testing.T) {
	tests := []struct {
		name           string
		logoutErr      error
		expectedStatus int
	}{
		{name: "ok", expectedStatus: http.StatusNoContent},
		{name: "500 store fails", logoutErr: service.NewInternalServerError("Redis delete key error", nil), expectedStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := &mock.RepositoryMock{
				ContactNamesFunc: func(ctx context.Context) ([]string, error) {
					return []string{"Ada"}, nil
				},
			}
			sessions := &mock.SessionManagerMock{
				LogoutFunc: func(ctx context.Context) error {
					return tt.logoutErr
				},
			}
			server, state := newTestServer(repository, sessions)
			e := newTestEcho(t, server)

			require.Equal(t, http.StatusAccepted, do(e, http.MethodPost, "/v1/contacts/fetch", "").Code)
			waitForState(t, state, domain.UIState{Data: []string{"Ada"}})

			rec := do(e, http.MethodDelete, "/v1/session", "")
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Len(t, sessions.LogoutCalls(), 1)
			assert.Equal(t, domain.UIState{}, state.State())
		})
	}
}

func TestHTTPServer_UnknownRoute(t *testing.T) {
	server, _ := newTestServer(&mock.RepositoryMock{}, &mock.SessionManagerMock{})

	rec := do(newTestEcho(t, server), http.MethodGet, "/v1/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	code, _ := decodeError(t, rec)
	assert.Equal(t, service.ErrEntityNotFound, code)
}
