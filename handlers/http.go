// Package handlers contains http handlers for crmviewer.
package handlers

import (
	"context"
	"fmt"
	"net/http"

	"crmviewer/helpers"
	"crmviewer/interfaces"
	"crmviewer/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface.
type HTTPServer struct {
	repository interfaces.Repository
	sessions   interfaces.SessionManager
	state      *service.StateHolder
	logger     log.Logger
}

// NewHTTPServer creates a new HTTPServer. Panics on nil dependencies.
func NewHTTPServer(repository interfaces.Repository, sessions interfaces.SessionManager, state *service.StateHolder, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer")
	return &HTTPServer{
		repository: helpers.NilPanic(repository, "handlers.http.go: repository is required"),
		sessions:   helpers.NilPanic(sessions, "handlers.http.go: session manager is required"),
		state:      helpers.NilPanic(state, "handlers.http.go: state holder is required"),
		logger:     logger,
	}
}

// Healthz (GET /healthz).
func (h *HTTPServer) Healthz(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// GetState (GET /v1/state) returns the current screen state.
func (h *HTTPServer) GetState(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toStateResponse(h.state.State()))
}

// FetchContacts (POST /v1/contacts/fetch) starts loading contact names.
func (h *HTTPServer) FetchContacts(ectx echo.Context) error {
	return h.fetch(ectx, "contacts", h.repository.ContactNames)
}

// FetchAccounts (POST /v1/accounts/fetch) starts loading account names.
func (h *HTTPServer) FetchAccounts(ectx echo.Context) error {
	return h.fetch(ectx, "accounts", h.repository.AccountNames)
}

// FetchObjects (POST /v1/objects/fetch) starts object discovery.
func (h *HTTPServer) FetchObjects(ectx echo.Context) error {
	return h.fetch(ectx, "objects", h.repository.DescribeObjects)
}

// FetchQuery (POST /v1/query/fetch) starts loading the record names of a SOQL query.
func (h *HTTPServer) FetchQuery(ectx echo.Context) error {
	var req QueryRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	soql, err := fromQueryRequest(req)
	if err != nil {
		return fmt.Errorf("fetchQuery failed to convert request, err: %w", err)
	}

	return h.fetch(ectx, "query", func(ctx context.Context) ([]string, error) {
		return h.repository.RecordNames(ctx, soql)
	})
}

// ClearState (POST /v1/clear) resets the screen state. Running fetches are not cancelled.
func (h *HTTPServer) ClearState(ectx echo.Context) error {
	h.state.Clear()
	return ectx.JSON(http.StatusOK, toStateResponse(h.state.State()))
}

// GetSession (GET /v1/session) returns the active session without its token; 404 when there is none.
func (h *HTTPServer) GetSession(ectx echo.Context) error {
	session, err := h.sessions.Current(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("getSession failed to read current session, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toSessionResponse(session))
}

// PutSession (PUT /v1/session) receives the session of the host login flow.
func (h *HTTPServer) PutSession(ectx echo.Context) error {
	var req SessionRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	session, err := fromSessionRequest(req)
	if err != nil {
		return fmt.Errorf("putSession failed to convert request, err: %w", err)
	}

	if err := h.sessions.Login(ectx.Request().Context(), session); err != nil {
		return fmt.Errorf("putSession failed to login, err: %w", err)
	}
	return ectx.NoContent(http.StatusNoContent)
}

// DeleteSession (DELETE /v1/session) logs out and clears the screen state.
func (h *HTTPServer) DeleteSession(ectx echo.Context) error {
	err := h.sessions.Logout(ectx.Request().Context())
	h.state.Clear()
	if err != nil {
		return fmt.Errorf("deleteSession failed to logout, err: %w", err)
	}
	return ectx.NoContent(http.StatusNoContent)
}

func (h *HTTPServer) fetch(ectx echo.Context, what string, load service.Loader) error {
	level.Debug(h.logger).Log("msg", "Fetch started", "what", what)
	h.state.Fetch(ectx.Request().Context(), load)
	return ectx.JSON(http.StatusAccepted, toStateResponse(h.state.State()))
}
