package handlers

import (
	"github.com/labstack/echo/v4"
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// Healthz (GET /healthz).
	Healthz(ctx echo.Context) error
	// GetState (GET /v1/state).
	GetState(ctx echo.Context) error
	// FetchContacts (POST /v1/contacts/fetch).
	FetchContacts(ctx echo.Context) error
	// FetchAccounts (POST /v1/accounts/fetch).
	FetchAccounts(ctx echo.Context) error
	// FetchObjects (POST /v1/objects/fetch).
	FetchObjects(ctx echo.Context) error
	// FetchQuery (POST /v1/query/fetch).
	FetchQuery(ctx echo.Context) error
	// ClearState (POST /v1/clear).
	ClearState(ctx echo.Context) error
	// GetSession (GET /v1/session).
	GetSession(ctx echo.Context) error
	// PutSession (PUT /v1/session).
	PutSession(ctx echo.Context) error
	// DeleteSession (DELETE /v1/session).
	DeleteSession(ctx echo.Context) error
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used to register routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every route of ServerInterface to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	router.GET("/healthz", si.Healthz)
	router.GET("/v1/state", si.GetState)
	router.POST("/v1/contacts/fetch", si.FetchContacts)
	router.POST("/v1/accounts/fetch", si.FetchAccounts)
	router.POST("/v1/objects/fetch", si.FetchObjects)
	router.POST("/v1/query/fetch", si.FetchQuery)
	router.POST("/v1/clear", si.ClearState)
	router.GET("/v1/session", si.GetSession)
	router.PUT("/v1/session", si.PutSession)
	router.DELETE("/v1/session", si.DeleteSession)
}
