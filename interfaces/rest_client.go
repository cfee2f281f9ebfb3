package interfaces

import (
	"context"

	"crmviewer/domain"
)

// AsyncRequestCallback receives the outcome of RestClient.SendAsync.
// Exactly one of the methods is expected to be called per request.
type AsyncRequestCallback interface {
	// OnSuccess is called when the backend answered, whatever the status code.
	OnSuccess(query domain.Query, response domain.Response)
	// OnError is called when the request could not be completed (network error, cancelled context, unreadable body).
	OnError(err error)
}

// RestClient is the authenticated connection to the CRM org. It sends requests
// asynchronously and reports through a callback, like the host SDK client it stands in for.
//
// Implemented by adapters/restclient. Consumed through service.Send, which bridges the callback
// into a sequential result.
//
//go:generate moq -stub -out mock/rest_client.go -pkg mock . RestClient
type RestClient interface {
	// SendAsync starts query and returns immediately; the callback runs on another goroutine.
	SendAsync(ctx context.Context, query domain.Query, callback AsyncRequestCallback)
}

// ClientProvider hands out the current authenticated client.
// Returns (nil, false) while no session is available.
//
// Implemented by service.ClientHolder.
//
//go:generate moq -stub -out mock/client_provider.go -pkg mock . ClientProvider
type ClientProvider interface {
	Client() (RestClient, bool)
}

// ClientFactory builds a RestClient for an authenticated session.
type ClientFactory func(session domain.Session) (RestClient, error)
