package domain

import "net/http"

// Query is a single REST request against the CRM backend: HTTP method plus the
// path relative to the instance URL, with any query string already encoded.
// Built fresh per call by service.QueryBuilder.
type Query struct {
	Method string
	Path   string
}

// NewGetQuery returns a GET Query for path.
func NewGetQuery(path string) Query {
	return Query{Method: http.MethodGet, Path: path}
}

// Response is the raw outcome of a Query that reached the backend.
// Success is true for 2xx status codes. Payload holds the undecoded JSON body;
// Detail carries the status line and body excerpt for non-success responses.
type Response struct {
	StatusCode int
	Success    bool
	Payload    []byte
	Detail     string
}
