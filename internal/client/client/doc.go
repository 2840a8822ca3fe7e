// Package client talks to the blogadmin mock backend over its JSON HTTP API.
//
// Transport failures surface as ErrUnavailable, 401 responses as
// ErrUnauthorized and 404 responses as ErrNotFound; match them with
// errors.Is. Other non-2xx replies come back as *StatusError carrying the
// server's message.
//
// HTTPClient keeps the bearer token from the last successful Login and sends
// it on session calls. It is not safe for concurrent use.
package client
