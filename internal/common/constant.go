// Package common contains shared constants and sentinel errors used across
// the mock backend, its HTTP shim and the CLI client.
package common

// APIPrefix is the path prefix under which the logical resources are served.
const APIPrefix = "/api"

// AuthorizationHeaderName carries the bearer token on session requests.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the expected authorization scheme.
const BearerScheme = "Bearer"
