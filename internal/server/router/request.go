package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/blogadmin/internal/common"
)

// Request is the logical, transport-independent form of an API call.
type Request struct {
	Method   string
	Resource string
	// ID is set when HasID is true.
	ID    int
	HasID bool
	// Action is the path remainder that is not an id, e.g. "unread-count"
	// or "read" in /notifications/3/read.
	Action string
	Query  url.Values
	Body   json.RawMessage
	// Token is the bearer token without the scheme, if any.
	Token string
}

// Shape is the route pattern the request addresses: "", "{id}",
// "{id}/read", "stats".
func (r Request) Shape() string {
	switch {
	case r.HasID && r.Action != "":
		return "{id}/" + r.Action
	case r.HasID:
		return "{id}"
	default:
		return r.Action
	}
}

type Response struct {
	Status int
	Body   any
}

// ParsePath splits an API path into resource, id and action. The /api prefix
// is optional. The first segment after the resource is an id when numeric;
// everything else is kept as the action.
func ParsePath(path string) (Request, error) {
	path = strings.TrimPrefix(path, common.APIPrefix)
	path = strings.Trim(path, "/")
	if path == "" {
		return Request{}, errors.New("empty path")
	}

	segments := strings.Split(path, "/")
	req := Request{Resource: segments[0]}
	rest := segments[1:]

	if len(rest) > 0 {
		if id, err := strconv.Atoi(rest[0]); err == nil {
			req.ID = id
			req.HasID = true
			rest = rest[1:]
		}
	}
	req.Action = strings.Join(rest, "/")
	return req, nil
}

// NewRequest builds a Request for method and path with optional query and body.
func NewRequest(method, path string, query url.Values, body []byte) (Request, error) {
	req, err := ParsePath(path)
	if err != nil {
		return Request{}, err
	}
	req.Method = strings.ToUpper(method)
	if query == nil {
		query = url.Values{}
	}
	req.Query = query
	req.Body = body
	return req, nil
}

// ErrUnhandled is returned by Dispatch when no route matches.
var ErrUnhandled = errors.New("unhandled route")

// UnhandledError describes an unrouted request. PathKnown is true when the
// path matches a route under another method.
type UnhandledError struct {
	Method    string
	Resource  string
	Shape     string
	PathKnown bool
}

func (e *UnhandledError) Error() string {
	return fmt.Sprintf("%s: %s /%s %s", ErrUnhandled, e.Method, e.Resource, e.Shape)
}

func (e *UnhandledError) Unwrap() error { return ErrUnhandled }
