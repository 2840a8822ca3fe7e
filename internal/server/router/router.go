// Package router dispatches logical API requests to the in-memory stores.
//
// Dispatch never returns an error for a handled request: failures are
// reported as status and body values. The only error is ErrUnhandled, for
// resource and verb pairs that have no route.
package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/blogadmin/internal/common"
	"github.com/dmitrijs2005/blogadmin/internal/logging"
	"github.com/dmitrijs2005/blogadmin/internal/server/authtoken"
	"github.com/dmitrijs2005/blogadmin/internal/server/models"
	"github.com/dmitrijs2005/blogadmin/internal/server/sideeffect"
	"github.com/dmitrijs2005/blogadmin/internal/server/store"
	"github.com/dmitrijs2005/blogadmin/internal/server/validation"
)

const (
	ResourceUsers         = "users"
	ResourcePosts         = "posts"
	ResourceNotifications = "notifications"
	ResourceLogin         = "login"
	ResourceSignup        = "signup"
	ResourceSession       = "session"
)

// Deps are the collaborators a Router works on. All fields are required.
type Deps struct {
	Users         *store.Store[models.User]
	Posts         *store.Store[models.Post]
	Notifications *store.Store[models.Notification]
	Bridge        *sideeffect.Bridge
	Codec         *authtoken.Codec
	Logger        logging.Logger
}

type handlerFunc func(ctx context.Context, req Request) Response

type route struct {
	method   string
	resource string
	shape    string
	handle   handlerFunc
}

type Router struct {
	users         *store.Store[models.User]
	posts         *store.Store[models.Post]
	notifications *store.Store[models.Notification]
	bridge        *sideeffect.Bridge
	codec         *authtoken.Codec
	log           logging.Logger

	// mu makes every dispatch run to completion before the next one starts,
	// so uniqueness checks and the create that follows them are atomic.
	mu     sync.Mutex
	routes []route
}

func New(deps Deps) *Router {
	r := &Router{
		users:         deps.Users,
		posts:         deps.Posts,
		notifications: deps.Notifications,
		bridge:        deps.Bridge,
		codec:         deps.Codec,
		log:           deps.Logger,
	}
	if r.log == nil {
		r.log = logging.Nop()
	}
	r.routes = r.table()
	return r
}

func (r *Router) table() []route {
	return []route{
		{http.MethodPost, ResourceLogin, "", r.login},
		{http.MethodPost, ResourceSignup, "", r.signup},
		{http.MethodGet, ResourceSession, "", r.session},

		{http.MethodGet, ResourceUsers, "", r.listUsers},
		{http.MethodGet, ResourceUsers, "{id}", r.getUser},
		{http.MethodPost, ResourceUsers, "", r.createUser},
		{http.MethodPut, ResourceUsers, "{id}", r.updateUser},
		{http.MethodDelete, ResourceUsers, "{id}", r.deleteUser},

		{http.MethodGet, ResourcePosts, "", r.listPosts},
		{http.MethodGet, ResourcePosts, "stats", r.postStats},
		{http.MethodGet, ResourcePosts, "{id}", r.getPost},
		{http.MethodPost, ResourcePosts, "", r.createPost},
		{http.MethodPut, ResourcePosts, "{id}", r.updatePost},
		{http.MethodPatch, ResourcePosts, "{id}/status", r.togglePostStatus},
		{http.MethodDelete, ResourcePosts, "{id}", r.deletePost},

		{http.MethodGet, ResourceNotifications, "", r.listNotifications},
		{http.MethodGet, ResourceNotifications, "unread", r.unreadNotifications},
		{http.MethodGet, ResourceNotifications, "unread-count", r.unreadCount},
		{http.MethodGet, ResourceNotifications, "stats", r.notificationStats},
		{http.MethodGet, ResourceNotifications, "{id}", r.getNotification},
		{http.MethodPost, ResourceNotifications, "", r.createNotification},
		{http.MethodPatch, ResourceNotifications, "{id}/read", r.markRead},
		{http.MethodPatch, ResourceNotifications, "mark-all-read", r.markAllRead},
		{http.MethodDelete, ResourceNotifications, "{id}", r.deleteNotification},
		{http.MethodDelete, ResourceNotifications, "clear-all", r.clearAll},
		{http.MethodDelete, ResourceNotifications, "clear-read", r.clearRead},
	}
}

// Dispatch routes req and runs its handler. Unrouted requests yield an
// *UnhandledError wrapping ErrUnhandled.
func (r *Router) Dispatch(ctx context.Context, req Request) (Response, error) {
	shape := req.Shape()

	var (
		handle    handlerFunc
		pathKnown bool
	)
	for _, rt := range r.routes {
		if rt.resource != req.Resource || rt.shape != shape {
			continue
		}
		pathKnown = true
		if rt.method == req.Method {
			handle = rt.handle
			break
		}
	}
	if handle == nil {
		err := &UnhandledError{Method: req.Method, Resource: req.Resource, Shape: shape, PathKnown: pathKnown}
		r.log.Warn(ctx, "unhandled request", "method", req.Method, "resource", req.Resource, "shape", shape)
		return Response{}, err
	}

	r.mu.Lock()
	resp := handle(ctx, req)
	r.mu.Unlock()

	r.log.Debug(ctx, "dispatch", "method", req.Method, "resource", req.Resource, "shape", shape, "status", resp.Status)
	if resp.Status >= http.StatusBadRequest {
		r.log.Info(ctx, "request failed", "method", req.Method, "resource", req.Resource, "status", resp.Status)
	}
	return resp, nil
}

// Routes lists "METHOD /resource/shape" for every route, in table order.
func (r *Router) Routes() []string {
	out := make([]string, 0, len(r.routes))
	for _, rt := range r.routes {
		path := "/" + rt.resource
		if rt.shape != "" {
			path += "/" + rt.shape
		}
		out = append(out, rt.method+" "+path)
	}
	return out
}

// statusOf maps domain errors onto HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrorConflict),
		errors.Is(err, common.ErrUsernameTaken),
		errors.Is(err, common.ErrEmailTaken):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrTokenMalformed):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// decode unmarshals the request body into dst and validates it. An empty
// body decodes as {}.
func decode(req Request, dst any) error {
	body := req.Body
	if len(body) == 0 {
		body = []byte("{}")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: invalid body: %v", common.ErrorValidation, err)
	}
	return validation.Struct(dst)
}

func reply(status int, body any) Response {
	return Response{Status: status, Body: body}
}
