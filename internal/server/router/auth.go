package router

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/blogadmin/internal/common"
	"github.com/dmitrijs2005/blogadmin/internal/server/models"
	"github.com/dmitrijs2005/blogadmin/internal/server/permissions"
)

const (
	msgInvalidCredentials = "Credenciais inválidas"
	msgTokenMissing       = "Token não informado"
	msgTokenInvalid       = "Token inválido ou expirado"
)

func toSessionUser(u models.User) SessionUser {
	return SessionUser{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role, Name: u.Name}
}

// login matches the identifier against username or email and compares the
// password in plain text. The first match in list order wins.
func (r *Router) login(ctx context.Context, req Request) Response {
	var in LoginRequest
	if err := decode(req, &in); err != nil || in.Username == "" || in.Password == "" {
		return reply(http.StatusUnauthorized, FailureResponse{Message: msgInvalidCredentials})
	}

	u, ok := r.users.Find(func(u models.User) bool {
		return (u.Username == in.Username || u.Email == in.Username) && u.Password == in.Password
	})
	if !ok {
		r.log.Info(ctx, "login rejected", "username", in.Username)
		return reply(statusOf(common.ErrorUnauthorized), FailureResponse{Message: msgInvalidCredentials})
	}

	token, _, err := r.codec.Issue(u)
	if err != nil {
		r.log.Error(ctx, "issue token", "error", err)
		return reply(http.StatusInternalServerError, FailureResponse{Message: err.Error()})
	}
	return reply(http.StatusOK, LoginResponse{Success: true, Token: token, User: toSessionUser(u)})
}

func (r *Router) signup(ctx context.Context, req Request) Response {
	var in CreateUserRequest
	if err := decode(req, &in); err != nil {
		return reply(statusOf(err), FailureResponse{Message: userMessage(err)})
	}
	u, err := r.register(ctx, in)
	if err != nil {
		return reply(statusOf(err), FailureResponse{Message: userMessage(err)})
	}
	return reply(http.StatusCreated, SignupResponse{Success: true, User: toUserResponse(u)})
}

// session decodes the bearer token and reports the caller's permissions. The
// token is trusted as is; the user is looked up only to fill in the name.
func (r *Router) session(_ context.Context, req Request) Response {
	if req.Token == "" {
		return reply(http.StatusUnauthorized, FailureResponse{Message: msgTokenMissing})
	}
	claims, err := r.codec.Session(req.Token)
	if err != nil {
		return reply(statusOf(err), FailureResponse{Message: msgTokenInvalid})
	}

	user := SessionUser{
		ID:       claims.Sub,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     models.Role(claims.Role),
	}
	if u, err := r.users.Get(claims.Sub); err == nil {
		user.Name = u.Name
	}

	principal := &permissions.Principal{ID: claims.Sub, Role: user.Role}
	return reply(http.StatusOK, SessionResponse{
		Success:     true,
		User:        user,
		IssuedAt:    time.Unix(claims.IssuedAt, 0).UTC(),
		ExpiresAt:   time.Unix(claims.ExpiresAt, 0).UTC(),
		Permissions: principal.Report(),
	})
}
