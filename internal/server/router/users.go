package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/blogadmin/internal/common"
	"github.com/dmitrijs2005/blogadmin/internal/server/models"
	"github.com/dmitrijs2005/blogadmin/internal/server/query"
)

const (
	msgUserNotFound  = "Usuário não encontrado"
	msgUserDeleted   = "Usuário removido com sucesso"
	msgUsernameTaken = "Nome de usuário já está em uso"
	msgEmailTaken    = "Email já está em uso"
)

func (r *Router) listUsers(_ context.Context, req Request) Response {
	users := query.Users(r.users.List(), query.ParseParams(req.Query))
	return reply(http.StatusOK, toUserResponses(users))
}

func (r *Router) getUser(_ context.Context, req Request) Response {
	u, err := r.users.Get(req.ID)
	if err != nil {
		return userError(err)
	}
	return reply(http.StatusOK, toUserResponse(u))
}

func (r *Router) createUser(ctx context.Context, req Request) Response {
	var in CreateUserRequest
	if err := decode(req, &in); err != nil {
		return userError(err)
	}
	u, err := r.register(ctx, in)
	if err != nil {
		return userError(err)
	}
	return reply(http.StatusCreated, toUserResponse(u))
}

// register adds a user and fires the NewUser side effect. The user is removed
// again if the side effect fails.
func (r *Router) register(ctx context.Context, in CreateUserRequest) (models.User, error) {
	candidate := in.User()
	if err := r.checkUnique(candidate, 0); err != nil {
		return models.User{}, err
	}

	u, err := r.users.Add(candidate)
	if err != nil {
		return models.User{}, err
	}

	if _, err := r.bridge.UserCreated(ctx, u); err != nil {
		r.users.Remove(u.ID)
		return models.User{}, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return u, nil
}

// checkUnique rejects u when another user (not selfID) already has its
// username or email.
func (r *Router) checkUnique(u models.User, selfID int) error {
	if _, taken := r.users.Find(func(other models.User) bool {
		return other.ID != selfID && other.Username == u.Username
	}); taken {
		return common.ErrUsernameTaken
	}
	if _, taken := r.users.Find(func(other models.User) bool {
		return other.ID != selfID && other.Email == u.Email
	}); taken {
		return common.ErrEmailTaken
	}
	return nil
}

// updateUser resolves the id before looking at the body, so an unknown id
// is 404 whatever the body holds.
func (r *Router) updateUser(_ context.Context, req Request) Response {
	current, err := r.users.Get(req.ID)
	if err != nil {
		return userError(err)
	}

	var in UpdateUserRequest
	if err := decode(req, &in); err != nil {
		return userError(err)
	}
	if err := r.checkUnique(in.Apply(current), current.ID); err != nil {
		return userError(err)
	}

	updated, err := r.users.Update(req.ID, in.Apply)
	if err != nil {
		return userError(err)
	}
	return reply(http.StatusOK, toUserResponse(updated))
}

func (r *Router) deleteUser(_ context.Context, req Request) Response {
	if !r.users.Remove(req.ID) {
		return userError(common.ErrorNotFound)
	}
	return reply(http.StatusOK, MessageBody{Message: msgUserDeleted})
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return msgUserNotFound
	case errors.Is(err, common.ErrUsernameTaken):
		return msgUsernameTaken
	case errors.Is(err, common.ErrEmailTaken):
		return msgEmailTaken
	default:
		return err.Error()
	}
}

func userError(err error) Response {
	return reply(statusOf(err), ErrorBody{Error: userMessage(err)})
}
