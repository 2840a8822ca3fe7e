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
	msgPostNotFound = "Post não encontrado"
	msgPostDeleted  = "Post deletado com sucesso"
)

func (r *Router) listPosts(_ context.Context, req Request) Response {
	return reply(http.StatusOK, query.Posts(r.posts.List(), query.ParseParams(req.Query)))
}

func (r *Router) postStats(_ context.Context, _ Request) Response {
	return reply(http.StatusOK, query.SummarizePosts(r.posts.List()))
}

func (r *Router) getPost(_ context.Context, req Request) Response {
	p, err := r.posts.Get(req.ID)
	if err != nil {
		return postError(err)
	}
	return reply(http.StatusOK, p)
}

func (r *Router) createPost(ctx context.Context, req Request) Response {
	var in CreatePostRequest
	if err := decode(req, &in); err != nil {
		return postError(err)
	}

	candidate := in.Post()
	if candidate.Author == "" {
		if author, err := r.users.Get(candidate.AuthorID); err == nil {
			candidate.Author = author.DisplayName()
		}
	}

	p, err := r.posts.Add(candidate)
	if err != nil {
		return postError(err)
	}
	if _, err := r.bridge.PostCreated(ctx, p); err != nil {
		r.posts.Remove(p.ID)
		return postError(fmt.Errorf("%w: %v", common.ErrorInternal, err))
	}
	return reply(http.StatusCreated, p)
}

func (r *Router) updatePost(_ context.Context, req Request) Response {
	if _, err := r.posts.Get(req.ID); err != nil {
		return postError(err)
	}
	var in UpdatePostRequest
	if err := decode(req, &in); err != nil {
		return postError(err)
	}
	p, err := r.posts.Update(req.ID, in.Apply)
	if err != nil {
		return postError(err)
	}
	return reply(http.StatusOK, p)
}

// togglePostStatus sets the status from the body or flips it when the body
// has none.
func (r *Router) togglePostStatus(_ context.Context, req Request) Response {
	if _, err := r.posts.Get(req.ID); err != nil {
		return postError(err)
	}
	var in PostStatusRequest
	if err := decode(req, &in); err != nil {
		return postError(err)
	}
	p, err := r.posts.Update(req.ID, func(p models.Post) models.Post {
		if in.Status != nil {
			p.Status = *in.Status
		} else {
			p.Status = p.Status.Toggled()
		}
		return p
	})
	if err != nil {
		return postError(err)
	}
	return reply(http.StatusOK, p)
}

func (r *Router) deletePost(_ context.Context, req Request) Response {
	if !r.posts.Remove(req.ID) {
		return postError(common.ErrorNotFound)
	}
	return reply(http.StatusOK, MessageBody{Message: msgPostDeleted})
}

func postError(err error) Response {
	msg := err.Error()
	if errors.Is(err, common.ErrorNotFound) {
		msg = msgPostNotFound
	}
	return reply(statusOf(err), MessageBody{Message: msg})
}
