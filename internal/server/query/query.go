// Package query narrows entity lists by declarative predicates parsed from
// request query parameters.
//
// Filters are applied in a fixed order (status, authorId, tag, unread) and
// compose with logical AND. A missing parameter does not filter. Unknown
// parameters are ignored rather than rejected, so a misspelt key silently
// matches everything.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/blogadmin/internal/server/models"
)

// Params are the recognised filters. Pointer fields are nil when the
// parameter was absent.
type Params struct {
	Status     *models.PostStatus
	AuthorID   *string
	Tag        *string
	UnreadOnly bool
	Role       *models.Role
	Type       *models.NotificationType
}

// ParseParams reads the recognised keys from values. Empty values count as
// absent. AuthorID is kept raw: a non-numeric id matches no post.
func ParseParams(values url.Values) Params {
	var p Params
	if v := values.Get("status"); v != "" {
		s := models.PostStatus(v)
		p.Status = &s
	}
	if v := values.Get("authorId"); v != "" {
		p.AuthorID = &v
	}
	if v := values.Get("tag"); v != "" {
		p.Tag = &v
	}
	if v := values.Get("unread"); v != "" {
		p.UnreadOnly, _ = strconv.ParseBool(v)
	}
	if v := values.Get("role"); v != "" {
		r := models.Role(v)
		p.Role = &r
	}
	if v := values.Get("type"); v != "" {
		t := models.NotificationType(v)
		p.Type = &t
	}
	return p
}

// Predicate reports whether an item passes a filter.
type Predicate[T any] func(T) bool

// Filter keeps the items that satisfy every predicate, in order. With no
// predicates it returns items unchanged.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	if len(preds) == 0 {
		return items
	}
	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, pred := range preds {
			if !pred(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// Posts applies status, authorId and tag filters.
func Posts(posts []models.Post, p Params) []models.Post {
	var preds []Predicate[models.Post]
	if p.Status != nil {
		status := *p.Status
		preds = append(preds, func(post models.Post) bool { return post.Status == status })
	}
	if p.AuthorID != nil {
		raw := *p.AuthorID
		preds = append(preds, func(post models.Post) bool { return strconv.Itoa(post.AuthorID) == raw })
	}
	if p.Tag != nil {
		needle := strings.ToLower(*p.Tag)
		preds = append(preds, func(post models.Post) bool { return hasTagContaining(post.Tags, needle) })
	}
	return Filter(posts, preds...)
}

// Notifications applies the type and unread-only filters.
func Notifications(list []models.Notification, p Params) []models.Notification {
	var preds []Predicate[models.Notification]
	if p.Type != nil {
		kind := *p.Type
		preds = append(preds, func(n models.Notification) bool { return n.Type == kind })
	}
	if p.UnreadOnly {
		preds = append(preds, func(n models.Notification) bool { return !n.Read })
	}
	return Filter(list, preds...)
}

// Users applies the role filter.
func Users(users []models.User, p Params) []models.User {
	var preds []Predicate[models.User]
	if p.Role != nil {
		role := *p.Role
		preds = append(preds, func(u models.User) bool { return u.Role == role })
	}
	return Filter(users, preds...)
}

func hasTagContaining(tags []string, lowerNeedle string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), lowerNeedle) {
			return true
		}
	}
	return false
}
