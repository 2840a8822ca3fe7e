package models

import (
	"slices"
	"time"
)

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

func (s PostStatus) Valid() bool {
	return s == PostStatusDraft || s == PostStatusPublished
}

// Toggled flips draft and published.
func (s PostStatus) Toggled() PostStatus {
	if s == PostStatusPublished {
		return PostStatusDraft
	}
	return PostStatusPublished
}

// Post is a blog entry. AuthorID is expected to resolve to a user but is not
// enforced; Author is the display name captured when the post was created.
type Post struct {
	ID        int        `json:"id"`
	Title     string     `json:"title" validate:"required"`
	Content   string     `json:"content"`
	Status    PostStatus `json:"status" validate:"required,oneof=draft published"`
	AuthorID  int        `json:"authorId"`
	Author    string     `json:"author"`
	CreatedAt time.Time  `json:"createdAt"`
	Tags      []string   `json:"tags"`
}

func (p Post) Key() int           { return p.ID }
func (p Post) Created() time.Time { return p.CreatedAt }

func (p Post) WithIdentity(id int, created time.Time) Post {
	p.ID = id
	p.CreatedAt = created
	return p
}

// Clone copies the post including its tags.
func (p Post) Clone() Post {
	p.Tags = slices.Clone(p.Tags)
	return p
}
