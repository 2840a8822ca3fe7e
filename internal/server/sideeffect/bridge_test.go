package sideeffect

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/blogadmin/internal/common"
	"github.com/dmitrijs2005/blogadmin/internal/server/models"
	"github.com/dmitrijs2005/blogadmin/internal/server/store"
	"github.com/dmitrijs2005/blogadmin/internal/server/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC)

func newFeed() *store.Store[models.Notification] {
	return store.New("notifications",
		store.WithClock[models.Notification](func() time.Time { return now }),
		store.WithValidator(validation.For[models.Notification]()),
	)
}

func TestBridge_UserCreated(t *testing.T) {
	feed := newFeed()
	b := New(feed)

	n, err := b.UserCreated(context.Background(), models.User{ID: 4, Username: "joana", Name: "Joana Silva"})
	require.NoError(t, err)

	assert.Equal(t, 1, n.ID)
	assert.Equal(t, models.NotificationNewUser, n.Type)
	assert.Equal(t, "Novo Usuário Cadastrado", n.Title)
	assert.Equal(t, `O usuário "Joana Silva" foi cadastrado com sucesso!`, n.Message)
	assert.Equal(t, "pi pi-user-plus", n.Icon)
	assert.Equal(t, models.SeveritySuccess, n.Severity)
	assert.False(t, n.Read)
	assert.Equal(t, now, n.Timestamp)
	assert.Equal(t, 1, feed.Len())
}

func TestBridge_UserCreated_FallsBackToUsername(t *testing.T) {
	b := New(newFeed())

	n, err := b.UserCreated(context.Background(), models.User{Username: "joana"})
	require.NoError(t, err)
	assert.Contains(t, n.Message, "joana")
}

func TestBridge_PostCreated(t *testing.T) {
	feed := newFeed()
	b := New(feed)

	n, err := b.PostCreated(context.Background(), models.Post{Title: "Hello"})
	require.NoError(t, err)

	assert.Equal(t, models.NotificationNewPost, n.Type)
	assert.Equal(t, "Novo Post Criado", n.Title)
	assert.Equal(t, `O post "Hello" foi criado com sucesso!`, n.Message)
	assert.Equal(t, "pi pi-file-edit", n.Icon)
	assert.Equal(t, models.SeverityInfo, n.Severity)
}

func TestBridge_ExactlyOneNotificationPerFire(t *testing.T) {
	feed := newFeed()
	b := New(feed)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := b.Fire(ctx, UserCreated, "x")
		require.NoError(t, err)
		assert.Equal(t, i+1, feed.Len())
	}
}

func TestBridge_UnknownTrigger(t *testing.T) {
	feed := newFeed()
	b := New(feed)

	_, err := b.Fire(context.Background(), Trigger("post-deleted"), "x")
	assert.ErrorIs(t, err, ErrUnknownTrigger)
	assert.Equal(t, 0, feed.Len())
}

func TestBridge_WithRule(t *testing.T) {
	feed := newFeed()
	b := New(feed, WithRule(PostCreated, Rule{
		Type:    models.NotificationNewPost,
		Title:   "Post",
		Message: func(s string) string { return "new " + s },
	}))

	n, err := b.PostCreated(context.Background(), models.Post{Title: "a"})
	require.NoError(t, err)
	assert.Equal(t, "Post", n.Title)
	assert.Equal(t, "new a", n.Message)

	assert.Equal(t, "Novo Post Criado", DefaultRules[PostCreated].Title)
}

type failingSink struct{}

func (failingSink) Add(models.Notification) (models.Notification, error) {
	return models.Notification{}, errors.New("boom")
}

func TestBridge_SinkFailureIsReported(t *testing.T) {
	b := New(failingSink{})
	_, err := b.Fire(context.Background(), PostCreated, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestBridge_InvalidRuleRejectedByStore(t *testing.T) {
	feed := newFeed()
	b := New(feed, WithRule(UserCreated, Rule{Type: models.NotificationNewUser, Message: func(string) string { return "" }}))

	_, err := b.Fire(context.Background(), UserCreated, "x")
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, 0, feed.Len())
}
