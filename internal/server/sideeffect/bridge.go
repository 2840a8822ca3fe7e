// Package sideeffect turns primary entity creations into derived feed
// notifications.
package sideeffect

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogadmin/internal/logging"
	"github.com/dmitrijs2005/blogadmin/internal/server/models"
)

// Trigger is a closed set of events that produce a notification.
type Trigger string

const (
	UserCreated Trigger = "user-created"
	PostCreated Trigger = "post-created"
)

var ErrUnknownTrigger = errors.New("unknown trigger")

// Rule describes the notification derived from a trigger. Message receives
// the subject: the user's display name or the post title.
type Rule struct {
	Type    models.NotificationType
	Title   string
	Message func(subject string) string
}

// DefaultRules are the rules registered by New.
var DefaultRules = map[Trigger]Rule{
	UserCreated: {
		Type:  models.NotificationNewUser,
		Title: "Novo Usuário Cadastrado",
		Message: func(name string) string {
			return fmt.Sprintf(`O usuário "%s" foi cadastrado com sucesso!`, name)
		},
	},
	PostCreated: {
		Type:  models.NotificationNewPost,
		Title: "Novo Post Criado",
		Message: func(title string) string {
			return fmt.Sprintf(`O post "%s" foi criado com sucesso!`, title)
		},
	},
}

// Sink stores the derived notification. *store.Store[models.Notification]
// satisfies it.
type Sink interface {
	Add(n models.Notification) (models.Notification, error)
}

type Bridge struct {
	sink  Sink
	rules map[Trigger]Rule
	log   logging.Logger
}

type Option func(*Bridge)

// WithRule registers or replaces the rule for a trigger.
func WithRule(trigger Trigger, rule Rule) Option {
	return func(b *Bridge) { b.rules[trigger] = rule }
}

func WithLogger(log logging.Logger) Option {
	return func(b *Bridge) { b.log = log }
}

func New(sink Sink, opts ...Option) *Bridge {
	b := &Bridge{
		sink:  sink,
		rules: make(map[Trigger]Rule, len(DefaultRules)),
		log:   logging.Nop(),
	}
	for trigger, rule := range DefaultRules {
		b.rules[trigger] = rule
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build renders the notification for trigger without storing it.
func (b *Bridge) Build(trigger Trigger, subject string) (models.Notification, error) {
	rule, ok := b.rules[trigger]
	if !ok {
		return models.Notification{}, fmt.Errorf("%w: %s", ErrUnknownTrigger, trigger)
	}
	return models.NewNotification(rule.Type, rule.Title, rule.Message(subject)), nil
}

// Fire builds and stores the notification for trigger. For registered
// triggers with valid rules the store cannot reject it.
func (b *Bridge) Fire(ctx context.Context, trigger Trigger, subject string) (models.Notification, error) {
	n, err := b.Build(trigger, subject)
	if err != nil {
		return models.Notification{}, err
	}

	stored, err := b.sink.Add(n)
	if err != nil {
		b.log.Error(ctx, "side effect failed", "trigger", string(trigger), "error", err)
		return models.Notification{}, fmt.Errorf("fire %s: %w", trigger, err)
	}

	b.log.Debug(ctx, "side effect fired", "trigger", string(trigger), "notification", stored.ID)
	return stored, nil
}

// UserCreated fires the user trigger with the user's display name.
func (b *Bridge) UserCreated(ctx context.Context, u models.User) (models.Notification, error) {
	return b.Fire(ctx, UserCreated, u.DisplayName())
}

// PostCreated fires the post trigger with the post title.
func (b *Bridge) PostCreated(ctx context.Context, p models.Post) (models.Notification, error) {
	return b.Fire(ctx, PostCreated, p.Title)
}
