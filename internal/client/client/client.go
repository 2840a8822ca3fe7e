package client

import (
	"context"

	"github.com/dmitrijs2005/blogadmin/internal/client/models"
)

// Client is the API surface the CLI needs.
type Client interface {
	Ping(ctx context.Context) error
	Login(ctx context.Context, username string, password []byte) (*models.LoginResult, error)
	Session(ctx context.Context) (*models.Session, error)
	UnreadNotifications(ctx context.Context) ([]models.Notification, error)
	MarkRead(ctx context.Context, id int) (*models.Notification, error)
	Posts(ctx context.Context, status string) ([]models.Post, error)
	Logout()
}
