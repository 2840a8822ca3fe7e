// Package models holds the shapes the CLI decodes from the backend.
package models

import (
	"time"

	srv "github.com/dmitrijs2005/blogadmin/internal/server/models"
)

type Role = srv.Role
type Notification = srv.Notification
type Post = srv.Post

// Account is the user as reported by login and session calls.
type Account struct {
	ID       int      `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     Role     `json:"role"`
	Name     string   `json:"name"`
}

// Label is the name if set, otherwise the username.
func (a Account) Label() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Username
}

type LoginResult struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    Account `json:"user"`
}

type Permissions struct {
	ManageUsers      bool     `json:"canManageUsers"`
	CreateUser       bool     `json:"canCreateUser"`
	CreatePost       bool     `json:"canCreatePost"`
	AccessAdminPanel bool     `json:"canAccessAdminPanel"`
	Summary          []string `json:"summary"`
}

type Session struct {
	Success     bool        `json:"success"`
	User        Account     `json:"user"`
	IssuedAt    time.Time   `json:"issuedAt"`
	ExpiresAt   time.Time   `json:"expiresAt"`
	Permissions Permissions `json:"permissions"`
}
