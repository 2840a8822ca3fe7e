package router

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/dmitrijs2005/blogadmin/internal/server/models"
	"github.com/dmitrijs2005/blogadmin/internal/server/permissions"
)

// LoginRequest accepts both the Portuguese and the English field names.
// Username may hold an email.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Username string `json:"username"`
		Usuario  string `json:"usuario"`
		Password string `json:"password"`
		Senha    string `json:"senha"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Username = firstNonEmpty(raw.Username, raw.Usuario)
	r.Password = firstNonEmpty(raw.Password, raw.Senha)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// CreateUserRequest is used by both POST /users and POST /signup. Role
// defaults to subscriber.
type CreateUserRequest struct {
	Username string      `json:"username" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role" validate:"omitempty,oneof=admin editor author subscriber"`
}

func (r CreateUserRequest) User() models.User {
	role := r.Role
	if role == "" {
		role = models.RoleSubscriber
	}
	return models.User{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Role:     role,
	}
}

// UpdateUserRequest is a partial update; nil fields are kept. An empty
// password also keeps the stored one.
type UpdateUserRequest struct {
	Username *string      `json:"username"`
	Email    *string      `json:"email" validate:"omitempty,email"`
	Password *string      `json:"password"`
	Name     *string      `json:"name"`
	Role     *models.Role `json:"role" validate:"omitempty,oneof=admin editor author subscriber"`
}

func (r UpdateUserRequest) Apply(u models.User) models.User {
	if r.Username != nil {
		u.Username = *r.Username
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Password != nil && *r.Password != "" {
		u.Password = *r.Password
	}
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
	return u
}

// UserResponse is the outbound user. It never carries the password.
type UserResponse struct {
	ID        int         `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Name      string      `json:"name"`
	CreatedAt time.Time   `json:"createdAt"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

// SessionUser is the user summary returned on login.
type SessionUser struct {
	ID       int         `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	Name     string      `json:"name"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    SessionUser `json:"user"`
}

type SignupResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// FailureResponse is the body of failed login, signup and session calls.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorBody struct {
	Error string `json:"error"`
}

type MessageBody struct {
	Message string `json:"message"`
	Count   *int   `json:"count,omitempty"`
}

type CountBody struct {
	Count int `json:"count"`
}

// CreatePostRequest defaults status to draft. When Author is empty it is
// resolved from AuthorID at creation time.
type CreatePostRequest struct {
	Title    string            `json:"title" validate:"required"`
	Content  string            `json:"content"`
	Status   models.PostStatus `json:"status" validate:"omitempty,oneof=draft published"`
	AuthorID int               `json:"authorId"`
	Author   string            `json:"author"`
	Tags     []string          `json:"tags"`
}

func (r CreatePostRequest) Post() models.Post {
	status := r.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	tags := slices.Clone(r.Tags)
	if tags == nil {
		tags = []string{}
	}
	return models.Post{
		Title:    r.Title,
		Content:  r.Content,
		Status:   status,
		AuthorID: r.AuthorID,
		Author:   r.Author,
		Tags:     tags,
	}
}

type UpdatePostRequest struct {
	Title    *string            `json:"title"`
	Content  *string            `json:"content"`
	Status   *models.PostStatus `json:"status" validate:"omitempty,oneof=draft published"`
	AuthorID *int               `json:"authorId"`
	Author   *string            `json:"author"`
	Tags     *[]string          `json:"tags"`
}

func (r UpdatePostRequest) Apply(p models.Post) models.Post {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Content != nil {
		p.Content = *r.Content
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.AuthorID != nil {
		p.AuthorID = *r.AuthorID
	}
	if r.Author != nil {
		p.Author = *r.Author
	}
	if r.Tags != nil {
		p.Tags = slices.Clone(*r.Tags)
	}
	return p
}

// PostStatusRequest sets the status explicitly. An empty body toggles it.
type PostStatusRequest struct {
	Status *models.PostStatus `json:"status" validate:"omitempty,oneof=draft published"`
}

type CreateNotificationRequest struct {
	Type    models.NotificationType `json:"type" validate:"required,oneof=new-post new-user"`
	Title   string                  `json:"title" validate:"required"`
	Message string                  `json:"message"`
}

type SessionResponse struct {
	Success     bool               `json:"success"`
	User        SessionUser        `json:"user"`
	IssuedAt    time.Time          `json:"issuedAt"`
	ExpiresAt   time.Time          `json:"expiresAt"`
	Permissions permissions.Report `json:"permissions"`
}
