package models

import "time"

// Role is the user's profile. Permission checks compare it as a plain string.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleAuthor     Role = "author"
	RoleSubscriber Role = "subscriber"
)

// Roles lists every known role in privilege order.
var Roles = []Role{RoleAdmin, RoleEditor, RoleAuthor, RoleSubscriber}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User is a CMS account. Password is stored in plain text: this backend is a
// simulator and never hashes anything.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"password" validate:"required"`
	Role      Role      `json:"role" validate:"required,oneof=admin editor author subscriber"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) Key() int           { return u.ID }
func (u User) Created() time.Time { return u.CreatedAt }

func (u User) WithIdentity(id int, created time.Time) User {
	u.ID = id
	u.CreatedAt = created
	return u
}

// DisplayName is the name copied into posts and notifications.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

func (u User) Clone() User {
	return u
}
