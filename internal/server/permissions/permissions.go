// Package permissions answers role questions for a signed-in user. The rules
// compare role strings only and are reported to clients; no route enforces
// them.
package permissions

import "github.com/dmitrijs2005/blogadmin/internal/server/models"

// Principal is the signed-in user. A nil *Principal is anonymous and is
// denied everything.
type Principal struct {
	ID   int
	Role models.Role
}

func (p *Principal) CanManageUsers() bool {
	return p != nil && p.Role == models.RoleAdmin
}

func (p *Principal) CanCreateUser() bool {
	return p.CanManageUsers()
}

// CanEditUser allows admins and the user themselves.
func (p *Principal) CanEditUser(targetID int) bool {
	if p == nil {
		return false
	}
	return p.Role == models.RoleAdmin || p.ID == targetID
}

// CanDeleteUser allows admins, except on their own account.
func (p *Principal) CanDeleteUser(targetID int) bool {
	return p != nil && p.Role == models.RoleAdmin && p.ID != targetID
}

// CanEditPost allows admins and editors on any post and authors on their own.
// authorID is nil when the post author is unknown.
func (p *Principal) CanEditPost(authorID *int) bool {
	if p == nil {
		return false
	}
	switch p.Role {
	case models.RoleAdmin, models.RoleEditor:
		return true
	case models.RoleAuthor:
		return authorID != nil && *authorID == p.ID
	default:
		return false
	}
}

func (p *Principal) CanCreatePost() bool {
	return p != nil
}

func (p *Principal) CanAccessAdminPanel() bool {
	if p == nil {
		return false
	}
	switch p.Role {
	case models.RoleAdmin, models.RoleEditor, models.RoleAuthor:
		return true
	}
	return false
}

var summaries = map[models.Role][]string{
	models.RoleAdmin: {
		"Gerenciar todos os usuários",
		"Editar/deletar qualquer post",
		"Acessar todas as estatísticas",
		"Controle total do sistema",
	},
	models.RoleEditor: {
		"Editar qualquer post",
		"Deletar qualquer post",
		"Editar apenas seus dados pessoais",
		"Ver estatísticas limitadas",
	},
	models.RoleAuthor: {
		"Editar apenas seus posts",
		"Deletar apenas seus posts",
		"Editar apenas seus dados pessoais",
		"Ver estatísticas limitadas",
	},
}

// Summary lists human-readable capabilities for the role. Subscribers and
// anonymous callers get an empty list.
func (p *Principal) Summary() []string {
	if p == nil {
		return []string{}
	}
	lines, ok := summaries[p.Role]
	if !ok {
		return []string{}
	}
	return append([]string(nil), lines...)
}

// Report is the serialisable form returned by the session endpoint.
type Report struct {
	ManageUsers      bool     `json:"canManageUsers"`
	CreateUser       bool     `json:"canCreateUser"`
	CreatePost       bool     `json:"canCreatePost"`
	AccessAdminPanel bool     `json:"canAccessAdminPanel"`
	Summary          []string `json:"summary"`
}

func (p *Principal) Report() Report {
	return Report{
		ManageUsers:      p.CanManageUsers(),
		CreateUser:       p.CanCreateUser(),
		CreatePost:       p.CanCreatePost(),
		AccessAdminPanel: p.CanAccessAdminPanel(),
		Summary:          p.Summary(),
	}
}
