package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Label(t *testing.T) {
	assert.Equal(t, "Editor", Account{Username: "editor", Name: "Editor"}.Label())
	assert.Equal(t, "editor", Account{Username: "editor"}.Label())
}

func TestSession_DecodesPermissions(t *testing.T) {
	raw := `{"success":true,"user":{"id":1,"username":"admin","role":"admin"},
		"issuedAt":"2025-09-10T10:00:00Z","expiresAt":"2025-09-10T11:00:00Z",
		"permissions":{"canManageUsers":true,"canCreateUser":true,"canCreatePost":true,"canAccessAdminPanel":true,"summary":["a"]}}`

	var s Session
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Equal(t, Role("admin"), s.User.Role)
	assert.True(t, s.Permissions.ManageUsers)
	assert.True(t, s.Permissions.AccessAdminPanel)
	assert.Equal(t, []string{"a"}, s.Permissions.Summary)
	assert.Equal(t, 1, s.ExpiresAt.Hour()-s.IssuedAt.Hour())
}
