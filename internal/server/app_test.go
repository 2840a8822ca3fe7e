package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/blogadmin/internal/server/config"
	"github.com/dmitrijs2005/blogadmin/internal/server/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(seeded bool) *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrHTTP = "127.0.0.1:0"
	c.SeedData = seeded
	c.LogLevel = "error"
	return c
}

func TestNewApp_Seeded(t *testing.T) {
	app, err := NewApp(testConfig(true))
	require.NoError(t, err)

	assert.Equal(t, 3, app.users.Len())
	assert.Equal(t, 4, app.posts.Len())
	assert.Equal(t, 7, app.notifications.Len())

	req, err := router.NewRequest(http.MethodPost, "/api/login", nil, []byte(`{"username":"admin","password":"admin123"}`))
	require.NoError(t, err)
	resp, err := app.Router().Dispatch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestNewApp_Empty(t *testing.T) {
	app, err := NewApp(testConfig(false))
	require.NoError(t, err)

	assert.Equal(t, 0, app.users.Len())
	assert.Equal(t, 0, app.posts.Len())
	assert.Equal(t, 0, app.notifications.Len())
}

func TestNewApp_TokenTTL(t *testing.T) {
	c := testConfig(true)
	c.TokenTTL = 2 * time.Minute
	app, err := NewApp(c)
	require.NoError(t, err)

	req, err := router.NewRequest(http.MethodPost, "/api/login", nil, []byte(`{"username":"admin","password":"admin123"}`))
	require.NoError(t, err)
	resp, err := app.Router().Dispatch(context.Background(), req)
	require.NoError(t, err)

	login := resp.Body.(router.LoginResponse)
	req, err = router.NewRequest(http.MethodGet, "/api/session", nil, nil)
	require.NoError(t, err)
	req.Token = login.Token
	resp, err = app.Router().Dispatch(context.Background(), req)
	require.NoError(t, err)

	session := resp.Body.(router.SessionResponse)
	assert.Equal(t, 2*time.Minute, session.ExpiresAt.Sub(session.IssuedAt))
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(testConfig(false))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}
