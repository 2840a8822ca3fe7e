package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/blogadmin/internal/logging"
	"github.com/dmitrijs2005/blogadmin/internal/server/authtoken"
	"github.com/dmitrijs2005/blogadmin/internal/server/models"
	"github.com/dmitrijs2005/blogadmin/internal/server/router"
	"github.com/dmitrijs2005/blogadmin/internal/server/seed"
	"github.com/dmitrijs2005/blogadmin/internal/server/sideeffect"
	"github.com/dmitrijs2005/blogadmin/internal/server/store"
	"github.com/dmitrijs2005/blogadmin/internal/server/validation"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts ...Option) (*HTTPServer, *store.Store[models.Notification]) {
	t.Helper()

	users := store.New("users", store.WithSeed(seed.Users()), store.WithValidator(validation.For[models.User]()))
	posts := store.New("posts", store.WithSeed(seed.Posts()), store.WithValidator(validation.For[models.Post]()))
	feed := store.New("notifications", store.WithSeed(seed.Notifications()), store.WithValidator(validation.For[models.Notification]()))

	r := router.New(router.Deps{
		Users:         users,
		Posts:         posts,
		Notifications: feed,
		Bridge:        sideeffect.New(feed),
		Codec:         authtoken.NewCodec(),
		Logger:        logging.Nop(),
	})
	return NewHTTPServer("127.0.0.1:0", logging.Nop(), r, feed, opts...), feed
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any, header http.Header) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		var raw json.RawMessage
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
		if len(raw) > 0 && raw[0] == '{' {
			require.NoError(t, json.Unmarshal(raw, &out))
		}
	}
	return resp, out
}

func TestHandler_LoginAndSession(t *testing.T) {
	s, _ := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, body := doJSON(t, ts.Client(), http.MethodPost, ts.URL+"/api/login",
		map[string]string{"usuario": "admin", "senha": "admin123"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	token, ok := body["token"].(string)
	require.True(t, ok)

	resp, body = doJSON(t, ts.Client(), http.MethodGet, ts.URL+"/api/session", nil,
		http.Header{"Authorization": {"Bearer " + token}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]any)
	assert.Equal(t, "admin", user["role"])

	resp, _ = doJSON(t, ts.Client(), http.MethodGet, ts.URL+"/api/session", nil,
		http.Header{"Authorization": {"Bearer not.a.token"}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = doJSON(t, ts.Client(), http.MethodPost, ts.URL+"/api/login",
		map[string]string{"username": "admin", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestHandler_StatusPassthrough(t *testing.T) {
	s, _ := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	tests := []struct {
		method string
		path   string
		body   any
		want   int
	}{
		{method: http.MethodGet, path: "/healthz", want: http.StatusOK},
		{method: http.MethodGet, path: "/api/users", want: http.StatusOK},
		{method: http.MethodGet, path: "/api/users/42", want: http.StatusNotFound},
		{method: http.MethodPost, path: "/api/posts", body: map[string]any{"title": "T", "authorId": 1}, want: http.StatusCreated},
		{method: http.MethodPost, path: "/api/users", body: map[string]any{"username": "x", "email": "admin@example.com", "password": "p"}, want: http.StatusBadRequest},
		{method: http.MethodGet, path: "/api/comments", want: http.StatusNotFound},
		{method: http.MethodPut, path: "/api/login", want: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/api/notifications/unread-count", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, _ := doJSON(t, ts.Client(), tt.method, ts.URL+tt.path, tt.body, nil)
			assert.Equal(t, tt.want, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		})
	}
}

func TestHandler_CORSPreflight(t *testing.T) {
	s, _ := newTestServer(t, WithAllowedOrigins([]string{"http://localhost:4200"}))
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/posts", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:4200", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestLatency(t *testing.T) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	start := time.Now()
	rec := httptest.NewRecorder()
	Latency(30*time.Millisecond)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)

	called = false
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	Latency(time.Hour)(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.False(t, called)

	Latency(0)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}

func TestBearerToken(t *testing.T) {
	tests := map[string]string{
		"Bearer abc":  "abc",
		"bearer abc ": "abc",
		"Basic abc":   "",
		"Bearer":      "",
		"":            "",
	}
	for header, want := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		assert.Equal(t, want, bearerToken(r), header)
	}
}

func TestStream_PushesSnapshots(t *testing.T) {
	s, feed := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/notifications/stream"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg StreamMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "snapshot", msg.Type)
	assert.Len(t, msg.Notifications, 7)
	assert.Equal(t, 4, msg.Unread)

	resp, _ := doJSON(t, ts.Client(), http.MethodPatch, ts.URL+"/api/notifications/mark-all-read", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, conn.ReadJSON(&msg))
	assert.Len(t, msg.Notifications, 7)
	assert.Equal(t, 0, msg.Unread)

	conn.Close()
	assert.Eventually(t, func() bool { return feed.Subscribers() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)
	s.address = "127.0.0.1:99999"

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Error(t, s.Run(ctx))
}
