package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogadmin/internal/client/models"
	"github.com/dmitrijs2005/blogadmin/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Token() string { return c.token }

// Logout forgets the token. The backend keeps no sessions, so nothing is sent.
func (c *HTTPClient) Logout() { c.token = "" }

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil, nil)
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (*models.LoginResult, error) {
	body := map[string]string{"username": username, "password": string(password)}

	var out models.LoginResult
	if err := c.do(ctx, http.MethodPost, common.APIPrefix+"/login", nil, body, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

func (c *HTTPClient) Session(ctx context.Context) (*models.Session, error) {
	if c.token == "" {
		return nil, ErrNotLoggedIn
	}
	var out models.Session
	if err := c.do(ctx, http.MethodGet, common.APIPrefix+"/session", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UnreadNotifications(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	if err := c.do(ctx, http.MethodGet, common.APIPrefix+"/notifications/unread", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) MarkRead(ctx context.Context, id int) (*models.Notification, error) {
	var out models.Notification
	path := common.APIPrefix + "/notifications/" + strconv.Itoa(id) + "/read"
	if err := c.do(ctx, http.MethodPatch, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Posts lists posts, optionally only those with the given status.
func (c *HTTPClient) Posts(ctx context.Context, status string) ([]models.Post, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	var out []models.Post
	if err := c.do(ctx, http.MethodGet, common.APIPrefix+"/posts", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &StatusError{Code: resp.StatusCode, Message: errorMessage(raw)}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// errorMessage pulls the human readable text out of any of the backend's
// error bodies.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
