// Package client is a Go SDK for the task tracker REST API. Board layers
// optimistic local state for one list on top of it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// Client calls the REST API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu      sync.RWMutex
	session Session
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAccessToken starts the client with an existing access token.
func WithAccessToken(token string) Option {
	return func(c *Client) { c.session.AccessToken = token }
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the tokens of the last successful sign-in or refresh.
func (c *Client) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *Client) setSession(s Session) {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
}

// Register creates an account and signs in.
func (c *Client) Register(ctx context.Context, email, password string, displayName *string) (Session, error) {
	body := map[string]any{"email": email, "password": password, "displayName": displayName}
	return c.signIn(ctx, "/auth/register", body)
}

// Login signs in with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	return c.signIn(ctx, "/auth/login", map[string]string{"email": email, "password": password})
}

// Refresh rotates the refresh token of the current session.
func (c *Client) Refresh(ctx context.Context) (Session, error) {
	return c.signIn(ctx, "/auth/refresh", map[string]string{"refreshToken": c.Session().RefreshToken})
}

// Logout revokes every refresh token of the user and forgets the session.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return err
	}
	c.setSession(Session{})
	return nil
}

func (c *Client) signIn(ctx context.Context, path string, body any) (Session, error) {
	var s Session
	if err := c.do(ctx, http.MethodPost, path, body, &s); err != nil {
		return Session{}, err
	}
	c.setSession(s)
	return s, nil
}

func (c *Client) Profile(ctx context.Context) (User, error) {
	var u User
	err := c.do(ctx, http.MethodGet, "/api/profile", nil, &u)
	return u, err
}

// UpdateDisplayName sets the display name; nil clears it.
func (c *Client) UpdateDisplayName(ctx context.Context, name *string) (User, error) {
	var u User
	err := c.do(ctx, http.MethodPatch, "/api/profile", map[string]*string{"displayName": name}, &u)
	return u, err
}

func (c *Client) Lists(ctx context.Context) ([]List, error) {
	var out []List
	err := c.do(ctx, http.MethodGet, "/api/lists", nil, &out)
	return out, err
}

func (c *Client) CreateList(ctx context.Context, name string) (List, error) {
	var out List
	err := c.do(ctx, http.MethodPost, "/api/lists", map[string]string{"name": name}, &out)
	return out, err
}

func (c *Client) RenameList(ctx context.Context, listID uuid.UUID, name string) (List, error) {
	var out List
	err := c.do(ctx, http.MethodPatch, "/api/lists/"+listID.String(), map[string]string{"name": name}, &out)
	return out, err
}

// DeleteList removes a list with its categories and entries. The last list
// of a user cannot be deleted (ErrConflict).
func (c *Client) DeleteList(ctx context.Context, listID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/lists/"+listID.String(), nil, nil)
}

func (c *Client) Categories(ctx context.Context, listID uuid.UUID) ([]Category, error) {
	var out []Category
	err := c.do(ctx, http.MethodGet, "/api/lists/"+listID.String()+"/categories", nil, &out)
	return out, err
}

func (c *Client) CreateCategory(ctx context.Context, listID uuid.UUID, name string) (Category, error) {
	var out Category
	err := c.do(ctx, http.MethodPost, "/api/lists/"+listID.String()+"/categories", map[string]string{"name": name}, &out)
	return out, err
}

// ReorderCategories assigns sort positions in the given order.
func (c *Client) ReorderCategories(ctx context.Context, listID uuid.UUID, ids []uuid.UUID) ([]Category, error) {
	var out []Category
	err := c.do(ctx, http.MethodPut, "/api/lists/"+listID.String()+"/categories/order",
		map[string][]uuid.UUID{"categoryIds": ids}, &out)
	return out, err
}

func (c *Client) RenameCategory(ctx context.Context, categoryID uuid.UUID, name string) (Category, error) {
	var out Category
	err := c.do(ctx, http.MethodPatch, "/api/categories/"+categoryID.String(), map[string]string{"name": name}, &out)
	return out, err
}

func (c *Client) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+categoryID.String(), nil, nil)
}

func (c *Client) Entries(ctx context.Context, listID uuid.UUID) ([]Entry, error) {
	var out []Entry
	err := c.do(ctx, http.MethodGet, "/api/lists/"+listID.String()+"/entries", nil, &out)
	return out, err
}

func (c *Client) CreateEntry(ctx context.Context, listID uuid.UUID, e NewEntry) (Entry, error) {
	var out Entry
	err := c.do(ctx, http.MethodPost, "/api/lists/"+listID.String()+"/entries", e, &out)
	return out, err
}

// MoveEntry re-parents an entry to another category.
func (c *Client) MoveEntry(ctx context.Context, entryID, categoryID uuid.UUID) (Entry, error) {
	var out Entry
	err := c.do(ctx, http.MethodPatch, "/api/entries/"+entryID.String(), map[string]uuid.UUID{"categoryId": categoryID}, &out)
	return out, err
}

func (c *Client) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/entries/"+entryID.String(), nil, nil)
}

// ExportMarkdown downloads the brag document of a list.
func (c *Client) ExportMarkdown(ctx context.Context, listID uuid.UUID) (string, error) {
	var buf bytes.Buffer
	err := c.do(ctx, http.MethodGet, "/api/lists/"+listID.String()+"/export.md", nil, &buf)
	return buf.String(), err
}

func (c *Client) Share(ctx context.Context, req ShareRequest) error {
	return c.do(ctx, http.MethodPost, "/api/share", req, nil)
}

func (c *Client) ReminderSettings(ctx context.Context) (ReminderSettings, error) {
	var out ReminderSettings
	err := c.do(ctx, http.MethodGet, "/api/reminders", nil, &out)
	return out, err
}

func (c *Client) SaveReminderSettings(ctx context.Context, s ReminderSettings) (ReminderSettings, error) {
	var out ReminderSettings
	err := c.do(ctx, http.MethodPut, "/api/reminders", s, &out)
	return out, err
}

func (c *Client) DeleteReminderSettings(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/reminders", nil, nil)
}

func (c *Client) Timezones(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, http.MethodGet, "/api/reminders/timezones", nil, &out)
	return out, err
}

// do sends body as JSON and decodes a 2xx response into out. A *bytes.Buffer
// out receives the raw body. Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(payload)
	}

	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("client: build url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("client: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Session().AccessToken; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(apiErr)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("client: %s %s: %w", method, path, apiErr)
	}

	switch dst := out.(type) {
	case nil:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	case *bytes.Buffer:
		_, err = dst.ReadFrom(resp.Body)
	default:
		err = json.NewDecoder(resp.Body).Decode(dst)
	}
	if err != nil {
		return fmt.Errorf("client: decode %s %s: %w", method, path, err)
	}
	return nil
}
