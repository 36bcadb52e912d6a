package session

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
	"time"
)

// ErrUnauthorized signals that the server rejected the stored credential.
var ErrUnauthorized = errors.New("session: unauthorized")

// Identity is the authenticated user as returned by the API.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Role        string `json:"role"`
	WarehouseID string `json:"warehouse_id,omitempty"`
}

// NomenclatureEntry is one autocomplete suggestion.
type NomenclatureEntry struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Client talks to the warehouse API with the credentials held in its Store.
type Client struct {
	baseURL string
	http    *http.Client
	store   Store
}

// NewClient builds a Client against baseURL. A nil httpClient gets a
// sensible default timeout.
func NewClient(baseURL string, store Store, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		store:   store,
	}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authPayload struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	User         *Identity `json:"user"`
}

// Login authenticates and persists the credential pair plus the identity.
func (c *Client) Login(ctx context.Context, email, password string) (*Identity, error) {
	var resp authPayload
	err := c.do(ctx, http.MethodPost, "/auth/login", loginPayload{Email: email, Password: password}, &resp, false)
	if err != nil {
		return nil, err
	}
	c.persist(resp)
	return resp.User, nil
}

// Me validates the stored access token against the server.
func (c *Client) Me(ctx context.Context) (*Identity, error) {
	var identity Identity
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &identity, true); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Refresh exchanges the stored refresh token for a fresh pair.
func (c *Client) Refresh(ctx context.Context) (*Identity, error) {
	token, ok := c.store.Get(KeyRefreshToken)
	if !ok {
		return nil, ErrUnauthorized
	}
	var resp authPayload
	payload := map[string]string{"refresh_token": token}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", payload, &resp, false); err != nil {
		return nil, err
	}
	c.persist(resp)
	return resp.User, nil
}

// Logout revokes the access token server-side and drops local state.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, true)
	c.ClearCredentials()
	return err
}

// PatchUserRole assigns role (and optionally a warehouse) to a user.
func (c *Client) PatchUserRole(ctx context.Context, userID, role, warehouseID string) (*Identity, error) {
	payload := map[string]string{"role": role}
	if warehouseID != "" {
		payload["warehouse_id"] = warehouseID
	}
	var updated Identity
	path := "/users/" + url.PathEscape(userID) + "/role"
	if err := c.do(ctx, http.MethodPatch, path, payload, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SearchNomenclature queries the tech-card autocomplete endpoint.
func (c *Client) SearchNomenclature(ctx context.Context, typ, search string, limit int) ([]NomenclatureEntry, error) {
	q := url.Values{}
	if typ != "" {
		q.Set("type", typ)
	}
	if search != "" {
		q.Set("search", search)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var entries []NomenclatureEntry
	if err := c.do(ctx, http.MethodGet, "/passport-nomenclature?"+q.Encode(), nil, &entries, true); err != nil {
		return nil, err
	}
	return entries, nil
}

// ClearCredentials removes every persisted session key.
func (c *Client) ClearCredentials() {
	c.store.Delete(KeyAccessToken)
	c.store.Delete(KeyRefreshToken)
	c.store.Delete(KeyIdentity)
}

func (c *Client) persist(resp authPayload) {
	c.store.Set(KeyAccessToken, resp.AccessToken)
	c.store.Set(KeyRefreshToken, resp.RefreshToken)
	if resp.User != nil {
		if data, err := json.Marshal(resp.User); err == nil {
			c.store.Set(KeyIdentity, string(data))
		}
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, ok := c.store.Get(KeyAccessToken)
		if !ok {
			return ErrUnauthorized
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("session: %s (%d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("session: unexpected status %d", resp.StatusCode)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
