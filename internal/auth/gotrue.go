package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"acoach/coach-api/internal/domain"
)

// GoTrueClient talks to a GoTrue-compatible identity service (Supabase
// Auth). Admin lookups use the service-role key; introspection forwards
// the caller's own token.
type GoTrueClient struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewGoTrueClient creates a client for the identity service at baseURL.
func NewGoTrueClient(baseURL, serviceKey string) *GoTrueClient {
	return &GoTrueClient{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

var _ UserLookup = (*GoTrueClient)(nil)

type gotrueUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// UserByID fetches a user through the admin API.
func (c *GoTrueClient) UserByID(ctx context.Context, id string) (*domain.User, error) {
	endpoint := c.baseURL + "/auth/v1/admin/users/" + url.PathEscape(id)
	return c.fetchUser(ctx, endpoint, c.serviceKey)
}

// UserByToken validates an opaque token by asking the identity service
// who it belongs to.
func (c *GoTrueClient) UserByToken(ctx context.Context, token string) (*domain.User, error) {
	return c.fetchUser(ctx, c.baseURL+"/auth/v1/user", token)
}

func (c *GoTrueClient) fetchUser(ctx context.Context, endpoint, bearer string) (*domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var u gotrueUser
		if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
			return nil, fmt.Errorf("decode identity response: %w", err)
		}
		if u.ID == "" {
			return nil, nil
		}
		return &domain.User{ID: u.ID, Email: u.Email}, nil
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, nil
	default:
		return nil, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}
}
