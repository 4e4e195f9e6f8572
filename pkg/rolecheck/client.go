package rolecheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type checkAdminRequest struct {
	Email string `json:"email"`
}

type checkAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// Client asks the admin-lookup endpoint whether an identity has admin
// privileges. Callers are expected to map any error to "not admin"; the
// client itself just reports what happened.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) IsAdmin(ctx context.Context, email string) (bool, error) {
	body, err := json.Marshal(checkAdminRequest{Email: email})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return false, fmt.Errorf("admin check returned status %d", res.StatusCode)
	}

	var parsed checkAdminResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return false, err
	}
	return parsed.IsAdmin, nil
}
