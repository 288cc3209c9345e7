package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Login exchanges the credential pair for a bearer token. The token is
// not stored here; session persistence belongs to the caller.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	var res struct {
		Token string `json:"token"`
	}
	err = c.doJSON(ctx, "login", http.MethodPost, "/api/admin/login", bytes.NewReader(payload), "application/json", false, &res)
	if err != nil {
		return "", err
	}
	return res.Token, nil
}
