package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"clubportal/internal/model"
)

// AuthResult is the outcome of a login or registration attempt. Success false
// with a Message is an ordinary outcome, not an error.
type AuthResult struct {
	Success bool
	User    *model.User
	Token   string
	Message string
}

// Login authenticates against the auth endpoint.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	return c.authPost(ctx, map[string]string{
		"action":   "login",
		"email":    email,
		"password": password,
	})
}

// Register creates an account; new accounts always start as role member.
func (c *Client) Register(ctx context.Context, email, password, fullName string) (AuthResult, error) {
	return c.authPost(ctx, map[string]string{
		"action":    "register",
		"email":     email,
		"password":  password,
		"full_name": fullName,
	})
}

// authPost decodes the body even on non-2xx statuses: the auth contract
// carries success and error in the body, and a failed login is a 401.
func (c *Client) authPost(ctx context.Context, payload map[string]string) (AuthResult, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return AuthResult{}, fmt.Errorf("encode request failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoints.Auth, bytes.NewReader(b))
	if err != nil {
		return AuthResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return AuthResult{}, fmt.Errorf("read response failed: %w", err)
	}

	var out struct {
		Success bool        `json:"success"`
		User    *model.User `json:"user"`
		Token   string      `json:"token"`
		Error   string      `json:"error"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return AuthResult{}, fmt.Errorf("failed to decode response: %w", err)
	}

	return AuthResult{
		Success: out.Success,
		User:    out.User,
		Token:   out.Token,
		Message: out.Error,
	}, nil
}
