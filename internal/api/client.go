package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Identity headers trusted by the endpoints. Authorization is enforced
// server-side; the client only forwards who it believes it is.
const (
	HeaderRole   = "X-User-Role"
	HeaderUserID = "X-User-Id"
)

// Endpoints names the five resource endpoints.
type Endpoints struct {
	Auth         string
	News         string
	Applications string
	Attendance   string
	Members      string
}

// Client calls the club portal endpoints.
type Client struct {
	Endpoints Endpoints
	HTTP      *http.Client
}

// New creates a client with the given endpoint set and timeout.
func New(eps Endpoints, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		Endpoints: eps,
		HTTP:      &http.Client{Timeout: timeout},
	}
}

// Error is an application-level failure reported by an endpoint, as opposed
// to a transport failure. Message is the server-supplied text when present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("endpoint error (%d)", e.Status)
}

// statusResponse is the {success, error} shape returned by every mutation.
type statusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// do issues one JSON request. A non-2xx response with an {error} body becomes
// an *Error; anything else that goes wrong is returned as a wrapped transport
// or decode error.
func (c *Client) do(ctx context.Context, method, url string, headers map[string]string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request failed: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response failed: %w", err)
	}

	if resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		if jerr := json.Unmarshal(data, &e); jerr == nil && e.Error != "" {
			return &Error{Status: resp.StatusCode, Message: e.Error}
		}
		return fmt.Errorf("endpoint error %s: %s", resp.Status, string(data))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// doStatus issues a mutation and converts {success:false} into an *Error.
func (c *Client) doStatus(ctx context.Context, method, url string, headers map[string]string, payload interface{}) error {
	var out statusResponse
	if err := c.do(ctx, method, url, headers, payload, &out); err != nil {
		return err
	}
	if !out.Success {
		return &Error{Status: http.StatusOK, Message: out.Error}
	}
	return nil
}

func roleHeader(role string) map[string]string {
	return map[string]string{HeaderRole: role}
}
