// Package rest implements the backend ports over the marketplace REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sneha3498/infosysproject/internal/entity"
	"github.com/sneha3498/infosysproject/internal/port"
)

const maxErrorBody = 64 * 1024

// Client talks to the marketplace backend. Every request carries a bearer
// token when the session store holds one, plus an X-Request-ID for log
// correlation. A 401 or 403 is logged as a warning only; the session is
// never cleared by this layer.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions port.SessionStore
	logger   *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, sessions port.SessionStore, logger *zap.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		logger:   logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("rest.Client: failed to build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if sess, loadErr := c.sessions.Load(ctx); loadErr != nil {
		c.logger.Warn("Failed to load session before request", zap.Error(loadErr))
	} else if !sess.IsAnonymous() {
		req.Header.Set("Authorization", "Bearer "+sess.AuthToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("rest.Client: %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		c.logger.Warn("Token expired or invalid", zap.String("path", path))
	case http.StatusForbidden:
		c.logger.Warn("Access denied: forbidden API call", zap.String("path", path))
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, entity.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &entity.RemoteError{StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rest.Client: failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("rest.Client: failed to marshal %s %s payload: %w", method, path, err)
	}
	return c.do(ctx, method, path, nil, bytes.NewReader(data), "application/json", out)
}

// sendMultipart builds a multipart form submission. The form's own content
// type is used; the JSON default never applies here.
func (c *Client) sendMultipart(ctx context.Context, method, path string, fields map[string]string, image *entity.ImageUpload, out interface{}) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return fmt.Errorf("rest.Client: failed to write form field %q: %w", name, err)
		}
	}
	if image != nil {
		part, err := form.CreateFormFile("image", image.FileName)
		if err != nil {
			return fmt.Errorf("rest.Client: failed to create image part: %w", err)
		}
		if _, err := io.Copy(part, image.Content); err != nil {
			return fmt.Errorf("rest.Client: failed to copy image content: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("rest.Client: failed to finalize form: %w", err)
	}
	return c.do(ctx, method, path, nil, &buf, form.FormDataContentType(), out)
}

func serverMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return ""
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Message
}
