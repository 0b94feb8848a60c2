package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/julinemart/vendorid/internal/config"
	"github.com/julinemart/vendorid/internal/directory/domain"
	"go.uber.org/zap"
)

// Client talks to the directory's admin REST API using the service role key.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(cfg config.Config, log *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.DirectoryURL, "/"),
		serviceKey: cfg.DirectoryServiceKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log.Named("directory.client"),
	}
}

func (c *Client) GetPrincipalByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	endpoint := fmt.Sprintf("%s/admin/users?email=%s", c.baseURL, url.QueryEscape(email))

	var payload struct {
		Users []domain.Principal `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &payload); err != nil {
		return nil, err
	}

	for i := range payload.Users {
		if strings.EqualFold(payload.Users[i].Email, email) {
			return &payload.Users[i], nil
		}
	}
	return nil, domain.ErrPrincipalNotFound
}

func (c *Client) CreatePrincipal(ctx context.Context, req domain.CreatePrincipalRequest) (*domain.Principal, error) {
	endpoint := c.baseURL + "/admin/users"

	var principal domain.Principal
	if err := c.do(ctx, http.MethodPost, endpoint, req, &principal); err != nil {
		return nil, err
	}
	return &principal, nil
}

func (c *Client) GenerateRecoveryLink(ctx context.Context, email, redirectTo string) error {
	endpoint := c.baseURL + "/admin/generate_link"

	body := map[string]string{
		"type":        "recovery",
		"email":       email,
		"redirect_to": redirectTo,
	}
	return c.do(ctx, http.MethodPost, endpoint, body, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.mapFailure(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// mapFailure turns an admin API failure into a typed error. The status code
// decides the kind; the response message is kept for the caller.
func (c *Client) mapFailure(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	message := failureMessage(raw)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.ErrPrincipalNotFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return domain.ErrPrincipalExists
	default:
		c.log.Warn("directory admin call failed",
			zap.Int("status", resp.StatusCode),
			zap.String("message", message),
		)
		if message == "" {
			return fmt.Errorf("%w: status %d", domain.ErrUnavailable, resp.StatusCode)
		}
		return fmt.Errorf("%w: %s", domain.ErrUnavailable, message)
	}
}

func failureMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return strings.TrimSpace(string(raw))
	}
	for _, candidate := range []string{payload.Message, payload.Msg, payload.Error} {
		if candidate != "" {
			return candidate
		}
	}
	return strings.TrimSpace(string(raw))
}
