package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/logging"
)

// TokenSource supplies the current bearer token. An empty string means no
// session; the request is still sent and the server decides.
type TokenSource interface {
	Token() string
}

// HTTPClient implements Client against a JSON/HTTPS backend.
//
// The underlying http.Client carries no timeout, matching the backend
// contract: a request that never resolves keeps its form in flight until the
// surrounding context is cancelled.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// messageResponse is the generic success payload for mutations.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse covers both failure shapes the backend produces.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do performs one request. When authenticated, the current token (if any) is
// attached as a bearer credential. A non-2xx status is converted into an
// error; otherwise the body is decoded into out when out is non-nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, authenticated bool, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request finished",
		"method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// newError picks the display message in priority order: the structured
// "error" field, the structured "message" field, the HTTP status text.
func newError(status int, data []byte) error {
	var body errorResponse
	_ = json.Unmarshal(data, &body)

	msg := body.Error
	if msg == "" {
		msg = body.Message
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Status: status, Message: msg}
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, firstName, lastName, currentPassword string) (string, error) {
	body := struct {
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		CurrentPassword string `json:"current_password"`
	}{firstName, lastName, currentPassword}

	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/auth/profile", body, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmPassword string) (string, error) {
	body := struct {
		OldPassword     string `json:"old_password"`
		NewPassword     string `json:"new_password"`
		ConfirmPassword string `json:"confirm_password"`
	}{oldPassword, newPassword, confirmPassword}

	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/change-password", body, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, password string) (string, error) {
	body := struct {
		Password string `json:"password"`
	}{password}

	var resp messageResponse
	if err := c.do(ctx, http.MethodDelete, "/auth/delete-account", body, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) Notifications(ctx context.Context) (*models.NotificationPrefs, error) {
	var prefs models.NotificationPrefs
	if err := c.do(ctx, http.MethodGet, "/settings/notifications", nil, true, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (c *HTTPClient) SaveNotifications(ctx context.Context, prefs models.NotificationPrefs) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/settings/notifications", prefs, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) Billing(ctx context.Context) (*models.BillingSummary, error) {
	var summary models.BillingSummary
	if err := c.do(ctx, http.MethodGet, "/settings/billing", nil, true, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *HTTPClient) SaveBilling(ctx context.Context, upd models.BillingUpdate) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/settings/billing", upd, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) Plans(ctx context.Context) (*models.PlanSelection, error) {
	var sel models.PlanSelection
	if err := c.do(ctx, http.MethodGet, "/settings/plans", nil, true, &sel); err != nil {
		return nil, err
	}
	return &sel, nil
}

func (c *HTTPClient) SavePlans(ctx context.Context, sel models.PlanSelection, totalPrice int, currency string) (string, error) {
	body := struct {
		models.PlanSelection
		TotalPrice int    `json:"total_price"`
		Currency   string `json:"currency"`
	}{sel, totalPrice, currency}

	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/settings/plans", body, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Ping probes the liveness endpoint. Anything but {"status":"ok"} counts as
// unavailable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, false, &resp); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return ErrUnavailable
	}
	return nil
}
