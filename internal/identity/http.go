package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ddanshin/staffdir/internal/config"
	"github.com/ddanshin/staffdir/internal/logger"
	"github.com/ddanshin/staffdir/internal/utils"
	"github.com/ddanshin/staffdir/models"
)

type httpIdentityClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// credentialsBody is the JSON request body of both identity endpoints.
type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userBody is the JSON success body of both identity endpoints. The
// service may wrap the account in a "user" field (sign-up) or inline it
// (sign-in); both shapes are accepted.
type userBody struct {
	ID    string       `json:"id"`
	Email string       `json:"email"`
	User  *models.User `json:"user"`
}

func (b userBody) account() models.User {
	if b.User != nil {
		return *b.User
	}
	return models.User{ID: b.ID, Email: b.Email}
}

// errorBody is the JSON failure body of the identity service. Different
// endpoints use different field names, so all known ones are collected.
type errorBody struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (b errorBody) text() string {
	switch {
	case b.Msg != "":
		return b.Msg
	case b.Message != "":
		return b.Message
	default:
		return b.ErrorDescription
	}
}

// NewHTTPClient constructs an HTTP/REST implementation of [Client].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL, the project API
// key header, and the request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPClient(cfg config.Identity, logger *logger.Logger) (Client, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("apikey", cfg.APIKey)

	return &httpIdentityClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SignUp implements [Client]. It POSTs the credentials to POST /signup and
// returns the created account. A non-2xx response is returned as an
// [*APIError] carrying the service's own error text (e.g. a duplicate
// account message).
func (c *httpIdentityClient) SignUp(ctx context.Context, email, password string) (models.User, error) {
	return c.exchange(ctx, "/signup", email, password)
}

// SignInWithPassword implements [Client]. It POSTs the credentials to
// POST /token?grant_type=password and returns the matching account.
// Any non-2xx response, including a wrong password, is returned as an
// [*APIError]; callers decide how much of it to expose.
func (c *httpIdentityClient) SignInWithPassword(ctx context.Context, email, password string) (models.User, error) {
	return c.exchange(ctx, "/token?grant_type=password", email, password)
}

func (c *httpIdentityClient) exchange(ctx context.Context, endpoint, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	var success userBody
	var failure errorBody

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentialsBody{Email: email, Password: password}).
		SetResult(&success).
		SetError(&failure).
		Post(endpoint)
	if err != nil {
		log.Err(err).Str("endpoint", endpoint).Msg("identity request failed")
		return models.User{}, fmt.Errorf("identity request: %w", err)
	}

	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode(), Message: failure.text()}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode())
		}
		log.Error().Str("endpoint", endpoint).Int("status", apiErr.Status).Str("msg", apiErr.Message).Msg("identity service rejected request")
		return models.User{}, apiErr
	}

	user := success.account()
	if user.ID == "" {
		return models.User{}, fmt.Errorf("identity response carries no account id")
	}

	return user, nil
}
