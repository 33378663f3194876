package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ddanshin/staffdir/internal/config"
	"github.com/ddanshin/staffdir/internal/identity"
	"github.com/ddanshin/staffdir/internal/logger"
	"github.com/ddanshin/staffdir/internal/utils"
	"github.com/ddanshin/staffdir/internal/validators"
	"github.com/ddanshin/staffdir/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It delegates account management to the external identity service and
// handles the JWT token lifecycle locally with HMAC-SHA256.
type authService struct {
	// identityClient talks to the external system of record for accounts.
	identityClient identity.Client

	// validator checks inbound credentials before any network round trip.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given identity
// client and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(identityClient identity.Client, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		identityClient: identityClient,
		validator:      validators.NewRequestValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account.
//
// It validates that both email and password are non-empty and that the
// email is well formed, then delegates account creation to the identity
// service.
//
// Returns the created user (with the service-assigned opaque ID) or:
//   - A validation sentinel if email or password is missing or malformed.
//   - The identity service's own error if the sign-up is rejected (for
//     example a duplicate account); its text is surfaced to the caller
//     unmodified.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Str("email", creds.Email).Msg("invalid registration data provided")
		return models.User{}, err
	}

	user, err := a.identityClient.SignUp(ctx, creds.Email, creds.Password)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("identity sign-up failed")
		return models.User{}, err
	}

	return user, nil
}

// Login authenticates an existing account.
//
// It validates that both email and password are non-empty, then delegates
// verification to the identity service.
//
// Returns the authenticated user or:
//   - A validation sentinel if email or password is missing.
//   - ErrInvalidCredentials for every identity-service failure; the real
//     cause is logged but never exposed, so callers cannot probe which
//     emails have accounts.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds, validators.FieldPassword); err != nil {
		log.Error().Str("email", creds.Email).Msg("invalid login data provided")
		return models.User{}, err
	}

	user, err := a.identityClient.SignInWithPassword(ctx, creds.Email, creds.Password)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("identity sign-in failed")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim and the expiry. An elapsed expiry is reported as
// ErrTokenIsExpired; every other failure (tampered signature, malformed
// token, wrong issuer) is normalised to ErrTokenIsInvalid so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
