package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/ddanshin/staffdir/internal/service"
	"github.com/ddanshin/staffdir/internal/validators"
	"github.com/ddanshin/staffdir/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestHandler(t, ctrl)

	user := models.User{ID: "user-1", Email: "john@example.com"}
	gomock.InOrder(
		mockAuth.EXPECT().
			Register(gomock.Any(), models.Credentials{Email: "john@example.com", Password: "secret"}).
			Return(user, nil),
		mockAuth.EXPECT().
			CreateToken(gomock.Any(), user).
			Return(models.Token{SignedString: "signed.jwt.token", UserID: "user-1"}, nil),
	)

	rec := doRequest(router, http.MethodPost, "/api/auth/register",
		`{"email":"john@example.com","password":"secret"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "user-1", resp.User.ID)
}

func TestRegister_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(router, http.MethodPost, "/api/auth/register", `{not json`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Email and password are required", resp.Error)
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(models.User{}, validators.ErrInvalidEmailFormat)

	rec := doRequest(router, http.MethodPost, "/api/auth/register",
		`{"email":"nope","password":"secret"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid email format", resp.Error)
}

// The identity service's own rejection text reaches the caller verbatim.
func TestRegister_IdentityRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(models.User{}, errors.New("User already registered"))

	rec := doRequest(router, http.MethodPost, "/api/auth/register",
		`{"email":"john@example.com","password":"secret"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User already registered", resp.Error)
}

func TestRegister_TokenCreationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestHandler(t, ctrl)

	gomock.InOrder(
		mockAuth.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(models.User{ID: "user-1"}, nil),
		mockAuth.EXPECT().
			CreateToken(gomock.Any(), gomock.Any()).
			Return(models.Token{}, service.ErrTokenCreationFailed),
	)

	rec := doRequest(router, http.MethodPost, "/api/auth/register",
		`{"email":"john@example.com","password":"secret"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Registration failed", resp.Error)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestHandler(t, ctrl)

	user := models.User{ID: "user-1", Email: "john@example.com"}
	gomock.InOrder(
		mockAuth.EXPECT().
			Login(gomock.Any(), models.Credentials{Email: "john@example.com", Password: "secret"}).
			Return(user, nil),
		mockAuth.EXPECT().
			CreateToken(gomock.Any(), user).
			Return(models.Token{SignedString: "signed.jwt.token", UserID: "user-1"}, nil),
	)

	rec := doRequest(router, http.MethodPost, "/api/auth/login",
		`{"email":"john@example.com","password":"secret"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "signed.jwt.token", resp.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrInvalidCredentials)

	rec := doRequest(router, http.MethodPost, "/api/auth/login",
		`{"email":"john@example.com","password":"wrong"}`, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid credentials", resp.Error)
}

func TestLogin_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, validators.ErrEmailPasswordRequired)

	rec := doRequest(router, http.MethodPost, "/api/auth/login", `{"email":"john@example.com"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Email and password are required", resp.Error)
}
