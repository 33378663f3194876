package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ddanshin/staffdir/internal/service"
	"github.com/ddanshin/staffdir/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(router, http.MethodGet, "/api/employees", "", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Token is missing", resp.Error)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		ParseToken(gomock.Any(), "expired-token").
		Return(models.Token{}, service.ErrTokenIsExpired)

	rec := doRequest(router, http.MethodGet, "/api/employees", "",
		map[string]string{"Authorization": "Bearer expired-token"})

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Token has expired", resp.Error)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		ParseToken(gomock.Any(), "garbage").
		Return(models.Token{}, service.ErrTokenIsInvalid)

	rec := doRequest(router, http.MethodGet, "/api/employees", "",
		map[string]string{"Authorization": "Bearer garbage"})

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid token", resp.Error)
}

// The raw token without the "Bearer " prefix is accepted too.
func TestAuthMiddleware_RawTokenHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, mockEmployees := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		ParseToken(gomock.Any(), "raw-token").
		Return(models.Token{UserID: "user-1"}, nil)

	mockEmployees.EXPECT().
		List(gomock.Any(), 1, "", "").
		Return([]models.Employee{}, models.Pagination{Page: 1, PerPage: 10}, nil)

	rec := doRequest(router, http.MethodGet, "/api/employees", "",
		map[string]string{"Authorization": "raw-token"})

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	t.Run("bearer prefix", func(t *testing.T) {
		assert.Equal(t, "abc.def.ghi", getTokenFromAuthHeader("Bearer abc.def.ghi"))
	})

	t.Run("raw token", func(t *testing.T) {
		assert.Equal(t, "abc.def.ghi", getTokenFromAuthHeader("abc.def.ghi"))
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "abc.def.ghi", getTokenFromAuthHeader("  Bearer abc.def.ghi  "))
	})
}
