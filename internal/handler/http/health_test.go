package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ddanshin/staffdir/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(router, http.MethodGet, "/api/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)

	ts, err := time.Parse(time.RFC3339, resp.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

// Health answers without a token; it sits outside the protected group.
func TestHealth_NoAuthRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(router, http.MethodGet, "/api/health", "", nil)
	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
}
