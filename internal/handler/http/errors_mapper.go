package http

import (
	"errors"
	"net/http"

	"github.com/ddanshin/staffdir/internal/service"
	"github.com/ddanshin/staffdir/internal/store"
	"github.com/ddanshin/staffdir/internal/utils"
	"github.com/ddanshin/staffdir/internal/validators"
	"github.com/ddanshin/staffdir/models"
)

var errorStatusMap = map[error]int{
	validators.ErrEmailPasswordRequired: http.StatusBadRequest,
	validators.ErrInvalidEmailFormat:    http.StatusBadRequest,
	validators.ErrNameEmailRequired:     http.StatusBadRequest,
	validators.ErrEmptyName:             http.StatusBadRequest,
	validators.ErrNoDataProvided:        http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrTokenIsExpired:     http.StatusUnauthorized,
	service.ErrTokenIsInvalid:     http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrEmployeeNotFound:   http.StatusNotFound,

	ErrMissingToken: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError converts err to the JSON error body of the API. The error
// text is surfaced verbatim: the login and token paths only ever pass
// deliberately generic sentinels here, everything else is documented to
// expose the underlying message.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
}
