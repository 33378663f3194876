package http

import (
	"encoding/json"
	"net/http"

	"github.com/ddanshin/staffdir/internal/logger"
	"github.com/ddanshin/staffdir/internal/service"
	"github.com/ddanshin/staffdir/internal/utils"
	"github.com/ddanshin/staffdir/internal/validators"
	"github.com/ddanshin/staffdir/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, validators.ErrEmailPasswordRequired)
		return
	}

	user, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		// every failure of the register flow, including errors reported by
		// the identity service (e.g. a duplicate account), answers 400 with
		// the error text as is
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Registration failed"}, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Message: "User registered successfully",
		Token:   token.SignedString,
		User:    user,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, validators.ErrEmailPasswordRequired)
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("id", user.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, service.ErrInvalidCredentials)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Message: "Login successful",
		Token:   token.SignedString,
		User:    user,
	}, http.StatusOK)
}
