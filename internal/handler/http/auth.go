// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/worklog-auth/internal/logger"
	"github.com/MKhiriev/worklog-auth/internal/utils"
	"github.com/MKhiriev/worklog-auth/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", result.User.ID).Msg("user registered")
	writeData(w, r, http.StatusCreated, result)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", result.User.ID).Msg("user successfully logged in")
	writeData(w, r, http.StatusOK, result)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RefreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Logout(ctx, req.RefreshToken); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, nil)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		log.Info().Err(err).Msg("token refresh rejected")
		writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, result)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		writeError(w, r, ErrAuthenticationRequired)
		return
	}

	user, err := h.services.AuthService.GetCurrentUser(ctx, principal.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, user)
}
