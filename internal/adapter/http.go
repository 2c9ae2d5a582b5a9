// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/worklog-auth/internal/config"
	"github.com/MKhiriev/worklog-auth/internal/logger"
	"github.com/MKhiriev/worklog-auth/internal/utils"
	"github.com/MKhiriev/worklog-auth/models"
)

type httpAuthAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs the HTTP implementation of [AuthAdapter].
// Addresses without a scheme are treated as plain http.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAuthAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AuthAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAuthAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

func (h *httpAuthAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	var result models.AuthResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return result, fmt.Errorf("register request: %w", err)
	}

	if err = h.decodeData(resp, &result); err != nil {
		return result, err
	}
	return result, nil
}

func (h *httpAuthAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	var result models.AuthResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return result, fmt.Errorf("login request: %w", err)
	}

	if err = h.decodeData(resp, &result); err != nil {
		return result, err
	}
	return result, nil
}

func (h *httpAuthAdapter) Refresh(ctx context.Context, refreshToken string) (models.AuthResult, error) {
	var result models.AuthResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		Post("/api/auth/refresh")
	if err != nil {
		return result, fmt.Errorf("refresh request: %w", err)
	}

	if err = h.decodeData(resp, &result); err != nil {
		return result, err
	}
	return result, nil
}

func (h *httpAuthAdapter) Logout(ctx context.Context, refreshToken string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAuthAdapter) Me(ctx context.Context, accessToken string) (models.PublicUser, error) {
	var user models.PublicUser
	resp, err := h.client.WithBearer(accessToken).
		SetContext(ctx).
		Get("/api/auth/me")
	if err != nil {
		return user, fmt.Errorf("me request: %w", err)
	}

	if err = h.decodeData(resp, &user); err != nil {
		return user, err
	}
	return user, nil
}

func (h *httpAuthAdapter) Version(ctx context.Context, accessToken string) (models.VersionResponse, error) {
	var version models.VersionResponse

	req := h.client.R()
	if accessToken != "" {
		req = h.client.WithBearer(accessToken)
	}
	resp, err := req.SetContext(ctx).Get("/api/version")
	if err != nil {
		return version, fmt.Errorf("version request: %w", err)
	}

	if err = h.decodeData(resp, &version); err != nil {
		return version, err
	}
	return version, nil
}

// decodeData maps the status of resp and unwraps the "data" member of the
// response envelope into out.
func (h *httpAuthAdapter) decodeData(resp *resty.Response, out any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	envelope := models.Response{Data: out}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		h.logger.Err(err).Str("func", "*httpAuthAdapter.decodeData").
			Str("url", resp.Request.URL).Int("status", resp.StatusCode()).Msg("malformed response envelope")
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
