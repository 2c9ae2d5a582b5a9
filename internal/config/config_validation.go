// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/worklog-auth/internal/utils"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every violated rule is reported; the returned error joins them.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.App.validate(),
		cfg.Storage.validate(),
		cfg.Server.validate(),
		cfg.Workers.validate(),
	)
}

func (a App) validate() error {
	var errs []error

	if len(a.AccessTokenSecret) < MinSecretLength {
		errs = append(errs, fmt.Errorf("%w: access token secret must be at least %d characters", ErrInvalidAppConfigs, MinSecretLength))
	}
	if len(a.RefreshTokenSecret) < MinSecretLength {
		errs = append(errs, fmt.Errorf("%w: refresh token secret must be at least %d characters", ErrInvalidAppConfigs, MinSecretLength))
	}
	if a.AccessTokenSecret != "" && a.AccessTokenSecret == a.RefreshTokenSecret {
		errs = append(errs, fmt.Errorf("%w: access and refresh token secrets must differ", ErrInvalidAppConfigs))
	}
	if ttl, err := utils.ParseDurationSpec(a.AccessTokenTTL); err != nil {
		errs = append(errs, fmt.Errorf("%w: access token ttl: %w", ErrInvalidAppConfigs, err))
	} else if ttl == 0 {
		errs = append(errs, fmt.Errorf("%w: access token ttl must be positive", ErrInvalidAppConfigs))
	}
	if ttl, err := utils.ParseDurationSpec(a.RefreshTokenTTL); err != nil {
		errs = append(errs, fmt.Errorf("%w: refresh token ttl: %w", ErrInvalidAppConfigs, err))
	} else if ttl == 0 {
		errs = append(errs, fmt.Errorf("%w: refresh token ttl must be positive", ErrInvalidAppConfigs))
	}
	if a.TokenIssuer == "" {
		errs = append(errs, fmt.Errorf("%w: token issuer is empty", ErrInvalidAppConfigs))
	}

	return errors.Join(errs...)
}

func (s Storage) validate() error {
	if s.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}

	return nil
}

func (s Server) validate() error {
	if s.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
	}
	if s.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (w Workers) validate() error {
	if w.SessionSweepInterval < 0 {
		return fmt.Errorf("%w: negative session sweep interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
