// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/worklog-auth/internal/adapter"
	"github.com/MKhiriev/worklog-auth/models"
)

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
	errMissingFlag    = errors.New("missing required flag")
)

type command func(ctx context.Context, a adapter.AuthAdapter, fs *flag.FlagSet, args []string) (any, error)

var commands = map[string]command{
	"register": registerCommand,
	"login":    loginCommand,
	"refresh":  refreshCommand,
	"logout":   logoutCommand,
	"me":       meCommand,
	"version":  versionCommand,
}

// run executes the subcommand named by args[0] and prints its result to out
// as indented JSON.
func run(ctx context.Context, a adapter.AuthAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w, expected one of: %s", errNoCommand, commandNames())
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q, expected one of: %s", errUnknownCommand, args[0], commandNames())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	result, err := cmd(ctx, a, fs, args[1:])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func commandNames() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func registerCommand(ctx context.Context, a adapter.AuthAdapter, fs *flag.FlagSet, args []string) (any, error) {
	var req models.RegisterRequest
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	fs.StringVar(&req.Name, "name", "", "display name")
	if err := parse(fs, args, "email", "password", "name"); err != nil {
		return nil, err
	}

	return a.Register(ctx, req)
}

func loginCommand(ctx context.Context, a adapter.AuthAdapter, fs *flag.FlagSet, args []string) (any, error) {
	var req models.LoginRequest
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	if err := parse(fs, args, "email", "password"); err != nil {
		return nil, err
	}

	return a.Login(ctx, req)
}

func refreshCommand(ctx context.Context, a adapter.AuthAdapter, fs *flag.FlagSet, args []string) (any, error) {
	token := fs.String("token", "", "refresh token")
	if err := parse(fs, args, "token"); err != nil {
		return nil, err
	}

	return a.Refresh(ctx, *token)
}

func logoutCommand(ctx context.Context, a adapter.AuthAdapter, fs *flag.FlagSet, args []string) (any, error) {
	token := fs.String("token", "", "refresh token")
	if err := parse(fs, args, "token"); err != nil {
		return nil, err
	}

	if err := a.Logout(ctx, *token); err != nil {
		return nil, err
	}
	return map[string]bool{"loggedOut": true}, nil
}

func meCommand(ctx context.Context, a adapter.AuthAdapter, fs *flag.FlagSet, args []string) (any, error) {
	token := fs.String("token", "", "access token")
	if err := parse(fs, args, "token"); err != nil {
		return nil, err
	}

	return a.Me(ctx, *token)
}

func versionCommand(ctx context.Context, a adapter.AuthAdapter, fs *flag.FlagSet, args []string) (any, error) {
	token := fs.String("token", "", "optional access token")
	if err := parse(fs, args); err != nil {
		return nil, err
	}

	return a.Version(ctx, *token)
}

// parse parses args and checks that every flag in required was given a
// non-empty value.
func parse(fs *flag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, name := range required {
		if strings.TrimSpace(fs.Lookup(name).Value.String()) == "" {
			return fmt.Errorf("%w -%s", errMissingFlag, name)
		}
	}
	return nil
}
