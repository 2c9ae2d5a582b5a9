// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/worklog-auth/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestPrincipalCtxKey(t *testing.T) {
	if PrincipalCtxKey.String() != "principal" {
		t.Errorf("expected 'principal', got '%s'", PrincipalCtxKey.String())
	}
}

func TestPrincipalFromContext_Success(t *testing.T) {
	want := models.Principal{UserID: "u-1", Email: "alice@example.com", Role: models.RoleAdmin}
	ctx := WithPrincipal(context.Background(), want)

	got, ok := PrincipalFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestPrincipalFromContext_Missing(t *testing.T) {
	got, ok := PrincipalFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if got != (models.Principal{}) {
		t.Errorf("expected zero principal, got %+v", got)
	}
}

func TestPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "not-a-principal")

	_, ok := PrincipalFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestPrincipalFromContext_DoesNotMutateParent(t *testing.T) {
	parent := context.Background()
	_ = WithPrincipal(parent, models.Principal{UserID: "u-1"})

	if _, ok := PrincipalFromContext(parent); ok {
		t.Fatal("parent context must stay anonymous")
	}
}
