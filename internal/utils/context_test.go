// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUsernameCtxKey(t *testing.T) {
	if UsernameCtxKey.String() != "username" {
		t.Errorf("expected 'username', got '%s'", UsernameCtxKey.String())
	}
}

func TestGetUsernameFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "hero")

	username, ok := GetUsernameFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if username != "hero" {
		t.Errorf("expected username=hero, got %s", username)
	}
}

func TestGetUsernameFromContext_Missing(t *testing.T) {
	if _, ok := GetUsernameFromContext(context.Background()); ok {
		t.Error("expected ok=false for missing value")
	}
}

func TestGetUsernameFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, 42)

	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetUsernameFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "")

	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Error("expected ok=false for empty username")
	}
}

func TestGetUsernameFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), "hero")

	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Error("expected ok=false when value is stored under another key")
	}
}
