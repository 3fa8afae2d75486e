// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestOwnerIDCtxKey(t *testing.T) {
	if OwnerIDCtxKey.String() != "ownerID" {
		t.Errorf("expected 'ownerID', got '%s'", OwnerIDCtxKey.String())
	}
}

func TestOwnerFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{name: "set", ctx: WithOwner(context.Background(), "alice"), want: "alice", wantOK: true},
		{name: "missing", ctx: context.Background(), wantOK: false},
		{name: "empty clears", ctx: WithOwner(WithOwner(context.Background(), "alice"), ""), wantOK: false},
		{name: "override", ctx: WithOwner(WithOwner(context.Background(), "alice"), "bob"), want: "bob", wantOK: true},
		{name: "wrong type", ctx: context.WithValue(context.Background(), OwnerIDCtxKey, 42), wantOK: false},
		{name: "different key", ctx: context.WithValue(context.Background(), contextKey("otherKey"), "alice"), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := OwnerFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOwnerPtrFromContext(t *testing.T) {
	assert.Nil(t, OwnerPtrFromContext(context.Background()))

	p := OwnerPtrFromContext(WithOwner(context.Background(), "alice"))
	require.NotNil(t, p)
	assert.Equal(t, "alice", *p)
}
