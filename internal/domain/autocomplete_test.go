// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package domain

import (
	"reflect"
	"testing"
)

func TestBool(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"true", "false"}},
		{"t", []string{"true"}},
		{"f", []string{"false"}},
		{"x", nil},
	}
	for _, tt := range tests {
		if got := Bool(nil, tt.prefix, nil); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Bool(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestCompletionsDisabled(t *testing.T) {
	// A disabled Completions must bail out before touching the client.
	cpl := NewCompletions(nil)
	cpl.SetDisabled(true)

	if got := cpl.Classes(nil, "ac", nil); got != nil {
		t.Errorf("Classes = %v, want nil", got)
	}
	if got := cpl.Namespaces(nil, "ns", nil); got != nil {
		t.Errorf("Namespaces = %v, want nil", got)
	}
	if got := cpl.Users(nil, "al", nil); got != nil {
		t.Errorf("Users = %v, want nil", got)
	}
	if got := cpl.Groups(nil, "ad", nil); got != nil {
		t.Errorf("Groups = %v, want nil", got)
	}
}
