// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package domain

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/jeranaias/hubshell/internal/client"
)

func TestGeneratePassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		password, err := generatePassword(20)
		if err != nil {
			t.Fatalf("generatePassword error: %v", err)
		}
		if len(password) != 20 {
			t.Errorf("length = %d, want 20", len(password))
		}
		for _, r := range password {
			if !strings.ContainsRune(passwordAlphabet, r) {
				t.Errorf("character %q outside alphabet", r)
			}
		}
		if seen[password] {
			t.Errorf("duplicate password %q", password)
		}
		seen[password] = true
	}
}

func TestUserCreatePrintsPassword(t *testing.T) {
	tree := BuildCommands(NewCompletions(nil))
	var post client.UserPost
	ctx, sink := newServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&post)
		json.NewEncoder(w).Encode(client.User{ID: 1, Username: post.Username, Email: post.Email})
	})

	if err := runLine(t, tree, ctx, "user create -u alice -e alice@example.com"); err != nil {
		t.Fatalf("user create error: %v", err)
	}
	if post.Username != "alice" || post.Email != "alice@example.com" {
		t.Errorf("post = %+v", post)
	}
	if len(post.Password) != 20 {
		t.Errorf("generated password length = %d", len(post.Password))
	}

	out := strings.Join(sink.Lines(), "\n")
	if !strings.Contains(out, post.Password) {
		t.Errorf("output does not show the generated password:\n%s", out)
	}
}
