// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package remote

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote value\n"))
	}))
	defer server.Close()

	source := NewSource(0)
	text, err := source.Fetch(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "remote value\n", text)
}

func TestFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	source := NewSource(0)
	_, err := source.Fetch(server.URL)
	assert.Error(t, err)
}

func TestFetchConnectionRefused(t *testing.T) {
	source := NewSource(0)
	_, err := source.Fetch("http://127.0.0.1:1/unreachable")
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "value.txt")
	require.NoError(t, os.WriteFile(path, []byte("file value\n"), 0600))

	source := NewSource(0)
	text, err := source.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file value\n", text)
}

func TestReadFileMissing(t *testing.T) {
	source := NewSource(0)
	_, err := source.ReadFile(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
