// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store persists login tokens between shell sessions.
//
// Tokens are keyed by (server URL, username) so that one machine can hold
// sessions against several hub servers. The backing store is a single SQLite
// database under the config directory.
package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNoToken is returned when no stored token matches the server and user.
var ErrNoToken = errors.New("no stored token")

const schema = `
CREATE TABLE IF NOT EXISTS tokens (
	id         TEXT PRIMARY KEY,
	server     TEXT NOT NULL,
	username   TEXT NOT NULL,
	token      TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	UNIQUE (server, username)
);
`

// TokenStore is a SQLite-backed token vault.
type TokenStore struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the token database at path.
func Open(path string) (*TokenStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &TokenStore{db: db}, nil
}

// SaveToken stores or replaces the token for (server, username).
func (s *TokenStore) SaveToken(server, username, token string) error {
	_, err := s.db.Exec(`
		INSERT INTO tokens (id, server, username, token, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (server, username)
		DO UPDATE SET token = excluded.token, created_at = excluded.created_at`,
		uuid.NewString(), server, username, token, time.Now().UTC())
	return err
}

// LoadToken returns the stored token for (server, username).
func (s *TokenStore) LoadToken(server, username string) (string, error) {
	var token string
	err := s.db.QueryRow(
		`SELECT token FROM tokens WHERE server = ? AND username = ?`,
		server, username).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// DeleteToken removes the stored token for (server, username). Deleting a
// token that does not exist is not an error.
func (s *TokenStore) DeleteToken(server, username string) error {
	_, err := s.db.Exec(
		`DELETE FROM tokens WHERE server = ? AND username = ?`,
		server, username)
	return err
}

// Close releases the underlying database.
func (s *TokenStore) Close() error {
	return s.db.Close()
}
