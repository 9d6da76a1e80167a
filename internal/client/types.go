// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// types.go - wire types of the hub resource API.
package client

import (
	"encoding/json"
	"time"
)

// Class is a schema-bearing grouping of objects.
type Class struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	NamespaceID    int             `json:"namespace_id"`
	Description    string          `json:"description"`
	JSONSchema     json.RawMessage `json:"json_schema,omitempty"`
	ValidateSchema bool            `json:"validate_schema"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ClassPost is the creation payload for a class.
type ClassPost struct {
	Name           string          `json:"name"`
	NamespaceID    int             `json:"namespace_id"`
	Description    string          `json:"description"`
	JSONSchema     json.RawMessage `json:"json_schema,omitempty"`
	ValidateSchema *bool           `json:"validate_schema,omitempty"`
}

// Namespace is an ownership boundary for classes and objects.
type Namespace struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NamespacePost is the creation payload for a namespace. GroupID names the
// group that owns the new namespace.
type NamespacePost struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	GroupID     int    `json:"group_id"`
}

// User is an account on the hub server.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPost is the creation payload for a user.
type UserPost struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// Group is a named set of users used for namespace grants.
type Group struct {
	ID          int       `json:"id"`
	Groupname   string    `json:"groupname"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GroupPost is the creation payload for a group.
type GroupPost struct {
	Groupname   string `json:"groupname"`
	Description string `json:"description"`
}
