// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// resources.go - typed operations on the hub resource collections.
//
// List* takes optional query filters in the server's key__operator=value
// convention. Find* is the completion-path variant: prefix-filtered, rate
// limited, and silent about failures.
package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
)

// Filter narrows a List request, e.g. {"name", "startswith", "ac"}.
type Filter struct {
	Key      string
	Operator string // "", "startswith", "contains", "icontains"
	Value    string
}

func filterQuery(filters []Filter) url.Values {
	if len(filters) == 0 {
		return nil
	}
	query := url.Values{}
	for _, f := range filters {
		key := f.Key
		if f.Operator != "" {
			key += "__" + f.Operator
		}
		query.Set(key, f.Value)
	}
	return query
}

// =============================================================================
// CLASSES
// =============================================================================

// ListClasses returns the classes matching the filters.
func (c *Client) ListClasses(ctx context.Context, filters ...Filter) ([]Class, error) {
	var classes []Class
	if err := c.do(ctx, http.MethodGet, "/api/v1/classes", filterQuery(filters), nil, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// GetClass returns the single class with the given name.
func (c *Client) GetClass(ctx context.Context, name string) (*Class, error) {
	classes, err := c.ListClasses(ctx, Filter{Key: "name", Value: name})
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, ErrNotFound
	}
	return &classes[0], nil
}

// CreateClass creates a class and returns the stored resource.
func (c *Client) CreateClass(ctx context.Context, post ClassPost) (*Class, error) {
	var created Class
	if err := c.do(ctx, http.MethodPost, "/api/v1/classes", nil, post, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteClass deletes the class with the given name.
func (c *Client) DeleteClass(ctx context.Context, name string) error {
	class, err := c.GetClass(ctx, name)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/api/v1/classes/"+url.PathEscape(class.Name), nil, nil, nil)
}

// FindClasses returns the names of classes starting with prefix, for
// completion. Failures and throttling yield an empty list.
func (c *Client) FindClasses(ctx context.Context, prefix string) []string {
	if !c.allowCompletion() {
		return nil
	}
	classes, err := c.ListClasses(ctx, prefixFilter("name", prefix)...)
	if err != nil {
		log.Warn("failed to fetch classes for autocomplete", "err", err)
		return nil
	}
	names := make([]string, len(classes))
	for i, class := range classes {
		names[i] = class.Name
	}
	return names
}

// =============================================================================
// NAMESPACES
// =============================================================================

// ListNamespaces returns the namespaces matching the filters.
func (c *Client) ListNamespaces(ctx context.Context, filters ...Filter) ([]Namespace, error) {
	var namespaces []Namespace
	if err := c.do(ctx, http.MethodGet, "/api/v1/namespaces", filterQuery(filters), nil, &namespaces); err != nil {
		return nil, err
	}
	return namespaces, nil
}

// GetNamespace returns the single namespace with the given name.
func (c *Client) GetNamespace(ctx context.Context, name string) (*Namespace, error) {
	namespaces, err := c.ListNamespaces(ctx, Filter{Key: "name", Value: name})
	if err != nil {
		return nil, err
	}
	if len(namespaces) == 0 {
		return nil, ErrNotFound
	}
	return &namespaces[0], nil
}

// CreateNamespace creates a namespace and returns the stored resource.
func (c *Client) CreateNamespace(ctx context.Context, post NamespacePost) (*Namespace, error) {
	var created Namespace
	if err := c.do(ctx, http.MethodPost, "/api/v1/namespaces", nil, post, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteNamespace deletes the namespace with the given name.
func (c *Client) DeleteNamespace(ctx context.Context, name string) error {
	namespace, err := c.GetNamespace(ctx, name)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/api/v1/namespaces/"+url.PathEscape(namespace.Name), nil, nil, nil)
}

// FindNamespaces returns the names of namespaces starting with prefix, for
// completion.
func (c *Client) FindNamespaces(ctx context.Context, prefix string) []string {
	if !c.allowCompletion() {
		return nil
	}
	namespaces, err := c.ListNamespaces(ctx, prefixFilter("name", prefix)...)
	if err != nil {
		log.Warn("failed to fetch namespaces for autocomplete", "err", err)
		return nil
	}
	names := make([]string, len(namespaces))
	for i, namespace := range namespaces {
		names[i] = namespace.Name
	}
	return names
}

// =============================================================================
// USERS
// =============================================================================

// ListUsers returns the users matching the filters.
func (c *Client) ListUsers(ctx context.Context, filters ...Filter) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/api/v1/users", filterQuery(filters), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns the single user with the given username.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	users, err := c.ListUsers(ctx, Filter{Key: "username", Value: username})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return &users[0], nil
}

// CreateUser creates a user and returns the stored resource.
func (c *Client) CreateUser(ctx context.Context, post UserPost) (*User, error) {
	var created User
	if err := c.do(ctx, http.MethodPost, "/api/v1/users", nil, post, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteUser deletes the user with the given username.
func (c *Client) DeleteUser(ctx context.Context, username string) error {
	user, err := c.GetUser(ctx, username)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/api/v1/users/"+url.PathEscape(user.Username), nil, nil, nil)
}

// FindUsers returns the usernames starting with prefix, for completion.
func (c *Client) FindUsers(ctx context.Context, prefix string) []string {
	if !c.allowCompletion() {
		return nil
	}
	users, err := c.ListUsers(ctx, prefixFilter("username", prefix)...)
	if err != nil {
		log.Warn("failed to fetch users for autocomplete", "err", err)
		return nil
	}
	names := make([]string, len(users))
	for i, user := range users {
		names[i] = user.Username
	}
	return names
}

// =============================================================================
// GROUPS
// =============================================================================

// ListGroups returns the groups matching the filters.
func (c *Client) ListGroups(ctx context.Context, filters ...Filter) ([]Group, error) {
	var groups []Group
	if err := c.do(ctx, http.MethodGet, "/api/v1/groups", filterQuery(filters), nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetGroup returns the single group with the given name.
func (c *Client) GetGroup(ctx context.Context, groupname string) (*Group, error) {
	groups, err := c.ListGroups(ctx, Filter{Key: "groupname", Value: groupname})
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, ErrNotFound
	}
	return &groups[0], nil
}

// CreateGroup creates a group and returns the stored resource.
func (c *Client) CreateGroup(ctx context.Context, post GroupPost) (*Group, error) {
	var created Group
	if err := c.do(ctx, http.MethodPost, "/api/v1/groups", nil, post, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// FindGroups returns the names of groups starting with prefix, for
// completion.
func (c *Client) FindGroups(ctx context.Context, prefix string) []string {
	if !c.allowCompletion() {
		return nil
	}
	groups, err := c.ListGroups(ctx, prefixFilter("groupname", prefix)...)
	if err != nil {
		log.Warn("failed to fetch groups for autocomplete", "err", err)
		return nil
	}
	names := make([]string, len(groups))
	for i, group := range groups {
		names[i] = group.Groupname
	}
	return names
}

// prefixFilter builds the startswith filter for a Find lookup. An empty
// prefix means no filter, which lists everything.
func prefixFilter(key, prefix string) []Filter {
	if prefix == "" {
		return nil
	}
	return []Filter{{Key: key, Operator: "startswith", Value: prefix}}
}
