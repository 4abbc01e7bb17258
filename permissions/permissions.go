// Package permissions holds the route access table embedded from permissions.json.
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"rideflow/shared/constant"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var embedded []byte

// Endpoint is one row of the table. Public endpoints skip authentication entirely;
// otherwise Roles lists who may call it, and an empty list admits any signed-in user.
type Endpoint struct {
	Path   string   `json:"path"`
	Method string   `json:"method"`
	Roles  []string `json:"permissions"`
	Public bool     `json:"skip"`
}

// Allows reports whether role may call the endpoint.
func (e Endpoint) Allows(role string) bool {
	return len(e.Roles) == 0 || slices.Contains(e.Roles, role)
}

type Table struct {
	Endpoints []Endpoint `json:"endpoints"`
	// Disabled turns role checks off for every route. Authentication still applies.
	Disabled bool `json:"skip"`

	index map[string]Endpoint
}

// Lookup finds the endpoint registered for a chi route pattern such as /v1/bookings/{id}.
func (t *Table) Lookup(method, pattern string) (Endpoint, bool) {
	endpoint, ok := t.index[key(method, pattern)]

	return endpoint, ok
}

// IsPublic reports whether the route needs no token.
func (t *Table) IsPublic(method, pattern string) bool {
	endpoint, ok := t.Lookup(method, pattern)

	return ok && endpoint.Public
}

// Load parses a table and rejects duplicate rows and unknown roles.
func Load(data []byte) (*Table, error) {
	var table Table

	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decoding permissions: %w", err)
	}

	table.index = make(map[string]Endpoint, len(table.Endpoints))

	for _, endpoint := range table.Endpoints {
		k := key(endpoint.Method, endpoint.Path)
		if _, exists := table.index[k]; exists {
			return nil, fmt.Errorf("duplicate permission for %s", k)
		}

		for _, role := range endpoint.Roles {
			if role != constant.RoleRider && role != constant.RoleDriver {
				return nil, fmt.Errorf("unknown role %q for %s", role, k)
			}
		}

		table.index[k] = endpoint
	}

	return &table, nil
}

// Get loads the embedded table. A broken table yields nil, which the RBAC middleware treats as deny-all.
func Get() *Table {
	table, err := Load(embedded)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(table.Endpoints)).Msg("Successfully loaded embedded permissions")

	return table
}

func key(method, path string) string {
	return strings.ToUpper(method) + " " + path
}
