package permissions_test

import (
	"net/http"
	"rideflow/permissions"
	"rideflow/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	table := permissions.Get()
	require.NotNil(t, table)

	tests := []struct {
		name    string
		method  string
		pattern string
		public  bool
		rider   bool
		driver  bool
	}{
		{name: "health", method: http.MethodGet, pattern: "/v1/health", public: true, rider: true, driver: true},
		{name: "calculate fare", method: http.MethodPost, pattern: "/v1/bookings/calculate-fare", public: true, rider: true, driver: true},
		{name: "create booking", method: http.MethodPost, pattern: "/v1/bookings", rider: true},
		{name: "confirm booking", method: http.MethodPut, pattern: "/v1/bookings/{id}/confirm", rider: true},
		{name: "rate booking", method: http.MethodPut, pattern: "/v1/bookings/{id}/rate", rider: true, driver: true},
		{name: "update location", method: http.MethodPut, pattern: "/v1/drivers/location", driver: true},
		{name: "accept booking", method: http.MethodPut, pattern: "/v1/drivers/bookings/{id}/accept", driver: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint, ok := table.Lookup(tt.method, tt.pattern)
			require.True(t, ok)

			assert.Equal(t, tt.public, table.IsPublic(tt.method, tt.pattern))

			if tt.public {
				return
			}

			assert.Equal(t, tt.rider, endpoint.Allows(constant.RoleRider))
			assert.Equal(t, tt.driver, endpoint.Allows(constant.RoleDriver))
		})
	}
}

func TestLookupUnlisted(t *testing.T) {
	table := permissions.Get()
	require.NotNil(t, table)

	_, ok := table.Lookup(http.MethodGet, "/v1/bookings/{id}")
	assert.False(t, ok)
	assert.False(t, table.IsPublic(http.MethodGet, "/v1/bookings/{id}"))
}

func TestLoad(t *testing.T) {
	t.Run("unknown role", func(t *testing.T) {
		_, err := permissions.Load([]byte(`{"endpoints":[{"path":"/v1/x","method":"GET","permissions":["admin"]}]}`))
		assert.ErrorContains(t, err, `unknown role "admin"`)
	})

	t.Run("duplicate row", func(t *testing.T) {
		_, err := permissions.Load([]byte(`{"endpoints":[
			{"path":"/v1/x","method":"GET","skip":true},
			{"path":"/v1/x","method":"get","skip":true}
		]}`))
		assert.ErrorContains(t, err, "duplicate permission for GET /v1/x")
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := permissions.Load([]byte(`{`))
		assert.Error(t, err)
	})

	t.Run("empty roles admit everyone", func(t *testing.T) {
		table, err := permissions.Load([]byte(`{"endpoints":[{"path":"/v1/x","method":"GET"}]}`))
		require.NoError(t, err)

		endpoint, ok := table.Lookup(http.MethodGet, "/v1/x")
		require.True(t, ok)
		assert.True(t, endpoint.Allows(constant.RoleDriver))
	})
}
