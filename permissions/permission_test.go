package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := Get()
	require.NotNil(t, data)

	assert.ElementsMatch(t, []string{"Admin"}, data.RolesFor(AdminOnly))
	assert.ElementsMatch(t, []string{"Admin", "Receptionist", "Manager"}, data.RolesFor(Staff))
}

func TestAllowed(t *testing.T) {
	data := Get()
	require.NotNil(t, data)

	tests := []struct {
		name    string
		class   RouteClass
		role    string
		allowed bool
	}{
		{name: "admin on admin only", class: AdminOnly, role: "Admin", allowed: true},
		{name: "receptionist on admin only", class: AdminOnly, role: "Receptionist", allowed: false},
		{name: "manager on staff", class: Staff, role: "Manager", allowed: true},
		{name: "unknown role", class: Staff, role: "Guest", allowed: false},
		{name: "unknown class", class: RouteClass("nope"), role: "Admin", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, data.Allowed(tt.class, tt.role))
		})
	}
}
