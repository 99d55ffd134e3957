package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// RouteClass names a group of routes sharing the same role policy.
type RouteClass string

const (
	// AdminOnly routes are reachable by administrators alone.
	AdminOnly RouteClass = "admin_only"
	// Staff routes are reachable by any back-office role.
	Staff RouteClass = "staff"
)

type PermissionData struct {
	Classes map[string][]string `json:"classes"`
}

// RolesFor returns the roles allowed on a route class. Unknown classes
// resolve to no roles, which denies everything.
func (r *PermissionData) RolesFor(class RouteClass) []string {
	return r.Classes[string(class)]
}

func (r *PermissionData) Allowed(class RouteClass, role string) bool {
	return slices.Contains(r.RolesFor(class), role)
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("classes", len(permissions.Classes)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
