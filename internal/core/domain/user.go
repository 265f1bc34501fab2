package domain

import (
	"encoding/json"
	"strings"
)

// Role gates every write operation on the dashboard.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User models the authenticated actor behind a dashboard session. It is
// derived once from the login response and immutable for the session's
// lifetime.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user may invoke write operations.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RoleClaim is one entry of the roles array returned by the upstream login
// endpoint. The upstream is inconsistent about the shape: some deployments
// return plain strings ("ROLE_ADMIN"), others objects with a nombre field
// ({"nombre":"ADMIN"}). RoleClaim accepts both and carries the extracted name.
type RoleClaim struct {
	Name string
}

func (r *RoleClaim) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Name = s
		return nil
	}

	var obj struct {
		Nombre string `json:"nombre"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.Name = obj.Nombre
	return nil
}

func (r RoleClaim) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Name)
}

// ResolveRole normalizes the upstream roles array into a single Role. Any
// claim matching an admin marker (ADMIN or ROLE_ADMIN, case-insensitive)
// resolves to RoleAdmin; everything else, including an empty array, resolves
// to RoleUser.
func ResolveRole(claims []RoleClaim) Role {
	for _, c := range claims {
		if isAdminMarker(c.Name) {
			return RoleAdmin
		}
	}
	return RoleUser
}

func isAdminMarker(name string) bool {
	n := strings.ToUpper(strings.TrimSpace(name))
	return n == "ADMIN" || n == "ROLE_ADMIN"
}
