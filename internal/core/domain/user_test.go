package domain

import (
	"encoding/json"
	"testing"
)

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name  string
		roles string // JSON array as returned by the upstream
		want  Role
	}{
		{"string admin markers", `["ROLE_ADMIN","ADMIN"]`, RoleAdmin},
		{"plain user", `["USER"]`, RoleUser},
		{"role-prefixed user", `["ROLE_USER","USER"]`, RoleUser},
		{"object with nombre admin", `[{"nombre":"ADMIN"}]`, RoleAdmin},
		{"object with nombre role_admin", `[{"nombre":"ROLE_ADMIN"}]`, RoleAdmin},
		{"lowercase marker", `["admin"]`, RoleAdmin},
		{"empty array", `[]`, RoleUser},
		{"mixed shapes", `["USER",{"nombre":"ADMIN"}]`, RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var claims []RoleClaim
			if err := json.Unmarshal([]byte(tt.roles), &claims); err != nil {
				t.Fatalf("unmarshal roles: %v", err)
			}
			if got := ResolveRole(claims); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestResolveRole_AbsentRoles(t *testing.T) {
	if got := ResolveRole(nil); got != RoleUser {
		t.Fatalf("expected USER for absent roles, got %s", got)
	}
}

func TestRoleClaim_RejectsMalformedEntry(t *testing.T) {
	var claims []RoleClaim
	if err := json.Unmarshal([]byte(`[42]`), &claims); err == nil {
		t.Fatalf("expected error for numeric role entry")
	}
}
