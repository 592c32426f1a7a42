package users

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"free", RoleFree},
		{"paid", RolePaid},
		{"lifetime", RoleLifetime},
		{"superuser", RoleFree},
		{"", RoleFree},
	}

	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
