package auth

import "testing"

func TestAuthorized(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{"admin on admin route", RoleAdmin, []string{RoleAdmin}, true},
		{"manager on admin route", RoleManager, []string{RoleAdmin}, false},
		{"employee on admin route", RoleEmployee, []string{RoleAdmin}, false},
		{"manager on approval route", RoleManager, []string{RoleAdmin, RoleManager}, true},
		{"employee on approval route", RoleEmployee, []string{RoleAdmin, RoleManager}, false},
		{"employee on open route", RoleEmployee, nil, true},
		{"admin on open route", RoleAdmin, nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Claims{Role: tc.role}
			if got := c.Authorized(tc.allowed...); got != tc.want {
				t.Fatalf("Authorized(%v) with role %s = %v, want %v", tc.allowed, tc.role, got, tc.want)
			}
		})
	}
}
