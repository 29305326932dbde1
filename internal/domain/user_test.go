package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"candidate", RoleCandidate, true},
		{"Candidate", RoleCandidate, true},
		{"RECRUITER", RoleRecruiter, true},
		{" recruiter ", RoleRecruiter, true},
		{"admin", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRoleMatches(t *testing.T) {
	if !RoleCandidate.Matches("CANDIDATE") {
		t.Error("Matches() must be case-insensitive")
	}
	if RoleCandidate.Matches("recruiter") {
		t.Error("Matches() accepted a different role")
	}
}
