package service

import "testing"

func TestClassifyEmploymentType(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"regular", EmploymentRegular},
		{"REGULAR", EmploymentRegular},
		{"Part-Time", EmploymentPartTime},
		{"part time", EmploymentPartTime},
		{"parttime", EmploymentPartTime},
		{"Apprenticeship", EmploymentApprenticeship},
		{" apprentice ", EmploymentApprenticeship},
	}

	for _, c := range cases {
		got, err := ClassifyEmploymentType(c.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%q: expected %s, got %s", c.in, c.want, got)
		}
	}

	if _, err := ClassifyEmploymentType("contractor"); err == nil {
		t.Fatal("expected error for unknown type")
	}
}
