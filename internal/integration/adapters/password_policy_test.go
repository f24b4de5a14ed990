package adapters

import "testing"

func TestPasswordPolicy_IsStrong(t *testing.T) {
	policy := NewPasswordPolicy()

	tests := []struct {
		name     string
		password string
		expected bool
	}{
		{name: "empty", password: "", expected: false},
		{name: "too short", password: "abc", expected: false},
		{name: "lowercase only", password: "abcdef", expected: false},
		{name: "no digit", password: "Abcdefg", expected: false},
		{name: "no uppercase", password: "abcdef1", expected: false},
		{name: "no lowercase", password: "ABCDEF1", expected: false},
		{name: "five characters with all classes", password: "Abc1d", expected: false},
		{name: "exactly six characters", password: "Abcde1", expected: true},
		{name: "typical strong password", password: "Abcdef1", expected: true},
		{name: "symbols are allowed but not required", password: "Ab1!@#", expected: true},
		{name: "long password has no upper bound", password: "Aa1xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", expected: true},
		{name: "non-ASCII letters do not count as upper or lower", password: "ÄÖÜäöü1", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.IsStrong(tt.password); got != tt.expected {
				t.Errorf("IsStrong(%q) = %v, want %v", tt.password, got, tt.expected)
			}
		})
	}
}

func TestPasswordPolicy_RequirementsMessage(t *testing.T) {
	policy := NewPasswordPolicy()

	want := "Password must be at least 6 characters with uppercase, lowercase, and numbers"
	if got := policy.RequirementsMessage(); got != want {
		t.Errorf("RequirementsMessage() = %q, want %q", got, want)
	}
}
