package model

import "testing"

// TestClampScore tests the ClampScore function.
func TestClampScore(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    int
		expected int
	}{
		{"negative clamps to zero", -15, 0},
		{"zero stays zero", 0, 0},
		{"in-range value unchanged", 65, 65},
		{"max stays max", 100, 100},
		{"above max clamps to max", 130, 100},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ClampScore(tc.input); got != tc.expected {
				t.Errorf("ClampScore(%d) = %d, expected %d", tc.input, got, tc.expected)
			}
		})
	}
}
