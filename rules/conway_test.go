package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"lone live cell dies", 0, true, false},
		{"one neighbor dies", 1, true, false},
		{"two neighbors survive", 2, true, true},
		{"two neighbors no birth", 2, false, false},
		{"three neighbors survive", 3, true, true},
		{"three neighbors birth", 3, false, true},
		{"four neighbors die", 4, true, false},
		{"four neighbors no birth", 4, false, false},
		{"eight neighbors die", 8, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Fatalf("ApplyConwayRules(%d, %v) = %v, want %v",
					tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}
