package commands

import "testing"

func TestNormalizeVolume(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "percentage input", input: 75, want: 0.75},
		{name: "fraction passes through", input: 0.5, want: 0.5},
		{name: "percentage above 100 clamps to full", input: 150, want: 1.0},
		{name: "negative clamps to zero", input: -10, want: 0.0},
		{name: "exactly one stays one", input: 1.0, want: 1.0},
		{name: "zero stays zero", input: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeVolume(tt.input); got != tt.want {
				t.Errorf("normalizeVolume(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClampPan(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{input: -2.0, want: -1.0},
		{input: 1.5, want: 1.0},
		{input: 0.3, want: 0.3},
		{input: 0, want: 0},
	}

	for _, tt := range tests {
		if got := clampPan(tt.input); got != tt.want {
			t.Errorf("clampPan(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPanLabel(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{input: 0, want: "center"},
		{input: 0.5, want: "50% right"},
		{input: -0.3, want: "30% left"},
		{input: 1.0, want: "100% right"},
		{input: -1.0, want: "100% left"},
	}

	for _, tt := range tests {
		if got := panLabel(tt.input); got != tt.want {
			t.Errorf("panLabel(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
