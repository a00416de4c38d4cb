package vntext

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"đất", "dat"},
		{"Đất", "Dat"},
		{"nước", "nuoc"},
		{"Việt Nam", "Viet Nam"},
		{"THẾ GIỚI", "THE GIOI"},
		{"café", "cafe"},
		{"naïve", "naive"},
		{"hello", "hello"},
		{"", ""},
	}
	for _, tt := range tests {
		got := Normalize(tt.input)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, input := range []string{"đất", "Đất", "thế giới", "chân trời", "hello", ""} {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Thế", "the"},
		{"CHÂN", "chan"},
		{"Đồng", "dong"},
		{"thật", "that"},
	}
	for _, tt := range tests {
		got := Fold(tt.input)
		if got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
