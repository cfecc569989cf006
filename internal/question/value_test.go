package question

import "testing"

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v      float64
		places int
		want   string
	}{
		{42, 0, "42"},
		{42.6, 0, "43"},
		{1.5, 2, "1.50"},
		{0.35, 2, "0.35"},
		{1200, 0, "1200"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v, tt.places); got != tt.want {
			t.Errorf("FormatValue(%v, %d) = %q, want %q", tt.v, tt.places, got, tt.want)
		}
	}
}

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		v        float64
		places   int
		currency string
		units    string
		want     string
	}{
		{1.15, 2, "£", "", "£1.15"},
		{12, 0, "", "stickers", "12 stickers"},
		{7, 0, "", "", "7"},
		{2.5, 2, "£", "stickers", "£2.50"},
	}
	for _, tt := range tests {
		if got := DisplayValue(tt.v, tt.places, tt.currency, tt.units); got != tt.want {
			t.Errorf("DisplayValue(%v, %d, %q, %q) = %q, want %q",
				tt.v, tt.places, tt.currency, tt.units, got, tt.want)
		}
	}
}
