package models

import "testing"

func TestCropIcon(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Wheat", "🌾"},
		{"wheat", "🌾"},
		{"  Tomato ", "🍅"},
		{"Onion", "🧅"},
		{"Grapes", "🍇"},
		{"Sugarcane", "🌿"},
		{"Quinoa", "🌱"},
		{"", "🌱"},
	}
	for _, tt := range tests {
		if got := CropIcon(tt.name); got != tt.want {
			t.Errorf("CropIcon(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
