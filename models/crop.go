package models

import "strings"

// CropRecord is one cultivated crop on the installation.
type CropRecord struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	Area       float64 `json:"area"`
	SowingDate string  `json:"sowingDate"`
	Status     string  `json:"status,omitempty"`
}

// cropIcons maps well-known crop names to their display icon.
var cropIcons = map[string]string{
	"onion":     "🧅",
	"tomato":    "🍅",
	"grapes":    "🍇",
	"sugarcane": "🌿",
	"wheat":     "🌾",
	"rice":      "🌾",
}

// CropIcon returns the icon for a crop name, falling back to a generic
// seedling for names outside the lookup.
func CropIcon(name string) string {
	if icon, ok := cropIcons[strings.ToLower(strings.TrimSpace(name))]; ok {
		return icon
	}
	return "🌱"
}

// CropUpdate is a partial edit of a crop record.
type CropUpdate struct {
	Name       *string  `json:"name"`
	Area       *float64 `json:"area"`
	SowingDate *string  `json:"sowingDate"`
	Status     *string  `json:"status"`
}

// CropShare is one crop's slice of the total cultivated area.
type CropShare struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Icon    string  `json:"icon"`
	Area    float64 `json:"area"`
	Percent float64 `json:"percent"`
}

// CropAnalytics is the computed distribution over all crop records.
type CropAnalytics struct {
	TotalArea float64     `json:"totalArea"`
	Shares    []CropShare `json:"shares"`
}
