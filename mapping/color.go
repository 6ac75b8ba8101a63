package mapping

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is one entry of the internal color palette.
type Color struct {
	ID   string // internal code, e.g. "mavi"
	Name string // display label
	RGB  string // search API code, e.g. "0;0;255"
	Hex  string // default swatch
}

// palette is ordered; DefaultFilterOptions keeps this order.
var palette = []Color{
	{ID: "kirmizi", Name: "Kırmızı", RGB: "255;0;0", Hex: "#e74c3c"},
	{ID: "mavi", Name: "Mavi", RGB: "0;0;255", Hex: "#3498db"},
	{ID: "yesil", Name: "Yeşil", RGB: "0;128;0", Hex: "#2ecc71"},
	{ID: "sari", Name: "Sarı", RGB: "255;255;0", Hex: "#f1c40f"},
	{ID: "siyah", Name: "Siyah", RGB: "0;0;0", Hex: "#000000"},
	{ID: "beyaz", Name: "Beyaz", RGB: "255;255;255", Hex: "#ffffff"},
	{ID: "pembe", Name: "Pembe", RGB: "255;192;203", Hex: "#ff69b4"},
	{ID: "mor", Name: "Mor", RGB: "128;0;128", Hex: "#9b59b6"},
	{ID: "turuncu", Name: "Turuncu", RGB: "255;165;0", Hex: "#e67e22"},
	{ID: "gri", Name: "Gri", RGB: "128;128;128", Hex: "#95a5a6"},
	{ID: "kahverengi", Name: "Kahverengi", RGB: "165;42;42", Hex: "#8b4513"},
	{ID: "bej", Name: "Bej", RGB: "245;245;220", Hex: "#f5f5dc"},
	{ID: "lacivert", Name: "Lacivert", RGB: "0;0;128", Hex: "#2c3e50"},
}

var (
	colorsByID  = make(map[string]Color, len(palette))
	colorsByRGB = make(map[string]Color, len(palette))
)

// colorNames maps lowercased external color labels (Turkish and English) to
// internal ids.
var colorNames = map[string]string{
	"kırmızı": "kirmizi", "kirmizi": "kirmizi", "red": "kirmizi",
	"mavi": "mavi", "blue": "mavi", "açık mavi": "mavi",
	"yeşil": "yesil", "yesil": "yesil", "green": "yesil",
	"sarı": "sari", "sari": "sari", "yellow": "sari",
	"siyah": "siyah", "black": "siyah",
	"beyaz": "beyaz", "white": "beyaz", "ekru": "beyaz",
	"pembe": "pembe", "pink": "pembe", "pudra": "pembe",
	"mor": "mor", "purple": "mor", "lila": "mor",
	"turuncu": "turuncu", "orange": "turuncu",
	"gri": "gri", "grey": "gri", "gray": "gri", "antrasit": "gri",
	"kahverengi": "kahverengi", "brown": "kahverengi",
	"bej": "bej", "beige": "bej", "krem": "bej",
	"lacivert": "lacivert", "navy": "lacivert",
}

func init() {
	for _, c := range palette {
		colorsByID[c.ID] = c
		colorsByRGB[c.RGB] = c
	}
}

// Palette returns a copy of the internal color table.
func Palette() []Color {
	out := make([]Color, len(palette))
	copy(out, palette)
	return out
}

// ColorByID looks up an internal color id.
func ColorByID(id string) (Color, bool) {
	c, ok := colorsByID[id]
	return c, ok
}

// ColorIDForRGB maps a search API RGB code ("0;0;255") to the internal id.
func ColorIDForRGB(rgb string) (string, bool) {
	c, ok := colorsByRGB[strings.TrimSpace(rgb)]
	return c.ID, ok
}

// ColorRGB returns the search API code for an internal id, or the id itself
// when it is not in the palette.
func ColorRGB(id string) string {
	if c, ok := colorsByID[id]; ok {
		return c.RGB
	}
	return id
}

// ColorHex returns the default swatch for an internal id.
func ColorHex(id string) (string, bool) {
	c, ok := colorsByID[id]
	return c.Hex, ok
}

// ColorFromName maps an external color label to an internal id. Unknown labels
// are lowercased and passed through.
func ColorFromName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if id, ok := colorNames[key]; ok {
		return id
	}
	if id, ok := ColorIDForRGB(key); ok {
		return id
	}
	return key
}

// HexFromRGB parses an "r;g;b" triplet into "#rrggbb".
func HexFromRGB(rgb string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(rgb), ";")
	if len(parts) != 3 {
		return "", false
	}
	var v [3]uint64
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return "", false
		}
		v[i] = n
	}
	return fmt.Sprintf("#%02x%02x%02x", v[0], v[1], v[2]), true
}
