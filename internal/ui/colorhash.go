package ui

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Saturation candidates for author colors. Lightness is fixed so every
// name stays readable on a dark background; hue and saturation carry the
// per-author variation.
var authorSaturations = [3]float64{0.35, 0.50, 0.65}

const authorLightness = 0.70

// AuthorColor maps a stable author identifier to a deterministic color.
// The identifier is hashed, the hash picks a hue on a 359-step wheel and
// one of three saturation levels, and the HSL triple is converted to RGB.
// The same identifier yields the same color in every session on every
// machine, so a given person stays visually consistent without any shared
// state. Distinct identifiers may collide; that is acceptable.
func AuthorColor(id string) color.Color {
	return lipgloss.Color(authorHex(id))
}

// authorHex computes the hex color string for an author identifier.
func authorHex(id string) string {
	sum := sha256.Sum256([]byte(id))
	hash := binary.BigEndian.Uint32(sum[:4])

	hue := float64(hash % 359)
	hash /= 360
	sat := authorSaturations[hash%3]

	c := colorful.Hsl(hue, sat, authorLightness)
	// Truncate rather than round; "abcd1234" must stay #C4CD97.
	r := uint8(c.R * 255.0)
	g := uint8(c.G * 255.0)
	b := uint8(c.B * 255.0)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
