package graphics

import (
	"fmt"
	"math"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is a straight-alpha color stored as ARGB (0xAARRGGBB). It
// implements image/color.Color so it can be drawn directly.
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Components returns the red, green, blue and alpha bytes.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(unitToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// Lerp blends every channel of c toward other. t is clamped to [0, 1], so
// overshooting animation values never wrap a channel.
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	r1, g1, b1, a1 := c.Components()
	r2, g2, b2, a2 := other.Components()
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return RGBA8(mix(r1, r2), mix(g1, g2), mix(b1, b2), mix(a1, a2))
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	r, g, b, _ := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBA implements image/color.Color, returning alpha-premultiplied
// 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.Components()
	a = uint32(a8) * 0x101
	r = uint32(r8) * 0x101 * a / 0xFFFF
	g = uint32(g8) * 0x101 * a / 0xFFFF
	b = uint32(b8) * 0x101 * a / 0xFFFF
	return r, g, b, a
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * maxByte))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
