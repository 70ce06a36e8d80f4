package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". The leading # is optional.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Colors returns the parsed fish and shark colors.
func (r RenderConfig) Colors() (fish, shark color.RGBA, err error) {
	if fish, err = ParseHexColor(r.FishColor); err != nil {
		return fish, shark, fmt.Errorf("fish_color: %w", err)
	}
	if shark, err = ParseHexColor(r.SharkColor); err != nil {
		return fish, shark, fmt.Errorf("shark_color: %w", err)
	}
	return fish, shark, nil
}
