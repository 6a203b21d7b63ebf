// Package color decodes hex color strings and measures the distance
// between colors in raw RGB space.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned for hex strings that are not 3 or 6 hex digits.
var ErrInvalidColorFormat = errors.New("invalid color format")

// MaxDistance is the distance between black and white.
var MaxDistance = math.Sqrt(3 * 255 * 255)

// RGB is a color as three 8-bit channels
type RGB struct {
	R, G, B int
}

// HexToRGB decodes "#rgb", "#rrggbb", "rgb" or "rrggbb".
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")

	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("%w: %q has %d digits, want 3 or 6", ErrInvalidColorFormat, hex, len(s))
	}

	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidColorFormat, hex)
	}

	return RGB{
		R: int(n>>16) & 0xff,
		G: int(n>>8) & 0xff,
		B: int(n) & 0xff,
	}, nil
}

// Hex renders the color as "#rrggbb"
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b RGB) float64 {
	dr := float64(a.R - b.R)
	dg := float64(a.G - b.G)
	db := float64(a.B - b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
