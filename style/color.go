package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "fmt"

// ColorT is an RGBA color attribute value.
type ColorT struct {
	R, G, B, A uint8
	set        bool
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) ColorT {
	return ColorT{R: r, G: g, B: b, A: 0xff, set: true}
}

// RGBA creates a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) ColorT {
	return ColorT{R: r, G: g, B: b, A: a, set: true}
}

// IsSet denotes whether the color has been assigned a value.
func (c ColorT) IsSet() bool {
	return c.set
}

func (c ColorT) String() string {
	if !c.set {
		return "<unset>"
	}
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// namedColors is the set of color names this subset understands: the 16
// basic CSS color keywords plus `transparent`.
var namedColors = map[string]ColorT{
	"black":       RGB(0x00, 0x00, 0x00),
	"silver":      RGB(0xc0, 0xc0, 0xc0),
	"gray":        RGB(0x80, 0x80, 0x80),
	"white":       RGB(0xff, 0xff, 0xff),
	"maroon":      RGB(0x80, 0x00, 0x00),
	"red":         RGB(0xff, 0x00, 0x00),
	"purple":      RGB(0x80, 0x00, 0x80),
	"fuchsia":     RGB(0xff, 0x00, 0xff),
	"green":       RGB(0x00, 0x80, 0x00),
	"lime":        RGB(0x00, 0xff, 0x00),
	"olive":       RGB(0x80, 0x80, 0x00),
	"yellow":      RGB(0xff, 0xff, 0x00),
	"navy":        RGB(0x00, 0x00, 0x80),
	"blue":        RGB(0x00, 0x00, 0xff),
	"teal":        RGB(0x00, 0x80, 0x80),
	"aqua":        RGB(0x00, 0xff, 0xff),
	"transparent": RGBA(0x00, 0x00, 0x00, 0x00),
}

// ColorFromToken converts a lexical token into a color value. Accepted are
// hash tokens with 3, 6 or 8 hex digits and named color identifiers.
func ColorFromToken(t Token) (ColorT, error) {
	switch t.Type {
	case Hash:
		return colorFromHex(t.Text)
	case Identifier:
		if c, ok := namedColors[t.Text]; ok {
			return c, nil
		}
		return ColorT{}, fmt.Errorf("unknown color name '%s'", t.Text)
	}
	return ColorT{}, fmt.Errorf("cannot interpret '%s' as a color", t)
}

func colorFromHex(hex string) (ColorT, error) {
	digits := make([]uint8, 0, len(hex))
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return ColorT{}, fmt.Errorf("invalid hex color '#%s'", hex)
		}
		digits = append(digits, d)
	}
	switch len(digits) {
	case 3: // #rgb, each digit doubled
		return RGB(digits[0]*0x11, digits[1]*0x11, digits[2]*0x11), nil
	case 6:
		return RGB(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]), nil
	case 8:
		return RGBA(digits[0]<<4|digits[1], digits[2]<<4|digits[3],
			digits[4]<<4|digits[5], digits[6]<<4|digits[7]), nil
	}
	return ColorT{}, fmt.Errorf("invalid hex color '#%s'", hex)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
