package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0100
)

// DimenT is an option type for style dimensions: either unset, `auto`, an
// absolute length or a percentage.
//
// Absolute lengths are held in device units of package tyse/core/dimen.
// CSS pixels map onto points 1:1; the host applies any device scale when
// it consumes the attribute.
type DimenT struct {
	d       dimen.DU
	percent float64
	flags   uint32
}

/*
type DimenT
	= None
	| Auto
	| JustDimen dimen
	| Pct percentage
*/

// Auto creates a dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// JustDimen creates a dimension with a fixed value of x device units.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Px creates a dimension of x CSS pixels.
func Px(x float64) DimenT {
	return JustDimen(dimen.DU(x * float64(dimen.PT)))
}

// Pct creates a %-relative dimension.
//
// Percentages are held as float64 rather than tyse's percent type: the
// grammar admits fractional percentages such as 45.67%.
func Pct(x float64) DimenT {
	return DimenT{percent: x, flags: dimenPercent}
}

// IsNone denotes an unset dimension (the zero value).
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsAuto denotes a dimension of value `auto`.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// DU returns the fixed value of an absolute dimension, in device units.
func (d DimenT) DU() (dimen.DU, bool) {
	if d.flags&kindMask == dimenAbsolute {
		return d.d, true
	}
	return 0, false
}

// Percent returns the value of a %-relative dimension.
func (d DimenT) Percent() (float64, bool) {
	if d.flags&dimenPercent > 0 {
		return d.percent, true
	}
	return 0, false
}

func (d DimenT) String() string {
	switch {
	case d.IsAuto():
		return "auto"
	case d.flags&dimenPercent > 0:
		return fmt.Sprintf("%s%%", formatNumber(d.percent))
	case d.flags&kindMask == dimenAbsolute:
		return d.d.String()
	}
	return "<unset>"
}

// DimenFromToken converts a lexical token into a dimension value.
// Accepted are dimension tokens, percentage tokens, plain numbers
// (interpreted as pixels) and the identifier `auto`.
func DimenFromToken(t Token) (DimenT, error) {
	switch t.Type {
	case Dimension, Number:
		return Px(t.Number), nil
	case Percentage:
		return Pct(t.Number), nil
	case Identifier:
		if t.Text == "auto" {
			return Auto(), nil
		}
	}
	return DimenT{}, fmt.Errorf("cannot interpret '%s' as a dimension", t)
}

// --- Rects -----------------------------------------------------------------

// RectT holds one dimension per box edge, as produced by box-spacing
// shorthands like `margin` or `padding`.
type RectT struct {
	Top    DimenT
	Right  DimenT
	Bottom DimenT
	Left   DimenT
}

// RectFromTokens builds a rect from 1, 2 or 4 dimension-valued tokens,
// distributed the way CSS box shorthands are:
//
//	1 value:  all four edges
//	2 values: (vertical, horizontal)
//	4 values: (top, right, bottom, left)
//
// Any other arity is an error.
func RectFromTokens(vals PropertyValues) (RectT, error) {
	edges := make([]DimenT, 0, 4)
	for _, t := range vals {
		d, err := DimenFromToken(t)
		if err != nil {
			return RectT{}, err
		}
		edges = append(edges, d)
	}
	switch len(edges) {
	case 1:
		return RectT{edges[0], edges[0], edges[0], edges[0]}, nil
	case 2:
		return RectT{edges[0], edges[1], edges[0], edges[1]}, nil
	case 4:
		return RectT{edges[0], edges[1], edges[2], edges[3]}, nil
	}
	return RectT{}, fmt.Errorf("expected 1, 2 or 4 values for box shorthand, have %d", len(edges))
}

func (r RectT) String() string {
	return fmt.Sprintf("(%s %s %s %s)", r.Top, r.Right, r.Bottom, r.Left)
}
