//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// GPA is a grade-point average held as exact hundredths, or Undefined when
// there were no credit units to average over. The zero value is Undefined.
type GPA struct {
	hundredths int
	defined    bool
}

// maxHundredths is 5.00, the top of the scale
const maxHundredths = 500

// UndefinedGPA is the result of averaging over zero units
var UndefinedGPA = GPA{}

// GPAFromHundredths builds a defined GPA, e.g. 420 -> 4.20
func GPAFromHundredths(h int) GPA {
	return GPA{hundredths: h, defined: true}
}

// IsDefined reports whether the GPA carries a value
func (g GPA) IsDefined() bool {
	return g.defined
}

// Hundredths returns the value in hundredths. Zero when undefined.
func (g GPA) Hundredths() int {
	return g.hundredths
}

// Float64 returns the value as a float and false when undefined
func (g GPA) Float64() (float64, bool) {
	if !g.defined {
		return 0, false
	}
	return float64(g.hundredths) / 100, true
}

// String renders the GPA with exactly two decimals, or "undefined"
func (g GPA) String() string {
	if !g.defined {
		return "undefined"
	}
	return fmt.Sprintf("%d.%02d", g.hundredths/100, g.hundredths%100)
}

// MarshalJSON writes a two-decimal number, or null when undefined
func (g GPA) MarshalJSON() ([]byte, error) {
	if !g.defined {
		return []byte("null"), nil
	}
	return []byte(g.String()), nil
}

// UnmarshalJSON accepts null or a number in [0, 5]; numbers are rounded half-up to hundredths
func (g *GPA) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*g = UndefinedGPA
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid GPA value %s: %w", data, err)
	}
	h := int(math.Round(v * 100))
	if h < 0 || h > maxHundredths {
		return fmt.Errorf("invalid GPA value %s: must be between 0.00 and 5.00", data)
	}
	*g = GPAFromHundredths(h)
	return nil
}
