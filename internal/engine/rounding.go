package engine

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// RoundHalfUp rounds v to the given number of decimal places, with ties
// going away from zero. Rounding works on the shortest decimal form of v,
// so 1.005 becomes 1.01 even though its binary value is slightly below.
// Only presentation code should call this; estimates keep full precision.
func RoundHalfUp(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || places < 0 {
		return v
	}

	neg := v < 0
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	if len(frac) <= places {
		return v
	}

	digits, ok := new(big.Int).SetString(intPart+frac[:places], 10)
	if !ok {
		return v
	}
	if frac[places] >= '5' {
		digits.Add(digits, big.NewInt(1))
	}

	str := digits.String()
	if places > 0 {
		if len(str) <= places {
			str = strings.Repeat("0", places-len(str)+1) + str
		}
		str = str[:len(str)-places] + "." + str[len(str)-places:]
	}

	r, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return v
	}
	if neg {
		r = -r
	}
	return r
}

// Round2 rounds v half-up to two decimal places.
func Round2(v float64) float64 {
	return RoundHalfUp(v, 2)
}

// Format2 renders v with exactly two decimals after half-up rounding.
func Format2(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}

// FormatPercent renders a fraction as a whole percentage, e.g. 0.15 -> "15%".
func FormatPercent(fraction float64) string {
	return strconv.FormatFloat(RoundHalfUp(fraction*100, 0), 'f', 0, 64) + "%"
}
