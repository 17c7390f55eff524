package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// General switches to scientific notation outside [generalSmall, generalLarge).
const (
	generalLarge = 1e11
	generalSmall = 1e-4
)

// renderGeneral renders v the way the General format does, whatever its type.
func renderGeneral(v any) Result {
	switch val := v.(type) {
	case bool:
		return Result{Text: boolText(val), Align: AlignCenter}
	case string:
		return Result{Text: val, Align: AlignLeft}
	case float64:
		if r, ok := nonFinite(val); ok {
			return r
		}
		return Result{Text: generalNumber(val), IsNegative: val < 0, Align: AlignRight}
	}
	return Result{Text: fmt.Sprint(v), Align: AlignLeft}
}

// generalNumber formats a finite number with at most ten significant digits,
// or six in scientific form.
func generalNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	sign := ""
	if v < 0 {
		sign = "-"
	}
	a := math.Abs(v)

	if a >= generalLarge || a < generalSmall {
		return sign + generalScientific(a)
	}
	if a == math.Trunc(a) {
		return sign + strconv.FormatFloat(a, 'f', -1, 64)
	}
	s := strconv.FormatFloat(a, 'g', 10, 64)
	if strings.ContainsAny(s, "eE") {
		return sign + strconv.FormatFloat(a, 'f', -1, 64)
	}
	return sign + trimZeros(s)
}

// generalScientific renders a positive number as {mantissa}E{sign}{exp}.
// strconv does the rounding so subnormal values keep their digits.
func generalScientific(a float64) string {
	m, e, _ := strings.Cut(strconv.FormatFloat(a, 'e', 5, 64), "e")
	exp, _ := strconv.Atoi(e)
	sign := ""
	if exp >= 0 {
		sign = "+"
	}
	return trimZeros(m) + "E" + sign + strconv.Itoa(exp)
}

// trimZeros strips trailing zeros after a decimal point, and the point
// itself when nothing follows it.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
