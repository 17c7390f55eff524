package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TsubasaBE/go-cellfmt/locale"
)

var (
	decOne = decimal.NewFromInt(1)
	decTen = decimal.NewFromInt(10)
)

// magnitude returns the value a section formats and whether a minus sign
// must be added.  The negative section carries its own sign in its literals,
// so it always sees |v|.
func magnitude(v float64, sec *Section) (float64, bool) {
	if sec.IsNegative {
		return math.Abs(v), false
	}
	if v < 0 {
		return -v, true
	}
	return v, false
}

// signed prefixes "-" to s unless every digit in digits is zero.
func signed(s, digits string, neg bool) string {
	if !neg || strings.Trim(digits, "0., ") == "" {
		return s
	}
	return "-" + s
}

// ── standard numbers ──────────────────────────────────────────────────────────

// renderStandard renders v with a fixed, grouped or percent section.
func renderStandard(v float64, sec *Section, loc locale.Locale) string {
	val, neg := magnitude(v, sec)
	if sec.HasPercent {
		val *= 100
	}
	for i := 0; i < sec.Scale; i++ {
		val /= 1000
	}
	if math.IsInf(val, 0) {
		return signed("∞", "1", neg)
	}

	places := sec.Decimal.Total()
	fixed := decimal.NewFromFloat(val).Round(int32(places)).StringFixed(int32(places))
	intDigits, decDigits, _ := strings.Cut(fixed, ".")

	intStr := formatInteger(intDigits, sec, loc)
	decStr := formatDecimals(decDigits, sec.Decimal)

	var (
		sb       strings.Builder
		wroteInt bool
		sawDigit bool
	)
	writeInt := func() {
		if !wroteInt {
			sb.WriteString(intStr)
			wroteInt = true
		}
	}
	for _, tok := range sec.Tokens {
		switch tok.Kind {
		case TokenDigit:
			sawDigit = true
			writeInt()
		case TokenDecimalPoint:
			writeInt()
			if places > 0 {
				sb.WriteString(loc.DecimalSeparator)
				sb.WriteString(decStr)
			}
		case TokenPercent:
			sb.WriteString("%")
		case TokenCurrency:
			sb.WriteString(currencyText(tok, loc))
		case TokenLiteral, TokenFill:
			sb.WriteString(tok.Text)
		case TokenSkip:
			sb.WriteString(" ")
		}
	}
	if !sawDigit {
		if sb.Len() > 0 {
			// Literal-only section: no number, so no sign either.
			return sb.String()
		}
		sb.WriteString(intDigits)
		if places > 0 {
			sb.WriteString(loc.DecimalSeparator + decStr)
		}
	}
	return signed(sb.String(), intDigits+decDigits, neg)
}

// formatInteger pads and groups the integer digits of a rounded value.
func formatInteger(digits string, sec *Section, loc locale.Locale) string {
	if n := sec.Integer.Zeros - len(digits); n > 0 {
		digits = strings.Repeat("0", n) + digits
	}
	if sec.HasThousands && len(digits) > 3 {
		digits = group(digits, loc.ThousandsSeparator)
	}
	if sec.Integer.Questions > 0 {
		if n := sec.Integer.Total() - len([]rune(digits)); n > 0 {
			digits = strings.Repeat(" ", n) + digits
		}
	}
	return digits
}

// group inserts sep between every three digits counting from the right.
func group(digits, sep string) string {
	var sb strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	sb.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		sb.WriteString(sep)
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// formatDecimals trims optional trailing zeros and space-pads '?' positions.
func formatDecimals(digits string, dc DigitCounts) string {
	for len(digits) > dc.Zeros && strings.HasSuffix(digits, "0") {
		digits = digits[:len(digits)-1]
	}
	if dc.Questions > 0 && len(digits) < dc.Total() {
		digits += strings.Repeat(" ", dc.Total()-len(digits))
	}
	return digits
}

// ── scientific ────────────────────────────────────────────────────────────────

// renderScientific renders v as {mantissa}E{sign}{exponent}.  Literal tokens
// around the mantissa are kept.
func renderScientific(v float64, sec *Section, loc locale.Locale) string {
	val, neg := magnitude(v, sec)
	if sec.HasPercent {
		val *= 100
	}
	if math.IsInf(val, 0) {
		return signed("∞", "1", neg)
	}
	places := int32(sec.Decimal.Zeros + sec.Decimal.Hashes)

	exp := 0
	mant := decimal.Zero
	if val != 0 {
		d := decimal.NewFromFloat(val)
		exp = int(math.Floor(math.Log10(val)))
		mant = d.Shift(int32(-exp))
		if mant.LessThan(decOne) {
			exp--
			mant = d.Shift(int32(-exp))
		}
		mant = mant.Round(places)
		if mant.GreaterThanOrEqual(decTen) {
			exp++
			mant = d.Shift(int32(-exp)).Round(places)
		}
	}
	mantStr := mant.StringFixed(places)
	if loc.DecimalSeparator != "." {
		mantStr = strings.Replace(mantStr, ".", loc.DecimalSeparator, 1)
	}

	var (
		sb        strings.Builder
		wroteMant bool
		afterExp  bool
	)
	for _, tok := range sec.Tokens {
		switch tok.Kind {
		case TokenDigit, TokenDecimalPoint:
			if !afterExp && !wroteMant {
				sb.WriteString(mantStr)
				wroteMant = true
			}
		case TokenScientific:
			if !wroteMant {
				sb.WriteString(mantStr)
				wroteMant = true
			}
			sb.WriteString(exponentText(exp, tok.Sign, exponentWidth(sec)))
			afterExp = true
		case TokenPercent:
			sb.WriteString("%")
		case TokenCurrency:
			sb.WriteString(currencyText(tok, loc))
		case TokenLiteral, TokenFill:
			sb.WriteString(tok.Text)
		case TokenSkip:
			sb.WriteString(" ")
		}
	}
	return signed(sb.String(), mantStr, neg)
}

// exponentWidth counts the digit placeholders after the scientific marker.
func exponentWidth(sec *Section) int {
	n, after := 0, false
	for _, tok := range sec.Tokens {
		switch {
		case tok.Kind == TokenScientific:
			after = true
		case after && tok.Kind == TokenDigit:
			n++
		}
	}
	return n
}

func exponentText(exp int, mode rune, width int) string {
	sign := ""
	switch {
	case exp < 0:
		sign = "-"
	case mode == '+':
		sign = "+"
	}
	digits := strconv.Itoa(abs(exp))
	if n := width - len(digits); n > 0 {
		digits = strings.Repeat("0", n) + digits
	}
	return "E" + sign + digits
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ── fractions ─────────────────────────────────────────────────────────────────

// maxDenominator bounds the denominator search.
const maxDenominator = 99

// renderFraction renders v as a mixed fraction.  Literal tokens before the
// first digit placeholder and after the last one are kept as prefix and
// suffix.  A fraction that approximates to n/n carries into the integer
// part, so 0.999 renders as "1".
func renderFraction(v float64, sec *Section, loc locale.Locale) string {
	val, neg := magnitude(v, sec)
	if math.IsInf(val, 0) {
		return signed("∞", "1", neg)
	}
	whole := math.Floor(val)
	num, den := approximate(val - whole)
	if num == den {
		whole++
		num = 0
	}

	var body string
	w := strconv.FormatFloat(whole, 'f', 0, 64)
	switch {
	case whole > 0 && num > 0:
		body = w + " " + strconv.Itoa(num) + "/" + strconv.Itoa(den)
	case num > 0:
		body = strconv.Itoa(num) + "/" + strconv.Itoa(den)
	case whole > 0:
		body = w
	default:
		body = "0"
	}

	prefix, suffix := fractionAffixes(sec.Tokens, loc)
	return signed(prefix+body+suffix, body, neg)
}

// approximate finds the numerator and denominator in 1..99 closest to frac.
// Ties keep the smallest denominator.
func approximate(frac float64) (int, int) {
	bestNum, bestDen := 0, 1
	bestErr := math.Inf(1)
	for d := 1; d <= maxDenominator; d++ {
		n := math.Round(frac * float64(d))
		if e := math.Abs(frac - n/float64(d)); e < bestErr {
			bestNum, bestDen, bestErr = int(n), d, e
		}
	}
	return bestNum, bestDen
}

func fractionAffixes(tokens []Token, loc locale.Locale) (string, string) {
	first, last := -1, -1
	for i, tok := range tokens {
		if tok.Kind == TokenDigit {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return "", ""
	}
	return affixText(tokens[:first], loc), affixText(tokens[last+1:], loc)
}

func affixText(tokens []Token, loc locale.Locale) string {
	var sb strings.Builder
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenLiteral, TokenFill:
			sb.WriteString(tok.Text)
		case TokenSkip:
			sb.WriteString(" ")
		case TokenPercent:
			sb.WriteString("%")
		case TokenCurrency:
			sb.WriteString(currencyText(tok, loc))
		}
	}
	return sb.String()
}
