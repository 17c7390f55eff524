package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/TsubasaBE/go-cellfmt/internal/serial"
	"github.com/TsubasaBE/go-cellfmt/locale"
)

// renderDateTime renders serial v with a date/time section.  Elapsed tokens
// read the serial directly; every other component reads the calendar
// breakdown.  Serials past the last representable day render as General.
func renderDateTime(v float64, sec *Section, loc locale.Locale, opts RenderOptions) string {
	if sec.IsNegative {
		v = math.Abs(v)
	}
	if math.Abs(v) >= serial.MaxSerial {
		return generalNumber(v)
	}

	f := serial.Split(v, opts.Date1904, hasSubsecond(sec))
	hour := f.Hour
	if sec.has(TokenAMPM) {
		switch {
		case hour == 0:
			hour = 12
		case hour > 12:
			hour -= 12
		}
	}

	var sb strings.Builder
	for _, tok := range sec.Tokens {
		switch tok.Kind {
		case TokenDate:
			sb.WriteString(dateComponent(tok.Text, f, loc))
		case TokenTime:
			sb.WriteString(timeComponent(tok.Text, hour, f))
		case TokenElapsed:
			sb.WriteString(pad(serial.Elapsed(v, tok.Text[0]), tok.Width))
		case TokenAMPM:
			sb.WriteString(ampm(tok.Text, f.Hour, loc))
		case TokenLiteral, TokenFill:
			sb.WriteString(tok.Text)
		case TokenSkip:
			sb.WriteString(" ")
		case TokenCurrency:
			sb.WriteString(currencyText(tok, loc))
		case TokenDecimalPoint:
			sb.WriteString(".")
		case TokenThousands:
			sb.WriteString(",")
		case TokenFraction:
			sb.WriteString("/")
		case TokenPercent:
			sb.WriteString("%")
		}
	}
	if sb.Len() == 0 {
		return generalNumber(v)
	}
	return sb.String()
}

func hasSubsecond(sec *Section) bool {
	for _, tok := range sec.Tokens {
		if tok.Kind == TokenTime && strings.HasPrefix(tok.Text, "ss.") {
			return true
		}
	}
	return false
}

func dateComponent(pattern string, f serial.Fields, loc locale.Locale) string {
	switch pattern {
	case "yyyy":
		return fmt.Sprintf("%04d", f.Year)
	case "yy":
		return fmt.Sprintf("%02d", f.Year%100)
	case "mmmm":
		return loc.Month(f.Month)
	case "mmm":
		return loc.MonthShort(f.Month)
	case "mm":
		return fmt.Sprintf("%02d", f.Month)
	case "m":
		return strconv.Itoa(f.Month)
	case "dddd":
		return loc.Day(f.Weekday)
	case "ddd":
		return loc.DayShort(f.Weekday)
	case "dd":
		return fmt.Sprintf("%02d", f.Day)
	case "d":
		return strconv.Itoa(f.Day)
	}
	return ""
}

// timeComponent renders a clock field.  hour is already converted to the
// 12-hour clock when the section shows AM/PM.
func timeComponent(pattern string, hour int, f serial.Fields) string {
	switch pattern {
	case "hh":
		return fmt.Sprintf("%02d", hour)
	case "h":
		return strconv.Itoa(hour)
	case "mm":
		return fmt.Sprintf("%02d", f.Minute)
	case "m":
		return strconv.Itoa(f.Minute)
	case "ss":
		return fmt.Sprintf("%02d", f.Second)
	case "s":
		return strconv.Itoa(f.Second)
	case "ss.0":
		return fmt.Sprintf("%02d.%d", f.Second, f.Millisecond/100)
	case "ss.00":
		return fmt.Sprintf("%02d.%02d", f.Second, f.Millisecond/10)
	case "ss.000":
		return fmt.Sprintf("%02d.%03d", f.Second, f.Millisecond)
	}
	return ""
}

// pad zero-pads n to at least width digits, keeping a leading minus sign.
func pad(n int64, width int) string {
	s := strconv.FormatInt(abs64(n), 10)
	if k := width - len(s); k > 0 {
		s = strings.Repeat("0", k) + s
	}
	if n < 0 {
		return "-" + s
	}
	return s
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// ampm renders the designator for a 24-hour clock reading.  The token text
// is "AM/PM", "am/pm", "A/P" or "a/p"; its case selects the case of the
// output and the short forms keep only the first letter.
func ampm(pattern string, hour24 int, loc locale.Locale) string {
	s := loc.AM
	if hour24 >= 12 {
		s = loc.PM
	}
	if pattern[0] == 'a' {
		s = cases.Lower(loc.Tag).String(s)
	} else {
		s = cases.Upper(loc.Tag).String(s)
	}
	if len(pattern) == 3 {
		for _, r := range s {
			return string(r)
		}
	}
	return s
}
