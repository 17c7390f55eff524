// Package numfmt renders cell values to display text using spreadsheet
// number format codes such as "#,##0.00", "0.00%", "[Red](0)" or
// "yyyy-mm-dd".
//
// A format code is split into up to four sections (positive, negative, zero,
// text), each scanned into a token stream by a hand-written lexer.  Parsing is
// total: anything the lexer does not understand becomes literal text.  The
// [Engine] memoizes parsed formats and holds the active [locale.Locale];
// [Render] is the pure rendering function underneath it.
//
// Rendering never fails.  NaN renders as "#NUM!" and infinities as "∞" and
// "-∞"; callers should display these like any other text.
package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/TsubasaBE/go-cellfmt/internal/serial"
	"github.com/TsubasaBE/go-cellfmt/locale"
)

// RenderOptions carries workbook-level settings that affect rendering.
type RenderOptions struct {
	// Date1904 selects the 1904 date system.
	Date1904 bool
}

// Render formats v with pf using loc.  It is a pure function of its inputs.
//
// The dynamic type of v should be nil, bool, string, float64, any other Go
// integer or float type, [decimal.Decimal] or [time.Time] (converted to a
// serial).  Any other type is rendered as text via [fmt.Sprint].  A nil pf
// renders as General.
func Render(v any, pf *ParsedFormat, loc locale.Locale, opts RenderOptions) Result {
	if v == nil {
		return Result{Align: AlignRight}
	}
	if pf == nil {
		pf = &ParsedFormat{IsGeneral: true}
	}
	v = normalize(v, opts)

	if pf.IsGeneral {
		return renderGeneral(v)
	}
	if pf.IsText {
		return renderText(stringify(v), pf)
	}

	switch val := v.(type) {
	case bool:
		return Result{Text: boolText(val), Align: AlignCenter}
	case string:
		if f, ok := parseNumber(val); ok && !pf.IsDateTime {
			return renderNumeric(f, pf, loc)
		}
		return renderText(val, pf)
	case float64:
		if r, ok := nonFinite(val); ok {
			return r
		}
		if pf.IsDateTime {
			sec := selectSection(pf.Sections, val)
			return Result{
				Text:       renderDateTime(val, sec, loc, opts),
				Color:      sec.Color,
				IsNegative: val < 0,
				Align:      AlignRight,
			}
		}
		return renderNumeric(val, pf, loc)
	}
	return renderText(stringify(v), pf)
}

// normalize converts the numeric Go types and time.Time to float64.
func normalize(v any, opts RenderOptions) any {
	switch val := v.(type) {
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int8:
		return float64(val)
	case int16:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case uint:
		return float64(val)
	case uint8:
		return float64(val)
	case uint16:
		return float64(val)
	case uint32:
		return float64(val)
	case uint64:
		return float64(val)
	case decimal.Decimal:
		return val.InexactFloat64()
	case time.Time:
		return serial.FromTime(val, opts.Date1904)
	}
	return v
}

// parseNumber accepts a string holding a finite decimal number.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// nonFinite returns the sentinel result for NaN and ±Inf.
func nonFinite(v float64) (Result, bool) {
	switch {
	case math.IsNaN(v):
		return Result{Text: "#NUM!", Align: AlignRight}, true
	case math.IsInf(v, 1):
		return Result{Text: "∞", Align: AlignRight}, true
	case math.IsInf(v, -1):
		return Result{Text: "-∞", IsNegative: true, Align: AlignRight}, true
	}
	return Result{}, false
}

func boolText(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// stringify is the raw text form of a value, used by the Text algorithm.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return boolText(val)
	case float64:
		return plainNumber(val)
	}
	return fmt.Sprint(v)
}

// plainNumber prints f the shortest way that round-trips, switching to
// exponent form outside [1e-7, 1e21).
func plainNumber(f float64) string {
	if a := math.Abs(f); a == 0 || a >= 1e-7 && a < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ── section selection ─────────────────────────────────────────────────────────

// selectSection picks the section that applies to v.  A section whose
// condition matches wins; otherwise:
//
//	1 section  → applies to all values
//	2 sections → [0]=positive+zero  [1]=negative
//	3+ sections → [0]=positive  [1]=negative  [2]=zero
func selectSection(sections []Section, v float64) *Section {
	if len(sections) == 1 {
		return &sections[0]
	}
	for i := range sections {
		if c := sections[i].Condition; c != nil && c.Match(v) {
			return &sections[i]
		}
	}
	switch {
	case v > 0:
		return &sections[0]
	case v < 0:
		return &sections[1]
	case len(sections) > 2:
		return &sections[2]
	}
	return &sections[0]
}

// renderNumeric dispatches a finite number to the scientific, fraction or
// standard renderer of its section.
func renderNumeric(v float64, pf *ParsedFormat, loc locale.Locale) Result {
	if r, ok := nonFinite(v); ok {
		return r
	}
	sec := selectSection(pf.Sections, v)
	var text string
	switch {
	case sec.IsScientific:
		text = renderScientific(v, sec, loc)
	case sec.IsFraction:
		text = renderFraction(v, sec, loc)
	default:
		text = renderStandard(v, sec, loc)
	}
	return Result{Text: text, Color: sec.Color, IsNegative: v < 0, Align: AlignRight}
}

// ── text rendering ────────────────────────────────────────────────────────────

// renderText renders s with the text section: the fourth section when there
// are four, else the first.  '@' inserts s and literals are copied; every
// other token is ignored.  A section that produces no output leaves s
// unchanged.
func renderText(s string, pf *ParsedFormat) Result {
	res := Result{Text: s, Align: AlignLeft}
	if len(pf.Sections) == 0 {
		return res
	}
	dedicated := len(pf.Sections) == maxSections
	sec := &pf.Sections[0]
	if dedicated {
		sec = &pf.Sections[maxSections-1]
	}

	var sb strings.Builder
	for _, tok := range sec.Tokens {
		switch tok.Kind {
		case TokenText:
			sb.WriteString(s)
		case TokenLiteral:
			sb.WriteString(tok.Text)
		}
	}
	if sb.Len() > 0 {
		res.Text = sb.String()
	}
	res.Color = sec.Color
	return res
}

// currencyText is the symbol a currency token renders.
func currencyText(tok Token, loc locale.Locale) string {
	if tok.Text == "" {
		return loc.CurrencySymbol
	}
	return tok.Text
}
