package numfmt

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ── format parsing ────────────────────────────────────────────────────────────

// isGeneralCode reports whether format selects the General format.
func isGeneralCode(format string) bool {
	return format == "" || strings.EqualFold(format, "General")
}

// ParseFormat parses a format code without consulting any cache.  It never
// fails: constructs it does not understand become literal text.  Most callers
// want [Engine.Parse], which memoizes the result.
func ParseFormat(format string) *ParsedFormat {
	if isGeneralCode(format) {
		return &ParsedFormat{Original: format, IsGeneral: true}
	}

	raw := splitSections(format)
	if len(raw) > maxSections {
		raw = raw[:maxSections]
	}

	pf := &ParsedFormat{
		Original: format,
		Sections: make([]Section, len(raw)),
	}
	for i, s := range raw {
		pf.Sections[i] = parseSection(s, i == 1)
		if pf.Sections[i].isDateTime() {
			pf.IsDateTime = true
		}
	}
	pf.IsText = format == "@" ||
		len(pf.Sections) == 1 && len(pf.Sections[0].Tokens) == 1 && pf.Sections[0].Tokens[0].Kind == TokenText
	return pf
}

// ── section scanner ───────────────────────────────────────────────────────────

// match is the outcome of a successful rule: the token produced and the
// number of runes it consumed.
type match struct {
	tok Token
	n   int
}

// rule tries to recognise one construct at the scanner's cursor.
type rule func(sc *scanner) (match, bool)

// rules are tried in order; the first that matches wins.  Anything no rule
// accepts becomes a single-character literal.
var rules = []rule{
	matchBracket,
	matchQuoted,
	matchEscape,
	matchSkip,
	matchFill,
	matchDigit,
	matchDecimalPoint,
	matchComma,
	matchPercent,
	matchExponent,
	matchFraction,
	matchTextPlaceholder,
	matchDateTime,
	matchCurrencyGlyph,
}

type scanner struct {
	src []rune
	pos int
	sec Section

	afterDecimal bool
	inFraction   bool
	inExponent   bool
}

func (sc *scanner) peek(off int) (rune, bool) {
	i := sc.pos + off
	if i < 0 || i >= len(sc.src) {
		return 0, false
	}
	return sc.src[i], true
}

func (sc *scanner) rest() string { return string(sc.src[sc.pos:]) }

// parseSection scans one section of a format code.
func parseSection(s string, negative bool) Section {
	sc := &scanner{
		src: []rune(s),
		sec: Section{IsNegative: negative},
	}
	for sc.pos < len(sc.src) {
		m := sc.next()
		sc.apply(m.tok)
		sc.pos += m.n
	}
	resolveMinutes(sc.sec.Tokens)
	return sc.sec
}

func (sc *scanner) next() match {
	for _, r := range rules {
		if m, ok := r(sc); ok {
			return m
		}
	}
	c := sc.src[sc.pos]
	if c == ' ' && len(sc.sec.Tokens) == 0 {
		return match{tok: Token{Kind: tokenDropped}, n: 1}
	}
	return match{tok: Token{Kind: TokenLiteral, Text: string(c)}, n: 1}
}

// apply records tok in the section and updates the derived metadata.
func (sc *scanner) apply(tok Token) {
	switch tok.Kind {
	case tokenDropped:
		return
	case tokenScaleComma:
		sc.sec.Scale++
		return
	}
	sc.sec.Tokens = append(sc.sec.Tokens, tok)

	switch tok.Kind {
	case TokenColor:
		if strings.HasPrefix(tok.Text, "#") {
			sc.sec.Color = tok.Text
		}
	case TokenCondition:
		c := tok.Cond
		sc.sec.Condition = &c
	case TokenDigit:
		if sc.inFraction || sc.inExponent {
			return
		}
		counts := &sc.sec.Integer
		if sc.afterDecimal {
			counts = &sc.sec.Decimal
		}
		switch tok.Digit {
		case '0':
			counts.Zeros++
		case '#':
			counts.Hashes++
		case '?':
			counts.Questions++
		}
	case TokenDecimalPoint:
		sc.afterDecimal = true
	case TokenThousands:
		sc.sec.HasThousands = true
	case TokenPercent:
		sc.sec.HasPercent = true
	case TokenScientific:
		sc.sec.IsScientific = true
		sc.inExponent = true
	case TokenFraction:
		sc.sec.IsFraction = true
		sc.inFraction = true
	}
}

// ── rules ─────────────────────────────────────────────────────────────────────

var colorNames = map[string]string{
	"black":   "#000000",
	"blue":    "#0000FF",
	"cyan":    "#00FFFF",
	"green":   "#00FF00",
	"magenta": "#FF00FF",
	"red":     "#FF0000",
	"white":   "#FFFFFF",
	"yellow":  "#FFFF00",
}

// condOperators is ordered so that two-character operators win.
var condOperators = []Operator{OpLessEqual, OpGreaterEqual, OpNotEqual, OpLess, OpGreater, OpEqual}

func matchBracket(sc *scanner) (match, bool) {
	if sc.src[sc.pos] != '[' {
		return match{}, false
	}
	end := -1
	for i := sc.pos + 1; i < len(sc.src); i++ {
		if sc.src[i] == ']' {
			end = i
			break
		}
	}
	if end < 0 {
		return match{}, false
	}
	inner := string(sc.src[sc.pos+1 : end])
	return match{tok: bracketToken(inner), n: end - sc.pos + 1}, true
}

// bracketToken classifies the content of a [...] directive.
func bracketToken(inner string) Token {
	lower := strings.ToLower(strings.TrimSpace(inner))

	if hex, ok := colorNames[lower]; ok {
		return Token{Kind: TokenColor, Text: hex}
	}
	if n, ok := strings.CutPrefix(lower, "color"); ok && n != "" && isDigits(n) {
		return Token{Kind: TokenColor, Text: "Color" + n}
	}
	if c, ok := parseCondition(lower); ok {
		return Token{Kind: TokenCondition, Cond: c}
	}
	if lower != "" && strings.Count(lower, lower[:1]) == len(lower) && strings.ContainsAny(lower[:1], "hms") {
		return Token{Kind: TokenElapsed, Text: lower[:1], Width: len(lower)}
	}
	if sym, ok := strings.CutPrefix(inner, "$"); ok {
		// [$€-407] carries a locale id after the symbol; [$-409] renders the
		// locale symbol.
		sym, _, _ = strings.Cut(sym, "-")
		return Token{Kind: TokenCurrency, Text: sym}
	}
	return Token{Kind: tokenDropped}
}

func parseCondition(s string) (Condition, bool) {
	for _, op := range condOperators {
		rest, ok := strings.CutPrefix(s, string(op))
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Condition{}, false
		}
		return Condition{Op: op, Value: v}, true
	}
	return Condition{}, false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// matchQuoted takes everything up to the closing quote verbatim.  An
// unterminated quote runs to the end of the section.
func matchQuoted(sc *scanner) (match, bool) {
	if sc.src[sc.pos] != '"' {
		return match{}, false
	}
	for i := sc.pos + 1; i < len(sc.src); i++ {
		if sc.src[i] == '"' {
			text := string(sc.src[sc.pos+1 : i])
			return match{tok: Token{Kind: TokenLiteral, Text: text}, n: i - sc.pos + 1}, true
		}
	}
	text := string(sc.src[sc.pos+1:])
	return match{tok: Token{Kind: TokenLiteral, Text: text}, n: len(sc.src) - sc.pos}, true
}

// prefixed matches a two-rune construct lead+X and builds the token from X.
func prefixed(sc *scanner, lead rune, kind TokenKind) (match, bool) {
	if sc.src[sc.pos] != lead {
		return match{}, false
	}
	c, ok := sc.peek(1)
	if !ok {
		return match{}, false
	}
	return match{tok: Token{Kind: kind, Text: string(c)}, n: 2}, true
}

func matchEscape(sc *scanner) (match, bool) { return prefixed(sc, '\\', TokenLiteral) }
func matchSkip(sc *scanner) (match, bool)   { return prefixed(sc, '_', TokenSkip) }
func matchFill(sc *scanner) (match, bool)   { return prefixed(sc, '*', TokenFill) }

func matchDigit(sc *scanner) (match, bool) {
	switch c := sc.src[sc.pos]; c {
	case '0', '#', '?':
		return match{tok: Token{Kind: TokenDigit, Digit: c}, n: 1}, true
	}
	return match{}, false
}

func single(sc *scanner, c rune, kind TokenKind) (match, bool) {
	if sc.src[sc.pos] != c {
		return match{}, false
	}
	return match{tok: Token{Kind: kind}, n: 1}, true
}

func matchDecimalPoint(sc *scanner) (match, bool)    { return single(sc, '.', TokenDecimalPoint) }
func matchPercent(sc *scanner) (match, bool)         { return single(sc, '%', TokenPercent) }
func matchFraction(sc *scanner) (match, bool)        { return single(sc, '/', TokenFraction) }
func matchTextPlaceholder(sc *scanner) (match, bool) { return single(sc, '@', TokenText) }

func isDigitPlaceholder(c rune) bool { return c == '0' || c == '#' || c == '?' }

// matchComma distinguishes a scaling comma (divide by 1000) from a thousands
// separator by looking at the character that follows it.
func matchComma(sc *scanner) (match, bool) {
	if sc.src[sc.pos] != ',' {
		return match{}, false
	}
	scaling := false
	switch c, ok := sc.peek(1); {
	case !ok, c == ',', c == ')', c == ';':
		scaling = true
	case c == '.':
		after, ok := sc.peek(2)
		scaling = !ok || !isDigitPlaceholder(after)
	}
	if scaling {
		return match{tok: Token{Kind: tokenScaleComma}, n: 1}, true
	}
	return match{tok: Token{Kind: TokenThousands}, n: 1}, true
}

func matchExponent(sc *scanner) (match, bool) {
	if c := sc.src[sc.pos]; c != 'E' && c != 'e' {
		return match{}, false
	}
	switch c, _ := sc.peek(1); c {
	case '+', '-':
		return match{tok: Token{Kind: TokenScientific, Sign: c}, n: 2}, true
	case '0', '#':
		return match{tok: Token{Kind: TokenScientific, Sign: '-'}, n: 1}, true
	}
	return match{}, false
}

var (
	ampmPatterns = []string{"am/pm", "a/p"}
	datePatterns = []string{"yyyy", "yy", "mmmm", "mmm", "mm", "m", "dddd", "ddd", "dd", "d"}
	timePatterns = []string{"ss.000", "ss.00", "ss.0", "hh", "h", "ss", "s"}
)

// matchDateTime tries the AM/PM table, then the date table, then the time
// table.  Each table is ordered longest first.  Matching ignores case; the
// AM/PM token keeps the case of its first letter as its display mode.
func matchDateTime(sc *scanner) (match, bool) {
	if !strings.ContainsRune("adhmsy", unicode.ToLower(sc.src[sc.pos])) {
		return match{}, false
	}
	rest := sc.rest()
	for _, p := range ampmPatterns {
		if hasFoldPrefix(rest, p) {
			text := p
			if rest[0] == 'A' {
				text = strings.ToUpper(p)
			}
			return match{tok: Token{Kind: TokenAMPM, Text: text}, n: len(p)}, true
		}
	}
	for _, p := range datePatterns {
		if hasFoldPrefix(rest, p) {
			return match{tok: Token{Kind: TokenDate, Text: p}, n: len(p)}, true
		}
	}
	for _, p := range timePatterns {
		if hasFoldPrefix(rest, p) {
			return match{tok: Token{Kind: TokenTime, Text: p}, n: len(p)}, true
		}
	}
	return match{}, false
}

// hasFoldPrefix reports whether s starts with the ASCII pattern p, ignoring
// case.
func hasFoldPrefix(s, p string) bool {
	return len(s) >= len(p) && strings.EqualFold(s[:len(p)], p)
}

const currencyGlyphs = "$€£¥₹₽¢"

func matchCurrencyGlyph(sc *scanner) (match, bool) {
	c := sc.src[sc.pos]
	if !strings.ContainsRune(currencyGlyphs, c) {
		return match{}, false
	}
	return match{tok: Token{Kind: TokenCurrency, Text: string(c)}, n: 1}, true
}

// ── minute disambiguation ─────────────────────────────────────────────────────

// resolveMinutes turns a month token m or mm into a minute token when the
// nearest preceding date/time token is an hour, or the nearest following one
// is a second.  Literal separators in between do not matter.
func resolveMinutes(tokens []Token) {
	for i := range tokens {
		tok := &tokens[i]
		if tok.Kind != TokenDate || (tok.Text != "m" && tok.Text != "mm") {
			continue
		}
		if prev, ok := nearestClock(tokens, i, -1); ok && isUnit(prev, 'h') {
			tok.Kind = TokenTime
			continue
		}
		if next, ok := nearestClock(tokens, i, +1); ok && isUnit(next, 's') {
			tok.Kind = TokenTime
		}
	}
}

func nearestClock(tokens []Token, from, step int) (Token, bool) {
	for j := from + step; j >= 0 && j < len(tokens); j += step {
		switch tokens[j].Kind {
		case TokenDate, TokenTime, TokenElapsed:
			return tokens[j], true
		}
	}
	return Token{}, false
}

// isUnit reports whether tok is a time or elapsed token for the given unit.
func isUnit(tok Token, unit byte) bool {
	if tok.Kind != TokenTime && tok.Kind != TokenElapsed {
		return false
	}
	return tok.Text != "" && tok.Text[0] == unit
}
