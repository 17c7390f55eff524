package numfmt

import (
	"fmt"
	"strconv"
)

// TokenKind identifies the variant held by a [Token].
type TokenKind uint8

// Token kinds.  The set is closed; every kind the section parser can emit is
// listed here.
const (
	TokenLiteral      TokenKind = iota // Text: verbatim text
	TokenDigit                         // Digit: '0', '#' or '?'
	TokenDecimalPoint                  //
	TokenThousands                     //
	TokenPercent                       //
	TokenScientific                    // Sign: '+' or '-'
	TokenFraction                      //
	TokenDate                          // Text: yyyy yy mmmm mmm mm m dddd ddd dd d
	TokenTime                          // Text: hh h mm m ss s ss.0 ss.00 ss.000
	TokenElapsed                       // Text: h, m or s; Width: minimum digits
	TokenAMPM                          // Text: AM/PM am/pm A/P a/p
	TokenText                          // '@'
	TokenFill                          // Text: fill character
	TokenSkip                          // Text: character whose width is skipped
	TokenCurrency                      // Text: symbol; empty means the locale symbol
	TokenColor                         // Text: "#RRGGBB" or "ColorN"
	TokenCondition                     // Cond
)

// Scanner-internal kinds.  They steer metadata but never reach a Section.
const (
	tokenScaleComma TokenKind = 0xfe
	tokenDropped    TokenKind = 0xff
)

var kindNames = [...]string{
	TokenLiteral:      "Literal",
	TokenDigit:        "Digit",
	TokenDecimalPoint: "DecimalPoint",
	TokenThousands:    "Thousands",
	TokenPercent:      "Percent",
	TokenScientific:   "Scientific",
	TokenFraction:     "Fraction",
	TokenDate:         "Date",
	TokenTime:         "Time",
	TokenElapsed:      "Elapsed",
	TokenAMPM:         "AMPM",
	TokenText:         "Text",
	TokenFill:         "Fill",
	TokenSkip:         "Skip",
	TokenCurrency:     "Currency",
	TokenColor:        "Color",
	TokenCondition:    "Condition",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Token is one element of a parsed format section.  Only the payload field
// documented for its Kind is meaningful.
type Token struct {
	Kind  TokenKind
	Text  string
	Digit rune
	Sign  rune
	Width int
	Cond  Condition
}

// String returns a compact human-readable form, used by diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case TokenDigit:
		return fmt.Sprintf("Digit(%c)", t.Digit)
	case TokenScientific:
		return fmt.Sprintf("Scientific(E%c)", t.Sign)
	case TokenElapsed:
		return fmt.Sprintf("Elapsed(%s,%d)", t.Text, t.Width)
	case TokenCondition:
		return fmt.Sprintf("Condition(%s%v)", t.Cond.Op, t.Cond.Value)
	case TokenDecimalPoint, TokenThousands, TokenPercent, TokenFraction, TokenText:
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// Operator is a comparison operator of a [Condition].
type Operator string

// Condition operators.
const (
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpEqual        Operator = "="
	OpNotEqual     Operator = "<>"
)

// Condition restricts a section to values satisfying "value Op Value".
type Condition struct {
	Op    Operator
	Value float64
}

// Match reports whether v satisfies the condition.
func (c Condition) Match(v float64) bool {
	switch c.Op {
	case OpLess:
		return v < c.Value
	case OpLessEqual:
		return v <= c.Value
	case OpGreater:
		return v > c.Value
	case OpGreaterEqual:
		return v >= c.Value
	case OpEqual:
		return v == c.Value
	case OpNotEqual:
		return v != c.Value
	}
	return false
}

// DigitCounts tallies the digit placeholders on one side of the decimal point.
type DigitCounts struct {
	Zeros     int
	Hashes    int
	Questions int
}

// Total is the number of digit positions.
func (d DigitCounts) Total() int { return d.Zeros + d.Hashes + d.Questions }

// Section is one semicolon-separated part of a format code.  All fields other
// than Tokens are derived from the token stream while parsing and are never
// changed afterwards.
type Section struct {
	Tokens []Token

	Color      string
	Condition  *Condition
	IsNegative bool
	// Scale is the number of scaling commas; each divides the value by 1000.
	Scale int

	Integer DigitCounts
	Decimal DigitCounts

	HasThousands bool
	HasPercent   bool
	IsScientific bool
	IsFraction   bool
}

func (s *Section) has(kinds ...TokenKind) bool {
	for _, tok := range s.Tokens {
		for _, k := range kinds {
			if tok.Kind == k {
				return true
			}
		}
	}
	return false
}

func (s *Section) isDateTime() bool {
	return s.has(TokenDate, TokenTime, TokenElapsed, TokenAMPM)
}

// ParsedFormat is the immutable result of parsing a format code.
// len(Sections) is 0 exactly when IsGeneral is set, and never more than 4.
type ParsedFormat struct {
	Original string
	Sections []Section

	IsGeneral  bool
	IsDateTime bool
	IsText     bool
}

// Align is the horizontal alignment suggested for a rendered value.
type Align string

// Alignments.
const (
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
	AlignCenter Align = "center"
)

// Result is the rendered form of one value.  Color is empty when the
// selected section carries no color.
type Result struct {
	Text       string
	Color      string
	IsNegative bool
	Align      Align
}
