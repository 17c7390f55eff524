// Package locale holds the locale-specific symbols used when rendering cell
// values: decimal and thousands separators, the default currency symbol,
// month and day names, and the AM/PM designators.
//
// A [Locale] is plain data.  It is supplied wholesale to the rendering
// engine, which reads it at render time and never modifies it.  MonthNames
// and MonthAbbr must hold exactly 12 entries and DayNames and DayAbbr exactly
// 7 (Sunday first); this is a caller precondition and is not validated.  A
// short slice renders the missing names as empty strings.
package locale

import (
	"errors"
	"slices"

	"golang.org/x/text/language"
)

// ErrUnknownLocale is returned when no preset matches a requested tag.
var ErrUnknownLocale = errors.New("locale: unknown locale")

// DateOrder is a hint describing the customary order of date fields.  The
// engine carries it but does not act on it.
type DateOrder string

// Date order hints.
const (
	OrderMDY DateOrder = "MDY"
	OrderDMY DateOrder = "DMY"
	OrderYMD DateOrder = "YMD"
)

// Locale is the full set of locale symbols read by the renderer.
type Locale struct {
	// Tag identifies the locale.  It is used for case mapping only.
	Tag language.Tag `yaml:"-"`

	DecimalSeparator   string `yaml:"decimal_separator"`
	ThousandsSeparator string `yaml:"thousands_separator"`
	CurrencySymbol     string `yaml:"currency_symbol"`

	MonthNames []string `yaml:"month_names"`
	MonthAbbr  []string `yaml:"month_abbr"`
	DayNames   []string `yaml:"day_names"`
	DayAbbr    []string `yaml:"day_abbr"`

	AM string `yaml:"am"`
	PM string `yaml:"pm"`

	DateOrder DateOrder `yaml:"date_order"`
}

// Default returns the en-US locale.
func Default() Locale {
	return enUS.Clone()
}

// Clone returns a deep copy of l so that the caller's slices are never
// shared with the engine.
func (l Locale) Clone() Locale {
	l.MonthNames = slices.Clone(l.MonthNames)
	l.MonthAbbr = slices.Clone(l.MonthAbbr)
	l.DayNames = slices.Clone(l.DayNames)
	l.DayAbbr = slices.Clone(l.DayAbbr)
	return l
}

// Month returns the full name of month m (1–12), or "" when the locale has
// no such entry.
func (l Locale) Month(m int) string { return nameAt(l.MonthNames, m-1) }

// MonthShort returns the abbreviated name of month m (1–12).
func (l Locale) MonthShort(m int) string { return nameAt(l.MonthAbbr, m-1) }

// Day returns the full name of weekday d (0 = Sunday).
func (l Locale) Day(d int) string { return nameAt(l.DayNames, d) }

// DayShort returns the abbreviated name of weekday d (0 = Sunday).
func (l Locale) DayShort(d int) string { return nameAt(l.DayAbbr, d) }

func nameAt(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}
