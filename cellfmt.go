// Package cellfmt renders spreadsheet cell values to display text using
// Excel-compatible number format codes.  No cgo is required.
//
// # Quick start
//
//	fmt.Println(cellfmt.FormatValue(1234567, "#,##0").Text)      // 1,234,567
//	fmt.Println(cellfmt.FormatValue(0.1234, "0.00%").Text)       // 12.34%
//	fmt.Println(cellfmt.FormatValue(45292, "yyyy-mm-dd").Text)   // 2024-01-01
//
//	r := cellfmt.FormatValue(-123, "#,##0;[Red](#,##0)")
//	fmt.Println(r.Text, r.Color) // (123) #FF0000
//
// The package-level functions share one default [numfmt.Engine].  Programs
// that need several locales at once, or the 1904 date system, should create
// their own engines with [numfmt.NewEngine].
//
// # Builtin formats
//
// Workbook files refer to the standard formats by number.  [GetBuiltinFormat]
// maps such an ID to its format code before it is handed to [Parse]:
//
//	code := cellfmt.GetBuiltinFormat(14) // "mm-dd-yy"
//
// # Dates
//
// Dates are floating-point serial numbers counting days since 1899-12-30,
// with the fractional part holding the time of day.  Date formats render
// serials directly.  For a [time.Time] use [ConvertDate] or, for workbooks
// in the 1904 date system, [ConvertDateEx].  [ToSerial] goes the other way.
package cellfmt

import (
	"fmt"
	"math"
	"time"

	"github.com/TsubasaBE/go-cellfmt/internal/serial"
	"github.com/TsubasaBE/go-cellfmt/locale"
	"github.com/TsubasaBE/go-cellfmt/numfmt"
)

// Version is the current version of the go-cellfmt library.
const Version = "1.0.0"

var std = numfmt.NewEngine()

// Default returns the engine behind the package-level functions.
func Default() *numfmt.Engine { return std }

// Parse returns the parsed, memoized form of format.
func Parse(format string) *numfmt.ParsedFormat { return std.Parse(format) }

// Format renders v with an already parsed format.
func Format(v any, pf *numfmt.ParsedFormat) numfmt.Result { return std.Format(v, pf) }

// FormatValue parses format and renders v with it.
func FormatValue(v any, format string) numfmt.Result { return std.FormatValue(v, format) }

// IsDateTimeFormat reports whether format renders dates or times.
func IsDateTimeFormat(format string) bool { return std.IsDateTimeFormat(format) }

// GetBuiltinFormat returns the format code of a standard numFmtId, or
// "General" for an unknown ID.
func GetBuiltinFormat(id int) string { return numfmt.GetBuiltinFormat(id) }

// SetLocale replaces the default engine's locale and clears its cache.
func SetLocale(l locale.Locale) { std.SetLocale(l) }

// GetLocale returns a copy of the default engine's locale.
func GetLocale() locale.Locale { return std.Locale() }

// ClearCache empties the default engine's parse cache.
func ClearCache() { std.ClearCache() }

// ConvertDate converts a serial in the 1900 date system to a [time.Time].
// It is [ConvertDateEx] with date1904 set to false.
func ConvertDate(date float64) (time.Time, error) {
	return ConvertDateEx(date, false)
}

// ConvertDateEx converts a serial to a UTC [time.Time] with millisecond
// precision, in the 1904 date system when date1904 is true.  Negative,
// non-finite and out-of-range serials are rejected.
func ConvertDateEx(date float64, date1904 bool) (time.Time, error) {
	if math.IsNaN(date) || math.IsInf(date, 0) {
		return time.Time{}, fmt.Errorf("cellfmt: ConvertDate: invalid value %v", date)
	}
	if date < 0 {
		return time.Time{}, fmt.Errorf("cellfmt: ConvertDate: negative serial %v not supported", date)
	}
	if date > serial.MaxSerial {
		return time.Time{}, fmt.Errorf("cellfmt: ConvertDate: serial %v exceeds maximum supported value %d", date, serial.MaxSerial)
	}
	t, err := serial.ToTime(date, date1904)
	if err != nil {
		return time.Time{}, fmt.Errorf("cellfmt: ConvertDate: %w", err)
	}
	return t, nil
}

// ToSerial converts the wall-clock reading of t to a serial.  The time zone
// of t is ignored.
func ToSerial(t time.Time, date1904 bool) float64 {
	return serial.FromTime(t, date1904)
}
