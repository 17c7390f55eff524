package cellfmt_test

import (
	"math"
	"testing"
	"time"

	"github.com/TsubasaBE/go-cellfmt"
	"github.com/TsubasaBE/go-cellfmt/locale"
)

// ── FormatValue ───────────────────────────────────────────────────────────────

func TestFormatValueSamples(t *testing.T) {
	tests := []struct {
		name      string
		v         any
		format    string
		want      string
		wantColor string
	}{
		{"grouped integer", 1234567.0, "#,##0", "1,234,567", ""},
		{"percent", 0.1234, "0.00%", "12.34%", ""},
		{"red negative", -123.0, "#,##0;[Red](#,##0)", "(123)", "#FF0000"},
		{"iso date", 45292.0, "yyyy-mm-dd", "2024-01-01", ""},
		{"half fraction", 0.5, "# ?/?", "1/2", ""},
		{"NaN", math.NaN(), "0.00", "#NUM!", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := cellfmt.FormatValue(tc.v, tc.format)
			if got.Text != tc.want || got.Color != tc.wantColor {
				t.Errorf("FormatValue(%v, %q) = %+v, want %q color %q", tc.v, tc.format, got, tc.want, tc.wantColor)
			}
		})
	}
}

func TestFormatBuiltin(t *testing.T) {
	pf := cellfmt.Parse(cellfmt.GetBuiltinFormat(14))
	if got := cellfmt.Format(45412.0, pf).Text; got != "04-30-24" {
		t.Errorf("Format(45412, builtin 14) = %q, want 04-30-24", got)
	}
	if !cellfmt.IsDateTimeFormat(cellfmt.GetBuiltinFormat(22)) {
		t.Error("builtin 22 not classified as date/time")
	}
	if cellfmt.IsDateTimeFormat(cellfmt.GetBuiltinFormat(4)) {
		t.Error("builtin 4 classified as date/time")
	}
}

// ── cache and locale ──────────────────────────────────────────────────────────

func TestParseIdentity(t *testing.T) {
	a := cellfmt.Parse("0.000")
	if cellfmt.Parse("0.000") != a {
		t.Fatal("Parse not memoized")
	}
	cellfmt.ClearCache()
	b := cellfmt.Parse("0.000")
	if b == a {
		t.Fatal("Parse after ClearCache returned the old pointer")
	}
	cellfmt.SetLocale(cellfmt.GetLocale())
	if cellfmt.Parse("0.000") == b {
		t.Fatal("Parse after SetLocale returned the old pointer")
	}
}

func TestSetLocale(t *testing.T) {
	orig := cellfmt.GetLocale()
	t.Cleanup(func() { cellfmt.SetLocale(orig) })

	fr, err := locale.Lookup("fr-FR")
	if err != nil {
		t.Fatal(err)
	}
	cellfmt.SetLocale(fr)
	if got := cellfmt.FormatValue(1234.5, "#,##0.00").Text; got != "1\u00a0234,50" {
		t.Errorf("fr-FR FormatValue = %q", got)
	}
	if got := cellfmt.FormatValue(45292.0, "d mmmm yyyy").Text; got != "1 janvier 2024" {
		t.Errorf("fr-FR date = %q", got)
	}
	if cellfmt.GetLocale().DecimalSeparator != "," {
		t.Error("GetLocale does not reflect SetLocale")
	}
}

// ── ConvertDate ───────────────────────────────────────────────────────────────

func TestConvertDate(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		want    time.Time
		wantErr bool
	}{
		{
			name:  "serial 0 is the 1900 epoch",
			input: 0,
			want:  time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "serial 61 is 1900-03-01",
			input: 61,
			want:  time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "serial 45292 is 2024-01-01",
			input: 45292,
			want:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "time of day rounded to the millisecond",
			input: 41235.45578,
			want:  time.Date(2012, 11, 22, 10, 56, 19, 392*int(time.Millisecond), time.UTC),
		},
		{name: "NaN", input: math.NaN(), wantErr: true},
		{name: "+Inf", input: math.Inf(1), wantErr: true},
		{name: "negative", input: -1, wantErr: true},
		{name: "beyond 9999-12-31", input: 3e6, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cellfmt.ConvertDate(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil (result=%v)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ConvertDate(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestConvertDateEx1904(t *testing.T) {
	got, err := cellfmt.ConvertDateEx(39813, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("ConvertDateEx(39813, true) = %v, want %v", got, want)
	}
}

func TestToSerialRoundTrip(t *testing.T) {
	for _, date1904 := range []bool{false, true} {
		in := time.Date(2024, 2, 29, 13, 45, 30, 0, time.UTC)
		s := cellfmt.ToSerial(in, date1904)
		out, err := cellfmt.ConvertDateEx(s, date1904)
		if err != nil {
			t.Fatalf("ConvertDateEx(%v): %v", s, err)
		}
		if !out.Equal(in) {
			t.Errorf("round trip (1904=%v) = %v, want %v", date1904, out, in)
		}
	}
	if got := cellfmt.ToSerial(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), false); got != 45292 {
		t.Errorf("ToSerial(2024-01-01) = %v, want 45292", got)
	}
}
