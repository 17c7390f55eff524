package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		typ     string
		want    any
		wantErr string
	}{
		{name: "auto number", raw: "1.5", typ: typeAuto, want: 1.5},
		{name: "auto negative", raw: "-3", typ: typeAuto, want: -3.0},
		{name: "auto bool", raw: "TRUE", typ: typeAuto, want: true},
		{name: "auto bool lower", raw: "false", typ: typeAuto, want: false},
		{name: "auto one stays number", raw: "1", typ: typeAuto, want: 1.0},
		{name: "auto string", raw: "abc", typ: typeAuto, want: "abc"},
		{name: "string keeps digits", raw: "007", typ: typeString, want: "007"},
		{name: "number", raw: " 42 ", typ: typeNumber, want: 42.0},
		{name: "bad number", raw: "x", typ: typeNumber, wantErr: "parse number"},
		{name: "bool", raw: "1", typ: typeBool, want: true},
		{name: "bad bool", raw: "maybe", typ: typeBool, wantErr: "parse bool"},
		{name: "date", raw: "2024-01-01", typ: typeDate, want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "date time", raw: "2024-01-01 09:30", typ: typeDate, want: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)},
		{name: "bad date", raw: "01/02/2024", typ: typeDate, wantErr: "parse date"},
		{name: "unknown type", raw: "1", typ: "complex", wantErr: "unknown value type"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseValue(tc.raw, tc.typ)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"several values", []string{"format", "#,##0.00", "1234.5", "0.125"}, "1,234.50\n0.13\n"},
		{"negative after separator", []string{"format", "0;(0)", "--", "-5"}, "(5)\n"},
		{"text", []string{"format", "@", "hello"}, "hello\n"},
		{"bool", []string{"format", "0.00", "true"}, "TRUE\n"},
		{"forced string", []string{"format", "--type", "string", "0.00", "42"}, "42.00\n"},
		{"date", []string{"format", "--type", "date", "yyyy-mm-dd hh:mm", "2024-03-05 14:30"}, "2024-03-05 14:30\n"},
		{"date1904", []string{"--date1904", "format", "yyyy-mm-dd", "0"}, "1904-01-01\n"},
		{"verbose", []string{"format", "--verbose", "0;[Red](0)", "--", "-5"}, "\"(5)\"\tcolor=#FF0000\talign=right\tnegative=true\n"},
		{"verbose no color", []string{"format", "--verbose", "@", "x"}, "\"x\"\tcolor=-\talign=left\tnegative=false\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, "", tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestFormatCmdErrors(t *testing.T) {
	_, _, err := execute(t, "", "format", "0.00")
	require.Error(t, err)

	_, _, err = execute(t, "", "format", "--type", "number", "0", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse number")
}

func TestBuiltinCmd(t *testing.T) {
	out, _, err := execute(t, "", "builtin", "14")
	require.NoError(t, err)
	assert.Equal(t, "mm-dd-yy\n", out)

	out, _, err = execute(t, "", "builtin", "999")
	require.NoError(t, err)
	assert.Equal(t, "General\n", out)

	out, _, err = execute(t, "", "builtin")
	require.NoError(t, err)
	assert.Contains(t, out, " 0  General\n")
	assert.Contains(t, out, "14  mm-dd-yy  (date/time)\n")
	assert.Contains(t, out, "49  @\n")

	_, _, err = execute(t, "", "builtin", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "builtin id")
}

func TestInspectCmd(t *testing.T) {
	out, _, err := execute(t, "", "inspect", "#,##0.00;[Red](#,##0.00)")
	require.NoError(t, err)
	assert.Contains(t, out, "datetime=false")
	assert.Contains(t, out, "section 0 (positive and zero):")
	assert.Contains(t, out, "section 1 (negative):")
	assert.Contains(t, out, "color=#FF0000 negative thousands")
	assert.Contains(t, out, "integer=1/3/0 decimal=2/0/0")
	assert.Contains(t, out, "tokens: Digit(#) Thousands Digit(#)")
	assert.NotContains(t, out, "nfp:")

	out, _, err = execute(t, "", "inspect", "--compare", "yyyy-mm-dd")
	require.NoError(t, err)
	assert.Contains(t, out, "datetime=true")
	assert.Contains(t, out, `Date("yyyy")`)
	assert.Contains(t, out, "nfp:")
}

func TestBatchCmd(t *testing.T) {
	in := "1234.5,\"#,##0.00\"\n0.5,# ?/?\nabc,@\n45292,yyyy-mm-dd\n"
	out, _, err := execute(t, in, "batch")
	require.NoError(t, err)
	assert.Equal(t, "1234.5,\"#,##0.00\",\"1,234.50\"\n0.5,# ?/?,1/2\nabc,@,abc\n45292,yyyy-mm-dd,2024-01-01\n", out)
}

func TestBatchCmdSkipHeader(t *testing.T) {
	out, _, err := execute(t, "value,format\n1,0.00\n", "batch", "--skip-header")
	require.NoError(t, err)
	assert.Equal(t, "1,0.00,1.00\n", out)
}

func TestBatchCmdLogsSummary(t *testing.T) {
	_, stderr, err := execute(t, "1,0\n2,0\n", "--log-level", "info", "batch")
	require.NoError(t, err)
	assert.Contains(t, stderr, "rendered 2 rows")
}

func TestBatchCmdErrors(t *testing.T) {
	_, _, err := execute(t, "1\n", "batch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")

	_, _, err = execute(t, "x,0\n", "batch", "--type", "number")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse number")
}
