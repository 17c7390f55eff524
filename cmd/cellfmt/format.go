package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/TsubasaBE/go-cellfmt/numfmt"
)

// Value types accepted by --type.
const (
	typeAuto   = "auto"
	typeNumber = "number"
	typeString = "string"
	typeBool   = "bool"
	typeDate   = "date"
)

func newFormatCmd(a *app) *cobra.Command {
	var (
		valueType string
		verbose   bool
	)
	cmd := &cobra.Command{
		Use:   "format FORMAT VALUE...",
		Short: "Render values with a format code",
		Example: `  cellfmt format "#,##0.00" 1234.5
  cellfmt format --type date "dddd, mmmm d" 2024-01-01
  cellfmt format --verbose "0;[Red](0)" -- -5`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pf := a.engine.Parse(args[0])
			out := cmd.OutOrStdout()
			for _, raw := range args[1:] {
				v, err := parseValue(raw, valueType)
				if err != nil {
					return err
				}
				res := a.engine.Format(v, pf)
				if verbose {
					fmt.Fprintln(out, describeResult(res))
					continue
				}
				fmt.Fprintln(out, res.Text)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&valueType, "type", "t", typeAuto, "value type: auto, number, string, bool, date")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "also print color, alignment and sign")
	return cmd
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseValue converts a command-line argument to a cell value.  In auto
// mode TRUE/FALSE become booleans, numbers become float64 and anything else
// stays a string.
func parseValue(raw, typ string) (any, error) {
	switch typ {
	case typeAuto:
		if strings.EqualFold(raw, "true") || strings.EqualFold(raw, "false") {
			return strings.EqualFold(raw, "true"), nil
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return f, nil
		}
		return raw, nil
	case typeNumber:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("cellfmt: parse number %q: %w", raw, err)
		}
		return f, nil
	case typeString:
		return raw, nil
	case typeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("cellfmt: parse bool %q: %w", raw, err)
		}
		return b, nil
	case typeDate:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("cellfmt: parse date %q: want YYYY-MM-DD[ hh:mm[:ss]] or RFC 3339", raw)
	}
	return nil, fmt.Errorf("cellfmt: unknown value type %q", typ)
}

func describeResult(r numfmt.Result) string {
	color := r.Color
	if color == "" {
		color = "-"
	}
	return fmt.Sprintf("%q\tcolor=%s\talign=%s\tnegative=%t", r.Text, color, r.Align, r.IsNegative)
}
