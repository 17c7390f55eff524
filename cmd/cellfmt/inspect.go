package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/nfp"

	"github.com/TsubasaBE/go-cellfmt/numfmt"
)

func newInspectCmd(a *app) *cobra.Command {
	var compare bool
	cmd := &cobra.Command{
		Use:   "inspect FORMAT",
		Short: "Show how a format code is parsed",
		Long: `Print the sections of a format code with their tokens and derived
metadata.  With --compare the tokenization of the nfp parser is printed
below for reference.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			writeParsed(out, a.engine.Parse(args[0]))
			if compare {
				writeNFP(out, args[0])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&compare, "compare", false, "also print the nfp tokenization")
	return cmd
}

func writeParsed(w io.Writer, pf *numfmt.ParsedFormat) {
	fmt.Fprintf(w, "format %q: general=%t datetime=%t text=%t\n",
		pf.Original, pf.IsGeneral, pf.IsDateTime, pf.IsText)
	for i, sec := range pf.Sections {
		fmt.Fprintf(w, "section %d (%s):\n", i, sectionRole(i, len(pf.Sections)))
		var flags []string
		if sec.Color != "" {
			flags = append(flags, "color="+sec.Color)
		}
		if sec.Condition != nil {
			flags = append(flags, fmt.Sprintf("condition=%s%v", sec.Condition.Op, sec.Condition.Value))
		}
		if sec.Scale > 0 {
			flags = append(flags, fmt.Sprintf("scale=%d", sec.Scale))
		}
		for _, f := range []struct {
			name string
			on   bool
		}{
			{"negative", sec.IsNegative},
			{"thousands", sec.HasThousands},
			{"percent", sec.HasPercent},
			{"scientific", sec.IsScientific},
			{"fraction", sec.IsFraction},
		} {
			if f.on {
				flags = append(flags, f.name)
			}
		}
		fmt.Fprintf(w, "  integer=%d/%d/%d decimal=%d/%d/%d %s\n",
			sec.Integer.Zeros, sec.Integer.Hashes, sec.Integer.Questions,
			sec.Decimal.Zeros, sec.Decimal.Hashes, sec.Decimal.Questions,
			strings.Join(flags, " "))
		toks := make([]string, len(sec.Tokens))
		for j, tok := range sec.Tokens {
			toks[j] = tok.String()
		}
		fmt.Fprintf(w, "  tokens: %s\n", strings.Join(toks, " "))
	}
}

func sectionRole(i, n int) string {
	switch {
	case n == 1:
		return "all values"
	case i == 0 && n == 2:
		return "positive and zero"
	case i == 0:
		return "positive"
	case i == 1:
		return "negative"
	case i == 2:
		return "zero"
	}
	return "text"
}

// writeNFP prints the tokenization produced by github.com/xuri/nfp.
func writeNFP(w io.Writer, format string) {
	ps := nfp.NumberFormatParser()
	sections := ps.Parse(format)
	fmt.Fprintf(w, "nfp: %d sections\n", len(sections))
	for i, sec := range sections {
		toks := make([]string, len(sec.Items))
		for j, tok := range sec.Items {
			toks[j] = fmt.Sprintf("%s(%q)", tok.TType, tok.TValue)
		}
		fmt.Fprintf(w, "  %d %s: %s\n", i, sec.Type, strings.Join(toks, " "))
	}
}
