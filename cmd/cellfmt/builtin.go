package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/TsubasaBE/go-cellfmt/numfmt"
)

func newBuiltinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "builtin [ID]",
		Short: "Print the builtin format codes",
		Long: `Print the format code of a standard number format ID, or the whole
table when no ID is given.  Unknown IDs print "General".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("cellfmt: builtin id %q: %w", args[0], err)
				}
				fmt.Fprintln(out, numfmt.GetBuiltinFormat(id))
				return nil
			}
			for _, id := range numfmt.BuiltinIDs() {
				kind := ""
				if numfmt.IsBuiltinDateID(id) {
					kind = "  (date/time)"
				}
				fmt.Fprintf(out, "%2d  %s%s\n", id, numfmt.GetBuiltinFormat(id), kind)
			}
			a.log.Debugf("listed %d builtin formats", len(numfmt.BuiltinIDs()))
			return nil
		},
	}
}
