// Command cellfmt renders values with spreadsheet number format codes from
// the command line.
//
//	cellfmt format "#,##0.00" 1234.5 -1
//	cellfmt builtin 14
//	cellfmt inspect --compare "[Red]0.00;(0.00)"
//	printf '0.5,# ?/?\n' | cellfmt batch
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
