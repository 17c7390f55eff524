package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		valueType  string
		skipHeader bool
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Render CSV rows of value,format from stdin",
		Long: `Read CSV records of the form value,format from standard input and write
value,format,text records to standard output.  Extra fields are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.runBatch(cmd.InOrStdin(), cmd.OutOrStdout(), valueType, skipHeader)
			if err != nil {
				return err
			}
			a.log.Infof("batch: rendered %d rows, %d cached formats", n, a.engine.CacheLen())
			return nil
		},
	}
	cmd.Flags().StringVarP(&valueType, "type", "t", typeAuto, "value type: auto, number, string, bool, date")
	cmd.Flags().BoolVar(&skipHeader, "skip-header", false, "ignore the first input record")
	return cmd
}

// runBatch renders every record of r and returns the number rendered.
func (a *app) runBatch(r io.Reader, w io.Writer, valueType string, skipHeader bool) (int, error) {
	in := csv.NewReader(r)
	in.FieldsPerRecord = -1
	out := csv.NewWriter(w)

	n := 0
	for recNo := 1; ; recNo++ {
		rec, err := in.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, fmt.Errorf("cellfmt: batch: %w", err)
		}
		if recNo == 1 && skipHeader {
			continue
		}
		if len(rec) < 2 {
			return n, fmt.Errorf("cellfmt: batch: record %d: want value,format, got %d fields", recNo, len(rec))
		}
		v, err := parseValue(rec[0], valueType)
		if err != nil {
			return n, fmt.Errorf("cellfmt: batch: record %d: %w", recNo, err)
		}
		res := a.engine.FormatValue(v, rec[1])
		if err := out.Write([]string{rec[0], rec[1], res.Text}); err != nil {
			return n, fmt.Errorf("cellfmt: batch: write: %w", err)
		}
		n++
	}
	out.Flush()
	if err := out.Error(); err != nil {
		return n, fmt.Errorf("cellfmt: batch: write: %w", err)
	}
	return n, nil
}
