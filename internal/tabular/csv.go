// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes an export table as delimited text: the display-name
// header first, then one record per row. An export with no columns writes
// nothing.
func WriteCSV(w io.Writer, et ExportTable) error {
	if len(et.Header) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(et.Header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range et.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
