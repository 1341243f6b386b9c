// SPDX-License-Identifier: MIT

package goldberg

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/bch/freelie"
	"github.com/katalvlaran/bch/partition"
)

// Dump writes one line per row: the parts, each right-aligned in three
// columns, a tab, then the reduced coefficient.
//
//	  1	1
//	  2	0
//	  1  1	1/2
func (t *Table) Dump(w io.Writer) error {
	if err := t.usable(MethodDump); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for n := 1; n <= t.order; n++ {
		for pos := 0; pos < partition.Count(n); pos++ {
			for _, v := range partition.Trim(t.rows.row(n, pos)) {
				fmt.Fprintf(bw, "%3d", v)
			}
			bw.WriteByte('\t')
			bw.WriteString(freelie.FormatRational(t.nums[partition.Offset(n)+pos], t.denom))
			bw.WriteByte('\n')
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", MethodDump, err)
	}
	return nil
}
