// SPDX-License-Identifier: MIT

package goldberg_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/bch/goldberg"
	"github.com/katalvlaran/bch/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTable_Dump renders the N=3 table.
func TestTable_Dump(t *testing.T) {
	tbl := mustBuild(t, 3)
	var buf bytes.Buffer
	require.NoError(t, tbl.Dump(&buf))
	want := "" +
		"  1\t1\n" +
		"  2\t0\n" +
		"  1  1\t1/2\n" +
		"  3\t0\n" +
		"  2  1\t1/12\n" +
		"  1  1  1\t-1/6\n"
	assert.Equal(t, want, buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestTable_DumpWriteError surfaces writer failures.
func TestTable_DumpWriteError(t *testing.T) {
	tbl := mustBuild(t, 2)
	assert.Error(t, tbl.Dump(failWriter{}))
}

// TestTable_RowBounds covers index validation and copy semantics.
func TestTable_RowBounds(t *testing.T) {
	tbl := mustBuild(t, 3)
	_, _, err := tbl.Row(-1)
	assert.ErrorIs(t, err, goldberg.ErrRowOutOfRange)
	_, _, err = tbl.Row(tbl.Len())
	assert.ErrorIs(t, err, goldberg.ErrRowOutOfRange)

	p, num, err := tbl.Row(4)
	require.NoError(t, err)
	p[0] = 7
	num.SetInt64(-1)
	p2, num2, err := tbl.Row(4)
	require.NoError(t, err)
	assert.Equal(t, partition.Partition{2, 1}, p2)
	assert.Equal(t, int64(3), num2.Int64())

	d := tbl.Denominator()
	d.SetInt64(1)
	assert.Equal(t, int64(36), tbl.Denominator().Int64())
}

// TestTable_CloseOnce verifies Close releases the table exactly once and
// every later use reports ErrTableClosed.
func TestTable_CloseOnce(t *testing.T) {
	tbl, err := goldberg.Build(3)
	require.NoError(t, err)

	require.NoError(t, tbl.Close())
	assert.True(t, tbl.Closed())
	assert.Zero(t, tbl.Len())
	assert.Nil(t, tbl.Denominator())
	assert.ErrorIs(t, tbl.Close(), goldberg.ErrTableClosed, "second Close must be rejected")

	_, err = tbl.Coefficient(word(t, "AB"))
	assert.ErrorIs(t, err, goldberg.ErrTableClosed)
	_, _, err = tbl.Row(0)
	assert.ErrorIs(t, err, goldberg.ErrTableClosed)
	assert.ErrorIs(t, tbl.Dump(&bytes.Buffer{}), goldberg.ErrTableClosed)
	_, err = tbl.Fingerprint()
	assert.ErrorIs(t, err, goldberg.ErrTableClosed)

	var nilTable *goldberg.Table
	assert.ErrorIs(t, nilTable.Close(), goldberg.ErrNilTable)
}

// TestTable_Fingerprint is deterministic per order and differs across orders.
func TestTable_Fingerprint(t *testing.T) {
	a, err := mustBuild(t, 6).Fingerprint()
	require.NoError(t, err)
	b, err := mustBuild(t, 6).Fingerprint()
	require.NoError(t, err)
	c, err := mustBuild(t, 5).Fingerprint()
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
