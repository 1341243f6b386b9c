// SPDX-License-Identifier: MIT

package metrics_test

import (
	"testing"

	"github.com/katalvlaran/bch/metrics"
	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	m := metrics.NewNop()

	require.NotNil(t, m)
	require.IsType(t, &metrics.NopMetrics{}, m)
}

func TestNopMetrics_Record(t *testing.T) {
	m := metrics.NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		m.RecordBuild(4, 11, 0.01)
		m.RecordBuild(0, 0, -1)
		m.RecordLookup(3)
		m.RecordCacheHit(2)
		m.RecordCacheMiss(-1)
	})
}
