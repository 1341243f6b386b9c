// SPDX-License-Identifier: MIT

package goldberg_test

import (
	"testing"

	"github.com/katalvlaran/bch/goldberg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestOptions_PanicOnNil checks option constructors reject nil.
func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { goldberg.WithLogger(nil) })
	assert.Panics(t, func() { goldberg.WithMetrics(nil) })
	assert.Panics(t, func() { goldberg.WithEvaluator(nil) })
}

// TestBuild_LogsTiming verifies the build diagnostic goes to WithLogger.
func TestBuild_LogsTiming(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mustBuild(t, 4, goldberg.WithLogger(zap.New(core)))

	entries := logs.FilterMessage("compute goldberg coefficients").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(4), fields["order"])
	assert.Equal(t, int64(11), fields["rows"])
	assert.Contains(t, fields, "elapsed")

	den := logs.FilterMessage("goldberg denominator").All()
	require.Len(t, den, 1)
	assert.Equal(t, "288", den[0].ContextMap()["denominator"])
}

// TestBuild_PackageLogger verifies SetLogger is used when no option is given.
func TestBuild_PackageLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := goldberg.Logger()
	goldberg.SetLogger(zap.New(core))
	defer goldberg.SetLogger(prev)

	mustBuild(t, 2)
	assert.Equal(t, 1, logs.FilterMessage("compute goldberg coefficients").Len())
}
