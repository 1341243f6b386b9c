// SPDX-License-Identifier: MIT

package goldberg

import "github.com/katalvlaran/bch/partition"

// MaxOrder is the highest order Build accepts.
const MaxOrder = partition.MaxOrder

// Method names prefix wrapped errors.
const (
	// MethodBuild is the canonical name for Build.
	MethodBuild = "Build"
	// MethodCoefficient is the canonical name for Table.Coefficient.
	MethodCoefficient = "Coefficient"
	// MethodRow is the canonical name for Table.Row.
	MethodRow = "Row"
	// MethodClose is the canonical name for Table.Close.
	MethodClose = "Close"
	// MethodDump is the canonical name for Table.Dump.
	MethodDump = "Dump"
	// MethodFingerprint is the canonical name for Table.Fingerprint.
	MethodFingerprint = "Fingerprint"
)
