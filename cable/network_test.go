// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package cable

import (
	"testing"

	"github.com/stationeers/simcore/common"
	"github.com/stretchr/testify/require"
)

func TestAddDeviceIsInsertionOrdered(t *testing.T) {
	n := New()
	n.AddDevice(common.ReferenceId(3))
	n.AddDevice(common.ReferenceId(1))
	n.AddDevice(common.ReferenceId(2))

	require.Equal(t, []common.ReferenceId{3, 1, 2}, n.DeviceIDs())
	require.Equal(t, 3, n.DeviceCount())
}

func TestAddDeviceIsIdempotent(t *testing.T) {
	n := New()
	n.AddDevice(common.ReferenceId(1))
	n.AddDevice(common.ReferenceId(1))
	require.Equal(t, 1, n.DeviceCount())
}

func TestRemoveDevicePreservesOrder(t *testing.T) {
	n := New()
	n.AddDevice(common.ReferenceId(1))
	n.AddDevice(common.ReferenceId(2))
	n.AddDevice(common.ReferenceId(3))
	n.RemoveDevice(common.ReferenceId(2))

	require.Equal(t, []common.ReferenceId{1, 3}, n.DeviceIDs())
	require.False(t, n.Contains(common.ReferenceId(2)))
}

func TestReducerModes(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	require.InDelta(t, 2.5, Average.Reduce(values), 1e-9)
	require.InDelta(t, 10, Sum.Reduce(values), 1e-9)
	require.InDelta(t, 1, Minimum.Reduce(values), 1e-9)
	require.InDelta(t, 4, Maximum.Reduce(values), 1e-9)
	require.InDelta(t, 1, Force.Reduce(values), 1e-9)
	require.InDelta(t, 2.5, Partial.Reduce(values), 1e-9)
}

func TestReducerEmptyBatchIsZero(t *testing.T) {
	require.Equal(t, 0.0, Average.Reduce(nil))
	require.Equal(t, 0.0, Sum.Reduce(nil))
}

func TestDiffReportsAddedAndRemoved(t *testing.T) {
	before := []common.ReferenceId{1, 2, 3}
	after := []common.ReferenceId{2, 3, 4}

	added, removed := Diff(before, after)
	require.ElementsMatch(t, []common.ReferenceId{4}, added)
	require.ElementsMatch(t, []common.ReferenceId{1}, removed)
}
