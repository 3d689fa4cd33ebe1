// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package cable

import (
	"github.com/deckarep/golang-set"
	"github.com/stationeers/simcore/common"
)

// Diff reports the device ids added to and removed from the network between
// two membership snapshots. It is a thin convenience over golang-set for
// callers that want set algebra (union/difference) without re-deriving it
// from the ordered slice; the network's own iteration and membership checks
// never go through this path, since golang-set does not preserve insertion
// order.
func Diff(before, after []common.ReferenceId) (added, removed []common.ReferenceId) {
	beforeSet := mapset.NewSet()
	for _, id := range before {
		beforeSet.Add(id)
	}
	afterSet := mapset.NewSet()
	for _, id := range after {
		afterSet.Add(id)
	}

	for v := range afterSet.Difference(beforeSet).Iter() {
		added = append(added, v.(common.ReferenceId))
	}
	for v := range beforeSet.Difference(afterSet).Iter() {
		removed = append(removed, v.(common.ReferenceId))
	}
	return added, removed
}
