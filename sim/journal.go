// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ProbeChain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ProbeChain. If not, see <http://www.gnu.org/licenses/>.

package sim

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/stationeers/simcore/common"
)

// journalEntry is one observed touch of a reference id during a tick. The
// manager's journal is an append log of these, the same entries-plus-
// dirties shape as core/state's change journal, adapted from "revertible
// account mutation" to "what changed this tick, for a polling client to
// diff against" (spec §9 "concurrent-looking UI" design note) — there is
// no revert() here, since the manager never rolls a tick back.
type journalEntry struct {
	id common.ReferenceId
}

// journal accumulates the reference ids touched during the tick currently
// in progress, plus a small bounded cache of ids touched recently across
// ticks so a client that reconnects mid-stream can ask "has this changed
// since I last looked" without the manager keeping an unbounded history.
type journal struct {
	entries []journalEntry
	dirties map[common.ReferenceId]int

	recent *lru.Cache
}

// newJournal creates a journal whose cross-tick recency cache holds at most
// recentCap ids.
func newJournal(recentCap int) *journal {
	recent, _ := lru.New(recentCap) // recentCap <= 0 is the only failure mode
	return &journal{
		dirties: make(map[common.ReferenceId]int),
		recent:  recent,
	}
}

// touch records that id changed during the current tick.
func (j *journal) touch(id common.ReferenceId) {
	j.entries = append(j.entries, journalEntry{id: id})
	j.dirties[id]++
	j.recent.Add(id, struct{}{})
}

// touchUntracked records a change with no owning reference id — an
// atmospheric-network mutation, which is identified by NetworkID rather
// than ReferenceId. It still counts toward phase 4's change_count.
func (j *journal) touchUntracked() {
	j.entries = append(j.entries, journalEntry{id: common.InvalidReferenceId})
}

// dirtied returns every reference id touched since the last reset, in no
// particular order.
func (j *journal) dirtied() []common.ReferenceId {
	out := make([]common.ReferenceId, 0, len(j.dirties))
	for id := range j.dirties {
		out = append(out, id)
	}
	return out
}

// reset clears the current tick's change set; the cross-tick recency cache
// is left untouched.
func (j *journal) reset() {
	j.entries = j.entries[:0]
	j.dirties = make(map[common.ReferenceId]int)
}

// recentlyTouched reports whether id has been touched within the last
// recentCap touches across any number of ticks.
func (j *journal) recentlyTouched(id common.ReferenceId) bool {
	return j.recent.Contains(id)
}
