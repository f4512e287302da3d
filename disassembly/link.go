// This file is part of Dis64.
//
// Dis64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dis64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dis64.  If not, see <https://www.gnu.org/licenses/>.

package disassembly

import "sort"

// find the entry at the address. entries must be in address order.
func find(entries []*Entry, addr uint16) *Entry {
	i := sort.Search(len(entries), func(i int) bool {
		return entries[i].Address >= addr
	})
	if i < len(entries) && entries[i].Address == addr {
		return entries[i]
	}
	return nil
}

// link resolves the target of every control transfer and records a
// back-reference on the target. the target of an entry is calculated from the
// entry alone so the order of the entries in the list does not matter for
// anything other than the order of the back-references.
//
// targets that can't be resolved are left as nil. this is normal for targets
// in ROM or outside of the image. returns the number of unresolved targets.
func link(entries []*Entry) int {
	for _, e := range entries {
		e.Target = nil
		e.Refs = e.Refs[:0]
	}

	var unresolved int

	for _, e := range entries {
		if !e.isControlTransfer() {
			continue // for loop
		}

		addr, ok := e.TargetAddress()
		if !ok {
			unresolved++
			continue // for loop
		}

		t := find(entries, addr)
		if t == nil {
			unresolved++
			continue // for loop
		}

		e.Target = t
		t.Refs = append(t.Refs, e)
	}

	return unresolved
}
