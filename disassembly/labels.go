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

// allocateLabels gives a label to every entry with at least one
// back-reference. labels are numbered in address order, separately for each
// kind of label.
//
// an entry is labelled as an interrupt handler only if every back-reference
// is from an entry that installs an interrupt handler. if any reference is
// from a branch, jump or subroutine call then the label is an ordinary label.
func allocateLabels(entries []*Entry) (ordinary int, irq int) {
	for _, e := range entries {
		e.Label = Label{}

		if len(e.Refs) == 0 {
			continue // for loop
		}

		if isInterruptHandler(e) {
			e.Label = Label{Kind: LabelIRQ, Index: irq}
			irq++
		} else {
			e.Label = Label{Kind: LabelOrdinary, Index: ordinary}
			ordinary++
		}
	}

	return ordinary, irq
}

func isInterruptHandler(e *Entry) bool {
	for _, r := range e.Refs {
		if r.IsJump() {
			return false
		}
	}
	return len(e.Refs) > 0
}
