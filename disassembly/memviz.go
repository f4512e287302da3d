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

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Visualise writes a graphviz description of the control flow structure of
// the disassembly. Only entries that transfer control or that are the target
// of a transfer are included.
func (dsm *Disassembly) Visualise(output io.Writer) {
	flow := make([]*Entry, 0, len(dsm.entries))
	for _, e := range dsm.entries {
		if e.Target != nil || len(e.Refs) > 0 {
			flow = append(flow, e)
		}
	}
	memviz.Map(output, &flow)
}
