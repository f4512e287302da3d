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

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteTable writes the statistics as a table with the title.
func (s Stats) WriteTable(output io.Writer, title string) {
	t := table.NewWriter()
	t.SetOutputMirror(output)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"", "Count"})
	t.AppendRows([]table.Row{
		{"Entries", s.Entries},
		{"Unknown opcodes", s.Unknown},
		{"Zero runs", s.RawRuns},
		{"Labels", s.Labels},
		{"IRQ handlers", s.IRQs},
		{"Unresolved targets", s.Unresolved},
	})
	t.Render()
}
