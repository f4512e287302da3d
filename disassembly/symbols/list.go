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

package symbols

import (
	"io"
)

// ListSymbols outputs every symbol in the read and write tables.
func (sym *Symbols) ListSymbols(output io.Writer) {
	sym.ListReadSymbols(output)
	sym.ListWriteSymbols(output)
}

// ListReadSymbols outputs every symbol in the read table.
func (sym *Symbols) ListReadSymbols(output io.Writer) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	io.WriteString(output, "Read Symbols\n------------\n")
	io.WriteString(output, sym.read.String())
}

// ListWriteSymbols outputs every symbol in the write table.
func (sym *Symbols) ListWriteSymbols(output io.Writer) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	io.WriteString(output, "\nWrite Symbols\n-------------\n")
	io.WriteString(output, sym.write.String())
}
