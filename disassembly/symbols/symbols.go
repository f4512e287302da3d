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
	"sync"
)

// Symbols contains all currently defined symbols.
type Symbols struct {
	read  *table
	write *table

	crit sync.Mutex
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
// The returned instance contains the canonical symbols.
func NewSymbols() *Symbols {
	sym := &Symbols{
		read:  newTable(),
		write: newTable(),
	}
	sym.canonise()
	return sym
}

// put canonical symbols into the tables. should be called in critical section.
func (sym *Symbols) canonise() {
	for k, v := range canonicalShared {
		sym.read.add(k, v, true)
		sym.write.add(k, v, true)
	}
	for k, v := range canonicalRead {
		sym.read.add(k, v, true)
	}
	for k, v := range canonicalWrite {
		sym.write.add(k, v, true)
	}
}

// AddSymbol to both the read and write tables. Canonical symbols are replaced
// only if prefer is true.
func (sym *Symbols) AddSymbol(addr uint16, symbol string, prefer bool) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	r := sym.read.add(addr, symbol, prefer)
	w := sym.write.add(addr, symbol, prefer)
	return r || w
}

// GetReadSymbol returns the symbol for an address that is being read.
func (sym *Symbols) GetReadSymbol(addr uint16) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.read.get(addr)
}

// GetWriteSymbol returns the symbol for an address that is being written.
func (sym *Symbols) GetWriteSymbol(addr uint16) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.write.get(addr)
}

// Search for the address of a symbol. The read table is searched before the
// write table.
func (sym *Symbols) Search(symbol string) (uint16, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	if a, ok := sym.read.search(symbol); ok {
		return a, true
	}
	return sym.write.search(symbol)
}

// SymbolWidth returns the maximum number of characters required by a symbol.
func (sym *Symbols) SymbolWidth() int {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return max(sym.read.maxWidth, sym.write.maxWidth)
}
