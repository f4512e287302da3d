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
	"fmt"
	"sort"
	"strings"
)

// table maps an address to a symbol. it also keeps track of the widest symbol
// in the table.
type table struct {
	byAddr map[uint16]string

	// sorted keys of the byAddr map
	sortedIdx []uint16

	maxWidth int
}

func newTable() *table {
	return &table{
		byAddr: make(map[uint16]string),
	}
}

func (t *table) String() string {
	s := strings.Builder{}
	for _, a := range t.sortedIdx {
		s.WriteString(fmt.Sprintf("$%04x -> %s\n", a, t.byAddr[a]))
	}
	return s.String()
}

// make sure symbol is normalised: no leading or trailing space and internal
// space replaced with underscores
func normaliseSymbol(symbol string) string {
	return strings.Join(strings.Fields(symbol), "_")
}

func (t *table) get(addr uint16) (string, bool) {
	v, ok := t.byAddr[addr]
	return v, ok
}

// add symbol to table. an existing symbol at the address is replaced only if
// prefer is true. returns false if the symbol was not added
func (t *table) add(addr uint16, symbol string, prefer bool) bool {
	symbol = normaliseSymbol(symbol)
	if symbol == "" {
		return false
	}

	if _, ok := t.byAddr[addr]; ok {
		if !prefer {
			return false
		}
	} else {
		t.sortedIdx = append(t.sortedIdx, addr)
		sort.Sort(t)
	}

	t.byAddr[addr] = symbol
	if len(symbol) > t.maxWidth {
		t.maxWidth = len(symbol)
	}

	return true
}

// search is case insensitive.
func (t *table) search(symbol string) (uint16, bool) {
	symbol = strings.ToUpper(normaliseSymbol(symbol))
	for _, a := range t.sortedIdx {
		if strings.ToUpper(t.byAddr[a]) == symbol {
			return a, true
		}
	}
	return 0, false
}

// Len implements the sort.Interface.
func (t *table) Len() int {
	return len(t.sortedIdx)
}

// Less implements the sort.Interface.
func (t *table) Less(i, j int) bool {
	return t.sortedIdx[i] < t.sortedIdx[j]
}

// Swap implements the sort.Interface.
func (t *table) Swap(i, j int) {
	t.sortedIdx[i], t.sortedIdx[j] = t.sortedIdx[j], t.sortedIdx[i]
}
