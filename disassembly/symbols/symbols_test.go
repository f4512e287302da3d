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

package symbols_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/dis64/disassembly/symbols"
	"github.com/jetsetilly/dis64/test"
)

func TestCanonicalSymbols(t *testing.T) {
	sym := symbols.NewSymbols()

	s, ok := sym.GetReadSymbol(0xd012)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "RASTER")

	s, ok = sym.GetWriteSymbol(0xd020)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "EXTCOL")

	s, ok = sym.GetReadSymbol(0xffd2)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "CHROUT")

	// SID voice registers are write only
	_, ok = sym.GetReadSymbol(0xd400)
	test.ExpectFailure(t, ok)
	s, ok = sym.GetWriteSymbol(0xd400)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "FRELO1")

	// and the SID random register is read only
	_, ok = sym.GetWriteSymbol(0xd41b)
	test.ExpectFailure(t, ok)
	s, _ = sym.GetReadSymbol(0xd41b)
	test.ExpectEquality(t, s, "RANDOM")

	_, ok = sym.GetReadSymbol(0x1234)
	test.ExpectFailure(t, ok)
}

func TestAddSymbol(t *testing.T) {
	sym := symbols.NewSymbols()

	// canonical symbols are not replaced unless preferred
	test.ExpectFailure(t, sym.AddSymbol(0xd020, "border", false))
	s, _ := sym.GetReadSymbol(0xd020)
	test.ExpectEquality(t, s, "EXTCOL")

	test.ExpectSuccess(t, sym.AddSymbol(0xd020, "border colour", true))
	s, _ = sym.GetWriteSymbol(0xd020)
	test.ExpectEquality(t, s, "border_colour")

	test.ExpectSuccess(t, sym.AddSymbol(0x4000, "screen", false))
	a, ok := sym.Search("SCREEN")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint16(0x4000))

	test.ExpectEquality(t, sym.SymbolWidth(), len("border_colour"))
}

func TestReadSymbolsFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.sym")
	contents := "; symbols\n" +
		"main = $0810\n" +
		"irqhandler\t= 0x0900 ; comment\n" +
		"counter = 251\n" +
		"bad line\n" +
		"toobig = $10000\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(contents), 0o644))

	sym := symbols.NewSymbols()
	test.DemandSuccess(t, sym.ReadSymbolsFile(fn))

	s, ok := sym.GetReadSymbol(0x0810)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "main")

	s, _ = sym.GetWriteSymbol(0x0900)
	test.ExpectEquality(t, s, "irqhandler")

	s, _ = sym.GetReadSymbol(0x00fb)
	test.ExpectEquality(t, s, "counter")

	_, ok = sym.Search("toobig")
	test.ExpectFailure(t, ok)

	test.ExpectFailure(t, sym.ReadSymbolsFile(filepath.Join(t.TempDir(), "missing.sym")))
}

func TestListSymbols(t *testing.T) {
	sym := symbols.NewSymbols()
	w := &strings.Builder{}
	sym.ListSymbols(w)

	s := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "Read Symbols\n------------\n$0000 -> D6510\n"))
	test.ExpectSuccess(t, strings.Contains(s, "\nWrite Symbols\n-------------\n"))
	test.ExpectSuccess(t, strings.Contains(s, "$d418 -> SIGVOL\n"))
}
