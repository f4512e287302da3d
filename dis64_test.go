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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/dis64/test"
)

// a program with a BASIC stub "10 SYS2061" and a short loop
var program = []byte{
	0x01, 0x08, 0x0b, 0x08, 0x0a, 0x00, 0x9e, '2', '0', '6', '1', 0x00, 0x00, 0x00,
	0xa2, 0x00, // LDX #$00
	0xe8,       // INX
	0xd0, 0xfd, // BNE $080f
	0x60, // RTS
}

func writeProgram(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.prg")
	test.DemandSuccess(t, os.WriteFile(fn, program, 0o644))
	return fn
}

func TestDisasm(t *testing.T) {
	fn := writeProgram(t)

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{fn}, w), exitOK)

	s := w.String()
	test.ExpectSuccess(t, strings.Contains(s, "; # GENERATED BY DIS64"))
	test.ExpectSuccess(t, strings.Contains(s, "*=$0801"))
	test.ExpectSuccess(t, strings.Contains(s, "label0:"))
	test.ExpectSuccess(t, strings.Contains(s, "bne label0"))

	// explicit mode and flags
	w.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"disasm", "-nobinary", "-acme", fn}, w), exitOK)
	s = w.String()
	test.ExpectSuccess(t, strings.Contains(s, "\nlabel0\n"))
	test.ExpectFailure(t, strings.Contains(s, "$080F"))
}

func TestDisasmToFile(t *testing.T) {
	fn := writeProgram(t)
	out := filepath.Join(t.TempDir(), "test.asm")
	viz := filepath.Join(t.TempDir(), "test.dot")

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-memviz", viz, fn, out}, w), exitOK)
	test.ExpectEquality(t, w.String(), "")

	b, err := os.ReadFile(out)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "rts"))

	b, err = os.ReadFile(viz)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "digraph"))
}

func TestErrors(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{}, w), exitModeError)
	test.ExpectEquality(t, w.String(), "* error in DISASM mode: program file required for DISASM mode\n")

	w.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"test.bin"}, w), exitModeError)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in DISASM mode: programloader: unsupported file format"))

	w.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"disk"}, w), exitModeError)
	test.ExpectEquality(t, w.String(), "* error in DISK mode: disk image required for DISK mode\n")
}

func TestHelp(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-help"}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "DISASM, MONITOR, DISK, SYMBOLS, PERFORMANCE, VERSION"))
}

func TestSymbols(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"symbols", "-write"}, w), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "\nWrite Symbols\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "FRELO1"))
}

func TestVersion(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"version"}, w), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Dis64 "))
}
