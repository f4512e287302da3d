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
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/dis64/curated"
	"github.com/jetsetilly/dis64/logger"
)

// ReadSymbolsFile adds the symbols in the named file to the tables. The file
// is in the format written by ACME's --symbollist option and accepted by
// most assemblers:
//
//	CHROUT = $ffd2
//	border	= $d020 ; comment
//
// Symbols from the file replace canonical symbols at the same address.
// Unparseable lines are logged and skipped.
func (sym *Symbols) ReadSymbolsFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf("symbols: %v", err)
	}
	defer f.Close()

	sym.crit.Lock()
	defer sym.crit.Unlock()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++

		s := scanner.Text()
		if i := strings.IndexByte(s, ';'); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue // for loop
		}

		name, value, ok := strings.Cut(s, "=")
		if !ok {
			logger.Logf(logger.Allow, "symbols", "%s: line %d: no assignment", filename, line)
			continue // for loop
		}

		addr, err := parseAddress(strings.TrimSpace(value))
		if err != nil {
			logger.Logf(logger.Allow, "symbols", "%s: line %d: %v", filename, line, err)
			continue // for loop
		}

		name = strings.TrimSpace(name)
		sym.read.add(addr, name, true)
		sym.write.add(addr, name, true)
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("symbols: %v", err)
	}

	return nil
}

// parseAddress accepts $hex, 0xhex and decimal values.
func parseAddress(s string) (uint16, error) {
	var v uint64
	var err error

	switch {
	case strings.HasPrefix(s, "$"):
		v, err = strconv.ParseUint(s[1:], 16, 16)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseUint(s[2:], 16, 16)
	default:
		v, err = strconv.ParseUint(s, 10, 16)
	}

	if err != nil {
		return 0, curated.Errorf("not an address: %s", s)
	}
	return uint16(v), nil
}
