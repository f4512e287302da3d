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

package monitor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/dis64/test"
)

// poller records the size of the file each time the monitored function is
// called
type poller struct {
	filename string
	sizes    []int64
}

func (p *poller) fn() error {
	b, err := os.ReadFile(p.filename)
	if err != nil {
		return err
	}
	p.sizes = append(p.sizes, int64(len(b)))
	return nil
}

func TestPartialWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.prg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0xc0}, 0o644))

	p := &poller{filename: fn}
	m := NewMonitor(fn, 0)

	m.check(p.fn, true)
	test.DemandEquality(t, len(p.sizes), 1)

	// the file is emptied and one poll sees it before the new contents arrive
	test.DemandSuccess(t, os.Truncate(fn, 0))
	m.check(p.fn, false)
	test.ExpectEquality(t, len(p.sizes), 1)

	f, err := os.OpenFile(fn, os.O_WRONLY, 0o644)
	test.DemandSuccess(t, err)
	_, err = f.Write([]byte{0x00, 0xc0, 0x60})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, f.Close())

	// the new contents must be seen twice before the function is called
	m.check(p.fn, false)
	test.ExpectEquality(t, len(p.sizes), 1)
	m.check(p.fn, false)
	test.DemandEquality(t, len(p.sizes), 2)
	test.ExpectEquality(t, p.sizes[1], int64(3))

	// no further calls while the file is unchanged
	m.check(p.fn, false)
	m.check(p.fn, false)
	test.ExpectEquality(t, len(p.sizes), 2)
}

func TestSettledChange(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.prg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0xc0}, 0o644))

	p := &poller{filename: fn}
	m := NewMonitor(fn, 0)
	m.check(p.fn, true)

	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0xc0, 0x60, 0x60}, 0o644))
	m.check(p.fn, false)
	test.ExpectEquality(t, len(p.sizes), 1)
	m.check(p.fn, false)
	test.DemandEquality(t, len(p.sizes), 2)
	test.ExpectEquality(t, p.sizes[1], int64(4))
}

func TestForcedCheck(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.prg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0xc0}, 0o644))

	p := &poller{filename: fn}
	m := NewMonitor(fn, 0)
	m.check(p.fn, true)

	// a forced check calls the function immediately for an unsettled change
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0xc0, 0x60}, 0o644))
	m.check(p.fn, false)
	m.check(p.fn, true)
	test.DemandEquality(t, len(p.sizes), 2)

	// and the settled state is not reported a second time
	m.check(p.fn, false)
	test.ExpectEquality(t, len(p.sizes), 2)
}

func TestMissingFileResets(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.prg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0xc0}, 0o644))

	p := &poller{filename: fn}
	m := NewMonitor(fn, 0)
	m.check(p.fn, true)

	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0xc0, 0x60}, 0o644))
	m.check(p.fn, false)
	test.ExpectSuccess(t, m.hasPending)

	test.DemandSuccess(t, os.Remove(fn))
	m.check(p.fn, false)
	test.ExpectFailure(t, m.hasPending)
	test.ExpectEquality(t, len(p.sizes), 1)
}
