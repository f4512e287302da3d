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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/dis64/curated"
	"github.com/jetsetilly/dis64/disassembly"
	"github.com/jetsetilly/dis64/programloader"
)

// sentinal error returned by the disassembly loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the disassembler using the supplied program.
//
// The program will be disassembled repeatedly for the specified duration and
// will create a cpu, memory profile, a trace (or a combination of those) as
// defined by the Profile argument.
func Check(output io.Writer, profile Profile, prg programloader.Program, cfg disassembly.Config, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var numDisasm int
	var numEntries int

	runner := func() error {
		timer := time.NewTimer(dur)
		defer timer.Stop()

		for {
			select {
			case <-timer.C:
				return timedOut
			default:
			}

			dsm, err := disassembly.FromProgram(prg, cfg)
			if err != nil {
				return err
			}
			numDisasm++
			numEntries += len(dsm.Entries())
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	rate := CalcRate(numDisasm, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f disassemblies per second (%d in %.2f seconds) %.0f entries per second\n",
		rate, numDisasm, dur.Seconds(), CalcRate(numEntries, dur.Seconds()))))

	return nil
}

// CalcRate takes the number of events and the duration (in seconds) and
// returns the number of events per second.
func CalcRate(n int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(n) / duration
}
