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
	"context"

	"github.com/jetsetilly/dis64/curated"
)

// Keyboard is not supported on windows. Monitoring is ended with ctrl-c.
func Keyboard(_ context.Context, _ context.CancelFunc, _ chan<- bool) error {
	return curated.Errorf("monitor: keyboard: not supported on this platform")
}
