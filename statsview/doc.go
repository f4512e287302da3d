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

// Package statsview offers runtime statistics over HTTP while dis64 is running
// for a long time, such as when monitoring a file. The server is only
// available when the statsview build tag is present:
//
//	go build -tags statsview .
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12664/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:12664/debug/pprof/
//
// Without the build tag Launch() writes a message explaining that the server
// is not available.
package statsview
