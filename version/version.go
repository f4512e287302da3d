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

// Package version reports the version of the dis64 executable. The version
// number is set at link time by the makefile:
//
//	go build -ldflags "-X github.com/jetsetilly/dis64/version.number=v0.1.0"
//
// Without a version number the VCS information recorded by the Go toolchain
// is used instead.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Dis64"

// set by the linker
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this is a
// numbered release.
//
// A version of "unreleased" means that the project was built from a VCS
// checkout without a version number. A version of "local" means there is no
// version number and no VCS information, as happens with "go run".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version in a form suitable for
// printing.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = fromBuildInfo(number, debug.ReadBuildInfo)
}

func fromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := read(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = s.Value
			case "vcs.modified":
				vcsModified = s.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
