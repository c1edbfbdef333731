// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the name and version of the application.
//
// The version number is set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher8/version.number=v0.1.0"
//
// Without a version number the version is "unreleased" if the build has VCS
// information and "local" if it does not, which is usually the case with
// "go run".
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8"

// set by the linker
var number string

type info struct {
	version  string
	revision string
	release  bool
}

var buildInfo = sync.OnceValue(func() info {
	var vcs, modified bool
	var rev string

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	inf := info{version: number, revision: rev, release: number != ""}

	switch {
	case rev == "":
		inf.revision = "no revision information"
	case modified:
		inf.revision = fmt.Sprintf("%s+dirty", rev)
	}

	if number == "" {
		if vcs {
			inf.version = "unreleased"
		} else {
			inf.version = "local"
		}
	}

	return inf
})

// Version returns the version string, the revision string and whether this
// is a numbered release.
func Version() (string, string, bool) {
	inf := buildInfo()
	return inf.version, inf.revision, inf.release
}

// String returns a single line description of the application and its
// version.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
