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

// Package digest is used to create fingerprints of the emulator's output.
//
// The Video type is a renderloop.Canvas. The fingerprint of each frame is
// chained with the fingerprint of the previous frame, so the Hash() after N
// frames identifies the entire sequence of frames and not just the last one.
// Two runs of the same program with the same random seed and the same input
// will produce the same hash.
package digest

// Digest implementations compute a hash of the emulation's output.
type Digest interface {
	Hash() string
	ResetDigest()
}
