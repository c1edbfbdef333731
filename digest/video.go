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

package digest

import (
	"encoding/binary"
	"fmt"
	"image/color"

	"github.com/cespare/xxhash"
)

// the number of bytes used to store each pixel
const pixelDepth = 3

// the number of bytes reserved at the head of the pixel data for the
// previous digest
const chainSize = 8

// Video computes a chained hash of every frame painted to it.
type Video struct {
	width  int
	height int

	digest uint64
	pixels []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// width and height should be the dimensions of the render loop that paints
// to it.
func NewVideo(width, height int) (*Video, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("digest: bad dimensions (%dx%d)", width, height)
	}

	return &Video{
		width:  width,
		height: height,
		pixels: make([]byte, chainSize+width*height*pixelDepth),
	}, nil
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%016x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = 0
	dig.frames = 0
	clear(dig.pixels)
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// FillRect implements the renderloop.Canvas interface. The parts of the
// rectangle outside of the canvas are ignored.
func (dig *Video) FillRect(x, y, w, h int, col color.RGBA) error {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, dig.width), min(y+h, dig.height)

	for py := y0; py < y1; py++ {
		i := chainSize + (py*dig.width+x0)*pixelDepth
		for px := x0; px < x1; px++ {
			dig.pixels[i] = col.R
			dig.pixels[i+1] = col.G
			dig.pixels[i+2] = col.B
			i += pixelDepth
		}
	}

	return nil
}

// EndFrame implements the renderloop.Canvas interface.
func (dig *Video) EndFrame() error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	binary.BigEndian.PutUint64(dig.pixels, dig.digest)
	dig.digest = xxhash.Sum64(dig.pixels)
	dig.frames++
	return nil
}
