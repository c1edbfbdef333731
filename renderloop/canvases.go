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

package renderloop

import "image/color"

type canvases []Canvas

// Canvases combines several canvases into one. Painting is forwarded to each
// canvas in the order they are given. The first error stops the forwarding
// and is returned.
func Canvases(c ...Canvas) Canvas {
	return canvases(c)
}

func (cs canvases) FillRect(x, y, w, h int, col color.RGBA) error {
	for _, c := range cs {
		if err := c.FillRect(x, y, w, h, col); err != nil {
			return err
		}
	}
	return nil
}

func (cs canvases) EndFrame() error {
	for _, c := range cs {
		if err := c.EndFrame(); err != nil {
			return err
		}
	}
	return nil
}
