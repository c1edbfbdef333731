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

// Package screenshot is a renderloop.Canvas that keeps an image of the most
// recently completed frame. The image can be saved as a PNG or JPEG file,
// optionally scaled up.
package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	scale "golang.org/x/image/draw"

	"github.com/jetsetilly/gopher8/logger"
)

// Canvas collects painted rectangles into an image.
type Canvas struct {
	// the image being painted to
	current *image.RGBA

	// copy of current made at the end of every frame. guarded by crit
	// because the image can be saved from a goroutine other than the one
	// doing the painting
	crit  sync.Mutex
	frame *image.RGBA
	ready bool
}

// NewCanvas is the preferred method of initialisation for the Canvas type.
func NewCanvas(width, height int) *Canvas {
	r := image.Rect(0, 0, width, height)
	return &Canvas{
		current: image.NewRGBA(r),
		frame:   image.NewRGBA(r),
	}
}

// FillRect implements the renderloop.Canvas interface.
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) error {
	r := image.Rect(x, y, x+w, y+h)
	draw.Draw(c.current, r, &image.Uniform{col}, image.Point{}, draw.Src)
	return nil
}

// EndFrame implements the renderloop.Canvas interface.
func (c *Canvas) EndFrame() error {
	c.crit.Lock()
	defer c.crit.Unlock()
	copy(c.frame.Pix, c.current.Pix)
	c.ready = true
	return nil
}

// Image returns a copy of the last completed frame. Returns nil if no frame
// has been completed.
func (c *Canvas) Image() *image.RGBA {
	c.crit.Lock()
	defer c.crit.Unlock()
	if !c.ready {
		return nil
	}
	img := image.NewRGBA(c.frame.Bounds())
	copy(img.Pix, c.frame.Pix)
	return img
}

// Scaled returns the last completed frame scaled by the factor. A factor of
// less than one is treated as one.
func (c *Canvas) Scaled(factor int) (*image.RGBA, error) {
	img := c.Image()
	if img == nil {
		return nil, fmt.Errorf("screenshot: no frame to capture")
	}

	factor = max(factor, 1)
	if factor == 1 {
		return img, nil
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	scale.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, scale.Src, nil)
	return dst, nil
}

// WritePNG writes the last completed frame to the writer as a PNG image.
func (c *Canvas) WritePNG(w io.Writer, factor int) error {
	img, err := c.Scaled(factor)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	return nil
}

// WriteJPEG writes the last completed frame to the writer as a JPEG image.
func (c *Canvas) WriteJPEG(w io.Writer, factor int) error {
	img, err := c.Scaled(factor)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: 100}); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	return nil
}

// Save the last completed frame to the named file. The image format is
// chosen by the file extension: JPEG for ".jpg" and ".jpeg" and PNG for
// everything else.
func (c *Canvas) Save(path string, factor int) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer func() {
		err := f.Close()
		if rerr == nil && err != nil {
			rerr = fmt.Errorf("screenshot: %w", err)
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = c.WriteJPEG(f, factor)
	default:
		err = c.WritePNG(f, factor)
	}
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)
	return nil
}
