// gaze-player - foreground/background aware video compression simulator
//  Copyright (C) 2025, The LayeredVideo Project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package render reconstructs playback frames from cached DCT
// coefficients, picking each block's quantizer from the gaze window and
// the foreground mask.
package render

import (
	"image"

	"github.com/LayeredVideoProject/gaze-player/dct"
	"github.com/LayeredVideoProject/gaze-player/motion"
	"github.com/LayeredVideoProject/gaze-player/video"
)

// Renderer holds the per-tick scratch buffers. It is not safe for
// concurrent use; playback renders one frame at a time.
type Renderer struct {
	spec      video.Spec
	engine    *dct.Engine
	quantized []float32
	pixels    []byte
}

func New(spec video.Spec, engine *dct.Engine) *Renderer {
	return &Renderer{
		spec:      spec,
		engine:    engine,
		quantized: make([]float32, engine.BlockLen()),
		pixels:    make([]byte, engine.BlockLen()),
	}
}

// Frame reconstructs one frame. Every block is quantized with the gaze
// window's unit quantizer, the foreground quantizer, or the background
// quantizer, inverse-transformed, and stamped into the output image
// cropped to the unpadded frame.
func (r *Renderer) Frame(coeffs *dct.FrameCoeffs, grid *motion.Grid, gaze video.Gaze) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.spec.FrameWidth, r.spec.FrameHeight))
	for i := 0; i < coeffs.NumBlocks(); i++ {
		r.engine.Quantize(r.quantized, coeffs.Block(i), r.quantizer(coeffs, grid, gaze, i))
		r.engine.Inverse(r.quantized, r.pixels)
		r.stamp(img, coeffs, i)
	}
	return img
}

// quantizer picks the effective quantizer for block i from its centre
// pixel: the gaze window forces 1, otherwise the containing macroblock's
// layer decides.
func (r *Renderer) quantizer(coeffs *dct.FrameCoeffs, grid *motion.Grid, gaze video.Gaze, i int) int {
	cx, cy := coeffs.Center(i)
	if gaze.On && absInt(cx-gaze.X) <= r.spec.GazeSize/2 && absInt(cy-gaze.Y) <= r.spec.GazeSize/2 {
		return 1
	}
	if grid.At(cx/r.spec.MacroBlockSize, cy/r.spec.MacroBlockSize).Foreground {
		return r.spec.ForegroundQuant
	}
	return r.spec.BackgroundQuant
}

// stamp writes the scratch pixels of block i into the image, dropping
// anything past the unpadded frame edge.
func (r *Renderer) stamp(img *image.RGBA, coeffs *dct.FrameCoeffs, i int) {
	size := r.spec.DCTBlockSize
	tx, ty := coeffs.TopLeft(i)
	for x := 0; x < size; x++ {
		col := tx + x
		if col >= r.spec.FrameWidth {
			break
		}
		for y := 0; y < size; y++ {
			row := ty + y
			if row >= r.spec.FrameHeight {
				break
			}
			off := img.PixOffset(col, row)
			img.Pix[off+0] = r.pixels[x*size+y]
			img.Pix[off+1] = r.pixels[(size+x)*size+y]
			img.Pix[off+2] = r.pixels[(2*size+x)*size+y]
			img.Pix[off+3] = 0xFF
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
