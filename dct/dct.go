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

// Package dct implements the block transform stage: forward DCT of 8x8
// RGB blocks, coefficient quantization, and the inverse transform back to
// pixels. Forward coefficients for a whole frame are computed once and
// cached; quantization and the inverse run per playback tick.
package dct

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/LayeredVideoProject/gaze-player/video"
)

const numColorChannels = 3

// CosTable holds cos(((2x+1) * u * pi) / (2S)) indexed [u][x]. One table
// serves both transform directions.
type CosTable [][]float32

func NewCosTable(size int) CosTable {
	table := make(CosTable, size)
	for u := 0; u < size; u++ {
		table[u] = make([]float32, size)
		for x := 0; x < size; x++ {
			table[u][x] = float32(math.Cos(float64(2*x+1) * float64(u) * math.Pi / float64(2*size)))
		}
	}
	return table
}

// Engine transforms blocks for one video geometry.
type Engine struct {
	size     int
	width    int // padded frame width
	table    CosTable
	scale    float32 // 2/S
	invSqrt2 float32 // alpha factor for u or v == 0
}

func NewEngine(spec video.Spec) *Engine {
	size := spec.DCTBlockSize
	return &Engine{
		size:     size,
		width:    spec.WidthPadded(),
		table:    NewCosTable(size),
		scale:    2 / float32(size),
		invSqrt2: 1 / math32.Sqrt(2),
	}
}

// BlockLen is the number of float32 coefficients one block occupies.
func (e *Engine) BlockLen() int { return numColorChannels * e.size * e.size }

// forwardBlock computes the forward DCT of one block with top-left
// (r0, c0), writing coefficients indexed [channel][u][v] into dst. The
// alpha factors apply after the inner sum, u then v, then the 2/S scale.
func (e *Engine) forwardBlock(store *video.PlaneStore, frame, r0, c0 int, dst []float32) {
	size := e.size
	for ch := 0; ch < numColorChannels; ch++ {
		plane := store.Plane(frame, video.Channel(ch))
		for u := 0; u < size; u++ {
			cosU := e.table[u]
			for v := 0; v < size; v++ {
				cosV := e.table[v]
				var sum float32
				for x := 0; x < size; x++ {
					col := c0 + x
					for y := 0; y < size; y++ {
						p := float32(plane[(r0+y)*e.width+col])
						sum += p * cosU[x] * cosV[y]
					}
				}
				if u == 0 {
					sum *= e.invSqrt2
				}
				if v == 0 {
					sum *= e.invSqrt2
				}
				dst[(ch*size+u)*size+v] = sum * e.scale
			}
		}
	}
}

// Quantize coarsens coefficients: round half away from zero after
// dividing by the quantizer, then scale back up.
func (e *Engine) Quantize(dst, src []float32, quant int) {
	q := float32(quant)
	for i, c := range src {
		dst[i] = math32.Round(c/q) * q
	}
}

// Inverse transforms quantized coefficients back to pixel bytes indexed
// [channel][x][y]. Results clamp to [0, 255] and truncate to byte.
func (e *Engine) Inverse(coeffs []float32, out []byte) {
	size := e.size
	for ch := 0; ch < numColorChannels; ch++ {
		block := coeffs[ch*size*size : (ch+1)*size*size]
		for x := 0; x < size; x++ {
			for y := 0; y < size; y++ {
				var sum float32
				for u := 0; u < size; u++ {
					cosUX := e.table[u][x]
					for v := 0; v < size; v++ {
						partial := block[u*size+v] * cosUX * e.table[v][y]
						if u == 0 {
							partial *= e.invSqrt2
						}
						if v == 0 {
							partial *= e.invSqrt2
						}
						sum += partial
					}
				}
				sum *= e.scale
				if sum > 255 {
					sum = 255
				}
				if sum < 0 {
					sum = 0
				}
				out[(ch*size+x)*size+y] = byte(sum)
			}
		}
	}
}
