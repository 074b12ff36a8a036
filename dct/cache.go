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

package dct

import (
	"runtime"
	"sync"

	"github.com/LayeredVideoProject/gaze-player/video"
)

// FrameCoeffs caches the forward DCT coefficients for every block of one
// frame, in row-major block order over the padded frame.
type FrameCoeffs struct {
	size     int // DCT block size
	cols     int // blocks per row
	rows     int
	blockLen int
	coeffs   []float32
}

func (fc *FrameCoeffs) NumBlocks() int { return fc.cols * fc.rows }

// Block returns the coefficient slice of block i.
func (fc *FrameCoeffs) Block(i int) []float32 {
	start := i * fc.blockLen
	return fc.coeffs[start : start+fc.blockLen : start+fc.blockLen]
}

// TopLeft gives block i's top-left pixel position in padded coordinates.
func (fc *FrameCoeffs) TopLeft(i int) (x, y int) {
	return (i % fc.cols) * fc.size, (i / fc.cols) * fc.size
}

// Center gives block i's centre pixel position, used for gaze and
// macroblock lookups.
func (fc *FrameCoeffs) Center(i int) (x, y int) {
	tx, ty := fc.TopLeft(i)
	return tx + fc.size/2, ty + fc.size/2
}

// ForwardFrame computes and caches the forward DCT of every block in one
// frame. Blocks are disjoint, so the work is spread over worker
// goroutines by block row; the result is identical to a serial pass.
func (e *Engine) ForwardFrame(store *video.PlaneStore, spec video.Spec, frame int) *FrameCoeffs {
	fc := &FrameCoeffs{
		size:     e.size,
		cols:     spec.DCTBlocksX(),
		rows:     spec.DCTBlocksY(),
		blockLen: e.BlockLen(),
	}
	fc.coeffs = make([]float32, fc.NumBlocks()*fc.blockLen)

	workers := runtime.NumCPU()
	if workers > fc.rows {
		workers = fc.rows
	}

	var wg sync.WaitGroup
	rowCh := make(chan int, fc.rows)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for blockRow := range rowCh {
				for blockCol := 0; blockCol < fc.cols; blockCol++ {
					i := blockRow*fc.cols + blockCol
					e.forwardBlock(store, frame, blockRow*e.size, blockCol*e.size, fc.Block(i))
				}
			}
		}()
	}
	for blockRow := 0; blockRow < fc.rows; blockRow++ {
		rowCh <- blockRow
	}
	close(rowCh)
	wg.Wait()

	return fc
}
