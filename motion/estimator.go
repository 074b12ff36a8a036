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

package motion

import (
	"math"

	"github.com/LayeredVideoProject/gaze-player/video"
)

// EstimateFrame builds the macroblock grid for one frame. Frame 0 has no
// predecessor; its blocks keep zero motion and zero error.
func EstimateFrame(store *video.PlaneStore, spec video.Spec, frame int) *Grid {
	grid := NewGrid(spec.MacroBlocksX(), spec.MacroBlocksY())
	if frame == 0 {
		return grid
	}

	cur := store.Plane(frame, video.ChannelY)
	prev := store.Plane(frame-1, video.ChannelY)
	est := estimator{
		cur:    cur,
		prev:   prev,
		width:  spec.WidthPadded(),
		height: spec.HeightPadded(),
		m:      spec.MacroBlockSize,
	}

	for mbY := 0; mbY < grid.Rows(); mbY++ {
		for mbX := 0; mbX < grid.Cols(); mbX++ {
			est.search(grid.At(mbX, mbY), mbY*spec.MacroBlockSize, mbX*spec.MacroBlockSize, spec.SearchParam)
		}
	}
	return grid
}

type estimator struct {
	cur    []byte
	prev   []byte
	width  int
	height int
	m      int
}

// search runs the logarithmic search for the macroblock with top-left
// (r0, c0). Each round halves the step and probes the 9 offsets around the
// best position so far; the centre candidate wins ties so flat regions do
// not drift. Candidates whose window leaves the padded frame are skipped.
func (e *estimator) search(block *Block, r0, c0, searchParam int) {
	step := searchParam
	bestR, bestC := r0, c0
	var finalSAD int32

	for step > 1 {
		step /= 2
		best := int32(math.MaxInt32)
		nextR, nextC := bestR, bestC
		for i := -1; i <= 1; i++ {
			for j := -1; j <= 1; j++ {
				tr := bestR + i*step
				tc := bestC + j*step
				if !e.windowInBounds(tr, tc) {
					continue
				}
				cur := e.sad(r0, c0, tr, tc)
				if i == 0 && j == 0 {
					if cur <= best {
						best = cur
						nextR, nextC = tr, tc
					}
				} else if cur < best {
					best = cur
					nextR, nextC = tr, tc
				}
			}
		}
		bestR, bestC = nextR, nextC
		finalSAD = best
	}

	block.DX = int16(bestC - c0)
	block.DY = int16(bestR - r0)
	block.SAD = finalSAD
}

func (e *estimator) windowInBounds(row, col int) bool {
	if row < 0 || col < 0 {
		return false
	}
	return row+e.m <= e.height && col+e.m <= e.width
}

// sad sums absolute luma differences between the home window in the
// current frame and the target window in the previous frame.
func (e *estimator) sad(homeRow, homeCol, targetRow, targetCol int) int32 {
	var total int32
	for i := 0; i < e.m; i++ {
		home := e.cur[(homeRow+i)*e.width+homeCol:]
		target := e.prev[(targetRow+i)*e.width+targetCol:]
		for j := 0; j < e.m; j++ {
			d := int32(home[j]) - int32(target[j])
			if d < 0 {
				d = -d
			}
			total += d
		}
	}
	return total
}
