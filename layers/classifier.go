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

// Package layers assigns each macroblock to the foreground or background
// layer. Blocks whose motion deviates from the frame average and whose SAD
// sits in a plausibility band seed the foreground; a neighbor filter then
// stabilizes the mask and dilation grows it to a workable size.
package layers

import (
	"github.com/chewxy/math32"

	"github.com/LayeredVideoProject/gaze-player/motion"
)

const (
	// Initial assignment: SAD must sit strictly inside this band.
	sadLowerThresh = 500
	sadUpperThresh = 8000

	// Motion vector deviation from the frame average must exceed
	// mvDiffBase; each retry relaxes the bar by mvDiffStep.
	mvDiffBase float32 = 2.2
	mvDiffStep float32 = 0.33

	minForegroundBlocks = 7
	maxRuns             = 5

	// Neighbor filter: counts of background neighbors in the
	// 8-neighborhood. Corners have 3 neighbors, edges 5, interior 8.
	cornerBackgroundThresh = 2
	edgeBackgroundThresh   = 3
	edgeForegroundThresh   = 1
	stdBackgroundThresh    = 6
	stdForegroundThresh    = 4

	expandTarget = minForegroundBlocks * 3
)

// Assign runs the full classification over one frame's grid: thresholding
// with retries, the in-place neighbor filter, then dilation.
func Assign(grid *motion.Grid) {
	avgDX, avgDY := motionAverage(grid)

	var relax float32
	count := 0
	for runs := 0; count < minForegroundBlocks && runs < maxRuns; runs++ {
		count = initialAssignment(grid, avgDX, avgDY, mvDiffBase-relax)
		relax += mvDiffStep
	}

	count = neighborFilter(grid)

	if count < grid.Len()/3 {
		count = dilate(grid)
	}
	for runs := 0; count < expandTarget && runs < maxRuns; runs++ {
		count = dilate(grid)
	}
}

func motionAverage(grid *motion.Grid) (avgDX, avgDY float32) {
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			b := grid.At(x, y)
			avgDX += float32(b.DX)
			avgDY += float32(b.DY)
		}
	}
	n := float32(grid.Len())
	return avgDX / n, avgDY / n
}

// initialAssignment marks every block foreground or background from
// scratch and returns the foreground count.
func initialAssignment(grid *motion.Grid, avgDX, avgDY, mvThresh float32) int {
	count := 0
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			b := grid.At(x, y)
			deviation := math32.Abs(avgDX-float32(b.DX)) + math32.Abs(avgDY-float32(b.DY))
			b.Foreground = b.SAD > sadLowerThresh && b.SAD < sadUpperThresh &&
				deviation > mvThresh
			if b.Foreground {
				count++
			}
		}
	}
	return count
}

// neighborFilter reassigns blocks from their 8-neighborhood. The pass runs
// row-major and in place: later blocks see the updated state of earlier
// ones. This ordering is part of the mask's defined behavior.
func neighborFilter(grid *motion.Grid) int {
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			b := grid.At(x, y)
			bg := backgroundNeighbors(grid, x, y)
			switch {
			case isCorner(grid, x, y):
				b.Foreground = bg < cornerBackgroundThresh
			case isEdge(grid, x, y):
				if bg >= edgeBackgroundThresh {
					b.Foreground = false
				} else if bg <= edgeForegroundThresh {
					b.Foreground = true
				}
			default:
				if bg >= stdBackgroundThresh {
					b.Foreground = false
				}
				if bg <= stdForegroundThresh {
					b.Foreground = true
				}
			}
		}
	}
	return grid.ForegroundCount()
}

// backgroundNeighbors counts background blocks in the 8-neighborhood.
// Positions outside the grid are not background.
func backgroundNeighbors(grid *motion.Grid, homeX, homeY int) int {
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := homeX+dx, homeY+dy
			if grid.InBounds(x, y) && !grid.At(x, y).Foreground {
				count++
			}
		}
	}
	return count
}

func isCorner(grid *motion.Grid, x, y int) bool {
	return (x == 0 || x == grid.Cols()-1) && (y == 0 || y == grid.Rows()-1)
}

// isEdge reports whether the block sits on the frame border. Corners also
// qualify; callers check isCorner first.
func isEdge(grid *motion.Grid, x, y int) bool {
	return x == 0 || y == 0 || x == grid.Cols()-1 || y == grid.Rows()-1
}

// dilate grows the foreground by one block along the 4-neighborhood. The
// pass is double-buffered so it is order-independent. Returns the new
// foreground count.
func dilate(grid *motion.Grid) int {
	next := make([]bool, grid.Len())
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			if grid.At(x, y).Foreground {
				next[y*grid.Cols()+x] = true
				continue
			}
			next[y*grid.Cols()+x] = anyForeground4(grid, x, y)
		}
	}

	count := 0
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			fg := next[y*grid.Cols()+x]
			grid.At(x, y).Foreground = fg
			if fg {
				count++
			}
		}
	}
	return count
}

func anyForeground4(grid *motion.Grid, x, y int) bool {
	for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
		if grid.InBounds(n[0], n[1]) && grid.At(n[0], n[1]).Foreground {
			return true
		}
	}
	return false
}
