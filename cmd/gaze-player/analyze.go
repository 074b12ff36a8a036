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

package main

import "log"

// AnalysisResult aggregates segmentation stats over a whole clip.
type AnalysisResult struct {
	FrameCount       int
	TotalBlocks      int
	ForegroundBlocks int
	MaxForeground    int
	MaxSAD           int32
}

// Analyze walks every frame's grid and reports how the classifier
// behaved, without opening a display. Useful for tuning input material.
func Analyze(vid *Video, verbose bool) *AnalysisResult {
	result := &AnalysisResult{}
	for frame := 0; frame < vid.NumFrames(); frame++ {
		grid := vid.Grid(frame)
		fg := grid.ForegroundCount()
		var frameMaxSAD int32
		var sumDX, sumDY int
		for y := 0; y < grid.Rows(); y++ {
			for x := 0; x < grid.Cols(); x++ {
				b := grid.At(x, y)
				if b.SAD > frameMaxSAD {
					frameMaxSAD = b.SAD
				}
				sumDX += int(b.DX)
				sumDY += int(b.DY)
			}
		}

		result.FrameCount++
		result.TotalBlocks += grid.Len()
		result.ForegroundBlocks += fg
		if fg > result.MaxForeground {
			result.MaxForeground = fg
		}
		if frameMaxSAD > result.MaxSAD {
			result.MaxSAD = frameMaxSAD
		}

		if verbose {
			log.Printf("frame %d: foreground %d/%d, max SAD %d, net motion (%d,%d)",
				frame, fg, grid.Len(), frameMaxSAD, sumDX, sumDY)
		}
	}
	return result
}
