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

package video

import "github.com/pkg/errors"

// Spec holds the geometry and quantization parameters for one video.
// It is built once at startup and never mutated afterwards.
type Spec struct {
	FrameWidth      int
	FrameHeight     int
	MacroBlockSize  int
	DCTBlockSize    int
	SearchParam     int
	GazeSize        int
	ForegroundQuant int
	BackgroundQuant int
	GazeOn          bool
}

func (s Spec) Validate() error {
	if s.FrameWidth <= 0 || s.FrameHeight <= 0 {
		return errors.Errorf("frame dimensions must be positive, got %dx%d", s.FrameWidth, s.FrameHeight)
	}
	if s.MacroBlockSize <= 0 {
		return errors.New("macro-block-size must be positive")
	}
	if s.DCTBlockSize <= 0 || s.MacroBlockSize%s.DCTBlockSize != 0 {
		return errors.New("macro-block-size must be a multiple of dct-block-size")
	}
	if s.SearchParam < 2 || s.SearchParam&(s.SearchParam-1) != 0 {
		return errors.New("search-param must be a power of two >= 2")
	}
	if s.GazeSize <= 0 {
		return errors.New("gaze-size must be positive")
	}
	if s.ForegroundQuant < 1 {
		return errors.New("foreground quantizer must be >= 1")
	}
	if s.BackgroundQuant < 1 {
		return errors.New("background quantizer must be >= 1")
	}
	return nil
}

// WidthPadded is the frame width rounded up to a whole number of macroblocks.
func (s Spec) WidthPadded() int {
	return roundUp(s.FrameWidth, s.MacroBlockSize)
}

// HeightPadded is the frame height rounded up to a whole number of macroblocks.
func (s Spec) HeightPadded() int {
	return roundUp(s.FrameHeight, s.MacroBlockSize)
}

// FrameSizePadded is the pixel count of one padded plane.
func (s Spec) FrameSizePadded() int {
	return s.WidthPadded() * s.HeightPadded()
}

// FrameBytes is the size of one unpadded RGB frame in the input file.
func (s Spec) FrameBytes() int {
	return s.FrameWidth * s.FrameHeight * 3
}

// MacroBlocksX and MacroBlocksY give the macroblock grid dimensions.
func (s Spec) MacroBlocksX() int { return s.WidthPadded() / s.MacroBlockSize }
func (s Spec) MacroBlocksY() int { return s.HeightPadded() / s.MacroBlockSize }

func (s Spec) NumMacroBlocks() int { return s.MacroBlocksX() * s.MacroBlocksY() }

// DCTBlocksX and DCTBlocksY give the DCT block grid dimensions over the
// padded frame.
func (s Spec) DCTBlocksX() int { return s.WidthPadded() / s.DCTBlockSize }
func (s Spec) DCTBlocksY() int { return s.HeightPadded() / s.DCTBlockSize }

func (s Spec) NumDCTBlocks() int { return s.DCTBlocksX() * s.DCTBlocksY() }

func roundUp(n, multiple int) int {
	if n%multiple == 0 {
		return n
	}
	return (n/multiple + 1) * multiple
}

// Gaze is a pointer position in frame coordinates. On reports whether the
// position is live; when false the coordinates are ignored.
type Gaze struct {
	X  int
	Y  int
	On bool
}
