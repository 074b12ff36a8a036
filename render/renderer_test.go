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

package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LayeredVideoProject/gaze-player/dct"
	"github.com/LayeredVideoProject/gaze-player/motion"
	"github.com/LayeredVideoProject/gaze-player/video"
)

func testSpec() video.Spec {
	return video.Spec{
		FrameWidth:      30,
		FrameHeight:     28,
		MacroBlockSize:  16,
		DCTBlockSize:    8,
		SearchParam:     16,
		GazeSize:        16,
		ForegroundQuant: 1,
		BackgroundQuant: 1,
	}
}

func gradientStore(spec video.Spec) *video.PlaneStore {
	store := video.NewPlaneStore(spec, 1)
	for ch := 0; ch < 3; ch++ {
		plane := store.Plane(0, video.Channel(ch))
		for row := 0; row < spec.HeightPadded(); row++ {
			for col := 0; col < spec.WidthPadded(); col++ {
				// Smooth, non-wrapping ramp so a unit quantizer stays
				// within the DCT roundoff budget.
				plane[row*spec.WidthPadded()+col] = byte(row*3 + col*2 + ch*30)
			}
		}
	}
	return store
}

func renderWith(spec video.Spec, store *video.PlaneStore, grid *motion.Grid, gaze video.Gaze) *image.RGBA {
	engine := dct.NewEngine(spec)
	coeffs := engine.ForwardFrame(store, spec, 0)
	return New(spec, engine).Frame(coeffs, grid, gaze)
}

func TestOutputIsCroppedToUnpaddedFrame(t *testing.T) {
	spec := testSpec()
	img := renderWith(spec, gradientStore(spec), motion.NewGrid(2, 2), video.Gaze{})
	assert.Equal(t, image.Rect(0, 0, 30, 28), img.Bounds())
	// Alpha is set on every written pixel, including the last row/column.
	assert.EqualValues(t, 0xFF, img.Pix[img.PixOffset(29, 27)+3])
	assert.EqualValues(t, 0xFF, img.Pix[img.PixOffset(0, 0)+3])
}

func TestUnitQuantizersReproduceInput(t *testing.T) {
	spec := testSpec()
	store := gradientStore(spec)
	img := renderWith(spec, store, motion.NewGrid(2, 2), video.Gaze{})

	for row := 0; row < spec.FrameHeight; row++ {
		for col := 0; col < spec.FrameWidth; col++ {
			off := img.PixOffset(col, row)
			for ch := 0; ch < 3; ch++ {
				want := int(store.Get(0, video.Channel(ch), row, col))
				got := int(img.Pix[off+ch])
				require.InDelta(t, want, got, 1, "pixel (%d,%d) channel %d", col, row, ch)
			}
		}
	}
}

func TestForegroundMaskSelectsQuantizer(t *testing.T) {
	spec := testSpec()
	spec.ForegroundQuant = 1
	spec.BackgroundQuant = 50
	store := gradientStore(spec)

	// Only macroblock (0,0) is foreground.
	grid := motion.NewGrid(2, 2)
	grid.At(0, 0).Foreground = true
	got := renderWith(spec, store, grid, video.Gaze{})

	allFine := spec
	allFine.BackgroundQuant = 1
	fine := renderWith(allFine, store, motion.NewGrid(2, 2), video.Gaze{})

	allCoarse := spec
	allCoarse.ForegroundQuant = 50
	coarse := renderWith(allCoarse, store, motion.NewGrid(2, 2), video.Gaze{})

	// Inside macroblock (0,0) the output matches the all-fine render;
	// elsewhere it matches the all-coarse render.
	for row := 0; row < spec.FrameHeight; row++ {
		for col := 0; col < spec.FrameWidth; col++ {
			off := got.PixOffset(col, row)
			want := coarse
			if row < 16 && col < 16 {
				want = fine
			}
			for ch := 0; ch < 3; ch++ {
				require.Equal(t, want.Pix[off+ch], got.Pix[off+ch],
					"pixel (%d,%d) channel %d", col, row, ch)
			}
		}
	}
}

func TestGazeWindowForcesUnitQuantizer(t *testing.T) {
	spec := testSpec()
	spec.ForegroundQuant = 40
	spec.BackgroundQuant = 40
	store := gradientStore(spec)
	grid := motion.NewGrid(2, 2)

	gaze := video.Gaze{X: 12, Y: 12, On: true}
	got := renderWith(spec, store, grid, gaze)

	unit := spec
	unit.ForegroundQuant = 1
	unit.BackgroundQuant = 1
	fine := renderWith(unit, store, motion.NewGrid(2, 2), video.Gaze{})

	coarse := renderWith(spec, store, motion.NewGrid(2, 2), video.Gaze{})

	// Gaze at (12,12) with a 16 pixel window covers centres within
	// [4,20]: the four blocks with centres at 4 and 12 on each axis, plus
	// the centre-20 blocks. Block (0,0) is certainly inside; a far block
	// is certainly outside.
	for _, p := range [][2]int{{0, 0}, {7, 7}, {12, 15}} {
		off := got.PixOffset(p[0], p[1])
		for ch := 0; ch < 3; ch++ {
			assert.Equal(t, fine.Pix[off+ch], got.Pix[off+ch],
				"gazed pixel (%d,%d) channel %d", p[0], p[1], ch)
		}
	}
	for _, p := range [][2]int{{29, 27}, {5, 27}} {
		off := got.PixOffset(p[0], p[1])
		for ch := 0; ch < 3; ch++ {
			assert.Equal(t, coarse.Pix[off+ch], got.Pix[off+ch],
				"outside pixel (%d,%d) channel %d", p[0], p[1], ch)
		}
	}
}

func TestGazeOffIgnoresCoordinates(t *testing.T) {
	spec := testSpec()
	spec.ForegroundQuant = 40
	spec.BackgroundQuant = 40
	store := gradientStore(spec)

	plain := renderWith(spec, store, motion.NewGrid(2, 2), video.Gaze{})
	offGaze := renderWith(spec, store, motion.NewGrid(2, 2), video.Gaze{X: 12, Y: 12, On: false})
	assert.Equal(t, plain.Pix, offGaze.Pix)
}
