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

import (
	"image"
	"log"

	"github.com/LayeredVideoProject/gaze-player/dct"
	"github.com/LayeredVideoProject/gaze-player/layers"
	"github.com/LayeredVideoProject/gaze-player/motion"
	"github.com/LayeredVideoProject/gaze-player/render"
	"github.com/LayeredVideoProject/gaze-player/rgbio"
	"github.com/LayeredVideoProject/gaze-player/video"
)

// Video is one fully preprocessed clip: padded planes, per-frame layer
// masks, and cached forward DCT coefficients. Everything here is built
// during load and read only afterwards; only the renderer's scratch
// buffers mutate during playback.
type Video struct {
	spec     video.Spec
	store    *video.PlaneStore
	grids    []*motion.Grid
	coeffs   []*dct.FrameCoeffs
	renderer *render.Renderer
}

// LoadVideo runs the whole offline pipeline: ingest, motion estimation,
// layer classification, and the forward DCT cache.
func LoadVideo(path string, spec video.Spec, verbose bool) (*Video, error) {
	log.Print("loading file...")
	store, err := rgbio.Load(path, spec)
	if err != nil {
		return nil, err
	}
	log.Printf("frames to prepare: %d", store.NumFrames())
	logMemoryFootprint(spec, store.NumFrames())

	engine := dct.NewEngine(spec)
	vid := &Video{
		spec:     spec,
		store:    store,
		grids:    make([]*motion.Grid, store.NumFrames()),
		coeffs:   make([]*dct.FrameCoeffs, store.NumFrames()),
		renderer: render.New(spec, engine),
	}

	for frame := 0; frame < store.NumFrames(); frame++ {
		grid := motion.EstimateFrame(store, spec, frame)
		layers.Assign(grid)
		vid.grids[frame] = grid
		vid.coeffs[frame] = engine.ForwardFrame(store, spec, frame)
		if verbose {
			log.Printf("prepared frame %d/%d (%d foreground blocks)",
				frame+1, store.NumFrames(), grid.ForegroundCount())
		}
	}
	return vid, nil
}

func (v *Video) NumFrames() int { return v.store.NumFrames() }

func (v *Video) Spec() video.Spec { return v.spec }

// Render reconstructs one frame for presentation.
func (v *Video) Render(frame int, gaze video.Gaze) *image.RGBA {
	return v.renderer.Frame(v.coeffs[frame], v.grids[frame], gaze)
}

// Grid exposes a frame's macroblock grid; the analyzer reads it.
func (v *Video) Grid(frame int) *motion.Grid { return v.grids[frame] }

// logMemoryFootprint reports the two dominant in-memory structures. The
// whole video stays resident: four byte planes per frame plus three
// float32 coefficient planes per frame.
func logMemoryFootprint(spec video.Spec, numFrames int) {
	planeBytes := int64(numFrames) * 4 * int64(spec.FrameSizePadded())
	coeffBytes := int64(numFrames) * 3 * int64(spec.FrameSizePadded()) * 4
	log.Printf("plane store: %d MB, coefficient cache: %d MB",
		planeBytes>>20, coeffBytes>>20)
}
