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

import "github.com/LayeredVideoProject/gaze-player/video"

// FrameMaker paints synthetic luma content straight into a PlaneStore,
// bypassing the file loader. Tests use it to stage known motion.
type FrameMaker struct {
	spec  video.Spec
	store *video.PlaneStore
}

func NewFrameMaker(spec video.Spec, numFrames int) *FrameMaker {
	return &FrameMaker{
		spec:  spec,
		store: video.NewPlaneStore(spec, numFrames),
	}
}

func (fm *FrameMaker) Store() *video.PlaneStore { return fm.store }

func (fm *FrameMaker) Spec() video.Spec { return fm.spec }

// FillLuma sets the whole padded Y plane of a frame to one value.
func (fm *FrameMaker) FillLuma(frame int, v byte) {
	plane := fm.store.Plane(frame, video.ChannelY)
	for i := range plane {
		plane[i] = v
	}
}

// DrawLumaRect paints a height x width rectangle with top-left (row, col)
// onto a frame's Y plane. The rectangle is clipped to the padded frame.
func (fm *FrameMaker) DrawLumaRect(frame, row, col, height, width int, v byte) {
	plane := fm.store.Plane(frame, video.ChannelY)
	stride := fm.spec.WidthPadded()
	for r := row; r < row+height && r < fm.spec.HeightPadded(); r++ {
		if r < 0 {
			continue
		}
		for c := col; c < col+width && c < stride; c++ {
			if c < 0 {
				continue
			}
			plane[r*stride+c] = v
		}
	}
}
