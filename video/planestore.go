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

import "fmt"

// Channel identifies one byte plane of a frame. The integer values are
// storage offsets inside the PlaneStore and must not be reordered.
type Channel int

const (
	ChannelR Channel = 0
	ChannelG Channel = 1
	ChannelB Channel = 2
	ChannelY Channel = 3

	numChannels = 4
)

func (c Channel) Index() int { return int(c) }

func (c Channel) String() string {
	switch c {
	case ChannelR:
		return "R"
	case ChannelG:
		return "G"
	case ChannelB:
		return "B"
	case ChannelY:
		return "Y"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// PlaneStore owns the padded R, G, B and Y byte planes for every frame of a
// video in one contiguous buffer. It is filled once by the loader and read
// only afterwards. Out-of-range coordinates are a programmer error. They
// are not checked one by one: an index that falls outside the buffer panics
// via the slice bounds check, while an out-of-range row or column that
// still lands inside the buffer reads another pixel.
type PlaneStore struct {
	width     int // padded
	height    int // padded
	numFrames int
	buf       []byte
}

func NewPlaneStore(spec Spec, numFrames int) *PlaneStore {
	return &PlaneStore{
		width:     spec.WidthPadded(),
		height:    spec.HeightPadded(),
		numFrames: numFrames,
		buf:       make([]byte, numFrames*numChannels*spec.FrameSizePadded()),
	}
}

func (ps *PlaneStore) NumFrames() int { return ps.numFrames }

// Get returns the byte at (frame, channel, row, col) in padded coordinates.
func (ps *PlaneStore) Get(frame int, ch Channel, row, col int) byte {
	return ps.buf[((frame*numChannels+ch.Index())*ps.height+row)*ps.width+col]
}

// Plane returns one frame's plane as a mutable row-major slice of
// height*width bytes. The loader writes through this; all other callers
// treat the result as read only.
func (ps *PlaneStore) Plane(frame int, ch Channel) []byte {
	size := ps.height * ps.width
	start := (frame*numChannels + ch.Index()) * size
	return ps.buf[start : start+size : start+size]
}

// Row returns one padded row of a plane.
func (ps *PlaneStore) Row(frame int, ch Channel, row int) []byte {
	plane := ps.Plane(frame, ch)
	return plane[row*ps.width : (row+1)*ps.width]
}
