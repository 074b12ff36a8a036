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
	"os"

	"github.com/LayeredVideoProject/gaze-player/video"
)

// TestVideoMaker assembles synthetic raw RGB clips in the input file
// format: per frame, full R, G and B planes of unpadded width*height
// bytes. Tests stage known content with it.
type TestVideoMaker struct {
	spec video.Spec
	data []byte
}

func NewTestVideoMaker(spec video.Spec) *TestVideoMaker {
	return &TestVideoMaker{spec: spec}
}

// AddFrame appends one frame generated pixel by pixel.
func (m *TestVideoMaker) AddFrame(pixel func(ch video.Channel, row, col int) byte) {
	for _, ch := range []video.Channel{video.ChannelR, video.ChannelG, video.ChannelB} {
		for row := 0; row < m.spec.FrameHeight; row++ {
			for col := 0; col < m.spec.FrameWidth; col++ {
				m.data = append(m.data, pixel(ch, row, col))
			}
		}
	}
}

// AddGrayFrame appends a frame where R, G and B all follow one generator.
func (m *TestVideoMaker) AddGrayFrame(level func(row, col int) byte) {
	m.AddFrame(func(_ video.Channel, row, col int) byte {
		return level(row, col)
	})
}

func (m *TestVideoMaker) Bytes() []byte { return m.data }

func (m *TestVideoMaker) WriteFile(path string) error {
	return os.WriteFile(path, m.data, 0644)
}
