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
	"time"

	"github.com/LayeredVideoProject/gaze-player/loglimiter"
	"github.com/LayeredVideoProject/gaze-player/video"
)

// LogDisplay is the headless presentation surface: it discards frames
// and logs the status line at most once a second. A windowed display
// implementing player.Display plugs in the same way.
type LogDisplay struct {
	log      *loglimiter.LogLimiter
	lastLine time.Time
}

func NewLogDisplay() *LogDisplay {
	return &LogDisplay{
		log: loglimiter.New(time.Second),
	}
}

func (d *LogDisplay) Present(img *image.RGBA, status string) {
	// The status changes every frame, so the limiter alone would not
	// throttle; only pass a line through once a second.
	if time.Since(d.lastLine) < time.Second {
		return
	}
	d.lastLine = time.Now()
	d.log.Print(status)
}

// Gaze reports no pointer; there is no window to point at.
func (d *LogDisplay) Gaze() video.Gaze {
	return video.Gaze{}
}
