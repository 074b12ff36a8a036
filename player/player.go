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

// Package player drives playback: it paces frames, honors the pause
// flag, loops the video, and shuttles frames and gaze points between the
// reconstruction source and the display.
package player

import (
	"context"
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"github.com/juju/ratelimit"

	"github.com/LayeredVideoProject/gaze-player/loglimiter"
	"github.com/LayeredVideoProject/gaze-player/video"
)

const pausePollInterval = 50 * time.Millisecond

// Source reconstructs playback frames.
type Source interface {
	NumFrames() int
	Render(frame int, gaze video.Gaze) *image.RGBA
}

// Display is the presentation surface. It is external to the core: it
// shows frames, reports the gaze point, and may call TogglePause back on
// the player from its own event handling.
type Display interface {
	Present(img *image.RGBA, status string)
	Gaze() video.Gaze
}

// Player owns the playback loop. The pause flag is the only state shared
// with the display; it is a single atomic bool, polled between frames.
type Player struct {
	// MaxTicks stops playback after that many presented frames. Zero
	// loops forever. Set before calling Play.
	MaxTicks int

	spec    video.Spec
	source  Source
	display Display
	paused  atomic.Bool
	bucket  *ratelimit.Bucket
	log     *loglimiter.LogLimiter
}

func New(spec video.Spec, source Source, display Display, frameInterval time.Duration) *Player {
	return &Player{
		spec:    spec,
		source:  source,
		display: display,
		bucket:  ratelimit.NewBucket(frameInterval, 1),
		log:     loglimiter.New(time.Minute),
	}
}

// TogglePause flips the pause flag. Safe to call from the display's
// event goroutine while Play runs.
func (p *Player) TogglePause() {
	for {
		old := p.paused.Load()
		if p.paused.CompareAndSwap(old, !old) {
			return
		}
	}
}

func (p *Player) Paused() bool {
	return p.paused.Load()
}

// Play loops the video until the context is cancelled or MaxTicks frames
// have been presented. While paused it sleeps in 50 ms increments and
// presents nothing.
func (p *Player) Play(ctx context.Context) error {
	ticks := 0
	for frame := 0; ; frame++ {
		for p.paused.Load() {
			p.log.Print("playback paused")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(pausePollInterval):
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		gaze := p.display.Gaze()
		if !p.spec.GazeOn {
			gaze = video.Gaze{}
		}
		p.display.Present(p.source.Render(frame, gaze), p.status(frame))

		ticks++
		if p.MaxTicks > 0 && ticks >= p.MaxTicks {
			return nil
		}

		p.bucket.Wait(1)
		if frame == p.source.NumFrames()-1 {
			frame = -1
		}
	}
}

func (p *Player) status(frame int) string {
	return fmt.Sprintf("FG Quant: %d  BG Quant: %d  Gaze On: %v  Frame: %d/%d",
		p.spec.ForegroundQuant, p.spec.BackgroundQuant, p.spec.GazeOn,
		frame, p.source.NumFrames())
}
