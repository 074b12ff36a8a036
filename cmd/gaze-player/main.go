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
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	arg "github.com/alexflint/go-arg"
	"github.com/pkg/errors"

	"github.com/LayeredVideoProject/gaze-player/player"
)

var version = "<not set>"

type Args struct {
	Input           string `arg:"positional" help:"raw planar RGB video file (.rgb, optionally .zst or .gz compressed)"`
	ForegroundQuant int    `arg:"positional" help:"foreground quantizer, integer >= 1"`
	BackgroundQuant int    `arg:"positional" help:"background quantizer, integer >= 1"`
	Gaze            string `arg:"positional" help:"1 to steer quantization with the pointer, 0 to disable"`
	ConfigFile      string `arg:"-c,--config" help:"path to configuration file"`
	Analyze         bool   `arg:"--analyze" help:"report per-frame segmentation stats instead of playing"`
	Frames          int    `arg:"--frames" help:"stop playback after this many frames (0 loops forever)"`
	Timestamps      bool   `arg:"-t,--timestamps" help:"include timestamps in log output"`
	Verbose         bool   `arg:"-v,--verbose" help:"make logging more verbose"`
}

func (Args) Version() string {
	return version
}

func procArgs() Args {
	var args Args
	arg.MustParse(&args)
	return args
}

func main() {
	err := runMain()
	if err != nil {
		log.Fatal(err)
	}
}

func runMain() error {
	args := procArgs()

	if !args.Timestamps {
		log.SetFlags(0) // Removes default timestamp flag
	}

	log.Printf("running version: %s", version)

	gazeOn, err := parseGazeFlag(args.Gaze)
	if err != nil {
		return err
	}

	conf, err := ParseConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	spec := conf.Spec(args.ForegroundQuant, args.BackgroundQuant, gazeOn)
	if err := spec.Validate(); err != nil {
		return err
	}
	logConfig(conf, args.Input)

	vid, err := LoadVideo(args.Input, spec, args.Verbose)
	if err != nil {
		return err
	}

	if args.Analyze {
		result := Analyze(vid, args.Verbose)
		log.Printf("Frames: %d  Foreground blocks: %d/%d (max %d in one frame)",
			result.FrameCount, result.ForegroundBlocks, result.TotalBlocks, result.MaxForeground)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Print("video now playing")
	p := player.New(spec, vid, NewLogDisplay(), time.Second/time.Duration(conf.FrameRate))
	p.MaxTicks = args.Frames
	err = p.Play(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func parseGazeFlag(flag string) (bool, error) {
	switch flag {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return false, errors.Errorf("gaze flag must be 1 or 0, got %q", flag)
}

func logConfig(conf *Config, input string) {
	log.Printf("input file: %s", input)
	log.Printf("frame size: %dx%d", conf.FrameWidth, conf.FrameHeight)
	log.Printf("macro blocks: %d  dct blocks: %d  search: %d", conf.MacroBlockSize, conf.DCTBlockSize, conf.SearchParam)
	log.Printf("gaze window: %d", conf.GazeSize)
	log.Printf("frame rate: %d", conf.FrameRate)
}
