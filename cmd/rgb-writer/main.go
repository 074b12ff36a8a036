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

// rgb-writer generates synthetic raw RGB clips for exercising the
// player: a diagonal gradient backdrop with a bright square translating
// across it. Output is the player's input format, optionally
// zstd-compressed when the path ends in .zst.
package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"strings"

	arg "github.com/alexflint/go-arg"
	"github.com/klauspost/compress/zstd"
)

var version = "<not set>"

type Args struct {
	Output     string `arg:"positional" help:"output file (.rgb, or .rgb.zst for compressed)"`
	Width      int    `arg:"--width" help:"frame width"`
	Height     int    `arg:"--height" help:"frame height"`
	Frames     int    `arg:"--frames" help:"number of frames"`
	SquareSize int    `arg:"--square" help:"side of the moving square in pixels"`
	Step       int    `arg:"--step" help:"square movement per frame in pixels"`
	Timestamps bool   `arg:"-t,--timestamps" help:"include timestamps in log output"`
}

func (Args) Version() string {
	return version
}

func procArgs() Args {
	args := Args{
		Width:      960,
		Height:     540,
		Frames:     90,
		SquareSize: 64,
		Step:       6,
	}
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
		log.SetFlags(0)
	}

	log.Printf("running version: %s", version)
	log.Printf("writing %d frames of %dx%d to %s", args.Frames, args.Width, args.Height, args.Output)

	f, err := os.Create(args.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, 1<<20)
	var w io.Writer = bw
	var enc *zstd.Encoder
	if strings.HasSuffix(args.Output, ".zst") {
		enc, err = zstd.NewWriter(bw)
		if err != nil {
			return err
		}
		w = enc
	}

	if err := writeClip(w, args); err != nil {
		return err
	}

	if enc != nil {
		if err := enc.Close(); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeClip(w io.Writer, args Args) error {
	row := make([]byte, args.Width)
	for frame := 0; frame < args.Frames; frame++ {
		// The square walks diagonally and wraps at the frame edge.
		sqRow := (frame * args.Step) % (args.Height - args.SquareSize)
		sqCol := (frame * args.Step * 2) % (args.Width - args.SquareSize)

		for ch := 0; ch < 3; ch++ {
			for y := 0; y < args.Height; y++ {
				for x := 0; x < args.Width; x++ {
					row[x] = pixel(ch, y, x, sqRow, sqCol, args.SquareSize)
				}
				if _, err := w.Write(row); err != nil {
					return err
				}
			}
		}

		if (frame+1)%30 == 0 {
			log.Printf("wrote frame %d/%d", frame+1, args.Frames)
		}
	}
	return nil
}

func pixel(ch, row, col, sqRow, sqCol, sqSize int) byte {
	if row >= sqRow && row < sqRow+sqSize && col >= sqCol && col < sqCol+sqSize {
		// Bright square with a little per-channel tint.
		return byte(230 - ch*20)
	}
	return byte((row/4 + col/4 + ch*40) % 200)
}
