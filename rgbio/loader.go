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

// Package rgbio reads raw planar RGB video files into a video.PlaneStore.
// A frame on disk is three row-major width*height planes (R, then G, then
// B) with no headers. Files ending in .zst or .gz are decompressed
// transparently; the frame count always comes from the uncompressed size.
package rgbio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/LayeredVideoProject/gaze-player/video"
)

// Y plane derivation weights, ITU-R BT.601.
const (
	redToGray   = 0.299
	greenToGray = 0.587
	blueToGray  = 0.114
)

// Load reads the whole file into a populated PlaneStore: every frame's R,
// G and B planes padded by edge replication to the macroblock grid, plus
// the derived and blurred Y plane.
func Load(path string, spec video.Spec) (*video.PlaneStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load video")
	}
	defer f.Close()

	r, size, err := frameStream(f, path)
	if err != nil {
		return nil, err
	}

	frameBytes := int64(spec.FrameBytes())
	if size == 0 {
		return nil, errors.Errorf("load video: %s is empty", path)
	}
	if size%frameBytes != 0 {
		return nil, errors.Errorf(
			"load video: %s is %d bytes which is not a whole number of %d byte frames",
			path, size, frameBytes)
	}

	store := video.NewPlaneStore(spec, int(size/frameBytes))
	if err := fill(r, store, spec, path); err != nil {
		return nil, err
	}
	return store, nil
}

// frameStream maps the file onto an uncompressed byte stream of known
// length. Compressed inputs are expanded in memory first because the frame
// count is derived from the uncompressed size.
func frameStream(f *os.File, path string) (io.Reader, int64, error) {
	switch {
	case strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "load video: %s", path)
		}
		defer dec.Close()
		buf, err := io.ReadAll(dec)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "load video: decompress %s", path)
		}
		return bytes.NewReader(buf), int64(len(buf)), nil
	case strings.HasSuffix(path, ".gz"):
		dec, err := gzip.NewReader(f)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "load video: %s", path)
		}
		defer dec.Close()
		buf, err := io.ReadAll(dec)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "load video: decompress %s", path)
		}
		return bytes.NewReader(buf), int64(len(buf)), nil
	default:
		info, err := f.Stat()
		if err != nil {
			return nil, 0, errors.Wrap(err, "load video")
		}
		return bufio.NewReaderSize(f, 1<<16), info.Size(), nil
	}
}

func fill(r io.Reader, store *video.PlaneStore, spec video.Spec, path string) error {
	offset := int64(0)
	for frame := 0; frame < store.NumFrames(); frame++ {
		for _, ch := range []video.Channel{video.ChannelR, video.ChannelG, video.ChannelB} {
			n, err := readPlane(r, store, spec, frame, ch)
			offset += n
			if err != nil {
				return errors.Wrapf(err, "load video: %s at byte %d (frame %d, channel %s)",
					path, offset, frame, ch)
			}
		}
		deriveY(store, spec, frame)
		blurY(store, spec, frame)
	}
	return nil
}

// readPlane reads one unpadded plane row by row, replicating the last real
// column across the pad columns and the last real row across the pad rows.
func readPlane(r io.Reader, store *video.PlaneStore, spec video.Spec, frame int, ch video.Channel) (int64, error) {
	var n int64
	for row := 0; row < spec.FrameHeight; row++ {
		dst := store.Row(frame, ch, row)
		read, err := io.ReadFull(r, dst[:spec.FrameWidth])
		n += int64(read)
		if err != nil {
			return n, err
		}
		last := dst[spec.FrameWidth-1]
		for col := spec.FrameWidth; col < spec.WidthPadded(); col++ {
			dst[col] = last
		}
	}
	lastRow := store.Row(frame, ch, spec.FrameHeight-1)
	for row := spec.FrameHeight; row < spec.HeightPadded(); row++ {
		copy(store.Row(frame, ch, row), lastRow)
	}
	return n, nil
}

// deriveY computes the luma plane over the full padded area.
func deriveY(store *video.PlaneStore, spec video.Spec, frame int) {
	r := store.Plane(frame, video.ChannelR)
	g := store.Plane(frame, video.ChannelG)
	b := store.Plane(frame, video.ChannelB)
	y := store.Plane(frame, video.ChannelY)
	for i := range y {
		gray := redToGray*float32(r[i]) + greenToGray*float32(g[i]) + blueToGray*float32(b[i])
		if gray > 255 {
			gray = 255
		}
		if gray < 0 {
			gray = 0
		}
		y[i] = byte(gray)
	}
}

// blurKernel is the 3x3 weighted box filter applied to the luma plane.
// Index layout matches the neighborhood: row major, centre at 4.
var blurKernel = [9]int{
	1, 2, 1,
	2, 4, 2,
	1, 2, 1,
}

// blurY smooths the frame's Y plane in a single pass. Each output pixel is
// the kernel-weighted average of the in-bounds neighbors, normalized by the
// weights actually used, so edge pixels stay unbiased. Reads come from an
// unblurred snapshot of the plane.
func blurY(store *video.PlaneStore, spec video.Spec, frame int) {
	y := store.Plane(frame, video.ChannelY)
	snapshot := append([]byte(nil), y...)

	width := spec.WidthPadded()
	height := spec.HeightPadded()
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			sum := 0
			weight := 0
			for k := 0; k < 9; k++ {
				nr := row + k/3 - 1
				nc := col + k%3 - 1
				if nr < 0 || nr >= height || nc < 0 || nc >= width {
					continue
				}
				sum += blurKernel[k] * int(snapshot[nr*width+nc])
				weight += blurKernel[k]
			}
			y[row*width+col] = byte(sum / weight)
		}
	}
}
