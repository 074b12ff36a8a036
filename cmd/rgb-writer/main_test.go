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
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArgs() Args {
	return Args{
		Width:      96,
		Height:     64,
		Frames:     3,
		SquareSize: 16,
		Step:       4,
	}
}

func TestWriteClipProducesWholeFrames(t *testing.T) {
	var buf bytes.Buffer
	args := testArgs()
	require.NoError(t, writeClip(&buf, args))
	assert.Equal(t, args.Frames*args.Width*args.Height*3, buf.Len())
}

func TestClipIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, writeClip(&a, testArgs()))
	require.NoError(t, writeClip(&b, testArgs()))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestSquareMovesBetweenFrames(t *testing.T) {
	var buf bytes.Buffer
	args := testArgs()
	require.NoError(t, writeClip(&buf, args))

	frameBytes := args.Width * args.Height * 3
	first := buf.Bytes()[:frameBytes]
	second := buf.Bytes()[frameBytes : 2*frameBytes]
	assert.NotEqual(t, first, second)
}

func TestZstdOutputRoundTrips(t *testing.T) {
	var raw bytes.Buffer
	require.NoError(t, writeClip(&raw, testArgs()))

	var compressed bytes.Buffer
	enc, err := zstd.NewWriter(&compressed)
	require.NoError(t, err)
	_, err = enc.Write(raw.Bytes())
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	dec, err := zstd.NewReader(bytes.NewReader(compressed.Bytes()))
	require.NoError(t, err)
	defer dec.Close()
	out := new(bytes.Buffer)
	_, err = out.ReadFrom(dec)
	require.NoError(t, err)
	assert.Equal(t, raw.Bytes(), out.Bytes())
}
