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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() Spec {
	return Spec{
		FrameWidth:      30,
		FrameHeight:     20,
		MacroBlockSize:  16,
		DCTBlockSize:    8,
		SearchParam:     16,
		GazeSize:        64,
		ForegroundQuant: 1,
		BackgroundQuant: 1,
	}
}

func TestPaddingRoundsUpToMacroBlockSize(t *testing.T) {
	spec := testSpec()
	assert.Equal(t, 32, spec.WidthPadded())
	assert.Equal(t, 32, spec.HeightPadded())
	assert.Equal(t, 1024, spec.FrameSizePadded())
	assert.Equal(t, 2, spec.MacroBlocksX())
	assert.Equal(t, 2, spec.MacroBlocksY())
	assert.Equal(t, 4, spec.DCTBlocksX())
	assert.Equal(t, 16, spec.NumDCTBlocks())
}

func TestAlignedDimensionsAreNotPadded(t *testing.T) {
	spec := testSpec()
	spec.FrameWidth = 64
	spec.FrameHeight = 32
	assert.Equal(t, 64, spec.WidthPadded())
	assert.Equal(t, 32, spec.HeightPadded())
}

func TestSpecValidate(t *testing.T) {
	good := testSpec()
	require.NoError(t, good.Validate())

	bad := good
	bad.ForegroundQuant = 0
	assert.EqualError(t, bad.Validate(), "foreground quantizer must be >= 1")

	bad = good
	bad.BackgroundQuant = -3
	assert.EqualError(t, bad.Validate(), "background quantizer must be >= 1")

	bad = good
	bad.SearchParam = 12
	assert.EqualError(t, bad.Validate(), "search-param must be a power of two >= 2")

	bad = good
	bad.SearchParam = 1
	assert.Error(t, bad.Validate())

	bad = good
	bad.DCTBlockSize = 6
	assert.EqualError(t, bad.Validate(), "macro-block-size must be a multiple of dct-block-size")

	bad = good
	bad.FrameWidth = 0
	assert.Error(t, bad.Validate())
}

func TestChannelIndexOrderIsFixed(t *testing.T) {
	assert.Equal(t, 0, ChannelR.Index())
	assert.Equal(t, 1, ChannelG.Index())
	assert.Equal(t, 2, ChannelB.Index())
	assert.Equal(t, 3, ChannelY.Index())
	assert.Equal(t, "Y", ChannelY.String())
}

func TestPlaneStoreAddressing(t *testing.T) {
	spec := testSpec()
	store := NewPlaneStore(spec, 2)
	require.Equal(t, 2, store.NumFrames())

	plane := store.Plane(1, ChannelB)
	require.Len(t, plane, spec.FrameSizePadded())
	plane[5*spec.WidthPadded()+7] = 0xAB

	assert.EqualValues(t, 0xAB, store.Get(1, ChannelB, 5, 7))
	assert.EqualValues(t, 0, store.Get(0, ChannelB, 5, 7))
	assert.EqualValues(t, 0, store.Get(1, ChannelG, 5, 7))
	assert.EqualValues(t, 0xAB, store.Row(1, ChannelB, 5)[7])
}

func TestPlaneStorePlanesDoNotOverlap(t *testing.T) {
	spec := testSpec()
	store := NewPlaneStore(spec, 1)
	for _, ch := range []Channel{ChannelR, ChannelG, ChannelB, ChannelY} {
		plane := store.Plane(0, ch)
		for i := range plane {
			plane[i] = byte(ch.Index() + 1)
		}
	}
	assert.EqualValues(t, 1, store.Get(0, ChannelR, 31, 31))
	assert.EqualValues(t, 2, store.Get(0, ChannelG, 0, 0))
	assert.EqualValues(t, 3, store.Get(0, ChannelB, 15, 16))
	assert.EqualValues(t, 4, store.Get(0, ChannelY, 31, 0))
}
