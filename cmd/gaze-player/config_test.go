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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyConfigFilenameKeepsDefaults(t *testing.T) {
	conf, err := ParseConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *conf)
}

func TestAllDefaultsAfterParsingEmptyConfig(t *testing.T) {
	conf, err := ParseConfig([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, 960, conf.FrameWidth)
	assert.Equal(t, 540, conf.FrameHeight)
	assert.Equal(t, 16, conf.MacroBlockSize)
	assert.Equal(t, 8, conf.DCTBlockSize)
	assert.Equal(t, 16, conf.SearchParam)
	assert.Equal(t, 64, conf.GazeSize)
	assert.Equal(t, 30, conf.FrameRate)
}

func TestParsePartialConfigOverridesDefaults(t *testing.T) {
	conf, err := ParseConfig([]byte(`
frame-width: 640
frame-height: 360
frame-rate: 24
`))
	require.NoError(t, err)
	assert.Equal(t, 640, conf.FrameWidth)
	assert.Equal(t, 360, conf.FrameHeight)
	assert.Equal(t, 24, conf.FrameRate)
	assert.Equal(t, 16, conf.MacroBlockSize)
	assert.Equal(t, 64, conf.GazeSize)
}

func TestInvalidFrameRateDoesntValidate(t *testing.T) {
	_, err := ParseConfig([]byte("frame-rate: 0"))
	assert.EqualError(t, err, "frame-rate must be positive")
}

func TestSpecCarriesQuantizersAndGaze(t *testing.T) {
	conf, err := ParseConfig(nil)
	require.NoError(t, err)

	spec := conf.Spec(3, 25, true)
	require.NoError(t, spec.Validate())
	assert.Equal(t, 3, spec.ForegroundQuant)
	assert.Equal(t, 25, spec.BackgroundQuant)
	assert.True(t, spec.GazeOn)
	assert.Equal(t, 960, spec.FrameWidth)
}

func TestParseGazeFlag(t *testing.T) {
	on, err := parseGazeFlag("1")
	require.NoError(t, err)
	assert.True(t, on)

	off, err := parseGazeFlag("0")
	require.NoError(t, err)
	assert.False(t, off)

	_, err = parseGazeFlag("2")
	assert.Error(t, err)
	_, err = parseGazeFlag("true")
	assert.Error(t, err)
}

func TestBadQuantizersFailSpecValidation(t *testing.T) {
	conf, err := ParseConfig(nil)
	require.NoError(t, err)

	assert.Error(t, conf.Spec(0, 10, false).Validate())
	assert.Error(t, conf.Spec(10, -1, false).Validate())
	assert.NoError(t, conf.Spec(1, 1, false).Validate())
}
