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

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/LayeredVideoProject/gaze-player/video"
)

// Config carries the video geometry and playback settings. Quantizers and
// the gaze flag come from the command line instead; they change per run.
type Config struct {
	FrameWidth     int `yaml:"frame-width"`
	FrameHeight    int `yaml:"frame-height"`
	MacroBlockSize int `yaml:"macro-block-size"`
	DCTBlockSize   int `yaml:"dct-block-size"`
	SearchParam    int `yaml:"search-param"`
	GazeSize       int `yaml:"gaze-size"`
	FrameRate      int `yaml:"frame-rate"`
}

var defaultConfig = Config{
	FrameWidth:     960,
	FrameHeight:    540,
	MacroBlockSize: 16,
	DCTBlockSize:   8,
	SearchParam:    16,
	GazeSize:       64,
	FrameRate:      30,
}

// ParseConfigFile loads the YAML config over the defaults. An empty
// filename keeps the defaults untouched.
func ParseConfigFile(filename string) (*Config, error) {
	conf := defaultConfig
	if filename == "" {
		return &conf, nil
	}
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(buf)
}

func ParseConfig(buf []byte) (*Config, error) {
	conf := defaultConfig
	if err := yaml.Unmarshal(buf, &conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (conf *Config) Validate() error {
	if conf.FrameRate <= 0 {
		return errors.New("frame-rate must be positive")
	}
	return nil
}

// Spec combines the config with the per-run CLI parameters.
func (conf *Config) Spec(fgQuant, bgQuant int, gazeOn bool) video.Spec {
	return video.Spec{
		FrameWidth:      conf.FrameWidth,
		FrameHeight:     conf.FrameHeight,
		MacroBlockSize:  conf.MacroBlockSize,
		DCTBlockSize:    conf.DCTBlockSize,
		SearchParam:     conf.SearchParam,
		GazeSize:        conf.GazeSize,
		ForegroundQuant: fgQuant,
		BackgroundQuant: bgQuant,
		GazeOn:          gazeOn,
	}
}
