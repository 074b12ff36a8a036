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

// Package motion estimates per-macroblock motion between consecutive
// frames using a logarithmic (three-step) search over the luma plane.
package motion

// Block holds one macroblock's motion estimate and layer assignment.
// DX and DY point from the block's home position to the best match in the
// previous frame. SAD is the error of that match.
type Block struct {
	DX         int16
	DY         int16
	SAD        int32
	Foreground bool
}

// Grid is the macroblock grid for one frame.
type Grid struct {
	cols   int
	rows   int
	blocks []Block
}

func NewGrid(cols, rows int) *Grid {
	return &Grid{
		cols:   cols,
		rows:   rows,
		blocks: make([]Block, cols*rows),
	}
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Len() int  { return len(g.blocks) }

// At returns the block at grid position (x, y). Out-of-range positions are
// a programmer error and panic.
func (g *Grid) At(x, y int) *Block {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		panic("motion: grid index out of range")
	}
	return &g.blocks[y*g.cols+x]
}

// InBounds reports whether (x, y) is a valid grid position.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// ForegroundCount counts the blocks currently assigned to the foreground.
func (g *Grid) ForegroundCount() int {
	count := 0
	for i := range g.blocks {
		if g.blocks[i].Foreground {
			count++
		}
	}
	return count
}
