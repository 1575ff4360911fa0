package contour

import "github.com/aurelien-rainone/gogeo/f32/d3"

// gridFixture builds a CompactHeightfield for a width x height grid of
// single-span columns, one span per cell, all at height y=0, fully
// connected to their in-bounds orthogonal neighbors. regionOf and areaOf
// assign each cell's region id and area code; a regionOf returning 0
// leaves that cell NULL (unwalkable, never connected to).
type gridFixture struct {
	width, height int32
	regionOf      func(x, z int32) uint16
	areaOf        func(x, z int32) uint8
}

func (g gridFixture) build() *CompactHeightfield {
	n := g.width * g.height
	chf := NewCompactHeightfield(g.width, g.height, n, 0, 1, 1, d3.Rect(0, 0, 0, float32(g.width), 1, float32(g.height)))

	idx := func(x, z int32) int32 { return x + z*g.width }

	for z := int32(0); z < g.height; z++ {
		for x := int32(0); x < g.width; x++ {
			i := idx(x, z)
			chf.Cells[i] = CompactCell{Index: uint32(i), Count: 1}
			reg := g.regionOf(x, z)
			chf.Spans[i] = CompactSpan{Y: 0, Reg: reg}
			switch {
			case g.areaOf != nil:
				chf.Areas[i] = g.areaOf(x, z)
			case reg != 0:
				chf.Areas[i] = 1
			default:
				chf.Areas[i] = nullArea
			}
			for dir := int32(0); dir < 4; dir++ {
				SetCon(&chf.Spans[i], dir, notConnected)
			}
		}
	}

	for z := int32(0); z < g.height; z++ {
		for x := int32(0); x < g.width; x++ {
			i := idx(x, z)
			if g.regionOf(x, z) == 0 {
				continue
			}
			for dir := int32(0); dir < 4; dir++ {
				nx := x + GetDirOffsetX(dir)
				nz := z + GetDirOffsetY(dir)
				if nx < 0 || nz < 0 || nx >= g.width || nz >= g.height {
					continue
				}
				if g.regionOf(nx, nz) == 0 {
					continue
				}
				SetCon(&chf.Spans[i], dir, 0)
			}
		}
	}

	return chf
}
