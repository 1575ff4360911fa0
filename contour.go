package contour

import (
	"github.com/aurelien-rainone/assertgo"
	"github.com/aurelien-rainone/gogeo/f32/d3"
)

// RawVertex is one voxel-corner sample produced by the contour walker,
// before simplification. X and Z are integer voxel-corner coordinates; Y is
// the resolved corner height (see cornerHeight). RegionID packs, in its low
// 16 bits, the region on the far side of the edge this vertex closes (zero
// if that side is unconnected), with BorderVertex and AreaBorder flag bits
// set above it.
type RawVertex struct {
	X, Y, Z  int32
	RegionID int32
}

// SimplifiedVertex is one vertex of a simplified contour. During
// simplification, Data holds the index into the owning Contour's
// RawVertices this point came from; after simplifyContour's finalize pass,
// it holds the packed region id and flag bits described on RawVertex: the
// region id and AreaBorder flag of the next raw vertex, and the
// BorderVertex flag of the current raw vertex.
type SimplifiedVertex struct {
	X, Y, Z int32
	Data    int32
}

// Contour is one closed, 2.5D polygonal region boundary in voxel
// coordinates.
type Contour struct {
	RawVertices []RawVertex
	Vertices    []SimplifiedVertex
	RegionID    uint16
	Area        uint8
}

// ContourSet is the complete, immutable result of a BuildContours call.
type ContourSet struct {
	Contours   []Contour
	Bounds     d3.Rectangle
	Cs, Ch     float32
	Width      int32
	Height     int32
	BorderSize int32
}

// shrinkBounds returns bounds with its horizontal (xz-plane) extent pulled
// in by borderSize cells, undoing the padding added before voxelization.
func shrinkBounds(bounds d3.Rectangle, borderSize int32, cs float32) d3.Rectangle {
	if borderSize == 0 {
		return bounds
	}
	pad := float32(borderSize) * cs
	return d3.Rect(
		bounds.Min[0]+pad, bounds.Min[1], bounds.Min[2]+pad,
		bounds.Max[0]-pad, bounds.Max[1], bounds.Max[2]-pad,
	)
}

// buildEdgeFlags computes, for every span, a 4-bit mask in which bit d is
// set iff the edge in direction d of that span lies on a region boundary.
func buildEdgeFlags(chf *CompactHeightfield) []uint8 {
	w, h := chf.Width, chf.Height
	flags := make([]uint8, chf.SpanCount)

	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c := &chf.Cells[x+y*w]
			ni := int32(c.Index) + int32(c.Count)
			for i := int32(c.Index); i < ni; i++ {
				s := &chf.Spans[i]
				if IsBorderOrNull(s.Reg) {
					flags[i] = 0
					continue
				}
				var internal uint8
				for dir := int32(0); dir < 4; dir++ {
					var nreg uint16
					if GetCon(s, dir) != notConnected {
						ax := x + GetDirOffsetX(dir)
						ay := y + GetDirOffsetY(dir)
						ai := int32(chf.Cells[ax+ay*w].Index) + GetCon(s, dir)
						nreg = chf.Spans[ai].Reg
					}
					if nreg == s.Reg {
						internal |= 1 << uint(dir)
					}
				}
				// Invert: the bits we want are the ones that border a
				// *different* region (or an absent neighbor).
				flags[i] = internal ^ 0xf
			}
		}
	}
	return flags
}

// cornerHeight resolves the height of the voxel corner at the clockwise end
// of edge dir of span i, and whether that corner matches the exterior/
// interior pattern that marks it a removable border vertex (see spec §4.2).
func cornerHeight(x, y, i, dir int32, chf *CompactHeightfield) (cornerY int32, isBorderVertex bool) {
	s := &chf.Spans[i]
	cornerY = int32(s.Y)
	dirp := rotateCW(dir)

	// regs holds, for up to four coincident spans (current, dir-neighbor,
	// diagonal, dirp-neighbor), the packed region+area used to detect
	// border vertices. Packing area into bits 16+ (rather than truncating
	// to a 16-bit region-only value) is required for the area-code
	// comparison below to mean anything.
	var regs [4]int32
	regs[0] = packRegs(s.Reg, chf.Areas[i])

	if GetCon(s, dir) != notConnected {
		ax := x + GetDirOffsetX(dir)
		ay := y + GetDirOffsetY(dir)
		ai := int32(chf.Cells[ax+ay*chf.Width].Index) + GetCon(s, dir)
		as := &chf.Spans[ai]
		cornerY = iMax(cornerY, int32(as.Y))
		regs[1] = packRegs(as.Reg, chf.Areas[ai])
		if GetCon(as, dirp) != notConnected {
			ax2 := ax + GetDirOffsetX(dirp)
			ay2 := ay + GetDirOffsetY(dirp)
			ai2 := int32(chf.Cells[ax2+ay2*chf.Width].Index) + GetCon(as, dirp)
			cornerY = iMax(cornerY, int32(chf.Spans[ai2].Y))
			regs[2] = packRegs(chf.Spans[ai2].Reg, chf.Areas[ai2])
		}
	}
	if GetCon(s, dirp) != notConnected {
		ax := x + GetDirOffsetX(dirp)
		ay := y + GetDirOffsetY(dirp)
		ai := int32(chf.Cells[ax+ay*chf.Width].Index) + GetCon(s, dirp)
		as := &chf.Spans[ai]
		cornerY = iMax(cornerY, int32(as.Y))
		regs[3] = packRegs(as.Reg, chf.Areas[ai])
		if GetCon(as, dir) != notConnected {
			ax2 := ax + GetDirOffsetX(dir)
			ay2 := ay + GetDirOffsetY(dir)
			ai2 := int32(chf.Cells[ax2+ay2*chf.Width].Index) + GetCon(as, dir)
			cornerY = iMax(cornerY, int32(chf.Spans[ai2].Y))
			regs[2] = packRegs(chf.Spans[ai2].Reg, chf.Areas[ai2])
		}
	}

	// The vertex is a border vertex when, in some rotation, two identical
	// exterior cells are followed by two interior cells of matching area,
	// with nothing out of bounds.
	for j := int32(0); j < 4; j++ {
		a, b, c, d := j, (j+1)&0x3, (j+2)&0x3, (j+3)&0x3

		twoSameExts := regs[a] == regs[b] && isBorderReg(regs[a]) && isBorderReg(regs[b])
		twoInts := !isBorderReg(regs[c]) && !isBorderReg(regs[d])
		intsSameArea := (regs[c] >> 16) == (regs[d] >> 16)
		noZeros := regs[a] != 0 && regs[b] != 0 && regs[c] != 0 && regs[d] != 0

		if twoSameExts && twoInts && intsSameArea && noZeros {
			isBorderVertex = true
			break
		}
	}

	return cornerY, isBorderVertex
}

// isBorderReg reports whether a packed regs slot (see packRegs) names a
// border/frame region.
func isBorderReg(packed int32) bool {
	return IsBorder(uint16(packed & contourRegMask))
}

// walkContour traces one closed ring of raw vertices around the region
// owning span i, starting from its lowest unvisited boundary edge, using a
// right-hand wall-follow. It clears each boundary-edge bit of flags as it
// consumes it, so no edge is walked twice across the whole build.
func walkContour(x, y, i int32, chf *CompactHeightfield, flags []uint8) []RawVertex {
	var dir int32
	for flags[i]&(1<<uint(dir)) == 0 {
		dir++
	}
	startDir, starti := dir, i

	area := chf.Areas[i]
	var points []RawVertex

	for iter := 0; iter < maxContourWalkIterations; iter++ {
		if flags[i]&(1<<uint(dir)) != 0 {
			px, pz := x, y
			py, isBorder := cornerHeight(x, y, i, dir, chf)
			switch dir {
			case 0:
				pz++
			case 1:
				px++
				pz++
			case 2:
				px++
			}

			var r int32
			s := &chf.Spans[i]
			if GetCon(s, dir) != notConnected {
				ax := x + GetDirOffsetX(dir)
				ay := y + GetDirOffsetY(dir)
				ai := int32(chf.Cells[ax+ay*chf.Width].Index) + GetCon(s, dir)
				r = int32(chf.Spans[ai].Reg)
				if area != chf.Areas[ai] {
					r |= areaBorder
				}
			}
			if isBorder {
				r |= borderVertex
			}
			points = append(points, RawVertex{X: px, Y: py, Z: pz, RegionID: r})

			flags[i] &^= 1 << uint(dir) // mark this edge visited
			dir = rotateCW(dir)
		} else {
			nx := x + GetDirOffsetX(dir)
			ny := y + GetDirOffsetY(dir)
			s := &chf.Spans[i]
			con := GetCon(s, dir)
			if con == notConnected {
				// Malformed input: abort, caller drops this short ring.
				return points
			}
			x, y = nx, ny
			i = int32(chf.Cells[nx+ny*chf.Width].Index) + con
			dir = rotateCCW(dir)
		}

		if i == starti && dir == startDir {
			break
		}
	}

	return points
}

// BuildContours builds a ContourSet from the region outlines in chf.
//
// The raw contours match the region outlines exactly; MaxError and
// MaxEdgeLen in cfg control how closely the simplified contours track
// them. Simplified contours always include the vertices of portals between
// regions or areas: those are mandatory, never collapsed away.
//
// BuildContours never fails outright: malformed or degenerate input yields
// missing or truncated contours rather than an error.
func BuildContours(ctx *BuildContext, chf *CompactHeightfield, cfg Config) *ContourSet {
	assert.True(chf != nil, "chf should not be nil")

	ctx.StartTimer(TimerBuildContours)
	defer ctx.StopTimer(TimerBuildContours)

	cset := &ContourSet{
		Cs:         chf.Cs,
		Ch:         chf.Ch,
		Width:      chf.Width - chf.BorderSize*2,
		Height:     chf.Height - chf.BorderSize*2,
		BorderSize: chf.BorderSize,
	}
	cset.Bounds = shrinkBounds(chf.Bounds, chf.BorderSize, chf.Cs)

	ctx.StartTimer(TimerBuildContoursTrace)
	flags := buildEdgeFlags(chf)
	ctx.StopTimer(TimerBuildContoursTrace)

	w, h := chf.Width, chf.Height
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c := &chf.Cells[x+y*w]
			ni := int32(c.Index) + int32(c.Count)
			for i := int32(c.Index); i < ni; i++ {
				if flags[i] == 0 || flags[i] == 0xf {
					continue
				}

				reg := chf.Spans[i].Reg
				area := chf.Areas[i]

				ctx.StartTimer(TimerBuildContoursTrace)
				raw := walkContour(x, y, i, chf, flags)
				ctx.StopTimer(TimerBuildContoursTrace)

				ctx.StartTimer(TimerBuildContoursSimplify)
				simplified := simplifyContour(raw, cfg.MaxError, cfg.MaxEdgeLen, cfg.BuildFlags)
				simplified = removeDegenerateSegments(simplified)
				ctx.StopTimer(TimerBuildContoursSimplify)

				if len(simplified) < 3 {
					continue
				}

				cset.Contours = append(cset.Contours, Contour{
					RawVertices: offsetRaw(raw, chf.BorderSize),
					Vertices:    offsetSimplified(simplified, chf.BorderSize),
					RegionID:    reg,
					Area:        area,
				})
			}
		}
	}

	mergeHoles(ctx, cset)

	return cset
}

// offsetRaw and offsetSimplified remove the AABB border padding, if any,
// that was added before voxelization so the output lines up with the
// caller's original geometry.
func offsetRaw(verts []RawVertex, borderSize int32) []RawVertex {
	if borderSize == 0 {
		return verts
	}
	out := make([]RawVertex, len(verts))
	for i, v := range verts {
		v.X -= borderSize
		v.Z -= borderSize
		out[i] = v
	}
	return out
}

func offsetSimplified(verts []SimplifiedVertex, borderSize int32) []SimplifiedVertex {
	if borderSize == 0 {
		return verts
	}
	out := make([]SimplifiedVertex, len(verts))
	for i, v := range verts {
		v.X -= borderSize
		v.Z -= borderSize
		out[i] = v
	}
	return out
}
