package contour

// simplifyContour reduces raw into a simplified, Douglas-Peucker-style
// polyline that never deviates from raw by more than maxError on its wall
// or area-border segments, always keeps every portal/area-transition
// vertex, and (when enabled via buildFlags) splits long wall or
// area-border edges so no edge exceeds maxEdgeLen.
//
// Data on each returned vertex is, until the finalize pass at the end of
// this function, the index into raw the vertex was copied from; after
// finalize it holds the packed region/flag value described on RawVertex.
func simplifyContour(raw []RawVertex, maxError float32, maxEdgeLen int32, buildFlags int32) []SimplifiedVertex {
	pn := int32(len(raw))
	if pn == 0 {
		return nil
	}

	var simplified []SimplifiedVertex

	hasConnections := false
	for _, p := range raw {
		if p.RegionID&contourRegMask != 0 {
			hasConnections = true
			break
		}
	}

	if hasConnections {
		// The contour has some portals to other regions. Add a seed vertex
		// at every location where the region, or the area border flag,
		// changes.
		for i := int32(0); i < pn; i++ {
			ii := next(i, pn)
			differentRegs := raw[i].RegionID&contourRegMask != raw[ii].RegionID&contourRegMask
			areaBorders := raw[i].RegionID&areaBorder != raw[ii].RegionID&areaBorder
			if differentRegs || areaBorders {
				simplified = append(simplified, SimplifiedVertex{X: raw[i].X, Y: raw[i].Y, Z: raw[i].Z, Data: i})
			}
		}
	}

	if len(simplified) == 0 {
		// No portals at all: seed with the lower-left and upper-right
		// vertices so the refinement pass below has a starting edge.
		ll, ur := raw[0], raw[0]
		lli, uri := int32(0), int32(0)
		for i, p := range raw {
			if p.X < ll.X || (p.X == ll.X && p.Z < ll.Z) {
				ll, lli = p, int32(i)
			}
			if p.X > ur.X || (p.X == ur.X && p.Z > ur.Z) {
				ur, uri = p, int32(i)
			}
		}
		simplified = append(simplified,
			SimplifiedVertex{X: ll.X, Y: ll.Y, Z: ll.Z, Data: lli},
			SimplifiedVertex{X: ur.X, Y: ur.Y, Z: ur.Z, Data: uri},
		)
	}

	// Add points until every raw vertex along a wall or area-border
	// segment is within maxError of the simplified shape.
	for i := 0; i < len(simplified); {
		ii := (i + 1) % len(simplified)

		ax, az, ai := simplified[i].X, simplified[i].Z, simplified[i].Data
		bx, bz, bi := simplified[ii].X, simplified[ii].Z, simplified[ii].Data

		var maxd float32
		maxi := int32(-1)
		var ci, cinc, endi int32

		// Traverse in lexicographic-forward order so the deviation
		// computed for a segment is identical regardless of which
		// direction around the ring it's visited from.
		if bx > ax || (bx == ax && bz > az) {
			cinc = 1
			ci = (ai + cinc) % pn
			endi = bi
		} else {
			cinc = pn - 1
			ci = (bi + cinc) % pn
			endi = ai
			ax, bx = bx, ax
			az, bz = bz, az
		}

		if raw[ci].RegionID&contourRegMask == 0 || raw[ci].RegionID&areaBorder != 0 {
			for ci != endi {
				d := distancePtSeg(raw[ci].X, raw[ci].Z, ax, az, bx, bz)
				if d > maxd {
					maxd = d
					maxi = ci
				}
				ci = (ci + cinc) % pn
			}
		}

		if maxi != -1 && maxd > maxError*maxError {
			v := SimplifiedVertex{X: raw[maxi].X, Y: raw[maxi].Y, Z: raw[maxi].Z, Data: maxi}
			simplified = append(simplified, SimplifiedVertex{})
			copy(simplified[i+2:], simplified[i+1:])
			simplified[i+1] = v
		} else {
			i++
		}
	}

	// Split edges that exceed maxEdgeLen, when the relevant tessellation
	// flag is set for that edge's kind.
	if maxEdgeLen > 0 && buildFlags&(TessellateWallEdges|TessellateAreaEdges) != 0 {
		for i := 0; i < len(simplified); {
			ii := (i + 1) % len(simplified)

			ax, az, ai := simplified[i].X, simplified[i].Z, simplified[i].Data
			bx, bz, bi := simplified[ii].X, simplified[ii].Z, simplified[ii].Data

			maxi := int32(-1)
			ci := (ai + 1) % pn

			tess := false
			if buildFlags&TessellateWallEdges != 0 && raw[ci].RegionID&contourRegMask == 0 {
				tess = true
			}
			if buildFlags&TessellateAreaEdges != 0 && raw[ci].RegionID&areaBorder != 0 {
				tess = true
			}

			if tess {
				dx := bx - ax
				dz := bz - az
				if dx*dx+dz*dz > maxEdgeLen*maxEdgeLen {
					var n int32
					if bi < ai {
						n = bi + pn - ai
					} else {
						n = bi - ai
					}
					if n > 1 {
						if bx > ax || (bx == ax && bz > az) {
							maxi = (ai + n/2) % pn
						} else {
							maxi = (ai + (n+1)/2) % pn
						}
					}
				}
			}

			if maxi != -1 {
				v := SimplifiedVertex{X: raw[maxi].X, Y: raw[maxi].Y, Z: raw[maxi].Z, Data: maxi}
				simplified = append(simplified, SimplifiedVertex{})
				copy(simplified[i+2:], simplified[i+1:])
				simplified[i+1] = v
			} else {
				i++
			}
		}
	}

	// Finalize: each vertex's neighbor-region bits and AreaBorder flag come
	// from the next raw point, its BorderVertex flag from the current one.
	for i := range simplified {
		ai := (simplified[i].Data + 1) % pn
		bi := simplified[i].Data
		simplified[i].Data = (raw[ai].RegionID & (contourRegMask | areaBorder)) | (raw[bi].RegionID & borderVertex)
	}

	return simplified
}

// removeDegenerateSegments drops consecutive vertices that coincide in the
// XZ plane, in one forward scan. It does not re-examine the index left
// behind after a removal, so a newly created XZ-coincident adjacency at
// that position survives this pass; this matches the reference contour
// simplifier this package is modeled on.
func removeDegenerateSegments(simplified []SimplifiedVertex) []SimplifiedVertex {
	npts := int32(len(simplified))
	for i := int32(0); i < npts; i++ {
		ni := next(i, npts)
		if vequalXZ(simplified[i].X, simplified[i].Z, simplified[ni].X, simplified[ni].Z) {
			simplified = append(simplified[:i], simplified[i+1:]...)
			npts--
		}
	}
	return simplified
}
