package contour

// signedArea returns the signed XZ-plane area of the closed polygon verts,
// computed from twice the area (2A) as (2A+1)/2 with Go's truncating
// division: the same biased rounding as the upstream area calculation this
// package is modeled on. Callers only compare the sign; note that a ring
// whose 2A is -1 or -2 yields 0, so mergeHoles does not treat it as a hole.
func signedArea(verts []SimplifiedVertex) int32 {
	n := int32(len(verts))
	var area int32
	j := n - 1
	for i := int32(0); i < n; i++ {
		area += verts[i].X*verts[j].Z - verts[j].X*verts[i].Z
		j = i
	}
	return (area + 1) / 2
}

// inForwardCone reports whether pj lies within the cone swept by the
// interior angle at verts[i], which must hold for verts[i]->pj to be
// considered as a candidate merge diagonal.
func inForwardCone(i, n int32, verts []SimplifiedVertex, pjx, pjz int32) bool {
	pi := verts[i]
	pi1 := verts[next(i, n)]
	pin1 := verts[prev(i, n)]

	if leftOn(pin1.X, pin1.Z, pi.X, pi.Z, pi1.X, pi1.Z) {
		return left(pi.X, pi.Z, pjx, pjz, pin1.X, pin1.Z) &&
			left(pjx, pjz, pi.X, pi.Z, pi1.X, pi1.Z)
	}
	return !(leftOn(pi.X, pi.Z, pjx, pjz, pi1.X, pi1.Z) &&
		leftOn(pjx, pjz, pi.X, pi.Z, pin1.X, pin1.Z))
}

// closestIndices finds, across all pairs of vertices of m (the outline
// being merged into) and c (the hole), the pair (im, ic) of minimum
// distance for which im->ic both starts within m's forward cone at im and
// does not coincide in XZ with m's vertex im. It reports ok=false if no
// mutually visible pair exists.
func closestIndices(m, c *Contour) (im, ic int32, ok bool) {
	nm := int32(len(m.Vertices))
	nc := int32(len(c.Vertices))
	if nm == 0 || nc == 0 {
		return 0, 0, false
	}

	bestDist := int32(-1)
	ok = false

	for i := int32(0); i < nm; i++ {
		mv := m.Vertices[i]
		for j := int32(0); j < nc; j++ {
			cv := c.Vertices[j]
			if vequalXZ(mv.X, mv.Z, cv.X, cv.Z) {
				continue
			}
			if !inForwardCone(i, nm, m.Vertices, cv.X, cv.Z) {
				continue
			}
			dx := mv.X - cv.X
			dz := mv.Z - cv.Z
			d := dx*dx + dz*dz
			if !ok || d < bestDist {
				bestDist = d
				im, ic = i, j
				ok = true
			}
		}
	}

	return im, ic, ok
}

// splice merges hole c into outline m at the bridge vertex pair (im, ic),
// replacing m's vertex list in place with a ring that walks all of m
// starting and ending at im, crosses the bridge, walks all of c starting
// and ending at ic, and returns across the bridge: length len(m)+len(c)+2.
func splice(m, c *Contour, im, ic int32) {
	nm := int32(len(m.Vertices))
	nc := int32(len(c.Vertices))

	merged := make([]SimplifiedVertex, 0, nm+nc+2)
	for i := int32(0); i <= nm; i++ {
		merged = append(merged, m.Vertices[(im+i)%nm])
	}
	for i := int32(0); i <= nc; i++ {
		merged = append(merged, c.Vertices[(ic+i)%nc])
	}

	m.Vertices = merged
}

// mergeHoles finds, for every negative-area (hole) contour in cset, a
// same-region positive-area contour to merge it into, and splices it in.
// A hole with no same-region outline, or with no mutually visible vertex
// pair, is left unmerged and reported via ctx.Warningf.
func mergeHoles(ctx *BuildContext, cset *ContourSet) {
	var outlineIdx []int
	var holeIdx []int
	for i := range cset.Contours {
		if len(cset.Contours[i].Vertices) < 3 {
			continue
		}
		area := signedArea(cset.Contours[i].Vertices)
		if area > 0 {
			outlineIdx = append(outlineIdx, i)
		} else if area < 0 {
			holeIdx = append(holeIdx, i)
		}
	}
	if len(holeIdx) == 0 {
		return
	}

	for _, hi := range holeIdx {
		hole := &cset.Contours[hi]

		var target *Contour
		for _, oi := range outlineIdx {
			if cset.Contours[oi].RegionID == hole.RegionID {
				target = &cset.Contours[oi]
				break
			}
		}
		if target == nil {
			ctx.Warningf("mergeHoles: no outline for region %d, hole left unmerged", hole.RegionID)
			continue
		}

		im, ic, ok := closestIndices(target, hole)
		if !ok {
			ctx.Warningf("mergeHoles: no visible vertex pair for region %d, hole left unmerged", hole.RegionID)
			continue
		}
		splice(target, hole, im, ic)

		// hole's vertices now live in target; leave it in place as an
		// empty contour rather than resizing cset.Contours underneath
		// the indices already collected above.
		hole.Vertices = nil
		hole.RawVertices = nil
	}
}
