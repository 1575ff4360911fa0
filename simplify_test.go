package contour

import "testing"

func square(size int32) []RawVertex {
	return []RawVertex{
		{X: 0, Z: 0},
		{X: 0, Z: size},
		{X: size, Z: size},
		{X: size, Z: 0},
	}
}

func TestSimplifyContourCollinearNoPortalsSeedsLexExtremes(t *testing.T) {
	// A degenerate, perfectly collinear ring: every raw vertex already
	// lies on the line between the two lex-extreme vertices, so even
	// maxError == 0 triggers no refinement, and the ring stays at exactly
	// the two seed vertices BuildContours then discards (< 3 vertices).
	raw := []RawVertex{
		{X: 0, Z: 0},
		{X: 1, Z: 0},
		{X: 2, Z: 0},
		{X: 4, Z: 0},
	}
	simplified := simplifyContour(raw, 0, 0, 0)
	if len(simplified) != 2 {
		t.Fatalf("len(simplified) = %d, want 2", len(simplified))
	}
}

func TestSimplifyContourInfiniteErrorKeepsOnlySeeds(t *testing.T) {
	raw := square(4)
	simplified := simplifyContour(raw, 1e30, 0, 0)
	if len(simplified) != 2 {
		t.Fatalf("with maxError effectively infinite, len(simplified) = %d, want 2", len(simplified))
	}
}

func TestSimplifyContourTightErrorKeepsAllCorners(t *testing.T) {
	raw := square(4)
	simplified := simplifyContour(raw, 0.1, 0, 0)
	if len(simplified) != 4 {
		t.Fatalf("len(simplified) = %d, want 4", len(simplified))
	}
}

func TestSimplifyContourPortalVertexAlwaysKept(t *testing.T) {
	raw := []RawVertex{
		{X: 0, Z: 0, RegionID: 0},
		{X: 0, Z: 4, RegionID: 7}, // portal to region 7
		{X: 4, Z: 4, RegionID: 0},
		{X: 4, Z: 0, RegionID: 0},
	}
	simplified := simplifyContour(raw, 1e30, 0, 0)
	found := false
	for _, v := range simplified {
		if v.Data&contourRegMask == 7 {
			found = true
		}
	}
	if !found {
		t.Fatal("portal vertex must survive simplification regardless of maxError")
	}
}

func TestRemoveDegenerateSegments(t *testing.T) {
	verts := []SimplifiedVertex{
		{X: 0, Z: 0},
		{X: 0, Z: 0}, // duplicate of the previous vertex in XZ
		{X: 4, Z: 0},
		{X: 4, Z: 4},
	}
	out := removeDegenerateSegments(verts)
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}
	for i := range out {
		j := next(int32(i), int32(len(out)))
		if vequalXZ(out[i].X, out[i].Z, out[j].X, out[j].Z) {
			t.Fatalf("adjacent vertices %d and %d still coincide", i, j)
		}
	}
}

func TestRemoveDegenerateSegmentsNoChangeWhenDistinct(t *testing.T) {
	verts := []SimplifiedVertex{
		{X: 0, Z: 0},
		{X: 4, Z: 0},
		{X: 4, Z: 4},
		{X: 0, Z: 4},
	}
	out := removeDegenerateSegments(verts)
	if len(out) != 4 {
		t.Fatalf("len(out) = %d, want 4 (no degenerate segments to remove)", len(out))
	}
}
