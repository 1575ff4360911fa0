package contour

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignedAreaPositiveForCCWSquare(t *testing.T) {
	verts := []SimplifiedVertex{
		{X: 0, Z: 0},
		{X: 0, Z: 4},
		{X: 4, Z: 4},
		{X: 4, Z: 0},
	}
	assert.Greater(t, signedArea(verts), int32(0))
}

func TestSignedAreaNegativeForReversedSquare(t *testing.T) {
	verts := []SimplifiedVertex{
		{X: 0, Z: 0},
		{X: 4, Z: 0},
		{X: 4, Z: 4},
		{X: 0, Z: 4},
	}
	assert.Less(t, signedArea(verts), int32(0))
}

func TestClosestIndicesAndSplice(t *testing.T) {
	outer := &Contour{
		RegionID: 1,
		Vertices: []SimplifiedVertex{
			{X: 0, Z: 0},
			{X: 0, Z: 10},
			{X: 10, Z: 10},
			{X: 10, Z: 0},
		},
	}
	hole := &Contour{
		RegionID: 1,
		Vertices: []SimplifiedVertex{
			{X: 4, Z: 4},
			{X: 6, Z: 4},
			{X: 6, Z: 6},
			{X: 4, Z: 6},
		},
	}

	im, ic, ok := closestIndices(outer, hole)
	if !ok {
		t.Fatal("expected a mutually visible vertex pair")
	}

	wantLen := len(outer.Vertices) + len(hole.Vertices) + 2
	splice(outer, hole, im, ic)
	if len(outer.Vertices) != wantLen {
		t.Fatalf("len(outer.Vertices) = %d, want %d", len(outer.Vertices), wantLen)
	}
}

// Scenario 3: an annulus, one region surrounding a NULL hole, merges into
// a single contour with |outer| + |inner| + 2 vertices and positive area.
// The hole is 2x2 cells: a 1x1 hole's signedArea rounds to 0, so it would
// not count as a hole.
func TestBuildContoursAnnulusMergesHole(t *testing.T) {
	regionOf := func(x, z int32) uint16 {
		if (x == 2 || x == 3) && (z == 2 || z == 3) {
			return 0
		}
		return 1
	}
	chf := gridFixture{width: 6, height: 6, regionOf: regionOf}.build()

	ctx := NewBuildContext(false)
	cset := BuildContours(ctx, chf, Config{MaxError: 0.4, MaxEdgeLen: 0})

	var merged *Contour
	for i := range cset.Contours {
		if len(cset.Contours[i].Vertices) >= 3 {
			if merged != nil {
				t.Fatalf("expected exactly one non-empty contour after hole merge, found a second")
			}
			merged = &cset.Contours[i]
		}
	}
	if merged == nil {
		t.Fatal("expected one merged contour, found none")
	}

	assert.GreaterOrEqual(t, signedArea(merged.Vertices), int32(0))
	assert.Equal(t, 10, len(merged.Vertices), "outer(4) + inner(4) + 2 bridge vertices")
}
