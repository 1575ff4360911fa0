package contour

import "github.com/aurelien-rainone/gogeo/f32/d3"

// CompactCell indexes the run of spans occupying one column (x, y) of a
// CompactHeightfield.
type CompactCell struct {
	Index uint32 // Index of the first span in the column, within Spans.
	Count uint8  // Number of spans in the column.
}

// CompactSpan is one walkable voxel-column span of a CompactHeightfield.
// Y is the span's base height (called "minimum" in the heightfield
// literature); H, the vertical extent above Y, is carried for completeness
// of the data model but is not read by the contour stage.
type CompactSpan struct {
	Y   uint16
	Reg uint16
	H   uint8

	con uint32 // packed per-direction neighbor connection, see GetCon/SetCon.
}

// CompactHeightfield is the read-only, voxelized, region-labeled walkable
// surface this package consumes. It is produced by a voxelization/erosion/
// region-labeling pipeline outside this package's scope; this package only
// ever reads from it.
type CompactHeightfield struct {
	Width, Height int32 // Grid dimensions, in cells.
	SpanCount     int32
	BorderSize    int32  // Non-navigable border painted around the field, in cells.
	MaxRegions    uint16 // Highest region id assigned to any span.
	Bounds        d3.Rectangle
	Cs, Ch        float32 // Cell size (xz-plane) and cell height (y-axis).

	Cells []CompactCell // Size Width*Height.
	Spans []CompactSpan // Size SpanCount.
	Areas []uint8       // Size SpanCount; area code per span.
}

// NewCompactHeightfield allocates a CompactHeightfield of the given grid
// size with empty cells, ready for a test or fixture builder to populate
// Spans/Areas and wire connections via SetCon.
func NewCompactHeightfield(width, height, spanCount, borderSize int32, cs, ch float32, bounds d3.Rectangle) *CompactHeightfield {
	return &CompactHeightfield{
		Width:      width,
		Height:     height,
		SpanCount:  spanCount,
		BorderSize: borderSize,
		Bounds:     bounds,
		Cs:         cs,
		Ch:         ch,
		Cells:      make([]CompactCell, width*height),
		Spans:      make([]CompactSpan, spanCount),
		Areas:      make([]uint8, spanCount),
	}
}
