package contour

// Build flags, passed to BuildContours. They control whether long edges
// get tessellated during simplification (see simplifyContour, step c).
const (
	// TessellateWallEdges permits long-edge splits on outer (non-portal) walls.
	TessellateWallEdges int32 = 0x01
	// TessellateAreaEdges permits long-edge splits on area-boundary edges.
	TessellateAreaEdges int32 = 0x02
)

// contourRegMask extracts the neighbor-region bits from a packed raw or
// simplified vertex region/data field.
const contourRegMask int32 = 0xffff

// borderVertex and areaBorder are the two flag bits living above the
// 16-bit region id in a raw vertex's region field (and, after the finalize
// pass, in a simplified vertex's data field). Their exact bit positions are
// owned by the region-classifier collaborator; these values match it.
const (
	borderVertex int32 = 0x10000
	areaBorder   int32 = 0x20000
)

// borderReg flags a region id as one of the synthetic border/frame regions
// painted around the heightfield. It lives in the same 16-bit space as a
// region id, so region ids and borderReg never collide with area codes.
const borderReg uint16 = 0x8000

// nullArea is the area code assigned to unwalkable spans.
const nullArea uint8 = 0

// notConnected is returned by GetCon when the requested direction has no
// connected neighbor span.
const notConnected int32 = 0x3f

// maxContourWalkIterations caps the per-ring walk so malformed input (a
// flags array that never revisits its start state) cannot loop forever.
const maxContourWalkIterations = 40000
