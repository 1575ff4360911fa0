package contour

// Config carries the parameters BuildContours needs. It is trimmed, for
// this stage, from the wider pipeline-spanning config the teacher repo
// passes around (voxelization, erosion, and region parameters live with
// those out-of-scope stages, not here).
type Config struct {
	// MaxError is the maximum distance a simplified contour's border
	// edges may deviate from the raw contour. [Limit: >=0] [Units: vx]
	MaxError float32

	// MaxEdgeLen is the maximum allowed length for contour edges along
	// tessellatable (wall or area-border) edges. [Limit: >=0] [Units: vx]
	// Zero disables long-edge tessellation.
	MaxEdgeLen int32

	// BuildFlags controls which edge kinds are eligible for long-edge
	// tessellation. See TessellateWallEdges, TessellateAreaEdges.
	BuildFlags int32
}
