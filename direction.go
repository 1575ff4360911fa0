package contour

// Direction encoding, fixed by the upstream region/connection collaborator:
// 0 = -X, 1 = +Z, 2 = +X, 3 = -Z. Rotating dir+1 (mod 4) turns clockwise
// when the grid is viewed from +Y; dir+3 (mod 4) turns counter-clockwise.
var (
	dirOffsetX = [4]int32{-1, 0, 1, 0}
	dirOffsetZ = [4]int32{0, 1, 0, -1}
)

// GetDirOffsetX returns the x-axis cell offset to move in direction dir.
func GetDirOffsetX(dir int32) int32 {
	return dirOffsetX[dir&0x3]
}

// GetDirOffsetY returns the z-axis (height-grid row) cell offset to move in
// direction dir. Named Y for consistency with the heightfield collaborator's
// row axis, not the vertical (world Y) axis.
func GetDirOffsetY(dir int32) int32 {
	return dirOffsetZ[dir&0x3]
}

// rotateCW turns dir clockwise by one quarter turn.
func rotateCW(dir int32) int32 {
	return (dir + 1) & 0x3
}

// rotateCCW turns dir counter-clockwise by one quarter turn.
func rotateCCW(dir int32) int32 {
	return (dir + 3) & 0x3
}

// SetCon sets the neighbor connection data for the specified direction.
func SetCon(s *CompactSpan, dir, i int32) {
	shift := uint32(dir * 6)
	con := uint32(s.con)
	s.con = (con &^ (0x3f << shift)) | ((uint32(i) & 0x3f) << shift)
}

// GetCon returns the neighbor connection data for the specified direction,
// or notConnected if there is no connection.
func GetCon(s *CompactSpan, dir int32) int32 {
	shift := uint32(dir * 6)
	return int32((s.con >> shift) & 0x3f)
}

func iMax(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
