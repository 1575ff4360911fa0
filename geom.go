package contour

// prev and next give wrap-around neighbor indices into an n-vertex ring.
func prev(i, n int32) int32 {
	if i > 0 {
		return i - 1
	}
	return n - 1
}

func next(i, n int32) int32 {
	if i+1 < n {
		return i + 1
	}
	return 0
}

// vequalXZ reports whether a and b coincide in the XZ plane.
func vequalXZ(ax, az, bx, bz int32) bool {
	return ax == bx && az == bz
}

// distancePtSeg returns the squared XZ-plane distance from point (x, z) to
// the segment [(px, pz), (qx, qz)], clamped to the segment's endpoints.
func distancePtSeg(x, z, px, pz, qx, qz int32) float32 {
	pqx := float32(qx - px)
	pqz := float32(qz - pz)
	dx := float32(x - px)
	dz := float32(z - pz)
	d := pqx*pqx + pqz*pqz
	t := pqx*dx + pqz*dz
	if d > 0 {
		t /= d
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	dx = float32(px) + t*pqx - float32(x)
	dz = float32(pz) + t*pqz - float32(z)
	return dx*dx + dz*dz
}

// area2 is twice the signed area of triangle (a, b, c) in the XZ plane.
// Negative when c lies to the left of the directed line a->b (see left),
// positive when it lies to the right.
func area2(ax, az, bx, bz, cx, cz int32) int32 {
	return (bx-ax)*(cz-az) - (cx-ax)*(bz-az)
}

// left reports whether c is strictly to the left of the directed line a->b.
func left(ax, az, bx, bz, cx, cz int32) bool {
	return area2(ax, az, bx, bz, cx, cz) < 0
}

// leftOn reports whether c is to the left of, or on, the directed line a->b.
func leftOn(ax, az, bx, bz, cx, cz int32) bool {
	return area2(ax, az, bx, bz, cx, cz) <= 0
}
