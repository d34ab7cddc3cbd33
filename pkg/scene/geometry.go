package scene

// Layout lists the component count of each vertex attribute, in location order.
type Layout []int32

var (
	// PositionLayout is a single vec3 at location 0.
	PositionLayout = Layout{3}
	// PositionUVLayout is vec3 position at location 0 and vec2 texcoord at location 1.
	PositionUVLayout = Layout{3, 2}
)

// FloatsPerVertex returns the number of floats in one interleaved vertex.
func (l Layout) FloatsPerVertex() int {
	n := 0
	for _, size := range l {
		n += int(size)
	}
	return n
}

// Stride returns the vertex stride in bytes.
func (l Layout) Stride() int32 {
	return int32(l.FloatsPerVertex() * 4)
}

// VertexCount returns how many whole vertices the data holds.
func (l Layout) VertexCount(data []float32) int {
	per := l.FloatsPerVertex()
	if per == 0 {
		return 0
	}
	return len(data) / per
}

const (
	// LandRepeat is how many times the land texture tiles across the quad.
	LandRepeat = 100.0
	// LandHalfExtent is half the side of the land quad.
	LandHalfExtent = 10.0
	// LandHeight is the y of the land plane, level with the grass anchors.
	LandHeight = -1.0
	// SkyboxHalfExtent is half the side of the sky cube.
	SkyboxHalfExtent = 15.0
)

// LandQuad returns the four (x, y, z, u, v) vertices of the ground plane in
// triangle-strip order, texture coordinates scaled by repeat.
func LandQuad(repeat float32) []float32 {
	const e, y = LandHalfExtent, LandHeight
	quad := []float32{
		-e, y, -e, 0, 0, // down left
		e, y, -e, 1, 0, // down right
		-e, y, e, 0, 1, // up left
		e, y, e, 1, 1, // up right
	}
	for i := 0; i < 4; i++ {
		quad[i*5+3] *= repeat
		quad[i*5+4] *= repeat
	}
	return quad
}

// SkyboxCube returns the 36 positions of a cube seen from the inside.
// Faces are -Z, -X, +X, +Z, +Y, -Y, two triangles each.
func SkyboxCube(h float32) []float32 {
	return []float32{
		-h, h, -h, -h, -h, -h, h, -h, -h,
		h, -h, -h, h, h, -h, -h, h, -h,

		-h, -h, h, -h, -h, -h, -h, h, -h,
		-h, h, -h, -h, h, h, -h, -h, h,

		h, -h, -h, h, -h, h, h, h, h,
		h, h, h, h, h, -h, h, -h, -h,

		-h, -h, h, -h, h, h, h, h, h,
		h, h, h, h, -h, h, -h, -h, h,

		-h, h, -h, h, h, -h, h, h, h,
		h, h, h, -h, h, h, -h, h, -h,

		-h, -h, -h, -h, -h, h, h, -h, -h,
		h, -h, -h, -h, -h, h, h, -h, h,
	}
}
