package openglhelper

import "github.com/go-gl/gl/v4.1-core/gl"

// DepthFunc is a depth comparison mode.
type DepthFunc uint32

const (
	DepthLess      DepthFunc = gl.LESS
	DepthLessEqual DepthFunc = gl.LEQUAL
)

// SetDepthFunc changes the depth comparison used by subsequent draws.
func SetDepthFunc(fn DepthFunc) {
	gl.DepthFunc(uint32(fn))
}
