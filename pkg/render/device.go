package render

import "github.com/leterax/go-grass/internal/openglhelper"

// windowDevice drives the GL context owned by a window
type windowDevice struct {
	window *openglhelper.Window
}

func (d windowDevice) Clear() {
	d.window.Clear()
}

func (d windowDevice) SetDepthFunc(fn openglhelper.DepthFunc) {
	openglhelper.SetDepthFunc(fn)
}
