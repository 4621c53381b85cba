//go:build linux && wayland

package window

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func (g *glfwWindow) NativeHandle() NativeHandle {
	return NativeHandle{
		Kind:    HandleWayland,
		Surface: unsafe.Pointer(g.win.GetWaylandWindow()),
		Display: unsafe.Pointer(glfw.GetWaylandDisplay()),
	}
}
