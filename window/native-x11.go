//go:build linux && !wayland

package window

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func (g *glfwWindow) NativeHandle() NativeHandle {
	return NativeHandle{
		Kind:    HandleXlib,
		Window:  uintptr(g.win.GetX11Window()),
		Display: unsafe.Pointer(glfw.GetX11Display()),
	}
}
