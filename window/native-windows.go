//go:build windows

package window

import "unsafe"

func (g *glfwWindow) NativeHandle() NativeHandle {
	return NativeHandle{
		Kind: HandleWin32,
		HWND: unsafe.Pointer(g.win.GetWin32Window()),
	}
}
