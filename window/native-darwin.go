//go:build darwin

package window

func (g *glfwWindow) NativeHandle() NativeHandle {
	return NativeHandle{
		Kind:     HandleCocoa,
		NSWindow: g.win.GetCocoaWindow(),
	}
}
