//go:build windows

package backend

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/tversted/skylight/window"
	"golang.org/x/sys/windows"
)

func surfaceDescriptorFrom(pd PlatformData) (*wgpu.SurfaceDescriptor, error) {
	if pd.Kind != window.HandleWin32 {
		return nil, fmt.Errorf("%s windows cannot be bound on windows", pd.Kind)
	}

	hinstance, err := windows.GetModuleHandle(nil)
	if err != nil {
		return nil, fmt.Errorf("get module handle: %w", err)
	}

	return &wgpu.SurfaceDescriptor{
		WindowsHWND: &wgpu.SurfaceDescriptorFromWindowsHWND{
			Hwnd:      pd.NWH,
			Hinstance: unsafe.Pointer(hinstance),
		},
	}, nil
}
