//go:build darwin

package backend

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/ebitengine/purego/objc"
	"github.com/tversted/skylight/window"
)

func surfaceDescriptorFrom(pd PlatformData) (*wgpu.SurfaceDescriptor, error) {
	if pd.Kind != window.HandleCocoa {
		return nil, fmt.Errorf("%s windows cannot be bound on darwin", pd.Kind)
	}

	layer := attachMetalLayer(objc.ID(uintptr(pd.NWH)))

	return &wgpu.SurfaceDescriptor{
		MetalLayer: &wgpu.SurfaceDescriptorFromMetalLayer{
			Layer: unsafe.Pointer(uintptr(layer)),
		},
	}, nil
}

// attachMetalLayer gives the NSWindow's content view a CAMetalLayer and
// returns it. Metal renders into layers, not windows.
func attachMetalLayer(nsWindow objc.ID) objc.ID {
	layer := objc.ID(objc.GetClass("CAMetalLayer")).Send(objc.RegisterName("layer"))

	view := nsWindow.Send(objc.RegisterName("contentView"))
	view.Send(objc.RegisterName("setWantsLayer:"), true)
	view.Send(objc.RegisterName("setLayer:"), layer)

	return layer
}
