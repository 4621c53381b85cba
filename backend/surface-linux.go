//go:build linux

package backend

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/tversted/skylight/window"
)

// surfaceDescriptorFrom builds the webgpu surface description for the two
// windowing protocols a linux build can run under.
func surfaceDescriptorFrom(pd PlatformData) (*wgpu.SurfaceDescriptor, error) {
	switch pd.Kind {
	case window.HandleXlib:
		return &wgpu.SurfaceDescriptor{
			XlibWindow: &wgpu.SurfaceDescriptorFromXlibWindow{
				Display: pd.NDT,
				Window:  uint32(uintptr(pd.NWH)),
			},
		}, nil

	case window.HandleWayland:
		// the resolver packs the wayland display into the window slot and
		// the surface into the display slot
		return &wgpu.SurfaceDescriptor{
			WaylandSurface: &wgpu.SurfaceDescriptorFromWaylandSurface{
				Display: pd.NWH,
				Surface: pd.NDT,
			},
		}, nil

	default:
		return nil, fmt.Errorf("%s windows cannot be bound on linux", pd.Kind)
	}
}
