//go:build !linux && !darwin && !windows

package backend

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

func surfaceDescriptorFrom(pd PlatformData) (*wgpu.SurfaceDescriptor, error) {
	return nil, fmt.Errorf("%s windows cannot be bound on this platform", pd.Kind)
}
