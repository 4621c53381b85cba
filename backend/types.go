package backend

import (
	"fmt"
	"unsafe"

	"github.com/tversted/skylight/window"
)

// RendererType selects the native graphics API the backend runs on.
type RendererType int

const (
	RendererVulkan RendererType = iota
	RendererMetal
)

func (r RendererType) String() string {
	switch r {
	case RendererVulkan:
		return "vulkan"
	case RendererMetal:
		return "metal"
	default:
		return fmt.Sprintf("RendererType(%d)", int(r))
	}
}

type ResetFlags uint32

const (
	ResetNone  ResetFlags = 0
	ResetVsync ResetFlags = 1 << iota
)

type DebugFlags uint32

const (
	DebugNone DebugFlags = 0

	// DebugText enables the debug-text overlay.
	DebugText DebugFlags = 1 << iota

	// DebugStats prints frame statistics into the overlay.
	DebugStats

	// DebugProfiler records a CPU profile for the process lifetime.
	DebugProfiler
)

type ClearFlags uint16

const (
	ClearNone  ClearFlags = 0
	ClearColor ClearFlags = 1 << iota
	ClearDepth
	ClearStencil
)

// PlatformData carries the two opaque native pointers the backend needs to
// bind its output to a window, as produced by the handle resolver. The
// pointers borrow windowing objects and must not outlive the window. Kind
// records the originating handle variant so the backend can build the
// matching surface description.
type PlatformData struct {
	// NWH is the native window handle.
	NWH unsafe.Pointer

	// NDT is the native display type.
	NDT unsafe.Pointer

	Kind window.HandleKind
}

// InitParams are the backend start-up parameters.
type InitParams struct {
	Renderer RendererType

	// Width and Height of the initial output surface. Zero defers the
	// surface to the first Reset.
	Width  uint32
	Height uint32

	Reset    ResetFlags
	Platform PlatformData
}
