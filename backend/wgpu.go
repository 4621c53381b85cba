package backend

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	lru "github.com/hashicorp/golang-lru/v2"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// viewConfig is the retained per-view state. Rect and clear settings
// persist across frames, touched is consumed by Frame.
type viewConfig struct {
	x, y          uint16
	width, height uint16

	clear   ClearFlags
	rgba    uint32
	depth   float32
	stencil uint8

	touched bool
}

// WGPU is the production Backend running on webgpu. The webgpu runtime
// picks the native API per platform: Vulkan on Linux and Windows, Metal on
// macOS, which matches the lifecycle's renderer policy.
type WGPU struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceConfig *wgpu.SurfaceConfiguration
	configured    bool

	// size adopted when Init deferred the resolution and no Reset arrived
	// before the first frame; fed by SetViewRect on view 0.
	fallbackWidth  uint32
	fallbackHeight uint32

	views map[ViewID]*viewConfig

	// recently used depth textures keyed by surface size. Resizing back to
	// a recent size reuses its depth texture instead of reallocating.
	depthTextures *lru.Cache[[2]uint32, *wgpu.Texture]
	depthView     *wgpu.TextureView

	text        debugText
	debug       DebugFlags
	frame       uint32
	initialized bool
}

var _ Backend = (*WGPU)(nil)

func NewWGPU() *WGPU {
	cache, _ := lru.NewWithEvict[[2]uint32, *wgpu.Texture](4, releaseDepthTextureOnEviction)

	return &WGPU{
		views:         map[ViewID]*viewConfig{},
		depthTextures: cache,
	}
}

func releaseDepthTextureOnEviction(_ [2]uint32, tex *wgpu.Texture) {
	tex.Release()
}

func (b *WGPU) Init(params InitParams) (err error) {
	if b.initialized {
		return errors.New("backend is already initialized")
	}

	defer func() {
		if err != nil {
			b.release()
		}
	}()

	sd, err := surfaceDescriptorFrom(params.Platform)
	if err != nil {
		return fmt.Errorf("describe surface: %w", err)
	}

	slog.Info("Starting rendering backend",
		slog.String("renderer", params.Renderer.String()),
		slog.String("platform", params.Platform.Kind.String()),
	)

	b.instance = wgpu.CreateInstance(nil)
	b.surface = b.instance.CreateSurface(sd)

	b.adapter, err = b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		return fmt.Errorf("request adapter: %w", err)
	}

	b.device, err = b.adapter.RequestDevice(nil)
	if err != nil {
		return fmt.Errorf("request device: %w", err)
	}

	b.queue = b.device.GetQueue()

	caps := b.surface.GetCapabilities(b.adapter)
	slog.Debug("Available surface formats", slog.Any("formats", caps.Formats))

	b.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		PresentMode: presentModeOf(params.Reset),
		AlphaMode:   caps.AlphaModes[0],
	}

	if params.Width > 0 && params.Height > 0 {
		b.configure(params.Width, params.Height)
	}

	b.initialized = true
	return nil
}

func (b *WGPU) Reset(width, height uint32, flags ResetFlags) {
	b.surfaceConfig.PresentMode = presentModeOf(flags)
	b.configure(width, height)
}

func (b *WGPU) SetDebug(flags DebugFlags) {
	b.debug = flags
}

func (b *WGPU) SetViewClear(view ViewID, flags ClearFlags, rgba uint32, depth float32, stencil uint8) {
	v := b.view(view)
	v.clear = flags
	v.rgba = rgba
	v.depth = depth
	v.stencil = stencil
}

func (b *WGPU) SetViewRect(view ViewID, x, y, width, height uint16) {
	v := b.view(view)
	v.x, v.y = x, y
	v.width, v.height = width, height

	if view == 0 {
		b.fallbackWidth = uint32(width)
		b.fallbackHeight = uint32(height)
	}
}

func (b *WGPU) Touch(view ViewID) {
	b.view(view).touched = true
}

func (b *WGPU) DebugTextClear() {
	b.text.clear()
}

func (b *WGPU) DebugTextPrintf(x, y uint16, attr uint8, format string, args ...any) {
	b.text.printf(x, y, attr, format, args...)
}

func (b *WGPU) Frame(capture bool) uint32 {
	frame := b.frame
	b.frame++

	b.text.flush(b.debug&DebugText != 0)

	if !b.configured {
		// Init deferred the resolution; adopt the view-0 rect if one is
		// known by now, otherwise the frame is empty.
		b.configure(b.fallbackWidth, b.fallbackHeight)
		if !b.configured {
			return frame
		}
	}

	surface, err := b.surface.GetCurrentTexture()
	if err != nil {
		slog.Warn("Acquire surface texture", slog.Any("error", err))
		return frame
	}
	defer surface.Release()

	surfaceView, err := surface.CreateView(nil)
	if err != nil {
		slog.Warn("Create surface view", slog.Any("error", err))
		return frame
	}
	defer surfaceView.Release()

	enc, err := b.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "Frame"})
	if err != nil {
		slog.Warn("Create command encoder", slog.Any("error", err))
		return frame
	}
	defer enc.Release()

	for _, id := range slices.Sorted(maps.Keys(b.views)) {
		v := b.views[id]
		if !v.touched {
			continue
		}
		v.touched = false

		b.encodeView(enc, surfaceView, v)
	}

	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "Frame"})
	if err != nil {
		slog.Warn("Finish command encoder", slog.Any("error", err))
		return frame
	}
	defer buf.Release()

	b.queue.Submit(buf)
	b.surface.Present()

	return frame
}

func (b *WGPU) Shutdown() {
	slog.Info("Shutting down rendering backend", slog.Uint64("frames", uint64(b.frame)))
	b.release()
	b.initialized = false
}

func (b *WGPU) view(id ViewID) *viewConfig {
	v, ok := b.views[id]
	if !ok {
		v = &viewConfig{}
		b.views[id] = v
	}

	return v
}

func (b *WGPU) configure(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}

	b.surfaceConfig.Width = width
	b.surfaceConfig.Height = height
	b.surface.Configure(b.adapter, b.device, b.surfaceConfig)
	b.configured = true

	if b.depthView != nil {
		b.depthView.Release()
		b.depthView = nil
	}

	tex := b.depthTexture(width, height)
	if tex == nil {
		return
	}

	view, err := tex.CreateView(nil)
	if err != nil {
		slog.Warn("Create depth view", slog.Any("error", err))
		return
	}

	b.depthView = view
}

func (b *WGPU) depthTexture(width, height uint32) *wgpu.Texture {
	key := [2]uint32{width, height}

	cached, ok := b.depthTextures.Get(key)
	if ok {
		return cached
	}

	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "DepthTexture",
		Usage: wgpu.TextureUsageRenderAttachment,
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		Format:        wgpu.TextureFormatDepth32Float,
		Dimension:     wgpu.TextureDimension2D,
		SampleCount:   1,
		MipLevelCount: 1,
	})
	if err != nil {
		slog.Warn("Create depth texture", slog.Any("error", err))
		return nil
	}

	b.depthTextures.Add(key, tex)

	return tex
}

// encodeView records one render pass for a touched view. With no draw
// commands the pass only applies the view's clear settings.
func (b *WGPU) encodeView(enc *wgpu.CommandEncoder, target *wgpu.TextureView, v *viewConfig) {
	color := wgpu.RenderPassColorAttachment{
		View:    target,
		LoadOp:  wgpu.LoadOpLoad,
		StoreOp: wgpu.StoreOpStore,
	}

	if v.clear&ClearColor != 0 {
		color.LoadOp = wgpu.LoadOpClear
		color.ClearValue = colorOf(v.rgba)
	}

	desc := &wgpu.RenderPassDescriptor{
		Label:            "View",
		ColorAttachments: []wgpu.RenderPassColorAttachment{color},
	}

	if v.clear&ClearDepth != 0 && b.depthView != nil {
		desc.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: v.depth,
		}
	}

	pass := enc.BeginRenderPass(desc)
	defer pass.Release()

	if rw, rh := uint32(v.width), uint32(v.height); rw > 0 && rh > 0 {
		// clamp the rect to the surface; it can be one frame stale
		w := min(rw, b.surfaceConfig.Width-min(uint32(v.x), b.surfaceConfig.Width))
		h := min(rh, b.surfaceConfig.Height-min(uint32(v.y), b.surfaceConfig.Height))
		if w > 0 && h > 0 {
			pass.SetViewport(float32(v.x), float32(v.y), float32(w), float32(h), 0, 1)
		}
	}

	pass.End()
}

func (b *WGPU) release() {
	if b.depthView != nil {
		b.depthView.Release()
		b.depthView = nil
	}

	b.depthTextures.Purge()
	b.configured = false

	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}

	if b.device != nil {
		b.device.Release()
		b.device = nil
	}

	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}

	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}

	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

func presentModeOf(flags ResetFlags) wgpu.PresentMode {
	if flags&ResetVsync != 0 {
		return wgpu.PresentModeFifo
	}

	return wgpu.PresentModeImmediate
}

// colorOf unpacks 0xRRGGBBAA into a normalized color.
func colorOf(rgba uint32) wgpu.Color {
	return wgpu.Color{
		R: float64(rgba>>24&0xff) / 255,
		G: float64(rgba>>16&0xff) / 255,
		B: float64(rgba>>8&0xff) / 255,
		A: float64(rgba&0xff) / 255,
	}
}
