package renderer

import (
	"fmt"
	"log"
	"math"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/satset19/porto-with-glm/common"
)

const (
	instanceStride = 48

	// cameraBytes covers the view and projection matrices at the head of
	// the frame uniform buffer.
	cameraBytes = 2 * 64

	// paramSlot is the per-parameter footprint in the uniform buffer.
	// Scalars and vec3s both occupy one 16-byte slot for WGSL alignment.
	paramSlot = 16
)

var _ Sink = &wgpuSinkImpl{}

type wgpuSinkImpl struct {
	mu *sync.Mutex

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat *wgpu.TextureFormat
	presentMode   wgpu.PresentMode
	clearColor    wgpu.Color

	instanceBuffer *wgpu.Buffer
	frameBuffer    *wgpu.Buffer

	arena         *InstanceArena
	frameUniforms []float32
	paramOffsets  map[string]int

	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

// NewWGPUSink creates a Sink backed by a WebGPU device and surface. The sink
// owns an instance storage buffer and a frame uniform buffer (camera matrices
// followed by the declared named parameters) that the raster pipeline binds.
//
// Parameters:
//   - surfaceDescriptor: the surface descriptor obtained from the window
//   - options: optional WGPUSinkBuilderOption functions
//
// Returns:
//   - Sink: the GPU sink
//   - error: error if the adapter, device, or buffers cannot be created
func NewWGPUSink(surfaceDescriptor *wgpu.SurfaceDescriptor, options ...WGPUSinkBuilderOption) (Sink, error) {
	if surfaceDescriptor == nil {
		panic("surfaceDescriptor is required")
	}
	runtime.LockOSThread()

	cfg := defaultWGPUSinkConfig()
	for _, opt := range options {
		opt(cfg)
	}

	s := &wgpuSinkImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: cfg.presentMode,
		clearColor:  cfg.clearColor,
		arena:       NewInstanceArena(cfg.instanceCapacity),
	}
	s.surface = s.instance.CreateSurface(surfaceDescriptor)

	adapter, err := s.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: cfg.forceFallbackAdapter,
		CompatibleSurface:    s.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	s.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Presentation Device",
	})
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}
	s.device = device
	s.queue = device.GetQueue()

	// Camera matrices first, then one 16-byte slot per declared parameter
	// in declaration order so the shader layout is stable.
	s.paramOffsets = make(map[string]int, len(cfg.scalarParams)+len(cfg.vecParams))
	offset := cameraBytes
	for _, name := range cfg.scalarParams {
		s.paramOffsets[name] = offset
		offset += paramSlot
	}
	for _, name := range cfg.vecParams {
		s.paramOffsets[name] = offset
		offset += paramSlot
	}
	s.frameUniforms = make([]float32, offset/4)

	s.instanceBuffer, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Instance Buffer",
		Size:  uint64(cfg.instanceCapacity * instanceStride),
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create instance buffer: %w", err)
	}

	s.frameBuffer, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Frame Uniform Buffer",
		Size:  uint64(offset),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create frame uniform buffer: %w", err)
	}

	return s, nil
}

// InstanceBuffer exposes the GPU instance storage buffer for pipeline binding.
func (s *wgpuSinkImpl) InstanceBuffer() *wgpu.Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.instanceBuffer
}

// FrameBuffer exposes the frame uniform buffer for pipeline binding.
func (s *wgpuSinkImpl) FrameBuffer() *wgpu.Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameBuffer
}

func (s *wgpuSinkImpl) BeginFrame() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	surfaceTexture, err := s.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("get current texture: %w", err)
	}
	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return fmt.Errorf("create surface view: %w", err)
	}
	s.frameSurface = surfaceTexture
	s.frameView = view
	return nil
}

func (s *wgpuSinkImpl) SubmitInstances(instances []Instance) {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.arena.Stage(instances)
	if staged < len(instances) {
		log.Printf("[Renderer] Dropped %d instances over arena capacity %d", len(instances)-staged, s.arena.Cap())
	}
}

func (s *wgpuSinkImpl) SetParam(name string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offset, ok := s.paramOffsets[name]
	if !ok {
		log.Printf("[Renderer] Unknown scalar parameter %q", name)
		return
	}
	s.frameUniforms[offset/4] = float32(sanitize(value))
}

func (s *wgpuSinkImpl) SetVecParam(name string, value common.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offset, ok := s.paramOffsets[name]
	if !ok {
		log.Printf("[Renderer] Unknown vector parameter %q", name)
		return
	}
	base := offset / 4
	s.frameUniforms[base] = float32(sanitize(value[0]))
	s.frameUniforms[base+1] = float32(sanitize(value[1]))
	s.frameUniforms[base+2] = float32(sanitize(value[2]))
}

func (s *wgpuSinkImpl) SetCamera(view, projection [16]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copy(s.frameUniforms[0:16], view[:])
	copy(s.frameUniforms[16:32], projection[:])
}

func (s *wgpuSinkImpl) EndFrame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frameView == nil {
		return
	}

	if s.arena.Len() > 0 {
		s.queue.WriteBuffer(s.instanceBuffer, 0, s.arena.Bytes())
	}
	s.queue.WriteBuffer(s.frameBuffer, 0, common.SliceToBytes(s.frameUniforms))

	encoder, err := s.device.CreateCommandEncoder(nil)
	if err != nil {
		log.Printf("[Renderer] Failed to create command encoder: %v", err)
		return
	}
	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       s.frameView,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: s.clearColor,
			},
		},
	})
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		log.Printf("[Renderer] Failed to finish command encoder: %v", err)
		encoder.Release()
		return
	}
	s.queue.Submit(commandBuffer)
	commandBuffer.Release()
	encoder.Release()
}

func (s *wgpuSinkImpl) Present() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frameView == nil {
		return
	}
	s.surface.Present()
	s.frameView.Release()
	s.frameSurface.Release()
	s.frameView = nil
	s.frameSurface = nil
}

func (s *wgpuSinkImpl) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if width <= 0 || height <= 0 {
		return
	}
	capabilities := s.surface.GetCapabilities(s.adapter)
	s.surfaceFormat = &capabilities.Formats[0]

	s.surface.Configure(s.adapter, s.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *s.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: s.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
}

func (s *wgpuSinkImpl) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frameView != nil {
		s.frameView.Release()
		s.frameView = nil
	}
	if s.frameSurface != nil {
		s.frameSurface.Release()
		s.frameSurface = nil
	}
	if s.instanceBuffer != nil {
		s.instanceBuffer.Release()
		s.instanceBuffer = nil
	}
	if s.frameBuffer != nil {
		s.frameBuffer.Release()
		s.frameBuffer = nil
	}
	if s.device != nil {
		s.device.Release()
		s.device = nil
	}
	if s.surface != nil {
		s.surface.Release()
		s.surface = nil
	}
	if s.adapter != nil {
		s.adapter.Release()
		s.adapter = nil
	}
	if s.instance != nil {
		s.instance.Release()
		s.instance = nil
	}
}

// sanitize replaces non-finite values so a bad frame never reaches the GPU.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
