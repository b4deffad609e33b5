// Package window wraps GLFW windowing for the presentation. The window is
// the source of the scroll wheel and pointer events that drive the
// experience, and hands the renderer a platform-appropriate surface
// descriptor.
package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window provides platform windowing and the input events the presentation
// consumes: scroll wheel deltas, pointer position, key presses, and resize.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is
	// resized. Dimensions are in pixels.
	//
	// Parameters:
	//   - callback: function receiving new width and height
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	// Positive delta is scroll up (rewind), negative is scroll down (advance).
	//
	// Parameters:
	//   - callback: function receiving the scroll delta
	SetScrollCallback(callback func(delta float64))

	// SetPointerMoveCallback sets the callback for pointer movement, in
	// window coordinates.
	//
	// Parameters:
	//   - callback: function receiving the pointer x, y position
	SetPointerMoveCallback(callback func(x, y float64))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for
	// creating a WebGPU surface, built by the wgpuglfw bridge.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the descriptor, or nil if not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true while the window is open.
	IsRunning() bool

	// Close destroys the window and terminates GLFW.
	//
	// Returns:
	//   - error: error if the window was never initialized
	Close() error

	// ProcessMessages runs the message loop on the calling goroutine.
	// Blocks until the window closes, invoking the update callback each
	// iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int
}

type windowImpl struct {
	title  string
	width  int
	height int

	handle  *glfw.Window
	running bool

	onUpdate      func()
	onResize      func(width, height int)
	onScroll      func(delta float64)
	onPointerMove func(x, y float64)
	onKeyDown     func(keyCode uint32)
}

var _ Window = &windowImpl{}

// NewWindow creates and opens a GLFW window configured for WebGPU rendering.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the opened window
//   - error: error if GLFW or the window cannot be initialized
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	runtime.LockOSThread()

	w := &windowImpl{
		title:  "Portfolio",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	// WebGPU brings its own graphics API, so no OpenGL context.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	handle, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
	}
	w.handle = handle
	w.running = true

	handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.running = false
			handle.SetShouldClose(true)
			return
		}
		if action == glfw.Press || action == glfw.Repeat {
			if w.onKeyDown != nil {
				w.onKeyDown(uint32(key))
			}
		}
	})

	handle.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if w.onScroll != nil {
			w.onScroll(yoff)
		}
	})

	handle.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if w.onPointerMove != nil {
			w.onPointerMove(xpos, ypos)
		}
	})

	// Framebuffer size, not window size: high-DPI displays diverge and the
	// surface configuration needs pixels.
	handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	fbWidth, fbHeight := handle.GetFramebufferSize()
	w.width = fbWidth
	w.height = fbHeight

	return w, nil
}

func (w *windowImpl) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *windowImpl) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *windowImpl) SetScrollCallback(callback func(delta float64)) {
	w.onScroll = callback
}

func (w *windowImpl) SetPointerMoveCallback(callback func(x, y float64)) {
	w.onPointerMove = callback
}

func (w *windowImpl) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *windowImpl) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	if w.handle == nil {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(w.handle)
}

func (w *windowImpl) IsRunning() bool {
	return w.handle != nil && w.running && !w.handle.ShouldClose()
}

func (w *windowImpl) Close() error {
	if w.handle == nil {
		return fmt.Errorf("window is not initialized")
	}
	w.running = false
	w.handle.SetShouldClose(true)
	w.handle.Destroy()
	glfw.Terminate()
	return nil
}

func (w *windowImpl) ProcessMessages() {
	for w.IsRunning() {
		glfw.PollEvents()
		if !w.IsRunning() {
			break
		}
		if w.onUpdate != nil {
			w.onUpdate()
		}
		runtime.Gosched()
	}
}

func (w *windowImpl) Width() int {
	return w.width
}

func (w *windowImpl) Height() int {
	return w.height
}
