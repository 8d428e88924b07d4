package basalt

// RendererFlags is a bitmask of renderer properties for
// [Window.CreateRenderer].
type RendererFlags uint32

const (
	RendererSoftware      RendererFlags = 0x00000001 // CPU fallback renderer
	RendererAccelerated   RendererFlags = 0x00000002 // hardware acceleration
	RendererPresentVSync  RendererFlags = 0x00000004 // Present synchronized with refresh
	RendererTargetTexture RendererFlags = 0x00000008 // supports rendering to texture
)

// Renderer owns one native rendering context for a window. Created with
// [Window.CreateRenderer]; textures for the renderer are created with
// [Renderer.CreateTextureFromSurface].
//
// A Renderer only works with textures it created itself. Unlike the native
// layer, which leaves that entirely to the caller, [Renderer.Copy] checks
// and fails with [ErrForeignTexture].
type Renderer struct {
	win       *Window
	h         uintptr
	children  resourceList
	destroyed bool
}

// CreateRenderer makes a renderer for the window. A negative driverIndex
// selects the first driver that satisfies flags; a non-negative one selects
// that specific driver.
func (w *Window) CreateRenderer(driverIndex int, flags RendererFlags) (*Renderer, error) {
	if err := w.ok(); err != nil {
		debugMisuse("Window.CreateRenderer", err)
		return nil, err
	}
	index := int32(driverIndex)
	if driverIndex < 0 {
		index = -1
	}
	handle := w.ctx.api.createRenderer(w.h, index, uint32(flags))
	if handle == 0 {
		return nil, lastError(w.ctx.api, "Window.CreateRenderer")
	}
	r := &Renderer{win: w, h: handle}
	w.children.adopt(r)
	Logger().Debug("basalt: renderer created", "driver", driverIndex, "flags", uint32(flags))
	return r, nil
}

// Dispose destroys the rendering context after first disposing every
// texture created from it. The window stays valid. Idempotent.
func (r *Renderer) Dispose() {
	if r == nil || r.destroyed {
		return
	}
	r.win.children.orphan(r)
	r.dispose()
}

func (r *Renderer) dispose() {
	r.destroyed = true
	r.children.disposeAll()
	r.api().destroyRenderer(r.h)
	r.h = 0
	Logger().Debug("basalt: renderer disposed")
}

func (r *Renderer) ok() error {
	if r == nil || r.destroyed {
		return ErrDisposed
	}
	return r.win.ok()
}

func (r *Renderer) api() *api {
	return r.win.ctx.api
}

// Clear clears the entire target with the current draw color, ignoring the
// viewport and clip rect.
func (r *Renderer) Clear() error {
	if err := r.ok(); err != nil {
		debugMisuse("Renderer.Clear", err)
		return err
	}
	if r.api().renderClear(r.h) != 0 {
		return lastError(r.api(), "Renderer.Clear")
	}
	return nil
}

// SetDrawColor sets the color used by [Renderer.Clear] and primitive
// drawing.
func (r *Renderer) SetDrawColor(red, green, blue, alpha uint8) error {
	if err := r.ok(); err != nil {
		debugMisuse("Renderer.SetDrawColor", err)
		return err
	}
	if r.api().setRenderDrawColor(r.h, red, green, blue, alpha) != 0 {
		return lastError(r.api(), "Renderer.SetDrawColor")
	}
	return nil
}

// Copy blits a texture to the rendering target, stretching as needed when
// the rectangles differ in size.
//
// A nil src uses the whole texture; a nil dst fills the whole target. The
// texture must have been created by this renderer; Copy fails with
// [ErrForeignTexture] otherwise.
func (r *Renderer) Copy(t *Texture, src, dst *Rect) error {
	if err := r.ok(); err != nil {
		debugMisuse("Renderer.Copy", err)
		return err
	}
	if err := t.ok(); err != nil {
		debugMisuse("Renderer.Copy", err)
		return err
	}
	if t.r != r {
		debugMisuse("Renderer.Copy", ErrForeignTexture)
		return ErrForeignTexture
	}
	if r.api().renderCopy(r.h, t.h, src.native(), dst.native()) != 0 {
		return lastError(r.api(), "Renderer.Copy")
	}
	return nil
}

// Present flips the backbuffer to the screen. Afterwards the backbuffer
// contents are undefined: clear before the next render pass even when
// every pixel will be drawn again.
func (r *Renderer) Present() error {
	if err := r.ok(); err != nil {
		debugMisuse("Renderer.Present", err)
		return err
	}
	r.api().renderPresent(r.h)
	return nil
}

// OutputSize returns the size of the rendering target in physical pixels,
// which can differ from the window's logical size on high-DPI displays.
func (r *Renderer) OutputSize() (width, height int32, err error) {
	if err := r.ok(); err != nil {
		debugMisuse("Renderer.OutputSize", err)
		return 0, 0, err
	}
	if r.api().getRendererOutputSize(r.h, &width, &height) != 0 {
		return 0, 0, lastError(r.api(), "Renderer.OutputSize")
	}
	return width, height, nil
}
