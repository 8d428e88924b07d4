package basalt

// WindowFlags is a bitmask of window properties, used at creation and
// reported by window state queries. Values can be combined with bitwise OR.
// Not every flag has an effect at creation time; some only ever appear in
// queries.
type WindowFlags uint32

const (
	WindowFullscreen        WindowFlags = 0x00000001 // fullscreen with a video mode change
	WindowOpenGL            WindowFlags = 0x00000002 // usable with an OpenGL context
	WindowShown             WindowFlags = 0x00000004 // window is visible
	WindowHidden            WindowFlags = 0x00000008 // window is not visible
	WindowBorderless        WindowFlags = 0x00000010 // no window decoration
	WindowResizable         WindowFlags = 0x00000020 // window can be resized by the user
	WindowMinimized         WindowFlags = 0x00000040
	WindowMaximized         WindowFlags = 0x00000080
	WindowInputGrabbed      WindowFlags = 0x00000100 // window has grabbed input focus
	WindowInputFocus        WindowFlags = 0x00000200 // window has keyboard focus
	WindowMouseFocus        WindowFlags = 0x00000400 // window has mouse focus
	WindowForeign           WindowFlags = 0x00000800 // window not created by the native layer
	WindowFullscreenDesktop WindowFlags = 0x00001001 // fullscreen at the desktop resolution
	WindowAllowHighDPI      WindowFlags = 0x00002000 // create in high-DPI mode if supported
	WindowMouseCapture      WindowFlags = 0x00004000 // mouse captured; distinct from input grabbed
	WindowAlwaysOnTop       WindowFlags = 0x00008000
	WindowSkipTaskbar       WindowFlags = 0x00010000 // keep off the taskbar (dialog boxes)
	WindowUtility           WindowFlags = 0x00020000
	WindowTooltip           WindowFlags = 0x00040000
	WindowPopupMenu         WindowFlags = 0x00080000
	WindowVulkan            WindowFlags = 0x10000000 // usable with a Vulkan instance
)

// Position sentinels for CreateWindow's x and y arguments.
const (
	// WindowPositionCentered centers the window along that axis.
	WindowPositionCentered int32 = 0x2FFF0000
	// WindowPositionUndefined lets the system place the window along that
	// axis.
	WindowPositionUndefined int32 = 0x1FFF0000
)

// FullscreenStyle selects how a window occupies the screen.
type FullscreenStyle uint32

const (
	// FullscreenStyleWindowed makes the window act like a window. Size is
	// controlled with [Window.SetSize].
	FullscreenStyleWindowed FullscreenStyle = 0
	// FullscreenStyleFullscreen performs a real video mode change. Size is
	// controlled with [Window.SetDisplayMode].
	FullscreenStyleFullscreen FullscreenStyle = 0x00000001
	// FullscreenStyleDesktop fakes fullscreen at the desktop's resolution
	// without a video mode change.
	FullscreenStyleDesktop FullscreenStyle = 0x00001001
)

// Window owns one native window. Created with [Context.CreateWindow];
// renderers for the window are created with [Window.CreateRenderer].
type Window struct {
	ctx       *Context
	h         uintptr
	children  resourceList
	destroyed bool
}

// CreateWindow creates a new native window. x and y take pixel coordinates
// or the WindowPosition sentinels. Not all flags make sense at creation;
// see the flag comments.
func (c *Context) CreateWindow(title string, x, y, w, h int32, flags WindowFlags) (*Window, error) {
	if err := c.ok(); err != nil {
		debugMisuse("CreateWindow", err)
		return nil, err
	}
	handle := c.api.createWindow(title, x, y, w, h, uint32(flags))
	if handle == 0 {
		return nil, lastError(c.api, "CreateWindow")
	}
	win := &Window{ctx: c, h: handle}
	c.children.adopt(win)
	Logger().Debug("basalt: window created", "w", w, "h", h, "flags", uint32(flags))
	return win, nil
}

// Dispose destroys the window after first disposing every renderer created
// from it (and their textures). Idempotent.
func (w *Window) Dispose() {
	if w == nil || w.destroyed {
		return
	}
	w.ctx.children.orphan(w)
	w.dispose()
}

func (w *Window) dispose() {
	w.destroyed = true
	w.children.disposeAll()
	w.ctx.api.destroyWindow(w.h)
	w.h = 0
	Logger().Debug("basalt: window disposed")
}

func (w *Window) ok() error {
	if w == nil || w.destroyed {
		return ErrDisposed
	}
	return w.ctx.ok()
}

// Size returns the logical size of the window in screen coordinates. For
// the physical pixel count of a renderer's target, use
// [Renderer.OutputSize] instead.
func (w *Window) Size() (width, height int32, err error) {
	if err := w.ok(); err != nil {
		debugMisuse("Window.Size", err)
		return 0, 0, err
	}
	w.ctx.api.getWindowSize(w.h, &width, &height)
	return width, height, nil
}

// SetSize sets the logical size of the window. Fullscreen windows match
// their display mode instead; use [Window.SetDisplayMode] for those.
func (w *Window) SetSize(width, height int32) error {
	if err := w.ok(); err != nil {
		debugMisuse("Window.SetSize", err)
		return err
	}
	w.ctx.api.setWindowSize(w.h, width, height)
	return nil
}

// DisplayMode returns the fullscreen display mode of the window.
func (w *Window) DisplayMode() (DisplayMode, error) {
	if err := w.ok(); err != nil {
		debugMisuse("Window.DisplayMode", err)
		return DisplayMode{}, err
	}
	var nm nativeDisplayMode
	if w.ctx.api.getWindowDisplayMode(w.h, &nm) != 0 {
		return DisplayMode{}, lastError(w.ctx.api, "Window.DisplayMode")
	}
	return displayModeFromNative(&nm), nil
}

// SetDisplayMode assigns the fullscreen display mode for the window. A nil
// mode selects the window's dimensions with the desktop's current format
// and refresh rate.
func (w *Window) SetDisplayMode(mode *DisplayMode) error {
	if err := w.ok(); err != nil {
		debugMisuse("Window.SetDisplayMode", err)
		return err
	}
	var nm *nativeDisplayMode
	if mode != nil {
		nm = mode.native()
	}
	if w.ctx.api.setWindowDisplayMode(w.h, nm) != 0 {
		return lastError(w.ctx.api, "Window.SetDisplayMode")
	}
	return nil
}

// SetFullscreenStyle switches the window between windowed and the two
// fullscreen styles.
func (w *Window) SetFullscreenStyle(style FullscreenStyle) error {
	if err := w.ok(); err != nil {
		debugMisuse("Window.SetFullscreenStyle", err)
		return err
	}
	if w.ctx.api.setWindowFullscreen(w.h, uint32(style)) != 0 {
		return lastError(w.ctx.api, "Window.SetFullscreenStyle")
	}
	return nil
}

// ModalMessageBox shows a message box modal to this window and blocks until
// it is dismissed. For a box with no owning window, use [MessageBox].
func (w *Window) ModalMessageBox(kind MessageBoxKind, title, message string) error {
	if err := w.ok(); err != nil {
		debugMisuse("Window.ModalMessageBox", err)
		return err
	}
	if w.ctx.api.showSimpleMessageBox(uint32(kind), title, message, w.h) != 0 {
		return lastError(w.ctx.api, "Window.ModalMessageBox")
	}
	return nil
}
