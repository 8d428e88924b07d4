package basalt

import (
	"runtime"
	"sync/atomic"
)

func init() {
	// The native layer requires that initialization, window management, and
	// the event queue all happen on the process's main thread. Package init
	// runs on the main thread, so pin it before user code can move.
	runtime.LockOSThread()
}

// Everything the native init call can start: timer, audio, video, joystick,
// haptic, game controller, events, sensor.
const initEverything uint32 = 0x0000F231

// initialized is set while a Context is live. Init refuses to create a
// second Context until the first is disposed.
var initialized atomic.Bool

// Context is proof that the native subsystem is initialized. Every other
// resource is created through a Context method or through a resource that
// ultimately came from one, and no resource outlives its Context.
//
// At most one Context is live per process. Dispose it to shut the native
// subsystem down; disposing it first disposes every resource created from
// it, leaves first.
type Context struct {
	api       *api
	children  resourceList
	destroyed bool
}

// Init starts the native subsystem and returns the process's Context.
//
// Must be called from the main goroutine: the native layer requires its
// init, window, and event calls on the process main thread (a hard platform
// rule on macOS). Returns [ErrAlreadyInitialized] if a live Context already
// exists, or a [NativeError] if the native subsystem fails to start.
func Init() (*Context, error) {
	if !initialized.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInitialized
	}
	a, err := loadAPI()
	if err != nil {
		initialized.Store(false)
		return nil, err
	}
	if a.init(initEverything) != 0 {
		err := lastError(a, "Init")
		initialized.Store(false)
		return nil, err
	}
	Logger().Info("basalt: initialized")
	return &Context{api: a}, nil
}

// Dispose disposes every resource created from this Context, leaves first,
// then shuts the native subsystem down. After Dispose returns, Init may be
// called again. Dispose is idempotent.
func (c *Context) Dispose() {
	if c == nil || c.destroyed {
		return
	}
	c.dispose()
}

func (c *Context) dispose() {
	c.destroyed = true
	c.children.disposeAll()
	c.api.quit()
	initialized.Store(false)
	Logger().Info("basalt: shut down")
}

// ok reports whether the Context is still usable.
func (c *Context) ok() error {
	if c == nil || c.destroyed {
		return ErrDisposed
	}
	return nil
}

// Rect is an axis-aligned rectangle with its origin at the upper left,
// matching the native coordinate convention.
type Rect struct {
	X, Y, W, H int32
}

// native converts to the C layout. A nil Rect converts to a nil pointer,
// which the native calls read as "the whole area".
func (r *Rect) native() *nativeRect {
	if r == nil {
		return nil
	}
	return &nativeRect{x: r.X, y: r.Y, w: r.W, h: r.H}
}

// Version is a semantic version of the native library.
type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
}

// RuntimeVersion reports the version of the native library loaded at
// runtime, which may be newer than the one this package was written
// against. Does not require Init.
func RuntimeVersion() (Version, error) {
	a, err := loadAPI()
	if err != nil {
		return Version{}, err
	}
	var v nativeVersion
	a.getVersion(&v)
	return Version{Major: v.major, Minor: v.minor, Patch: v.patch}, nil
}

// MessageBoxKind selects the icon and severity of a message box.
type MessageBoxKind uint32

const (
	MessageBoxError       MessageBoxKind = 0x10
	MessageBoxWarning     MessageBoxKind = 0x20
	MessageBoxInformation MessageBoxKind = 0x40
)

// MessageBox shows a stand-alone modal message box and blocks until it is
// dismissed. Does not require Init, but like all UI calls it must run on
// the main thread. For a box modal to one window, use
// [Window.ModalMessageBox].
func MessageBox(kind MessageBoxKind, title, message string) error {
	a, err := loadAPI()
	if err != nil {
		return err
	}
	if a.showSimpleMessageBox(uint32(kind), title, message, 0) != 0 {
		return lastError(a, "MessageBox")
	}
	return nil
}
