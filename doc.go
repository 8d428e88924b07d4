// Package basalt is a safety layer over the [SDL2] C library, loaded at
// runtime with [purego] (no cgo).
//
// Basalt wraps the raw native handles (windows, renderers, textures,
// surfaces, controllers, audio devices, loaded libraries) in Go values
// that guarantee each handle is released exactly once and only after
// every handle derived from it, and it decodes the library's tagged event
// records and bit-packed pixel format codes into precise Go types.
//
// # The Context
//
// Everything starts with [Init], which starts the native subsystem and
// returns the process's one [Context]:
//
//	ctx, err := basalt.Init()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Dispose()
//
// The Context is proof of initialization: every resource is created from
// it, directly or through another resource, and there is no way to touch
// native state without one. A second Init while a Context is live fails
// with [ErrAlreadyInitialized].
//
// Init must be called from the main goroutine. The package pins it to the
// main OS thread, which the native layer requires for window and event
// calls.
//
// # Resources and disposal
//
// Resources form a tree: Context creates [Window], [Surface],
// [Controller], [AudioQueue], and [DynamicLibrary]; a Window creates a
// [Renderer]; a Renderer creates a [Texture]. Disposing any resource
// first disposes everything created from it, newest first, so a native
// handle never outlives a handle derived from it. Every Dispose is
// idempotent, and operations on a disposed resource (or on a resource
// whose ancestor was disposed) fail with [ErrDisposed] instead of
// touching freed native memory.
//
//	win, err := ctx.CreateWindow("hello", basalt.WindowPositionCentered,
//		basalt.WindowPositionCentered, 800, 600, basalt.WindowShown)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ren, err := win.CreateRenderer(-1, basalt.RendererAccelerated)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// win.Dispose() would dispose ren (and ren's textures) first.
//
// # Events
//
// [Context.PollEvent] drains one event per call from the native queue and
// decodes it to a concrete variant:
//
//	for {
//		ev, ok := ctx.PollEvent()
//		if !ok {
//			break
//		}
//		switch e := ev.(type) {
//		case basalt.QuitEvent:
//			return
//		case basalt.KeyboardEvent:
//			fmt.Println("key", e.Keycode, "pressed", e.Pressed)
//		}
//	}
//
// Event types this package does not model decode to [UnknownEvent] with
// the raw discriminant; they are never errors and never dropped.
//
// # Pixel formats
//
// [PixelFormat] is the native 32-bit format code. Its methods decode the
// packed type, order, layout, and size fields, and they are total: codes
// from newer native versions decode to explicit Unknown/None values
// instead of failing.
//
// # Errors and logging
//
// Failed native calls return a [NativeError] carrying the native error
// string. Misuse the package detects itself returns one of the exported
// sentinel errors; nothing panics. Basalt is silent by default; pass a
// [log/slog] logger to [SetLogger] for diagnostics.
//
// [SDL2]: https://www.libsdl.org
// [purego]: https://github.com/ebitengine/purego
package basalt
