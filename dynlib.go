package basalt

// DynamicLibrary owns one native handle to a shared library loaded through
// the native layer's portable loader.
type DynamicLibrary struct {
	ctx       *Context
	h         uintptr
	destroyed bool
}

// LoadLibrary loads the named shared library. The name is passed to the
// platform loader as is, so it follows the platform's naming and search
// rules (lib prefix and .so suffix on Linux, .dll on Windows, and so on).
func (c *Context) LoadLibrary(name string) (*DynamicLibrary, error) {
	if err := c.ok(); err != nil {
		debugMisuse("LoadLibrary", err)
		return nil, err
	}
	handle := c.api.loadObject(name)
	if handle == 0 {
		return nil, lastError(c.api, "LoadLibrary")
	}
	lib := &DynamicLibrary{ctx: c, h: handle}
	c.children.adopt(lib)
	Logger().Debug("basalt: library loaded", "name", name)
	return lib, nil
}

// FindSymbol looks up an exported symbol and returns its raw address.
//
// The address is untyped and, unlike every other value this package hands
// out, not tied to the library's lifetime: calling through it after the
// library is disposed is undefined behavior the caller must avoid. Convert
// it to a callable with purego.NewCallback-style facilities at the call
// site.
func (l *DynamicLibrary) FindSymbol(name string) (uintptr, error) {
	if err := l.ok(); err != nil {
		debugMisuse("DynamicLibrary.FindSymbol", err)
		return 0, err
	}
	addr := l.ctx.api.loadFunction(l.h, name)
	if addr == 0 {
		return 0, lastError(l.ctx.api, "DynamicLibrary.FindSymbol")
	}
	return addr, nil
}

// Dispose unloads the library. Symbol addresses handed out earlier become
// dangling. Idempotent.
func (l *DynamicLibrary) Dispose() {
	if l == nil || l.destroyed {
		return
	}
	l.ctx.children.orphan(l)
	l.dispose()
}

func (l *DynamicLibrary) dispose() {
	l.destroyed = true
	l.ctx.api.unloadObject(l.h)
	l.h = 0
	Logger().Debug("basalt: library disposed")
}

func (l *DynamicLibrary) ok() error {
	if l == nil || l.destroyed {
		return ErrDisposed
	}
	return l.ctx.ok()
}
