package basalt

// DisplayMode describes one fullscreen display configuration.
//
// The native struct ends in an opaque driver data pointer. Modes built by
// callers carry a zero pointer; modes read back from a window carry
// whatever the native side stored there, and [Window.SetDisplayMode]
// passes it back untouched. The field stays unexported so callers cannot
// violate either rule.
type DisplayMode struct {
	// Format is the pixel format of the mode.
	Format PixelFormat
	// Width and Height are in logical units.
	Width  int32
	Height int32
	// RefreshRate is in Hz, or 0 if unspecified.
	RefreshRate int32

	driverData uintptr
}

// NewDisplayMode builds a caller-specified mode for
// [Window.SetDisplayMode]. A zero DisplayMode literal is equally valid;
// the constructor only spells out the four fields a caller may set.
func NewDisplayMode(format PixelFormat, width, height, refreshRate int32) DisplayMode {
	return DisplayMode{
		Format:      format,
		Width:       width,
		Height:      height,
		RefreshRate: refreshRate,
	}
}

func displayModeFromNative(nm *nativeDisplayMode) DisplayMode {
	return DisplayMode{
		Format:      PixelFormat(nm.format),
		Width:       nm.w,
		Height:      nm.h,
		RefreshRate: nm.refreshRate,
		driverData:  nm.driverData,
	}
}

func (m *DisplayMode) native() *nativeDisplayMode {
	return &nativeDisplayMode{
		format:      uint32(m.Format),
		w:           m.Width,
		h:           m.Height,
		refreshRate: m.RefreshRate,
		driverData:  m.driverData,
	}
}
