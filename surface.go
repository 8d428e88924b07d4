package basalt

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"unsafe"

	"golang.org/x/image/bmp"
)

// SurfaceFormat selects the depth and channel masks of a new surface.
// Indexed formats carry depth only; direct formats additionally carry one
// bitmask per channel. Use the exported values and constructors rather
// than filling the struct by hand.
type SurfaceFormat struct {
	Depth                      int32
	RMask, GMask, BMask, AMask uint32
}

// Indexed surface formats: palette surfaces with no channel masks.
var (
	SurfaceFormatIndexed4 = SurfaceFormat{Depth: 4}
	SurfaceFormatIndexed8 = SurfaceFormat{Depth: 8}
)

// SurfaceFormatDirect16 is a 16 bits per pixel format with the given
// channel masks. A zero AMask means no alpha channel.
func SurfaceFormatDirect16(rmask, gmask, bmask, amask uint32) SurfaceFormat {
	return SurfaceFormat{Depth: 16, RMask: rmask, GMask: gmask, BMask: bmask, AMask: amask}
}

// SurfaceFormatDirect24 is a 24 bits per pixel format with the given
// channel masks.
func SurfaceFormatDirect24(rmask, gmask, bmask, amask uint32) SurfaceFormat {
	return SurfaceFormat{Depth: 24, RMask: rmask, GMask: gmask, BMask: bmask, AMask: amask}
}

// SurfaceFormatDirect32 is a 32 bits per pixel format with the given
// channel masks.
func SurfaceFormatDirect32(rmask, gmask, bmask, amask uint32) SurfaceFormat {
	return SurfaceFormat{Depth: 32, RMask: rmask, GMask: gmask, BMask: bmask, AMask: amask}
}

// SurfaceFormatRGBA32 is the 32-bit direct format whose bytes in memory
// are R, G, B, A regardless of endianness. Matches [PixelFormatRGBA32].
func SurfaceFormatRGBA32() SurfaceFormat {
	if isLittleEndian {
		return SurfaceFormatDirect32(0x000000FF, 0x0000FF00, 0x00FF0000, 0xFF000000)
	}
	return SurfaceFormatDirect32(0xFF000000, 0x00FF0000, 0x0000FF00, 0x000000FF)
}

// Surface owns one native CPU-side image. Surfaces hold pixels the CPU can
// touch; convert to a [Texture] for fast drawing.
type Surface struct {
	ctx       *Context
	h         uintptr
	width     int32
	height    int32
	format    PixelFormat
	pix       []byte // backing memory for from-pixels surfaces, kept reachable
	destroyed bool
}

// CreateSurface allocates a new surface of the given size and format.
func (c *Context) CreateSurface(w, h int32, format SurfaceFormat) (*Surface, error) {
	if err := c.ok(); err != nil {
		debugMisuse("CreateSurface", err)
		return nil, err
	}
	handle := c.api.createRGBSurface(0, w, h, format.Depth,
		format.RMask, format.GMask, format.BMask, format.AMask)
	if handle == 0 {
		return nil, lastError(c.api, "CreateSurface")
	}
	s := &Surface{ctx: c, h: handle, width: w, height: h, format: c.pixelFormatFor(format)}
	c.children.adopt(s)
	Logger().Debug("basalt: surface created", "w", w, "h", h, "depth", format.Depth)
	return s, nil
}

// CreateSurfaceFrom wraps caller-provided pixels in a surface without
// copying them. pix must hold at least pitch*h bytes and must not be
// mutated concurrently with native reads; the surface keeps pix reachable
// until it is disposed.
func (c *Context) CreateSurfaceFrom(pix []byte, w, h, pitch int32, format SurfaceFormat) (*Surface, error) {
	if err := c.ok(); err != nil {
		debugMisuse("CreateSurfaceFrom", err)
		return nil, err
	}
	if need := int(pitch) * int(h); need <= 0 || len(pix) < need {
		return nil, fmt.Errorf("basalt: CreateSurfaceFrom: need %d bytes for %dx%d at pitch %d, have %d",
			need, w, h, pitch, len(pix))
	}
	handle := c.api.createRGBSurfaceFrom(unsafe.Pointer(&pix[0]), w, h, format.Depth, pitch,
		format.RMask, format.GMask, format.BMask, format.AMask)
	if handle == 0 {
		return nil, lastError(c.api, "CreateSurfaceFrom")
	}
	s := &Surface{ctx: c, h: handle, width: w, height: h, format: c.pixelFormatFor(format), pix: pix}
	c.children.adopt(s)
	Logger().Debug("basalt: surface created from pixels", "w", w, "h", h, "pitch", pitch)
	return s, nil
}

// pixelFormatFor asks the native layer which pixel format code the given
// depth and masks resolve to. Unresolvable combinations yield
// PixelFormatUnknown rather than an error.
func (c *Context) pixelFormatFor(format SurfaceFormat) PixelFormat {
	return PixelFormat(c.api.masksToPixelFormat(format.Depth,
		format.RMask, format.GMask, format.BMask, format.AMask))
}

// DecodeBMP decodes a BMP stream into a new RGBA32 surface.
func (c *Context) DecodeBMP(r io.Reader) (*Surface, error) {
	src, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("basalt: DecodeBMP: %w", err)
	}
	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)
	return c.CreateSurfaceFrom(rgba.Pix,
		int32(bounds.Dx()), int32(bounds.Dy()), int32(rgba.Stride), SurfaceFormatRGBA32())
}

// LoadBMP reads a BMP file into a new RGBA32 surface.
func (c *Context) LoadBMP(path string) (*Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("basalt: LoadBMP: %w", err)
	}
	defer f.Close()
	s, err := c.DecodeBMP(f)
	if err != nil {
		return nil, fmt.Errorf("basalt: LoadBMP %s: %w", path, err)
	}
	return s, nil
}

// Dispose frees the surface. Idempotent.
func (s *Surface) Dispose() {
	if s == nil || s.destroyed {
		return
	}
	s.ctx.children.orphan(s)
	s.dispose()
}

func (s *Surface) dispose() {
	s.destroyed = true
	s.ctx.api.freeSurface(s.h)
	s.h = 0
	s.pix = nil
	Logger().Debug("basalt: surface disposed")
}

func (s *Surface) ok() error {
	if s == nil || s.destroyed {
		return ErrDisposed
	}
	return s.ctx.ok()
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int32 { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int32 { return s.height }

// Format returns the surface's pixel format code, as resolved by the
// native layer from the creation depth and masks.
func (s *Surface) Format() PixelFormat { return s.format }
