package basalt

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"
)

// --- Creation and format resolution ---

func TestCreateSurfaceIndexed8(t *testing.T) {
	ctx, _ := newTestContext(t)
	sur, err := ctx.CreateSurface(64, 64, SurfaceFormatIndexed8)
	if err != nil {
		t.Fatal(err)
	}
	if sur.Width() != 64 || sur.Height() != 64 {
		t.Errorf("size = (%d, %d), want (64, 64)", sur.Width(), sur.Height())
	}
	if got := sur.Format(); got != PixelFormatIndex8 {
		t.Errorf("Format() = %#x, want Index8", uint32(got))
	}
	if !sur.Format().IsIndexed() || sur.Format().IsPacked() {
		t.Error("Index8 surface must decode as indexed, not packed")
	}
}

func TestCreateSurfaceFailure(t *testing.T) {
	ctx, f := newTestContext(t)
	f.fail("SDL_CreateRGBSurface", "out of memory")
	sur, err := ctx.CreateSurface(64, 64, SurfaceFormatIndexed8)
	if sur != nil {
		t.Error("CreateSurface returned a surface alongside the error")
	}
	var ne *NativeError
	if !errors.As(err, &ne) || ne.Message != "out of memory" {
		t.Fatalf("err = %v, want NativeError with the native string", err)
	}
}

func TestCreateSurfaceFromValidatesLength(t *testing.T) {
	ctx, _ := newTestContext(t)
	pix := make([]byte, 10) // far short of pitch*h
	if _, err := ctx.CreateSurfaceFrom(pix, 8, 8, 32, SurfaceFormatRGBA32()); err == nil {
		t.Fatal("CreateSurfaceFrom accepted a short pixel slice")
	}
}

func TestCreateSurfaceFromRGBA32(t *testing.T) {
	ctx, _ := newTestContext(t)
	pix := make([]byte, 8*8*4)
	sur, err := ctx.CreateSurfaceFrom(pix, 8, 8, 8*4, SurfaceFormatRGBA32())
	if err != nil {
		t.Fatal(err)
	}
	if got := sur.Format(); got != PixelFormatRGBA32 {
		t.Errorf("Format() = %#x, want the RGBA32 alias %#x", uint32(got), uint32(PixelFormatRGBA32))
	}
	if !sur.Format().IsAlpha() {
		t.Error("RGBA32 surface must report an alpha channel")
	}
}

// --- BMP loading ---

func TestDecodeBMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{R: uint8(40 * x), G: uint8(100 * y), B: 7, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	ctx, _ := newTestContext(t)
	sur, err := ctx.DecodeBMP(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if sur.Width() != 4 || sur.Height() != 2 {
		t.Errorf("size = (%d, %d), want (4, 2)", sur.Width(), sur.Height())
	}
	if got := sur.Format(); got != PixelFormatRGBA32 {
		t.Errorf("Format() = %#x, want RGBA32", uint32(got))
	}
}

func TestDecodeBMPBadData(t *testing.T) {
	ctx, _ := newTestContext(t)
	if _, err := ctx.DecodeBMP(bytes.NewReader([]byte("not a bmp"))); err == nil {
		t.Fatal("DecodeBMP accepted garbage")
	}
}

func TestLoadBMPMissingFile(t *testing.T) {
	ctx, _ := newTestContext(t)
	if _, err := ctx.LoadBMP(t.TempDir() + "/nope.bmp"); err == nil {
		t.Fatal("LoadBMP accepted a missing file")
	}
}

// --- Stale handles ---

func TestSurfaceDispose(t *testing.T) {
	ctx, f := newTestContext(t)
	sur, err := ctx.CreateSurface(8, 8, SurfaceFormatIndexed8)
	if err != nil {
		t.Fatal(err)
	}
	sur.Dispose()
	sur.Dispose()
	indexOfPrefix(t, f, "FreeSurface")
	if err := sur.ok(); !errors.Is(err, ErrDisposed) {
		t.Errorf("ok() after Dispose = %v, want ErrDisposed", err)
	}
}
