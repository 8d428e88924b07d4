package basalt

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"unsafe"
)

// ReadPixels reads back pixels from the current rendering target into an
// RGBA image. A nil rect reads the whole target. This is a slow,
// synchronous GPU round trip meant for screenshots and tests, not per-frame
// use.
func (r *Renderer) ReadPixels(rect *Rect) (*image.RGBA, error) {
	if err := r.ok(); err != nil {
		debugMisuse("Renderer.ReadPixels", err)
		return nil, err
	}
	var w, h int32
	if rect != nil {
		w, h = rect.W, rect.H
	} else {
		var err error
		w, h, err = r.OutputSize()
		if err != nil {
			return nil, err
		}
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("basalt: ReadPixels: empty area %dx%d", w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	rc := r.api().renderReadPixels(r.h, rect.native(), uint32(PixelFormatRGBA32),
		unsafe.Pointer(&img.Pix[0]), int32(img.Stride))
	if rc != 0 {
		return nil, lastError(r.api(), "Renderer.ReadPixels")
	}
	return img, nil
}

// Screenshot reads back the whole rendering target and writes it as a PNG
// file at path. Call after drawing and before [Renderer.Present], since a
// present invalidates the backbuffer.
func (r *Renderer) Screenshot(path string) error {
	img, err := r.ReadPixels(nil)
	if err != nil {
		return err
	}
	return writePNG(path, img)
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
