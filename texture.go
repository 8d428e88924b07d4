package basalt

// Texture owns one native GPU-side image. Textures are fast to copy to the
// rendering target but are not meant for frequent CPU updates; build the
// pixels in a [Surface] and convert.
type Texture struct {
	r         *Renderer
	h         uintptr
	destroyed bool
}

// CreateTextureFromSurface uploads the surface's pixels into a new texture
// with static access. The texture's pixel format may differ from the
// surface's; the native layer converts as needed.
func (r *Renderer) CreateTextureFromSurface(s *Surface) (*Texture, error) {
	if err := r.ok(); err != nil {
		debugMisuse("Renderer.CreateTextureFromSurface", err)
		return nil, err
	}
	if err := s.ok(); err != nil {
		debugMisuse("Renderer.CreateTextureFromSurface", err)
		return nil, err
	}
	handle := r.api().createTextureFromSurface(r.h, s.h)
	if handle == 0 {
		return nil, lastError(r.api(), "Renderer.CreateTextureFromSurface")
	}
	t := &Texture{r: r, h: handle}
	r.children.adopt(t)
	Logger().Debug("basalt: texture created", "w", s.width, "h", s.height)
	return t, nil
}

// Dispose destroys the texture. The renderer that created it stays valid.
// Idempotent.
func (t *Texture) Dispose() {
	if t == nil || t.destroyed {
		return
	}
	t.r.children.orphan(t)
	t.dispose()
}

func (t *Texture) dispose() {
	t.destroyed = true
	t.r.api().destroyTexture(t.h)
	t.h = 0
	Logger().Debug("basalt: texture disposed")
}

func (t *Texture) ok() error {
	if t == nil || t.destroyed {
		return ErrDisposed
	}
	return t.r.ok()
}
