package basalt

import (
	"fmt"
	"strings"
	"testing"
)

// --- Tree-ordered teardown ---

// Disposing the Context must release every live resource before the native
// subsystem shuts down, and must release children before their parents.
func TestDisposeCascadesLeavesFirst(t *testing.T) {
	ctx, f := newTestContext(t)

	win, err := ctx.CreateWindow("t", 0, 0, 320, 200, WindowHidden)
	if err != nil {
		t.Fatal(err)
	}
	ren, err := win.CreateRenderer(-1, RendererSoftware)
	if err != nil {
		t.Fatal(err)
	}
	sur, err := ctx.CreateSurface(8, 8, SurfaceFormatIndexed8)
	if err != nil {
		t.Fatal(err)
	}
	tex, err := ren.CreateTextureFromSurface(sur)
	if err != nil {
		t.Fatal(err)
	}
	_ = tex

	ctx.Dispose()

	destroyTex := indexOfPrefix(t, f, "DestroyTexture")
	destroyRen := indexOfPrefix(t, f, "DestroyRenderer")
	destroyWin := indexOfPrefix(t, f, "DestroyWindow")
	freeSur := indexOfPrefix(t, f, "FreeSurface")
	quit := f.callIndex("Quit")

	if !(destroyTex < destroyRen && destroyRen < destroyWin) {
		t.Errorf("teardown order texture=%d renderer=%d window=%d, want texture before renderer before window",
			destroyTex, destroyRen, destroyWin)
	}
	if quit < 0 || destroyWin > quit || freeSur > quit {
		t.Errorf("Quit at %d ran before resource teardown (window=%d surface=%d)", quit, destroyWin, freeSur)
	}
}

// Each handle is released exactly once, no matter how many times and in
// what combination Dispose is called.
func TestDisposeExactlyOnce(t *testing.T) {
	ctx, f := newTestContext(t)

	win, err := ctx.CreateWindow("t", 0, 0, 320, 200, WindowHidden)
	if err != nil {
		t.Fatal(err)
	}
	ren, err := win.CreateRenderer(-1, RendererSoftware)
	if err != nil {
		t.Fatal(err)
	}

	ren.Dispose()
	ren.Dispose()
	win.Dispose() // must not re-dispose the already disposed renderer
	win.Dispose()
	ctx.Dispose()

	for h, n := range f.destroyed {
		if n != 1 {
			t.Errorf("handle %#x destroyed %d times, want 1", h, n)
		}
	}
}

// Disposing a child then its parent, versus only the parent, ends with the
// same set of released handles.
func TestChildDisposeDetachesFromParent(t *testing.T) {
	ctx, f := newTestContext(t)

	win, err := ctx.CreateWindow("t", 0, 0, 64, 64, WindowHidden)
	if err != nil {
		t.Fatal(err)
	}
	win.Dispose()
	ctx.Dispose()

	if n := f.destroyed[0x1001]; n != 1 {
		t.Errorf("window handle destroyed %d times, want 1", n)
	}
}

// Siblings are torn down newest first, mirroring scope exit order.
func TestSiblingsDisposedNewestFirst(t *testing.T) {
	ctx, f := newTestContext(t)

	first, err := ctx.CreateWindow("a", 0, 0, 1, 1, WindowHidden)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ctx.CreateWindow("b", 0, 0, 1, 1, WindowHidden)
	if err != nil {
		t.Fatal(err)
	}

	ctx.Dispose()

	firstAt := f.callIndex(fmt.Sprintf("DestroyWindow %#x", 0x1001))
	secondAt := f.callIndex(fmt.Sprintf("DestroyWindow %#x", 0x1002))
	if firstAt < 0 || secondAt < 0 || secondAt > firstAt {
		t.Errorf("destroy order: first window at %d, second at %d, want second first", firstAt, secondAt)
	}
	_ = first
	_ = second
}

// indexOfPrefix returns the index of the first log entry starting with
// prefix, failing the test when none exists.
func indexOfPrefix(t *testing.T, f *fakeNative, prefix string) int {
	t.Helper()
	for i, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	t.Fatalf("no %q call in native log %v", prefix, f.calls)
	return -1
}
