//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package basalt

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// libraryCandidates returns the shared object names probed for SDL2, most
// specific first.
func libraryCandidates() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"libSDL2-2.0.0.dylib",
			"libSDL2.dylib",
			"/opt/homebrew/lib/libSDL2.dylib",
			"/usr/local/lib/libSDL2.dylib",
		}
	default:
		return []string{
			"libSDL2-2.0.so.0",
			"libSDL2.so",
		}
	}
}

func openLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}
