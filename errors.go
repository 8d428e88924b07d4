package basalt

import "errors"

// Sentinel errors for conditions the library detects itself, without help
// from the native layer. Compare with [errors.Is].
var (
	// ErrAlreadyInitialized is returned by Init when a Context from an
	// earlier Init call is still live.
	ErrAlreadyInitialized = errors.New("basalt: already initialized")

	// ErrDisposed is returned by any operation on a resource whose owner
	// (or any ancestor, up to the Context) has already been disposed.
	ErrDisposed = errors.New("basalt: use of disposed resource")

	// ErrForeignTexture is returned by Renderer.Copy when the texture was
	// created by a different Renderer.
	ErrForeignTexture = errors.New("basalt: texture belongs to a different renderer")
)

// NativeError reports a failed native call. Message is the library's
// "last error" string, captured immediately after the failing call
// (a later native call may overwrite it on the native side).
type NativeError struct {
	// Op is the wrapper operation that failed, e.g. "CreateWindow".
	Op string
	// Message is the diagnostic text reported by the native library.
	// May be empty if the native side provided none.
	Message string
}

func (e *NativeError) Error() string {
	if e.Message == "" {
		return "basalt: " + e.Op + " failed"
	}
	return "basalt: " + e.Op + ": " + e.Message
}

// lastError captures the native error string for a failed call. Must be
// called before any other native call is made on this api.
func lastError(a *api, op string) error {
	return &NativeError{Op: op, Message: a.getError()}
}
