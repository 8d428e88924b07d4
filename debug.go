package basalt

// Debug enables warning logs when the library detects API misuse: an
// operation on a disposed resource, or a texture used with a renderer that
// did not create it. The misbehaving call still returns its usual error;
// Debug only adds visibility.
var Debug bool

// debugMisuse logs a detected misuse. Call sites pass the operation name
// as it appears in the public API.
func debugMisuse(op string, err error) {
	if !Debug {
		return
	}
	Logger().Warn("basalt: misuse detected", "op", op, "err", err)
}
