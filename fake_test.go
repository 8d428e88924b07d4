package basalt

import (
	"fmt"
	"testing"
	"unsafe"
)

// fakeNative is an in-memory stand-in for the SDL2 shared library. It hands
// out fake handles, keeps an ordered log of the calls it receives, and can
// be scripted to fail specific entry points or to feed specific events, so
// tests run without SDL2 installed and without a display.
type fakeNative struct {
	calls      []string          // ordered log, one entry per native call that matters to a test
	failures   map[string]string // entry point name -> error message to fail with
	lastErr    string
	nextHandle uintptr
	destroyed  map[uintptr]int // fake handle -> times destroyed (must end at 1)

	windowW, windowH map[uintptr]int32
	outputW, outputH int32
	displayMode      nativeDisplayMode

	formatForMasks func(depth int32, rmask, gmask, bmask, amask uint32) uint32

	joysticks       int32
	controllerNames map[int32]string

	symbols map[string]uintptr // symbol name -> fake address for loadFunction

	// Audio: the "hardware" values substituted on dimensions the open call
	// permits to change. Zero fields mean "no substitution".
	hwFreq     int32
	hwFormat   uint16
	hwChannels uint8
	paused     map[uint32]bool
	queued     map[uint32]uint32

	events []rawEvent // scripted queue, drained FIFO by pollEvent
}

func newFakeNative() *fakeNative {
	return &fakeNative{
		failures:        map[string]string{},
		nextHandle:      0x1000,
		destroyed:       map[uintptr]int{},
		windowW:         map[uintptr]int32{},
		windowH:         map[uintptr]int32{},
		outputW:         800,
		outputH:         600,
		joysticks:       0,
		controllerNames: map[int32]string{},
		symbols:         map[string]uintptr{},
		paused:          map[uint32]bool{},
		queued:          map[uint32]uint32{},
	}
}

func (f *fakeNative) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// fail arranges for the next call to the named entry point to fail with
// the given native error message.
func (f *fakeNative) fail(entry, message string) {
	f.failures[entry] = message
}

func (f *fakeNative) failing(entry string) bool {
	msg, ok := f.failures[entry]
	if ok {
		delete(f.failures, entry)
		f.lastErr = msg
	}
	return ok
}

func (f *fakeNative) handleOut() uintptr {
	f.nextHandle++
	return f.nextHandle
}

func (f *fakeNative) destroy(kind string, h uintptr) {
	f.destroyed[h]++
	f.record("%s %#x", kind, h)
}

// callIndex returns the position of the first log entry equal to s, or -1.
func (f *fakeNative) callIndex(s string) int {
	for i, c := range f.calls {
		if c == s {
			return i
		}
	}
	return -1
}

// pushEvent appends a raw record with the given discriminant and payload
// bytes to the scripted queue.
func (f *fakeNative) pushEvent(typeCode uint32, payload []byte) {
	var raw rawEvent
	*(*uint32)(unsafe.Pointer(&raw.data[0])) = typeCode
	copy(raw.data[8:], payload)
	f.events = append(f.events, raw)
}

// pushRaw appends a fully formed record to the scripted queue.
func (f *fakeNative) pushRaw(raw rawEvent) {
	f.events = append(f.events, raw)
}

// api builds the scripted function table tests install through loadAPI.
func (f *fakeNative) api() *api {
	return &api{
		init: func(flags uint32) int32 {
			f.record("Init %#x", flags)
			if f.failing("SDL_Init") {
				return -1
			}
			return 0
		},
		quit: func() {
			f.record("Quit")
		},
		getError: func() string {
			return f.lastErr
		},
		getVersion: func(v *nativeVersion) {
			v.major, v.minor, v.patch = 2, 30, 0
		},
		showSimpleMessageBox: func(flags uint32, title, message string, window uintptr) int32 {
			f.record("MessageBox %#x %q", flags, title)
			if f.failing("SDL_ShowSimpleMessageBox") {
				return -1
			}
			return 0
		},

		createWindow: func(title string, x, y, w, h int32, flags uint32) uintptr {
			if f.failing("SDL_CreateWindow") {
				return 0
			}
			handle := f.handleOut()
			f.windowW[handle], f.windowH[handle] = w, h
			f.record("CreateWindow %#x", handle)
			return handle
		},
		destroyWindow: func(window uintptr) { f.destroy("DestroyWindow", window) },
		getWindowSize: func(window uintptr, w, h *int32) {
			*w, *h = f.windowW[window], f.windowH[window]
		},
		setWindowSize: func(window uintptr, w, h int32) {
			f.windowW[window], f.windowH[window] = w, h
		},
		getWindowDisplayMode: func(window uintptr, mode *nativeDisplayMode) int32 {
			if f.failing("SDL_GetWindowDisplayMode") {
				return -1
			}
			*mode = f.displayMode
			return 0
		},
		setWindowDisplayMode: func(window uintptr, mode *nativeDisplayMode) int32 {
			if f.failing("SDL_SetWindowDisplayMode") {
				return -1
			}
			if mode != nil {
				f.displayMode = *mode
			}
			return 0
		},
		setWindowFullscreen: func(window uintptr, flags uint32) int32 {
			f.record("SetWindowFullscreen %#x", flags)
			if f.failing("SDL_SetWindowFullscreen") {
				return -1
			}
			return 0
		},

		createRenderer: func(window uintptr, index int32, flags uint32) uintptr {
			if f.failing("SDL_CreateRenderer") {
				return 0
			}
			handle := f.handleOut()
			f.record("CreateRenderer %#x", handle)
			return handle
		},
		destroyRenderer: func(renderer uintptr) { f.destroy("DestroyRenderer", renderer) },
		createTextureFromSurface: func(renderer, surface uintptr) uintptr {
			if f.failing("SDL_CreateTextureFromSurface") {
				return 0
			}
			handle := f.handleOut()
			f.record("CreateTexture %#x", handle)
			return handle
		},
		destroyTexture: func(texture uintptr) { f.destroy("DestroyTexture", texture) },
		setRenderDrawColor: func(renderer uintptr, r, g, b, a uint8) int32 {
			if f.failing("SDL_SetRenderDrawColor") {
				return -1
			}
			return 0
		},
		renderClear: func(renderer uintptr) int32 {
			f.record("RenderClear")
			if f.failing("SDL_RenderClear") {
				return -1
			}
			return 0
		},
		renderCopy: func(renderer, texture uintptr, src, dst *nativeRect) int32 {
			f.record("RenderCopy %#x src=%v dst=%v", texture, src != nil, dst != nil)
			if f.failing("SDL_RenderCopy") {
				return -1
			}
			return 0
		},
		renderPresent: func(renderer uintptr) {
			f.record("RenderPresent")
		},
		getRendererOutputSize: func(renderer uintptr, w, h *int32) int32 {
			if f.failing("SDL_GetRendererOutputSize") {
				return -1
			}
			*w, *h = f.outputW, f.outputH
			return 0
		},
		renderReadPixels: func(renderer uintptr, rect *nativeRect, format uint32, pixels unsafe.Pointer, pitch int32) int32 {
			if f.failing("SDL_RenderReadPixels") {
				return -1
			}
			return 0
		},

		createRGBSurface: func(flags uint32, w, h, depth int32, rmask, gmask, bmask, amask uint32) uintptr {
			if f.failing("SDL_CreateRGBSurface") {
				return 0
			}
			handle := f.handleOut()
			f.record("CreateSurface %#x", handle)
			return handle
		},
		createRGBSurfaceFrom: func(pixels unsafe.Pointer, w, h, depth, pitch int32, rmask, gmask, bmask, amask uint32) uintptr {
			if f.failing("SDL_CreateRGBSurfaceFrom") {
				return 0
			}
			handle := f.handleOut()
			f.record("CreateSurfaceFrom %#x", handle)
			return handle
		},
		freeSurface: func(surface uintptr) { f.destroy("FreeSurface", surface) },
		masksToPixelFormat: func(depth int32, rmask, gmask, bmask, amask uint32) uint32 {
			if f.formatForMasks != nil {
				return f.formatForMasks(depth, rmask, gmask, bmask, amask)
			}
			// The common cases the tests exercise; everything else is unknown,
			// matching how the native call treats unrecognized masks.
			switch {
			case depth == 8 && rmask == 0:
				return uint32(PixelFormatIndex8)
			case depth == 4 && rmask == 0:
				return uint32(PixelFormatIndex4MSB)
			case depth == 32 && rmask == 0x000000FF && amask == 0xFF000000:
				return uint32(PixelFormatABGR8888)
			case depth == 32 && rmask == 0xFF000000 && amask == 0x000000FF:
				return uint32(PixelFormatRGBA8888)
			}
			return uint32(PixelFormatUnknown)
		},

		numJoysticks: func() int32 {
			if f.failing("SDL_NumJoysticks") {
				return -1
			}
			return f.joysticks
		},
		isGameController: func(index int32) int32 {
			if _, ok := f.controllerNames[index]; ok {
				return 1
			}
			return 0
		},
		gameControllerNameForIndex: func(index int32) string {
			return f.controllerNames[index]
		},
		gameControllerOpen: func(index int32) uintptr {
			if f.failing("SDL_GameControllerOpen") {
				return 0
			}
			if _, ok := f.controllerNames[index]; !ok {
				f.lastErr = "joystick index out of range"
				return 0
			}
			handle := f.handleOut()
			f.record("ControllerOpen %#x", handle)
			return handle
		},
		gameControllerName: func(controller uintptr) string {
			return "Fake Gamepad"
		},
		gameControllerClose: func(controller uintptr) { f.destroy("ControllerClose", controller) },

		loadObject: func(name string) uintptr {
			if f.failing("SDL_LoadObject") {
				return 0
			}
			handle := f.handleOut()
			f.record("LoadObject %q %#x", name, handle)
			return handle
		},
		loadFunction: func(handle uintptr, name string) uintptr {
			addr, ok := f.symbols[name]
			if !ok {
				f.lastErr = "symbol not found: " + name
				return 0
			}
			return addr
		},
		unloadObject: func(handle uintptr) { f.destroy("UnloadObject", handle) },

		openAudioDevice: func(device uintptr, isCapture int32, desired, obtained *nativeAudioSpec, allowedChanges int32) uint32 {
			if f.failing("SDL_OpenAudioDevice") {
				return 0
			}
			*obtained = *desired
			if allowedChanges&allowFrequencyChange != 0 && f.hwFreq != 0 {
				obtained.freq = f.hwFreq
			}
			if allowedChanges&allowFormatChange != 0 && f.hwFormat != 0 {
				obtained.format = f.hwFormat
			}
			if allowedChanges&allowChannelsChange != 0 && f.hwChannels != 0 {
				obtained.channels = f.hwChannels
			}
			if AudioFormat(obtained.format) == AudioU8 {
				obtained.silence = 0x80
			}
			obtained.size = uint32(obtained.samples) *
				uint32(obtained.channels) *
				uint32(AudioFormat(obtained.format).BitSize()/8)
			id := uint32(f.handleOut())
			f.paused[id] = true
			f.record("OpenAudioDevice %#x", id)
			return id
		},
		closeAudioDevice: func(device uint32) {
			f.destroy("CloseAudioDevice", uintptr(device))
		},
		pauseAudioDevice: func(device uint32, pause int32) {
			f.paused[device] = pause != 0
			f.record("PauseAudioDevice %d %d", device, pause)
		},
		queueAudio: func(device uint32, data unsafe.Pointer, length uint32) int32 {
			if f.failing("SDL_QueueAudio") {
				return -1
			}
			f.queued[device] += length
			return 0
		},
		getQueuedAudioSize: func(device uint32) uint32 {
			return f.queued[device]
		},
		clearQueuedAudio: func(device uint32) {
			f.queued[device] = 0
		},

		pollEvent: func(ev *rawEvent) int32 {
			if len(f.events) == 0 {
				return 0
			}
			*ev = f.events[0]
			f.events = f.events[1:]
			return 1
		},
	}
}

// install routes the package's native loading through the fake for the
// duration of the test.
func (f *fakeNative) install(t *testing.T) {
	t.Helper()
	restore := loadAPI
	loadAPI = func() (*api, error) { return f.api(), nil }
	t.Cleanup(func() { loadAPI = restore })
}

// newTestContext installs a fresh fake and returns an initialized Context
// that is disposed automatically at the end of the test.
func newTestContext(t *testing.T) (*Context, *fakeNative) {
	t.Helper()
	f := newFakeNative()
	f.install(t)
	ctx, err := Init()
	if err != nil {
		t.Fatalf("Init() = %v", err)
	}
	t.Cleanup(ctx.Dispose)
	return ctx, f
}
