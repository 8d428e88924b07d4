package basalt

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// api is the table of native entry points everything in this package calls
// through. Exactly one table exists per process in normal use, registered
// against the loaded SDL2 shared object. Tests install a scripted table via
// loadAPI instead, so the whole suite runs without SDL2 present.
type api struct {
	init     func(flags uint32) int32
	quit     func()
	getError func() string

	getVersion func(v *nativeVersion)

	showSimpleMessageBox func(flags uint32, title, message string, window uintptr) int32

	createWindow         func(title string, x, y, w, h int32, flags uint32) uintptr
	destroyWindow        func(window uintptr)
	getWindowSize        func(window uintptr, w, h *int32)
	setWindowSize        func(window uintptr, w, h int32)
	getWindowDisplayMode func(window uintptr, mode *nativeDisplayMode) int32
	setWindowDisplayMode func(window uintptr, mode *nativeDisplayMode) int32
	setWindowFullscreen  func(window uintptr, flags uint32) int32

	createRenderer           func(window uintptr, index int32, flags uint32) uintptr
	destroyRenderer          func(renderer uintptr)
	createTextureFromSurface func(renderer, surface uintptr) uintptr
	destroyTexture           func(texture uintptr)
	setRenderDrawColor       func(renderer uintptr, r, g, b, a uint8) int32
	renderClear              func(renderer uintptr) int32
	renderCopy               func(renderer, texture uintptr, src, dst *nativeRect) int32
	renderPresent            func(renderer uintptr)
	getRendererOutputSize    func(renderer uintptr, w, h *int32) int32
	renderReadPixels         func(renderer uintptr, rect *nativeRect, format uint32, pixels unsafe.Pointer, pitch int32) int32

	createRGBSurface     func(flags uint32, w, h, depth int32, rmask, gmask, bmask, amask uint32) uintptr
	createRGBSurfaceFrom func(pixels unsafe.Pointer, w, h, depth, pitch int32, rmask, gmask, bmask, amask uint32) uintptr
	freeSurface          func(surface uintptr)
	masksToPixelFormat   func(depth int32, rmask, gmask, bmask, amask uint32) uint32

	numJoysticks               func() int32
	isGameController           func(index int32) int32
	gameControllerNameForIndex func(index int32) string
	gameControllerOpen         func(index int32) uintptr
	gameControllerName         func(controller uintptr) string
	gameControllerClose        func(controller uintptr)

	loadObject   func(name string) uintptr
	loadFunction func(handle uintptr, name string) uintptr
	unloadObject func(handle uintptr)

	openAudioDevice    func(device uintptr, isCapture int32, desired, obtained *nativeAudioSpec, allowedChanges int32) uint32
	closeAudioDevice   func(device uint32)
	pauseAudioDevice   func(device uint32, pause int32)
	queueAudio         func(device uint32, data unsafe.Pointer, length uint32) int32
	getQueuedAudioSize func(device uint32) uint32
	clearQueuedAudio   func(device uint32)

	pollEvent func(ev *rawEvent) int32
}

// nativeVersion mirrors SDL_version.
type nativeVersion struct {
	major uint8
	minor uint8
	patch uint8
}

// nativeRect mirrors SDL_Rect.
type nativeRect struct {
	x, y, w, h int32
}

// nativeDisplayMode mirrors SDL_DisplayMode. driverData mirrors a C void
// pointer and must be passed back to the native side untouched.
type nativeDisplayMode struct {
	format      uint32
	w           int32
	h           int32
	refreshRate int32
	driverData  uintptr
}

// nativeAudioSpec mirrors SDL_AudioSpec. The callback and userdata fields
// stay zero: this package only drives devices in queue mode.
type nativeAudioSpec struct {
	freq     int32
	format   uint16
	channels uint8
	silence  uint8
	samples  uint16
	_        uint16
	size     uint32
	callback uintptr
	userdata uintptr
}

// loadAPI resolves the native function table. It is a variable so tests can
// substitute a scripted in-memory implementation.
var loadAPI = loadNativeAPI

var (
	nativeOnce  sync.Once
	nativeTable *api
	nativeErr   error
)

// loadNativeAPI opens the SDL2 shared object and registers every entry
// point. The result is memoized: the library is opened at most once per
// process and never unloaded.
func loadNativeAPI() (*api, error) {
	nativeOnce.Do(func() {
		handle, path, err := openNativeLibrary()
		if err != nil {
			nativeErr = err
			return
		}
		Logger().Info("basalt: native library loaded", "path", path)
		nativeTable = registerAPI(handle)
	})
	return nativeTable, nativeErr
}

var libraryPathMu sync.Mutex
var libraryPath string

// SetLibraryPath overrides the list of shared object names probed for the
// native library. It only has an effect before the first call to Init,
// Version, or MessageBox, whichever loads the library first.
func SetLibraryPath(path string) {
	libraryPathMu.Lock()
	libraryPath = path
	libraryPathMu.Unlock()
}

func overrideLibraryPath() string {
	libraryPathMu.Lock()
	defer libraryPathMu.Unlock()
	return libraryPath
}

// openNativeLibrary tries each candidate shared object name in order and
// returns the handle plus the name that resolved.
func openNativeLibrary() (uintptr, string, error) {
	candidates := libraryCandidates()
	if p := overrideLibraryPath(); p != "" {
		candidates = []string{p}
	}
	var errs []error
	for _, name := range candidates {
		handle, err := openLibrary(name)
		if err == nil {
			return handle, name, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
	}
	return 0, "", fmt.Errorf("basalt: cannot load SDL2: %w", errors.Join(errs...))
}

// registerAPI binds every SDL entry point used by this package into a fresh
// function table.
func registerAPI(lib uintptr) *api {
	a := &api{}
	for _, reg := range []struct {
		fptr any
		name string
	}{
		{&a.init, "SDL_Init"},
		{&a.quit, "SDL_Quit"},
		{&a.getError, "SDL_GetError"},
		{&a.getVersion, "SDL_GetVersion"},
		{&a.showSimpleMessageBox, "SDL_ShowSimpleMessageBox"},
		{&a.createWindow, "SDL_CreateWindow"},
		{&a.destroyWindow, "SDL_DestroyWindow"},
		{&a.getWindowSize, "SDL_GetWindowSize"},
		{&a.setWindowSize, "SDL_SetWindowSize"},
		{&a.getWindowDisplayMode, "SDL_GetWindowDisplayMode"},
		{&a.setWindowDisplayMode, "SDL_SetWindowDisplayMode"},
		{&a.setWindowFullscreen, "SDL_SetWindowFullscreen"},
		{&a.createRenderer, "SDL_CreateRenderer"},
		{&a.destroyRenderer, "SDL_DestroyRenderer"},
		{&a.createTextureFromSurface, "SDL_CreateTextureFromSurface"},
		{&a.destroyTexture, "SDL_DestroyTexture"},
		{&a.setRenderDrawColor, "SDL_SetRenderDrawColor"},
		{&a.renderClear, "SDL_RenderClear"},
		{&a.renderCopy, "SDL_RenderCopy"},
		{&a.renderPresent, "SDL_RenderPresent"},
		{&a.getRendererOutputSize, "SDL_GetRendererOutputSize"},
		{&a.renderReadPixels, "SDL_RenderReadPixels"},
		{&a.createRGBSurface, "SDL_CreateRGBSurface"},
		{&a.createRGBSurfaceFrom, "SDL_CreateRGBSurfaceFrom"},
		{&a.freeSurface, "SDL_FreeSurface"},
		{&a.masksToPixelFormat, "SDL_MasksToPixelFormatEnum"},
		{&a.numJoysticks, "SDL_NumJoysticks"},
		{&a.isGameController, "SDL_IsGameController"},
		{&a.gameControllerNameForIndex, "SDL_GameControllerNameForIndex"},
		{&a.gameControllerOpen, "SDL_GameControllerOpen"},
		{&a.gameControllerName, "SDL_GameControllerName"},
		{&a.gameControllerClose, "SDL_GameControllerClose"},
		{&a.loadObject, "SDL_LoadObject"},
		{&a.loadFunction, "SDL_LoadFunction"},
		{&a.unloadObject, "SDL_UnloadObject"},
		{&a.openAudioDevice, "SDL_OpenAudioDevice"},
		{&a.closeAudioDevice, "SDL_CloseAudioDevice"},
		{&a.pauseAudioDevice, "SDL_PauseAudioDevice"},
		{&a.queueAudio, "SDL_QueueAudio"},
		{&a.getQueuedAudioSize, "SDL_GetQueuedAudioSize"},
		{&a.clearQueuedAudio, "SDL_ClearQueuedAudio"},
		{&a.pollEvent, "SDL_PollEvent"},
	} {
		purego.RegisterLibFunc(reg.fptr, lib, reg.name)
	}
	return a
}
