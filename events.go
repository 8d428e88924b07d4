package basalt

import "unsafe"

// Event is one decoded native event. The concrete type is one of the
// *Event structs in this file. Events the native layer defines but this
// package does not model decode to [UnknownEvent]; they are never dropped
// and never an error.
type Event interface {
	isEvent()
}

// Native event discriminants. The native side may define values outside
// this set; those decode to UnknownEvent.
const (
	eventQuit = 0x100

	eventWindow = 0x200

	eventKeyDown   = 0x300
	eventKeyUp     = 0x301
	eventTextInput = 0x303

	eventMouseMotion     = 0x400
	eventMouseButtonDown = 0x401
	eventMouseButtonUp   = 0x402
	eventMouseWheel      = 0x403

	eventControllerAxisMotion    = 0x650
	eventControllerButtonDown    = 0x651
	eventControllerButtonUp      = 0x652
	eventControllerDeviceAdded   = 0x653
	eventControllerDeviceRemoved = 0x654
	eventControllerDeviceRemap   = 0x655
)

// QuitEvent reports a request to quit the application, such as the last
// window's close button.
type QuitEvent struct {
	Timestamp uint32
}

// WindowState identifies what changed about a window.
type WindowState uint8

const (
	WindowStateNone        WindowState = iota // unrecognized state code
	WindowStateShown                          // window became visible
	WindowStateHidden                         // window became hidden
	WindowStateExposed                        // window needs to be redrawn
	WindowStateMoved                          // window moved; data1, data2 are the new position
	WindowStateResized                        // external resize; data1, data2 are the new size
	WindowStateSizeChanged                    // any size change, including Resized
	WindowStateMinimized
	WindowStateMaximized
	WindowStateRestored
	WindowStateEnter       // pointer entered the window
	WindowStateLeave       // pointer left the window
	WindowStateFocusGained // keyboard focus gained
	WindowStateFocusLost   // keyboard focus lost
	WindowStateClose       // the window manager asked the window to close
	WindowStateTakeFocus
	WindowStateHitTest
)

// WindowStateEvent reports a state change of one window. Data1 and Data2
// carry state-specific values, such as the new size for
// [WindowStateResized].
type WindowStateEvent struct {
	Timestamp uint32
	WindowID  uint32
	State     WindowState
	Data1     int32
	Data2     int32
}

// Scancode is a physical key position code.
type Scancode int32

// Keycode is a layout-dependent virtual key code.
type Keycode int32

// KeyModifiers is a bitmask of keyboard modifier state.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint16

const (
	ModLShift KeyModifiers = 0x0001
	ModRShift KeyModifiers = 0x0002
	ModLCtrl  KeyModifiers = 0x0040
	ModRCtrl  KeyModifiers = 0x0080
	ModLAlt   KeyModifiers = 0x0100
	ModRAlt   KeyModifiers = 0x0200
	ModLGui   KeyModifiers = 0x0400
	ModRGui   KeyModifiers = 0x0800
	ModNum    KeyModifiers = 0x1000
	ModCaps   KeyModifiers = 0x2000
	ModMode   KeyModifiers = 0x4000

	ModShift = ModLShift | ModRShift
	ModCtrl  = ModLCtrl | ModRCtrl
	ModAlt   = ModLAlt | ModRAlt
	ModGui   = ModLGui | ModRGui
)

// KeyboardEvent reports a key press or release.
type KeyboardEvent struct {
	Timestamp uint32
	WindowID  uint32
	Pressed   bool
	Repeat    bool
	Scancode  Scancode
	Keycode   Keycode
	Mod       KeyModifiers
}

// TextInputEvent reports typed text, already decoded to UTF-8.
type TextInputEvent struct {
	Timestamp uint32
	WindowID  uint32
	Text      string
}

// MouseMotionEvent reports pointer movement. ButtonState is a bitmask of
// the buttons held during the motion.
type MouseMotionEvent struct {
	Timestamp   uint32
	WindowID    uint32
	MouseID     uint32
	ButtonState uint32
	X, Y        int32
	DX, DY      int32
}

// MouseButton identifies a mouse button, numbered as the native layer
// numbers them.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = 1 + iota // primary (left) mouse button
	MouseButtonMiddle                        // middle mouse button (wheel click)
	MouseButtonRight                         // secondary (right) mouse button
	MouseButtonX1                            // first extra button
	MouseButtonX2                            // second extra button
)

// MouseButtonEvent reports a button press or release. Clicks is 1 for a
// single click and 2 for a double click.
type MouseButtonEvent struct {
	Timestamp uint32
	WindowID  uint32
	MouseID   uint32
	Button    MouseButton
	Pressed   bool
	Clicks    uint8
	X, Y      int32
}

// MouseWheelEvent reports wheel scrolling. X and Y are the scroll amounts;
// Flipped is set when the platform delivers the wheel with inverted
// direction and the amounts have the opposite sign of the user's motion.
type MouseWheelEvent struct {
	Timestamp uint32
	WindowID  uint32
	MouseID   uint32
	X, Y      int32
	Flipped   bool
}

// JoystickID is an instance id for a joystick or controller that remains
// stable while the device stays connected.
type JoystickID int32

// ControllerAxisEvent reports movement of a controller axis. Value covers
// the full int16 range; sticks rest near 0 and triggers rest at 0.
type ControllerAxisEvent struct {
	Timestamp uint32
	Joystick  JoystickID
	Axis      uint8
	Value     int16
}

// ControllerButtonEvent reports a controller button press or release.
type ControllerButtonEvent struct {
	Timestamp uint32
	Joystick  JoystickID
	Button    uint8
	Pressed   bool
}

// DeviceChange says what happened to a controller device.
type DeviceChange uint8

const (
	DeviceAdded    DeviceChange = iota // Which is a fresh device index, usable with OpenController
	DeviceRemoved                      // Which is the instance id of the removed device
	DeviceRemapped                     // Which is the instance id of the remapped device
)

// ControllerDeviceEvent reports a controller being connected, disconnected,
// or remapped. The meaning of Which depends on Change.
type ControllerDeviceEvent struct {
	Timestamp uint32
	Change    DeviceChange
	Which     int32
}

// UnknownEvent carries the raw discriminant of an event this package does
// not model. The rest of the record is not interpreted.
type UnknownEvent struct {
	Timestamp uint32
	Type      uint32
}

func (QuitEvent) isEvent()             {}
func (WindowStateEvent) isEvent()      {}
func (KeyboardEvent) isEvent()         {}
func (TextInputEvent) isEvent()        {}
func (MouseMotionEvent) isEvent()      {}
func (MouseButtonEvent) isEvent()      {}
func (MouseWheelEvent) isEvent()       {}
func (ControllerAxisEvent) isEvent()   {}
func (ControllerButtonEvent) isEvent() {}
func (ControllerDeviceEvent) isEvent() {}
func (UnknownEvent) isEvent()          {}

// rawEvent is the fixed-size native event record: a tagged union whose
// leading uint32 selects which payload layout the remaining bytes hold.
// Reading payload fields for the wrong discriminant is undefined, so decode
// dispatches on the discriminant before touching anything else.
type rawEvent struct {
	data [56]byte
}

func (e *rawEvent) typeCode() uint32 {
	return *(*uint32)(unsafe.Pointer(&e.data[0]))
}

func (e *rawEvent) timestamp() uint32 {
	return *(*uint32)(unsafe.Pointer(&e.data[4]))
}

// Payload layouts, mirroring the native union members field for field.
// The records live in process memory, so fields are read at native width
// and endianness by overlaying these structs.

type nativeWindowEvent struct {
	typ       uint32
	timestamp uint32
	windowID  uint32
	event     uint8
	_         [3]uint8
	data1     int32
	data2     int32
}

type nativeKeyboardEvent struct {
	typ       uint32
	timestamp uint32
	windowID  uint32
	state     uint8
	repeat    uint8
	_         [2]uint8
	scancode  int32
	sym       int32
	mod       uint16
	_         uint16
	_         uint32
}

type nativeTextInputEvent struct {
	typ       uint32
	timestamp uint32
	windowID  uint32
	text      [32]byte
}

type nativeMouseMotionEvent struct {
	typ       uint32
	timestamp uint32
	windowID  uint32
	which     uint32
	state     uint32
	x         int32
	y         int32
	xrel      int32
	yrel      int32
}

type nativeMouseButtonEvent struct {
	typ       uint32
	timestamp uint32
	windowID  uint32
	which     uint32
	button    uint8
	state     uint8
	clicks    uint8
	_         uint8
	x         int32
	y         int32
}

type nativeMouseWheelEvent struct {
	typ       uint32
	timestamp uint32
	windowID  uint32
	which     uint32
	x         int32
	y         int32
	direction uint32
}

type nativeControllerAxisEvent struct {
	typ       uint32
	timestamp uint32
	which     int32
	axis      uint8
	_         [3]uint8
	value     int16
	_         uint16
}

type nativeControllerButtonEvent struct {
	typ       uint32
	timestamp uint32
	which     int32
	button    uint8
	state     uint8
	_         [2]uint8
}

type nativeControllerDeviceEvent struct {
	typ       uint32
	timestamp uint32
	which     int32
}

const buttonPressed = 1

// decodeEvent turns one raw record into a typed Event. Total: every
// possible record decodes to something, with UnknownEvent as the fallback
// for discriminants outside the modeled set.
func decodeEvent(e *rawEvent) Event {
	switch e.typeCode() {
	case eventQuit:
		return QuitEvent{Timestamp: e.timestamp()}

	case eventWindow:
		we := (*nativeWindowEvent)(unsafe.Pointer(e))
		state := WindowState(we.event)
		if state > WindowStateHitTest {
			state = WindowStateNone
		}
		return WindowStateEvent{
			Timestamp: we.timestamp,
			WindowID:  we.windowID,
			State:     state,
			Data1:     we.data1,
			Data2:     we.data2,
		}

	case eventKeyDown, eventKeyUp:
		ke := (*nativeKeyboardEvent)(unsafe.Pointer(e))
		return KeyboardEvent{
			Timestamp: ke.timestamp,
			WindowID:  ke.windowID,
			Pressed:   ke.state == buttonPressed,
			Repeat:    ke.repeat != 0,
			Scancode:  Scancode(ke.scancode),
			Keycode:   Keycode(ke.sym),
			Mod:       KeyModifiers(ke.mod),
		}

	case eventTextInput:
		te := (*nativeTextInputEvent)(unsafe.Pointer(e))
		n := 0
		for n < len(te.text) && te.text[n] != 0 {
			n++
		}
		return TextInputEvent{
			Timestamp: te.timestamp,
			WindowID:  te.windowID,
			Text:      string(te.text[:n]),
		}

	case eventMouseMotion:
		me := (*nativeMouseMotionEvent)(unsafe.Pointer(e))
		return MouseMotionEvent{
			Timestamp:   me.timestamp,
			WindowID:    me.windowID,
			MouseID:     me.which,
			ButtonState: me.state,
			X:           me.x,
			Y:           me.y,
			DX:          me.xrel,
			DY:          me.yrel,
		}

	case eventMouseButtonDown, eventMouseButtonUp:
		be := (*nativeMouseButtonEvent)(unsafe.Pointer(e))
		return MouseButtonEvent{
			Timestamp: be.timestamp,
			WindowID:  be.windowID,
			MouseID:   be.which,
			Button:    MouseButton(be.button),
			Pressed:   be.state == buttonPressed,
			Clicks:    be.clicks,
			X:         be.x,
			Y:         be.y,
		}

	case eventMouseWheel:
		we := (*nativeMouseWheelEvent)(unsafe.Pointer(e))
		return MouseWheelEvent{
			Timestamp: we.timestamp,
			WindowID:  we.windowID,
			MouseID:   we.which,
			X:         we.x,
			Y:         we.y,
			Flipped:   we.direction != 0,
		}

	case eventControllerAxisMotion:
		ae := (*nativeControllerAxisEvent)(unsafe.Pointer(e))
		return ControllerAxisEvent{
			Timestamp: ae.timestamp,
			Joystick:  JoystickID(ae.which),
			Axis:      ae.axis,
			Value:     ae.value,
		}

	case eventControllerButtonDown, eventControllerButtonUp:
		be := (*nativeControllerButtonEvent)(unsafe.Pointer(e))
		return ControllerButtonEvent{
			Timestamp: be.timestamp,
			Joystick:  JoystickID(be.which),
			Button:    be.button,
			Pressed:   be.state == buttonPressed,
		}

	case eventControllerDeviceAdded, eventControllerDeviceRemoved, eventControllerDeviceRemap:
		de := (*nativeControllerDeviceEvent)(unsafe.Pointer(e))
		change := DeviceAdded
		switch e.typeCode() {
		case eventControllerDeviceRemoved:
			change = DeviceRemoved
		case eventControllerDeviceRemap:
			change = DeviceRemapped
		}
		return ControllerDeviceEvent{
			Timestamp: de.timestamp,
			Change:    change,
			Which:     de.which,
		}

	default:
		return UnknownEvent{Timestamp: e.timestamp(), Type: e.typeCode()}
	}
}

// PollEvent drains one event from the native queue, or reports false when
// the queue is empty. Non-blocking. Events come back in the order the
// native layer queued them; nothing is reordered or coalesced.
//
// Must be called from the thread that called Init. After the Context is
// disposed, PollEvent reports no events.
func (c *Context) PollEvent() (Event, bool) {
	if err := c.ok(); err != nil {
		debugMisuse("PollEvent", err)
		return nil, false
	}
	var raw rawEvent
	if c.api.pollEvent(&raw) != 1 {
		return nil, false
	}
	return decodeEvent(&raw), true
}
