package basalt

// NumJoysticks reports how many joysticks the native layer currently sees.
// Device indexes below this count can be probed with
// [Context.JoystickIsGameController] and opened with
// [Context.OpenController].
func (c *Context) NumJoysticks() (int, error) {
	if err := c.ok(); err != nil {
		debugMisuse("NumJoysticks", err)
		return 0, err
	}
	n := c.api.numJoysticks()
	if n < 0 {
		return 0, lastError(c.api, "NumJoysticks")
	}
	return int(n), nil
}

// JoystickIsGameController reports whether the joystick at the given device
// index has a game controller mapping and can be opened with
// [Context.OpenController].
func (c *Context) JoystickIsGameController(index int) bool {
	if err := c.ok(); err != nil {
		debugMisuse("JoystickIsGameController", err)
		return false
	}
	return c.api.isGameController(int32(index)) == 1
}

// ControllerNameForIndex returns the implementation-dependent name of the
// controller at the given device index, without opening it.
func (c *Context) ControllerNameForIndex(index int) (string, error) {
	if err := c.ok(); err != nil {
		debugMisuse("ControllerNameForIndex", err)
		return "", err
	}
	name := c.api.gameControllerNameForIndex(int32(index))
	if name == "" {
		return "", lastError(c.api, "ControllerNameForIndex")
	}
	return name, nil
}

// Controller owns one opened native game controller. While open, the
// controller's buttons and axes arrive through [Context.PollEvent] as
// controller events.
type Controller struct {
	ctx       *Context
	h         uintptr
	destroyed bool
}

// OpenController opens the game controller at the given device index. The
// index is only valid until the device set changes; the events for an open
// controller carry its stable [JoystickID] instead.
func (c *Context) OpenController(index int) (*Controller, error) {
	if err := c.ok(); err != nil {
		debugMisuse("OpenController", err)
		return nil, err
	}
	handle := c.api.gameControllerOpen(int32(index))
	if handle == 0 {
		return nil, lastError(c.api, "OpenController")
	}
	ctl := &Controller{ctx: c, h: handle}
	c.children.adopt(ctl)
	Logger().Debug("basalt: controller opened", "index", index)
	return ctl, nil
}

// Name returns the implementation-dependent name of the opened controller,
// or "" if the controller has been disposed.
func (ctl *Controller) Name() string {
	if err := ctl.ok(); err != nil {
		debugMisuse("Controller.Name", err)
		return ""
	}
	return ctl.ctx.api.gameControllerName(ctl.h)
}

// Dispose closes the controller. Idempotent.
func (ctl *Controller) Dispose() {
	if ctl == nil || ctl.destroyed {
		return
	}
	ctl.ctx.children.orphan(ctl)
	ctl.dispose()
}

func (ctl *Controller) dispose() {
	ctl.destroyed = true
	ctl.ctx.api.gameControllerClose(ctl.h)
	ctl.h = 0
	Logger().Debug("basalt: controller disposed")
}

func (ctl *Controller) ok() error {
	if ctl == nil || ctl.destroyed {
		return ErrDisposed
	}
	return ctl.ctx.ok()
}
