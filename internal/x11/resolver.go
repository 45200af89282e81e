package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/focusnice/focusnice/internal/logger"
)

// ActiveWindow reads _NET_ACTIVE_WINDOW on the root window and returns the
// focused window's id. The second return is false when no window is
// focused: silently when the property is absent (nothing has ever been
// focused), with a log line when the property exists but carries no value.
func (c *Client) ActiveWindow() (uint32, bool) {
	val, err := c.GetProperty(c.root, c.atomActiveWindow)
	if err != nil {
		// Absent is the first-run case; other failures were already
		// logged by GetProperty. Either way, no focused window.
		return 0, false
	}

	win, ok := firstCard32(val)
	if !ok {
		logger.WithComponent("x11").Error().Msg("could not get active window")
		return 0, false
	}
	if win == 0 {
		// The window manager parks the property on None when nothing
		// holds focus.
		return 0, false
	}
	return win, true
}

// WindowPID reads _NET_WM_PID on win and returns the owning process id, or
// 0 when the window does not advertise one. The property is set
// cooperatively by clients, so 0 is an everyday outcome, not a failure.
func (c *Client) WindowPID(win uint32) int {
	val, err := c.GetProperty(xproto.Window(win), c.atomWMPid)
	if err != nil {
		// Absent means the client never set the property; anything
		// else was logged by GetProperty.
		return 0
	}

	pid, ok := firstCard32(val)
	if !ok {
		logger.WithComponent("x11").Error().
			Str("window", fmt.Sprintf("0x%x", win)).
			Msg("could not get PID of window owner")
		return 0
	}
	return int(pid)
}
