package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/focusnice/focusnice/internal/logger"
)

// Watch subscribes to property changes on the root window and blocks,
// invoking onChange for every new value written to _NET_ACTIVE_WINDOW.
// All other events are ignored. It runs on the calling goroutine and
// returns only when the connection dies.
func (c *Client) Watch(onChange func()) error {
	log := logger.WithComponent("x11")

	if err := xproto.ChangeWindowAttributesChecked(
		c.conn,
		c.root,
		xproto.CwEventMask,
		[]uint32{xproto.EventMaskPropertyChange},
	).Check(); err != nil {
		return fmt.Errorf("failed to set event mask: %w", err)
	}

	for {
		ev, xerr := c.conn.WaitForEvent()
		if ev == nil && xerr == nil {
			return fmt.Errorf("connection to X server lost")
		}
		if xerr != nil {
			log.Error().Str("error", xerr.Error()).Msg("X error event")
			continue
		}
		if focusChanged(ev, c.atomActiveWindow) {
			onChange()
		}
	}
}

// focusChanged reports whether ev is a new-value change to the active
// window property. Deletions and changes to other properties on the root
// window do not qualify.
func focusChanged(ev xgb.Event, activeWindowAtom xproto.Atom) bool {
	prop, ok := ev.(xproto.PropertyNotifyEvent)
	if !ok {
		return false
	}
	return prop.State == xproto.PropertyNewValue && prop.Atom == activeWindowAtom
}
