package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/focusnice/focusnice/internal/logger"
)

// ErrPropertyAbsent reports that a window simply does not carry the
// requested property. It is a legitimate no-value state, not a failure,
// and is never logged.
var ErrPropertyAbsent = errors.New("property not set")

// WindowGoneError reports that the target window no longer exists.
type WindowGoneError struct {
	Window xproto.Window
}

func (e *WindowGoneError) Error() string {
	return fmt.Sprintf("window 0x%x does not exist", uint32(e.Window))
}

// PropertyValue is the raw value of a window property plus the metadata
// needed to interpret it.
type PropertyValue struct {
	Data   []byte
	Items  uint32
	Type   xproto.Atom
	Format byte
}

// GetProperty requests the full value of a property on a window without
// deleting it. It returns ErrPropertyAbsent when the property is not set,
// a WindowGoneError when the window no longer exists, and a wrapped
// protocol error otherwise. Failures are logged here so callers can treat
// any error as "stop this transition".
func (c *Client) GetProperty(win xproto.Window, atom xproto.Atom) (*PropertyValue, error) {
	log := logger.WithComponent("x11")

	reply, err := xproto.GetProperty(
		c.conn,
		false,
		win,
		atom,
		xproto.GetPropertyTypeAny,
		0,
		(1<<32)-1,
	).Reply()
	if err != nil {
		if _, ok := err.(xproto.WindowError); ok {
			log.Error().Str("window", fmt.Sprintf("0x%x", uint32(win))).Msg("window does not exist")
			return nil, &WindowGoneError{Window: win}
		}
		log.Error().Err(err).Str("window", fmt.Sprintf("0x%x", uint32(win))).Msg("GetProperty failed")
		return nil, fmt.Errorf("get property on window 0x%x: %w", uint32(win), err)
	}

	if reply.Type == xproto.AtomNone && reply.ValueLen == 0 {
		return nil, ErrPropertyAbsent
	}

	return &PropertyValue{
		Data:   reply.Value,
		Items:  reply.ValueLen,
		Type:   reply.Type,
		Format: reply.Format,
	}, nil
}

// firstCard32 decodes the first 32-bit item of a property value. It
// refuses malformed data rather than misreading bytes: the format must be
// 32 and the buffer must carry at least one full item.
func firstCard32(v *PropertyValue) (uint32, bool) {
	if v == nil || v.Items == 0 || v.Format != 32 || len(v.Data) < 4 {
		return 0, false
	}
	return uint32(v.Data[0]) |
		uint32(v.Data[1])<<8 |
		uint32(v.Data[2])<<16 |
		uint32(v.Data[3])<<24, true
}
