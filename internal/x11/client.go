// Package x11 talks to the X server: it reads window properties, resolves
// the focused window and its owning process, and watches the root window
// for focus changes.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Client is a connection to the X server scoped to one screen's root
// window. The two atoms it needs are interned once at dial time; atom
// interning is a server round trip and the atoms never change for the
// lifetime of the process.
type Client struct {
	conn *xgb.Conn
	root xproto.Window

	atomActiveWindow xproto.Atom
	atomWMPid        xproto.Atom
}

// Dial connects to the default display and interns the atoms the client
// uses. A failure here is fatal to the caller; there is nothing useful the
// daemon can do without a display.
func Dial() (*Client, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}

	setup := xproto.Setup(conn)
	root := setup.DefaultScreen(conn).Root

	c := &Client{
		conn: conn,
		root: root,
	}

	atoms := []struct {
		name string
		dst  *xproto.Atom
	}{
		{"_NET_ACTIVE_WINDOW", &c.atomActiveWindow},
		{"_NET_WM_PID", &c.atomWMPid},
	}
	for _, a := range atoms {
		reply, err := xproto.InternAtom(conn, false, uint16(len(a.name)), a.name).Reply()
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to intern atom %s: %w", a.name, err)
		}
		*a.dst = reply.Atom
	}

	return c, nil
}

// Close closes the X connection.
func (c *Client) Close() {
	c.conn.Close()
}

// Root returns the root window of the default screen.
func (c *Client) Root() uint32 {
	return uint32(c.root)
}
