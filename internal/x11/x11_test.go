package x11

import (
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

const activeWindowAtom = xproto.Atom(321)

func TestFocusChanged(t *testing.T) {
	tests := []struct {
		name string
		ev   xgb.Event
		want bool
	}{
		{
			"new value on the tracked atom",
			xproto.PropertyNotifyEvent{Atom: activeWindowAtom, State: xproto.PropertyNewValue},
			true,
		},
		{
			"deletion of the tracked atom",
			xproto.PropertyNotifyEvent{Atom: activeWindowAtom, State: xproto.PropertyDelete},
			false,
		},
		{
			"new value on another atom",
			xproto.PropertyNotifyEvent{Atom: activeWindowAtom + 1, State: xproto.PropertyNewValue},
			false,
		},
		{
			"unrelated event type",
			xproto.ExposeEvent{},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := focusChanged(tt.ev, activeWindowAtom); got != tt.want {
				t.Errorf("focusChanged() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFirstCard32(t *testing.T) {
	tests := []struct {
		name   string
		val    *PropertyValue
		want   uint32
		wantOK bool
	}{
		{"nil value", nil, 0, false},
		{"zero items", &PropertyValue{Format: 32}, 0, false},
		{
			"short buffer",
			&PropertyValue{Data: []byte{1, 2}, Items: 1, Format: 32},
			0, false,
		},
		{
			"wrong format",
			&PropertyValue{Data: []byte{1, 2, 3, 4}, Items: 4, Format: 8},
			0, false,
		},
		{
			"little endian decode",
			&PropertyValue{Data: []byte{0x78, 0x56, 0x34, 0x12}, Items: 1, Format: 32},
			0x12345678, true,
		},
		{
			"only first item read",
			&PropertyValue{Data: []byte{0x2a, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}, Items: 2, Format: 32},
			42, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := firstCard32(tt.val)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("firstCard32() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
