package canvas

import (
	"testing"

	"mfd-charts/internal/chartview"

	"fyne.io/fyne/v2"
)

func TestKeyToEvent(t *testing.T) {
	cases := map[fyne.KeyName]string{
		fyne.KeyUp:       chartview.EventPanUp,
		fyne.KeyDown:     chartview.EventPanDown,
		fyne.KeyLeft:     chartview.EventPanLeft,
		fyne.KeyRight:    chartview.EventPanRight,
		fyne.KeyPageUp:   chartview.EventZoomInc,
		fyne.KeyPageDown: chartview.EventZoomDec,
	}
	for key, want := range cases {
		got, ok := KeyToEvent(key)
		if !ok || got != want {
			t.Errorf("KeyToEvent(%s) = %q, %v; want %q", key, got, ok, want)
		}
	}
	if _, ok := KeyToEvent(fyne.KeySpace); ok {
		t.Error("space should not map to an event")
	}
}

func TestRuneToEvent(t *testing.T) {
	for _, r := range []rune{'+', '='} {
		if got, ok := RuneToEvent(r); !ok || got != chartview.EventZoomInc {
			t.Errorf("RuneToEvent(%q) = %q, %v", r, got, ok)
		}
	}
	if got, ok := RuneToEvent('-'); !ok || got != chartview.EventZoomDec {
		t.Errorf("RuneToEvent('-') = %q, %v", got, ok)
	}
	if _, ok := RuneToEvent('x'); ok {
		t.Error("'x' should not map to an event")
	}
}

func TestDragEvents(t *testing.T) {
	names, remX, remY := DragEvents(95, -10, 40)
	if len(names) != 2 || names[0] != chartview.EventPanLeft || names[1] != chartview.EventPanLeft {
		t.Errorf("names = %v, want two left pans", names)
	}
	if remX != 15 || remY != -10 {
		t.Errorf("remainder = (%v, %v), want (15, -10)", remX, remY)
	}

	names, _, remY = DragEvents(0, -45, 40)
	if len(names) != 1 || names[0] != chartview.EventPanDown {
		t.Errorf("names = %v, want one down pan", names)
	}
	if remY != -5 {
		t.Errorf("remY = %v, want -5", remY)
	}

	names, _, _ = DragEvents(-40, 40, 40)
	if len(names) != 2 || names[0] != chartview.EventPanRight || names[1] != chartview.EventPanUp {
		t.Errorf("names = %v, want right then up", names)
	}
}

func TestDragEventsZeroStep(t *testing.T) {
	names, remX, remY := DragEvents(100, 100, 0)
	if names != nil || remX != 0 || remY != 0 {
		t.Errorf("zero step produced %v (%v, %v)", names, remX, remY)
	}
}
