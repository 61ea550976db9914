package chartview

// Discrete events understood by the chart view.
const (
	EventZoomInc  = "Lwr_Push_ZOOM_INC"
	EventZoomDec  = "Lwr_Push_ZOOM_DEC"
	EventPanUp    = "Lwr_JOYSTICK_UP"
	EventPanDown  = "Lwr_JOYSTICK_DOWN"
	EventPanLeft  = "Lwr_JOYSTICK_LEFT"
	EventPanRight = "Lwr_JOYSTICK_RIGHT"
)

// HandleEvent applies a named event to st and reports whether it was
// recognized. Recognized events mark the state dirty; unknown events
// clear the dirty flag.
func HandleEvent(st *State, event string) bool {
	st.Dirty = true
	step := st.cfg.PanStep
	switch event {
	case EventZoomInc, EventZoomDec:
		st.toggleZoom()
	case EventPanUp:
		st.SetYOffset(st.yOffset + step)
	case EventPanDown:
		st.SetYOffset(st.yOffset - step)
	case EventPanLeft:
		st.SetXOffset(st.xOffset + step)
	case EventPanRight:
		st.SetXOffset(st.xOffset - step)
	default:
		st.Dirty = false
		return false
	}
	return true
}
