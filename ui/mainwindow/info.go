package mainwindow

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// infoHeader shows the chart index number, procedure identifier and the
// "no georef" indicator above the chart.
type infoHeader struct {
	index     *widget.Label
	procedure *widget.Label
	noGeoref  *widget.Label
}

func newInfoHeader() *infoHeader {
	h := &infoHeader{
		index:     widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		procedure: widget.NewLabel(""),
		noGeoref:  widget.NewLabelWithStyle("NO GEOREF", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true}),
	}
	h.noGeoref.Importance = widget.DangerImportance
	h.noGeoref.Hide()
	return h
}

func (h *infoHeader) SetIndexNumber(text string) {
	h.index.SetText(text)
}

func (h *infoHeader) SetProcedureIdentifier(text string) {
	h.procedure.SetText(text)
}

func (h *infoHeader) SetNoGeorefVisible(visible bool) {
	if visible {
		h.noGeoref.Show()
	} else {
		h.noGeoref.Hide()
	}
}

func (h *infoHeader) container() fyne.CanvasObject {
	return container.NewBorder(nil, nil, h.index, h.noGeoref, h.procedure)
}
