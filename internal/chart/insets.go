package chart

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// R-tree needs non-zero extents; degenerate boxes get this width.
const insetEpsilon = 0.5

// InsetIndex answers "is this pixel under an inset" for a chart.
// Candidates come from an R-tree; the final decision uses the exact
// inclusive pixel test of geometry.BBox.ContainsPixel.
type InsetIndex struct {
	rtree *rtreego.Rtree
}

type indexedInset struct {
	inset Inset
}

// Bounds implements rtreego.Spatial.
func (i *indexedInset) Bounds() rtreego.Rect {
	bb := i.inset.BBoxLocal
	minX := math.Min(bb[0], bb[2])
	minY := math.Min(bb[1], bb[3])
	w := math.Abs(bb[2] - bb[0])
	h := math.Abs(bb[1] - bb[3])
	if w < insetEpsilon {
		w = insetEpsilon
	}
	if h < insetEpsilon {
		h = insetEpsilon
	}
	rect, _ := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{w, h})
	return rect
}

// NewInsetIndex builds an index over the given insets.
func NewInsetIndex(insets []Inset) *InsetIndex {
	rtree := rtreego.NewTree(2, 2, 8)
	for _, in := range insets {
		rtree.Insert(&indexedInset{inset: in})
	}
	return &InsetIndex{rtree: rtree}
}

// Contains reports whether any inset contains the point.
func (idx *InsetIndex) Contains(x, y float64) bool {
	query := rtreego.Point{x, y}.ToRect(insetEpsilon)
	for _, s := range idx.rtree.SearchIntersect(query) {
		if s.(*indexedInset).inset.BBoxLocal.ContainsPixel(x, y) {
			return true
		}
	}
	return false
}
