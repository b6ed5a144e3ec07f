package viewer

// PreviewStrip describes the lightbox thumbnail strip layout.
type PreviewStrip struct {
	ThumbWidthPX int
	GapPX        int
	PaddingPX    int
}

// DefaultPreviewStrip matches the rendered strip styles.
var DefaultPreviewStrip = PreviewStrip{ThumbWidthPX: 96, GapPX: 8, PaddingPX: 8}

// OffsetLeft is the left edge of thumbnail i inside the strip.
func (p PreviewStrip) OffsetLeft(i int) int {
	if i < 0 {
		i = 0
	}
	return p.PaddingPX + i*(p.ThumbWidthPX+p.GapPX)
}

// CenterScrollLeft is the scroll position that centres thumbnail i in a
// strip of the given visible width, never negative.
func (p PreviewStrip) CenterScrollLeft(i, stripWidth int) int {
	left := p.OffsetLeft(i) - stripWidth/2 + p.ThumbWidthPX/2
	if left < 0 {
		return 0
	}
	return left
}
