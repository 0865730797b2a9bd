package layouts

import (
	"fyne.io/fyne/v2"
)

// TwoColumnLayout places objects[0] and objects[1] side by side. The left
// column takes Ratio of the width left after the gap.
type TwoColumnLayout struct {
	Ratio float32
	Gap   float32
}

// NewTwoColumnLayout creates a two-column layout; ratio is clamped to [0.1, 0.9].
func NewTwoColumnLayout(ratio, gap float32) *TwoColumnLayout {
	if ratio < 0.1 {
		ratio = 0.1
	}
	if ratio > 0.9 {
		ratio = 0.9
	}
	return &TwoColumnLayout{Ratio: ratio, Gap: gap}
}

// Layout arranges the objects: [0] = left, [1] = right
func (l *TwoColumnLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	left, right := objects[0], objects[1]

	usable := size.Width - l.Gap
	if usable < 0 {
		usable = 0
	}
	leftWidth := usable * l.Ratio

	left.Resize(fyne.NewSize(leftWidth, size.Height))
	left.Move(fyne.NewPos(0, 0))

	right.Resize(fyne.NewSize(usable-leftWidth, size.Height))
	right.Move(fyne.NewPos(leftWidth+l.Gap, 0))
}

// MinSize keeps both columns at least at their own minimum width.
func (l *TwoColumnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	leftMin := objects[0].MinSize()
	rightMin := objects[1].MinSize()

	return fyne.NewSize(
		leftMin.Width+rightMin.Width+l.Gap,
		fyne.Max(leftMin.Height, rightMin.Height),
	)
}
