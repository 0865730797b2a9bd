package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ocr-translator/models"
	appTheme "ocr-translator/ui/theme"
)

// OutcomeBadge shows a colored dot and the short status label of an outcome.
type OutcomeBadge struct {
	widget.BaseWidget

	Outcome models.Outcome
}

// NewOutcomeBadge creates a badge showing the idle state.
func NewOutcomeBadge() *OutcomeBadge {
	b := &OutcomeBadge{Outcome: models.IdleOutcome()}
	b.ExtendBaseWidget(b)
	return b
}

// SetOutcome updates the badge
func (b *OutcomeBadge) SetOutcome(outcome models.Outcome) {
	b.Outcome = outcome
	b.Refresh()
}

// Label is the text currently displayed.
func (b *OutcomeBadge) Label() string {
	switch b.Outcome.Status {
	case models.StatusFailure:
		return "Failed"
	default:
		return b.Outcome.StatusText()
	}
}

// CreateRenderer implements fyne.Widget
func (b *OutcomeBadge) CreateRenderer() fyne.WidgetRenderer {
	label := canvas.NewText("", nil)
	label.TextSize = theme.Size(theme.SizeNameCaptionText)

	r := &outcomeBadgeRenderer{dot: canvas.NewCircle(nil), label: label, widget: b}
	r.Refresh()
	return r
}

type outcomeBadgeRenderer struct {
	dot    *canvas.Circle
	label  *canvas.Text
	widget *OutcomeBadge
}

const badgeDotSize = float32(8)

func (r *outcomeBadgeRenderer) Destroy() {}

func (r *outcomeBadgeRenderer) Layout(size fyne.Size) {
	r.dot.Resize(fyne.NewSize(badgeDotSize, badgeDotSize))
	r.dot.Move(fyne.NewPos(4, (size.Height-badgeDotSize)/2))

	labelY := (size.Height - r.label.MinSize().Height) / 2
	r.label.Move(fyne.NewPos(badgeDotSize+10, labelY))
}

func (r *outcomeBadgeRenderer) MinSize() fyne.Size {
	labelSize := r.label.MinSize()
	return fyne.NewSize(badgeDotSize+10+labelSize.Width+4, fyne.Max(16, labelSize.Height))
}

func (r *outcomeBadgeRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.dot, r.label}
}

func (r *outcomeBadgeRenderer) Refresh() {
	r.dot.FillColor = theme.Color(appTheme.OutcomeColor(r.widget.Outcome.Status))
	r.dot.Refresh()

	r.label.Text = r.widget.Label()
	r.label.Color = theme.Color(theme.ColorNameForeground)
	r.label.Refresh()
}
