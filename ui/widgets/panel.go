package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	appTheme "ocr-translator/ui/theme"
)

// Panel draws its content on a rounded, theme-colored card.
type Panel struct {
	widget.BaseWidget

	Content   fyne.CanvasObject
	ColorName fyne.ThemeColorName
	Padding   float32
}

// NewPanel creates a panel with the surface color
func NewPanel(content fyne.CanvasObject) *Panel {
	p := &Panel{
		Content:   content,
		ColorName: appTheme.ColorNameSurface,
		Padding:   12,
	}
	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer implements fyne.Widget
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	r := &panelRenderer{bg: canvas.NewRectangle(nil), widget: p}
	r.Refresh()
	return r
}

type panelRenderer struct {
	bg     *canvas.Rectangle
	widget *Panel
}

func (r *panelRenderer) Destroy() {}

func (r *panelRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	pad := r.widget.Padding
	r.widget.Content.Resize(fyne.NewSize(size.Width-pad*2, size.Height-pad*2))
	r.widget.Content.Move(fyne.NewPos(pad, pad))
}

func (r *panelRenderer) MinSize() fyne.Size {
	pad := r.widget.Padding * 2
	return r.widget.Content.MinSize().Add(fyne.NewSize(pad, pad))
}

func (r *panelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.widget.Content}
}

func (r *panelRenderer) Refresh() {
	r.bg.FillColor = theme.Color(r.widget.ColorName)
	r.bg.CornerRadius = theme.Size(appTheme.SizeNameCardRadius)
	r.bg.Refresh()
	r.widget.Content.Refresh()
}
