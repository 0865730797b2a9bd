package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SectionHeader is a bold title with an optional subtitle and divider.
type SectionHeader struct {
	widget.BaseWidget

	Title       string
	Subtitle    string
	ShowDivider bool
}

// NewSectionHeader creates a header with a divider
func NewSectionHeader(title string) *SectionHeader {
	return NewSectionHeaderWithSubtitle(title, "")
}

// NewSectionHeaderWithSubtitle creates a header with a subtitle line
func NewSectionHeaderWithSubtitle(title, subtitle string) *SectionHeader {
	h := &SectionHeader{
		Title:       title,
		Subtitle:    subtitle,
		ShowDivider: true,
	}
	h.ExtendBaseWidget(h)
	return h
}

func (h *SectionHeader) SetTitle(title string) {
	h.Title = title
	h.Refresh()
}

func (h *SectionHeader) SetSubtitle(subtitle string) {
	h.Subtitle = subtitle
	h.Refresh()
}

// CreateRenderer implements fyne.Widget
func (h *SectionHeader) CreateRenderer() fyne.WidgetRenderer {
	title := canvas.NewText(h.Title, nil)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = theme.Size(theme.SizeNameSubHeadingText)

	subtitle := canvas.NewText(h.Subtitle, nil)
	subtitle.TextSize = theme.Size(theme.SizeNameCaptionText)

	divider := canvas.NewRectangle(nil)

	r := &sectionHeaderRenderer{title: title, subtitle: subtitle, divider: divider, widget: h}
	r.Refresh()
	return r
}

type sectionHeaderRenderer struct {
	title    *canvas.Text
	subtitle *canvas.Text
	divider  *canvas.Rectangle
	widget   *SectionHeader
}

const headerPadding = float32(8)

func (r *sectionHeaderRenderer) Destroy() {}

func (r *sectionHeaderRenderer) Layout(size fyne.Size) {
	y := headerPadding
	r.title.Move(fyne.NewPos(headerPadding, y))
	y += r.title.MinSize().Height

	if r.widget.Subtitle != "" {
		y += 2
		r.subtitle.Move(fyne.NewPos(headerPadding, y))
		y += r.subtitle.MinSize().Height
	}

	if r.widget.ShowDivider {
		y += headerPadding / 2
		r.divider.Resize(fyne.NewSize(size.Width-headerPadding*2, 1))
		r.divider.Move(fyne.NewPos(headerPadding, y))
	}
}

func (r *sectionHeaderRenderer) MinSize() fyne.Size {
	height := headerPadding*2 + r.title.MinSize().Height
	width := r.title.MinSize().Width

	if r.widget.Subtitle != "" {
		height += 2 + r.subtitle.MinSize().Height
		width = fyne.Max(width, r.subtitle.MinSize().Width)
	}
	if r.widget.ShowDivider {
		height += headerPadding/2 + 1
	}

	return fyne.NewSize(fyne.Max(150, width+headerPadding*2), height)
}

func (r *sectionHeaderRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.title}
	if r.widget.Subtitle != "" {
		objs = append(objs, r.subtitle)
	}
	if r.widget.ShowDivider {
		objs = append(objs, r.divider)
	}
	return objs
}

func (r *sectionHeaderRenderer) Refresh() {
	r.title.Text = r.widget.Title
	r.title.Color = theme.Color(theme.ColorNameForeground)
	r.title.Refresh()

	r.subtitle.Text = r.widget.Subtitle
	r.subtitle.Color = theme.Color(theme.ColorNamePlaceHolder)
	r.subtitle.Refresh()

	r.divider.FillColor = theme.Color(theme.ColorNameSeparator)
	r.divider.Refresh()
}
