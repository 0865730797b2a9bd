package container

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ocr-translator/models"
	"ocr-translator/ui/layouts"
	"ocr-translator/ui/widgets"
)

const (
	resultTitle        = "Result"
	failureTitle       = "Something went wrong"
	idlePlaceholder    = "The extracted and translated text will appear here."
	pendingPlaceholder = "Extracting and translating text..."
)

// ResultView is what the result panel shows for one outcome.
// Message and the text columns are never set together.
type ResultView struct {
	Title          string
	Message        string
	Tags           []string
	ShowColumns    bool
	OriginalText   string
	TranslatedText string
}

// DescribeOutcome maps an outcome to its view. It depends on nothing else.
func DescribeOutcome(outcome models.Outcome) ResultView {
	switch {
	case outcome.IsFailure():
		return ResultView{Title: failureTitle, Message: outcome.Message}
	case outcome.IsSuccess():
		r := outcome.Result
		return ResultView{
			Title: resultTitle,
			Tags: []string{
				"Detected language: " + r.DetectedLanguage,
				"Target: " + r.TargetLanguage,
				"OCR: " + r.OCRLanguage,
			},
			ShowColumns:    true,
			OriginalText:   r.OriginalText,
			TranslatedText: r.TranslatedText,
		}
	case outcome.IsPending():
		return ResultView{Title: resultTitle, Message: pendingPlaceholder}
	default:
		return ResultView{Title: resultTitle, Message: idlePlaceholder}
	}
}

// ResultPanel renders the latest outcome: placeholder, error or text pair.
type ResultPanel struct {
	widget.BaseWidget

	outcome models.Outcome
	view    ResultView

	header     *widgets.SectionHeader
	badge      *widgets.OutcomeBadge
	message    *widget.Label
	tags       *fyne.Container
	original   *widget.Label
	translated *widget.Label
	columns    *fyne.Container
}

// NewResultPanel creates a panel showing the idle placeholder.
func NewResultPanel() *ResultPanel {
	p := &ResultPanel{}

	p.header = widgets.NewSectionHeader(resultTitle)
	p.badge = widgets.NewOutcomeBadge()

	p.message = widget.NewLabel("")
	p.message.Wrapping = fyne.TextWrapWord

	p.tags = container.NewHBox()

	p.original = widget.NewLabel("")
	p.original.Wrapping = fyne.TextWrapWord
	p.translated = widget.NewLabel("")
	p.translated.Wrapping = fyne.TextWrapWord

	p.columns = container.New(layouts.NewTwoColumnLayout(0.5, 12),
		textColumn("Original text", p.original),
		textColumn("Translated text", p.translated),
	)

	p.ExtendBaseWidget(p)
	p.SetOutcome(models.IdleOutcome())
	return p
}

func textColumn(title string, body *widget.Label) fyne.CanvasObject {
	heading := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	return widgets.NewPanel(container.NewBorder(heading, nil, nil, nil, container.NewVScroll(body)))
}

// SetOutcome replaces whatever the panel showed before.
func (p *ResultPanel) SetOutcome(outcome models.Outcome) {
	p.outcome = outcome
	p.view = DescribeOutcome(outcome)

	p.header.SetTitle(p.view.Title)
	p.badge.SetOutcome(outcome)

	p.message.SetText(p.view.Message)
	if outcome.IsFailure() {
		p.message.Importance = widget.DangerImportance
	} else {
		p.message.Importance = widget.MediumImportance
	}
	p.message.Refresh()

	p.tags.RemoveAll()
	for _, tag := range p.view.Tags {
		p.tags.Add(widget.NewLabel(tag))
	}

	p.original.SetText(p.view.OriginalText)
	p.translated.SetText(p.view.TranslatedText)

	if p.view.ShowColumns {
		p.message.Hide()
		p.tags.Show()
		p.columns.Show()
	} else {
		p.message.Show()
		p.tags.Hide()
		p.columns.Hide()
	}
}

// View returns what is currently displayed.
func (p *ResultPanel) View() ResultView {
	return p.view
}

// Build creates the panel UI
func (p *ResultPanel) Build() fyne.CanvasObject {
	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, p.badge, p.header),
		p.message,
		p.tags,
	)
	return container.NewBorder(top, nil, nil, nil, p.columns)
}

// CreateRenderer implements fyne.Widget
func (p *ResultPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.Build())
}
