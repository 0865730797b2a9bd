package container

import (
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ocr-translator/internal/config"
	"ocr-translator/internal/text"
	"ocr-translator/models"
	"ocr-translator/ui/widgets"
)

const (
	submitLabel        = "Translate"
	submitPendingLabel = "Translating..."
	noFileLabel        = "No file chosen"
	ocrPlaceholder     = "e.g. eng, spa, fra..."
)

// uriFile adapts a fyne URI to the upload file handle. The content is read
// through the storage repository only when a request is sent.
type uriFile struct {
	uri fyne.URI
}

func (f uriFile) Name() string { return f.uri.Name() }

func (f uriFile) Open() (io.ReadCloser, error) {
	return storage.Reader(f.uri)
}

// UploadForm collects the selection: file, target language and OCR code.
type UploadForm struct {
	widget.BaseWidget

	window    fyne.Window
	selection models.Selection

	OnSubmit func(selection models.Selection)

	fileLabel *widget.Label
	chooseBtn *widget.Button
	languages *widgets.LanguageSelector
	ocrEntry  *widget.Entry
	ocrHint   *widget.Label
	submitBtn *widget.Button
	header    *widgets.SectionHeader
}

// NewUploadForm creates the form with the OCR field pre-filled.
func NewUploadForm(window fyne.Window, defaultOCR string) *UploadForm {
	if defaultOCR == "" {
		defaultOCR = config.DefaultOCRLanguage
	}

	f := &UploadForm{
		window:    window,
		selection: models.Selection{OCRLanguageCode: defaultOCR},
	}

	f.header = widgets.NewSectionHeaderWithSubtitle("Upload", "Image or plain text file")

	f.fileLabel = widget.NewLabel(noFileLabel)
	f.fileLabel.Truncation = fyne.TextTruncateEllipsis
	f.chooseBtn = widget.NewButtonWithIcon("Choose File", theme.FolderOpenIcon(), f.showFileDialog)

	f.languages = widgets.NewLanguageSelector("Target language", func(code string) {
		f.selection.TargetLanguageCode = code
	})

	f.ocrHint = widget.NewLabel(text.OCRHint(defaultOCR))
	f.ocrHint.Wrapping = fyne.TextWrapWord
	f.ocrHint.Importance = widget.LowImportance

	f.ocrEntry = widget.NewEntry()
	f.ocrEntry.SetPlaceHolder(ocrPlaceholder)
	f.ocrEntry.SetText(defaultOCR)
	f.ocrEntry.OnChanged = func(code string) {
		f.selection.OCRLanguageCode = code
		f.ocrHint.SetText(text.OCRHint(code))
	}

	f.submitBtn = widget.NewButtonWithIcon(submitLabel, theme.ConfirmIcon(), f.submit)
	f.submitBtn.Importance = widget.HighImportance

	f.ExtendBaseWidget(f)
	return f
}

// Selection returns the current user intent.
func (f *UploadForm) Selection() models.Selection {
	return f.selection
}

// SetFile records the chosen file.
func (f *UploadForm) SetFile(file models.FileHandle) {
	f.selection.File = file
	if file == nil {
		f.fileLabel.SetText(noFileLabel)
		return
	}
	f.fileLabel.SetText(file.Name())
}

// SetLanguages fills the target selector from the catalog.
func (f *UploadForm) SetLanguages(languages []models.LanguageOption) {
	f.languages.SetLanguages(languages)
	f.selection.TargetLanguageCode = ""
}

// LanguageSelector exposes the target selector.
func (f *UploadForm) LanguageSelector() *widgets.LanguageSelector {
	return f.languages
}

// SetOCRLanguage replaces the OCR field text.
func (f *UploadForm) SetOCRLanguage(code string) {
	f.ocrEntry.SetText(code)
}

// OCRHint is the helper text under the OCR field.
func (f *UploadForm) OCRHint() string {
	return f.ocrHint.Text
}

// SetPending disables the submit button exactly while a request is in flight.
func (f *UploadForm) SetPending(pending bool) {
	if pending {
		f.submitBtn.SetText(submitPendingLabel)
		f.submitBtn.Disable()
		return
	}
	f.submitBtn.SetText(submitLabel)
	f.submitBtn.Enable()
}

// SubmitButton exposes the submit button.
func (f *UploadForm) SubmitButton() *widget.Button {
	return f.submitBtn
}

func (f *UploadForm) submit() {
	if f.OnSubmit != nil {
		f.OnSubmit(f.selection)
	}
}

func (f *UploadForm) showFileDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		uri := reader.URI()
		if uri.Scheme() == "file" {
			f.SetFile(models.LocalFile(uri.Path()))
			return
		}
		f.SetFile(uriFile{uri: uri})
	}, f.window)

	fd.SetFilter(storage.NewExtensionFileFilter(config.UploadExtensions))
	fd.Show()
}

// Build creates the form UI
func (f *UploadForm) Build() fyne.CanvasObject {
	fileRow := container.NewBorder(nil, nil, f.chooseBtn, nil, f.fileLabel)

	form := container.NewVBox(
		widget.NewLabel("File"),
		fileRow,
		widget.NewSeparator(),
		f.languages,
		widget.NewSeparator(),
		widget.NewLabel("OCR language"),
		f.ocrEntry,
		f.ocrHint,
	)

	return container.NewBorder(
		f.header,
		container.NewPadded(f.submitBtn),
		nil,
		nil,
		container.NewVScroll(form),
	)
}

// CreateRenderer implements fyne.Widget
func (f *UploadForm) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(f.Build())
}
