package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ocr-translator/internal/text"
	"ocr-translator/models"
)

// LanguagePlaceholder is shown while no target language is chosen.
const LanguagePlaceholder = "Choose a language..."

// LanguageSelector is the target language dropdown. Its options come from
// the remote catalog, in catalog order, and it starts with nothing selected.
type LanguageSelector struct {
	widget.BaseWidget

	OnChanged func(code string)

	languages []models.LanguageOption
	selected  string

	label   *widget.Label
	select_ *widget.Select
}

// NewLanguageSelector creates an empty, disabled selector.
func NewLanguageSelector(label string, onChanged func(code string)) *LanguageSelector {
	s := &LanguageSelector{OnChanged: onChanged}
	s.label = widget.NewLabel(label)
	s.select_ = widget.NewSelect(nil, s.onSelected)
	s.select_.PlaceHolder = LanguagePlaceholder
	s.select_.Disable()
	s.ExtendBaseWidget(s)
	return s
}

// SetLanguages replaces the options and clears the current selection.
// An empty catalog leaves the selector disabled.
func (s *LanguageSelector) SetLanguages(languages []models.LanguageOption) {
	s.languages = languages

	options := make([]string, len(languages))
	for i, lang := range languages {
		options[i] = text.OptionLabel(lang.Name, lang.Code)
	}

	s.select_.Options = options
	s.select_.ClearSelected()
	s.selected = ""
	if len(options) == 0 {
		s.select_.Disable()
	} else {
		s.select_.Enable()
	}
	s.select_.Refresh()
}

// Languages returns the current catalog.
func (s *LanguageSelector) Languages() []models.LanguageOption {
	return s.languages
}

// Options returns the displayed labels.
func (s *LanguageSelector) Options() []string {
	return s.select_.Options
}

// SelectIndex chooses the option at index i.
func (s *LanguageSelector) SelectIndex(i int) {
	s.select_.SetSelectedIndex(i)
}

// Selected returns the chosen code, or "" when nothing is chosen.
func (s *LanguageSelector) Selected() string {
	return s.selected
}

// Disabled reports whether the dropdown accepts input.
func (s *LanguageSelector) Disabled() bool {
	return s.select_.Disabled()
}

// Codes are resolved by position, so two entries sharing a code stay
// distinct in the list.
func (s *LanguageSelector) onSelected(string) {
	code := ""
	if i := s.select_.SelectedIndex(); i >= 0 && i < len(s.languages) {
		code = s.languages[i].Code
	}
	if code == s.selected {
		return
	}
	s.selected = code
	if s.OnChanged != nil {
		s.OnChanged(code)
	}
}

// CreateRenderer implements fyne.Widget
func (s *LanguageSelector) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(s.label, s.select_))
}
