package container

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"ocr-translator/models"
)

func TestUploadForm_Defaults(t *testing.T) {
	test.NewTempApp(t)

	f := NewUploadForm(nil, "")
	sel := f.Selection()
	if sel.File != nil || sel.TargetLanguageCode != "" {
		t.Errorf("Selection() = %+v, want empty file and target", sel)
	}
	if sel.OCRLanguageCode != "eng" {
		t.Errorf("OCRLanguageCode = %q, want eng", sel.OCRLanguageCode)
	}
	if f.SubmitButton().Text != "Translate" || f.SubmitButton().Disabled() {
		t.Error("submit button should read Translate and be enabled")
	}
	if !f.LanguageSelector().Disabled() {
		t.Error("target selector should be disabled before the catalog loads")
	}
}

func TestUploadForm_OCRHintFollowsInput(t *testing.T) {
	test.NewTempApp(t)

	f := NewUploadForm(nil, "eng")
	before := f.OCRHint()

	f.SetOCRLanguage("xx")
	if f.Selection().OCRLanguageCode != "xx" {
		t.Errorf("OCRLanguageCode = %q, want xx", f.Selection().OCRLanguageCode)
	}
	if f.OCRHint() == before {
		t.Error("hint did not change for an unrecognized code")
	}
}

func TestUploadForm_SetPending(t *testing.T) {
	test.NewTempApp(t)

	f := NewUploadForm(nil, "eng")
	f.SetPending(true)
	if f.SubmitButton().Text != "Translating..." || !f.SubmitButton().Disabled() {
		t.Error("button should read Translating... and be disabled while pending")
	}
	f.SetPending(false)
	if f.SubmitButton().Text != "Translate" || f.SubmitButton().Disabled() {
		t.Error("button should be re-enabled after the outcome")
	}
}

func TestUploadForm_SubmitEmitsSelection(t *testing.T) {
	test.NewTempApp(t)

	f := NewUploadForm(nil, "eng")
	f.SetLanguages([]models.LanguageOption{{Name: "Spanish", Code: "spa"}, {Name: "French", Code: "fra"}})
	f.LanguageSelector().SelectIndex(1)
	f.SetFile(models.LocalFile("/tmp/notes.txt"))

	var got []models.Selection
	f.OnSubmit = func(sel models.Selection) { got = append(got, sel) }
	test.Tap(f.SubmitButton())

	if len(got) != 1 {
		t.Fatalf("OnSubmit called %d times, want 1", len(got))
	}
	if got[0].TargetLanguageCode != "fra" || got[0].File.Name() != "notes.txt" || got[0].OCRLanguageCode != "eng" {
		t.Errorf("selection = %+v", got[0])
	}
}

func TestUploadForm_NewCatalogClearsTarget(t *testing.T) {
	test.NewTempApp(t)

	f := NewUploadForm(nil, "eng")
	f.SetLanguages([]models.LanguageOption{{Name: "French", Code: "fra"}})
	f.LanguageSelector().SelectIndex(0)
	f.SetLanguages([]models.LanguageOption{})

	if f.Selection().TargetLanguageCode != "" {
		t.Errorf("TargetLanguageCode = %q, want cleared", f.Selection().TargetLanguageCode)
	}
}
