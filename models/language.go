package models

// LanguageOption is one selectable target language from the remote catalog.
type LanguageOption struct {
	Name string `json:"name" yaml:"name"`
	Code string `json:"code" yaml:"code"`
}

// TranslationResult is the payload of a successful translate round trip.
// It is published exactly as received.
type TranslationResult struct {
	DetectedLanguage string `json:"detected_language" yaml:"detected_language"`
	TargetLanguage   string `json:"target_language" yaml:"target_language"`
	OCRLanguage      string `json:"ocr_language" yaml:"ocr_language"`
	OriginalText     string `json:"original_text" yaml:"original_text"`
	TranslatedText   string `json:"translated_text" yaml:"translated_text"`
}
