// Package text holds small text helpers shared by the front ends.
package text

import "strings"

// ocrLanguageNames maps Tesseract traineddata names to human-readable names.
// Only used for hints; OCR codes are never validated against it.
var ocrLanguageNames = map[string]string{
	"eng":     "English",
	"spa":     "Spanish",
	"fra":     "French",
	"deu":     "German",
	"ita":     "Italian",
	"por":     "Portuguese",
	"nld":     "Dutch",
	"pol":     "Polish",
	"rus":     "Russian",
	"ukr":     "Ukrainian",
	"tur":     "Turkish",
	"ara":     "Arabic",
	"hin":     "Hindi",
	"jpn":     "Japanese",
	"kor":     "Korean",
	"vie":     "Vietnamese",
	"chi_sim": "Chinese (Simplified)",
	"chi_tra": "Chinese (Traditional)",
}

// OCRLanguageName returns the human-readable name for a Tesseract language
// code. Combined codes like "eng+fra" are joined with " + ". ok is false when
// any part is unknown.
func OCRLanguageName(code string) (name string, ok bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}

	parts := strings.Split(code, "+")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		n, found := ocrLanguageNames[strings.ToLower(strings.TrimSpace(part))]
		if !found {
			return "", false
		}
		names = append(names, n)
	}
	return strings.Join(names, " + "), true
}

// OCRHint returns the helper line shown under the OCR language field.
func OCRHint(code string) string {
	if name, ok := OCRLanguageName(code); ok {
		return "Tesseract will read the image as " + name + "."
	}
	if strings.TrimSpace(code) == "" {
		return "Leave empty to use the default OCR language."
	}
	return "Unrecognized code; it is sent to the service unchanged."
}

// OptionLabel formats a catalog entry for display, e.g. "French (fra)".
func OptionLabel(name, code string) string {
	return name + " (" + code + ")"
}
