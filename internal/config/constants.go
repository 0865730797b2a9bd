// Package config provides centralized constants for the ocr-translator application.
package config

import "time"

// AppName is used for the config directory and the User-Agent header.
const AppName = "ocr-translator"

// Remote service defaults
const (
	DefaultBackendURL  = "http://localhost:8000"
	LanguagesPath      = "/api/languages"
	TranslatePath      = "/api/translate"
	RequestIDHeader    = "X-Request-ID"
	DefaultOCRLanguage = "eng"
)

// Multipart form field names expected by the translate endpoint
const (
	FieldFile               = "file"
	FieldTargetLanguageCode = "target_language_code"
	FieldOCRLanguageCode    = "ocr_language_code"
)

// User-facing messages
const (
	MsgChooseFile        = "Please choose a file to upload."
	MsgChooseTarget      = "Please choose a target language."
	MsgCatalogFailed     = "Failed to load language list from backend."
	MsgUnexpectedError   = "An unexpected error occurred."
	MsgTranslationStatus = "Translation failed with status %d"
)

// Retry settings. A single attempt unless configured otherwise.
const (
	DefaultMaxAttempts   = 1
	DefaultRetryDelay    = 500 * time.Millisecond
	DefaultBackoffFactor = 2.0
)

// HTTP client settings. Zero timeout means the transport default (none).
const (
	HTTPTimeout             = 0
	HTTPMaxIdleConns        = 4
	HTTPMaxIdleConnsPerHost = 4
	HTTPIdleConnTimeout     = 90 * time.Second
)

// Window defaults
const (
	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 700
)

// UploadExtensions lists the file types offered by the file chooser:
// images are sent for OCR, plain text is read directly by the service.
var UploadExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp", ".txt",
}
