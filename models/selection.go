package models

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"ocr-translator/internal/config"
)

// FileHandle is the file chosen for upload. The submission reads it only
// when a request is actually sent.
type FileHandle interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// LocalFile is a FileHandle backed by a path on disk.
type LocalFile string

// Name returns the base name sent as the multipart filename.
func (f LocalFile) Name() string {
	return filepath.Base(string(f))
}

// Open opens the file for reading.
func (f LocalFile) Open() (io.ReadCloser, error) {
	return os.Open(string(f))
}

// Path returns the full path.
func (f LocalFile) Path() string {
	return string(f)
}

// Selection holds the user's current intent: the file and the two language
// codes. Front ends own it; the submission controller only reads it.
type Selection struct {
	File               FileHandle
	TargetLanguageCode string
	OCRLanguageCode    string
}

// NewSelection returns an empty selection with the default OCR language.
func NewSelection() Selection {
	return Selection{OCRLanguageCode: config.DefaultOCRLanguage}
}

// ValidationError is a locally detected problem with the selection.
// It never reaches the transport.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the selection in fixed order; the first failing rule wins.
// The OCR code is free text and is not checked.
func (s Selection) Validate() error {
	if s.File == nil {
		return &ValidationError{Message: config.MsgChooseFile}
	}
	if strings.TrimSpace(s.TargetLanguageCode) == "" {
		return &ValidationError{Message: config.MsgChooseTarget}
	}
	return nil
}

// EffectiveOCRLanguage returns the OCR code to send, falling back to the
// default when the field was cleared.
func (s Selection) EffectiveOCRLanguage() string {
	if code := strings.TrimSpace(s.OCRLanguageCode); code != "" {
		return code
	}
	return config.DefaultOCRLanguage
}
