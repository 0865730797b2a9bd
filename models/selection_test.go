package models

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSelection_DefaultOCR(t *testing.T) {
	s := NewSelection()
	if s.OCRLanguageCode != "eng" {
		t.Errorf("OCRLanguageCode = %q, want 'eng'", s.OCRLanguageCode)
	}
	if s.File != nil {
		t.Error("File should be nil")
	}
	if s.TargetLanguageCode != "" {
		t.Errorf("TargetLanguageCode = %q, want empty", s.TargetLanguageCode)
	}
}

func TestSelection_Validate(t *testing.T) {
	file := LocalFile("/tmp/notes.txt")

	tests := []struct {
		name      string
		selection Selection
		want      string
	}{
		{"nothing chosen", Selection{}, "Please choose a file to upload."},
		{"file missing wins over target", Selection{TargetLanguageCode: "fra"}, "Please choose a file to upload."},
		{"target missing", Selection{File: file, OCRLanguageCode: "eng"}, "Please choose a target language."},
		{"target blank", Selection{File: file, TargetLanguageCode: "  "}, "Please choose a target language."},
		{"ocr empty is fine", Selection{File: file, TargetLanguageCode: "fra"}, ""},
		{"free-form ocr is fine", Selection{File: file, TargetLanguageCode: "fra", OCRLanguageCode: "not-a-code"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.selection.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if vErr.Message != tt.want {
				t.Errorf("Message = %q, want %q", vErr.Message, tt.want)
			}
		})
	}
}

func TestSelection_EffectiveOCRLanguage(t *testing.T) {
	if got := (Selection{OCRLanguageCode: " spa "}).EffectiveOCRLanguage(); got != "spa" {
		t.Errorf("EffectiveOCRLanguage() = %q, want 'spa'", got)
	}
	if got := (Selection{}).EffectiveOCRLanguage(); got != "eng" {
		t.Errorf("EffectiveOCRLanguage() = %q, want 'eng'", got)
	}
}

func TestLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("Hello"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f := LocalFile(path)
	if f.Name() != "notes.txt" {
		t.Errorf("Name() = %q, want 'notes.txt'", f.Name())
	}

	rc, err := f.Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "Hello" {
		t.Errorf("content = %q, want 'Hello'", data)
	}
}
