package text

import "testing"

func TestOCRLanguageName(t *testing.T) {
	tests := []struct {
		code   string
		want   string
		wantOK bool
	}{
		{"eng", "English", true},
		{" FRA ", "French", true},
		{"eng+fra", "English + French", true},
		{"chi_sim", "Chinese (Simplified)", true},
		{"xyz", "", false},
		{"eng+xyz", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := OCRLanguageName(tt.code)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("OCRLanguageName(%q) = (%q, %v), want (%q, %v)", tt.code, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestOCRHint(t *testing.T) {
	if got := OCRHint("spa"); got != "Tesseract will read the image as Spanish." {
		t.Errorf("OCRHint(spa) = %q", got)
	}
	if got := OCRHint(""); got != "Leave empty to use the default OCR language." {
		t.Errorf("OCRHint('') = %q", got)
	}
	if got := OCRHint("klingon"); got != "Unrecognized code; it is sent to the service unchanged." {
		t.Errorf("OCRHint(klingon) = %q", got)
	}
}

func TestOptionLabel(t *testing.T) {
	if got := OptionLabel("French", "fra"); got != "French (fra)" {
		t.Errorf("OptionLabel() = %q, want 'French (fra)'", got)
	}
}
