package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"ocr-translator/models"
)

const catalogBody = `[{"name":"Spanish","code":"spa"},{"name":"French","code":"fra"}]`

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/languages":
			io.WriteString(w, catalogBody)
		case "/api/translate":
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if r.FormValue("ocr_language_code") == "xx" {
				w.WriteHeader(http.StatusUnprocessableEntity)
				io.WriteString(w, `{"detail":"Unsupported OCR language"}`)
				return
			}
			_, header, err := r.FormFile("file")
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			json.NewEncoder(w).Encode(models.TranslationResult{
				DetectedLanguage: "en",
				TargetLanguage:   r.FormValue("target_language_code"),
				OCRLanguage:      r.FormValue("ocr_language_code"),
				OriginalText:     "text of " + header.Filename,
				TranslatedText:   "translated " + header.Filename,
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// run executes the root command against backendURL with an isolated config path.
func run(t *testing.T, backendURL string, args ...string) (string, error) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.json")

	full := []string{"--config", configPath}
	if backendURL != "" {
		full = append(full, "--backend-url", backendURL)
	}
	full = append(full, args...)

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(full)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLanguages_Text(t *testing.T) {
	srv := newBackend(t)

	out, err := run(t, srv.URL, "languages")
	if err != nil {
		t.Fatalf("languages error = %v", err)
	}
	if out != "Spanish (spa)\nFrench (fra)\n" {
		t.Errorf("output = %q", out)
	}
}

func TestLanguages_JSON(t *testing.T) {
	srv := newBackend(t)

	out, err := run(t, srv.URL, "languages", "--output", "json")
	if err != nil {
		t.Fatalf("languages error = %v", err)
	}
	var got []models.LanguageOption
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(got) != 2 || got[0].Code != "spa" || got[1].Code != "fra" {
		t.Errorf("languages = %+v", got)
	}
}

func TestLanguages_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := run(t, srv.URL, "languages")
	if err == nil || err.Error() != "Failed to load language list from backend." {
		t.Errorf("error = %v", err)
	}
}

func TestLanguages_UnknownFormat(t *testing.T) {
	_, err := run(t, "", "languages", "--output", "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("error = %v", err)
	}
}

func TestTranslate_TextInArgumentOrder(t *testing.T) {
	srv := newBackend(t)
	a := writeFile(t, "a.txt", "Hello")
	b := writeFile(t, "b.png", "\x89PNG\r\n\x1a\n")

	out, err := run(t, srv.URL, "translate", a, b, "--to", "fra", "--workers", "2")
	if err != nil {
		t.Fatalf("translate error = %v", err)
	}

	ia, ib := strings.Index(out, "== "+a+" =="), strings.Index(out, "== "+b+" ==")
	if ia < 0 || ib < 0 || ia > ib {
		t.Fatalf("reports missing or out of order:\n%s", out)
	}
	for _, want := range []string{
		"Detected language: en | Target: fra | OCR: eng",
		"--- Original text ---\ntext of a.txt",
		"--- Translated text ---\ntranslated b.png",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTranslate_YAML(t *testing.T) {
	srv := newBackend(t)
	a := writeFile(t, "a.txt", "Hello")

	out, err := run(t, srv.URL, "translate", a, "--to", "spa", "--ocr", "deu", "-o", "yaml")
	if err != nil {
		t.Fatalf("translate error = %v", err)
	}

	var reports []fileReport
	if err := yaml.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("invalid YAML %q: %v", out, err)
	}
	if len(reports) != 1 || reports[0].Status != models.StatusSuccess {
		t.Fatalf("reports = %+v", reports)
	}
	if reports[0].Result.OCRLanguage != "deu" || reports[0].Result.TargetLanguage != "spa" {
		t.Errorf("result = %+v", reports[0].Result)
	}
	if reports[0].AttemptID == "" {
		t.Error("attempt id missing")
	}
}

func TestTranslate_FailureExitsNonZero(t *testing.T) {
	srv := newBackend(t)
	a := writeFile(t, "a.png", "x")

	out, err := run(t, srv.URL, "translate", a, "--to", "fra", "--ocr", "xx")
	if err == nil || err.Error() != "1 of 1 files failed" {
		t.Errorf("error = %v", err)
	}
	if !strings.Contains(out, "Failed: Unsupported OCR language") {
		t.Errorf("output = %q", out)
	}
}

func TestTranslate_MissingFile(t *testing.T) {
	srv := newBackend(t)
	missing := filepath.Join(t.TempDir(), "nope.png")

	out, err := run(t, srv.URL, "translate", missing, "--to", "fra")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(out, "cannot read nope.png") {
		t.Errorf("output = %q", out)
	}
}

func TestTranslate_Validation(t *testing.T) {
	srv := newBackend(t)
	a := writeFile(t, "a.txt", "Hello")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no files", []string{"translate", "--to", "fra"}, "Please choose a file to upload."},
		{"no files and no target", []string{"translate"}, "Please choose a file to upload."},
		{"no target", []string{"translate", a}, "1 of 1 files failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, srv.URL, tt.args...)
			if err == nil || err.Error() != tt.want {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestConfig_InitShowPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	exec := func(args ...string) (string, error) {
		var out bytes.Buffer
		root := NewRootCmd()
		root.SetOut(&out)
		root.SetErr(io.Discard)
		root.SetArgs(append([]string{"--config", path}, args...))
		err := root.Execute()
		return out.String(), err
	}

	out, err := exec("config", "path")
	if err != nil || strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, %v", out, err)
	}

	if _, err := exec("config", "init"); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if _, err := exec("config", "init"); err == nil {
		t.Error("second init without --force should fail")
	}
	if _, err := exec("config", "init", "--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}

	out, err = exec("config", "show", "--backend-url", "https://ocr.example.com")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	var shown models.Config
	if err := yaml.Unmarshal([]byte(out), &shown); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if shown.BackendURL != "https://ocr.example.com" || shown.DefaultOCRLanguage != "eng" {
		t.Errorf("shown = %+v", shown)
	}
}

func TestConfig_ShowReportsInvalidConfig(t *testing.T) {
	_, err := run(t, "not-a-url", "config", "show")
	if err == nil || !strings.Contains(err.Error(), "backend_url") {
		t.Errorf("error = %v", err)
	}
}

func TestGUI_UsesLoadedConfig(t *testing.T) {
	original := runGUI
	t.Cleanup(func() { runGUI = original })

	var gotURL, gotPath string
	runGUI = func(cfg *models.Config, configPath string) {
		gotURL, gotPath = cfg.BackendURL, configPath
	}

	if _, err := run(t, "https://ocr.example.com", "gui"); err != nil {
		t.Fatalf("gui error = %v", err)
	}
	if gotURL != "https://ocr.example.com" || !strings.HasSuffix(gotPath, "config.json") {
		t.Errorf("runGUI got %q, %q", gotURL, gotPath)
	}

	gotURL = ""
	if _, err := run(t, "https://other.example.com"); err != nil {
		t.Fatalf("root error = %v", err)
	}
	if gotURL != "https://other.example.com" {
		t.Errorf("root command should launch the GUI, got %q", gotURL)
	}
}
